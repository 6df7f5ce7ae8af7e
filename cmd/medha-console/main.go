// Command medha-console is the terminal front end for the registration
// admin panel: login, list/filter registrants and export the CSV.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/logger"
	"github.com/joho/godotenv"

	"medha-admin/config"
	"medha-admin/console"
	"medha-admin/events"
)

func main() {
	var (
		username   = flag.String("username", "", "admin username (login)")
		password   = flag.String("password", "", "admin password (login)")
		logout     = flag.Bool("logout", false, "drop the stored session token")
		filter     = flag.String("filter", "", "substring filter over the listed rows")
		exportPath = flag.String("export", "", "write the registrant CSV to this file")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using default environment variables")
	}

	cfg, err := config.ConsoleFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v\n", err)
	}

	tokens := console.NewTokenStore(cfg.TokenPath)

	if *logout {
		if err := tokens.Clear(); err != nil {
			log.Fatalf("Failed to clear session: %v\n", err)
		}
		fmt.Println("Logged out.")
		return
	}

	ctx := context.Background()
	client := console.NewClient(cfg.BackendURL)

	if *username != "" || *password != "" {
		token, err := client.Login(ctx, *username, *password)
		if err != nil {
			log.Fatalf("Login failed: %v\n", err)
		}
		if err := tokens.Save(token); err != nil {
			log.Fatalf("Failed to store session: %v\n", err)
		}
		fmt.Println("Login successful.")
	}

	// Session gate: a stored token must exist before the panel opens. The
	// backend still revalidates it on every call.
	gate := console.NewSessionGate(tokens)
	token, ok := gate.Token()
	if !ok {
		log.Fatalln("No session. Log in with -username and -password.")
	}
	client.SetToken(token)

	technicalEvents := cfg.TechnicalEvents
	if len(technicalEvents) == 0 {
		technicalEvents = events.DefaultTechnicalEvents
	}

	panel := console.New(client, events.NewGrouper(technicalEvents))
	if err := panel.Load(ctx); err != nil {
		if errors.Is(err, console.ErrUnauthenticated) {
			log.Fatalln("Session expired. Log in again with -username and -password.")
		}
		log.Fatalf("Failed to fetch registrants: %v\n", err)
	}

	if *exportPath != "" {
		f, err := os.Create(*exportPath)
		if err != nil {
			log.Fatalf("Failed to create %s: %v\n", *exportPath, err)
		}
		defer f.Close()

		if err := panel.ExportCSV(f); err != nil {
			log.Fatalf("Failed to export CSV: %v\n", err)
		}
		logger.Infof("Exported %d registrants to %s", len(panel.Rows()), *exportPath)
		return
	}

	panel.SetFilter(*filter)
	rows := panel.FilteredRows()
	fmt.Printf("%d registrant(s)\n", len(rows))
	for _, row := range rows {
		technical, cultural := panel.GroupedEvents(row)
		fmt.Printf("%s | %s | %s | %s | %s\n", row.ID, row.Name, row.Phone, row.CollegeName, row.Course)
		if technical != "" {
			fmt.Printf("    technical: %s\n", technical)
		}
		if cultural != "" {
			fmt.Printf("    cultural:  %s\n", cultural)
		}
	}
}
