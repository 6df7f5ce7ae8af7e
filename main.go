package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"medha-admin/auth"
	"medha-admin/config"
	"medha-admin/handlers"
	"medha-admin/storage"
)

func connectToDatabase(dbURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Successfully connected to the database!")
	return pool, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using default environment variables")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v\n", err)
	}

	// Registrant store: Postgres when configured, in-memory otherwise.
	var store storage.RegistrantStore
	if cfg.DatabaseURL != "" {
		pool, err := connectToDatabase(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Unable to connect to database: %v\n", err)
		}
		defer pool.Close()

		pg := storage.NewPostgresStore(pool)
		if err := pg.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("Unable to prepare schema: %v\n", err)
		}
		store = pg
	} else {
		log.Println("DATABASE_URL not set, running on the in-memory store")
		store = storage.NewMemoryStore()
	}

	// Create handlers
	tokens := auth.NewTokenIssuer([]byte(cfg.JWTSecret))
	creds := auth.NewBcryptVerifier(cfg.AdminUsername, cfg.AdminPasswordHash)
	authHandler := handlers.NewAuthHandler(creds, tokens)
	userHandler := handlers.NewUserHandler(store)

	// Setup Gin
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// API routes
	api := router.Group("/api")
	{
		api.POST("/login", authHandler.Login)

		// Every registrant route requires a session token.
		users := api.Group("/users", auth.RequireAuth(tokens))
		{
			users.GET("", userHandler.GetUsers)
			users.GET("/paginated", userHandler.GetUsersPaginated)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})

	log.Printf("Server starting on port %s\n", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v\n", err)
	}
}
