package console

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"medha-admin/auth"
	"medha-admin/events"
	"medha-admin/handlers"
	"medha-admin/models"
	"medha-admin/storage"
)

// newTestBackend starts the real API stack over a memory store and returns
// a valid session token for it.
func newTestBackend(t *testing.T) (*httptest.Server, *storage.MemoryStore, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	tokens := auth.NewTokenIssuer([]byte("console-test-secret-console-test"))
	authHandler := handlers.NewAuthHandler(auth.NewBcryptVerifier("admin", string(hash)), tokens)
	userHandler := handlers.NewUserHandler(store)

	router := gin.New()
	api := router.Group("/api")
	api.POST("/login", authHandler.Login)
	users := api.Group("/users", auth.RequireAuth(tokens))
	users.GET("", userHandler.GetUsers)
	users.PUT("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	token, err := tokens.Issue("admin")
	require.NoError(t, err)
	return srv, store, token
}

func seedBackend(store *storage.MemoryStore) []models.Registrant {
	return []models.Registrant{
		store.Add(models.Registrant{
			Name:          "Asha Nair",
			Phone:         "9876500001",
			CollegeName:   "St. Mary's College",
			Course:        "BSc CS",
			HodName:       "Dr. Pillai",
			HodPhone:      "9876500002",
			TotalAmount:   "1500",
			TransactionID: "TXN-1001",
			EventDetails: models.EventDetails{
				"coding": {"participant1": "Asha Nair", "participant2": "Ravi Kumar"},
				"dance":  {"participant1": "Divya"},
			},
		}),
		store.Add(models.Registrant{
			Name:          "Rahul Menon",
			Phone:         "ravi.menon@GMail.com",
			CollegeName:   "Govt. Engineering College",
			Course:        "BTech IT",
			HodName:       "Dr. Thomas",
			HodPhone:      "9876500004",
			TotalAmount:   "900",
			TransactionID: "TXN-1002",
			EventDetails: models.EventDetails{
				"quiz": {"participant1": "Rahul Menon"},
			},
		}),
		store.Add(models.Registrant{
			Name:          "Sneha Rao",
			Phone:         "9876500005",
			CollegeName:   "City Arts College",
			Course:        "BA English",
			HodName:       "Dr. Iyer",
			HodPhone:      "9876500006",
			TotalAmount:   "600",
			TransactionID: "TXN-1003",
			EventDetails:  models.EventDetails{},
		}),
	}
}

func newLoadedConsole(t *testing.T) (*Console, *storage.MemoryStore, []models.Registrant) {
	t.Helper()
	srv, store, token := newTestBackend(t)
	seeded := seedBackend(store)

	client := NewClient(srv.URL)
	client.SetToken(token)

	panel := New(client, events.NewGrouper(events.DefaultTechnicalEvents))
	require.NoError(t, panel.Load(context.Background()))
	return panel, store, seeded
}

func TestConsole_Login(t *testing.T) {
	srv, _, _ := newTestBackend(t)
	client := NewClient(srv.URL)
	ctx := context.Background()

	token, err := client.Login(ctx, "admin", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = client.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestConsole_LoadRequiresSession(t *testing.T) {
	srv, store, _ := newTestBackend(t)
	seedBackend(store)

	panel := New(NewClient(srv.URL), events.NewGrouper(events.DefaultTechnicalEvents))
	err := panel.Load(context.Background())
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Empty(t, panel.Rows())
}

func TestConsole_Filter(t *testing.T) {
	panel, _, seeded := newLoadedConsole(t)

	t.Run("empty filter returns everything in order", func(t *testing.T) {
		panel.SetFilter("")
		rows := panel.FilteredRows()
		require.Len(t, rows, 3)
		assert.Equal(t, seeded[0].ID, rows[0].ID)
		assert.Equal(t, seeded[2].ID, rows[2].ID)
	})

	t.Run("filter is case-insensitive over the scalar fields", func(t *testing.T) {
		panel.SetFilter("gmail")
		rows := panel.FilteredRows()
		require.Len(t, rows, 1)
		assert.Equal(t, "Rahul Menon", rows[0].Name)
	})

	t.Run("matches any of the searchable fields", func(t *testing.T) {
		panel.SetFilter("txn-1003")
		rows := panel.FilteredRows()
		require.Len(t, rows, 1)
		assert.Equal(t, "Sneha Rao", rows[0].Name)

		panel.SetFilter("dr. pillai")
		rows = panel.FilteredRows()
		require.Len(t, rows, 1)
		assert.Equal(t, "Asha Nair", rows[0].Name)
	})

	t.Run("no match yields an empty slice", func(t *testing.T) {
		panel.SetFilter("zzz-no-such-registrant")
		assert.Empty(t, panel.FilteredRows())
	})
}

func TestConsole_StagedEditIsIsolated(t *testing.T) {
	panel, _, seeded := newLoadedConsole(t)

	staged, err := panel.Open(seeded[0].ID)
	require.NoError(t, err)

	staged.Registrant.Name = "Edited Name"
	require.NoError(t, staged.SetParticipant("coding", "participant2", "Ravi K"))

	// Canonical rows stay untouched until the save is confirmed.
	rows := panel.Rows()
	assert.Equal(t, "Asha Nair", rows[0].Name)
	assert.Equal(t, "Ravi Kumar", rows[0].EventDetails["coding"]["participant2"])
}

func TestStagedEdit_SlotStructureIsFixed(t *testing.T) {
	panel, _, seeded := newLoadedConsole(t)

	staged, err := panel.Open(seeded[0].ID)
	require.NoError(t, err)

	assert.Error(t, staged.SetParticipant("archery", "participant1", "X"))
	assert.Error(t, staged.SetParticipant("coding", "participant9", "X"))
	// Failed slot writes leave the snapshot alone.
	assert.Len(t, staged.Registrant.EventDetails["coding"], 2)
}

func TestConsole_SaveSplicesConfirmedRow(t *testing.T) {
	panel, store, seeded := newLoadedConsole(t)
	ctx := context.Background()

	staged, err := panel.Open(seeded[0].ID)
	require.NoError(t, err)
	staged.Registrant.Name = "Asha N"
	require.NoError(t, staged.SetParticipant("dance", "participant1", "Divya R"))

	require.NoError(t, panel.Save(ctx))
	assert.Nil(t, panel.Staged())

	rows := panel.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "Asha N", rows[0].Name)
	assert.Equal(t, "Divya R", rows[0].EventDetails["dance"]["participant1"])
	// Untouched event slots survived the full-map resend.
	assert.Equal(t, "Ravi Kumar", rows[0].EventDetails["coding"]["participant2"])

	// And the backend agrees.
	persisted, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Asha N", persisted[0].Name)
}

func TestConsole_SaveFailureLeavesStateAlone(t *testing.T) {
	panel, store, seeded := newLoadedConsole(t)
	ctx := context.Background()

	staged, err := panel.Open(seeded[1].ID)
	require.NoError(t, err)
	staged.Registrant.Name = "Never Applied"

	// The row vanishes behind the console's back.
	require.NoError(t, store.DeleteByID(ctx, seeded[1].ID))

	assert.ErrorIs(t, panel.Save(ctx), ErrNotFound)
	// The staged edit stays open and the local list is untouched.
	require.NotNil(t, panel.Staged())
	assert.Len(t, panel.Rows(), 3)
	assert.Equal(t, "Rahul Menon", panel.Rows()[1].Name)
}

func TestConsole_Delete(t *testing.T) {
	panel, store, seeded := newLoadedConsole(t)
	ctx := context.Background()

	_, err := panel.Open(seeded[1].ID)
	require.NoError(t, err)
	require.NoError(t, panel.Delete(ctx))

	assert.Nil(t, panel.Staged())
	rows := panel.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, seeded[0].ID, rows[0].ID)
	assert.Equal(t, seeded[2].ID, rows[1].ID)

	persisted, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, persisted, 2)
}

func TestConsole_DeleteFailureKeepsRow(t *testing.T) {
	panel, store, seeded := newLoadedConsole(t)
	ctx := context.Background()

	_, err := panel.Open(seeded[2].ID)
	require.NoError(t, err)
	require.NoError(t, store.DeleteByID(ctx, seeded[2].ID))

	assert.ErrorIs(t, panel.Delete(ctx), ErrNotFound)
	// Local state holds the stale row rather than half-applying the delete.
	assert.Len(t, panel.Rows(), 3)
	assert.NotNil(t, panel.Staged())
}

func TestConsole_OpenUnknownRow(t *testing.T) {
	panel, _, _ := newLoadedConsole(t)

	_, err := panel.Open("missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConsole_SaveWithoutOpenRow(t *testing.T) {
	panel, _, _ := newLoadedConsole(t)

	assert.ErrorIs(t, panel.Save(context.Background()), ErrNoStagedEdit)
	assert.ErrorIs(t, panel.Delete(context.Background()), ErrNoStagedEdit)
}
