package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nerrad567/gadget-armoury/internal/auth"
	"github.com/nerrad567/gadget-armoury/internal/gadget"
	"github.com/nerrad567/gadget-armoury/internal/infrastructure/config"
	"github.com/nerrad567/gadget-armoury/internal/infrastructure/logging"
)

const testSecret = "test-secret-key-at-least-32-characters-long"

// testServer creates a Server wired to a temporary SQLite database and
// returns it alongside an httptest.Server running its router.
func testServer(t *testing.T) (*httptest.Server, *Server) {
	t.Helper()

	db := setupTestDB(t)
	codes := gadget.NewCodeStore()
	svc := gadget.NewService(gadget.NewSQLiteRepository(db), codes)
	users := auth.NewUserRepository(db)

	log := logging.New(config.LoggingConfig{Level: "error", Format: "text", Output: "stdout"}, "test")

	srv, err := New(Deps{
		Config: config.APIConfig{
			Host: "127.0.0.1",
			Port: 0,
			Timeouts: config.APITimeoutConfig{
				Read:  5,
				Write: 5,
				Idle:  5,
			},
		},
		Security: config.SecurityConfig{
			JWT: config.JWTConfig{
				Secret:         testSecret,
				AccessTokenTTL: 60,
			},
		},
		Logger:  log,
		Gadgets: svc,
		Codes:   codes,
		Users:   users,
		Version: "test",
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	// Initialise hub for tests without starting the listener
	srv.hub = NewHub(log)
	go srv.hub.Run(context.Background())

	ts := httptest.NewServer(srv.buildRouter())
	t.Cleanup(ts.Close)

	return ts, srv
}

// setupTestDB creates a temp-file SQLite database with the full schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	f, err := os.CreateTemp("", "api-test-*.db")
	if err != nil {
		t.Fatalf("creating temp db: %v", err)
	}
	dbPath := f.Name()
	f.Close()
	t.Cleanup(func() { os.Remove(dbPath) })

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=ON")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	schema := `
		CREATE TABLE users (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		) STRICT;

		CREATE TABLE gadgets (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			status TEXT NOT NULL DEFAULT 'Available',
			decommissioned_at TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		) STRICT;
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("applying schema: %v", err)
	}

	return db
}

// doRequest performs an HTTP request against the test server and decodes
// the JSON response body into out (if non-nil).
func doRequest(t *testing.T, method, url, token string, body, out any) *http.Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshalling request body: %v", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decoding response body: %v", err)
		}
	}

	return resp
}

// registerAndLogin creates a user and returns a valid bearer token.
func registerAndLogin(t *testing.T, ts *httptest.Server, username string) string {
	t.Helper()

	creds := map[string]string{"username": username, "password": "password123"}

	resp := doRequest(t, http.MethodPost, ts.URL+"/auth/register", "", creds, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register returned %d, want 201", resp.StatusCode)
	}

	var login struct {
		Token string `json:"token"`
	}
	resp = doRequest(t, http.MethodPost, ts.URL+"/auth/login", "", creds, &login)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login returned %d, want 200", resp.StatusCode)
	}
	if login.Token == "" {
		t.Fatal("login returned empty token")
	}

	return login.Token
}

// createGadget creates a gadget through the API and returns it.
func createGadget(t *testing.T, ts *httptest.Server, token string) gadget.Gadget {
	t.Helper()

	var g gadget.Gadget
	resp := doRequest(t, http.MethodPost, ts.URL+"/gadgets", token, nil, &g)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create gadget returned %d, want 201", resp.StatusCode)
	}
	return g
}

// gadgetURL builds a gadget subresource URL.
func gadgetURL(ts *httptest.Server, id, suffix string) string {
	return fmt.Sprintf("%s/gadgets/%s%s", ts.URL, id, suffix)
}
