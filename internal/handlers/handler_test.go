// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL is unavailable.
// The preview cache is left nil so tests never need Valkey.
package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"promptpress/internal/ai"
	"promptpress/internal/database"
	"promptpress/internal/generation"
	"promptpress/internal/store"
)

// mockAIProvider implements ai.Provider for handler tests.
type mockAIProvider struct {
	name     string
	response string
	err      error
}

func (m *mockAIProvider) Name() string { return m.name }
func (m *mockAIProvider) Generate(_ context.Context, _, _ string) (string, error) {
	return m.response, m.err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "promptpress")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "promptpress")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB        *sql.DB
	Templates *store.TemplateStore
	Prompts   *store.PromptStore
	Responses *store.ResponseStore
	Provider  *mockAIProvider
	Submitter *generation.Submitter
	Router    chi.Router
}

// newTestEnv creates a complete test environment. Test rows use titles
// prefixed "ht-" and are removed on cleanup.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)

	provider := &mockAIProvider{name: "mock", response: "generated text"}
	registry := ai.NewRegistry("mock", nil)
	registry.Register("mock", provider)

	templates := store.NewTemplateStore(db)
	prompts := store.NewPromptStore(db)
	responses := store.NewResponseStore(db)
	submitter := generation.NewSubmitter(registry, responses, time.Second)

	api := NewAPI(templates, prompts, responses, submitter, nil)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Route("/templates", func(r chi.Router) {
			r.Post("/", api.TemplateCreate)
			r.Get("/", api.TemplateList)
			r.Get("/{id}", api.TemplateGet)
			r.Put("/{id}", api.TemplateUpdate)
			r.Delete("/{id}", api.TemplateDelete)
		})
		r.Route("/prompts", func(r chi.Router) {
			r.Post("/", api.PromptCreate)
			r.Get("/", api.PromptList)
			r.Get("/{id}", api.PromptGet)
			r.Delete("/{id}", api.PromptDelete)
			r.Get("/{id}/preview", api.PromptPreview)
			r.Post("/{id}/response", api.ResponseSubmit)
			r.Get("/{id}/response", api.ResponseGet)
		})
	})

	t.Cleanup(func() {
		db.Exec(`DELETE FROM prompts WHERE title LIKE 'ht-%'`)
		db.Exec(`DELETE FROM templates WHERE title LIKE 'ht-%'`)
	})

	return &testEnv{
		DB:        db,
		Templates: templates,
		Prompts:   prompts,
		Responses: responses,
		Provider:  provider,
		Submitter: submitter,
		Router:    r,
	}
}

// doJSON performs a request against the test router with an optional JSON body.
func (env *testEnv) doJSON(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	env.Router.ServeHTTP(rr, req)
	return rr
}

// decodeBody unmarshals a recorded JSON response into dst.
func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(dst); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func mustStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("status: got %d, want %d (body: %s)", rr.Code, want, rr.Body.String())
	}
}
