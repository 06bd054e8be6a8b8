// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"promptpress/internal/database"
	"promptpress/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "promptpress")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "promptpress")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	// Run migrations to ensure the schema is current.
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// cleanTemplates removes test templates by title. Call in t.Cleanup().
func cleanTemplates(t *testing.T, db *sql.DB, titles ...string) {
	t.Helper()
	for _, title := range titles {
		db.Exec("DELETE FROM templates WHERE title = $1", title)
	}
}

// cleanPrompts removes test prompts by title. Call in t.Cleanup().
func cleanPrompts(t *testing.T, db *sql.DB, titles ...string) {
	t.Helper()
	for _, title := range titles {
		db.Exec("DELETE FROM prompts WHERE title = $1", title)
	}
}

// testSections builds a small ordered section set for template tests.
func testSections() []models.Section {
	return []models.Section{
		{Level: 1, Title: "Intro", Placeholder: "Say hello.", OrderIndex: 1},
		{Level: 2, Title: "Body", Placeholder: "", OrderIndex: 2},
		{Level: 2, Title: "Outro", Placeholder: "Wrap up.", OrderIndex: 3},
	}
}

// createTestTemplate inserts a template with the default section set and
// registers cleanup.
func createTestTemplate(t *testing.T, db *sql.DB, s *TemplateStore) *models.Template {
	t.Helper()

	title := "Test Template " + uuid.NewString()[:8]
	t.Cleanup(func() { cleanTemplates(t, db, title) })

	tmpl, err := s.Create(title, testSections())
	if err != nil {
		t.Fatalf("create test template: %v", err)
	}
	return tmpl
}

// createTestPrompt inserts a prompt for the given template and registers cleanup.
func createTestPrompt(t *testing.T, db *sql.DB, ps *PromptStore, tmpl *models.Template) *models.Prompt {
	t.Helper()

	title := "Test Prompt " + uuid.NewString()[:8]
	t.Cleanup(func() { cleanPrompts(t, db, title) })

	var contents []models.PromptContent
	if len(tmpl.Sections) > 0 {
		contents = append(contents, models.PromptContent{
			SectionID: tmpl.Sections[0].ID,
			Content:   "user supplied intro",
		})
	}

	p, err := ps.Create(&models.Prompt{
		TemplateID:       tmpl.ID,
		Title:            title,
		GeneratedContent: "# Intro\nuser supplied intro",
		Contents:         contents,
	})
	if err != nil {
		t.Fatalf("create test prompt: %v", err)
	}
	return p
}
