package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data: one sample
// template with a handful of sections, so the API has something to compose
// against on a fresh install. No-op if any template already exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM templates").Scan(&count); err != nil {
		return fmt.Errorf("seed check templates: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin tx: %w", err)
	}
	defer tx.Rollback()

	var templateID string
	err = tx.QueryRow(`
		INSERT INTO templates (title) VALUES ($1) RETURNING id
	`, "Product Brief").Scan(&templateID)
	if err != nil {
		return fmt.Errorf("seed insert template: %w", err)
	}

	sections := []struct {
		level       int
		title       string
		placeholder string
		orderIndex  int
	}{
		{1, "Product Brief", "", 1},
		{2, "Problem", "Describe the user problem this product solves.", 2},
		{2, "Audience", "Who is this for?", 3},
		{2, "Proposed Solution", "Outline the solution at a high level.", 4},
		{3, "Success Metrics", "How will we know it worked?", 5},
	}

	for _, s := range sections {
		_, err := tx.Exec(`
			INSERT INTO template_sections (template_id, level, title, placeholder, order_index)
			VALUES ($1, $2, $3, $4, $5)
		`, templateID, s.level, s.title, s.placeholder, s.orderIndex)
		if err != nil {
			return fmt.Errorf("seed insert section: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with sample template", "title", "Product Brief")
	return nil
}
