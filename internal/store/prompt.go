// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"promptpress/internal/models"
)

// PromptStore handles all prompt-related database operations. A prompt's
// generated content is written once at creation and never updated.
type PromptStore struct {
	db *sql.DB
}

// NewPromptStore creates a new PromptStore with the given database connection.
func NewPromptStore(db *sql.DB) *PromptStore {
	return &PromptStore{db: db}
}

// Create inserts a prompt and its per-section contents atomically and
// returns the stored prompt with generated IDs.
func (s *PromptStore) Create(p *models.Prompt) (*models.Prompt, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("create prompt begin tx: %w", err)
	}
	defer tx.Rollback()

	result := &models.Prompt{}
	err = tx.QueryRow(`
		INSERT INTO prompts (template_id, title, generated_content)
		VALUES ($1, $2, $3)
		RETURNING id, template_id, title, generated_content, created_at
	`, p.TemplateID, p.Title, p.GeneratedContent).Scan(
		&result.ID, &result.TemplateID, &result.Title,
		&result.GeneratedContent, &result.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create prompt: %w", err)
	}

	for _, c := range p.Contents {
		var stored models.PromptContent
		err := tx.QueryRow(`
			INSERT INTO prompt_contents (prompt_id, section_id, content)
			VALUES ($1, $2, $3)
			RETURNING id, prompt_id, section_id, content
		`, result.ID, c.SectionID, c.Content).Scan(
			&stored.ID, &stored.PromptID, &stored.SectionID, &stored.Content,
		)
		if err != nil {
			return nil, fmt.Errorf("insert prompt content: %w", err)
		}
		result.Contents = append(result.Contents, stored)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create prompt commit: %w", err)
	}
	return result, nil
}

// List returns prompt summaries, newest first, each carrying the status of
// its generation response when one exists.
func (s *PromptStore) List() ([]models.PromptSummary, error) {
	rows, err := s.db.Query(`
		SELECT p.id, p.title, p.created_at, r.status
		FROM prompts p
		LEFT JOIN responses r ON r.prompt_id = p.id
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	defer rows.Close()

	var summaries []models.PromptSummary
	for rows.Next() {
		var sum models.PromptSummary
		var status sql.NullString
		if err := rows.Scan(&sum.ID, &sum.Title, &sum.CreatedAt, &status); err != nil {
			return nil, fmt.Errorf("scan prompt summary: %w", err)
		}
		if status.Valid {
			st := models.ResponseStatus(status.String)
			sum.HasResponse = true
			sum.ResponseStatus = &st
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// FindByID retrieves a prompt with its contents. Each content carries the
// section row it was written against when that section still exists; the
// join is LEFT because sections may have been deleted with their template.
// Returns nil if not found.
func (s *PromptStore) FindByID(id uuid.UUID) (*models.Prompt, error) {
	p := &models.Prompt{}
	err := s.db.QueryRow(`
		SELECT id, template_id, title, generated_content, created_at
		FROM prompts WHERE id = $1
	`, id).Scan(&p.ID, &p.TemplateID, &p.Title, &p.GeneratedContent, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find prompt by id: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT c.id, c.prompt_id, c.section_id, c.content,
		       s.id, s.template_id, s.level, s.title, s.placeholder, s.order_index, s.parent_id
		FROM prompt_contents c
		LEFT JOIN template_sections s ON s.id = c.section_id
		WHERE c.prompt_id = $1
		ORDER BY s.order_index NULLS LAST
	`, id)
	if err != nil {
		return nil, fmt.Errorf("list prompt contents: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.PromptContent
		var secID, secTemplateID *uuid.UUID
		var secLevel, secOrder *int
		var secTitle, secPlaceholder *string
		var secParent *uuid.UUID
		if err := rows.Scan(
			&c.ID, &c.PromptID, &c.SectionID, &c.Content,
			&secID, &secTemplateID, &secLevel, &secTitle, &secPlaceholder, &secOrder, &secParent,
		); err != nil {
			return nil, fmt.Errorf("scan prompt content: %w", err)
		}
		if secID != nil {
			c.Section = &models.Section{
				ID:          *secID,
				TemplateID:  *secTemplateID,
				Level:       *secLevel,
				Title:       *secTitle,
				Placeholder: *secPlaceholder,
				OrderIndex:  *secOrder,
				ParentID:    secParent,
			}
		}
		p.Contents = append(p.Contents, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a prompt; its contents and response cascade. Returns
// false when no prompt with the given ID exists.
func (s *PromptStore) Delete(id uuid.UUID) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM prompts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete prompt: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

// Count returns the total number of prompts.
func (s *PromptStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM prompts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count prompts: %w", err)
	}
	return count, nil
}
