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

// TemplateStore handles all template and section database operations.
// Multi-row writes (a template plus its sections) run inside a single
// transaction so partial writes are never observable.
type TemplateStore struct {
	db *sql.DB
}

// NewTemplateStore creates a new TemplateStore with the given database connection.
func NewTemplateStore(db *sql.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

// Create inserts a template and its sections atomically and returns the
// stored template with all generated IDs and timestamps.
func (s *TemplateStore) Create(title string, sections []models.Section) (*models.Template, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("create template begin tx: %w", err)
	}
	defer tx.Rollback()

	t := &models.Template{}
	err = tx.QueryRow(`
		INSERT INTO templates (title)
		VALUES ($1)
		RETURNING id, title, created_at, updated_at
	`, title).Scan(&t.ID, &t.Title, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}

	t.Sections, err = insertSections(tx, t.ID, sections)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create template commit: %w", err)
	}
	return t, nil
}

// List returns all templates, newest first, without their sections.
func (s *TemplateStore) List() ([]models.Template, error) {
	rows, err := s.db.Query(`
		SELECT id, title, created_at, updated_at
		FROM templates
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var templates []models.Template
	for rows.Next() {
		var t models.Template
		if err := rows.Scan(&t.ID, &t.Title, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// FindByID retrieves a template with its sections ordered by order index.
// Returns nil if not found.
func (s *TemplateStore) FindByID(id uuid.UUID) (*models.Template, error) {
	t := &models.Template{}
	err := s.db.QueryRow(`
		SELECT id, title, created_at, updated_at
		FROM templates WHERE id = $1
	`, id).Scan(&t.ID, &t.Title, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find template by id: %w", err)
	}

	t.Sections, err = s.sectionsForTemplate(id)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Update replaces a template's title and its full section set atomically.
// The reference behavior is full replacement: existing sections are deleted
// and the new set inserted. Returns nil if the template does not exist.
func (s *TemplateStore) Update(id uuid.UUID, title string, sections []models.Section) (*models.Template, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("update template begin tx: %w", err)
	}
	defer tx.Rollback()

	t := &models.Template{}
	err = tx.QueryRow(`
		UPDATE templates SET title = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, title, created_at, updated_at
	`, title, id).Scan(&t.ID, &t.Title, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update template: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM template_sections WHERE template_id = $1`, id); err != nil {
		return nil, fmt.Errorf("update template clear sections: %w", err)
	}

	t.Sections, err = insertSections(tx, id, sections)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("update template commit: %w", err)
	}
	return t, nil
}

// Delete removes a template; its sections cascade. Prompts generated from
// the template are untouched and keep their frozen content. Returns false
// when no template with the given ID exists.
func (s *TemplateStore) Delete(id uuid.UUID) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM templates WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete template: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

// Count returns the total number of templates.
func (s *TemplateStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM templates`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count templates: %w", err)
	}
	return count, nil
}

// sectionsForTemplate loads a template's sections ordered by order index.
// Rows sharing an order index come back in storage order; the composer's
// stable sort keeps whatever order it is handed.
func (s *TemplateStore) sectionsForTemplate(templateID uuid.UUID) ([]models.Section, error) {
	rows, err := s.db.Query(`
		SELECT id, template_id, level, title, placeholder, order_index, parent_id
		FROM template_sections
		WHERE template_id = $1
		ORDER BY order_index
	`, templateID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	var sections []models.Section
	for rows.Next() {
		var sec models.Section
		if err := rows.Scan(
			&sec.ID, &sec.TemplateID, &sec.Level, &sec.Title,
			&sec.Placeholder, &sec.OrderIndex, &sec.ParentID,
		); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		sections = append(sections, sec)
	}
	return sections, rows.Err()
}

// insertSections inserts the given sections for a template inside tx and
// returns them with generated IDs, preserving input order.
func insertSections(tx *sql.Tx, templateID uuid.UUID, sections []models.Section) ([]models.Section, error) {
	var out []models.Section
	for _, sec := range sections {
		var stored models.Section
		err := tx.QueryRow(`
			INSERT INTO template_sections (template_id, level, title, placeholder, order_index, parent_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, template_id, level, title, placeholder, order_index, parent_id
		`, templateID, sec.Level, sec.Title, sec.Placeholder, sec.OrderIndex, sec.ParentID).Scan(
			&stored.ID, &stored.TemplateID, &stored.Level, &stored.Title,
			&stored.Placeholder, &stored.OrderIndex, &stored.ParentID,
		)
		if err != nil {
			return nil, fmt.Errorf("insert section: %w", err)
		}
		out = append(out, stored)
	}
	return out, nil
}
