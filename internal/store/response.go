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

// ResponseStore tracks the lifecycle of generation responses: one record
// per prompt, created pending and finished exactly once by the background
// submitter. The store never calls the external service itself.
type ResponseStore struct {
	db *sql.DB
}

// NewResponseStore creates a new ResponseStore with the given database connection.
func NewResponseStore(db *sql.DB) *ResponseStore {
	return &ResponseStore{db: db}
}

// Begin creates the pending response record for a prompt, or returns the
// existing one unchanged. The insert uses ON CONFLICT DO NOTHING against
// the unique prompt_id constraint, so two concurrent submissions for the
// same prompt can never create two records — the loser of the race fetches
// the winner's row.
func (s *ResponseStore) Begin(promptID uuid.UUID) (*models.Response, error) {
	r := &models.Response{}
	err := s.db.QueryRow(`
		INSERT INTO responses (prompt_id, response_content, status)
		VALUES ($1, '', 'pending')
		ON CONFLICT (prompt_id) DO NOTHING
		RETURNING id, prompt_id, response_content, status, created_at, completed_at
	`, promptID).Scan(
		&r.ID, &r.PromptID, &r.Content, &r.Status, &r.CreatedAt, &r.CompletedAt,
	)
	if err == sql.ErrNoRows {
		// Conflict: a record already exists for this prompt.
		existing, err := s.FindByPromptID(promptID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("begin response: conflict but no row for prompt %s", promptID)
		}
		return existing, nil
	}
	if err != nil {
		return nil, fmt.Errorf("begin response: %w", err)
	}
	return r, nil
}

// Complete finishes a response record with the given payload and terminal
// status, stamping completed_at. Completing an already-terminal record
// overwrites it — the operation is an idempotent overwrite, not a guarded
// transition. Returns nil if no record with the given ID exists.
func (s *ResponseStore) Complete(id uuid.UUID, content string, status models.ResponseStatus) (*models.Response, error) {
	if !status.IsTerminal() {
		return nil, fmt.Errorf("complete response: status must be %q or %q, got %q",
			models.ResponseStatusCompleted, models.ResponseStatusError, status)
	}

	r := &models.Response{}
	err := s.db.QueryRow(`
		UPDATE responses
		SET response_content = $1, status = $2, completed_at = NOW()
		WHERE id = $3
		RETURNING id, prompt_id, response_content, status, created_at, completed_at
	`, content, status, id).Scan(
		&r.ID, &r.PromptID, &r.Content, &r.Status, &r.CreatedAt, &r.CompletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("complete response: %w", err)
	}
	return r, nil
}

// FindByPromptID retrieves the response record for a prompt. Returns nil
// if the prompt has never been submitted.
func (s *ResponseStore) FindByPromptID(promptID uuid.UUID) (*models.Response, error) {
	r := &models.Response{}
	err := s.db.QueryRow(`
		SELECT id, prompt_id, response_content, status, created_at, completed_at
		FROM responses WHERE prompt_id = $1
	`, promptID).Scan(
		&r.ID, &r.PromptID, &r.Content, &r.Status, &r.CreatedAt, &r.CompletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find response by prompt id: %w", err)
	}
	return r, nil
}
