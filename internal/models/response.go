// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ResponseStatus is the lifecycle state of a generation response.
// A record starts pending and transitions exactly once into a terminal
// state; completed and error are both terminal.
type ResponseStatus string

const (
	ResponseStatusPending   ResponseStatus = "pending"
	ResponseStatusCompleted ResponseStatus = "completed"
	ResponseStatusError     ResponseStatus = "error"
)

// IsTerminal reports whether the status is a final state.
func (s ResponseStatus) IsTerminal() bool {
	return s == ResponseStatusCompleted || s == ResponseStatusError
}

// Response tracks the outcome of submitting a prompt to the external
// generative-text service. At most one exists per prompt (enforced by a
// unique constraint on prompt_id). CompletedAt is nil while the record is
// pending and is set when the record leaves pending; on error the content
// holds the failure description instead of generated text.
type Response struct {
	ID          uuid.UUID      `json:"id"`
	PromptID    uuid.UUID      `json:"prompt_id"`
	Content     string         `json:"response_content"`
	Status      ResponseStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}
