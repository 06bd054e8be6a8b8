// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the core data structures shared between the
// stores, the composer, and the HTTP handlers.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Template is a reusable document skeleton: an ordered set of markdown
// section headers, each with optional placeholder text. Templates own
// their sections — deleting a template deletes its sections.
type Template struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Sections  []Section `json:"sections,omitempty"`
}

// Section is one heading unit of a template. Level is the markdown heading
// depth (1–6). OrderIndex defines the section's position in the composed
// document. ParentID is an advisory nesting pointer: stored and returned
// but never validated (no cycle or ownership checks).
type Section struct {
	ID          uuid.UUID  `json:"id"`
	TemplateID  uuid.UUID  `json:"template_id"`
	Level       int        `json:"level"`
	Title       string     `json:"title"`
	Placeholder string     `json:"placeholder"`
	OrderIndex  int        `json:"order_index"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
}
