// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Prompt is a generated markdown document produced by composing a template
// with user-supplied section content. GeneratedContent is an immutable
// snapshot: it is never recomputed if the source template later changes,
// and the prompt survives deletion of its template (TemplateID then points
// at a template that no longer exists — there is no FK blocking this).
type Prompt struct {
	ID               uuid.UUID       `json:"id"`
	TemplateID       uuid.UUID       `json:"template_id"`
	Title            string          `json:"title"`
	GeneratedContent string          `json:"generated_content"`
	CreatedAt        time.Time       `json:"created_at"`
	Contents         []PromptContent `json:"contents,omitempty"`
}

// PromptContent holds the raw user text supplied for one section of one
// prompt. Section carries the section row as it existed when the prompt
// detail was loaded; it is nil when the section has since been deleted.
type PromptContent struct {
	ID        uuid.UUID `json:"id"`
	PromptID  uuid.UUID `json:"prompt_id"`
	SectionID uuid.UUID `json:"section_id"`
	Content   string    `json:"content"`
	Section   *Section  `json:"section,omitempty"`
}

// PromptSummary is the list-view projection of a prompt, including the
// status of its generation response when one exists.
type PromptSummary struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	CreatedAt      time.Time       `json:"created_at"`
	HasResponse    bool            `json:"has_response"`
	ResponseStatus *ResponseStatus `json:"response_status,omitempty"`
}
