// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package compose builds the final markdown document for a prompt from a
// template's sections and the user's per-section content. Markdown is a
// pure function: identical inputs always produce identical output.
package compose

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"promptpress/internal/models"
)

// Heading levels outside this range are clamped. Create-template
// validation rejects them earlier; the clamp keeps the output well-formed
// for rows written before that validation existed.
const (
	minLevel = 1
	maxLevel = 6
)

// Markdown composes sections and user content into a single markdown
// document. Sections are ordered by OrderIndex (stable: ties keep their
// relative input order, which is unspecified upstream and deliberately not
// redefined here). Each section emits a header line; its body is the
// user's content when non-blank, else the section placeholder when
// non-blank, else nothing. A blank separator line follows every section.
// Entries in userContent whose key matches no section are ignored.
func Markdown(sections []models.Section, userContent map[uuid.UUID]string) string {
	ordered := make([]models.Section, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OrderIndex < ordered[j].OrderIndex
	})

	var lines []string
	for _, sec := range ordered {
		lines = append(lines, strings.Repeat("#", clampLevel(sec.Level))+" "+sec.Title)

		if body, ok := userContent[sec.ID]; ok && strings.TrimSpace(body) != "" {
			lines = append(lines, body)
		} else if strings.TrimSpace(sec.Placeholder) != "" {
			lines = append(lines, sec.Placeholder)
		}

		lines = append(lines, "")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func clampLevel(level int) int {
	if level < minLevel {
		return minLevel
	}
	if level > maxLevel {
		return maxLevel
	}
	return level
}
