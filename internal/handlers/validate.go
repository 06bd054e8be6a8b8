package handlers

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validation limits for template and prompt fields.
const (
	maxTitleLen        = 300
	maxSectionTitleLen = 300
	maxPlaceholderLen  = 10_000
	maxContentLen      = 100_000

	minHeadingLevel = 1
	maxHeadingLevel = 6
)

// validateTemplate checks a template payload and returns the first error found.
func validateTemplate(in *templateRequest) string {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	for i, s := range in.Sections {
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Sprintf("Section %d: title is required.", i+1)
		}
		if utf8.RuneCountInString(s.Title) > maxSectionTitleLen {
			return fmt.Sprintf("Section %d: title is too long (max 300 characters).", i+1)
		}
		if s.Level < minHeadingLevel || s.Level > maxHeadingLevel {
			return fmt.Sprintf("Section %d: level must be between 1 and 6.", i+1)
		}
		if utf8.RuneCountInString(s.Placeholder) > maxPlaceholderLen {
			return fmt.Sprintf("Section %d: placeholder is too long (max 10,000 characters).", i+1)
		}
	}
	return ""
}

// validatePrompt checks a prompt payload and returns the first error found.
func validatePrompt(in *promptRequest) string {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	for i, c := range in.Contents {
		if utf8.RuneCountInString(c.Content) > maxContentLen {
			return fmt.Sprintf("Content %d: body is too long (max 100,000 characters).", i+1)
		}
	}
	return ""
}
