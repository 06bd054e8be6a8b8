// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"promptpress/internal/compose"
	"promptpress/internal/markdown"
	"promptpress/internal/models"
)

// contentRequest is the user text for one section of a prompt payload.
type contentRequest struct {
	SectionID uuid.UUID `json:"section_id"`
	Content   string    `json:"content"`
}

// promptRequest is the payload for creating a prompt.
type promptRequest struct {
	TemplateID uuid.UUID        `json:"template_id"`
	Title      string           `json:"title"`
	Contents   []contentRequest `json:"contents"`
}

// PromptCreate handles POST /api/prompts. The template's sections and the
// supplied contents are composed into a markdown document, which is stored
// on the prompt and never recomputed.
func (a *API) PromptCreate(w http.ResponseWriter, r *http.Request) {
	var in promptRequest
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validatePrompt(&in); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	tpl, err := a.templates.FindByID(in.TemplateID)
	if err != nil {
		slog.Error("find template failed", "id", in.TemplateID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load template.")
		return
	}
	if tpl == nil {
		writeError(w, http.StatusNotFound, "Template not found.")
		return
	}

	userContent := make(map[uuid.UUID]string, len(in.Contents))
	contents := make([]models.PromptContent, 0, len(in.Contents))
	for _, c := range in.Contents {
		userContent[c.SectionID] = c.Content
		contents = append(contents, models.PromptContent{
			SectionID: c.SectionID,
			Content:   c.Content,
		})
	}

	prompt := &models.Prompt{
		TemplateID:       tpl.ID,
		Title:            in.Title,
		GeneratedContent: compose.Markdown(tpl.Sections, userContent),
		Contents:         contents,
	}

	created, err := a.prompts.Create(prompt)
	if err != nil {
		slog.Error("create prompt failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create prompt.")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// PromptList handles GET /api/prompts.
func (a *API) PromptList(w http.ResponseWriter, r *http.Request) {
	prompts, err := a.prompts.List()
	if err != nil {
		slog.Error("list prompts failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list prompts.")
		return
	}
	writeJSON(w, http.StatusOK, prompts)
}

// PromptGet handles GET /api/prompts/{id}.
func (a *API) PromptGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid prompt ID.")
		return
	}

	prompt, err := a.prompts.FindByID(id)
	if err != nil {
		slog.Error("find prompt failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load prompt.")
		return
	}
	if prompt == nil {
		writeError(w, http.StatusNotFound, "Prompt not found.")
		return
	}

	writeJSON(w, http.StatusOK, prompt)
}

// PromptDelete handles DELETE /api/prompts/{id}. Contents and any response
// record cascade; the cached preview is invalidated.
func (a *API) PromptDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid prompt ID.")
		return
	}

	deleted, err := a.prompts.Delete(id)
	if err != nil {
		slog.Error("delete prompt failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete prompt.")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Prompt not found.")
		return
	}

	if a.previews != nil {
		a.previews.Invalidate(r.Context(), id)
	}

	w.WriteHeader(http.StatusNoContent)
}

// PromptPreview handles GET /api/prompts/{id}/preview, returning the
// prompt's composed document rendered as HTML. The rendering is cached:
// the document is frozen, so the cache never goes stale before its TTL.
func (a *API) PromptPreview(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid prompt ID.")
		return
	}

	if a.previews != nil {
		if html, ok := a.previews.Get(r.Context(), id); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(html)
			return
		}
	}

	prompt, err := a.prompts.FindByID(id)
	if err != nil {
		slog.Error("find prompt failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load prompt.")
		return
	}
	if prompt == nil {
		writeError(w, http.StatusNotFound, "Prompt not found.")
		return
	}

	html, err := markdown.ToHTML(prompt.GeneratedContent)
	if err != nil {
		slog.Error("render preview failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render preview.")
		return
	}

	if a.previews != nil {
		a.previews.Set(r.Context(), id, []byte(html))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}
