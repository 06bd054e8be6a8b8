// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"promptpress/internal/models"
)

// sectionRequest is one section of a template payload.
type sectionRequest struct {
	Level       int        `json:"level"`
	Title       string     `json:"title"`
	Placeholder string     `json:"placeholder"`
	OrderIndex  int        `json:"order_index"`
	ParentID    *uuid.UUID `json:"parent_id"`
}

// templateRequest is the payload for creating or updating a template.
type templateRequest struct {
	Title    string           `json:"title"`
	Sections []sectionRequest `json:"sections"`
}

func (in *templateRequest) sections() []models.Section {
	sections := make([]models.Section, 0, len(in.Sections))
	for _, s := range in.Sections {
		sections = append(sections, models.Section{
			Level:       s.Level,
			Title:       s.Title,
			Placeholder: s.Placeholder,
			OrderIndex:  s.OrderIndex,
			ParentID:    s.ParentID,
		})
	}
	return sections
}

// TemplateCreate handles POST /api/templates.
func (a *API) TemplateCreate(w http.ResponseWriter, r *http.Request) {
	var in templateRequest
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateTemplate(&in); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	tpl, err := a.templates.Create(in.Title, in.sections())
	if err != nil {
		slog.Error("create template failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create template.")
		return
	}

	writeJSON(w, http.StatusCreated, tpl)
}

// TemplateList handles GET /api/templates. Sections are not included; fetch
// a single template for the full structure.
func (a *API) TemplateList(w http.ResponseWriter, r *http.Request) {
	templates, err := a.templates.List()
	if err != nil {
		slog.Error("list templates failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list templates.")
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

// TemplateGet handles GET /api/templates/{id}.
func (a *API) TemplateGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid template ID.")
		return
	}

	tpl, err := a.templates.FindByID(id)
	if err != nil {
		slog.Error("find template failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load template.")
		return
	}
	if tpl == nil {
		writeError(w, http.StatusNotFound, "Template not found.")
		return
	}

	writeJSON(w, http.StatusOK, tpl)
}

// TemplateUpdate handles PUT /api/templates/{id}. The payload fully
// replaces the template's sections; previously composed prompts keep their
// frozen documents.
func (a *API) TemplateUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid template ID.")
		return
	}

	var in templateRequest
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateTemplate(&in); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	tpl, err := a.templates.Update(id, in.Title, in.sections())
	if err != nil {
		slog.Error("update template failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update template.")
		return
	}
	if tpl == nil {
		writeError(w, http.StatusNotFound, "Template not found.")
		return
	}

	writeJSON(w, http.StatusOK, tpl)
}

// TemplateDelete handles DELETE /api/templates/{id}. Sections go with the
// template; prompts composed from it are untouched.
func (a *API) TemplateDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid template ID.")
		return
	}

	deleted, err := a.templates.Delete(id)
	if err != nil {
		slog.Error("delete template failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete template.")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Template not found.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
