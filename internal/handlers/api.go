// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the prompt-template API.
// All endpoints exchange JSON; handlers receive their dependencies through
// the API struct.
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"promptpress/internal/cache"
	"promptpress/internal/generation"
	"promptpress/internal/store"
)

// maxRequestBody caps incoming JSON bodies. Section contents are bounded
// well below this; anything larger is abuse.
const maxRequestBody = 1 << 20 // 1 MiB

// API groups the JSON API handlers and their dependencies.
type API struct {
	templates *store.TemplateStore
	prompts   *store.PromptStore
	responses *store.ResponseStore
	submitter *generation.Submitter
	previews  *cache.PreviewCache
}

// NewAPI creates the handler group. previews may be nil when Valkey is not
// configured; previews are then rendered fresh on every request.
func NewAPI(templates *store.TemplateStore, prompts *store.PromptStore, responses *store.ResponseStore, submitter *generation.Submitter, previews *cache.PreviewCache) *API {
	return &API{
		templates: templates,
		prompts:   prompts,
		responses: responses,
		submitter: submitter,
		previews:  previews,
	}
}

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeJSON reads the request body into dst, rejecting unknown fields and
// oversized bodies.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// idParam parses the {id} URL parameter as a UUID.
func idParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}
