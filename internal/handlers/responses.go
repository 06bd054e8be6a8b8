// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
)

// ResponseSubmit handles POST /api/prompts/{id}/response. It creates (or
// reuses) the prompt's response record, kicks off the external generation
// call in the background, and returns 202 with the record as it stands.
// Poll GET on the same path for the outcome.
func (a *API) ResponseSubmit(w http.ResponseWriter, r *http.Request) {
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

	record, err := a.submitter.Dispatch(prompt)
	if err != nil {
		slog.Error("dispatch generation failed", "prompt_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to submit prompt for generation.")
		return
	}

	writeJSON(w, http.StatusAccepted, record)
}

// ResponseGet handles GET /api/prompts/{id}/response.
func (a *API) ResponseGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid prompt ID.")
		return
	}

	record, err := a.responses.FindByPromptID(id)
	if err != nil {
		slog.Error("find response failed", "prompt_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load response.")
		return
	}
	if record == nil {
		writeError(w, http.StatusNotFound, "Response not found.")
		return
	}

	writeJSON(w, http.StatusOK, record)
}
