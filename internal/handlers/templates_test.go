// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"

	"promptpress/internal/models"
)

func testTemplateBody(title string) map[string]any {
	return map[string]any{
		"title": title,
		"sections": []map[string]any{
			{"level": 1, "title": "Intro", "placeholder": "Introduce the topic.", "order_index": 1},
			{"level": 2, "title": "Body", "placeholder": "", "order_index": 2},
			{"level": 2, "title": "Outro", "placeholder": "Wrap up.", "order_index": 3},
		},
	}
}

func TestTemplateCreateAndGet(t *testing.T) {
	env := newTestEnv(t)

	rr := env.doJSON(t, "POST", "/api/templates", testTemplateBody("ht-create"))
	mustStatus(t, rr, http.StatusCreated)

	var created models.Template
	decodeBody(t, rr, &created)
	if created.Title != "ht-create" {
		t.Errorf("title: got %q", created.Title)
	}
	if len(created.Sections) != 3 {
		t.Fatalf("sections: got %d, want 3", len(created.Sections))
	}

	rr = env.doJSON(t, "GET", "/api/templates/"+created.ID.String(), nil)
	mustStatus(t, rr, http.StatusOK)

	var fetched models.Template
	decodeBody(t, rr, &fetched)
	if fetched.ID != created.ID {
		t.Errorf("fetched wrong template: %s", fetched.ID)
	}
	// Sections come back in composition order.
	titles := make([]string, 0, len(fetched.Sections))
	for _, s := range fetched.Sections {
		titles = append(titles, s.Title)
	}
	if strings.Join(titles, ",") != "Intro,Body,Outro" {
		t.Errorf("section order: got %v", titles)
	}
}

func TestTemplateCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing title", func(t *testing.T) {
		rr := env.doJSON(t, "POST", "/api/templates", map[string]any{"title": "  "})
		mustStatus(t, rr, http.StatusUnprocessableEntity)
	})

	t.Run("level out of range", func(t *testing.T) {
		body := map[string]any{
			"title": "ht-bad-level",
			"sections": []map[string]any{
				{"level": 7, "title": "Too deep", "order_index": 1},
			},
		}
		rr := env.doJSON(t, "POST", "/api/templates", body)
		mustStatus(t, rr, http.StatusUnprocessableEntity)
	})

	t.Run("section without title", func(t *testing.T) {
		body := map[string]any{
			"title": "ht-untitled-section",
			"sections": []map[string]any{
				{"level": 1, "title": "", "order_index": 1},
			},
		}
		rr := env.doJSON(t, "POST", "/api/templates", body)
		mustStatus(t, rr, http.StatusUnprocessableEntity)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		req := env.doJSON(t, "POST", "/api/templates", "not an object")
		mustStatus(t, req, http.StatusBadRequest)
	})
}

func TestTemplateGetErrors(t *testing.T) {
	env := newTestEnv(t)

	rr := env.doJSON(t, "GET", "/api/templates/not-a-uuid", nil)
	mustStatus(t, rr, http.StatusBadRequest)

	rr = env.doJSON(t, "GET", "/api/templates/"+uuid.NewString(), nil)
	mustStatus(t, rr, http.StatusNotFound)
}

func TestTemplateUpdate(t *testing.T) {
	env := newTestEnv(t)

	rr := env.doJSON(t, "POST", "/api/templates", testTemplateBody("ht-update"))
	mustStatus(t, rr, http.StatusCreated)
	var created models.Template
	decodeBody(t, rr, &created)

	update := map[string]any{
		"title": "ht-update-v2",
		"sections": []map[string]any{
			{"level": 1, "title": "Only", "placeholder": "", "order_index": 1},
		},
	}
	rr = env.doJSON(t, "PUT", "/api/templates/"+created.ID.String(), update)
	mustStatus(t, rr, http.StatusOK)

	var updated models.Template
	decodeBody(t, rr, &updated)
	if updated.Title != "ht-update-v2" {
		t.Errorf("title: got %q", updated.Title)
	}
	if len(updated.Sections) != 1 {
		t.Errorf("sections not replaced: got %d", len(updated.Sections))
	}
}

func TestTemplateUpdateNotFound(t *testing.T) {
	env := newTestEnv(t)

	rr := env.doJSON(t, "PUT", "/api/templates/"+uuid.NewString(), testTemplateBody("ht-ghost"))
	mustStatus(t, rr, http.StatusNotFound)
}

func TestTemplateDelete(t *testing.T) {
	env := newTestEnv(t)

	rr := env.doJSON(t, "POST", "/api/templates", testTemplateBody("ht-delete"))
	mustStatus(t, rr, http.StatusCreated)
	var created models.Template
	decodeBody(t, rr, &created)

	rr = env.doJSON(t, "DELETE", "/api/templates/"+created.ID.String(), nil)
	mustStatus(t, rr, http.StatusNoContent)

	// Second delete finds nothing.
	rr = env.doJSON(t, "DELETE", "/api/templates/"+created.ID.String(), nil)
	mustStatus(t, rr, http.StatusNotFound)
}

func TestTemplateList(t *testing.T) {
	env := newTestEnv(t)

	rr := env.doJSON(t, "POST", "/api/templates", testTemplateBody("ht-list"))
	mustStatus(t, rr, http.StatusCreated)

	rr = env.doJSON(t, "GET", "/api/templates", nil)
	mustStatus(t, rr, http.StatusOK)

	var list []models.Template
	decodeBody(t, rr, &list)

	found := false
	for _, tpl := range list {
		if tpl.Title == "ht-list" {
			found = true
			if len(tpl.Sections) != 0 {
				t.Error("list should not include sections")
			}
		}
	}
	if !found {
		t.Error("created template missing from list")
	}
}
