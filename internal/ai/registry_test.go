// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"errors"
	"testing"
)

// stubProvider implements Provider for registry tests.
type stubProvider struct {
	name     string
	response string
	err      error
}

func (s *stubProvider) Name() string { return s.name }
func (s *stubProvider) Generate(_ context.Context, _, _ string) (string, error) {
	return s.response, s.err
}

func TestNewRegistrySkipsProvidersWithoutKeys(t *testing.T) {
	r := NewRegistry("gemini", map[string]ProviderConfig{
		"gemini": {APIKey: "key", Model: "gemini-2.0-flash"},
		"openai": {APIKey: "", Model: "gpt-4o"},
	})

	if !r.HasProvider("gemini") {
		t.Error("gemini should be available")
	}
	if r.HasProvider("openai") {
		t.Error("openai without key should be skipped")
	}
}

func TestRegistryActiveNotConfigured(t *testing.T) {
	r := NewRegistry("gemini", map[string]ProviderConfig{})

	if _, err := r.Active(); err == nil {
		t.Error("expected error when active provider is missing")
	}
	if _, err := r.Generate(context.Background(), "s", "u"); err == nil {
		t.Error("Generate should fail when no provider is configured")
	}
}

func TestRegistrySetActive(t *testing.T) {
	r := NewRegistry("gemini", map[string]ProviderConfig{})
	r.Register("mock", &stubProvider{name: "mock", response: "hi"})

	if err := r.SetActive("missing"); err == nil {
		t.Error("SetActive should reject unknown providers")
	}

	if err := r.SetActive("mock"); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if r.ActiveName() != "mock" {
		t.Errorf("active name: got %q, want mock", r.ActiveName())
	}

	got, err := r.Generate(context.Background(), "s", "u")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "hi" {
		t.Errorf("Generate: got %q, want hi", got)
	}
}

func TestRegistryGeneratePropagatesError(t *testing.T) {
	wantErr := errors.New("upstream down")
	r := NewRegistry("mock", map[string]ProviderConfig{})
	r.Register("mock", &stubProvider{name: "mock", err: wantErr})

	_, err := r.Generate(context.Background(), "s", "u")
	if !errors.Is(err, wantErr) {
		t.Errorf("expected provider error, got %v", err)
	}
}

func TestRegistryAvailable(t *testing.T) {
	r := NewRegistry("gemini", map[string]ProviderConfig{
		"gemini": {APIKey: "a"},
		"openai": {APIKey: "b"},
	})

	names := r.Available()
	if len(names) != 2 {
		t.Errorf("available: got %v, want 2 providers", names)
	}
}
