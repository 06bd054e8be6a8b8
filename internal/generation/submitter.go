// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generation runs the background submission of a prompt to the
// external generative-text service. Dispatch returns as soon as the
// response record exists; the call itself runs in its own goroutine with
// its own error boundary, and its outcome — success, provider error, or
// panic — is always funneled into the response record.
package generation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"promptpress/internal/models"
)

// DefaultTimeout bounds a single external call. Without it a hung provider
// would leave the record pending forever.
const DefaultTimeout = 60 * time.Second

// systemPrompt instructs the model how to treat the submitted document.
const systemPrompt = "You are a helpful assistant. The user message is a complete markdown document; respond to it directly."

// Generator produces text for a submitted document. *ai.Registry satisfies it.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Recorder tracks response lifecycle records. *store.ResponseStore satisfies it.
type Recorder interface {
	Begin(promptID uuid.UUID) (*models.Response, error)
	Complete(id uuid.UUID, content string, status models.ResponseStatus) (*models.Response, error)
}

// Submitter dispatches generation calls for prompts.
type Submitter struct {
	generator Generator
	recorder  Recorder
	timeout   time.Duration
	wg        sync.WaitGroup
}

// NewSubmitter creates a Submitter. A non-positive timeout falls back to
// DefaultTimeout.
func NewSubmitter(generator Generator, recorder Recorder, timeout time.Duration) *Submitter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Submitter{
		generator: generator,
		recorder:  recorder,
		timeout:   timeout,
	}
}

// Dispatch ensures a response record exists for the prompt and starts the
// external call in the background. It returns the record immediately; the
// caller does not await the external result. Dispatching an already
// submitted prompt reuses the existing record and overwrites its outcome
// when the new call finishes.
func (s *Submitter) Dispatch(prompt *models.Prompt) (*models.Response, error) {
	rec, err := s.recorder.Begin(prompt.ID)
	if err != nil {
		return nil, fmt.Errorf("dispatch generation: %w", err)
	}

	s.wg.Add(1)
	go s.run(rec.ID, prompt.GeneratedContent)

	return rec, nil
}

// Wait blocks until all in-flight generation calls have finished. Called
// during graceful shutdown so results are recorded before the process exits.
func (s *Submitter) Wait() {
	s.wg.Wait()
}

// run executes one external call and records its outcome. It never lets a
// failure escape: provider errors and panics both land in the record as
// status error, keeping the record out of a permanent pending state.
func (s *Submitter) run(recordID uuid.UUID, document string) {
	defer s.wg.Done()
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("generation panic recovered", "record_id", recordID, "panic", rec)
			s.complete(recordID, fmt.Sprintf("generation panicked: %v", rec), models.ResponseStatusError)
		}
	}()

	// Detached from the triggering request: the call outlives it.
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	text, err := s.generator.Generate(ctx, systemPrompt, document)
	if err != nil {
		slog.Error("generation call failed", "record_id", recordID, "error", err)
		s.complete(recordID, err.Error(), models.ResponseStatusError)
		return
	}

	s.complete(recordID, text, models.ResponseStatusCompleted)
}

func (s *Submitter) complete(recordID uuid.UUID, content string, status models.ResponseStatus) {
	rec, err := s.recorder.Complete(recordID, content, status)
	if err != nil {
		slog.Error("failed to record generation outcome", "record_id", recordID, "error", err)
		return
	}
	if rec == nil {
		// Record deleted mid-flight (prompt delete cascades); nothing to do.
		slog.Warn("generation outcome for missing record", "record_id", recordID)
		return
	}
	slog.Info("generation recorded", "record_id", recordID, "status", status)
}
