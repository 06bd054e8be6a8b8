// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// preview.go provides a Valkey-backed cache of rendered prompt previews.
// A prompt's composed document is frozen at creation time, so its HTML
// rendering never changes; caching it skips the markdown conversion on
// repeat preview requests.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// previewKeyPrefix is the Valkey key prefix for cached previews.
	previewKeyPrefix = "preview:"

	// DefaultPreviewTTL is how long a rendered preview stays cached.
	DefaultPreviewTTL = 10 * time.Minute
)

// PreviewCache manages rendered prompt HTML caching in Valkey.
type PreviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPreviewCache creates a preview cache backed by the given Valkey client.
func NewPreviewCache(client *redis.Client, ttl time.Duration) *PreviewCache {
	if ttl == 0 {
		ttl = DefaultPreviewTTL
	}
	return &PreviewCache{client: client, ttl: ttl}
}

// Get retrieves the cached HTML for a prompt. Returns nil, false on miss.
func (pc *PreviewCache) Get(ctx context.Context, promptID uuid.UUID) ([]byte, bool) {
	val, err := pc.client.Get(ctx, previewKeyPrefix+promptID.String()).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("preview cache get error", "prompt_id", promptID, "error", err)
		return nil, false
	}
	slog.Debug("preview cache hit", "prompt_id", promptID)
	return val, true
}

// Set stores rendered HTML for a prompt with the configured TTL.
func (pc *PreviewCache) Set(ctx context.Context, promptID uuid.UUID, html []byte) {
	if err := pc.client.Set(ctx, previewKeyPrefix+promptID.String(), html, pc.ttl).Err(); err != nil {
		slog.Warn("preview cache set error", "prompt_id", promptID, "error", err)
	}
}

// Invalidate removes a prompt's cached preview. Called when the prompt is
// deleted.
func (pc *PreviewCache) Invalidate(ctx context.Context, promptID uuid.UUID) {
	if err := pc.client.Del(ctx, previewKeyPrefix+promptID.String()).Err(); err != nil {
		slog.Warn("preview cache invalidate error", "prompt_id", promptID, "error", err)
	}
	slog.Debug("preview cache invalidated", "prompt_id", promptID)
}
