// Package history persists analysis entries as a bounded, newest-first list in a record store.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/store"
)

// DefaultKey is the logical key the serialized history is stored under
const DefaultKey = "placement_readiness_history"

// Repository reads and writes the raw record list under a single key.
// Records are kept as raw JSON so that entries it cannot interpret survive rewrites.
type Repository struct {
	store store.Store
	key   string
}

// NewRepository creates a repository over s; an empty key selects DefaultKey
func NewRepository(s store.Store, key string) *Repository {
	if key == "" {
		key = DefaultKey
	}
	return &Repository{store: s, key: key}
}

// Read returns the stored records. A missing value, invalid JSON or a top level
// that is not an array all read as an empty list.
func (r *Repository) Read(ctx context.Context) ([]json.RawMessage, error) {
	data, err := r.store.Get(ctx, r.key)
	if errors.Is(err, store.ErrNotFound) {
		return []json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil || records == nil {
		return []json.RawMessage{}, nil
	}
	return records, nil
}

// Write replaces the stored list
func (r *Repository) Write(ctx context.Context, records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}

// Clear removes the stored list
func (r *Repository) Clear(ctx context.Context) error {
	if err := r.store.Remove(ctx, r.key); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
