package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// MapBackend is an in-memory implementation of [Backend] backed by a map.
//
// This is NOT thread safe.
type MapBackend map[string][]byte

var _ Backend = (MapBackend)(nil)

// Get retrieves a value from the store.
func (m MapBackend) Get(_ context.Context, key string, dst any) error {
	v, ok := m[key]
	if !ok {
		return ErrNotExist
	}

	return json.Unmarshal(v, dst)
}

// Update applies a batch of changes to the store.
// MapBackend ignores the message associated with the update.
func (m MapBackend) Update(_ context.Context, req UpdateRequest) error {
	// Encode everything first so a bad value leaves the map untouched.
	encoded := make([][]byte, len(req.Sets))
	for i, set := range req.Sets {
		v, err := json.Marshal(set.Value)
		if err != nil {
			return fmt.Errorf("marshal [%d]: %w", i, err)
		}
		encoded[i] = v
	}

	for i, set := range req.Sets {
		m[set.Key] = encoded[i]
	}
	for _, key := range req.Deletes {
		delete(m, key)
	}

	return nil
}

// Keys returns a sorted list of keys in the store.
func (m MapBackend) Keys(context.Context) ([]string, error) {
	return slices.Sorted(maps.Keys(m)), nil
}
