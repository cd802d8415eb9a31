package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/docktile/docktile/pkg/tile"
)

// Memory is an in-memory snapshot store for development and testing.
// It is safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Load retrieves a snapshot by name.
func (m *Memory) Load(ctx context.Context, name string) (tile.Snapshot, error) {
	m.mu.RLock()
	raw, ok := m.data[name]
	m.mu.RUnlock()
	if !ok {
		return tile.Snapshot{}, fmt.Errorf("layout %q: %w", name, ErrNotFound)
	}
	var snap tile.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return tile.Snapshot{}, fmt.Errorf("decode layout %q: %w", name, err)
	}
	return snap, nil
}

// Save stores a snapshot under the given name. The snapshot is
// serialized on write, so later mutations of the caller's copy do not
// leak into the store.
func (m *Memory) Save(ctx context.Context, name string, snap tile.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode layout %q: %w", name, err)
	}
	m.mu.Lock()
	m.data[name] = raw
	m.mu.Unlock()
	return nil
}

// Delete removes a stored snapshot.
func (m *Memory) Delete(ctx context.Context, name string) error {
	m.mu.Lock()
	delete(m.data, name)
	m.mu.Unlock()
	return nil
}

// List returns the names of all stored layouts, sorted.
func (m *Memory) List(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	names := make([]string, 0, len(m.data))
	for name := range m.data {
		names = append(names, name)
	}
	m.mu.RUnlock()
	sort.Strings(names)
	return names, nil
}

// Close does nothing for the in-memory store.
func (m *Memory) Close() error { return nil }

var _ Store = (*Memory)(nil)
