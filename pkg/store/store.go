// Package store provides named snapshot persistence for workspaces.
//
// This package defines an interface for snapshot storage with
// implementations for different backends:
//   - memory: In-memory storage for development/testing
//   - file: File-based storage for CLI applications
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage for durable multi-workspace setups
//
// # Architecture
//
// A store maps layout names to serialized [tile.Snapshot] values. The
// Store interface supports:
//   - Load/Save/Delete operations
//   - Listing stored layout names
//   - Context cancellation on every call
//
// # Usage
//
// Create a store:
//
//	// Development
//	st := store.NewMemory()
//
//	// CLI
//	st, err := store.NewFile("")  // Uses ~/.config/docktile/layouts/
//
//	// Production
//	st, err := store.NewRedis(ctx, store.RedisConfig{Addr: "localhost:6379"})
//
// Persist a workspace:
//
//	if err := st.Save(ctx, "ide-default", w.Snapshot()); err != nil {
//	    return err
//	}
//
//	snap, err := st.Load(ctx, "ide-default")
//	if errors.Is(err, store.ErrNotFound) {
//	    // No such layout
//	}
package store

import (
	"context"
	"errors"

	"github.com/docktile/docktile/pkg/tile"
)

// ErrNotFound is returned when a requested layout does not exist.
var ErrNotFound = errors.New("layout not found")

// Store is the interface for snapshot storage backends.
type Store interface {
	// Load retrieves a snapshot by name.
	// Returns ErrNotFound if no layout with that name exists.
	Load(ctx context.Context, name string) (tile.Snapshot, error)

	// Save stores a snapshot under the given name, replacing any
	// previous snapshot with that name.
	Save(ctx context.Context, name string, snap tile.Snapshot) error

	// Delete removes a stored snapshot. Deleting an absent name is not
	// an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all stored layouts, sorted.
	List(ctx context.Context) ([]string, error)

	// Close releases any resources held by the backend.
	Close() error
}
