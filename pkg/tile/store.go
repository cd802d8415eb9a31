package tile

import "fmt"

// Store is the flat id-keyed tile map backing a workspace - the single
// source of truth for the tree. The store itself is deliberately dumb:
// it looks tiles up, inserts, merges and deletes single records.
// Cascading deletion and parent/child link surgery are the mutation
// engine's responsibility, not the Store's.
//
// Store is not safe for concurrent use without external synchronization.
type Store struct {
	tiles map[string]*Tile
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{tiles: make(map[string]*Tile)}
}

// Get returns the tile with the given id. The returned pointer refers
// to the live record, so modifications take effect in the store.
// Returns an error wrapping [ErrTileNotFound] if the id is absent.
func (s *Store) Get(id string) (*Tile, error) {
	t, ok := s.tiles[id]
	if !ok {
		return nil, fmt.Errorf("tile %q: %w", id, ErrTileNotFound)
	}
	return t, nil
}

// GetKind returns the tile with the given id after checking its kind.
// Returns an error wrapping [ErrTileNotFound] if the id is absent, or
// [ErrWrongTileType] if the tile exists with a different kind.
func (s *Store) GetKind(id string, kind Kind) (*Tile, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if t.Kind != kind {
		return nil, fmt.Errorf("tile %q: expected %s, found %s: %w", id, kind, t.Kind, ErrWrongTileType)
	}
	return t, nil
}

// Has reports whether a tile with the given id exists.
func (s *Store) Has(id string) bool {
	_, ok := s.tiles[id]
	return ok
}

// Insert adds a tile to the store and returns its id. If the tile has
// no id yet, one is assigned via [NewID]. An existing record with the
// same id is replaced.
func (s *Store) Insert(t *Tile) string {
	if t.ID == "" {
		t.ID = NewID(t.Kind)
	}
	s.tiles[t.ID] = t
	return t.ID
}

// Update applies fn to the live tile record, merging a partial change
// in place. Returns an error wrapping [ErrTileNotFound] if the id is
// absent.
func (s *Store) Update(id string, fn func(*Tile)) error {
	t, err := s.Get(id)
	if err != nil {
		return err
	}
	fn(t)
	return nil
}

// Delete removes the single record with the given id. Deleting an
// absent id is a no-op. Descendants and parent links are untouched -
// recursive destruction lives in the mutation engine.
func (s *Store) Delete(id string) {
	delete(s.tiles, id)
}

// Len returns the number of tiles in the store.
func (s *Store) Len() int { return len(s.tiles) }

// ChildrenOf returns the tiles whose Parent is parentID, filtered to
// the given kind. Pass an empty kind to return all children. The order
// is not guaranteed; use the parent's own child sequences for ordered
// traversal.
func (s *Store) ChildrenOf(parentID string, kind Kind) []*Tile {
	var out []*Tile
	for _, t := range s.tiles {
		if t.Parent == parentID && (kind == "" || t.Kind == kind) {
			out = append(out, t)
		}
	}
	return out
}

// snapshot returns a deep copy of all tiles keyed by id.
func (s *Store) snapshot() map[string]Tile {
	out := make(map[string]Tile, len(s.tiles))
	for id, t := range s.tiles {
		out[id] = *t.clone()
	}
	return out
}
