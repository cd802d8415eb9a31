package tile

import (
	"errors"
	"strings"
	"testing"
)

func TestStoreGet(t *testing.T) {
	s := NewStore()
	id := s.Insert(&Tile{Kind: KindPanel})

	got, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Kind != KindPanel {
		t.Errorf("kind = %s, want panel", got.Kind)
	}

	if _, err := s.Get("missing"); !errors.Is(err, ErrTileNotFound) {
		t.Errorf("Get(missing) = %v, want ErrTileNotFound", err)
	}
}

func TestStoreGetKind(t *testing.T) {
	s := NewStore()
	id := s.Insert(&Tile{Kind: KindRow})

	if _, err := s.GetKind(id, KindRow); err != nil {
		t.Fatalf("GetKind(row): %v", err)
	}
	if _, err := s.GetKind(id, KindPanel); !errors.Is(err, ErrWrongTileType) {
		t.Errorf("GetKind(panel) = %v, want ErrWrongTileType", err)
	}
	if _, err := s.GetKind("missing", KindPanel); !errors.Is(err, ErrTileNotFound) {
		t.Errorf("GetKind(missing) = %v, want ErrTileNotFound", err)
	}
}

func TestStoreInsertAssignsID(t *testing.T) {
	s := NewStore()
	id := s.Insert(&Tile{Kind: KindTab})
	if id == "" {
		t.Fatal("Insert did not assign an id")
	}
	if !strings.HasPrefix(id, "tab-") {
		t.Errorf("id %q is not kind-tagged", id)
	}

	// A supplied id is kept.
	if got := s.Insert(&Tile{ID: "tab-custom", Kind: KindTab}); got != "tab-custom" {
		t.Errorf("Insert kept id %q, want tab-custom", got)
	}
}

func TestStoreUpdate(t *testing.T) {
	s := NewStore()
	id := s.Insert(&Tile{Kind: KindTab, Name: "old"})

	if err := s.Update(id, func(tl *Tile) { tl.Name = "new" }); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := s.Get(id)
	if got.Name != "new" {
		t.Errorf("name = %q, want new", got.Name)
	}

	if err := s.Update("missing", func(*Tile) {}); !errors.Is(err, ErrTileNotFound) {
		t.Errorf("Update(missing) = %v, want ErrTileNotFound", err)
	}
}

func TestStoreDelete(t *testing.T) {
	s := NewStore()
	id := s.Insert(&Tile{Kind: KindContent})
	s.Delete(id)
	if s.Has(id) {
		t.Error("tile still present after Delete")
	}
	s.Delete(id) // deleting an absent id is a no-op
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestStoreChildrenOf(t *testing.T) {
	s := NewStore()
	panel := s.Insert(&Tile{Kind: KindPanel})
	s.Insert(&Tile{Kind: KindTab, Parent: panel, Name: "a"})
	s.Insert(&Tile{Kind: KindTab, Parent: panel, Name: "b"})
	s.Insert(&Tile{Kind: KindContent, Parent: panel})

	if got := s.ChildrenOf(panel, KindTab); len(got) != 2 {
		t.Errorf("tab children = %d, want 2", len(got))
	}
	if got := s.ChildrenOf(panel, ""); len(got) != 3 {
		t.Errorf("all children = %d, want 3", len(got))
	}
	if got := s.ChildrenOf("missing", KindTab); got != nil {
		t.Errorf("children of missing parent = %v, want nil", got)
	}
}

func TestStoreSnapshotIsDeep(t *testing.T) {
	s := NewStore()
	id := s.Insert(&Tile{Kind: KindPanel, Tabs: []string{"tab-1"}})

	snap := s.snapshot()
	live, _ := s.Get(id)
	live.Tabs[0] = "tab-2"

	if snap[id].Tabs[0] != "tab-1" {
		t.Error("snapshot shares backing storage with live tiles")
	}
}
