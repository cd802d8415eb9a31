package tile

import "testing"

// singlePanel builds the canonical starting layout: one grid, one row
// (height 100%), one column (width 100%), one panel with tabs of the
// given names. The first name becomes the active tab unless later names
// re-activate (AddTab activates each new tab, so callers that care
// re-activate explicitly).
func singlePanel(t *testing.T, names ...string) (w *Workspace, panelID string, tabIDs []string) {
	t.Helper()
	w = New()
	b := NewBuilder(w)
	b.Grid().Row(Percent(100)).Column(Percent(100)).Panel()
	if err := b.Err(); err != nil {
		t.Fatalf("build layout: %v", err)
	}
	panelID = b.PanelID()
	for _, name := range names {
		id, err := w.AddTab(panelID, name, true)
		if err != nil {
			t.Fatalf("add tab %q: %v", name, err)
		}
		tabIDs = append(tabIDs, id)
	}
	return w, panelID, tabIDs
}

// mustValidate fails the test if the workspace violates any invariant.
func mustValidate(t *testing.T, w *Workspace) {
	t.Helper()
	if err := w.Validate(); err != nil {
		t.Fatalf("tree invalid: %v", err)
	}
}

// mustTile fetches a tile or fails the test.
func mustTile(t *testing.T, w *Workspace, id string) Tile {
	t.Helper()
	tl, err := w.Tile(id)
	if err != nil {
		t.Fatalf("tile %q: %v", id, err)
	}
	return tl
}

// tabNames resolves tab ids to their names for readable assertions.
func tabNames(t *testing.T, w *Workspace, ids []string) []string {
	t.Helper()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = mustTile(t, w, id).Name
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
