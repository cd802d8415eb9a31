package tile

import (
	"fmt"
	"slices"
)

// ActivePanel returns the id of the active panel, or "" if none.
func (w *Workspace) ActivePanel() string { return w.activePanel }

// FocusedTab returns the id of the focused tab, or "" if none. A
// focused tab is always the active tab of its panel.
func (w *Workspace) FocusedTab() string { return w.focusedTab }

// SetActiveTab makes the tab its panel's active tab and marks that
// panel as the workspace's active panel. Focus is not granted by
// activation; use [Workspace.SetFocusedActiveTab] for that. If the
// previously focused tab stops being its panel's active tab as a
// result, the focus pointer is cleared rather than left dangling.
func (w *Workspace) SetActiveTab(tabID string) error {
	tab, err := w.store.GetKind(tabID, KindTab)
	if err != nil {
		return fmt.Errorf("activate tab: %w", err)
	}
	panel, err := w.store.GetKind(tab.Parent, KindPanel)
	if err != nil {
		return fmt.Errorf("activate tab %q: %w", tabID, err)
	}
	if !slices.Contains(panel.Tabs, tabID) {
		return fmt.Errorf("tab %q not listed by panel %q: %w", tabID, panel.ID, ErrTabNotInPanel)
	}
	panel.ActiveTab = tabID
	w.activePanel = panel.ID
	w.reconcileFocus()
	w.notify()
	return nil
}

// SetFocusedActiveTab gives the tab input focus. The tab must already
// be its panel's active tab; otherwise an error wrapping
// [ErrFocusNotActive] is returned and nothing changes.
func (w *Workspace) SetFocusedActiveTab(tabID string) error {
	tab, err := w.store.GetKind(tabID, KindTab)
	if err != nil {
		return fmt.Errorf("focus tab: %w", err)
	}
	panel, err := w.store.GetKind(tab.Parent, KindPanel)
	if err != nil {
		return fmt.Errorf("focus tab %q: %w", tabID, err)
	}
	if panel.ActiveTab != tabID {
		return fmt.Errorf("focus tab %q in panel %q: %w", tabID, panel.ID, ErrFocusNotActive)
	}
	w.focusedTab = tabID
	w.notify()
	return nil
}

// reconcileFocus clears tracker references that no longer satisfy the
// focus invariants: the active panel must exist and be a panel, and the
// focused tab must exist and be the active tab of its panel.
func (w *Workspace) reconcileFocus() {
	if w.activePanel != "" {
		if p, err := w.store.Get(w.activePanel); err != nil || p.Kind != KindPanel {
			w.activePanel = ""
		}
	}
	if w.focusedTab == "" {
		return
	}
	tab, err := w.store.Get(w.focusedTab)
	if err != nil || tab.Kind != KindTab {
		w.focusedTab = ""
		return
	}
	panel, err := w.store.Get(tab.Parent)
	if err != nil || panel.Kind != KindPanel || panel.ActiveTab != w.focusedTab {
		w.focusedTab = ""
	}
}
