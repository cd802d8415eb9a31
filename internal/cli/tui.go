package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	apperrors "github.com/docktile/docktile/pkg/errors"
	"github.com/docktile/docktile/pkg/io"
	"github.com/docktile/docktile/pkg/tile"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// tuiCommand creates the tui command for browsing and editing a layout
// interactively.
func (c *CLI) tuiCommand() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "tui [file]",
		Short: "Browse and edit a layout interactively",
		Long: `Browse a layout in an interactive terminal view. Navigate the tile
tree, activate and focus tabs, split panels, and remove tiles. With
--save, changes are written back to the file on exit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(args[0], save)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "write changes back to the file on exit")

	return cmd
}

// runTUI loads the layout, runs the bubbletea program, and optionally
// saves the edited workspace back.
func runTUI(input string, save bool) error {
	ws, err := io.ImportJSON(input)
	if err != nil {
		return err
	}

	m := newLayoutModel(ws)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "tui failed")
	}

	lm, ok := final.(layoutModel)
	if !ok || !save || !lm.dirty {
		return nil
	}
	if err := io.ExportJSON(ws, input); err != nil {
		return err
	}
	printSuccess("Saved %s", StyleHighlight.Render(input))
	return nil
}

// =============================================================================
// layoutModel - Interactive tile tree browser
// =============================================================================

// treeLine is one selectable line of the flattened tile tree.
type treeLine struct {
	id     string
	kind   tile.Kind
	text   string // prefix + label, without selection styling
	active bool   // active tab of its panel
}

// layoutModel is the bubbletea model for the layout browser. It holds
// the live workspace and re-flattens the tree after every mutation.
type layoutModel struct {
	ws     *tile.Workspace
	lines  []treeLine
	cursor int
	offset int
	height int
	status string
	dirty  bool
}

// newLayoutModel creates a layout browser over the given workspace.
func newLayoutModel(ws *tile.Workspace) layoutModel {
	m := layoutModel{ws: ws, height: 15}
	m.refresh()
	return m
}

// refresh re-flattens the tree and clamps the cursor to the new line
// count. Called after every mutation, since cleanup can remove tiles
// far from the mutation site.
func (m *layoutModel) refresh() {
	snap := m.ws.Snapshot()
	m.lines = flattenTree(snap)
	if m.cursor >= len(m.lines) {
		m.cursor = len(m.lines) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
}

// selected returns the line under the cursor, or nil for an empty tree.
func (m *layoutModel) selected() *treeLine {
	if m.cursor < 0 || m.cursor >= len(m.lines) {
		return nil
	}
	return &m.lines[m.cursor]
}

func (m layoutModel) Init() tea.Cmd {
	return nil
}

func (m layoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.lines)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			m.mutate("activated tab", func(l *treeLine) error {
				if l.kind != tile.KindTab {
					return apperrors.New(apperrors.ErrCodeInvalidInput, "select a tab to activate")
				}
				return m.ws.SetActiveTab(l.id)
			})
		case "f":
			m.mutate("focused tab", func(l *treeLine) error {
				if l.kind != tile.KindTab {
					return apperrors.New(apperrors.ErrCodeInvalidInput, "select a tab to focus")
				}
				return m.ws.SetFocusedActiveTab(l.id)
			})
		case "x":
			m.mutate("removed tile", func(l *treeLine) error {
				return m.ws.RemoveTile(l.id)
			})
		case "r":
			m.split(tile.DirectionRight)
		case "b":
			m.split(tile.DirectionBottom)
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 7
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

// mutate applies fn to the selected line, then refreshes the tree and
// records the outcome in the status line.
func (m *layoutModel) mutate(done string, fn func(*treeLine) error) {
	l := m.selected()
	if l == nil {
		return
	}
	if err := fn(l); err != nil {
		m.status = StyleWarning.Render(err.Error())
		return
	}
	m.dirty = true
	m.status = StyleSuccess.Render(done)
	m.refresh()
}

// split splits the selected tab's panel in the given direction, moving
// the tab into the new panel.
func (m *layoutModel) split(dir tile.Direction) {
	m.mutate("split "+string(dir), func(l *treeLine) error {
		if l.kind != tile.KindTab {
			return apperrors.New(apperrors.ErrCodeInvalidInput, "select a tab to split with")
		}
		t, err := m.ws.Tile(l.id)
		if err != nil {
			return err
		}
		_, err = m.ws.SplitPanel(l.id, t.Parent, dir)
		return err
	})
}

func (m layoutModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Layout"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ activate  f focus  r/b split  x remove  q quit"))
	b.WriteString("\n\n")

	if len(m.lines) == 0 {
		b.WriteString(listDimStyle.Render("  (empty layout)"))
		b.WriteString("\n")
	}

	end := m.offset + m.height
	if end > len(m.lines) {
		end = len(m.lines)
	}
	for i := m.offset; i < end; i++ {
		l := m.lines[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		line := cursor + l.text
		switch {
		case i == m.cursor:
			b.WriteString(listSelectedStyle.Render(line))
		case l.active:
			b.WriteString(listNormalStyle.Render(line))
		default:
			b.WriteString(listDimStyle.Render(line))
		}
		b.WriteString("\n")
	}

	st := m.ws.Stats()
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d panels · %d tabs · %d tiles", st.Panels, st.Tabs, m.ws.Len())))
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(m.status)
	}
	b.WriteString("\n")

	return b.String()
}

// =============================================================================
// Tree flattening
// =============================================================================

// flattenTree turns a snapshot into indented, selectable lines in
// render order.
func flattenTree(snap tile.Snapshot) []treeLine {
	var out []treeLine
	if snap.Root == "" {
		return out
	}
	var walk func(id string, depth int)
	walk = func(id string, depth int) {
		t, ok := snap.Tiles[id]
		if !ok {
			return
		}
		line := treeLine{
			id:   t.ID,
			kind: t.Kind,
			text: strings.Repeat("  ", depth) + tileLabel(snap, t),
		}
		if t.Kind == tile.KindTab {
			if p, ok := snap.Tiles[t.Parent]; ok && p.ActiveTab == t.ID {
				line.active = true
			}
		}
		out = append(out, line)
		for _, child := range tileChildren(t) {
			walk(child, depth+1)
		}
	}
	walk(snap.Root, 0)
	return out
}

// tileChildren returns a tile's children in render order.
func tileChildren(t tile.Tile) []string {
	switch t.Kind {
	case tile.KindGrid:
		return t.Rows
	case tile.KindRow:
		return t.Columns
	case tile.KindColumn:
		if t.Child == "" {
			return nil
		}
		return []string{t.Child}
	case tile.KindPanel:
		return t.Tabs
	}
	return nil
}

// tileLabel renders one tile as a short descriptive line.
func tileLabel(snap tile.Snapshot, t tile.Tile) string {
	switch t.Kind {
	case tile.KindGrid:
		if t.Parent == "" {
			return "grid (root)"
		}
		return "grid"
	case tile.KindRow:
		return fmt.Sprintf("row %s", tuiSize(t.Height))
	case tile.KindColumn:
		return fmt.Sprintf("column %s", tuiSize(t.Width))
	case tile.KindPanel:
		label := fmt.Sprintf("panel (%d tabs)", len(t.Tabs))
		if snap.ActivePanel == t.ID {
			label += " " + StyleHighlight.Render("●")
		}
		return label
	case tile.KindTab:
		name := t.Name
		if name == "" {
			name = t.ID
		}
		label := "tab " + name
		if snap.FocusedTab == t.ID {
			label += " (focused)"
		}
		return label
	case tile.KindContent:
		if t.ComponentID != "" {
			return "content [" + t.ComponentID + "]"
		}
		return "content"
	}
	return string(t.Kind)
}

// tuiSize formats a size for the tree view.
func tuiSize(s tile.Size) string {
	switch s.Unit {
	case tile.UnitPercent:
		return fmt.Sprintf("%g%%", s.Value)
	case tile.UnitPixel:
		return fmt.Sprintf("%gpx", s.Value)
	}
	return "auto"
}
