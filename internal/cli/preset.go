package cli

import (
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	apperrors "github.com/docktile/docktile/pkg/errors"
	"github.com/docktile/docktile/pkg/tile"
)

// =============================================================================
// Preset Definitions
// =============================================================================

// Preset describes a workspace layout declaratively: rows of columns,
// each column holding either a panel of tabs or a bare component.
// Presets come from the built-in table or from a TOML file:
//
//	[preset.ide]
//	description = "Editor with terminal below"
//
//	[[preset.ide.rows]]
//	height = 70
//	[[preset.ide.rows.columns]]
//	width = 100
//	[[preset.ide.rows.columns.tabs]]
//	name = "editor"
//	component = "code-editor"
//	active = true
//
//	[[preset.ide.rows]]
//	height = 30
//	[[preset.ide.rows.columns]]
//	width = 100
//	[[preset.ide.rows.columns.tabs]]
//	name = "terminal"
//	component = "terminal"
type Preset struct {
	Description string      `toml:"description"`
	Rows        []PresetRow `toml:"rows"`
}

// PresetRow is one horizontal band of the layout.
type PresetRow struct {
	Height  float64        `toml:"height"`
	Unit    string         `toml:"unit"`
	Columns []PresetColumn `toml:"columns"`
}

// PresetColumn is one cell of a row. A column carries either tabs
// (which get a panel) or a bare component id.
type PresetColumn struct {
	Width     float64     `toml:"width"`
	Unit      string      `toml:"unit"`
	Component string      `toml:"component"`
	Tabs      []PresetTab `toml:"tabs"`
}

// PresetTab is one tab of a panel.
type PresetTab struct {
	Name      string `toml:"name"`
	Component string `toml:"component"`
	Active    bool   `toml:"active"`
}

// presetFile is the top-level TOML document shape.
type presetFile struct {
	Presets map[string]Preset `toml:"preset"`
}

// =============================================================================
// Built-in Presets
// =============================================================================

// builtinPresets returns the presets that ship with the CLI. File
// presets with the same name override these.
func builtinPresets() map[string]Preset {
	return map[string]Preset{
		"single": {
			Description: "One full-size panel",
			Rows: []PresetRow{
				{Height: 100, Columns: []PresetColumn{
					{Width: 100, Tabs: []PresetTab{{Name: "main", Active: true}}},
				}},
			},
		},
		"split": {
			Description: "Editor beside a terminal",
			Rows: []PresetRow{
				{Height: 100, Columns: []PresetColumn{
					{Width: 70, Tabs: []PresetTab{{Name: "editor", Component: "code-editor", Active: true}}},
					{Width: 30, Tabs: []PresetTab{{Name: "terminal", Component: "terminal"}}},
				}},
			},
		},
		"ide": {
			Description: "File tree, editor and bottom console",
			Rows: []PresetRow{
				{Height: 75, Columns: []PresetColumn{
					{Width: 20, Component: "file-tree"},
					{Width: 80, Tabs: []PresetTab{{Name: "editor", Component: "code-editor", Active: true}}},
				}},
				{Height: 25, Columns: []PresetColumn{
					{Width: 100, Tabs: []PresetTab{
						{Name: "terminal", Component: "terminal"},
						{Name: "logs", Component: "log-viewer"},
					}},
				}},
			},
		},
		"quad": {
			Description: "Four equal panels",
			Rows: []PresetRow{
				{Height: 50, Columns: []PresetColumn{
					{Width: 50, Tabs: []PresetTab{{Name: "top-left"}}},
					{Width: 50, Tabs: []PresetTab{{Name: "top-right"}}},
				}},
				{Height: 50, Columns: []PresetColumn{
					{Width: 50, Tabs: []PresetTab{{Name: "bottom-left"}}},
					{Width: 50, Tabs: []PresetTab{{Name: "bottom-right"}}},
				}},
			},
		},
	}
}

// loadPresets reads preset definitions from a TOML file and merges them
// over the built-in table.
func loadPresets(path string) (map[string]Preset, error) {
	presets := builtinPresets()
	if path == "" {
		return presets, nil
	}

	var file presetFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "preset file %q not found", path)
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "parse preset file %q", path)
	}
	for name, p := range file.Presets {
		presets[name] = p
	}
	return presets, nil
}

// presetNames returns the preset names sorted for stable listings.
func presetNames(presets map[string]Preset) []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// =============================================================================
// Building
// =============================================================================

// Build constructs a workspace from the preset.
func (p Preset) Build() (*tile.Workspace, error) {
	if len(p.Rows) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "preset has no rows")
	}

	w := tile.New()
	b := tile.NewBuilder(w)
	b.Grid()

	var activeTab string
	for _, row := range p.Rows {
		height, err := presetSize(row.Height, row.Unit)
		if err != nil {
			return nil, err
		}
		b.Row(height)

		for _, col := range row.Columns {
			width, err := presetSize(col.Width, col.Unit)
			if err != nil {
				return nil, err
			}
			b.Column(width)

			if len(col.Tabs) == 0 {
				if col.Component == "" {
					return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "column needs tabs or a component")
				}
				b.Component(col.Component, nil)
				continue
			}

			b.Panel()
			for _, tab := range col.Tabs {
				b.Tab(tab.Name)
				if tab.Component != "" {
					b.Component(tab.Component, nil)
				}
				if tab.Active {
					activeTab = b.TabID()
				}
			}
		}
	}
	if err := b.Err(); err != nil {
		return nil, err
	}

	if activeTab != "" {
		if err := w.SetActiveTab(activeTab); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// presetSize maps a TOML size value and unit onto an engine size.
// An empty unit means percent.
func presetSize(value float64, unit string) (tile.Size, error) {
	switch unit {
	case "", "%", "percent":
		return tile.Percent(value), nil
	case "px", "pixel", "pixels":
		return tile.Pixels(value), nil
	default:
		return tile.Size{}, apperrors.New(apperrors.ErrCodeInvalidInput, "unknown size unit %q", unit)
	}
}
