package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/docktile/docktile/pkg/errors"
	"github.com/docktile/docktile/pkg/io"
)

// newOpts holds the command-line flags for the new command.
type newOpts struct {
	output  string // output file path, derived from the preset name when empty
	presets string // optional TOML file with additional presets
	list    bool   // list available presets instead of building
}

// newCommand creates the new command for building a layout from a preset.
func (c *CLI) newCommand() *cobra.Command {
	var opts newOpts

	cmd := &cobra.Command{
		Use:   "new [preset]",
		Short: "Build a workspace layout from a preset",
		Long: `Build a workspace layout from a named preset and write it as a JSON
snapshot. Presets ship built in (single, split, ide, quad) and can be
extended or overridden with a TOML preset file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := loadPresets(opts.presets)
			if err != nil {
				return err
			}
			if opts.list {
				for _, name := range presetNames(presets) {
					printKeyValue(name, presets[name].Description)
				}
				return nil
			}
			if len(args) == 0 {
				return apperrors.New(apperrors.ErrCodeInvalidInput, "preset name required (or use --list)")
			}
			return runNew(args[0], presets, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <preset>.json)")
	cmd.Flags().StringVar(&opts.presets, "presets", "", "TOML file with additional presets")
	cmd.Flags().BoolVar(&opts.list, "list", false, "list available presets")

	return cmd
}

// runNew builds the named preset and writes the snapshot to disk.
func runNew(name string, presets map[string]Preset, opts *newOpts) error {
	preset, ok := presets[name]
	if !ok {
		return apperrors.New(apperrors.ErrCodePresetNotFound, "unknown preset %q (use --list)", name)
	}

	w, err := preset.Build()
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = name + ".json"
	}
	if err := io.ExportJSON(w, output); err != nil {
		return err
	}

	printSuccess("Created %s layout", StyleHighlight.Render(name))
	printFile(output)
	printStats(w.Stats())
	printNextStep("Inspect the layout", fmt.Sprintf("%s show %s", appName, output))
	return nil
}
