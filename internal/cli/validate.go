package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/docktile/docktile/pkg/io"
)

// validateCommand creates the validate command for checking layout files.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a layout file against the structural invariants",
		Long: `Check that a layout file parses and that its tree satisfies the
structural invariants: parent and child references agree, containment
rules hold, panels are non-empty, and the active and focus trackers
point at live tiles.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), args[0])
		},
	}
}

// runValidate imports the layout, which hydrates and validates it.
func runValidate(ctx context.Context, input string) error {
	logger := loggerFromContext(ctx)
	logger.Debugf("Validating %s", input)

	w, err := io.ImportJSON(input)
	if err != nil {
		printError("%s is not a valid layout", input)
		return err
	}

	printSuccess("%s is a valid layout", StyleHighlight.Render(input))
	printStats(w.Stats())
	return nil
}
