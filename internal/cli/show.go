package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/docktile/docktile/pkg/errors"
	"github.com/docktile/docktile/pkg/io"
	"github.com/docktile/docktile/pkg/render"
)

const (
	formatTree = "tree"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

// showOpts holds the command-line flags for the show command.
type showOpts struct {
	format   string // output format: tree, dot, svg
	output   string // output file; stdout for tree/dot when empty
	detailed bool   // include tile ids and component bindings (dot/svg)
}

// showCommand creates the show command for rendering a layout file.
func (c *CLI) showCommand() *cobra.Command {
	opts := showOpts{format: formatTree}

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Render a layout as a tree, DOT graph, or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: tree (default), dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout; <file>.svg for svg)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include tile ids and component bindings")

	return cmd
}

// runShow loads the layout and renders it in the requested format.
func runShow(ctx context.Context, input string, opts *showOpts) error {
	logger := loggerFromContext(ctx)

	w, err := io.ImportJSON(input)
	if err != nil {
		return err
	}
	snap := w.Snapshot()
	logger.Debugf("Loaded layout: %d tiles", len(snap.Tiles))

	switch opts.format {
	case formatTree:
		return writeOutput(opts.output, []byte(render.Tree(snap)))
	case formatDOT:
		dot := render.ToDOT(snap, render.Options{Detailed: opts.detailed})
		return writeOutput(opts.output, []byte(dot))
	case formatSVG:
		dot := render.ToDOT(snap, render.Options{Detailed: opts.detailed})
		spinner := newSpinnerWithContext(ctx, "Rendering SVG...")
		spinner.Start()
		svg, err := render.RenderSVG(dot)
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return err
		}
		spinner.Stop()
		output := opts.output
		if output == "" {
			output = strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
		}
		if err := os.WriteFile(output, svg, 0o644); err != nil {
			return err
		}
		printSuccess("Rendered %s", StyleHighlight.Render(output))
		printFile(output)
		return nil
	default:
		return apperrors.New(apperrors.ErrCodeInvalidInput, "unknown format %q (must be tree, dot, or svg)", opts.format)
	}
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	printFile(path)
	return nil
}
