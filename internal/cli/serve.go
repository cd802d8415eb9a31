package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	apperrors "github.com/docktile/docktile/pkg/errors"
	"github.com/docktile/docktile/pkg/io"
	"github.com/docktile/docktile/pkg/server"
	"github.com/docktile/docktile/pkg/store"
	"github.com/docktile/docktile/pkg/tile"
)

// Store backends for the serve command.
const (
	storeMemory = "memory"
	storeFile   = "file"
	storeRedis  = "redis"
	storeMongo  = "mongo"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string // listen address
	layout  string // layout JSON file to serve initially
	preset  string // preset to serve when no layout file is given
	backend string // layout store backend: memory, file, redis, mongo

	dir       string // file store directory
	redisAddr string // redis address
	redisDB   int    // redis database number
	mongoURI  string // mongo connection string
}

// serveCommand creates the serve command for running the HTTP layout service.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:      ":8080",
		preset:    "single",
		backend:   storeMemory,
		redisAddr: "localhost:6379",
		mongoURI:  "mongodb://localhost:27017",
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a workspace over HTTP",
		Long: `Serve a workspace over HTTP. The workspace starts from a layout file
or a preset and is mutated through the API. Named layouts are saved to
and loaded from the selected store backend.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.layout, "layout", "", "layout JSON file to serve initially")
	cmd.Flags().StringVar(&opts.preset, "preset", opts.preset, "preset to serve when no layout file is given")
	cmd.Flags().StringVar(&opts.backend, "store", opts.backend, "layout store: memory (default), file, redis, mongo")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "file store directory (default ~/.config/docktile/layouts)")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", opts.redisAddr, "redis address")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "redis database number")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", opts.mongoURI, "mongo connection string")

	return cmd
}

// runServe builds the initial workspace and store, then serves until
// the context is cancelled.
func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	prog := newProgress(c.Logger)

	ws, err := initialWorkspace(opts)
	if err != nil {
		return err
	}

	// Redis and Mongo dial on construction, which can hang on a bad
	// address until the context times the connection out.
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Connecting %s store...", opts.backend))
	spinner.Start()
	st, err := newStore(ctx, opts)
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Could not connect %s store", opts.backend))
		return err
	}
	spinner.Stop()
	defer st.Close()

	prog.done(fmt.Sprintf("Workspace ready: %d tiles, %s store", ws.Len(), opts.backend))
	return server.New(ws, st, c.Logger).ListenAndServe(ctx, opts.addr)
}

// initialWorkspace loads the --layout file, or builds the --preset.
func initialWorkspace(opts *serveOpts) (*tile.Workspace, error) {
	if opts.layout != "" {
		return io.ImportJSON(opts.layout)
	}
	presets, err := loadPresets("")
	if err != nil {
		return nil, err
	}
	preset, ok := presets[opts.preset]
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodePresetNotFound, "unknown preset %q", opts.preset)
	}
	return preset.Build()
}

// newStore constructs the layout store for the selected backend.
func newStore(ctx context.Context, opts *serveOpts) (store.Store, error) {
	switch opts.backend {
	case storeMemory:
		return store.NewMemory(), nil
	case storeFile:
		dir := opts.dir
		if dir == "" {
			base, err := configDir()
			if err != nil {
				return nil, err
			}
			dir = filepath.Join(base, "layouts")
		}
		return store.NewFile(dir)
	case storeRedis:
		return store.NewRedis(ctx, store.RedisConfig{Addr: opts.redisAddr, DB: opts.redisDB})
	case storeMongo:
		return store.NewMongo(ctx, store.MongoConfig{URI: opts.mongoURI})
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput,
			"unknown store %q (must be memory, file, redis, or mongo)", opts.backend)
	}
}
