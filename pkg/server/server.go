// Package server exposes a workspace over HTTP.
//
// The server owns one live [tile.Workspace] guarded by a mutex, so
// concurrent requests mutate it safely. Reads return the snapshot as
// JSON with a content-hash ETag; conditional requests short-circuit to
// 304 when the tree has not changed. Mutations are small JSON commands
// that map one-to-one onto the engine's operations, and named layouts
// can be saved to and loaded from a [store.Store].
//
// # Endpoints
//
//	GET    /healthz                  liveness probe
//	GET    /workspace                snapshot JSON (ETag aware)
//	GET    /workspace/stats          tile counts by kind
//	GET    /workspace/tree           ASCII tree rendering
//	GET    /workspace/dot            Graphviz DOT rendering
//	GET    /workspace/svg            SVG rendering
//	POST   /workspace/tabs           add a tab
//	POST   /workspace/split          split a panel
//	POST   /workspace/move           move a tab
//	POST   /workspace/active         set the active tab
//	POST   /workspace/focus          focus the active tab
//	POST   /workspace/component      bind a component
//	POST   /workspace/viewport       set the viewport extents
//	DELETE /workspace/tiles/{id}     remove a tile
//	GET    /layouts                  list stored layouts
//	PUT    /layouts/{name}           save the current workspace
//	POST   /layouts/{name}/load      replace the workspace from the store
//	DELETE /layouts/{name}           delete a stored layout
//
// Errors are returned as JSON envelopes carrying the structured codes
// from [errors].
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apperrors "github.com/docktile/docktile/pkg/errors"
	"github.com/docktile/docktile/pkg/store"
	"github.com/docktile/docktile/pkg/tile"
)

// Server serves one workspace over HTTP.
type Server struct {
	mu     sync.Mutex
	ws     *tile.Workspace
	store  store.Store
	logger *charmlog.Logger
	router chi.Router
}

// New creates a server around the given workspace. The store may be nil,
// which disables the /layouts endpoints. A nil logger falls back to the
// charm default.
func New(ws *tile.Workspace, st store.Store, logger *charmlog.Logger) *Server {
	if logger == nil {
		logger = charmlog.Default()
	}
	s := &Server{ws: ws, store: st, logger: logger}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler for mounting in a host server.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves until ctx is cancelled, then shuts down
// gracefully with a short drain timeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/workspace", func(r chi.Router) {
		r.Get("/", s.handleSnapshot)
		r.Get("/stats", s.handleStats)
		r.Get("/tree", s.handleTree)
		r.Get("/dot", s.handleDOT)
		r.Get("/svg", s.handleSVG)
		r.Post("/tabs", s.handleAddTab)
		r.Post("/split", s.handleSplit)
		r.Post("/move", s.handleMove)
		r.Post("/active", s.handleActive)
		r.Post("/focus", s.handleFocus)
		r.Post("/component", s.handleComponent)
		r.Post("/viewport", s.handleViewport)
		r.Delete("/tiles/{id}", s.handleRemove)
	})

	if s.store != nil {
		r.Route("/layouts", func(r chi.Router) {
			r.Get("/", s.handleListLayouts)
			r.Put("/{name}", s.handleSaveLayout)
			r.Post("/{name}/load", s.handleLoadLayout)
			r.Delete("/{name}", s.handleDeleteLayout)
		})
	}

	return r
}

// logRequests logs method, path, status and duration for each request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

// statusFor maps structured error codes onto HTTP status codes.
func statusFor(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeTileNotFound, apperrors.ErrCodeNotFound,
		apperrors.ErrCodeSnapshotNotFound, apperrors.ErrCodeFileNotFound,
		apperrors.ErrCodePresetNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeAlreadyHasChild, apperrors.ErrCodeDegenerateSplit,
		apperrors.ErrCodeFocusNotActive:
		return http.StatusConflict
	case apperrors.ErrCodeInternal, apperrors.ErrCodeStorage:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
