package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/docktile/docktile/pkg/errors"
	"github.com/docktile/docktile/pkg/render"
	"github.com/docktile/docktile/pkg/store"
	"github.com/docktile/docktile/pkg/tile"
)

// errorEnvelope is the JSON error body.
type errorEnvelope struct {
	Error struct {
		Code    apperrors.Code `json:"code"`
		Message string         `json:"message"`
	} `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	e := apperrors.FromLayout(err)
	var env errorEnvelope
	env.Error.Code = e.Code
	env.Error.Message = e.Message
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFor(e.Code))
	_ = json.NewEncoder(w).Encode(env)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "invalid request body")
	}
	return nil
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.ws.Snapshot()
	s.mu.Unlock()

	etag := `"` + store.SnapshotHash(snap) + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	st := s.ws.Stats()
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleTree(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	snap := s.ws.Snapshot()
	s.mu.Unlock()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(render.Tree(snap)))
}

func (s *Server) handleDOT(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.ws.Snapshot()
	s.mu.Unlock()
	opts := render.Options{Detailed: r.URL.Query().Get("detailed") == "true"}
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	_, _ = w.Write([]byte(render.ToDOT(snap, opts)))
}

func (s *Server) handleSVG(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	snap := s.ws.Snapshot()
	s.mu.Unlock()
	svg, err := render.RenderSVG(render.ToDOT(snap, render.Options{}))
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

func (s *Server) handleAddTab(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Panel    string `json:"panel"`
		Name     string `json:"name"`
		Activate bool   `json:"activate"`
	}
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.mu.Lock()
	id, err := s.ws.AddTab(req.Panel, req.Name, req.Activate)
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleSplit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tab       string `json:"tab"`
		Panel     string `json:"panel"`
		Direction string `json:"direction"`
	}
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.mu.Lock()
	id, err := s.ws.SplitPanel(req.Tab, req.Panel, tile.Direction(req.Direction))
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tab   string `json:"tab"`
		Panel string `json:"panel"`
		Index *int   `json:"index"`
	}
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	index := -1
	if req.Index != nil {
		index = *req.Index
	}
	s.mu.Lock()
	err := s.ws.MoveTab(req.Tab, req.Panel, index)
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleActive(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tab string `json:"tab"`
	}
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.mu.Lock()
	err := s.ws.SetActiveTab(req.Tab)
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFocus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tab string `json:"tab"`
	}
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.mu.Lock()
	err := s.ws.SetFocusedActiveTab(req.Tab)
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleComponent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tile      string        `json:"tile"`
		Component string        `json:"component"`
		Props     tile.Metadata `json:"props"`
	}
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := apperrors.ValidateComponentID(req.Component); err != nil {
		s.writeError(w, err)
		return
	}
	s.mu.Lock()
	id, err := s.ws.SetComponent(req.Tile, req.Component, req.Props)
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (s *Server) handleViewport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	}
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.mu.Lock()
	s.ws.SetViewport(req.Width, req.Height)
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	err := s.ws.RemoveTile(id)
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListLayouts(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeStorage, err, "list layouts"))
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"layouts": names})
}

func (s *Server) handleSaveLayout(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := apperrors.ValidateLayoutName(name); err != nil {
		s.writeError(w, err)
		return
	}
	s.mu.Lock()
	snap := s.ws.Snapshot()
	s.mu.Unlock()
	if err := s.store.Save(r.Context(), name, snap); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeStorage, err, "save layout %q", name))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLoadLayout(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	snap, err := s.store.Load(r.Context(), name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, apperrors.New(apperrors.ErrCodeSnapshotNotFound, "layout %q not found", name))
			return
		}
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeStorage, err, "load layout %q", name))
		return
	}
	ws, err := tile.Hydrate(snap)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.mu.Lock()
	s.ws = ws
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteLayout(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := s.store.Delete(r.Context(), name); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeStorage, err, "delete layout %q", name))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
