package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/docktile/docktile/pkg/errors"
	"github.com/docktile/docktile/pkg/tile"
)

// File is a file-based snapshot store for CLI applications.
// Layouts are stored as JSON files in a config directory.
type File struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFile creates a new file-based store.
// If baseDir is empty, defaults to ~/.config/docktile/layouts/
func NewFile(baseDir string) (*File, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "docktile", "layouts")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create layout dir: %w", err)
	}
	return &File{baseDir: baseDir}, nil
}

func (f *File) layoutPath(name string) string {
	return filepath.Join(f.baseDir, name+".json")
}

// Load retrieves a snapshot by name.
func (f *File) Load(ctx context.Context, name string) (tile.Snapshot, error) {
	if err := errors.ValidateLayoutName(name); err != nil {
		return tile.Snapshot{}, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	data, err := os.ReadFile(f.layoutPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return tile.Snapshot{}, fmt.Errorf("layout %q: %w", name, ErrNotFound)
		}
		return tile.Snapshot{}, fmt.Errorf("read layout file: %w", err)
	}

	var snap tile.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return tile.Snapshot{}, fmt.Errorf("parse layout %q: %w", name, err)
	}
	return snap, nil
}

// Save stores a snapshot under the given name.
func (f *File) Save(ctx context.Context, name string, snap tile.Snapshot) error {
	if err := errors.ValidateLayoutName(name); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal layout %q: %w", name, err)
	}
	if err := os.WriteFile(f.layoutPath(name), data, 0600); err != nil {
		return fmt.Errorf("write layout file: %w", err)
	}
	return nil
}

// Delete removes a stored snapshot.
func (f *File) Delete(ctx context.Context, name string) error {
	if err := errors.ValidateLayoutName(name); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.layoutPath(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove layout file: %w", err)
	}
	return nil
}

// List returns the names of all stored layouts, sorted.
func (f *File) List(ctx context.Context) ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	entries, err := os.ReadDir(f.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read layout dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Close does nothing for the file store.
func (f *File) Close() error { return nil }

// Path returns the base directory for layout files.
func (f *File) Path() string {
	return f.baseDir
}

var _ Store = (*File)(nil)
