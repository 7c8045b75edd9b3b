// Package bookmarks persists named directory bookmarks and a bounded
// recent-directory history, the navigation state a file manager keeps
// between sessions.
package bookmarks

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/filemanpro/fmkit/pkg/fmerrors"
	"github.com/filemanpro/fmkit/pkg/platform"
	"github.com/filemanpro/fmkit/pkg/syncutil"
)

// maxRecent bounds the recent-directory history.
const maxRecent = 10

// fileLocks serializes saves per target file, so independent [Store]
// instances pointed at the same file cannot interleave writes.
var fileLocks syncutil.KeyLocker = syncutil.NewKeyLock()

// DefaultPath returns the bookmark file location under the user home
// directory of p.
func DefaultPath(p platform.Platform) (string, error) {
	home, err := p.HomeDir()
	if err != nil {
		return "", fmt.Errorf("locate bookmark file: %w", err)
	}

	return filepath.Join(home, ".fmkit", "bookmarks.yaml"), nil
}

type storeData struct {
	Bookmarks map[string]string `yaml:"bookmarks,omitempty"`
	Recent    []string          `yaml:"recent,omitempty"`
}

// Store holds bookmarks and recent directories, backed by a YAML file.
// It is safe for concurrent use.
type Store struct {
	path string
	data storeData
	mu   sync.RWMutex
}

// NewStore creates a [Store] backed by the YAML file at path. The file is
// not read until [Store.Load].
func NewStore(path string) *Store {
	return &Store{
		path: path,
		data: storeData{Bookmarks: map[string]string{}},
	}
}

// Load reads the backing file. A missing file is not an error; the store
// simply starts empty.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("read bookmark file: %w", err)
	}

	var data storeData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("%w: %w", fmerrors.ErrInvalidFormat, err)
	}

	if data.Bookmarks == nil {
		data.Bookmarks = map[string]string{}
	}

	s.data = data

	return nil
}

// Save writes the store to its backing file, creating parent directories
// as needed.
func (s *Store) Save() error {
	fileLocks.Lock(s.path)
	defer fileLocks.Unlock(s.path)

	s.mu.RLock()
	raw, err := yaml.Marshal(s.data)
	s.mu.RUnlock()

	if err != nil {
		return fmt.Errorf("%w: %w", fmerrors.ErrYAMLMarshal, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create bookmark directory: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write bookmark file: %w", err)
	}

	return nil
}

// Set adds or replaces the bookmark name pointing at path.
func (s *Store) Set(name, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Bookmarks[name] = path
}

// Get returns the path bookmarked under name.
func (s *Store) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path, ok := s.data.Bookmarks[name]

	return path, ok
}

// Remove deletes the bookmark name, reporting whether it existed.
func (s *Store) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.data.Bookmarks[name]
	delete(s.data.Bookmarks, name)

	return ok
}

// All returns a copy of the bookmark map.
func (s *Store) All() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.data.Bookmarks))
	for k, v := range s.data.Bookmarks {
		out[k] = v
	}

	return out
}

// AddRecent records path as the most recently visited directory,
// deduplicating earlier visits and keeping at most ten entries.
func (s *Store) AddRecent(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recent := slices.DeleteFunc(s.data.Recent, func(p string) bool {
		return p == path
	})

	recent = append([]string{path}, recent...)
	if len(recent) > maxRecent {
		recent = recent[:maxRecent]
	}

	s.data.Recent = recent
}

// Recent returns the recent-directory history, most recent first.
func (s *Store) Recent() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.data.Recent)
}
