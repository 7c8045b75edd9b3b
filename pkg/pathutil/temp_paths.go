// Copyright 2017-2018 The Argo Authors
// Modifications Copyright 2024-2025 Jacob Colvin
// Modifications Copyright 2026 The fmkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pathutil

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// ScratchPaths generates and memoizes random scratch paths under a root
// directory. Lookups for the same key return the same path for the lifetime
// of the instance. Report writers use it to stage output files before
// renaming them into place.
type ScratchPaths struct {
	paths map[string]string
	root  string
	mu    sync.RWMutex
}

func NewScratchPaths(root string) *ScratchPaths {
	return &ScratchPaths{
		root:  root,
		paths: map[string]string{},
	}
}

// GetPath generates a path for the given key or returns a previously
// generated one.
func (p *ScratchPaths) GetPath(key string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if val, ok := p.paths[key]; ok {
		return val, nil
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}

	path := filepath.Join(p.root, id.String())
	p.paths[key] = path

	return path, nil
}

// GetPathIfExists gets a path for the given key if one was previously
// generated. Otherwise, it returns an empty string.
func (p *ScratchPaths) GetPathIfExists(key string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.paths[key]
}

// GetPaths gets a copy of the map of paths.
func (p *ScratchPaths) GetPaths() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	paths := make(map[string]string, len(p.paths))
	for k, v := range p.paths {
		paths[k] = v
	}

	return paths
}

// EncodedPaths maps keys to paths through a bijective base64 encoding
// instead of in-memory state, so the mapping survives across process
// invocations. Scan report directories use it to give each scanned root a
// stable file. The root directory is created on construction.
type EncodedPaths struct {
	root string
}

func NewEncodedPaths(root string) (*EncodedPaths, error) {
	if err := os.MkdirAll(root, 0o700); err != nil {
		return nil, fmt.Errorf("create scratch root %q: %w", root, err)
	}

	return &EncodedPaths{root: root}, nil
}

func (p *EncodedPaths) keyToPath(key string) string {
	return filepath.Join(p.root, base64.URLEncoding.EncodeToString([]byte(key)))
}

func (p *EncodedPaths) pathToKey(path string) (string, error) {
	d, err := base64.URLEncoding.DecodeString(filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("decode key for %q: %w", path, err)
	}

	return string(d), nil
}

// GetPath returns the encoded path for the given key.
func (p *EncodedPaths) GetPath(key string) (string, error) {
	return p.keyToPath(key), nil
}

// GetPathIfExists gets the path for the given key if it exists on disk.
// Otherwise, it returns an empty string.
func (p *EncodedPaths) GetPathIfExists(key string) string {
	path := p.keyToPath(key)
	if _, err := os.Stat(path); err != nil {
		return ""
	}

	return path
}

// GetPaths reads the scratch root and returns the full key to path mapping.
// Entries whose names do not decode are skipped.
func (p *EncodedPaths) GetPaths() map[string]string {
	paths := map[string]string{}

	ds, err := os.ReadDir(p.root)
	if err != nil {
		return paths
	}

	for _, d := range ds {
		path := filepath.Join(p.root, d.Name())

		key, err := p.pathToKey(path)
		if err != nil {
			continue
		}

		paths[key] = path
	}

	return paths
}
