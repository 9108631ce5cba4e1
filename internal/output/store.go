// Package output writes generated assets under an output root and keeps a
// manifest of what was written.
package output

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const ManifestPath = ".refsheet/manifest.json"

// Entry records one written file.
type Entry struct {
	Path   string `json:"path"`
	Bytes  int    `json:"bytes"`
	SHA256 string `json:"sha256"`
}

type Manifest struct {
	Generated time.Time `json:"generated"`
	Files     []Entry   `json:"files"`
}

// Store is safe for concurrent writes.
type Store struct {
	baseDir string

	mu      sync.Mutex
	entries map[string]Entry
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, entries: make(map[string]Entry)}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) BaseDir() string {
	return s.baseDir
}

// resolve maps a slash separated relative path into the store.
func (s *Store) resolve(rel string) (string, error) {
	clean := path.Clean(rel)
	if rel == "" || path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("output: path %q escapes the output root", rel)
	}
	return filepath.Join(s.baseDir, filepath.FromSlash(clean)), nil
}

// Write stores data at rel, creating parent directories, and records it.
func (s *Store) Write(rel string, data []byte) error {
	full, err := s.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(full, data, 0644); err != nil {
		return err
	}

	sum := sha256.Sum256(data)
	e := Entry{Path: path.Clean(rel), Bytes: len(data), SHA256: hex.EncodeToString(sum[:])}
	s.mu.Lock()
	s.entries[e.Path] = e
	s.mu.Unlock()
	return nil
}

// Entries returns everything written so far, sorted by path.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// WriteManifest saves the current entries to ManifestPath.
func (s *Store) WriteManifest() (*Manifest, error) {
	m := &Manifest{Generated: time.Now().UTC(), Files: s.Entries()}

	full, _ := s.resolve(ManifestPath)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return nil, err
	}
	f, err := os.Create(full)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Store) ReadManifest() (*Manifest, error) {
	full, _ := s.resolve(ManifestPath)
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("output: manifest: %w", err)
	}
	return &m, nil
}

// Verify re-hashes every manifest entry and returns the paths that are
// missing or changed.
func (s *Store) Verify(m *Manifest) ([]string, error) {
	var stale []string
	for _, e := range m.Files {
		full, err := s.resolve(e.Path)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(full)
		if err != nil {
			if os.IsNotExist(err) {
				stale = append(stale, e.Path)
				continue
			}
			return nil, err
		}
		sum := sha256.Sum256(data)
		if hex.EncodeToString(sum[:]) != e.SHA256 {
			stale = append(stale, e.Path)
		}
	}
	return stale, nil
}
