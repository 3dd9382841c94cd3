package cache

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/justin4957/UNStatsExplorer/table"
)

// File is a Store persisting entries as JSON files, letting metadata survive
// across CLI invocations. Writes go to a temporary file first and are
// renamed into place so a crashed write never leaves a torn entry.
type File struct {
	dir    string
	maxAge time.Duration // 0 means entries never expire
}

// fileEntry is the on-disk envelope around a cached result.
type fileEntry struct {
	FetchedAt time.Time    `json:"fetched_at"`
	Result    table.Result `json:"result"`
}

// NewFile creates a file-backed store rooted at dir, creating it if needed.
// maxAge of zero keeps entries valid forever; they are then replaced only by
// an explicit force refresh.
func NewFile(dir string, maxAge time.Duration) (*File, error) {
	if dir == "" {
		return nil, fmt.Errorf("cache directory is required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &File{dir: dir, maxAge: maxAge}, nil
}

// Get reads the entry for key. Entries older than maxAge are treated as
// absent.
func (f *File) Get(key string) (table.Result, bool) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		return table.Result{}, false
	}

	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return table.Result{}, false
	}

	if f.maxAge > 0 && time.Since(entry.FetchedAt) > f.maxAge {
		return table.Result{}, false
	}
	return entry.Result, true
}

// Put writes the entry for key atomically, overwriting any previous one.
func (f *File) Put(key string, value table.Result) error {
	entry := fileEntry{FetchedAt: time.Now(), Result: value}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	path := f.path(key)
	tmp := fmt.Sprintf("%s.tmp.%d", path, rand.Int())
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return os.Rename(tmp, path)
}

// path maps a key to its file. Keys are short deterministic collection
// names, so a character sweep is all the sanitizing needed.
func (f *File) path(key string) string {
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_",
		"?", "_", "\"", "_", "<", "_", ">", "_", "|", "_", " ", "_",
	)
	return filepath.Join(f.dir, replacer.Replace(key)+".json")
}
