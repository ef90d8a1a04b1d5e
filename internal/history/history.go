// Package history maintains the on-disk record of visited directories.
//
// The file is a single JSON object with one field, "paths", holding absolute
// directory paths in most-recently-used order (index 0 = most recent). There
// is no versioning and no locking: concurrent invocations race and the last
// writer wins, which at worst loses a recency bump.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// dbContent is the persisted shape. Paths is a pointer so we can tell a
// file that decoded fine but is missing the field apart from a real list.
type dbContent struct {
	Paths *[]string `json:"paths"`
}

// History is the MRU-ordered list of visited directories. The zero value is
// an empty, usable history.
type History struct {
	paths []string
}

// Paths returns the entries in MRU order. The returned slice is the
// history's backing storage; callers must not mutate it.
func (h *History) Paths() []string {
	return h.paths
}

// Len returns the number of recorded directories.
func (h *History) Len() int {
	return len(h.paths)
}

// Promote moves path to the front, inserting it if absent. Promoting the
// current front entry is a no-op, so repeated promotion is idempotent.
func (h *History) Promote(path string) {
	h.Remove(path)
	h.paths = append([]string{path}, h.paths...)
}

// Remove deletes path from the history. Removing an absent path does
// nothing.
func (h *History) Remove(path string) {
	kept := h.paths[:0]
	for _, p := range h.paths {
		if p != path {
			kept = append(kept, p)
		}
	}
	h.paths = kept
}

// Load reads the history db at file. A missing file is a fresh start and
// yields an empty history. A file that exists but does not decode to the
// expected shape yields an empty history with corrupt=true so the caller can
// warn; navigation must never be blocked by a mangled db. Any other read
// failure (permissions, I/O) is returned as a hard error.
//
// Load also makes sure the db's parent directory exists so a later Save has
// somewhere to write. Failure to create it is only warned about here; the
// actual read or write will surface the real error if there is one.
func Load(file string) (*History, bool, error) {
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not create history directory: %v\n", err)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return &History{}, false, nil
		}
		return nil, false, fmt.Errorf("reading history db %s: %w", file, err)
	}

	var content dbContent
	if err := json.Unmarshal(data, &content); err != nil || content.Paths == nil {
		// Corrupt or truncated db (e.g. a crash mid-write). Degrade to
		// empty rather than failing the whole invocation.
		return &History{}, true, nil
	}
	return &History{paths: *content.Paths}, false, nil
}

// Save writes the full history to file, truncating whatever was there.
// This is deliberately not crash-atomic (no temp-file-then-rename); a crash
// mid-write leaves a corrupt file that the next Load tolerates.
func (h *History) Save(file string) error {
	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("opening history db %s for writing: %w", file, err)
	}
	defer f.Close()

	paths := h.paths
	if paths == nil {
		paths = []string{}
	}
	if err := json.NewEncoder(f).Encode(dbContent{Paths: &paths}); err != nil {
		return fmt.Errorf("writing history db %s: %w", file, err)
	}
	return nil
}
