// Package complete glues the history store and the ranking engine together:
// one invocation = load, rank (or direct hit), optionally promote, persist.
package complete

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dirjump/internal/history"
	"dirjump/internal/rank"
)

// Completer runs completion and forget operations against one history db.
type Completer struct {
	DBPath string
	Debug  bool
}

// New returns a Completer bound to the given history db file.
func New(dbPath string) *Completer {
	return &Completer{DBPath: dbPath}
}

// canonicalize resolves p to an absolute, symlink-free path.
func canonicalize(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", p, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", p, err)
	}
	return resolved, nil
}

// Complete resolves query to a ranked list of known directories.
//
// If query names a directory that exists right now, ranking is bypassed: the
// directory is canonicalized, promoted, persisted, and returned as the single
// result with confidence exactly 1.0.
//
// Otherwise the history is ranked against the query. listN <= 0 means "best
// match only": the winning candidate (if any) is promoted and persisted,
// since returning it counts as using it. listN > 0 returns up to listN
// candidates and leaves the history untouched; listing is read-only.
//
// An empty result list is not an error; the caller decides how to signal it.
func (c *Completer) Complete(query string, minConfidence float64, listN int) ([]rank.Candidate, error) {
	hist, err := c.load()
	if err != nil {
		return nil, err
	}

	start := time.Now()

	if fi, statErr := os.Stat(query); statErr == nil && fi.IsDir() {
		if c.Debug {
			fmt.Fprintln(os.Stderr, "query is a concrete directory")
		}
		path, err := canonicalize(query)
		if err != nil {
			return nil, err
		}
		hist.Promote(path)
		if err := hist.Save(c.DBPath); err != nil {
			return nil, err
		}
		return []rank.Candidate{{Path: path, Confidence: 1.0}}, nil
	}

	limit := listN
	if limit <= 0 {
		limit = 1
	}
	matches := rank.Rank(hist.Paths(), query, minConfidence, limit)

	if listN <= 0 && len(matches) > 0 {
		hist.Promote(matches[0].Path)
		if err := hist.Save(c.DBPath); err != nil {
			return nil, err
		}
	}

	if c.Debug {
		fmt.Fprintf(os.Stderr, "ranked %d entries in %.2f ms\n",
			hist.Len(), float64(time.Since(start).Microseconds())/1000)
	}
	return matches, nil
}

// Forget removes path from the history and persists. An empty path means
// the current directory. The target must still exist on disk: a path that
// cannot be canonicalized is a hard error rather than a silent no-op, so a
// typo does not masquerade as success.
func (c *Completer) Forget(path string) error {
	if path == "" {
		path = "."
	}
	canonical, err := canonicalize(path)
	if err != nil {
		return err
	}

	hist, err := c.load()
	if err != nil {
		return err
	}
	hist.Remove(canonical)
	return hist.Save(c.DBPath)
}

// Promote records a use of path (already canonical) and persists. The
// interactive picker calls this after a selection.
func (c *Completer) Promote(path string) error {
	hist, err := c.load()
	if err != nil {
		return err
	}
	hist.Promote(path)
	return hist.Save(c.DBPath)
}

// Known returns the recorded directories in MRU order.
func (c *Completer) Known() ([]string, error) {
	hist, err := c.load()
	if err != nil {
		return nil, err
	}
	return hist.Paths(), nil
}

func (c *Completer) load() (*history.History, error) {
	hist, corrupt, err := history.Load(c.DBPath)
	if err != nil {
		return nil, fmt.Errorf("loading history db: %w", err)
	}
	if corrupt {
		fmt.Fprintf(os.Stderr, "warning: history db %s is unreadable, starting over with an empty one\n", c.DBPath)
	}
	return hist, nil
}
