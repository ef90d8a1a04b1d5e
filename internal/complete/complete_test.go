package complete

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirjump/internal/history"
)

// seed writes a history db containing paths in MRU order.
func seed(t *testing.T, dbPath string, paths ...string) {
	t.Helper()
	var h history.History
	for i := len(paths) - 1; i >= 0; i-- {
		h.Promote(paths[i])
	}
	require.NoError(t, h.Save(dbPath))
}

// stored reads back the persisted MRU list.
func stored(t *testing.T, dbPath string) []string {
	t.Helper()
	h, corrupt, err := history.Load(dbPath)
	require.NoError(t, err)
	require.False(t, corrupt)
	return h.Paths()
}

func TestCompleteDirectHit(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "projects")
	require.NoError(t, os.Mkdir(target, 0o755))

	dbPath := filepath.Join(t.TempDir(), "history.json")
	seed(t, dbPath, "/old/one", "/old/two")

	c := New(dbPath)
	got, err := c.Complete(target, 0.4, 0)
	require.NoError(t, err)

	canonical, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0].Confidence)
	assert.Equal(t, canonical, got[0].Path)
	assert.Equal(t, []string{canonical, "/old/one", "/old/two"}, stored(t, dbPath))
}

func TestCompleteDirectHitResolvesSymlink(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real")
	require.NoError(t, os.Mkdir(real, 0o755))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(real, link))

	dbPath := filepath.Join(t.TempDir(), "history.json")
	c := New(dbPath)
	got, err := c.Complete(link, 0.4, 0)
	require.NoError(t, err)

	canonical, err := filepath.EvalSymlinks(real)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, canonical, got[0].Path)
}

func TestCompleteFuzzyPromotesSingleBest(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.json")
	seed(t, dbPath, "/a/rust-app", "/a/python-app", "/a/notes")

	c := New(dbPath)
	got, err := c.Complete("rust", 0.1, 0)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Contains(t, got[0].Path, "rust")
	// The winner moved to the front; it already was, so order is unchanged.
	assert.Equal(t, []string{"/a/rust-app", "/a/python-app", "/a/notes"}, stored(t, dbPath))
}

func TestCompleteFuzzyPromotionReorders(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.json")
	seed(t, dbPath, "/a/notes", "/a/python-app", "/a/rust-app")

	c := New(dbPath)
	got, err := c.Complete("rust", 0.1, 0)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "/a/rust-app", got[0].Path)
	assert.Equal(t, []string{"/a/rust-app", "/a/notes", "/a/python-app"}, stored(t, dbPath))
}

func TestCompleteListModeIsReadOnly(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.json")
	seed(t, dbPath, "/a/notes", "/a/rust-app", "/a/rusty")

	c := New(dbPath)
	got, err := c.Complete("rust", 0.1, 5)
	require.NoError(t, err)

	assert.NotEmpty(t, got)
	assert.Equal(t, []string{"/a/notes", "/a/rust-app", "/a/rusty"}, stored(t, dbPath),
		"listing must not reorder the history")
}

func TestCompleteListModeLimit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.json")
	seed(t, dbPath, "/a/app1", "/a/app2", "/a/app3")

	c := New(dbPath)
	got, err := c.Complete("app", 0.1, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCompleteEmptyHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.json")

	c := New(dbPath)
	got, err := c.Complete("anything", 0.4, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Nothing matched, nothing was used, so nothing was written.
	_, statErr := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCompleteNoMatchAboveThreshold(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.json")
	seed(t, dbPath, "/a/notes")

	c := New(dbPath)
	got, err := c.Complete("zzzzzz", 0.4, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, []string{"/a/notes"}, stored(t, dbPath))
}

func TestCompleteCorruptDBDegradesToEmpty(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(dbPath, []byte("not valid data"), 0o644))

	c := New(dbPath)
	got, err := c.Complete("anything", 0.4, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestForgetRemovesAndPersists(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "gone-soon")
	require.NoError(t, os.Mkdir(target, 0o755))
	canonical, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)

	dbPath := filepath.Join(t.TempDir(), "history.json")
	seed(t, dbPath, "/a/keep", canonical, "/a/also-keep")

	c := New(dbPath)
	require.NoError(t, c.Forget(target))
	assert.Equal(t, []string{"/a/keep", "/a/also-keep"}, stored(t, dbPath))
}

func TestForgetDefaultsToCurrentDir(t *testing.T) {
	dir := t.TempDir()
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldwd) })
	canonical, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	dbPath := filepath.Join(t.TempDir(), "history.json")
	seed(t, dbPath, canonical, "/a/keep")

	c := New(dbPath)
	require.NoError(t, c.Forget(""))
	assert.Equal(t, []string{"/a/keep"}, stored(t, dbPath))
}

func TestForgetNonexistentPathFails(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.json")
	seed(t, dbPath, "/a/keep")

	c := New(dbPath)
	err := c.Forget(filepath.Join(t.TempDir(), "never-existed"))
	assert.Error(t, err)
	assert.Equal(t, []string{"/a/keep"}, stored(t, dbPath))
}

func TestPromoteRecordsUse(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.json")
	seed(t, dbPath, "/a/one", "/a/two")

	c := New(dbPath)
	require.NoError(t, c.Promote("/a/two"))
	assert.Equal(t, []string{"/a/two", "/a/one"}, stored(t, dbPath))
}

func TestKnown(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.json")
	seed(t, dbPath, "/a/one", "/a/two")

	c := New(dbPath)
	got, err := c.Known()
	require.NoError(t, err)
	assert.Equal(t, []string{"/a/one", "/a/two"}, got)
}
