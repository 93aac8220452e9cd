package watch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/tokensmith/pkg/export"
	"github.com/gnana997/tokensmith/pkg/importer"
	"github.com/gnana997/tokensmith/pkg/util"
)

const tokensV1 = `{"colors":[{"id":1,"name":"Primary","light":"#3b82f6","dark":"#60a5fa","path":"brand/Primary"}]}`
const tokensV2 = `{"colors":[{"id":1,"name":"Primary","light":"#ff0000","dark":"#60a5fa","path":"brand/Primary"}]}`

func newImporter(t *testing.T) *importer.Importer {
	t.Helper()
	im := importer.New(util.Discard())
	t.Cleanup(func() { im.Close() })
	return im
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

func TestWatcher_SingleFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tokens.json")
	out := filepath.Join(dir, "out", "tokens.css")
	require.NoError(t, os.WriteFile(src, []byte(tokensV1), 0o644))

	w := New(newImporter(t), Options{
		Debounce: 20 * time.Millisecond,
		Targets:  []Target{{Format: export.FormatCSS, Path: out}},
	}, util.Discard())

	result, err := w.Start(src)
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, result.Err)
	assert.Equal(t, []string{out}, result.Written)
	assert.Contains(t, readFile(t, out), "--primary: #3b82f6;")

	require.NoError(t, os.WriteFile(src, []byte(tokensV2), 0o644))
	require.Eventually(t, func() bool {
		return strings.Contains(readFile(t, out), "--primary: #ff0000;")
	}, 5*time.Second, 20*time.Millisecond)

	stats := w.GetStats()
	assert.True(t, stats.IsRunning)
	assert.GreaterOrEqual(t, stats.Rebuilds, int64(2))
}

func TestWatcher_MalformedKeepsOutputs(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tokens.json")
	out := filepath.Join(dir, "tokens.scss")
	require.NoError(t, os.WriteFile(src, []byte(tokensV1), 0o644))

	failed := make(chan Result, 4)
	w := New(newImporter(t), Options{
		Debounce: 20 * time.Millisecond,
		Targets:  []Target{{Format: export.FormatSCSS, Path: out}},
		OnRebuild: func(r Result) {
			if r.Err != nil {
				failed <- r
			}
		},
	}, util.Discard())

	_, err := w.Start(src)
	require.NoError(t, err)
	defer w.Stop()
	before := readFile(t, out)
	require.NotEmpty(t, before)

	require.NoError(t, os.WriteFile(src, []byte(`{"colors": [`), 0o644))
	select {
	case r := <-failed:
		assert.Empty(t, r.Written)
	case <-time.After(5 * time.Second):
		t.Fatal("expected a failed rebuild")
	}
	assert.Equal(t, before, readFile(t, out))
}

func TestWatcher_DirectoryIgnoresOwnOutputs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tokens.json"), []byte(tokensV1), 0o644))
	out := filepath.Join(dir, "tokens.css")

	w := New(newImporter(t), Options{
		Debounce: 20 * time.Millisecond,
		Targets:  []Target{{Format: export.FormatCSS, Path: out}},
	}, util.Discard())

	result, err := w.Start(dir)
	require.NoError(t, err)
	require.NoError(t, result.Err)
	assert.Len(t, result.Tokens, 1)

	// A second rebuild must not import tokens.css back in.
	result = w.Rebuild()
	require.NoError(t, result.Err)
	assert.Len(t, result.Tokens, 1)

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
	assert.False(t, w.GetStats().IsRunning)

	_, err = w.Start(dir)
	assert.Error(t, err)
}

func TestWatcher_MissingRoot(t *testing.T) {
	w := New(newImporter(t), Options{}, nil)
	_, err := w.Start(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
