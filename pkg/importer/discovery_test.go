package importer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover_AutoPatterns(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{
		"tokens.json",
		"design/colors.tokens.json",
		"design/design-tokens.json",
		"src/tokens.ts",
		"src/theme.tokens.css",
		"src/app.ts",
		"package.json",
		"node_modules/ui/tokens.json",
		"dist/tokens.js",
	} {
		writeFile(t, filepath.Join(root, rel), "{}")
	}

	files, err := Discover(root, DiscoverOptions{})
	require.NoError(t, err)

	var rel []string
	for _, f := range files {
		r, err := filepath.Rel(root, f)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	assert.Equal(t, []string{
		"design/colors.tokens.json",
		"design/design-tokens.json",
		"src/theme.tokens.css",
		"src/tokens.ts",
		"tokens.json",
	}, rel)
}

func TestDiscover_CustomPatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "styles", "globals.css"), "")
	writeFile(t, filepath.Join(root, "styles", "legacy", "old.css"), "")

	files, err := Discover(root, DiscoverOptions{
		Include: []string{"styles/**/*.css"},
		Exclude: []string{"styles/legacy/**"},
	})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "globals.css", filepath.Base(files[0]))
}

func TestDiscover_InvalidPattern(t *testing.T) {
	_, err := Discover(t.TempDir(), DiscoverOptions{Include: []string{"[unclosed"}})
	assert.Error(t, err)
}
