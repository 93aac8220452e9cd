package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/tokensmith/pkg/export"
	"github.com/gnana997/tokensmith/pkg/tokens"
	"github.com/gnana997/tokensmith/pkg/util"
)

func newTestImporter(t *testing.T) *Importer {
	t.Helper()
	im := New(util.Discard())
	t.Cleanup(func() { im.Close() })
	return im
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDetectKind(t *testing.T) {
	tests := map[string]Kind{
		"tokens.json":        KindJSON,
		"theme.CSS":          KindCSS,
		"tokens.ts":          KindJS,
		"tailwind.config.js": KindJS,
		"tokens.mjs":         KindJS,
		"tokens.yaml":        KindUnknown,
		"README":             KindUnknown,
	}
	for path, want := range tests {
		assert.Equal(t, want, DetectKind(path), path)
	}
}

func TestParseCSS(t *testing.T) {
	data, err := os.ReadFile("testdata/theme.css")
	require.NoError(t, err)

	set, err := ParseCSS(data)
	require.NoError(t, err)

	require.Len(t, set, 4)
	assert.Equal(t, tokens.ColorToken{Name: "Primary", Light: "#3b82f6", Dark: "#60a5fa"}, set[0])
	assert.Equal(t, tokens.ColorToken{Name: "Surface", Light: "#ffffff", Dark: "#111827"}, set[1])
	assert.Equal(t, tokens.ColorToken{Name: "Text On Primary", Light: "#ffffff", Dark: "#ffffff"}, set[2])
	assert.Equal(t, tokens.ColorToken{Name: "Accent", Light: "#f59e0b", Dark: "#f59e0b"}, set[3])
}

func TestParseCSS_RoundTripsExport(t *testing.T) {
	original := tokens.ColorSet{
		{Name: "Primary Hover", Light: "#4b8ff7", Dark: "#7bb4fb"},
		{Name: "Surface", Light: "#ffffff", Dark: "#111827"},
	}
	set, err := ParseCSS([]byte(export.CSS(original)))
	require.NoError(t, err)
	assert.Equal(t, original, set)
}

func TestImportFile_TypeScript(t *testing.T) {
	im := newTestImporter(t)

	set, err := im.ImportFile("testdata/tokens.ts")
	require.NoError(t, err)

	require.Len(t, set, 4)
	assert.Equal(t, tokens.ColorToken{Name: "Primary", Light: "#3b82f6", Dark: "#60a5fa", Category: "brand"}, set[0])
	assert.Equal(t, tokens.ColorToken{Name: "Text On Primary", Light: "#ffffff", Dark: "#ffffff"}, set[1])
	assert.Equal(t, tokens.ColorToken{Name: "Success", Light: "#22c55e", Dark: "#4ade80", Category: "semantic"}, set[2])
	assert.Equal(t, tokens.ColorToken{Name: "Error Strong", Light: "#ef4444", Dark: "#f87171", Category: "semantic"}, set[3])
}

func TestImportBytes_JSModuleRoundTrip(t *testing.T) {
	im := newTestImporter(t)
	original := tokens.ColorSet{
		{Name: "Primary", Light: "#3b82f6", Dark: "#60a5fa", Category: "brand"},
		{Name: "Text On Primary", Light: "#ffffff", Dark: "#000000", Category: "text"},
	}

	for _, typed := range []bool{false, true} {
		path := "tokens.js"
		if typed {
			path = "tokens.ts"
		}
		set, err := im.ImportBytes([]byte(export.JSModule(original, typed)), path)
		require.NoError(t, err, path)
		assert.Equal(t, original, set, path)
	}
}

func TestImportBytes_SyntaxError(t *testing.T) {
	im := newTestImporter(t)
	_, err := im.ImportBytes([]byte(`export const a = { light: "#000000"`), "tokens.ts")
	assert.ErrorIs(t, err, tokens.ErrMalformedImport)
}

func TestImportFile_JSON(t *testing.T) {
	im := newTestImporter(t)

	set, err := im.ImportFile("../tokens/testdata/sample.json")
	require.NoError(t, err)
	require.Len(t, set, 3)
	assert.Equal(t, "brand", set[0].Category)

	stats := im.Stats()
	assert.Equal(t, 1, stats.Cached)
}

func TestImportFile_Unsupported(t *testing.T) {
	im := newTestImporter(t)
	_, err := im.ImportFile("tokens.yaml")
	assert.ErrorIs(t, err, ErrUnsupportedFile)
}

func TestImportDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "tokens.json"),
		`{"colors":[{"id":1,"name":"Primary","light":"#111111","dark":"#222222","path":"brand/Primary"}]}`)
	writeFile(t, filepath.Join(root, "b", "brand.tokens.css"),
		":root { --primary: #333333; --accent: #444444; }")
	writeFile(t, filepath.Join(root, "c", "broken.tokens.json"), `{"colors": 7}`)
	writeFile(t, filepath.Join(root, "node_modules", "lib", "tokens.json"),
		`{"colors":[{"id":1,"name":"Vendor","light":"#555555","dark":"#555555","path":"Vendor"}]}`)

	im := newTestImporter(t)
	set, err := im.ImportDir(root, DiscoverOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, tokens.ErrMalformedImport)

	require.Len(t, set, 2)
	assert.Equal(t, "Primary", set[0].Name)
	assert.Equal(t, "#333333", set[0].Light)
	assert.Equal(t, "Accent", set[1].Name)
}

func TestImportBytes_DuplicateNames(t *testing.T) {
	im := newTestImporter(t)

	tests := map[string]string{
		"theme.css": `:root { --text-on-primary: #ffffff; --textOnPrimary: #000000; }`,
		"tokens.ts": `export const primary = { name: "Primary", light: "#3b82f6", dark: "#60a5fa" };
export const brandPrimary = { name: "Primary", light: "#2563eb", dark: "#3b82f6" };`,
	}
	for path, src := range tests {
		set, err := im.ImportBytes([]byte(src), path)
		assert.ErrorIs(t, err, tokens.ErrMalformedImport, path)
		assert.ErrorContains(t, err, "duplicate name", path)
		assert.Nil(t, set, path)
	}
}

func TestImportBytes_NoColorTokens(t *testing.T) {
	im := newTestImporter(t)

	tests := map[string]string{
		"theme.css": `:root { --radius: 4px; --font: "Inter"; }`,
		"tokens.js": `export const spacing = { sm: 4, md: 8 };`,
	}
	for path, src := range tests {
		_, err := im.ImportBytes([]byte(src), path)
		assert.ErrorIs(t, err, tokens.ErrMalformedImport, path)
	}
}

func TestImportBytes_OutputReimports(t *testing.T) {
	im := newTestImporter(t)

	set, err := im.ImportBytes([]byte(`:root { --primary: #3b82f6; }
.dark { --primary: #60a5fa; --surface: #111827; }`), "theme.css")
	require.NoError(t, err)

	doc, err := export.JSON(set)
	require.NoError(t, err)
	again, err := tokens.LoadColorsFromBytes([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, set, again)
}
