package export

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/tokensmith/pkg/tokens"
)

func sampleSet(t *testing.T) tokens.ColorSet {
	t.Helper()
	set, err := tokens.LoadColorsFromFile(filepath.Join("..", "tokens", "testdata", "sample.json"))
	require.NoError(t, err)
	return set
}

// block returns the body of the first rule whose selector is sel.
func block(t *testing.T, css, sel string) string {
	t.Helper()
	start := strings.Index(css, sel+" {")
	require.GreaterOrEqual(t, start, 0, "missing %s block", sel)
	rest := css[start:]
	end := strings.Index(rest, "}")
	require.Greater(t, end, 0)
	return rest[:end]
}

func TestCSS_RoundTripFromSample(t *testing.T) {
	set := sampleSet(t)
	css := CSS(set)

	root := block(t, css, ":root")
	dark := block(t, css, ".dark")
	for _, tok := range set {
		decl := "--" + CSSName(tok.Name) + ":"
		assert.Equal(t, 1, strings.Count(root, decl), "root %s", decl)
		assert.Equal(t, 1, strings.Count(dark, decl), "dark %s", decl)
	}
	assert.Contains(t, root, "--primary: #3b82f6;")
	assert.Contains(t, dark, "--primary: #60a5fa;")
	assert.Contains(t, dark, "--surface: #ffffff;")
}

func TestCSSFamily_CollidingNames(t *testing.T) {
	set := tokens.ColorSet{
		{Name: "Primary Hover", Light: "#111111", Dark: "#222222"},
		{Name: "primary-hover", Light: "#333333", Dark: "#444444"},
		{Name: "Primary Hover 2", Light: "#555555", Dark: "#666666"},
	}
	require.Empty(t, set.Validate())

	root := block(t, CSS(set), ":root")
	assert.Equal(t, 1, strings.Count(root, "--primary-hover:"))
	assert.Contains(t, root, "--primary-hover: #111111;")
	assert.Contains(t, root, "--primary-hover-2: #333333;")
	assert.Contains(t, root, "--primary-hover-2-2: #555555;")

	scss := SCSS(set)
	assert.Equal(t, 1, strings.Count(scss, "$primary-hover-light:"))
	assert.Contains(t, scss, "$primary-hover-2-light: #333333;")
	assert.Equal(t, 1, strings.Count(scss, "'primary-hover': ("))

	tw := Tailwind(set)
	assert.Equal(t, 1, strings.Count(tw, "'primary-hover': {"))
	assert.Contains(t, tw, "DEFAULT: 'var(--primary-hover-2)'")
}

func TestSCSS(t *testing.T) {
	out := SCSS(tokens.ColorSet{{Name: "Primary Hover", Light: "#111111", Dark: "#222222"}})
	assert.Contains(t, out, "$primary-hover-light: #111111;")
	assert.Contains(t, out, "$primary-hover-dark: #222222;")
	assert.Contains(t, out, "'primary-hover': (")
	assert.Contains(t, out, "'dark': $primary-hover-dark,")
}

func TestTailwind(t *testing.T) {
	out := Tailwind(tokens.ColorSet{{Name: "Primary", Light: "#3b82f6", Dark: "#60a5fa"}})
	assert.Contains(t, out, "module.exports = {")
	assert.Contains(t, out, "darkMode: 'class'")
	assert.Contains(t, out, "'primary': {")
	assert.Contains(t, out, "DEFAULT: 'var(--primary)'")
	assert.Contains(t, out, "light: '#3b82f6'")
}

func TestJSModule(t *testing.T) {
	set := tokens.ColorSet{
		{Name: "Text On Primary", Light: "#000000", Dark: "#ffffff", Category: "text"},
		{Name: "text-on primary", Light: "#111111", Dark: "#eeeeee"},
	}
	js := JSModule(set, false)
	assert.Contains(t, js, "export const textOnPrimary = {")
	assert.Contains(t, js, "export const textOnPrimary2 = {")
	assert.Contains(t, js, `name: "Text On Primary",`)
	assert.Contains(t, js, `category: "text",`)
	assert.NotContains(t, js, "as const")

	ts := JSModule(set, true)
	assert.Contains(t, ts, "export type ColorToken")
	assert.Contains(t, ts, "} as const;")
}

func TestJSON_RoundTrip(t *testing.T) {
	set := sampleSet(t)
	out, err := JSON(set)
	require.NoError(t, err)

	var doc tokens.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Colors, len(set))

	back, err := tokens.LoadColorsFromBytes([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, set, back)
}

func TestRender_AllFormats(t *testing.T) {
	set := sampleSet(t)
	for _, f := range Formats {
		out, err := Render(f, set)
		require.NoError(t, err, f)
		assert.NotEmpty(t, out, f)
	}
	_, err := Render(Format("xml"), set)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("TypeScript")
	require.NoError(t, err)
	assert.Equal(t, FormatTS, f)
	assert.Equal(t, ".ts", f.Extension())

	f, err = ParseFormat("tw")
	require.NoError(t, err)
	assert.Equal(t, ".config.js", f.Extension())

	_, err = ParseFormat("yaml")
	assert.Error(t, err)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "primary-hover", CSSName("Primary Hover"))
	assert.Equal(t, "brand-blue-500", CSSName("brand/Blue 500"))
	assert.Equal(t, "token", CSSName("  "))
	assert.Equal(t, "neutral50", JSName("Neutral 50"))
	assert.Equal(t, "color500", JSName("500"))
	assert.Equal(t, "textOnPrimary", JSName("text_on_primary"))
}
