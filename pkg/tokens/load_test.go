package tokens

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadColorsFromFile_Sample(t *testing.T) {
	set, err := LoadColorsFromFile(filepath.Join("testdata", "sample.json"))
	require.NoError(t, err)
	require.Len(t, set, 3)

	assert.Equal(t, ColorToken{Name: "primary", Light: "#3b82f6", Dark: "#60a5fa", Category: "brand"}, set[0])
	// null dark falls back to light.
	assert.Equal(t, "#ffffff", set[1].Dark)
	assert.Equal(t, "background", set[1].Category)
	// a path without a slash has no category.
	assert.Equal(t, "", set[2].Category)
}

func TestLoadColorsFromBytes_Legacy(t *testing.T) {
	data := []byte(`{
		"text": {"light": "#111827", "dark": "#f9fafb"},
		"accent": {"light": "#8B5CF6"}
	}`)
	set, err := LoadColorsFromBytes(data)
	require.NoError(t, err)
	require.Len(t, set, 2)

	// Sorted by name for determinism.
	assert.Equal(t, "accent", set[0].Name)
	assert.Equal(t, "#8b5cf6", set[0].Dark)
	assert.Equal(t, "text", set[1].Name)
}

func TestLoadColorsFromBytes_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"colors": [`},
		{"empty array", `{"colors": []}`},
		{"empty object", `{}`},
		{"bad hex", `{"colors": [{"id": 1, "name": "a", "light": "#12", "dark": null, "path": ""}]}`},
		{"missing name", `{"colors": [{"id": 1, "name": " ", "light": "#123456", "dark": null, "path": ""}]}`},
		{"duplicate", `{"colors": [
			{"id": 1, "name": "a", "light": "#123456", "dark": null, "path": ""},
			{"id": 2, "name": "a", "light": "#654321", "dark": null, "path": ""}]}`},
		{"legacy not a pair", `{"primary": "#123456"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set, err := LoadColorsFromBytes([]byte(tc.data))
			assert.ErrorIs(t, err, ErrMalformedImport)
			assert.Nil(t, set, "no partial import")
		})
	}
}

func TestLoadColorsFromFile_Missing(t *testing.T) {
	_, err := LoadColorsFromFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestToDocument_RoundTrip(t *testing.T) {
	set := ColorSet{
		{Name: "primary", Light: "#3b82f6", Dark: "#60a5fa", Category: "brand"},
		{Name: "plain", Light: "#000000", Dark: "#ffffff"},
	}
	data, err := json.Marshal(ToDocument(set))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	back, err := LoadColorsFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, set, back)
}

func TestCategoryFromPath(t *testing.T) {
	assert.Equal(t, "brand", CategoryFromPath("brand/primary"))
	assert.Equal(t, "brand/blue", CategoryFromPath("brand/blue/500"))
	assert.Equal(t, "", CategoryFromPath("primary"))
	assert.Equal(t, "", CategoryFromPath(""))
}

func TestStyleName(t *testing.T) {
	assert.Equal(t, "brand/Primary", StyleName(ColorToken{Name: "Primary", Category: "brand"}))
	assert.Equal(t, "Primary", StyleName(ColorToken{Name: "Primary"}))
}
