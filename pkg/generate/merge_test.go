package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/tokensmith/pkg/tokens"
)

func TestMergeStyles_StandardNameWins(t *testing.T) {
	generated := TypeScale(TypeScaleOptions{})
	existing := tokens.StyleSet{
		{ID: "custom-1", Name: "Heading Auto 1", FontSize: "61px", FontWeight: 700, Category: tokens.CategoryHeading},
	}

	merged := MergeStyles(existing, generated)
	require.Len(t, merged, len(generated))
	assert.Equal(t, "H1", merged[0].Name)
	assert.Equal(t, generated[0].ID, merged[0].ID)
}

func TestMergeStyles_StandardExistingKept(t *testing.T) {
	existing := tokens.StyleSet{
		{ID: "keep", Name: "H1", FontSize: "61px", FontWeight: 800, Category: tokens.CategoryHeading},
	}
	generated := tokens.StyleSet{
		{ID: "gen", Name: "Auto 61", FontSize: "61px", FontWeight: 700, Category: tokens.CategoryHeading},
		{ID: "gen-2", Name: "H2", FontSize: "61px", FontWeight: 700, Category: tokens.CategoryHeading},
	}

	merged := MergeStyles(existing, generated)
	require.Len(t, merged, 1)
	assert.Equal(t, "keep", merged[0].ID)
}

func TestMergeStyles_EquivalentSizesCollide(t *testing.T) {
	generated := TypeScale(TypeScaleOptions{})
	for _, size := range []string{"61px", "61.0px", "61 px", " 61PX ", "61"} {
		existing := tokens.StyleSet{
			{ID: "custom", Name: "Heading Auto", FontSize: size, FontWeight: 700, Category: tokens.CategoryHeading},
		}
		merged := MergeStyles(existing, generated)
		require.Len(t, merged, len(generated), size)
		assert.Equal(t, "H1", merged[0].Name, size)
	}
}

func TestNormalizeSize(t *testing.T) {
	tests := map[string]string{
		"61px":    "61px",
		"61.0px":  "61px",
		"61 PX":   "61px",
		"61":      "61px",
		"1.25rem": "1.25rem",
		"1.250em": "1.25em",
		"large":   "large",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalizeSize(in), in)
	}
}

func TestMergeStyles_DifferentCategoryNoCollision(t *testing.T) {
	existing := tokens.StyleSet{
		{ID: "a", Name: "Lead", FontSize: "20px", FontWeight: 400, Category: tokens.CategoryBody},
	}
	generated := tokens.StyleSet{
		{ID: "b", Name: "H6", FontSize: "20px", FontWeight: 600, Category: tokens.CategoryHeading},
	}
	merged := MergeStyles(existing, generated)
	assert.Len(t, merged, 2)
}

func TestMergeStyles_Idempotent(t *testing.T) {
	generated := TypeScale(TypeScaleOptions{})
	once := MergeStyles(nil, generated)
	twice := MergeStyles(once, generated)
	assert.Equal(t, once, twice)
}

func TestMergeColors(t *testing.T) {
	existing := tokens.ColorSet{
		{Name: "Primary", Light: "#000000", Dark: "#000000"},
		{Name: "Custom", Light: "#123456", Dark: "#654321"},
	}
	generated := tokens.ColorSet{
		{Name: "Primary", Light: "#3b82f6", Dark: "#60a5fa", Category: "brand"},
		{Name: "Secondary", Light: "#8b5cf6", Dark: "#a78bfa", Category: "brand"},
	}

	merged := MergeColors(existing, generated)
	require.Len(t, merged, 3)
	assert.Equal(t, "#3b82f6", merged[0].Light)
	assert.Equal(t, "Custom", merged[1].Name)
	assert.Equal(t, "Secondary", merged[2].Name)
	assert.Equal(t, "#000000", existing[0].Light, "existing untouched")

	assert.Len(t, MergeColors(nil, generated), 2)
}
