package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testColors() ColorSet {
	return ColorSet{
		{Name: "Primary", Light: "#3b82f6", Dark: "#60a5fa", Category: "brand"},
		{Name: "Success", Light: "#22c55e", Dark: "#4ade80", Category: "semantic"},
		{Name: "Ink", Light: "#111827", Dark: "#f9fafb"},
	}
}

func TestColorSet_AddIsCopyOnWrite(t *testing.T) {
	orig := testColors()
	next, err := orig.Add(ColorToken{Name: "Accent", Light: "#8b5cf6", Dark: "#a78bfa"})
	require.NoError(t, err)
	assert.Len(t, orig, 3)
	assert.Len(t, next, 4)

	_, err = next.Add(ColorToken{Name: "Accent"})
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = next.Add(ColorToken{})
	assert.Error(t, err)
}

func TestColorSet_Update(t *testing.T) {
	orig := testColors()
	next, err := orig.Update("Primary", ColorToken{Name: "Brand", Light: "#000000", Dark: "#ffffff", Category: "brand"})
	require.NoError(t, err)
	assert.Equal(t, "Primary", orig[0].Name, "receiver untouched")
	assert.Equal(t, "Brand", next[0].Name)

	_, err = orig.Update("Primary", ColorToken{Name: "Success"})
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = orig.Update("Missing", ColorToken{Name: "Missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestColorSet_Remove(t *testing.T) {
	orig := testColors()
	next, err := orig.Remove("Success")
	require.NoError(t, err)
	assert.Len(t, orig, 3)
	require.Len(t, next, 2)
	assert.Equal(t, "Ink", next[1].Name)

	_, err = next.Remove("Success")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestColorSet_ByCategoryAndCategories(t *testing.T) {
	set := testColors()
	assert.Len(t, set.ByCategory("BRAND"), 1)
	assert.Len(t, set.ByCategory(""), 3)
	assert.Empty(t, set.ByCategory("nope"))

	cats := set.Categories()
	assert.Equal(t, []CategoryCount{
		{Name: "brand", Count: 1},
		{Name: "semantic", Count: 1},
		{Name: "uncategorized", Count: 1},
	}, cats)
}

func TestStyleSet_Operations(t *testing.T) {
	var set StyleSet
	set, err := set.Add(TextStyle{ID: "a", Name: "H1", FontWeight: 700, Category: CategoryHeading})
	require.NoError(t, err)
	set, err = set.Add(TextStyle{ID: "b", Name: "Body M", FontWeight: 400, Category: CategoryBody})
	require.NoError(t, err)

	_, err = set.Add(TextStyle{ID: "a"})
	assert.ErrorIs(t, err, ErrDuplicateName)

	updated, err := set.Update("a", TextStyle{ID: "ignored", Name: "Title", FontWeight: 800, Category: CategoryDisplay})
	require.NoError(t, err)
	assert.Equal(t, "a", updated[0].ID)
	assert.Equal(t, "H1", set[0].Name)

	assert.Len(t, updated.ByCategory(CategoryDisplay), 1)

	removed, err := updated.Remove("b")
	require.NoError(t, err)
	assert.Len(t, removed, 1)

	_, err = removed.Remove("b")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStyleSet_Validate(t *testing.T) {
	set := StyleSet{
		{ID: "1", Name: "H1", FontWeight: 700, Category: CategoryHeading, Color: "#111827"},
		{ID: "1", Name: "Dup", FontWeight: 400, Category: CategoryBody},
		{ID: "2", Name: "", FontWeight: 50, Category: "subtitle", Color: "blue"},
	}
	errs := set.Validate()
	// duplicate id, missing name, bad category, bad weight, bad colour
	assert.Len(t, errs, 5)
}

func TestQueryService(t *testing.T) {
	qs := NewQueryService(testColors(), nil)
	assert.Len(t, qs.ListCategories(), 3)
	assert.Len(t, qs.ListColors("", "succ"), 1)
	assert.Len(t, qs.ListColors("brand", "#3b82"), 1)
	assert.Empty(t, qs.ListColors("semantic", "primary"))
	assert.Len(t, qs.ListColors("", ""), 3)
}
