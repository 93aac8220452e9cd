package host

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/tokensmith/pkg/tokens"
	"github.com/gnana997/tokensmith/pkg/util"
)

var applySet = tokens.ColorSet{
	{Name: "Primary", Light: "#3b82f6", Dark: "#60a5fa", Category: "brand"},
	{Name: "Surface", Light: "#ffffff", Dark: "#111827", Category: "background"},
	{Name: "Accent", Light: "#f59e0b", Dark: "#fbbf24"},
}

func TestApplyColors_CreatesAndUpdates(t *testing.T) {
	mem := NewMemory(nil, ColorStyle{Name: "brand/Primary", Light: "#000000", Dark: "#000000"})

	result, err := ApplyColors(context.Background(), mem, applySet, util.Discard())
	require.NoError(t, err)
	assert.Equal(t, ApplyResult{Created: 2, Updated: 1}, result)
	assert.True(t, result.OK())

	styles := mem.Styles()
	require.Len(t, styles, 3)
	assert.Equal(t, ColorStyle{ID: "S:1", Name: "brand/Primary", Light: "#3b82f6", Dark: "#60a5fa"}, styles[0])
	assert.Equal(t, "background/Surface", styles[1].Name)
	assert.Equal(t, "Accent", styles[2].Name)

	notes := mem.Notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, VariantSuccess, notes[0].Variant)
	assert.Equal(t, "Applied 3 color styles", notes[0].Message)
}

func TestApplyColors_Idempotent(t *testing.T) {
	mem := NewMemory(nil)
	ctx := context.Background()

	_, err := ApplyColors(ctx, mem, applySet, util.Discard())
	require.NoError(t, err)
	result, err := ApplyColors(ctx, mem, applySet, util.Discard())
	require.NoError(t, err)

	assert.Equal(t, ApplyResult{Updated: 3}, result)
	assert.Len(t, mem.Styles(), 3)
}

func TestApplyColors_ContinuesAfterFailure(t *testing.T) {
	mem := NewMemory(nil, ColorStyle{Name: "brand/Primary"})
	mem.FailOn("brand/Primary", "background/Surface")

	result, err := ApplyColors(context.Background(), mem, applySet, util.Discard())
	require.NoError(t, err)
	assert.Equal(t, ApplyResult{Created: 1, Failed: 2}, result)
	assert.False(t, result.OK())

	// The token after the failures was still written.
	styles := mem.Styles()
	require.Len(t, styles, 2)
	assert.Equal(t, "Accent", styles[1].Name)

	notes := mem.Notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, VariantError, notes[0].Variant)
}

func TestApplyColors_ListFailure(t *testing.T) {
	mem := NewMemory(nil)
	mem.FailList(errors.New("document locked"))

	result, err := ApplyColors(context.Background(), mem, applySet, nil)
	require.Error(t, err)
	assert.Equal(t, ApplyResult{}, result)
	assert.Empty(t, mem.Styles())

	notes := mem.Notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, VariantError, notes[0].Variant)
}

func TestApplyColors_DuplicateComposedName(t *testing.T) {
	mem := NewMemory(nil)
	set := tokens.ColorSet{
		{Name: "Primary", Light: "#111111", Dark: "#111111", Category: "brand"},
		{Name: "Primary", Light: "#222222", Dark: "#222222", Category: "brand"},
	}
	result, err := ApplyColors(context.Background(), mem, set, util.Discard())
	require.NoError(t, err)
	assert.Equal(t, ApplyResult{Created: 1, Updated: 1}, result)
	require.Len(t, mem.Styles(), 1)
	assert.Equal(t, "#222222", mem.Styles()[0].Light)
}

func TestMemory_Fonts(t *testing.T) {
	mem := NewMemory([]string{"Roboto", "Inter"})
	fonts, err := mem.GetAvailableFonts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Inter", "Roboto"}, fonts)

	err = mem.SetAttributes(context.Background(), "S:404", Attributes{})
	assert.ErrorIs(t, err, ErrStyleNotFound)
}
