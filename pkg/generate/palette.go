// Package generate builds complete token sets from a few seed inputs.
// All generators are pure: identical inputs give byte-identical output.
package generate

import (
	"errors"
	"fmt"

	"github.com/gnana997/tokensmith/pkg/colors"
	"github.com/gnana997/tokensmith/pkg/tokens"
)

// Palette categories.
const (
	CategoryBrand      = "brand"
	CategoryNeutral    = "neutral"
	CategorySemantic   = "semantic"
	CategoryText       = "text"
	CategoryBackground = "background"
)

// State offsets in HSL lightness percent.
const (
	HoverOffset    = 10.0
	PressedOffset  = -10.0
	darkModeOffset = 10.0
)

// Seeds are the three brand colours a palette is derived from.
type Seeds struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Tertiary  string `json:"tertiary"`
}

// Validate checks that every seed is a 6-digit hex colour.
func (s Seeds) Validate() error {
	var errs []error
	for _, seed := range s.named() {
		if !colors.IsHex(seed.hex) {
			errs = append(errs, fmt.Errorf("%s seed %q is not a 6-digit hex colour", seed.label, seed.hex))
		}
	}
	return errors.Join(errs...)
}

type namedSeed struct {
	label string
	hex   string
}

func (s Seeds) named() []namedSeed {
	return []namedSeed{
		{"Primary", s.Primary},
		{"Secondary", s.Secondary},
		{"Tertiary", s.Tertiary},
	}
}

// PaletteResult groups the generated tokens by role.
type PaletteResult struct {
	Brand      tokens.ColorSet `json:"brand"`
	Neutral    tokens.ColorSet `json:"neutral"`
	Semantic   tokens.ColorSet `json:"semantic"`
	Text       tokens.ColorSet `json:"text"`
	Background tokens.ColorSet `json:"background"`
}

// All concatenates every group in a fixed order.
func (p PaletteResult) All() tokens.ColorSet {
	out := make(tokens.ColorSet, 0, len(p.Brand)+len(p.Neutral)+len(p.Semantic)+len(p.Text)+len(p.Background))
	out = append(out, p.Brand...)
	out = append(out, p.Neutral...)
	out = append(out, p.Semantic...)
	out = append(out, p.Text...)
	out = append(out, p.Background...)
	return out
}

// neutralRamp is light-mode gray; dark mode mirrors the ramp.
var neutralRamp = []struct {
	step string
	hex  string
}{
	{"50", "#f9fafb"},
	{"100", "#f3f4f6"},
	{"200", "#e5e7eb"},
	{"300", "#d1d5db"},
	{"400", "#9ca3af"},
	{"500", "#6b7280"},
	{"600", "#4b5563"},
	{"700", "#374151"},
	{"800", "#1f2937"},
	{"900", "#111827"},
}

var semanticSeeds = []namedSeed{
	{"Success", "#22c55e"},
	{"Warning", "#f59e0b"},
	{"Error", "#ef4444"},
	{"Info", "#3b82f6"},
}

// Palette generates brand, neutral, semantic, text and background tokens.
func Palette(seeds Seeds) (PaletteResult, error) {
	if err := seeds.Validate(); err != nil {
		return PaletteResult{}, fmt.Errorf("invalid palette seeds: %w", err)
	}

	hsl := colors.HSLLightness
	var res PaletteResult

	for _, seed := range seeds.named() {
		light := colors.Normalize(seed.hex)
		dark := hsl.Adjust(light, darkModeOffset)
		res.Brand = append(res.Brand,
			tokens.ColorToken{Name: seed.label, Light: light, Dark: dark, Category: CategoryBrand},
			tokens.ColorToken{Name: seed.label + " Hover", Light: hsl.Adjust(light, HoverOffset), Dark: hsl.Adjust(dark, HoverOffset), Category: CategoryBrand},
			tokens.ColorToken{Name: seed.label + " Pressed", Light: hsl.Adjust(light, PressedOffset), Dark: hsl.Adjust(dark, PressedOffset), Category: CategoryBrand},
		)
	}

	for i, n := range neutralRamp {
		mirror := neutralRamp[len(neutralRamp)-1-i]
		res.Neutral = append(res.Neutral, tokens.ColorToken{
			Name: "Neutral " + n.step, Light: n.hex, Dark: mirror.hex, Category: CategoryNeutral,
		})
	}

	for _, s := range semanticSeeds {
		res.Semantic = append(res.Semantic, tokens.ColorToken{
			Name: s.label, Light: s.hex, Dark: hsl.Adjust(s.hex, darkModeOffset), Category: CategorySemantic,
		})
	}

	res.Text = tokens.ColorSet{
		{Name: "Text Primary", Light: "#111827", Dark: "#f9fafb", Category: CategoryText},
		{Name: "Text Secondary", Light: "#4b5563", Dark: "#d1d5db", Category: CategoryText},
		{Name: "Text Disabled", Light: "#9ca3af", Dark: "#6b7280", Category: CategoryText},
	}
	for _, b := range res.Brand {
		if b.Name != "Primary" && b.Name != "Secondary" && b.Name != "Tertiary" {
			continue
		}
		res.Text = append(res.Text, tokens.ColorToken{
			Name:     "Text On " + b.Name,
			Light:    colors.BestTextColor(b.Light),
			Dark:     colors.BestTextColor(b.Dark),
			Category: CategoryText,
		})
	}

	primary := colors.Normalize(seeds.Primary)
	res.Background = tokens.ColorSet{
		{Name: "Background", Light: "#ffffff", Dark: "#0b1120", Category: CategoryBackground},
		{Name: "Surface", Light: "#f9fafb", Dark: "#111827", Category: CategoryBackground},
		{Name: "Surface Raised", Light: "#f3f4f6", Dark: "#1f2937", Category: CategoryBackground},
		{Name: "Primary Subtle", Light: hsl.Adjust(primary, 40), Dark: hsl.Adjust(primary, -30), Category: CategoryBackground},
	}

	return res, nil
}

// StateVariants returns hover and pressed previews for a single colour using
// the RGB channel offset, as the token editor does for interactive states.
func StateVariants(hex string, percent float64) (hover, pressed string) {
	return colors.RGBOffset.Adjust(hex, percent), colors.RGBOffset.Adjust(hex, -percent)
}
