package colors

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Strategy selects how a brightness offset is applied.
// The two strategies produce different results and are kept separate on purpose:
// RGBOffset drives hover/pressed previews, HSLLightness drives palette generation.
type Strategy int

const (
	// RGBOffset adds percent*2.55 to every channel, clamped to [0, 255].
	RGBOffset Strategy = iota
	// HSLLightness adds percent to HSL lightness, clamped to [0, 100].
	HSLLightness
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case RGBOffset:
		return "rgb"
	case HSLLightness:
		return "hsl"
	default:
		return "unknown"
	}
}

// ParseStrategy converts "rgb" or "hsl" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rgb", "":
		return RGBOffset, nil
	case "hsl":
		return HSLLightness, nil
	default:
		return RGBOffset, fmt.Errorf("unknown adjustment strategy %q (must be rgb or hsl)", name)
	}
}

// Adjust lightens (positive percent) or darkens (negative percent) hex.
// A zero offset returns the normalised input; malformed input is returned unchanged.
func (s Strategy) Adjust(hex string, percent float64) string {
	c, ok := ParseHex(hex)
	if !ok {
		return hex
	}
	if percent == 0 {
		return c.Hex()
	}
	switch s {
	case HSLLightness:
		return adjustHSL(c, percent).Hex()
	default:
		return adjustRGB(c, percent).Hex()
	}
}

func adjustRGB(c RGB, percent float64) RGB {
	amount := int(math.Round(percent * 2.55))
	return RGB{
		R: clampChannel(int(c.R) + amount),
		G: clampChannel(int(c.G) + amount),
		B: clampChannel(int(c.B) + amount),
	}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func adjustHSL(c RGB, percent float64) RGB {
	col := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, s, l := col.Hsl()
	lightness := math.Max(0, math.Min(100, l*100+percent))
	out := colorful.Hsl(h, s, lightness/100).Clamped()
	r, g, b := out.RGB255()
	return RGB{R: r, G: g, B: b}
}

// Lighten is Adjust with a positive offset.
func (s Strategy) Lighten(hex string, percent float64) string {
	return s.Adjust(hex, math.Abs(percent))
}

// Darken is Adjust with a negative offset.
func (s Strategy) Darken(hex string, percent float64) string {
	return s.Adjust(hex, -math.Abs(percent))
}
