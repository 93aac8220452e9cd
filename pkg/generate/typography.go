package generate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/gnana997/tokensmith/pkg/colors"
	"github.com/gnana997/tokensmith/pkg/tokens"
)

// Ratio is a named modular scale ratio.
type Ratio struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Named scale ratios in ascending order.
var (
	MinorSecond     = Ratio{"Minor Second", 1.067}
	MajorSecond     = Ratio{"Major Second", 1.125}
	MinorThird      = Ratio{"Minor Third", 1.2}
	MajorThird      = Ratio{"Major Third", 1.25}
	PerfectFourth   = Ratio{"Perfect Fourth", 1.333}
	AugmentedFourth = Ratio{"Augmented Fourth", 1.414}
	PerfectFifth    = Ratio{"Perfect Fifth", 1.5}
	GoldenRatio     = Ratio{"Golden Ratio", 1.618}
)

// Ratios lists every named ratio.
var Ratios = []Ratio{
	MinorSecond, MajorSecond, MinorThird, MajorThird,
	PerfectFourth, AugmentedFourth, PerfectFifth, GoldenRatio,
}

// ParseRatio accepts a ratio name ("Major Third", "major-third") or a number ("1.25").
func ParseRatio(s string) (Ratio, error) {
	key := normalizeRatioName(s)
	for _, r := range Ratios {
		if normalizeRatioName(r.Name) == key {
			return r, nil
		}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 1 {
		return Ratio{}, fmt.Errorf("unknown type scale ratio %q", s)
	}
	for _, r := range Ratios {
		if r.Value == v {
			return r, nil
		}
	}
	return Ratio{Name: "Custom", Value: v}, nil
}

func normalizeRatioName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

// scaleStep is one named entry of the type scale.
type scaleStep struct {
	name          string
	step          int
	weight        int
	lineHeight    string
	letterSpacing string
	category      tokens.StyleCategory
}

var displayStep = scaleStep{"Display", 8, 800, "1.1", "-0.03em", tokens.CategoryDisplay}

var scaleSteps = []scaleStep{
	{"H1", 6, 700, "1.2", "-0.02em", tokens.CategoryHeading},
	{"H2", 5, 700, "1.25", "-0.01em", tokens.CategoryHeading},
	{"H3", 4, 600, "1.3", "0em", tokens.CategoryHeading},
	{"H4", 3, 600, "1.35", "0em", tokens.CategoryHeading},
	{"H5", 2, 600, "1.4", "0em", tokens.CategoryHeading},
	{"H6", 1, 600, "1.4", "0em", tokens.CategoryHeading},
	{"Sub-title", 2, 500, "1.5", "0em", tokens.CategoryBody},
	{"Body L", 1, 400, "1.6", "0em", tokens.CategoryBody},
	{"Body M", 0, 400, "1.5", "0em", tokens.CategoryBody},
	{"Caption", -1, 400, "1.4", "0.01em", tokens.CategoryCaption},
}

// StandardStyleNames are the canonical names produced by TypeScale.
var StandardStyleNames = func() map[string]bool {
	m := map[string]bool{displayStep.name: true}
	for _, s := range scaleSteps {
		m[s.name] = true
	}
	return m
}()

// Type scale defaults.
const (
	DefaultBaseSize   = 16.0
	DefaultFontFamily = "Inter"
	DefaultTextColor  = "#111827"
)

// TypeScaleOptions configures TypeScale. Zero values take the defaults.
type TypeScaleOptions struct {
	Base           float64
	Ratio          Ratio
	FontFamily     string
	Color          string
	IncludeDisplay bool
}

func (o TypeScaleOptions) withDefaults() TypeScaleOptions {
	if o.Base <= 0 {
		o.Base = DefaultBaseSize
	}
	if o.Ratio.Value <= 1 {
		o.Ratio = MajorThird
	}
	if strings.TrimSpace(o.FontFamily) == "" {
		o.FontFamily = DefaultFontFamily
	}
	if !colors.IsHex(o.Color) {
		o.Color = DefaultTextColor
	}
	o.Color = colors.Normalize(o.Color)
	return o
}

// styleNamespace seeds the deterministic style IDs.
var styleNamespace = uuid.MustParse("6f1c7a52-4d2e-4b8a-9a51-2f3c8e7d9b10")

// StyleID derives a stable ID from a style's identity.
func StyleID(name, fontSize string, category tokens.StyleCategory) string {
	return uuid.NewSHA1(styleNamespace, []byte(name+"|"+fontSize+"|"+string(category))).String()
}

// FontSize returns round(base * ratio^step) in pixels.
func FontSize(base, ratio float64, step int) int {
	return int(math.Round(base * math.Pow(ratio, float64(step))))
}

// TypeScale generates the named text styles for opts.
func TypeScale(opts TypeScaleOptions) tokens.StyleSet {
	opts = opts.withDefaults()

	steps := scaleSteps
	if opts.IncludeDisplay {
		steps = append([]scaleStep{displayStep}, scaleSteps...)
	}

	out := make(tokens.StyleSet, 0, len(steps))
	for _, s := range steps {
		size := fmt.Sprintf("%dpx", FontSize(opts.Base, opts.Ratio.Value, s.step))
		out = append(out, tokens.TextStyle{
			ID:            StyleID(s.name, size, s.category),
			Name:          s.name,
			FontFamily:    opts.FontFamily,
			FontSize:      size,
			FontWeight:    s.weight,
			LineHeight:    s.lineHeight,
			LetterSpacing: s.letterSpacing,
			Color:         opts.Color,
			Category:      s.category,
		})
	}
	return out
}
