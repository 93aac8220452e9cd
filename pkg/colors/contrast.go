package colors

import "math"

// Grade is the readability band of a contrast ratio.
type Grade string

const (
	GradeExcellent Grade = "excellent"
	GradeGood      Grade = "good"
	GradePoor      Grade = "poor"
	GradeFail      Grade = "fail"
)

// WCAG thresholds.
const (
	RatioAAA      = 7.0
	RatioAA       = 4.5
	RatioAALarge  = 3.0
	MaxRatio      = 21.0
	MinRatio      = 1.0
	linearCutoff  = 0.03928
	luminanceBias = 0.05
)

// ContrastResult is the outcome of comparing a foreground and background colour.
type ContrastResult struct {
	Ratio   float64 `json:"ratio"`
	Grade   Grade   `json:"grade"`
	AA      bool    `json:"aa"`
	AAA     bool    `json:"aaa"`
	AALarge bool    `json:"aa_large"`
	// Valid is false when either input failed to parse.
	Valid bool `json:"valid"`
}

func linearize(channel uint8) float64 {
	c := float64(channel) / 255
	if c <= linearCutoff {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance of c in [0, 1].
func RelativeLuminance(c RGB) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// Luminance parses hex and returns its relative luminance; malformed input is black.
func Luminance(hex string) float64 {
	c, _ := ParseHex(hex)
	return RelativeLuminance(c)
}

// ContrastRatio returns (Lmax+0.05)/(Lmin+0.05) for two hex colours.
// The result is symmetric in its arguments and lies in [1, 21].
// Malformed input is treated as black.
func ContrastRatio(a, b string) float64 {
	la, lb := Luminance(a), Luminance(b)
	return (math.Max(la, lb) + luminanceBias) / (math.Min(la, lb) + luminanceBias)
}

// GradeFor maps a ratio to its grade.
func GradeFor(ratio float64) Grade {
	switch {
	case ratio >= RatioAAA:
		return GradeExcellent
	case ratio >= RatioAA:
		return GradeGood
	case ratio >= RatioAALarge:
		return GradePoor
	default:
		return GradeFail
	}
}

// Check compares fg against bg. If either colour is malformed the result is
// a failing grade with Valid unset; no error is raised.
func Check(fg, bg string) ContrastResult {
	_, okFg := ParseHex(fg)
	_, okBg := ParseHex(bg)
	if !okFg || !okBg {
		return ContrastResult{Ratio: 0, Grade: GradeFail}
	}
	ratio := ContrastRatio(fg, bg)
	return ContrastResult{
		Ratio:   ratio,
		Grade:   GradeFor(ratio),
		AA:      ratio >= RatioAA,
		AAA:     ratio >= RatioAAA,
		AALarge: ratio >= RatioAALarge,
		Valid:   true,
	}
}

// Round2 rounds a ratio to two decimals for display.
func Round2(ratio float64) float64 {
	return math.Round(ratio*100) / 100
}

// BestTextColor returns "#000000" or "#ffffff", whichever reads better on bg.
func BestTextColor(bg string) string {
	if ContrastRatio("#000000", bg) >= ContrastRatio("#ffffff", bg) {
		return "#000000"
	}
	return "#ffffff"
}
