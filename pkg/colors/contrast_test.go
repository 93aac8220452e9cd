package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
		ok   bool
	}{
		{"#ffffff", RGB{255, 255, 255}, true},
		{"3B82F6", RGB{0x3b, 0x82, 0xf6}, true},
		{" #000000 ", RGB{}, true},
		{"#fff", Black, false},
		{"#gggggg", Black, false},
		{"", Black, false},
		{"#1234567", Black, false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseHex(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "#3b82f6", Normalize("3B82F6"))
	assert.Equal(t, "not-a-colour", Normalize("not-a-colour"))
}

func TestContrastRatio_BlackOnWhite(t *testing.T) {
	assert.InDelta(t, 21.0, ContrastRatio("#000000", "#ffffff"), 1e-9)
}

func TestContrastRatio_SameColour(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#3b82f6", "#7f7f7f"} {
		assert.InDelta(t, 1.0, ContrastRatio(hex, hex), 1e-12, hex)
	}
}

func TestContrastRatio_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"#3b82f6", "#ffffff"},
		{"#111827", "#f9fafb"},
		{"#ef4444", "#22c55e"},
		{"bad", "#ffffff"},
	}
	for _, p := range pairs {
		assert.Equal(t, ContrastRatio(p[0], p[1]), ContrastRatio(p[1], p[0]))
	}
}

func TestContrastRatio_Bounds(t *testing.T) {
	r := ContrastRatio("#767676", "#ffffff")
	assert.GreaterOrEqual(t, r, MinRatio)
	assert.LessOrEqual(t, r, MaxRatio)
	// #767676 on white is the classic 4.54:1 AA boundary colour.
	assert.InDelta(t, 4.54, Round2(r), 0.01)
}

func TestGradeFor(t *testing.T) {
	assert.Equal(t, GradeExcellent, GradeFor(7))
	assert.Equal(t, GradeGood, GradeFor(4.5))
	assert.Equal(t, GradeGood, GradeFor(6.99))
	assert.Equal(t, GradePoor, GradeFor(3))
	assert.Equal(t, GradeFail, GradeFor(2.99))
}

func TestCheck(t *testing.T) {
	res := Check("#000000", "#ffffff")
	assert.True(t, res.Valid)
	assert.True(t, res.AAA)
	assert.True(t, res.AA)
	assert.Equal(t, GradeExcellent, res.Grade)

	res = Check("#ffffff", "#ffffff")
	assert.Equal(t, GradeFail, res.Grade)
	assert.False(t, res.AALarge)
}

func TestCheck_MalformedNeverPasses(t *testing.T) {
	for _, pair := range [][2]string{{"zzz", "#ffffff"}, {"#000000", "#12"}, {"", ""}} {
		res := Check(pair[0], pair[1])
		assert.False(t, res.Valid)
		assert.Equal(t, GradeFail, res.Grade)
		assert.False(t, res.AA)
	}
}

func TestBestTextColor(t *testing.T) {
	assert.Equal(t, "#ffffff", BestTextColor("#1e3a8a"))
	assert.Equal(t, "#000000", BestTextColor("#fde68a"))
}
