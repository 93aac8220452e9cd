// Package colors implements WCAG contrast math and the two brightness
// adjustment strategies used for state variants and palette generation.
package colors

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// hexPattern accepts six hex digits with an optional leading '#'.
var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// RGB is an 8-bit sRGB triple.
type RGB struct {
	R, G, B uint8
}

// Black is the value malformed input collapses to.
var Black = RGB{}

// ParseHex parses a "#rrggbb" or "rrggbb" string.
// Malformed input yields Black and false; it never panics.
func ParseHex(s string) (RGB, bool) {
	m := hexPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Black, false
	}
	r, _ := strconv.ParseUint(m[1], 16, 8)
	g, _ := strconv.ParseUint(m[2], 16, 8)
	b, _ := strconv.ParseUint(m[3], 16, 8)
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, true
}

// IsHex reports whether s is a well-formed 6-digit hex colour.
func IsHex(s string) bool {
	return hexPattern.MatchString(strings.TrimSpace(s))
}

// Normalize returns s as lowercase "#rrggbb". Malformed input is returned unchanged.
func Normalize(s string) string {
	c, ok := ParseHex(s)
	if !ok {
		return s
	}
	return c.Hex()
}

// Hex formats the colour as lowercase "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
