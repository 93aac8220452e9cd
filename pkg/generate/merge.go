package generate

import (
	"strconv"
	"strings"

	"github.com/gnana997/tokensmith/pkg/tokens"
)

// styleKey is the collision key for text styles.
type styleKey struct {
	fontSize string
	category tokens.StyleCategory
}

func keyOf(st tokens.TextStyle) styleKey {
	return styleKey{fontSize: normalizeSize(st.FontSize), category: st.Category}
}

// normalizeSize canonicalises a CSS length so "61px", "61.0px", "61 PX" and
// a bare "61" share one key. Unparseable sizes are only lower-cased.
func normalizeSize(size string) string {
	s := strings.ToLower(strings.Join(strings.Fields(size), ""))
	end := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-' && r != '+'
	})
	num, unit := s, ""
	if end >= 0 {
		num, unit = s[:end], s[end:]
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return s
	}
	if unit == "" {
		unit = "px"
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + unit
}

// MergeStyles merges generated styles into existing ones.
//
// Merge strategy:
//   - Styles collide when they share (fontSize, category).
//   - A name from StandardStyleNames wins over a generic/auto name.
//   - Otherwise the style seen first (existing before generated) is kept.
//   - The surviving style takes the position of the first style with that key.
func MergeStyles(existing, generated tokens.StyleSet) tokens.StyleSet {
	out := make(tokens.StyleSet, 0, len(existing)+len(generated))
	byKey := make(map[styleKey]int, len(existing)+len(generated))

	add := func(st tokens.TextStyle) {
		k := keyOf(st)
		idx, exists := byKey[k]
		if !exists {
			byKey[k] = len(out)
			out = append(out, st)
			return
		}
		if StandardStyleNames[st.Name] && !StandardStyleNames[out[idx].Name] {
			out[idx] = st
		}
	}

	for _, st := range existing {
		add(st)
	}
	for _, st := range generated {
		add(st)
	}
	return out
}

// MergeColors merges generated colour tokens into existing ones.
// Generated tokens replace same-named existing tokens in place; new names are appended.
func MergeColors(existing, generated tokens.ColorSet) tokens.ColorSet {
	out := existing.Clone()
	if out == nil {
		out = make(tokens.ColorSet, 0, len(generated))
	}
	for _, g := range generated {
		if i := out.Index(g.Name); i >= 0 {
			out[i] = g
			continue
		}
		out = append(out, g)
	}
	return out
}
