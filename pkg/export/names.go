package export

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gnana997/tokensmith/pkg/tokens"
)

// words splits a token name on anything that is not a letter or digit.
func words(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// CSSName turns a token name into a custom-property identifier: "Primary Hover" -> "primary-hover".
func CSSName(name string) string {
	w := words(strings.ToLower(name))
	if len(w) == 0 {
		return "token"
	}
	return strings.Join(w, "-")
}

// JSName turns a token name into a camelCase identifier: "Text On Primary" -> "textOnPrimary".
func JSName(name string) string {
	w := words(name)
	if len(w) == 0 {
		return "token"
	}
	// Casers are stateful and must not be shared across goroutines.
	title := cases.Title(language.English)
	var b strings.Builder
	b.WriteString(strings.ToLower(w[0]))
	for _, part := range w[1:] {
		b.WriteString(title.String(part))
	}
	id := b.String()
	if unicode.IsDigit(rune(id[0])) {
		id = "color" + title.String(id)
	}
	return id
}

// uniqueNames returns one identifier per token, in set order. Identifiers
// that collide get sep and a counter appended: primary-hover, primary-hover-2.
func uniqueNames(set tokens.ColorSet, name func(string) string, sep string) []string {
	out := make([]string, len(set))
	used := make(map[string]bool, len(set))
	for i, t := range set {
		base := name(t.Name)
		id := base
		for n := 2; used[id]; n++ {
			id = base + sep + strconv.Itoa(n)
		}
		used[id] = true
		out[i] = id
	}
	return out
}

// cssNames is uniqueNames for the CSS-family formats.
func cssNames(set tokens.ColorSet) []string {
	return uniqueNames(set, CSSName, "-")
}
