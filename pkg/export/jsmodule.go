package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gnana997/tokensmith/pkg/tokens"
)

// JSModule renders one exported constant per token. With typed set, the
// output is TypeScript: a ColorToken type and `as const` objects.
func JSModule(set tokens.ColorSet, typed bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// %s\n", header)
	if typed {
		b.WriteString("export type ColorToken = { name: string; light: string; dark: string; category?: string };\n")
	}
	b.WriteString("\n")

	ids := uniqueNames(set, JSName, "")
	for i, t := range set {
		id := ids[i]
		fmt.Fprintf(&b, "export const %s = {\n", id)
		fmt.Fprintf(&b, "  name: %s,\n", strconv.Quote(t.Name))
		fmt.Fprintf(&b, "  light: %s,\n", strconv.Quote(t.Light))
		fmt.Fprintf(&b, "  dark: %s,\n", strconv.Quote(t.Dark))
		if t.Category != "" {
			fmt.Fprintf(&b, "  category: %s,\n", strconv.Quote(t.Category))
		}
		if typed {
			b.WriteString("} as const;\n")
		} else {
			b.WriteString("};\n")
		}
	}
	return b.String()
}
