package export

import (
	"fmt"
	"strings"

	"github.com/gnana997/tokensmith/pkg/tokens"
)

// CSS renders custom properties: light values in :root, dark values in .dark.
func CSS(set tokens.ColorSet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "/* %s */\n", header)

	names := cssNames(set)

	b.WriteString(":root {\n")
	for i, t := range set {
		fmt.Fprintf(&b, "  --%s: %s;\n", names[i], t.Light)
	}
	b.WriteString("}\n\n")

	b.WriteString(".dark {\n")
	for i, t := range set {
		fmt.Fprintf(&b, "  --%s: %s;\n", names[i], t.Dark)
	}
	b.WriteString("}\n")

	return b.String()
}

// SCSS renders a variable pair per token plus a $colors map.
func SCSS(set tokens.ColorSet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// %s\n", header)

	names := cssNames(set)
	for i, t := range set {
		name := names[i]
		fmt.Fprintf(&b, "$%s-light: %s;\n", name, t.Light)
		fmt.Fprintf(&b, "$%s-dark: %s;\n", name, t.Dark)
	}

	b.WriteString("\n$colors: (\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  '%s': (\n", name)
		fmt.Fprintf(&b, "    'light': $%s-light,\n", name)
		fmt.Fprintf(&b, "    'dark': $%s-dark,\n", name)
		b.WriteString("  ),\n")
	}
	b.WriteString(");\n")

	return b.String()
}

// Tailwind renders a tailwind.config.js colour map keyed by CSS name.
// DEFAULT points at the CSS custom property so class-based dark mode works.
func Tailwind(set tokens.ColorSet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// %s\n", header)
	b.WriteString("/** @type {import('tailwindcss').Config} */\n")
	b.WriteString("module.exports = {\n")
	b.WriteString("  darkMode: 'class',\n")
	b.WriteString("  theme: {\n")
	b.WriteString("    extend: {\n")
	b.WriteString("      colors: {\n")
	names := cssNames(set)
	for i, t := range set {
		name := names[i]
		fmt.Fprintf(&b, "        '%s': {\n", name)
		fmt.Fprintf(&b, "          DEFAULT: 'var(--%s)',\n", name)
		fmt.Fprintf(&b, "          light: '%s',\n", t.Light)
		fmt.Fprintf(&b, "          dark: '%s',\n", t.Dark)
		b.WriteString("        },\n")
	}
	b.WriteString("      },\n")
	b.WriteString("    },\n")
	b.WriteString("  },\n")
	b.WriteString("};\n")
	return b.String()
}
