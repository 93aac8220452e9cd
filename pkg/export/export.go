// Package export renders colour token sets as CSS, Tailwind, SCSS, JS/TS and JSON.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gnana997/tokensmith/pkg/tokens"
)

// Format identifies an export target.
type Format string

const (
	FormatCSS      Format = "css"
	FormatTailwind Format = "tailwind"
	FormatSCSS     Format = "scss"
	FormatJS       Format = "js"
	FormatTS       Format = "ts"
	FormatJSON     Format = "json"
)

// Formats lists every supported format.
var Formats = []Format{FormatCSS, FormatTailwind, FormatSCSS, FormatJS, FormatTS, FormatJSON}

const header = "Generated by tokensmith. Do not edit by hand."

// ParseFormat converts a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "css":
		return FormatCSS, nil
	case "tailwind", "tw":
		return FormatTailwind, nil
	case "scss", "sass":
		return FormatSCSS, nil
	case "js", "javascript":
		return FormatJS, nil
	case "ts", "typescript":
		return FormatTS, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown export format %q (must be css/tailwind/scss/js/ts/json)", s)
	}
}

// Extension returns the conventional file extension, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatTailwind:
		return ".config.js"
	case FormatSCSS:
		return ".scss"
	case FormatJS:
		return ".js"
	case FormatTS:
		return ".ts"
	case FormatJSON:
		return ".json"
	default:
		return ".css"
	}
}

// Render renders set in the given format.
func Render(format Format, set tokens.ColorSet) (string, error) {
	switch format {
	case FormatCSS:
		return CSS(set), nil
	case FormatTailwind:
		return Tailwind(set), nil
	case FormatSCSS:
		return SCSS(set), nil
	case FormatJS:
		return JSModule(set, false), nil
	case FormatTS:
		return JSModule(set, true), nil
	case FormatJSON:
		return JSON(set)
	default:
		return "", fmt.Errorf("unsupported export format %q", format)
	}
}

// JSON renders the interchange document shape.
func JSON(set tokens.ColorSet) (string, error) {
	data, err := json.MarshalIndent(tokens.ToDocument(set), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal tokens: %w", err)
	}
	return string(data) + "\n", nil
}
