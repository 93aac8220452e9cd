package tokens

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/gnana997/tokensmith/pkg/colors"
)

// ErrMalformedImport wraps every import failure. Imports are all-or-nothing.
var ErrMalformedImport = errors.New("malformed token import")

// Document is the JSON interchange shape for colour tokens.
type Document struct {
	Colors []DocumentColor `json:"colors"`
}

// DocumentColor is one entry of Document.Colors. Dark may be null.
type DocumentColor struct {
	ID    DocumentID `json:"id"`
	Name  string     `json:"name"`
	Light string     `json:"light"`
	Dark  *string    `json:"dark"`
	Path  string     `json:"path"`
}

// DocumentID accepts either a JSON string or number.
type DocumentID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *DocumentID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = DocumentID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = DocumentID(n.String())
	return nil
}

// legacyPair is a value of the legacy flat format {"name": {"light", "dark"}}.
type legacyPair struct {
	Light string  `json:"light"`
	Dark  *string `json:"dark"`
}

// LoadColorsFromFile reads and parses a colour token file.
func LoadColorsFromFile(path string) (ColorSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}
	return LoadColorsFromBytes(data)
}

// LoadColorsFromBytes parses colour tokens from JSON, validates them and
// returns the normalised set. Nothing is returned if any entry is invalid.
func LoadColorsFromBytes(data []byte) (ColorSet, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON: %v", ErrMalformedImport, err)
	}

	var set ColorSet
	var err error
	if raw, ok := probe["colors"]; ok && isJSONArray(raw) {
		set, err = parseDocument(data)
	} else {
		set, err = parseLegacy(probe)
	}
	if err != nil {
		return nil, err
	}

	if errs := set.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: validation failed: %w", ErrMalformedImport, errors.Join(errs...))
	}
	return set, nil
}

func isJSONArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}

func parseDocument(data []byte) (ColorSet, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse colors array: %v", ErrMalformedImport, err)
	}
	if len(doc.Colors) == 0 {
		return nil, fmt.Errorf("%w: colors array is empty", ErrMalformedImport)
	}

	set := make(ColorSet, 0, len(doc.Colors))
	for _, c := range doc.Colors {
		set = append(set, ColorToken{
			Name:     strings.TrimSpace(c.Name),
			Light:    colors.Normalize(c.Light),
			Dark:     darkOrLight(c.Dark, c.Light),
			Category: CategoryFromPath(c.Path),
		})
	}
	return set, nil
}

func parseLegacy(probe map[string]json.RawMessage) (ColorSet, error) {
	if len(probe) == 0 {
		return nil, fmt.Errorf("%w: no colors found", ErrMalformedImport)
	}

	// Map iteration order is random; sort for a stable working set.
	names := make([]string, 0, len(probe))
	for name := range probe {
		names = append(names, name)
	}
	sort.Strings(names)

	set := make(ColorSet, 0, len(names))
	for _, name := range names {
		var pair legacyPair
		if err := json.Unmarshal(probe[name], &pair); err != nil {
			return nil, fmt.Errorf("%w: entry %q is not a {light, dark} pair", ErrMalformedImport, name)
		}
		set = append(set, ColorToken{
			Name:  name,
			Light: colors.Normalize(pair.Light),
			Dark:  darkOrLight(pair.Dark, pair.Light),
		})
	}
	return set, nil
}

func darkOrLight(dark *string, light string) string {
	if dark == nil || strings.TrimSpace(*dark) == "" {
		return colors.Normalize(light)
	}
	return colors.Normalize(*dark)
}

// CategoryFromPath returns everything before the last '/' of a token path.
func CategoryFromPath(path string) string {
	path = strings.Trim(path, "/ ")
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return ""
	}
	return path[:i]
}

// ToDocument converts a set back into the interchange shape.
// IDs are 1-based positions; paths are "{category}/{name}".
func ToDocument(set ColorSet) Document {
	doc := Document{Colors: make([]DocumentColor, 0, len(set))}
	for i, t := range set {
		dark := t.Dark
		doc.Colors = append(doc.Colors, DocumentColor{
			ID:    DocumentID(strconv.Itoa(i + 1)),
			Name:  t.Name,
			Light: t.Light,
			Dark:  &dark,
			Path:  StyleName(t),
		})
	}
	return doc
}

// StyleName composes the host style name "{category}/{name}".
// Tokens without a category use the bare name.
func StyleName(t ColorToken) string {
	if t.Category == "" {
		return t.Name
	}
	return t.Category + "/" + t.Name
}
