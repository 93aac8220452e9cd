package tokens

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrDuplicateName is returned when a token name already exists in a set.
	ErrDuplicateName = errors.New("duplicate token name")
	// ErrNotFound is returned when a token or style is not present.
	ErrNotFound = errors.New("token not found")
)

// ColorSet is an ordered working set of colour tokens.
// Every mutating method returns a new set and leaves the receiver untouched.
type ColorSet []ColorToken

// Clone returns an independent copy.
func (s ColorSet) Clone() ColorSet {
	if s == nil {
		return nil
	}
	out := make(ColorSet, len(s))
	copy(out, s)
	return out
}

// Index returns the position of the token called name, or -1.
func (s ColorSet) Index(name string) int {
	for i, t := range s {
		if t.Name == name {
			return i
		}
	}
	return -1
}

// Get looks up a token by name.
func (s ColorSet) Get(name string) (ColorToken, bool) {
	if i := s.Index(name); i >= 0 {
		return s[i], true
	}
	return ColorToken{}, false
}

// Add appends tok. Names must stay unique.
func (s ColorSet) Add(tok ColorToken) (ColorSet, error) {
	if tok.Name == "" {
		return s, fmt.Errorf("color token name is required")
	}
	if s.Index(tok.Name) >= 0 {
		return s, fmt.Errorf("%w: %q", ErrDuplicateName, tok.Name)
	}
	out := make(ColorSet, 0, len(s)+1)
	out = append(out, s...)
	return append(out, tok), nil
}

// Update replaces the token called name with tok. Renaming onto an existing name fails.
func (s ColorSet) Update(name string, tok ColorToken) (ColorSet, error) {
	i := s.Index(name)
	if i < 0 {
		return s, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if tok.Name != name {
		if j := s.Index(tok.Name); j >= 0 {
			return s, fmt.Errorf("%w: %q", ErrDuplicateName, tok.Name)
		}
	}
	out := s.Clone()
	out[i] = tok
	return out, nil
}

// Remove drops the token called name.
func (s ColorSet) Remove(name string) (ColorSet, error) {
	i := s.Index(name)
	if i < 0 {
		return s, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	out := make(ColorSet, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...), nil
}

// ByCategory returns the tokens whose category matches (case-insensitive).
// An empty category returns a copy of the whole set.
func (s ColorSet) ByCategory(category string) ColorSet {
	if category == "" {
		return s.Clone()
	}
	out := make(ColorSet, 0)
	for _, t := range s {
		if strings.EqualFold(t.Category, category) {
			out = append(out, t)
		}
	}
	return out
}

// Categories returns category names with counts, sorted by name.
// Tokens without a category are counted under "uncategorized".
func (s ColorSet) Categories() []CategoryCount {
	counts := make(map[string]int)
	for _, t := range s {
		name := t.Category
		if name == "" {
			name = "uncategorized"
		}
		counts[name]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, CategoryCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// StyleSet is an ordered working set of text styles keyed by ID.
type StyleSet []TextStyle

// Clone returns an independent copy.
func (s StyleSet) Clone() StyleSet {
	if s == nil {
		return nil
	}
	out := make(StyleSet, len(s))
	copy(out, s)
	return out
}

// Index returns the position of the style with id, or -1.
func (s StyleSet) Index(id string) int {
	for i, st := range s {
		if st.ID == id {
			return i
		}
	}
	return -1
}

// Add appends st. IDs must stay unique.
func (s StyleSet) Add(st TextStyle) (StyleSet, error) {
	if st.ID == "" {
		return s, fmt.Errorf("text style id is required")
	}
	if s.Index(st.ID) >= 0 {
		return s, fmt.Errorf("%w: id %q", ErrDuplicateName, st.ID)
	}
	out := make(StyleSet, 0, len(s)+1)
	out = append(out, s...)
	return append(out, st), nil
}

// Update replaces the style with id. The ID itself is preserved.
func (s StyleSet) Update(id string, st TextStyle) (StyleSet, error) {
	i := s.Index(id)
	if i < 0 {
		return s, fmt.Errorf("%w: style %q", ErrNotFound, id)
	}
	st.ID = id
	out := s.Clone()
	out[i] = st
	return out, nil
}

// Remove drops the style with id.
func (s StyleSet) Remove(id string) (StyleSet, error) {
	i := s.Index(id)
	if i < 0 {
		return s, fmt.Errorf("%w: style %q", ErrNotFound, id)
	}
	out := make(StyleSet, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...), nil
}

// ByCategory filters styles by category; empty returns a copy of all.
func (s StyleSet) ByCategory(category StyleCategory) StyleSet {
	if category == "" {
		return s.Clone()
	}
	out := make(StyleSet, 0)
	for _, st := range s {
		if st.Category == category {
			out = append(out, st)
		}
	}
	return out
}
