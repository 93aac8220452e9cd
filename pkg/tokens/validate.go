package tokens

import (
	"fmt"

	"github.com/gnana997/tokensmith/pkg/colors"
)

// Validate checks the colour set for internal consistency.
// Returns a slice of validation errors (empty slice if valid).
func (s ColorSet) Validate() []error {
	var errs []error
	names := make(map[string]bool, len(s))

	for i, t := range s {
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("colors[%d]: name is required", i))
			continue
		}
		if names[t.Name] {
			errs = append(errs, fmt.Errorf("color %q: duplicate name", t.Name))
			continue
		}
		names[t.Name] = true

		if !colors.IsHex(t.Light) {
			errs = append(errs, fmt.Errorf("color %q: light value %q is not a 6-digit hex colour", t.Name, t.Light))
		}
		if !colors.IsHex(t.Dark) {
			errs = append(errs, fmt.Errorf("color %q: dark value %q is not a 6-digit hex colour", t.Name, t.Dark))
		}
	}

	return errs
}

// Validate checks the style set for internal consistency.
func (s StyleSet) Validate() []error {
	var errs []error
	ids := make(map[string]bool, len(s))

	for i, st := range s {
		if st.ID == "" {
			errs = append(errs, fmt.Errorf("styles[%d]: id is required", i))
			continue
		}
		if ids[st.ID] {
			errs = append(errs, fmt.Errorf("style %q: duplicate id", st.ID))
			continue
		}
		ids[st.ID] = true

		if st.Name == "" {
			errs = append(errs, fmt.Errorf("style %q: name is required", st.ID))
		}
		if !st.Category.Valid() {
			errs = append(errs, fmt.Errorf("style %q: invalid category %q (must be heading/body/caption/display)", st.Name, st.Category))
		}
		if st.FontWeight < 100 || st.FontWeight > 900 {
			errs = append(errs, fmt.Errorf("style %q: font weight %d out of range 100-900", st.Name, st.FontWeight))
		}
		if st.Color != "" && !colors.IsHex(st.Color) {
			errs = append(errs, fmt.Errorf("style %q: color %q is not a 6-digit hex colour", st.Name, st.Color))
		}
	}

	return errs
}
