package tokens

import "strings"

// QueryService provides read-only query methods over a loaded working set.
type QueryService struct {
	Colors ColorSet
	Styles StyleSet
}

// NewQueryService creates a QueryService over the given sets.
func NewQueryService(colorSet ColorSet, styles StyleSet) *QueryService {
	return &QueryService{Colors: colorSet, Styles: styles}
}

// LoadAndQuery loads a colour token file and returns a ready-to-use QueryService.
func LoadAndQuery(path string) (*QueryService, error) {
	set, err := LoadColorsFromFile(path)
	if err != nil {
		return nil, err
	}
	return NewQueryService(set, nil), nil
}

// ListCategories returns colour categories with token counts.
func (q *QueryService) ListCategories() []CategoryCount {
	return q.Colors.Categories()
}

// ListColors returns colour tokens filtered by category and/or keyword.
// Both filters are optional (pass "" to skip) and combine with AND logic.
// The keyword matches case-insensitively against name, category and hex values.
func (q *QueryService) ListColors(category, keyword string) ColorSet {
	candidates := q.Colors.ByCategory(category)
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return candidates
	}

	result := make(ColorSet, 0)
	for _, t := range candidates {
		if strings.Contains(strings.ToLower(t.Name), keyword) ||
			strings.Contains(strings.ToLower(t.Category), keyword) ||
			strings.Contains(t.Light, keyword) ||
			strings.Contains(t.Dark, keyword) {
			result = append(result, t)
		}
	}
	return result
}

// ListStyles returns text styles filtered by category.
func (q *QueryService) ListStyles(category StyleCategory) StyleSet {
	return q.Styles.ByCategory(category)
}
