package tokens

// ColorToken is a named light/dark colour pair.
type ColorToken struct {
	Name     string `json:"name"`
	Light    string `json:"light"`
	Dark     string `json:"dark"`
	Category string `json:"category,omitempty"`
}

// StyleCategory groups text styles.
type StyleCategory string

const (
	CategoryHeading StyleCategory = "heading"
	CategoryBody    StyleCategory = "body"
	CategoryCaption StyleCategory = "caption"
	CategoryDisplay StyleCategory = "display"
)

// validStyleCategories defines the allowed text style categories.
var validStyleCategories = map[StyleCategory]bool{
	CategoryHeading: true,
	CategoryBody:    true,
	CategoryCaption: true,
	CategoryDisplay: true,
}

// Valid reports whether c is one of the known style categories.
func (c StyleCategory) Valid() bool {
	return validStyleCategories[c]
}

// TextStyle is a typographic token.
type TextStyle struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	FontFamily    string        `json:"fontFamily"`
	FontSize      string        `json:"fontSize"`
	FontWeight    int           `json:"fontWeight"`
	LineHeight    string        `json:"lineHeight"`
	LetterSpacing string        `json:"letterSpacing"`
	Color         string        `json:"color"`
	Category      StyleCategory `json:"category"`
}

// CategoryCount is a category name with the number of tokens in it.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
