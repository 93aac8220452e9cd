package parser

import (
	"path/filepath"
	"strings"
)

// Language is a grammar that token modules can be written in.
type Language int

const (
	// LanguageTypeScript covers .ts/.mts/.cts token modules.
	LanguageTypeScript Language = iota
	// LanguageJavaScript covers .js/.mjs/.cjs token modules and tailwind configs.
	LanguageJavaScript
	// LanguageUnknown represents an unsupported file.
	LanguageUnknown
)

// String returns the string representation of the language.
func (l Language) String() string {
	switch l {
	case LanguageTypeScript:
		return "typescript"
	case LanguageJavaScript:
		return "javascript"
	default:
		return "unknown"
	}
}

// DetectLanguage detects the grammar from a file path.
// Returns LanguageUnknown if the file extension is not recognized.
func DetectLanguage(filePath string) Language {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".ts", ".mts", ".cts":
		return LanguageTypeScript
	case ".js", ".mjs", ".cjs":
		return LanguageJavaScript
	default:
		return LanguageUnknown
	}
}
