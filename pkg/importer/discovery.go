package importer

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// AutoDiscoverPatterns match common token file naming conventions when no
// include patterns are configured.
var AutoDiscoverPatterns = []string{
	"**/tokens.json",
	"**/*.tokens.json",
	"**/design-tokens.json",
	"**/tokens.css",
	"**/*.tokens.css",
	"**/tokens.{js,mjs,cjs,ts,mts,cts}",
	"**/*.tokens.{js,mjs,cjs,ts,mts,cts}",
}

// DefaultExclude skips dependency and build output directories.
var DefaultExclude = []string{
	"**/node_modules/**",
	"**/.git/**",
	"**/dist/**",
	"**/build/**",
}

// DiscoverOptions controls which files Discover returns.
type DiscoverOptions struct {
	Include []string
	Exclude []string
}

func (o DiscoverOptions) withDefaults() DiscoverOptions {
	if len(o.Include) == 0 {
		o.Include = AutoDiscoverPatterns
	}
	if o.Exclude == nil {
		o.Exclude = DefaultExclude
	}
	return o
}

// Discover walks root applying include/exclude globs.
// Returns a sorted slice of absolute paths with a supported extension.
func Discover(root string, opts DiscoverOptions) ([]string, error) {
	opts = opts.withDefaults()
	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern: %s", pattern)
		}
	}
	for _, pattern := range opts.Include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid include pattern: %s", pattern)
		}
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		for _, pattern := range opts.Exclude {
			if matched, _ := doublestar.Match(pattern, rel); matched {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}
		if d.IsDir() || DetectKind(path) == KindUnknown {
			return nil
		}
		for _, pattern := range opts.Include {
			if matched, _ := doublestar.Match(pattern, rel); matched {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
