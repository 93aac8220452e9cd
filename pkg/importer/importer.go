// Package importer reads colour tokens from JSON documents, CSS custom
// properties and JavaScript/TypeScript token modules.
package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gnana997/tokensmith/pkg/colors"
	"github.com/gnana997/tokensmith/pkg/generate"
	"github.com/gnana997/tokensmith/pkg/parser"
	"github.com/gnana997/tokensmith/pkg/tokens"
	"github.com/gnana997/tokensmith/pkg/util"
)

// ErrUnsupportedFile is returned for files whose extension has no reader.
var ErrUnsupportedFile = errors.New("unsupported token file")

// Kind identifies the reader used for a file.
type Kind string

const (
	KindJSON    Kind = "json"
	KindCSS     Kind = "css"
	KindJS      Kind = "js"
	KindUnknown Kind = ""
)

// DetectKind maps a file path to its reader.
func DetectKind(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return KindJSON
	case ".css":
		return KindCSS
	}
	if parser.DetectLanguage(path) != parser.LanguageUnknown {
		return KindJS
	}
	return KindUnknown
}

// Importer reads token files through a shared mmap file cache and parser pool.
// Safe for concurrent use. Close releases both.
type Importer struct {
	cache    *util.FileCache
	parsers  *parser.ParserManager
	poolSize int
	logger   *slog.Logger
}

// New creates an Importer.
func New(logger *slog.Logger) *Importer {
	return NewWithPoolSize(0, logger)
}

// NewWithPoolSize creates an Importer whose JS/TS parser pools hold poolSize
// parsers per grammar. Zero picks a size from the CPU count.
func NewWithPoolSize(poolSize int, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	poolSize = util.GetOptimalPoolSizeWithOverride(poolSize)
	return &Importer{
		cache:    util.NewFileCache(logger),
		parsers:  parser.NewParserManagerWithPoolSize(poolSize, logger),
		poolSize: poolSize,
		logger:   logger,
	}
}

// ImportFile reads one token file. Any error means nothing was imported.
func (im *Importer) ImportFile(path string) (tokens.ColorSet, error) {
	if DetectKind(path) == KindUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
	data, err := im.cache.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	set, err := im.ImportBytes(data, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	im.logger.Debug("imported token file", "path", path, "tokens", len(set))
	return set, nil
}

// ImportBytes parses data using the reader selected by path's extension.
func (im *Importer) ImportBytes(data []byte, path string) (tokens.ColorSet, error) {
	var (
		set tokens.ColorSet
		err error
	)
	switch DetectKind(path) {
	case KindJSON:
		return tokens.LoadColorsFromBytes(data)
	case KindCSS:
		set, err = ParseCSS(data)
	case KindJS:
		set, err = im.parseJSModule(data, path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
	if err != nil {
		return nil, err
	}
	return checkImported(set)
}

// checkImported applies the JSON reader's rules to CSS and JS/TS results:
// at least one token, and a set that passes Validate.
func checkImported(set tokens.ColorSet) (tokens.ColorSet, error) {
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: no color tokens found", tokens.ErrMalformedImport)
	}
	if errs := set.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: validation failed: %w", tokens.ErrMalformedImport, errors.Join(errs...))
	}
	return set, nil
}

// ImportDir discovers token files under root and merges them in path order.
// A later file's token replaces an earlier one with the same name.
// Files that fail to import are skipped and reported in the joined error.
func (im *Importer) ImportDir(root string, opts DiscoverOptions) (tokens.ColorSet, error) {
	return im.ImportDirContext(context.Background(), root, opts)
}

// ImportDirContext is ImportDir with cancellation. Files are read in
// parallel; the merge order is still path order.
func (im *Importer) ImportDirContext(ctx context.Context, root string, opts DiscoverOptions) (tokens.ColorSet, error) {
	files, err := Discover(root, opts)
	if err != nil {
		return nil, err
	}

	wp := newWorkerPool(im.poolSize, im.ImportFile, im.logger)
	var (
		merged tokens.ColorSet
		errs   []error
	)
	for _, r := range wp.run(ctx, files) {
		if r.Err != nil {
			im.logger.Warn("skipping token file", "path", r.Path, "error", r.Err)
			errs = append(errs, r.Err)
			continue
		}
		merged = generate.MergeColors(merged, r.Set)
	}
	im.logger.Info("imported token directory", "root", root, "files", len(files), "tokens", len(merged), "failed", len(errs))
	return merged, errors.Join(errs...)
}

// Invalidate drops a cached file so the next read sees fresh content.
func (im *Importer) Invalidate(path string) {
	im.cache.Invalidate(path)
}

// Stats returns file cache statistics.
func (im *Importer) Stats() util.FileCacheStats {
	return im.cache.Stats()
}

// Close releases cached mappings and parsers.
func (im *Importer) Close() error {
	return errors.Join(im.cache.Close(), im.parsers.Close())
}

// normalizeColor accepts #rgb and #rrggbb. ok is false for anything else.
func normalizeColor(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if len(v) == 4 && v[0] == '#' {
		v = string([]byte{'#', v[1], v[1], v[2], v[2], v[3], v[3]})
	}
	if !colors.IsHex(v) {
		return "", false
	}
	return colors.Normalize(v), true
}

// displayName turns an identifier back into words: "text-on-primary" and
// "textOnPrimary" both become "Text On Primary".
func displayName(ident string) string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	for i, r := range ident {
		switch {
		case r == '-' || r == '_' || r == ' ' || r == '.':
			flush()
		case r >= 'A' && r <= 'Z' && i > 0:
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
