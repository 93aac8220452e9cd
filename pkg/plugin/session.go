// Package plugin holds the working state of a token editing session and
// connects it to an injected host bridge.
package plugin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/gnana997/tokensmith/pkg/audit"
	"github.com/gnana997/tokensmith/pkg/colors"
	"github.com/gnana997/tokensmith/pkg/export"
	"github.com/gnana997/tokensmith/pkg/generate"
	"github.com/gnana997/tokensmith/pkg/host"
	"github.com/gnana997/tokensmith/pkg/tokens"
)

// ErrHostUnavailable is returned by New when no host bridge was supplied.
// A session cannot be created without one and there is no retry.
var ErrHostUnavailable = errors.New("host plugin API not available")

// Session owns the colour and style working sets.
//
// **Thread Safety:** every mutation builds a new slice and swaps it in under
// the write lock; readers get the current slice and must not modify it.
type Session struct {
	bridge  host.Bridge
	auditor *audit.Auditor
	logger  *slog.Logger

	mu      sync.RWMutex
	colors  tokens.ColorSet
	styles  tokens.StyleSet
	started bool
}

// New creates a session bound to bridge.
func New(bridge host.Bridge, logger *slog.Logger) (*Session, error) {
	if bridge == nil {
		return nil, ErrHostUnavailable
	}
	if logger == nil {
		logger = slog.Default()
	}
	auditor, err := audit.New(audit.Config{}, logger)
	if err != nil {
		return nil, err
	}
	return &Session{bridge: bridge, auditor: auditor, logger: logger}, nil
}

// Start shows the plugin UI. Calling it again is a no-op.
func (s *Session) Start(ctx context.Context, opts host.UIOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil
	}
	if opts == (host.UIOptions{}) {
		opts = host.DefaultUIOptions
	}
	if err := s.bridge.ShowUI(ctx, opts); err != nil {
		return fmt.Errorf("failed to show UI: %w", err)
	}
	s.started = true
	s.logger.Info("session started", "width", opts.Width, "height", opts.Height)
	return nil
}

// Colors returns the current colour set.
func (s *Session) Colors() tokens.ColorSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.colors
}

// Styles returns the current text style set.
func (s *Session) Styles() tokens.StyleSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.styles
}

// Query returns a read-only query service over the current sets.
func (s *Session) Query() *tokens.QueryService {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return tokens.NewQueryService(s.colors, s.styles)
}

// ImportColors replaces the colour set with the tokens parsed from data.
// On error the current set is left untouched.
func (s *Session) ImportColors(data []byte) (int, error) {
	set, err := tokens.LoadColorsFromBytes(data)
	if err != nil {
		return 0, err
	}
	s.ReplaceColors(set)
	return len(set), nil
}

// ReplaceColors swaps in set as the colour set.
func (s *Session) ReplaceColors(set tokens.ColorSet) {
	s.mu.Lock()
	s.colors = set.Clone()
	s.mu.Unlock()
	s.logger.Info("colors replaced", "count", len(set))
}

// AddColor adds a token. Hex values are normalised and must be valid.
func (s *Session) AddColor(tok tokens.ColorToken) error {
	tok, err := normalizeToken(tok)
	if err != nil {
		return err
	}
	return s.mutateColors(func(cur tokens.ColorSet) (tokens.ColorSet, error) {
		return cur.Add(tok)
	})
}

// UpdateColor replaces the token called name.
func (s *Session) UpdateColor(name string, tok tokens.ColorToken) error {
	tok, err := normalizeToken(tok)
	if err != nil {
		return err
	}
	return s.mutateColors(func(cur tokens.ColorSet) (tokens.ColorSet, error) {
		return cur.Update(name, tok)
	})
}

// DeleteColor removes the token called name.
func (s *Session) DeleteColor(name string) error {
	return s.mutateColors(func(cur tokens.ColorSet) (tokens.ColorSet, error) {
		return cur.Remove(name)
	})
}

// AddStyle adds a text style, assigning a random ID when none is set.
func (s *Session) AddStyle(st tokens.TextStyle) (tokens.TextStyle, error) {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	if err := validateStyle(st); err != nil {
		return tokens.TextStyle{}, err
	}
	err := s.mutateStyles(func(cur tokens.StyleSet) (tokens.StyleSet, error) {
		return cur.Add(st)
	})
	return st, err
}

// UpdateStyle replaces the style with the given ID. The ID is preserved.
func (s *Session) UpdateStyle(id string, st tokens.TextStyle) error {
	st.ID = id
	if err := validateStyle(st); err != nil {
		return err
	}
	return s.mutateStyles(func(cur tokens.StyleSet) (tokens.StyleSet, error) {
		return cur.Update(id, st)
	})
}

// DeleteStyle removes the style with the given ID.
func (s *Session) DeleteStyle(id string) error {
	return s.mutateStyles(func(cur tokens.StyleSet) (tokens.StyleSet, error) {
		return cur.Remove(id)
	})
}

// GeneratePalette generates a palette from seeds and merges it into the
// colour set. Generated tokens replace same-named ones.
func (s *Session) GeneratePalette(seeds generate.Seeds) (generate.PaletteResult, error) {
	palette, err := generate.Palette(seeds)
	if err != nil {
		return generate.PaletteResult{}, err
	}
	all := palette.All()

	s.mu.Lock()
	s.colors = generate.MergeColors(s.colors, all)
	total := len(s.colors)
	s.mu.Unlock()

	s.logger.Info("palette generated", "generated", len(all), "total", total)
	return palette, nil
}

// GenerateTypography generates a type scale and merges it into the style set.
// A font family the host does not offer is replaced by the default family.
func (s *Session) GenerateTypography(ctx context.Context, opts generate.TypeScaleOptions) (tokens.StyleSet, error) {
	opts.FontFamily = s.resolveFont(ctx, opts.FontFamily)
	scale := generate.TypeScale(opts)

	s.mu.Lock()
	s.styles = generate.MergeStyles(s.styles, scale)
	total := len(s.styles)
	s.mu.Unlock()

	s.logger.Info("type scale generated", "family", opts.FontFamily, "generated", len(scale), "total", total)
	return scale, nil
}

// resolveFont returns family when the host offers it, otherwise the default.
func (s *Session) resolveFont(ctx context.Context, family string) string {
	family = strings.TrimSpace(family)
	if family == "" || strings.EqualFold(family, generate.DefaultFontFamily) {
		return generate.DefaultFontFamily
	}
	fonts, err := s.bridge.GetAvailableFonts(ctx)
	if err != nil {
		s.logger.Warn("failed to list host fonts, using default", "family", family, "error", err)
		return generate.DefaultFontFamily
	}
	for _, f := range fonts {
		if strings.EqualFold(f, family) {
			return f
		}
	}
	s.logger.Warn("font not available on host, using default", "family", family, "default", generate.DefaultFontFamily)
	return generate.DefaultFontFamily
}

// Apply pushes the colour set to the host document.
func (s *Session) Apply(ctx context.Context) (host.ApplyResult, error) {
	return host.ApplyColors(ctx, s.bridge, s.Colors(), s.logger)
}

// Export renders the colour set in format.
func (s *Session) Export(format export.Format) (string, error) {
	return export.Render(format, s.Colors())
}

// Audit checks the colour set for contrast problems.
func (s *Session) Audit(opts audit.Options) audit.Report {
	return s.auditor.Audit(s.Colors(), opts)
}

func (s *Session) mutateColors(fn func(tokens.ColorSet) (tokens.ColorSet, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.colors)
	if err != nil {
		return err
	}
	s.colors = next
	return nil
}

func (s *Session) mutateStyles(fn func(tokens.StyleSet) (tokens.StyleSet, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.styles)
	if err != nil {
		return err
	}
	s.styles = next
	return nil
}

func normalizeToken(tok tokens.ColorToken) (tokens.ColorToken, error) {
	tok.Name = strings.TrimSpace(tok.Name)
	if tok.Dark == "" {
		tok.Dark = tok.Light
	}
	if errs := (tokens.ColorSet{tok}).Validate(); len(errs) > 0 {
		return tok, errors.Join(errs...)
	}
	tok.Light = colors.Normalize(tok.Light)
	tok.Dark = colors.Normalize(tok.Dark)
	return tok, nil
}

func validateStyle(st tokens.TextStyle) error {
	return errors.Join((tokens.StyleSet{st}).Validate()...)
}
