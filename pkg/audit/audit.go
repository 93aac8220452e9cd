// Package audit checks every colour token against the background tokens of a
// set in both light and dark modes.
package audit

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gnana997/tokensmith/pkg/colors"
	"github.com/gnana997/tokensmith/pkg/tokens"
)

// Mode is the theme a pair is checked in.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// BackgroundCategory marks tokens used as backgrounds by default.
const BackgroundCategory = "background"

// pageBackground is used when a set has no background tokens.
var pageBackground = tokens.ColorToken{Name: "Page", Light: "#ffffff", Dark: "#000000", Category: BackgroundCategory}

// Finding is the result of one foreground/background pair in one mode.
type Finding struct {
	Foreground      string       `json:"foreground"`
	Background      string       `json:"background"`
	Mode            Mode         `json:"mode"`
	ForegroundColor string       `json:"foregroundColor"`
	BackgroundColor string       `json:"backgroundColor"`
	Ratio           float64      `json:"ratio"`
	Grade           colors.Grade `json:"grade"`
}

// Summary counts findings per grade.
type Summary struct {
	Total     int `json:"total"`
	Excellent int `json:"excellent"`
	Good      int `json:"good"`
	Poor      int `json:"poor"`
	Fail      int `json:"fail"`
}

// Report is the outcome of an audit. Findings are ordered worst ratio first.
type Report struct {
	Findings []Finding `json:"findings"`
	Summary  Summary   `json:"summary"`
}

// Failing returns findings below the AA threshold.
func (r Report) Failing() []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Grade == colors.GradePoor || f.Grade == colors.GradeFail {
			out = append(out, f)
		}
	}
	return out
}

// Options selects which tokens act as backgrounds.
type Options struct {
	// Backgrounds lists token names. Empty means every token whose category
	// is "background".
	Backgrounds []string
	// Category limits foregrounds to one category. Empty means all.
	Category string
}

// Config configures an Auditor.
type Config struct {
	// MaxCachedPairs bounds the contrast cache. Zero means 4096.
	MaxCachedPairs int
}

// Stats reports cache behaviour.
type Stats struct {
	CachedPairs int     `json:"cachedPairs"`
	Hits        int64   `json:"hits"`
	Misses      int64   `json:"misses"`
	HitRate     float64 `json:"hitRate"`
}

type pairKey struct {
	fg, bg string
}

// Auditor runs contrast audits with an LRU cache of computed pairs.
//
// Safe for concurrent use; the cache does its own locking.
type Auditor struct {
	cache  *lru.Cache[pairKey, colors.ContrastResult]
	hits   atomic.Int64
	misses atomic.Int64
	logger *slog.Logger
}

// New creates an Auditor.
func New(config Config, logger *slog.Logger) (*Auditor, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if config.MaxCachedPairs == 0 {
		config.MaxCachedPairs = 4096
	}
	cache, err := lru.New[pairKey, colors.ContrastResult](config.MaxCachedPairs)
	if err != nil {
		return nil, fmt.Errorf("failed to create contrast cache: %w", err)
	}
	return &Auditor{cache: cache, logger: logger}, nil
}

// Check returns the contrast of fg on bg, using the cache when possible.
func (a *Auditor) Check(fg, bg string) colors.ContrastResult {
	key := pairKey{colors.Normalize(fg), colors.Normalize(bg)}
	if res, ok := a.cache.Get(key); ok {
		a.hits.Add(1)
		return res
	}
	a.misses.Add(1)
	res := colors.Check(key.fg, key.bg)
	a.cache.Add(key, res)
	return res
}

// Audit checks every foreground token against every background token in
// both modes. Background tokens are not checked against each other.
func (a *Auditor) Audit(set tokens.ColorSet, opts Options) Report {
	backgrounds, foregrounds := split(set, opts)

	var report Report
	for _, fg := range foregrounds {
		for _, bg := range backgrounds {
			report.Findings = append(report.Findings,
				a.finding(fg, bg, ModeLight, fg.Light, bg.Light),
				a.finding(fg, bg, ModeDark, fg.Dark, bg.Dark))
		}
	}

	sort.SliceStable(report.Findings, func(i, j int) bool {
		return report.Findings[i].Ratio < report.Findings[j].Ratio
	})
	for _, f := range report.Findings {
		report.Summary.add(f.Grade)
	}

	a.logger.Debug("contrast audit complete",
		"foregrounds", len(foregrounds),
		"backgrounds", len(backgrounds),
		"fail", report.Summary.Fail)
	return report
}

func (a *Auditor) finding(fg, bg tokens.ColorToken, mode Mode, fgHex, bgHex string) Finding {
	res := a.Check(fgHex, bgHex)
	return Finding{
		Foreground:      fg.Name,
		Background:      bg.Name,
		Mode:            mode,
		ForegroundColor: fgHex,
		BackgroundColor: bgHex,
		Ratio:           res.Ratio,
		Grade:           res.Grade,
	}
}

// Stats returns cache statistics.
func (a *Auditor) Stats() Stats {
	hits, misses := a.hits.Load(), a.misses.Load()
	rate := 0.0
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}
	return Stats{CachedPairs: a.cache.Len(), Hits: hits, Misses: misses, HitRate: rate}
}

func (s *Summary) add(g colors.Grade) {
	s.Total++
	switch g {
	case colors.GradeExcellent:
		s.Excellent++
	case colors.GradeGood:
		s.Good++
	case colors.GradePoor:
		s.Poor++
	default:
		s.Fail++
	}
}

func split(set tokens.ColorSet, opts Options) (backgrounds, foregrounds tokens.ColorSet) {
	isBackground := func(t tokens.ColorToken) bool {
		return strings.EqualFold(t.Category, BackgroundCategory)
	}
	if len(opts.Backgrounds) > 0 {
		names := make(map[string]bool, len(opts.Backgrounds))
		for _, n := range opts.Backgrounds {
			names[strings.ToLower(n)] = true
		}
		isBackground = func(t tokens.ColorToken) bool {
			return names[strings.ToLower(t.Name)]
		}
	}

	for _, t := range set {
		if isBackground(t) {
			backgrounds = append(backgrounds, t)
			continue
		}
		if opts.Category != "" && !strings.EqualFold(t.Category, opts.Category) {
			continue
		}
		foregrounds = append(foregrounds, t)
	}
	if len(backgrounds) == 0 {
		backgrounds = tokens.ColorSet{pageBackground}
	}
	return backgrounds, foregrounds
}
