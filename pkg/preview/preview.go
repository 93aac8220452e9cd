// Package preview renders tokens as terminal swatches.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/gnana997/tokensmith/pkg/audit"
	"github.com/gnana997/tokensmith/pkg/colors"
	"github.com/gnana997/tokensmith/pkg/tokens"
)

// ParseProfile converts a --color flag value. "auto" (or "") detects the
// profile of the output.
func ParseProfile(s string) (profile termenv.Profile, auto bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return termenv.TrueColor, true, nil
	case "truecolor", "24bit":
		return termenv.TrueColor, false, nil
	case "256", "ansi256":
		return termenv.ANSI256, false, nil
	case "16", "ansi":
		return termenv.ANSI, false, nil
	case "none", "ascii", "never":
		return termenv.Ascii, false, nil
	default:
		return termenv.Ascii, false, fmt.Errorf("unknown color profile %q (must be auto/truecolor/256/16/none)", s)
	}
}

// Previewer renders swatches for one output.
type Previewer struct {
	r *lipgloss.Renderer

	title lipgloss.Style
	label lipgloss.Style
	muted lipgloss.Style
}

// New creates a Previewer writing to w. When auto is false the profile is forced.
func New(w io.Writer, profile termenv.Profile, auto bool) *Previewer {
	r := lipgloss.NewRenderer(w)
	if !auto {
		r.SetColorProfile(profile)
	}
	return &Previewer{
		r:     r,
		title: r.NewStyle().Bold(true).Underline(true),
		label: r.NewStyle().Width(24),
		muted: r.NewStyle().Foreground(lipgloss.Color("#6b7280")),
	}
}

// Profile reports the colour profile in use.
func (p *Previewer) Profile() termenv.Profile {
	return p.r.ColorProfile()
}

func (p *Previewer) swatch(hex string) string {
	if !colors.IsHex(hex) {
		return p.r.NewStyle().Width(9).Render("  ?????  ")
	}
	hex = colors.Normalize(hex)
	return p.r.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(colors.BestTextColor(hex))).
		Padding(0, 1).
		Render(hex)
}

// Colors renders a light and dark swatch per token, grouped by category.
func (p *Previewer) Colors(set tokens.ColorSet) string {
	var b strings.Builder
	for _, cat := range set.Categories() {
		name := cat.Name
		b.WriteString(p.title.Render(fmt.Sprintf("%s (%d)", name, cat.Count)))
		b.WriteString("\n")

		filter := name
		if filter == "uncategorized" {
			filter = ""
		}
		for _, t := range set {
			if filter == "" && t.Category != "" || filter != "" && !strings.EqualFold(t.Category, filter) {
				continue
			}
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
				p.label.Render(t.Name), p.swatch(t.Light), " ", p.swatch(t.Dark)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Styles renders a table of text styles.
func (p *Previewer) Styles(set tokens.StyleSet) string {
	var b strings.Builder
	b.WriteString(p.title.Render("Text styles"))
	b.WriteString("\n")
	for _, st := range set {
		meta := fmt.Sprintf("%-6s %3d  lh %-5s ls %-7s %s", st.FontSize, st.FontWeight, st.LineHeight, st.LetterSpacing, st.FontFamily)
		name := p.label.Bold(st.FontWeight >= 600).Render(st.Name)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, name, p.muted.Render(string(st.Category)), "  ", meta))
		b.WriteString("\n")
	}
	return b.String()
}

// Contrast renders fg on bg with its ratio and grade.
func (p *Previewer) Contrast(fg, bg string) string {
	res := colors.Check(fg, bg)
	sample := "  Aa  The quick brown fox  "
	if res.Valid {
		sample = p.r.NewStyle().
			Foreground(lipgloss.Color(colors.Normalize(fg))).
			Background(lipgloss.Color(colors.Normalize(bg))).
			Render(sample)
	}
	return fmt.Sprintf("%s  %.2f:1 %s\n", sample, colors.Round2(res.Ratio), p.grade(res.Grade))
}

func (p *Previewer) grade(g colors.Grade) string {
	color := map[colors.Grade]string{
		colors.GradeExcellent: "#22c55e",
		colors.GradeGood:      "#3b82f6",
		colors.GradePoor:      "#f59e0b",
		colors.GradeFail:      "#ef4444",
	}[g]
	return p.r.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(strings.ToUpper(string(g)))
}

// Audit renders a report summary and every finding below AA.
func (p *Previewer) Audit(report audit.Report) string {
	var b strings.Builder
	s := report.Summary
	b.WriteString(p.title.Render("Contrast audit"))
	fmt.Fprintf(&b, "\n%d pairs: %d excellent, %d good, %d poor, %d fail\n\n", s.Total, s.Excellent, s.Good, s.Poor, s.Fail)
	for _, f := range report.Failing() {
		fmt.Fprintf(&b, "%-5s %s on %s  %.2f:1 %s\n",
			f.Mode, f.Foreground, f.Background, colors.Round2(f.Ratio), p.grade(f.Grade))
	}
	return b.String()
}
