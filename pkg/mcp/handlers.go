package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gnana997/tokensmith/pkg/audit"
	"github.com/gnana997/tokensmith/pkg/colors"
	"github.com/gnana997/tokensmith/pkg/export"
	"github.com/gnana997/tokensmith/pkg/generate"
)

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

type contrastResponse struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
	colors.ContrastResult
}

func (s *Server) handleCheckContrast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fg, err := req.RequireString("foreground")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	bg, err := req.RequireString("background")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res := colors.Check(fg, bg)
	res.Ratio = colors.Round2(res.Ratio)
	return jsonResult(contrastResponse{Foreground: fg, Background: bg, ContrastResult: res})
}

type adjustResponse struct {
	Input    string  `json:"input"`
	Output   string  `json:"output"`
	Percent  float64 `json:"percent"`
	Strategy string  `json:"strategy"`
}

func (s *Server) handleAdjustColor(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hex, err := req.RequireString("color")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !colors.IsHex(hex) {
		return mcp.NewToolResultError(fmt.Sprintf("%q is not a 6-digit hex colour", hex)), nil
	}
	percent, err := req.RequireFloat("percent")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	strategy, err := colors.ParseStrategy(req.GetString("strategy", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(adjustResponse{
		Input:    hex,
		Output:   strategy.Adjust(hex, percent),
		Percent:  percent,
		Strategy: strategy.String(),
	})
}

func (s *Server) handleGeneratePalette(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seeds := generate.Seeds{
		Primary:   req.GetString("primary", ""),
		Secondary: req.GetString("secondary", ""),
		Tertiary:  req.GetString("tertiary", ""),
	}
	palette, err := s.session.GeneratePalette(seeds)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(palette)
}

func (s *Server) handleGenerateTypeScale(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := generate.TypeScaleOptions{
		Base:           req.GetFloat("base", generate.DefaultBaseSize),
		FontFamily:     req.GetString("font_family", ""),
		Color:          req.GetString("color", ""),
		IncludeDisplay: req.GetBool("include_display", false),
	}
	if r := req.GetString("ratio", ""); r != "" {
		ratio, err := generate.ParseRatio(r)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		opts.Ratio = ratio
	}

	scale, err := s.session.GenerateTypography(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(scale)
}

func (s *Server) handleImportTokens(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	filename := req.GetString("filename", "tokens.json")

	set, err := s.importer.ImportBytes([]byte(content), filename)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("import failed: %v", err)), nil
	}
	s.session.ReplaceColors(set)
	return jsonResult(map[string]any{
		"imported":   len(set),
		"categories": set.Categories(),
	})
}

func (s *Server) handleListTokens(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := req.GetString("category", "")
	keyword := req.GetString("keyword", "")
	q := s.session.Query()

	if category == "" && keyword == "" {
		return jsonResult(map[string]any{
			"categories": q.ListCategories(),
			"total":      len(q.Colors),
		})
	}
	return jsonResult(q.ListColors(category, keyword))
}

func (s *Server) handleExportTokens(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format, err := export.ParseFormat(req.GetString("format", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	set := s.session.Query().ListColors(req.GetString("category", ""), "")
	if len(set) == 0 {
		return mcp.NewToolResultError("no tokens to export"), nil
	}

	out, err := export.Render(format, set)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (s *Server) handleAuditContrast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := audit.Options{Category: req.GetString("category", "")}
	for _, name := range strings.Split(req.GetString("backgrounds", ""), ",") {
		if name = strings.TrimSpace(name); name != "" {
			opts.Backgrounds = append(opts.Backgrounds, name)
		}
	}

	report := s.session.Audit(opts)
	for i := range report.Findings {
		report.Findings[i].Ratio = colors.Round2(report.Findings[i].Ratio)
	}
	if req.GetBool("failing_only", false) {
		report.Findings = report.Failing()
	}
	s.log.Debug("audit_contrast", "pairs", report.Summary.Total, "fail", report.Summary.Fail, "category", strconv.Quote(opts.Category))
	return jsonResult(report)
}
