package mcp

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/tokensmith/pkg/host"
	"github.com/gnana997/tokensmith/pkg/importer"
	"github.com/gnana997/tokensmith/pkg/mcplog"
	"github.com/gnana997/tokensmith/pkg/plugin"
	"github.com/gnana997/tokensmith/pkg/util"
)

// --- helpers ---

func testServer(t *testing.T) *Server {
	t.Helper()
	session, err := plugin.New(host.NewMemory([]string{"Inter", "Roboto"}), util.Discard())
	require.NoError(t, err)
	im := importer.New(util.Discard())
	t.Cleanup(func() { im.Close() })
	return NewServer(session, im, nil, util.Discard())
}

func seededServer(t *testing.T) *Server {
	t.Helper()
	s := testServer(t)
	result := callTool(t, s, makeRequest("generate_palette", map[string]any{
		"primary": "#3b82f6", "secondary": "#8b5cf6", "tertiary": "#14b8a6",
	}))
	require.False(t, result.IsError)
	return s
}

func callTool(t *testing.T, s *Server, req mcp.CallToolRequest) *mcp.CallToolResult {
	t.Helper()
	var handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
	for _, tool := range s.tools() {
		if tool.Tool.Name == req.Params.Name {
			handler = tool.Handler
		}
	}
	if handler == nil {
		t.Fatalf("unknown tool: %s", req.Params.Name)
	}

	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func makeRequest(toolName string, args map[string]any) mcp.CallToolRequest {
	var arguments any
	if args != nil {
		arguments = args
	}
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      toolName,
			Arguments: arguments,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return textContent.Text
}

func resultJSON(t *testing.T, result *mcp.CallToolResult, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), v))
}

// --- check_contrast ---

func TestHandleCheckContrast(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest("check_contrast", map[string]any{
		"foreground": "#000000", "background": "#ffffff",
	}))
	assert.False(t, result.IsError)

	var got map[string]any
	resultJSON(t, result, &got)
	assert.Equal(t, 21.0, got["ratio"])
	assert.Equal(t, "excellent", got["grade"])
	assert.Equal(t, true, got["aaa"])
}

func TestHandleCheckContrast_Malformed(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest("check_contrast", map[string]any{
		"foreground": "red", "background": "#ffffff",
	}))
	assert.False(t, result.IsError, "malformed colours grade as fail, not as a tool error")

	var got map[string]any
	resultJSON(t, result, &got)
	assert.Equal(t, "fail", got["grade"])
	assert.Equal(t, false, got["valid"])
}

func TestHandleCheckContrast_MissingParam(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest("check_contrast", map[string]any{"foreground": "#000000"}))
	assert.True(t, result.IsError)
}

// --- adjust_color ---

func TestHandleAdjustColor(t *testing.T) {
	s := testServer(t)
	tests := []struct {
		args map[string]any
		want string
	}{
		{map[string]any{"color": "#000000", "percent": 10.0}, "#1a1a1a"},
		{map[string]any{"color": "#ff0000", "percent": 10.0, "strategy": "hsl"}, "#ff3333"},
		{map[string]any{"color": "#ff0000", "percent": -10.0, "strategy": "hsl"}, "#cc0000"},
	}
	for _, tt := range tests {
		result := callTool(t, s, makeRequest("adjust_color", tt.args))
		require.False(t, result.IsError)
		var got adjustResponse
		resultJSON(t, result, &got)
		assert.Equal(t, tt.want, got.Output)
	}

	result := callTool(t, s, makeRequest("adjust_color", map[string]any{"color": "blue", "percent": 10.0}))
	assert.True(t, result.IsError)
	result = callTool(t, s, makeRequest("adjust_color", map[string]any{"color": "#000000", "percent": 10.0, "strategy": "lab"}))
	assert.True(t, result.IsError)
}

// --- generate_palette / list_tokens ---

func TestHandleGeneratePalette(t *testing.T) {
	s := seededServer(t)

	result := callTool(t, s, makeRequest("list_tokens", nil))
	var summary struct {
		Categories []map[string]any `json:"categories"`
		Total      int              `json:"total"`
	}
	resultJSON(t, result, &summary)
	assert.Equal(t, 33, summary.Total)
	assert.Len(t, summary.Categories, 5)

	result = callTool(t, s, makeRequest("generate_palette", map[string]any{"primary": "bad"}))
	assert.True(t, result.IsError)
}

func TestHandleListTokens_Filtered(t *testing.T) {
	s := seededServer(t)

	result := callTool(t, s, makeRequest("list_tokens", map[string]any{"category": "brand", "keyword": "pressed"}))
	var got []map[string]any
	resultJSON(t, result, &got)
	require.Len(t, got, 3)
	assert.Equal(t, "Primary Pressed", got[0]["name"])
}

// --- generate_type_scale ---

func TestHandleGenerateTypeScale(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest("generate_type_scale", map[string]any{
		"base": 16.0, "ratio": "Major Third", "font_family": "Papyrus", "include_display": true,
	}))
	require.False(t, result.IsError)

	var styles []map[string]any
	resultJSON(t, result, &styles)
	require.Len(t, styles, 11)
	assert.Equal(t, "Display", styles[0]["name"])
	assert.Equal(t, "Inter", styles[0]["fontFamily"])
	assert.Equal(t, "61px", styles[1]["fontSize"])

	result = callTool(t, s, makeRequest("generate_type_scale", map[string]any{"ratio": "0.5"}))
	assert.True(t, result.IsError)
}

// --- import_tokens / export_tokens ---

func TestHandleImportAndExport(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest("import_tokens", map[string]any{
		"content":  ":root { --primary: #3b82f6; --surface: #ffffff; } .dark { --primary: #60a5fa; }",
		"filename": "theme.css",
	}))
	require.False(t, result.IsError, resultText(t, result))

	result = callTool(t, s, makeRequest("export_tokens", map[string]any{"format": "scss"}))
	require.False(t, result.IsError)
	out := resultText(t, result)
	assert.Contains(t, out, "$primary-dark: #60a5fa;")
	assert.Contains(t, out, "$surface-light: #ffffff;")

	result = callTool(t, s, makeRequest("export_tokens", map[string]any{"format": "pdf"}))
	assert.True(t, result.IsError)
	result = callTool(t, s, makeRequest("export_tokens", map[string]any{"format": "css", "category": "missing"}))
	assert.True(t, result.IsError)
}

func TestHandleImportTokens_Malformed(t *testing.T) {
	s := seededServer(t)
	result := callTool(t, s, makeRequest("import_tokens", map[string]any{"content": `{"colors": [}`}))
	assert.True(t, result.IsError)

	// The session keeps its previous tokens.
	result = callTool(t, s, makeRequest("list_tokens", nil))
	var summary struct {
		Total int `json:"total"`
	}
	resultJSON(t, result, &summary)
	assert.Equal(t, 33, summary.Total)
}

// --- audit_contrast ---

func TestHandleAuditContrast(t *testing.T) {
	s := seededServer(t)
	result := callTool(t, s, makeRequest("audit_contrast", map[string]any{
		"category": "text", "backgrounds": "Background, Surface", "failing_only": true,
	}))
	require.False(t, result.IsError)

	var report struct {
		Findings []map[string]any `json:"findings"`
		Summary  map[string]any   `json:"summary"`
	}
	resultJSON(t, result, &report)
	// 6 text tokens x 2 backgrounds x 2 modes.
	assert.Equal(t, float64(24), report.Summary["total"])
	for _, f := range report.Findings {
		assert.Contains(t, []string{"poor", "fail"}, f["grade"])
	}
}

// --- middleware ---

func TestLoggingMiddleware(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcp.jsonl")
	callLog, err := mcplog.NewLogger(path)
	require.NoError(t, err)

	base := testServer(t)
	s := NewServer(base.session, base.importer, callLog, util.Discard())

	handler := s.loggingMiddleware()(s.handleCheckContrast)
	_, err = handler(context.Background(), makeRequest("check_contrast", map[string]any{
		"foreground": "#000000", "background": strings.Repeat("x", 100),
	}))
	require.NoError(t, err)
	_, err = handler(context.Background(), makeRequest("check_contrast", map[string]any{}))
	require.NoError(t, err)
	require.NoError(t, callLog.Close())

	entries, err := mcplog.ReadEntries(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "check_contrast", entries[0].Tool)
	assert.Equal(t, float64(100), entries[0].Params["background_len"])
	assert.False(t, entries[0].IsError)
	assert.True(t, entries[1].IsError)
}
