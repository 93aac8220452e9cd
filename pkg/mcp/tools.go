package mcp

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gnana997/tokensmith/pkg/colors"
	"github.com/gnana997/tokensmith/pkg/export"
	"github.com/gnana997/tokensmith/pkg/generate"
)

func checkContrastTool() mcp.Tool {
	return mcp.NewTool("check_contrast",
		mcp.WithDescription("WCAG contrast ratio and grade of a foreground colour on a background colour"),
		mcp.WithString("foreground", mcp.Required(), mcp.Description("Foreground hex colour, e.g. #111827")),
		mcp.WithString("background", mcp.Required(), mcp.Description("Background hex colour, e.g. #ffffff")),
	)
}

func adjustColorTool() mcp.Tool {
	return mcp.NewTool("adjust_color",
		mcp.WithDescription("Lighten (positive percent) or darken (negative percent) a hex colour"),
		mcp.WithString("color", mcp.Required(), mcp.Description("Hex colour")),
		mcp.WithNumber("percent", mcp.Required(), mcp.Description("Signed percentage, e.g. 10 or -10")),
		mcp.WithString("strategy", mcp.Description("rgb (channel offset, default) or hsl (lightness offset)"),
			mcp.Enum(colors.RGBOffset.String(), colors.HSLLightness.String())),
	)
}

func generatePaletteTool() mcp.Tool {
	return mcp.NewTool("generate_palette",
		mcp.WithDescription("Generate brand, neutral, semantic, text and background tokens from three seed colours and merge them into the session"),
		mcp.WithString("primary", mcp.Required(), mcp.Description("Primary seed hex colour")),
		mcp.WithString("secondary", mcp.Required(), mcp.Description("Secondary seed hex colour")),
		mcp.WithString("tertiary", mcp.Required(), mcp.Description("Tertiary seed hex colour")),
	)
}

func generateTypeScaleTool() mcp.Tool {
	names := make([]string, 0, len(generate.Ratios))
	for _, r := range generate.Ratios {
		names = append(names, r.Name)
	}
	return mcp.NewTool("generate_type_scale",
		mcp.WithDescription("Generate a modular type scale (H1-H6, Sub-title, Body L/M, Caption) and merge it into the session"),
		mcp.WithNumber("base", mcp.Description("Base font size in px (default 16)")),
		mcp.WithString("ratio", mcp.Description("Ratio name or number: "+strings.Join(names, ", "))),
		mcp.WithString("font_family", mcp.Description("Font family; falls back to Inter if the host lacks it")),
		mcp.WithString("color", mcp.Description("Text colour (default #111827)")),
		mcp.WithBoolean("include_display", mcp.Description("Add a Display style above H1")),
	)
}

func importTokensTool() mcp.Tool {
	return mcp.NewTool("import_tokens",
		mcp.WithDescription("Replace the session colours with tokens parsed from a JSON document, CSS custom properties or a JS/TS module"),
		mcp.WithString("content", mcp.Required(), mcp.Description("File content")),
		mcp.WithString("filename", mcp.Description("Name used to pick the reader by extension (default tokens.json)")),
	)
}

func listTokensTool() mcp.Tool {
	return mcp.NewTool("list_tokens",
		mcp.WithDescription("List session colour tokens, optionally filtered by category and keyword; with no filters, returns categories and counts"),
		mcp.WithString("category", mcp.Description("Category filter, e.g. brand")),
		mcp.WithString("keyword", mcp.Description("Matches name, category or hex value")),
	)
}

func exportTokensTool() mcp.Tool {
	formats := make([]string, 0, len(export.Formats))
	for _, f := range export.Formats {
		formats = append(formats, string(f))
	}
	return mcp.NewTool("export_tokens",
		mcp.WithDescription("Render session colour tokens as CSS, Tailwind, SCSS, JS, TS or JSON"),
		mcp.WithString("format", mcp.Required(), mcp.Enum(formats...)),
		mcp.WithString("category", mcp.Description("Only export this category")),
	)
}

func auditContrastTool() mcp.Tool {
	return mcp.NewTool("audit_contrast",
		mcp.WithDescription("Check every session colour against background tokens in light and dark modes"),
		mcp.WithString("category", mcp.Description("Only audit foregrounds in this category")),
		mcp.WithString("backgrounds", mcp.Description("Comma-separated background token names (default: category background)")),
		mcp.WithBoolean("failing_only", mcp.Description("Only return pairs below AA")),
	)
}
