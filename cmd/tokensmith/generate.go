package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnana997/tokensmith/pkg/export"
	"github.com/gnana997/tokensmith/pkg/generate"
	"github.com/gnana997/tokensmith/pkg/plugin"
	"github.com/gnana997/tokensmith/pkg/tokens"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate colour palettes and type scales",
}

var generatePaletteCmd = &cobra.Command{
	Use:   "palette [primary secondary tertiary]",
	Short: "Generate a 33-token palette from three brand colours",
	Long: `Generate brand (with hover and pressed states), neutral, semantic, text and
background tokens from three seed colours.

Seeds default to palette.primary/secondary/tertiary in the project config.
With --merge the palette is merged into an existing token source; generated
tokens replace same-named ones.

Examples:
  tokensmith generate palette "#3b82f6" "#8b5cf6" "#ec4899"
  tokensmith generate palette --merge tokens.json --output tokens.json`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 3 {
			return fmt.Errorf("expected three seed colours, got %d", len(args))
		}
		return nil
	},
	RunE: runGeneratePalette,
}

var generateTypeCmd = &cobra.Command{
	Use:   "type",
	Short: "Generate a modular type scale",
	Long: `Generate H1-H6, Sub-title, Body L, Body M and Caption text styles (plus
Display with --display) sized round(base * ratio^step).

Ratios: minor-second, major-second, minor-third, major-third (default),
perfect-fourth, augmented-fourth, perfect-fifth, golden-ratio, or a number.

With --doc the font family is checked against the document's fonts and
replaced by Inter when unavailable.

Examples:
  tokensmith generate type --base 16 --ratio major-third
  tokensmith generate type --font "IBM Plex Sans" --doc design.db --display`,
	Args: cobra.NoArgs,
	RunE: runGenerateType,
}

// Flags
var (
	paletteMerge  string
	paletteFormat string
	paletteOutput string

	typeBase    float64
	typeRatio   string
	typeFont    string
	typeColor   string
	typeDisplay bool
	typeDoc     string
	typeOutput  string
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.AddCommand(generatePaletteCmd)
	generateCmd.AddCommand(generateTypeCmd)

	generatePaletteCmd.Flags().StringVar(&paletteMerge, "merge", "", "Token source to merge the palette into")
	generatePaletteCmd.Flags().StringVarP(&paletteFormat, "format", "f", "json", "Output format: css, tailwind, scss, js, ts, json")
	generatePaletteCmd.Flags().StringVarP(&paletteOutput, "output", "o", "", "Output file (default: stdout)")

	generateTypeCmd.Flags().Float64Var(&typeBase, "base", 0, "Base font size in px (default 16)")
	generateTypeCmd.Flags().StringVar(&typeRatio, "ratio", "", "Scale ratio name or number (default major-third)")
	generateTypeCmd.Flags().StringVar(&typeFont, "font", "", "Font family (default Inter)")
	generateTypeCmd.Flags().StringVar(&typeColor, "color", "", "Text colour (default #111827)")
	generateTypeCmd.Flags().BoolVar(&typeDisplay, "display", false, "Include a Display style")
	generateTypeCmd.Flags().StringVar(&typeDoc, "doc", "", "Document whose fonts are checked")
	generateTypeCmd.Flags().StringVarP(&typeOutput, "output", "o", "", "Output file (default: stdout)")
}

func runGeneratePalette(cmd *cobra.Command, args []string) error {
	seeds := generate.Seeds{
		Primary:   projectCfg.Palette.Primary,
		Secondary: projectCfg.Palette.Secondary,
		Tertiary:  projectCfg.Palette.Tertiary,
	}
	if len(args) == 3 {
		seeds = generate.Seeds{Primary: args[0], Secondary: args[1], Tertiary: args[2]}
	}

	format, err := export.ParseFormat(paletteFormat)
	if err != nil {
		return err
	}

	palette, err := generate.Palette(seeds)
	if err != nil {
		return err
	}
	set := palette.All()

	if paletteMerge != "" {
		im := newImporter()
		defer im.Close()
		existing, err := loadTokens(im, paletteMerge)
		if err != nil {
			return err
		}
		set = generate.MergeColors(existing, set)
	}

	out, err := export.Render(format, set)
	if err != nil {
		return err
	}
	logger.Info("palette generated", "tokens", len(palette.All()), "total", len(set))
	return writeOutput(cmd, paletteOutput, out)
}

func typeScaleOptions() (generate.TypeScaleOptions, error) {
	opts := generate.TypeScaleOptions{
		Base:           projectCfg.Type.Base,
		FontFamily:     resolveString(typeFont, projectCfg.Type.Font, ""),
		Color:          resolveString(typeColor, projectCfg.Type.Color, ""),
		IncludeDisplay: typeDisplay || projectCfg.Type.Display,
	}
	if typeBase > 0 {
		opts.Base = typeBase
	}
	if name := resolveString(typeRatio, projectCfg.Type.Ratio, ""); name != "" {
		ratio, err := generate.ParseRatio(name)
		if err != nil {
			return opts, err
		}
		opts.Ratio = ratio
	}
	return opts, nil
}

func runGenerateType(cmd *cobra.Command, args []string) error {
	opts, err := typeScaleOptions()
	if err != nil {
		return err
	}

	var scale tokens.StyleSet
	docPath := resolveString(typeDoc, projectCfg.Document, "")
	if docPath == "" {
		scale = generate.TypeScale(opts)
	} else {
		ctx := context.Background()
		bridge, closeBridge, err := openBridge(ctx, docPath)
		if err != nil {
			return err
		}
		defer closeBridge()

		session, err := plugin.New(bridge, logger)
		if err != nil {
			return err
		}
		scale, err = session.GenerateTypography(ctx, opts)
		if err != nil {
			return err
		}
	}

	out, err := json.MarshalIndent(scale, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal type scale: %w", err)
	}
	return writeOutput(cmd, typeOutput, string(out)+"\n")
}
