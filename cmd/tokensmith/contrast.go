package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnana997/tokensmith/pkg/colors"
	"github.com/gnana997/tokensmith/pkg/preview"
)

var contrastCmd = &cobra.Command{
	Use:   "contrast <foreground> <background>",
	Short: "Check the WCAG contrast ratio of two colours",
	Long: `Check the WCAG contrast ratio between a foreground and a background colour.

Grades: excellent (>= 7:1, AAA), good (>= 4.5:1, AA), poor (>= 3:1, large
text only), fail.

Examples:
  tokensmith contrast "#111827" "#ffffff"
  tokensmith contrast 3b82f6 000000 --json`,
	Args: cobra.ExactArgs(2),
	RunE: runContrast,
}

// Flags
var (
	contrastJSON  bool
	contrastColor string
)

func init() {
	rootCmd.AddCommand(contrastCmd)

	contrastCmd.Flags().BoolVar(&contrastJSON, "json", false, "Print the result as JSON")
	contrastCmd.Flags().StringVar(&contrastColor, "color", "auto", "Colour output: auto, truecolor, 256, 16, none")
}

func runContrast(cmd *cobra.Command, args []string) error {
	fg, bg := args[0], args[1]
	for _, c := range args {
		if !colors.IsHex(c) {
			return fmt.Errorf("%q is not a 6-digit hex colour", c)
		}
	}

	if contrastJSON {
		res := colors.Check(fg, bg)
		out, err := json.MarshalIndent(struct {
			Foreground string       `json:"foreground"`
			Background string       `json:"background"`
			Ratio      float64      `json:"ratio"`
			Grade      colors.Grade `json:"grade"`
		}{colors.Normalize(fg), colors.Normalize(bg), colors.Round2(res.Ratio), res.Grade}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	p, err := newPreviewer(cmd, contrastColor)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), p.Contrast(fg, bg))
	return nil
}

func newPreviewer(cmd *cobra.Command, color string) (*preview.Previewer, error) {
	profile, auto, err := preview.ParseProfile(color)
	if err != nil {
		return nil, err
	}
	return preview.New(cmd.OutOrStdout(), profile, auto), nil
}
