package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnana997/tokensmith/pkg/generate"
)

var previewCmd = &cobra.Command{
	Use:   "preview [path]",
	Short: "Show tokens as colour swatches in the terminal",
	Long: `Render every token's light and dark value as a terminal swatch, grouped
by category. With --type the generated type scale is shown as well.

Examples:
  tokensmith preview tokens.json
  tokensmith preview --color 256 --type`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

// Flags
var (
	previewColor string
	previewType  bool
)

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&previewColor, "color", "auto", "Colour output: auto, truecolor, 256, 16, none")
	previewCmd.Flags().BoolVar(&previewType, "type", false, "Also show the configured type scale")
}

func runPreview(cmd *cobra.Command, args []string) error {
	p, err := newPreviewer(cmd, previewColor)
	if err != nil {
		return err
	}

	im := newImporter()
	defer im.Close()
	set, err := loadTokens(im, resolveTokensPath(args))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), p.Colors(set))

	if previewType {
		opts, err := typeScaleOptions()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), p.Styles(generate.TypeScale(opts)))
	}
	return nil
}
