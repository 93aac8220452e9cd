package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnana997/tokensmith/pkg/export"
	"github.com/gnana997/tokensmith/pkg/importer"
	"github.com/gnana997/tokensmith/pkg/tokens"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export tokens as CSS, Tailwind, SCSS, JS, TS or JSON",
	Long: `Export colour tokens for use in code.

With --format the result goes to --output (or stdout). Without --format every
entry under exports in the project config is written.

Examples:
  tokensmith export tokens.json --format css
  tokensmith export tokens.json --format tailwind --output tailwind.config.js
  tokensmith export --category brand --format scss`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

// Flags
var (
	exportFormat   string
	exportOutput   string
	exportCategory string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: css, tailwind, scss, js, ts, json")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportCategory, "category", "c", "", "Only export tokens in this category")
}

func runExport(cmd *cobra.Command, args []string) error {
	im := newImporter()
	defer im.Close()

	set, err := loadExportSet(im, args)
	if err != nil {
		return err
	}

	if exportFormat != "" {
		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		out, err := export.Render(format, set)
		if err != nil {
			return err
		}
		return writeOutput(cmd, exportOutput, out)
	}

	targets := projectCfg.targets()
	if len(targets) == 0 {
		return fmt.Errorf("no --format given and no exports configured")
	}
	for _, t := range targets {
		out, err := export.Render(t.Format, set)
		if err != nil {
			return err
		}
		if err := writeOutput(cmd, t.Path, out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", t.Path, t.Format)
	}
	return nil
}

func loadExportSet(im *importer.Importer, args []string) (tokens.ColorSet, error) {
	set, err := loadTokens(im, resolveTokensPath(args))
	if err != nil {
		return nil, err
	}
	if exportCategory != "" {
		set = set.ByCategory(exportCategory)
		if len(set) == 0 {
			return nil, fmt.Errorf("no tokens in category %q", exportCategory)
		}
	}
	return set, nil
}
