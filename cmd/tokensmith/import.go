package main

import (
	"github.com/spf13/cobra"

	"github.com/gnana997/tokensmith/pkg/export"
)

var importCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Import tokens from JSON, CSS or JS/TS into the JSON interchange format",
	Long: `Import colour tokens and print them as a tokensmith JSON document.

path may be a single file or a directory. Directories are searched for
tokens.json, *.tokens.json, design-tokens.json, tokens.css, *.tokens.css,
tokens.{js,ts} and *.tokens.{js,ts}; later files override earlier ones by name.

Without a path the config's tokens entry is used, then the working directory.

Examples:
  tokensmith import design/tokens.css
  tokensmith import src/theme --output tokens.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

var importOutput string

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importOutput, "output", "o", "", "Output file (default: stdout)")
}

func runImport(cmd *cobra.Command, args []string) error {
	im := newImporter()
	defer im.Close()

	set, err := loadTokens(im, resolveTokensPath(args))
	if err != nil {
		return err
	}
	doc, err := export.JSON(set)
	if err != nil {
		return err
	}
	return writeOutput(cmd, importOutput, doc)
}
