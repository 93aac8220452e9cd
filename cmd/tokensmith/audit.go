package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnana997/tokensmith/pkg/audit"
)

var auditCmd = &cobra.Command{
	Use:   "audit [path]",
	Short: "Check every token against the background tokens in both modes",
	Long: `Check the contrast of every token against each background token, in light
and in dark mode. Backgrounds are the tokens in the "background" category
unless --backgrounds names them.

Exits non-zero when any pair is below 4.5:1 and --strict is set.

Examples:
  tokensmith audit tokens.json
  tokensmith audit --backgrounds Background,Surface --category text --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAudit,
}

// Flags
var (
	auditBackgrounds string
	auditCategory    string
	auditJSON        bool
	auditStrict      bool
	auditColor       string
)

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().StringVarP(&auditBackgrounds, "backgrounds", "b", "", "Comma-separated background token names")
	auditCmd.Flags().StringVarP(&auditCategory, "category", "c", "", "Only audit foregrounds in this category")
	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "Print the full report as JSON")
	auditCmd.Flags().BoolVar(&auditStrict, "strict", false, "Fail when any pair is below AA")
	auditCmd.Flags().StringVar(&auditColor, "color", "auto", "Colour output: auto, truecolor, 256, 16, none")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func runAudit(cmd *cobra.Command, args []string) error {
	im := newImporter()
	defer im.Close()
	set, err := loadTokens(im, resolveTokensPath(args))
	if err != nil {
		return err
	}

	auditor, err := audit.New(audit.Config{}, logger)
	if err != nil {
		return err
	}
	report := auditor.Audit(set, audit.Options{
		Backgrounds: splitList(auditBackgrounds),
		Category:    auditCategory,
	})

	if auditJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	} else {
		p, err := newPreviewer(cmd, auditColor)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), p.Audit(report))
	}

	if failing := len(report.Failing()); auditStrict && failing > 0 {
		return fmt.Errorf("%d pairs below AA contrast", failing)
	}
	return nil
}
