package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnana997/tokensmith/pkg/host"
	"github.com/gnana997/tokensmith/pkg/plugin"
)

var applyCmd = &cobra.Command{
	Use:   "apply [path]",
	Short: "Apply colour tokens as styles in a design document",
	Long: `Create or update one colour style per token in a design document.

Style names are "category/name" (or just the name for uncategorised tokens).
A style that already exists keeps its ID and gets the new light and dark
values. Tokens that fail are reported and skipped; nothing is rolled back.

The document is a local database file given by --doc or the config's
document entry. --dry-run applies to an in-memory copy instead.

Examples:
  tokensmith apply tokens.json --doc design.db
  tokensmith apply --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runApply,
}

// Flags
var (
	applyDoc    string
	applyDryRun bool
)

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringVar(&applyDoc, "doc", "", "Document database file")
	applyCmd.Flags().BoolVarP(&applyDryRun, "dry-run", "n", false, "Report what would change without writing")
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	docPath := resolveString(applyDoc, projectCfg.Document, "")
	if docPath == "" && !applyDryRun {
		return fmt.Errorf("no document: pass --doc or set document in the project config")
	}

	im := newImporter()
	defer im.Close()
	set, err := loadTokens(im, resolveTokensPath(args))
	if err != nil {
		return err
	}

	bridge, closeBridge, err := openBridge(ctx, docPath)
	if err != nil {
		return err
	}
	defer closeBridge()

	if applyDryRun {
		bridge, err = dryRunBridge(ctx, bridge)
		if err != nil {
			return fmt.Errorf("failed to read document: %w", err)
		}
	}

	session, err := plugin.New(bridge, logger)
	if err != nil {
		return err
	}
	session.ReplaceColors(set)

	result, err := session.Apply(ctx)
	if err != nil {
		return err
	}
	printApplyResult(cmd, result, applyDryRun)
	if !result.OK() {
		return fmt.Errorf("%d of %d tokens could not be applied", result.Failed, len(set))
	}
	return nil
}

func printApplyResult(cmd *cobra.Command, r host.ApplyResult, dryRun bool) {
	prefix := ""
	if dryRun {
		prefix = "(dry run) "
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%screated %d, updated %d, failed %d\n", prefix, r.Created, r.Updated, r.Failed)
}
