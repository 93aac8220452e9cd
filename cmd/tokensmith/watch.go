package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gnana997/tokensmith/pkg/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Rewrite exports whenever token sources change",
	Long: `Watch a token file or directory and rewrite every export target after each
change. Targets come from --target (format=path, repeatable) or the config's
exports list. A failed import leaves the previous outputs untouched.

Examples:
  tokensmith watch design/ --target css=src/tokens.css --target ts=src/tokens.ts
  tokensmith watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

// Flags
var (
	watchTargets  []string
	watchDebounce time.Duration
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringArrayVarP(&watchTargets, "target", "t", nil, "Export target as format=path (repeatable)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Delay before rebuilding after a change")
}

func runWatch(cmd *cobra.Command, args []string) error {
	targets, err := parseTargets(watchTargets)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		targets = projectCfg.targets()
	}
	if len(targets) == 0 {
		return fmt.Errorf("no targets: pass --target format=path or configure exports")
	}

	im := newImporter()
	defer im.Close()

	out := cmd.OutOrStdout()
	w := watch.New(im, watch.Options{
		Debounce: watchDebounce,
		Targets:  targets,
		OnRebuild: func(r watch.Result) {
			printRebuild(out, r)
		},
	}, logger)

	// Start rebuilds once, which reports through OnRebuild.
	if _, err := w.Start(resolveTokensPath(args)); err != nil {
		return err
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	fmt.Fprintf(out, "\nStopped after %d rebuilds\n", w.GetStats().Rebuilds)
	return nil
}

func printRebuild(out io.Writer, r watch.Result) {
	ts := time.Now().Format("15:04:05")
	if r.Err != nil {
		fmt.Fprintf(out, "%s  import failed, outputs kept: %v\n", ts, r.Err)
		return
	}
	fmt.Fprintf(out, "%s  %d tokens -> %d files\n", ts, len(r.Tokens), len(r.Written))
}
