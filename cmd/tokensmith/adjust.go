package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gnana997/tokensmith/pkg/colors"
	"github.com/gnana997/tokensmith/pkg/generate"
)

var adjustCmd = &cobra.Command{
	Use:   "adjust <hex> <percent>",
	Short: "Lighten or darken a colour",
	Long: `Lighten (positive percent) or darken (negative percent) a colour.

Strategies:
  rgb  add percent*2.55 to every channel (hover/pressed previews)
  hsl  add percent to HSL lightness (palette generation)

With --states, prints the rgb hover and pressed variants for percent instead.

Examples:
  tokensmith adjust "#3b82f6" 10
  tokensmith adjust --strategy hsl 3b82f6 -- -20
  tokensmith adjust "#3b82f6" 10 --states`,
	Args: cobra.ExactArgs(2),
	RunE: runAdjust,
}

// Flags
var (
	adjustStrategy string
	adjustStates   bool
)

func init() {
	rootCmd.AddCommand(adjustCmd)

	adjustCmd.Flags().StringVarP(&adjustStrategy, "strategy", "s", "rgb", "Adjustment strategy: rgb, hsl")
	adjustCmd.Flags().BoolVar(&adjustStates, "states", false, "Print hover and pressed variants")
}

func runAdjust(cmd *cobra.Command, args []string) error {
	hex := args[0]
	if !colors.IsHex(hex) {
		return fmt.Errorf("%q is not a 6-digit hex colour", hex)
	}
	percent, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid percent %q: %w", args[1], err)
	}

	if adjustStates {
		hover, pressed := generate.StateVariants(hex, percent)
		fmt.Fprintf(cmd.OutOrStdout(), "hover   %s\npressed %s\n", hover, pressed)
		return nil
	}

	strategy, err := colors.ParseStrategy(adjustStrategy)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strategy.Adjust(hex, percent))
	return nil
}
