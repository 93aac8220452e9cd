package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gnana997/tokensmith/pkg/host/docstore"
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Inspect and prepare a design document",
	Long: `Inspect the local document that apply writes to.

Examples:
  tokensmith doc styles --doc design.db
  tokensmith doc fonts add Inter "IBM Plex Sans" --doc design.db
  tokensmith doc notifications`,
}

var docStylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List colour styles",
	Args:  cobra.NoArgs,
	RunE:  runDocStyles,
}

var docFontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "List available font families",
	Args:  cobra.NoArgs,
	RunE:  runDocFonts,
}

var docFontsAddCmd = &cobra.Command{
	Use:   "add <family>...",
	Short: "Register font families",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDocFontsAdd,
}

var docNotificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "List notifications recorded by apply",
	Args:  cobra.NoArgs,
	RunE:  runDocNotifications,
}

var docPath string

func init() {
	rootCmd.AddCommand(docCmd)
	docCmd.AddCommand(docStylesCmd)
	docCmd.AddCommand(docFontsCmd)
	docCmd.AddCommand(docNotificationsCmd)
	docFontsCmd.AddCommand(docFontsAddCmd)

	docCmd.PersistentFlags().StringVar(&docPath, "doc", "", "Document database file")
}

func openDoc(ctx context.Context) (*docstore.Store, error) {
	path := resolveString(docPath, projectCfg.Document, "")
	if path == "" {
		return nil, fmt.Errorf("no document: pass --doc or set document in the project config")
	}
	return docstore.Open(ctx, path, logger)
}

func runDocStyles(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	store, err := openDoc(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	styles, err := store.GetColorStyles(ctx)
	if err != nil {
		return err
	}
	if len(styles) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No color styles")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLIGHT\tDARK")
	for _, s := range styles {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Light, s.Dark)
	}
	return w.Flush()
}

func runDocFonts(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	store, err := openDoc(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	fonts, err := store.GetAvailableFonts(ctx)
	if err != nil {
		return err
	}
	for _, f := range fonts {
		fmt.Fprintln(cmd.OutOrStdout(), f)
	}
	return nil
}

func runDocFontsAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	store, err := openDoc(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.AddFonts(ctx, args...); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Registered %d font families\n", len(args))
	return nil
}

func runDocNotifications(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	store, err := openDoc(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	notes, err := store.Notifications(ctx)
	if err != nil {
		return err
	}
	for _, n := range notes {
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", n.Variant, n.Message)
	}
	return nil
}
