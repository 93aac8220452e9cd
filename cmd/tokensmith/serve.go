package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gnana997/tokensmith/pkg/host"
	mcpserver "github.com/gnana997/tokensmith/pkg/mcp"
	"github.com/gnana997/tokensmith/pkg/mcplog"
	"github.com/gnana997/tokensmith/pkg/plugin"
)

var serveCmd = &cobra.Command{
	Use:   "serve [path]",
	Short: "Serve the token tools to AI agents over MCP (stdio)",
	Long: `Start an MCP server on stdin/stdout.

The session starts with the tokens at path (or the config's tokens entry)
when given. Tools that touch a document use --doc, or an in-memory document.
With --mcp-log every tool call is appended to a JSONL file; see
'tokensmith serve stats'.

Examples:
  tokensmith serve
  tokensmith serve tokens.json --doc design.db --mcp-log .tokensmith/mcp.jsonl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

var serveStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise an MCP call log",
	Args:  cobra.NoArgs,
	RunE:  runServeStats,
}

// Flags
var (
	serveDoc    string
	serveMCPLog string
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.AddCommand(serveStatsCmd)

	serveCmd.PersistentFlags().StringVar(&serveMCPLog, "mcp-log", "", "JSONL file recording tool calls")
	serveCmd.Flags().StringVar(&serveDoc, "doc", "", "Document database file")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	bridge, closeBridge, err := openBridge(ctx, resolveString(serveDoc, projectCfg.Document, ""))
	if err != nil {
		return err
	}
	defer closeBridge()

	session, err := plugin.New(bridge, logger)
	if err != nil {
		return err
	}
	if err := session.Start(ctx, host.DefaultUIOptions); err != nil {
		return err
	}

	im := newImporter()
	defer im.Close()

	if path := resolveString(firstArg(args), projectCfg.Tokens, ""); path != "" {
		set, err := loadTokens(im, path)
		if err != nil {
			return err
		}
		session.ReplaceColors(set)
	}

	callLog, err := mcplog.NewLogger(resolveString(serveMCPLog, projectCfg.MCPLog, ""))
	if err != nil {
		return err
	}
	if callLog != nil {
		defer callLog.Close()
	}

	srv := mcpserver.NewServer(session, im, callLog, logger)
	if err := srv.ServeStdio(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func runServeStats(cmd *cobra.Command, args []string) error {
	path := resolveString(serveMCPLog, projectCfg.MCPLog, "")
	if path == "" {
		return fmt.Errorf("no log: pass --mcp-log or set mcp_log in the project config")
	}
	entries, err := mcplog.ReadEntries(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintln(cmd.OutOrStdout(), "No tool calls recorded")
			return nil
		}
		return err
	}

	summary := mcplog.Summarize(entries)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TOOL\tCALLS\tERRORS\tAVG MS\tMAX MS\tBYTES")
	for _, s := range summary {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\n",
			s.Tool, s.Calls, s.Errors, s.TotalMs/int64(s.Calls), s.MaxMs, s.ResponseBytes)
	}
	fmt.Fprintf(w, "\t%d calls\t\t\t\t\n", len(entries))
	return w.Flush()
}

func firstArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
