package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed templates/config.yaml
var configTemplate []byte

//go:embed templates/tokens.json
var tokensTemplate []byte

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config and token file",
	Long: `Write .tokensmith/config.yaml and a starter tokens.json to the working
directory. Existing files are kept unless --force is set.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing files")
}

func runInit(cmd *cobra.Command, args []string) error {
	files := []struct {
		path string
		data []byte
	}{
		{filepath.Join(configDir, "config.yaml"), configTemplate},
		{"tokens.json", tokensTemplate},
	}

	for _, f := range files {
		if _, err := os.Stat(f.path); err == nil && !initForce {
			fmt.Fprintf(cmd.OutOrStdout(), "  = %s (exists)\n", f.path)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(f.path), err)
		}
		if err := os.WriteFile(f.path, f.data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  + %s\n", f.path)
	}
	return nil
}
