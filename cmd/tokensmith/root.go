package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gnana997/tokensmith/pkg/importer"
	"github.com/gnana997/tokensmith/pkg/tokens"
	"github.com/gnana997/tokensmith/pkg/util"
)

var rootCmd = &cobra.Command{
	Use:   "tokensmith",
	Short: "Design token toolkit: contrast checks, palettes, type scales, import and export",
	Long: `tokensmith builds and maintains design tokens.

It checks WCAG contrast, generates colour palettes and modular type scales,
imports tokens from JSON, CSS and JS/TS modules, exports them for CSS,
Tailwind, SCSS and JS, and applies them to a design document.

Project defaults are read from .tokensmith/config.yaml (or config.toml).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupRoot,
}

// Persistent flags
var (
	configPath string
	logLevel   string
	logFormat  string
)

// Set by setupRoot for every command.
var (
	projectCfg *ProjectConfig
	logger     *slog.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: .tokensmith/config.{yaml,yml,toml})")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text, json")
}

func setupRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig(configPath)
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg = &ProjectConfig{}
	}
	projectCfg = cfg

	level, err := util.ParseLogLevel(resolveString(logLevel, cfg.LogLevel, string(util.LevelWarn)))
	if err != nil {
		return err
	}
	format, err := util.ParseLogFormat(resolveString(logFormat, cfg.LogFormat, string(util.FormatText)))
	if err != nil {
		return err
	}
	logger = util.NewLogger(util.LoggerConfig{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	})
	return nil
}

// newImporter returns an importer sized by the project config.
func newImporter() *importer.Importer {
	return importer.NewWithPoolSize(projectCfg.PoolSize, logger)
}

// loadTokens imports a token file, or every discovered token file when path
// is a directory. Skipped files in a directory are logged, not fatal, as long
// as something was imported.
func loadTokens(im *importer.Importer, path string) (tokens.ColorSet, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token source: %w", err)
	}
	if !info.IsDir() {
		return im.ImportFile(path)
	}

	set, err := im.ImportDir(path, importer.DiscoverOptions{})
	if len(set) == 0 {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("no token files found under %s", path)
	}
	if err != nil {
		logger.Warn("some token files were skipped", "root", path, "error", err)
	}
	return set, nil
}

// writeOutput writes data to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path, data string) error {
	if path == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info("wrote output", "path", path, "bytes", len(data))
	return nil
}
