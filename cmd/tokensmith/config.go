package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gnana997/tokensmith/pkg/export"
	"github.com/gnana997/tokensmith/pkg/watch"
)

// configDir holds the project config, relative to the working directory.
const configDir = ".tokensmith"

// configNames are tried in order when --config is not given.
var configNames = []string{"config.yaml", "config.yml", "config.toml"}

// ProjectConfig holds the contents of .tokensmith/config.yaml (or .toml).
type ProjectConfig struct {
	Version   string         `yaml:"version" toml:"version"`
	Tokens    string         `yaml:"tokens" toml:"tokens"`
	Document  string         `yaml:"document" toml:"document"`
	MCPLog    string         `yaml:"mcp_log" toml:"mcp_log"`
	LogLevel  string         `yaml:"log_level" toml:"log_level"`
	LogFormat string         `yaml:"log_format" toml:"log_format"`
	PoolSize  int            `yaml:"pool_size" toml:"pool_size"`
	Exports   []ExportConfig `yaml:"exports" toml:"exports"`
	Palette   PaletteConfig  `yaml:"palette" toml:"palette"`
	Type      TypeConfig     `yaml:"type" toml:"type"`
}

// ExportConfig is one export written by `export` and `watch`.
type ExportConfig struct {
	Format string `yaml:"format" toml:"format"`
	Path   string `yaml:"path" toml:"path"`
}

// PaletteConfig holds default palette seeds.
type PaletteConfig struct {
	Primary   string `yaml:"primary" toml:"primary"`
	Secondary string `yaml:"secondary" toml:"secondary"`
	Tertiary  string `yaml:"tertiary" toml:"tertiary"`
}

// TypeConfig holds default type scale settings.
type TypeConfig struct {
	Base    float64 `yaml:"base" toml:"base"`
	Ratio   string  `yaml:"ratio" toml:"ratio"`
	Font    string  `yaml:"font" toml:"font"`
	Color   string  `yaml:"color" toml:"color"`
	Display bool    `yaml:"display" toml:"display"`
}

// loadProjectConfig reads the config at path, or the first of
// .tokensmith/config.{yaml,yml,toml} when path is empty.
// Returns nil (no error) if no default config file exists.
func loadProjectConfig(path string) (*ProjectConfig, error) {
	if path == "" {
		for _, name := range configNames {
			candidate := filepath.Join(configDir, name)
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			return nil, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := parseProjectConfig(data, path)
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// parseProjectConfig decodes data as TOML when path ends in .toml, else YAML.
func parseProjectConfig(data []byte, path string) (*ProjectConfig, error) {
	var cfg ProjectConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, cfg.validate()
}

func (c *ProjectConfig) validate() error {
	var errs []error
	for i, e := range c.Exports {
		if _, err := export.ParseFormat(e.Format); err != nil {
			errs = append(errs, fmt.Errorf("exports[%d]: %w", i, err))
		}
		if strings.TrimSpace(e.Path) == "" {
			errs = append(errs, fmt.Errorf("exports[%d]: path is required", i))
		}
	}
	if c.PoolSize < 0 {
		errs = append(errs, fmt.Errorf("pool_size must not be negative"))
	}
	return errors.Join(errs...)
}

// targets converts the configured exports. Formats were checked by validate.
func (c *ProjectConfig) targets() []watch.Target {
	out := make([]watch.Target, 0, len(c.Exports))
	for _, e := range c.Exports {
		f, err := export.ParseFormat(e.Format)
		if err != nil {
			continue
		}
		out = append(out, watch.Target{Format: f, Path: e.Path})
	}
	return out
}

// resolveString applies the fallback chain:
//  1. Explicit flag value (non-empty override)
//  2. Value from the project config
//  3. Built-in default
func resolveString(flagValue, configValue, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if configValue != "" {
		return configValue
	}
	return def
}

// resolveTokensPath returns the token source: positional argument, then the
// config's tokens entry, then the working directory (auto-discovery).
func resolveTokensPath(args []string) string {
	return resolveString(firstArg(args), projectCfg.Tokens, ".")
}

// parseTargets parses --target values of the form format=path.
func parseTargets(values []string) ([]watch.Target, error) {
	out := make([]watch.Target, 0, len(values))
	for _, v := range values {
		format, path, ok := strings.Cut(v, "=")
		if !ok || strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("invalid target %q (want format=path)", v)
		}
		f, err := export.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		out = append(out, watch.Target{Format: f, Path: strings.TrimSpace(path)})
	}
	return out, nil
}
