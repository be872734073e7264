// Package config loads the optional forgec YAML configuration.
package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/peterkuimelis/forgec/internal/compiler"
)

// Config holds converter options and rule-table extensions. All fields are
// optional; zero values keep the built-in defaults.
type Config struct {
	// OutputDir is where card script files are written.
	OutputDir string `yaml:"output_dir"`
	// Tokens are extra token script names recognized by "create … token"
	// effects, checked before the built-in list.
	Tokens []string `yaml:"tokens"`
	// Counters maps counter phrasing to Forge counter types, checked
	// before the built-in table.
	Counters map[string]string `yaml:"counters"`
	// Logging configures the zap logger.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `yaml:"level"`
	// Format is the log output format: "json" or "console".
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		OutputDir: "forge_cards",
		Logging:   LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load parses a YAML config file, filling unset fields from Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config YAML: %w", err)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "forge_cards"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	return cfg, nil
}

// CompilerOptions converts the rule-table extensions to compiler options.
// Counter aliases are sorted by phrasing so option order is deterministic.
func (c Config) CompilerOptions() []compiler.Option {
	var opts []compiler.Option
	if len(c.Tokens) > 0 {
		opts = append(opts, compiler.WithTokenScripts(c.Tokens...))
	}
	if len(c.Counters) > 0 {
		aliases := make([]compiler.CounterAlias, 0, len(c.Counters))
		for _, cue := range sortedKeys(c.Counters) {
			aliases = append(aliases, compiler.CounterAlias{Cue: cue, Name: c.Counters[cue]})
		}
		opts = append(opts, compiler.WithCounterTypes(aliases...))
	}
	return opts
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
