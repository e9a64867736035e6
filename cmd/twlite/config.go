package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/twlite"
	"github.com/yacobolo/twlite/internal/logger"
)

const defaultConfigPath = ".twlite.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Without a koanf instance posflag
	// only loads flags that were explicitly set, so flag defaults never
	// shadow the config file.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", nil), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	setupLogging()
	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (TWLITE_* prefix)
	if err := k.Load(env.Provider("TWLITE_", ".", func(s string) string {
		// TWLITE_GENERATE_OUTPUT -> generate.output
		// TWLITE_LINT_STRICT -> lint.strict
		// TWLITE_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "TWLITE_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// setupLogging points the logger at stderr or discards it, and enables
// debug output in verbose mode.
func setupLogging() {
	if getBoolWithFallback("quiet", "quiet", false) {
		logger.SetOutput(io.Discard)
	} else {
		logger.SetOutput(os.Stderr)
	}
	logger.SetVerbose(getBoolWithFallback("verbose", "verbose", false))
}

// buildGenerateConfig constructs the library's Config struct from koanf state.
func buildGenerateConfig() twlite.Config {
	return twlite.Config{
		Sources: getStringsWithFallback("source", "generate.sources", twlite.DefaultSources),
		Output:  getStringWithFallback("output", "generate.output", twlite.DefaultOutput),
		Verify:  getBoolWithFallback("verify", "generate.verify", true),
	}
}

// buildLintConfig constructs the library's LintConfig struct from koanf state.
// Lint scans the generate sources unless lint.sources is configured.
func buildLintConfig() twlite.LintConfig {
	sources := getStringsWithFallback("source", "lint.sources", nil)
	if len(sources) == 0 {
		sources = getStringsWithFallback("", "generate.sources", twlite.DefaultSources)
	}

	return twlite.LintConfig{
		Sources:       sources,
		MaxIssues:     getIntWithFallback("max-issues", "lint.max-issues", 0),
		MaxSameIssues: getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
	}
}

// getStringsWithFallback checks the flag key first, then the config file key,
// then returns a copy of the default. A plain string value (as set through
// the environment) is split on commas.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	for _, key := range []string{flagKey, configKey} {
		if key == "" || !k.Exists(key) {
			continue
		}
		if s, ok := k.Get(key).(string); ok {
			if paths := parsePaths(s); len(paths) > 0 {
				return paths
			}
			continue
		}
		if values := k.Strings(key); len(values) > 0 {
			return values
		}
	}
	return append([]string(nil), defaultVal...)
}

// parsePaths splits comma-separated paths into a slice
func parsePaths(paths string) []string {
	if paths == "" {
		return []string{}
	}

	parts := strings.Split(paths, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getFloat64WithFallback checks the flag key first, then the config file key, then returns the default.
func getFloat64WithFallback(flagKey, configKey string, defaultVal float64) float64 {
	if k.Exists(flagKey) {
		return k.Float64(flagKey)
	}
	if k.Exists(configKey) {
		return k.Float64(configKey)
	}
	return defaultVal
}
