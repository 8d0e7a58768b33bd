// Package config provides configuration types and defaults for easydiff.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dev-shetty/easydiff/internal/log"
)

// Config holds all configuration options for easydiff.
type Config struct {
	Debug   bool          `mapstructure:"debug"`
	UI      UIConfig      `mapstructure:"ui"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	Watch   WatchConfig   `mapstructure:"watch"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowFooter    bool   `mapstructure:"show_footer"`
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"
	WordDiff      bool   `mapstructure:"word_diff"`      // highlight changed words inside lines
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "catppuccin-mocha", "nord"
	Preset string `mapstructure:"preset"`

	// Colors allows overriding individual color tokens.
	// Supports both nested YAML structure and dot notation.
	// Example YAML:
	//   colors:
	//     diff:
	//       addition: "#00FF00"
	// Or quoted dot notation:
	//   colors:
	//     "diff.addition": "#00FF00"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// flattenColors recursively flattens a nested map into dot-notation keys.
func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// WatchConfig controls the repository watcher that refreshes the view
// when the index or HEAD change outside the program.
type WatchConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	DebounceMS int  `mapstructure:"debounce_ms"`
}

// TracingConfig holds trace export configuration for git command spans.
type TracingConfig struct {
	// Enabled controls whether tracing is active. Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for the "file" exporter.
	// Default: ~/.config/easydiff/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// SampleRate controls trace sampling (0.0 to 1.0). Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`
}

// DefaultTracesFilePath returns the default path for trace file export,
// or empty string if the home dir is unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "easydiff", "traces", "traces.jsonl")
}

// Validate checks the configuration for errors. Empty values use defaults.
func Validate(cfg Config) error {
	if cfg.Watch.DebounceMS < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative, got %d", cfg.Watch.DebounceMS)
	}

	if cfg.UI.MarkdownStyle != "" {
		switch cfg.UI.MarkdownStyle {
		case "dark", "light":
		default:
			return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", cfg.UI.MarkdownStyle)
		}
	}

	return ValidateTracing(cfg.Tracing)
}

// ValidateTracing checks tracing configuration for errors.
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", or \"stdout\", got %q", tracing.Exporter)
		}
	}

	if tracing.Enabled && tracing.Exporter == "file" && tracing.FilePath == "" {
		return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
	}

	return nil
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Debug: false,
		UI: UIConfig{
			ShowFooter:    true,
			MarkdownStyle: "dark",
			WordDiff:      true,
		},
		Theme: ThemeConfig{
			Preset: "",
		},
		Watch: WatchConfig{
			Enabled:    true,
			DebounceMS: 500,
		},
		Tracing: TracingConfig{
			Enabled:    false,
			Exporter:   "file",
			FilePath:   "", // derived from config dir at runtime
			SampleRate: 1.0,
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# easydiff configuration

# Write a debug log to easydiff-debug.log (also: EASYDIFF_DEBUG=1)
debug: false

# UI settings
ui:
  show_footer: true     # Show the key hint bar at the bottom
  # markdown_style: dark  # Help rendering style: "dark" (default) or "light"
  word_diff: true       # Highlight changed words inside modified lines

# Theme configuration
# Use a preset theme or customize individual colors
theme:
  # Use a preset (run 'easydiff themes' to see available presets):
  # preset: catppuccin-mocha
  #
  # Available presets:
  #   default           - Default easydiff theme
  #   catppuccin-mocha  - Warm, cozy dark theme
  #   nord              - Arctic, north-bluish palette
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   diff.addition: "#00FF00"
  #   diff.deletion: "#FF0000"
  #   selection: "#FFD75F"

# Repository watcher - refreshes the view when the index or HEAD
# change outside the program (e.g. a commit from another terminal)
watch:
  enabled: true
  debounce_ms: 500

# Trace export for git command spans
# tracing:
#   enabled: false      # Enable/disable tracing (default: false)
#   exporter: file      # Export backend: none, file, stdout (default: file)
#   file_path: ~/.config/easydiff/traces/traces.jsonl
#   sample_rate: 1.0    # Trace sampling rate 0.0-1.0 (default: 1.0)
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
