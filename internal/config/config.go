// Package config loads nbdash YAML configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/alnah/go-nbdash/internal/fileutil"
	"github.com/alnah/go-nbdash/internal/render"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigTooLarge  = errors.New("config exceeds maximum size")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// MaxInputSize limits config file size to prevent memory exhaustion.
var MaxInputSize = 1 << 20

// Field length limits.
const (
	MaxTitleLength = 200  // Report title
	MaxStyleLength = 4096 // Style name, path, or inline CSS
	MaxPathLength  = 4096 // Filesystem paths
	MaxNameLength  = 64   // Highlight style name
	MaxDateLength  = 64   // "auto:DD/MM/YYYY" or a literal date
)

// configDirectory is the per-user config subdirectory.
const configDirectory = "go-nbdash"

// Config holds all configuration for report generation.
// Zero values mean "use the built-in default".
type Config struct {
	Template  string          `yaml:"template"` // default, minimal, grid
	Output    OutputConfig    `yaml:"output"`
	Title     TitleConfig     `yaml:"title"`
	Style     string          `yaml:"style"` // style name, .css path, or inline CSS
	CSS       string          `yaml:"css"`   // extra CSS file appended after the style
	Assets    AssetsConfig    `yaml:"assets"`
	Highlight HighlightConfig `yaml:"highlight"`
	Date      string          `yaml:"date"` // "", "auto", "auto:FORMAT", or literal
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = next to the notebook)
}

// TitleConfig defines how the report title is chosen.
type TitleConfig struct {
	Default  string `yaml:"default"`  // Used when the notebook has no level-1 heading
	Override string `yaml:"override"` // Replaces the detected title
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = embedded styles only
}

// HighlightConfig defines code block highlighting.
type HighlightConfig struct {
	Style string `yaml:"style"` // chroma style name (empty = github)
}

// DefaultConfig returns a configuration that selects every built-in default.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks the template name and field lengths.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if _, err := render.ParseLayout(c.Template); err != nil {
		return fmt.Errorf("template: %w", err)
	}

	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"title.default", c.Title.Default, MaxTitleLength},
		{"title.override", c.Title.Override, MaxTitleLength},
		{"style", c.Style, MaxStyleLength},
		{"css", c.CSS, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"highlight.style", c.Highlight.Style, MaxNameLength},
		{"date", c.Date, MaxDateLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// Parse decodes YAML config data. Unknown keys are rejected.
// An empty document yields the default config.
func Parse(data []byte) (*Config, error) {
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), MaxInputSize)
	}

	cfg := DefaultConfig()
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, the user config directory.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirectory, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
