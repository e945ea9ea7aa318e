package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-quizdeck/internal/fileutil"
	"github.com/alnah/go-quizdeck/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrFieldRequired   = errors.New("field is required")
	ErrInvalidMarker   = errors.New("marker must be a single character")
)

// Field length limits.
const (
	MaxPathLength   = 4096
	MaxTokenLength  = 16
	MaxPrefixLength = 100
)

// DefaultOutputPath is where decks are written when nothing else is set.
const DefaultOutputPath = "questions.json"

// configDirName is the directory searched under the user config dir.
const configDirName = "go-quizdeck"

// Config holds all settings read from a config file.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Symbol SymbolConfig `yaml:"symbol"`
}

// OutputConfig defines where the deck is written.
type OutputConfig struct {
	Path string `yaml:"path"` // File path, relative to the working directory
}

// SymbolConfig defines the markers of the symbol format.
type SymbolConfig struct {
	Marker         string `yaml:"marker"`         // Option glyph matched anywhere on the line
	FallbackMarker string `yaml:"fallbackMarker"` // Option glyph matched at line start
	CorrectToken   string `yaml:"correctToken"`   // Case-insensitive prefix flagging a correct option
	SectionPrefix  string `yaml:"sectionPrefix"`  // Case-insensitive section header prefix
}

// DefaultConfig returns the settings that reproduce the stock converters.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Path: DefaultOutputPath},
		Symbol: SymbolConfig{
			Marker:         "©",
			FallbackMarker: "@",
			CorrectToken:   "ff",
			SectionPrefix:  "knowledge assessment",
		},
	}
}

// Validate checks required fields, marker shape and field lengths.
// Called automatically by LoadConfig.
func (c *Config) Validate() error {
	if err := validateRequired("output.path", c.Output.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateMarker("symbol.marker", c.Symbol.Marker); err != nil {
		return err
	}
	if err := validateMarker("symbol.fallbackMarker", c.Symbol.FallbackMarker); err != nil {
		return err
	}
	if err := validateRequired("symbol.correctToken", c.Symbol.CorrectToken, MaxTokenLength); err != nil {
		return err
	}
	if err := validateRequired("symbol.sectionPrefix", c.Symbol.SectionPrefix, MaxPrefixLength); err != nil {
		return err
	}
	return nil
}

func validateRequired(fieldName, value string, maxLength int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrFieldRequired, fieldName)
	}
	return validateFieldLength(fieldName, value, maxLength)
}

func validateMarker(fieldName, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s", ErrFieldRequired, fieldName)
	}
	if utf8.RuneCountInString(value) != 1 {
		return fmt.Errorf("%w: %s = %q", ErrInvalidMarker, fieldName, value)
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

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their default values.
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

	cfg := DefaultConfig()
	if err := yamlutil.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// YAML renders the configuration as a config file.
func (c *Config) YAML() ([]byte, error) {
	return yamlutil.Encode(c)
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// the current directory first, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
