// Package config loads the tool configuration from YAML files with
// sensible defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for unmangle.
type Config struct {
	// Parser is the external parsing command.
	Parser ParserConfig `koanf:"parser"`

	// OpenAI settings for name suggestions and comments.
	OpenAI OpenAIConfig `koanf:"openai"`

	// Rename settings for the rewriting passes.
	Rename RenameConfig `koanf:"rename"`

	// Log settings.
	Log LogConfig `koanf:"log"`
}

// ParserConfig points at a command that reads JavaScript on stdin and
// writes ESTree JSON with ranges, locations and comments on stdout.
type ParserConfig struct {
	Command []string `koanf:"command"`
}

// OpenAIConfig controls the AI collaborator.
type OpenAIConfig struct {
	// SuggestNames asks the model for better function names.
	SuggestNames bool `koanf:"suggest_names"`
	// AddComments asks the model for commented function bodies.
	AddComments bool `koanf:"add_comments"`

	Model       string  `koanf:"model"`
	BaseURL     string  `koanf:"base_url"`
	MaxTokens   int     `koanf:"max_tokens"`
	Temperature float64 `koanf:"temperature"`
}

// RenameConfig controls which functions are processed and how final
// names are decorated.
type RenameConfig struct {
	// Functions restricts processing to these names; empty means all.
	Functions []string `koanf:"functions"`
	// Lines restricts processing to functions declared on these
	// 1-based lines; empty means all.
	Lines []int `koanf:"lines"`

	// XrefSuffix appends the call count to renamed functions.
	XrefSuffix bool `koanf:"xref_suffix"`
	// XrefComments prepends a caller summary comment.
	XrefComments bool `koanf:"xref_comments"`
	// OverridePrefix marks manually finalized names that the renamer
	// must leave alone.
	OverridePrefix string `koanf:"override_prefix"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `koanf:"level"` // panic, fatal, error, warn, info, debug, trace
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			Command: []string{"esparse", "--range", "--loc", "--comment"},
		},
		OpenAI: OpenAIConfig{
			SuggestNames: true,
			AddComments:  true,
			Model:        "gpt-4",
			MaxTokens:    8192,
			Temperature:  0.2,
		},
		Rename: RenameConfig{
			XrefSuffix:     true,
			XrefComments:   true,
			OverridePrefix: "F_",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault tries standard config file locations and falls back to
// the defaults.
func LoadOrDefault() *Config {
	names := []string{
		"unmangle.yaml",
		"unmangle.yml",
		".unmangle.yaml",
		".unmangle.yml",
	}
	for _, name := range names {
		path := filepath.Join(".", name)
		if _, err := os.Stat(path); err == nil {
			cfg, err := Load(path)
			if err == nil {
				return cfg
			}
		}
	}
	return DefaultConfig()
}
