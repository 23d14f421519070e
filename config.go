package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrUnknownLogLevel is returned by Validate for a level zap doesn't know.
var ErrUnknownLogLevel = errors.New("abook: unknown log level")

// Config holds all abook configuration.
type Config struct {
	Prompts  PromptConfig   `yaml:"prompts"`
	Logging  LoggingConfig  `yaml:"logging"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// PromptConfig holds the text shown before each kind of input.
type PromptConfig struct {
	Command  string `yaml:"command"`
	Name     string `yaml:"name"`
	Lastname string `yaml:"lastname"`
	Search   string `yaml:"search"`
}

// LoggingConfig configures the diagnostic log. An empty File disables it.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

type TerminalConfig struct {
	// Plain disables raw terminal mode even when stdin is a terminal.
	Plain bool `yaml:"plain"`
	Color bool `yaml:"color"`
}

func DefaultPrompts() PromptConfig {
	return PromptConfig{
		Command:  "what do you want? ",
		Name:     "gimme a name? ",
		Lastname: "gimme a lastname? ",
		Search:   "What are you searching for? ",
	}
}

func DefaultConfig() *Config {
	return &Config{
		Prompts: DefaultPrompts(),
		Logging: LoggingConfig{
			Level: "info",
		},
		Terminal: TerminalConfig{
			Color: true,
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the log level and fills empty prompts with defaults.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, c.Logging.Level)
	}

	def := DefaultPrompts()
	if c.Prompts.Command == "" {
		c.Prompts.Command = def.Command
	}
	if c.Prompts.Name == "" {
		c.Prompts.Name = def.Name
	}
	if c.Prompts.Lastname == "" {
		c.Prompts.Lastname = def.Lastname
	}
	if c.Prompts.Search == "" {
		c.Prompts.Search = def.Search
	}
	return nil
}
