package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/markup/internal/foundation/errors"
)

// CurrentVersion is the only configuration schema version Load accepts.
const CurrentVersion = "1"

// DefaultPath is the file the CLI looks for when no --config flag is given.
const DefaultPath = "markup.yaml"

// Config represents the markup tool configuration.
type Config struct {
	Version string        `yaml:"version"`
	Parser  ParserConfig  `yaml:"parser"`
	Input   InputConfig   `yaml:"input"`
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ParserConfig tunes the grammar.
type ParserConfig struct {
	MaxDepth  int      `yaml:"max_depth"`            // Nesting ceiling before the parse fails with a recursion error
	ExtraTags []string `yaml:"extra_tags,omitempty"` // Added to the passthrough HTML allow-list
}

// InputConfig describes how source files are decoded.
type InputConfig struct {
	Encoding Encoding `yaml:"encoding"`
}

// LoggingConfig configures the slog handler installed by the CLI.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// OutputConfig selects how the CLI prints parse trees.
type OutputConfig struct {
	Format OutputFormat `yaml:"format"`
}

// MetricsConfig enables the Prometheus recorder.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
	Listen    string `yaml:"listen,omitempty"` // Address serving /metrics in watch mode
}

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	if err := loadEnvFile(); err != nil {
		// Don't fail if .env doesn't exist
		fmt.Fprintf(os.Stderr, "Note: .env file not found or couldn't be loaded: %v\n", err)
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return nil, errors.ConfigError("configuration file not found").
			WithContext(errors.ContextPath, configPath).
			Build()
	}
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read config file").
			WithContext(errors.ContextPath, configPath).
			Build()
	}

	return Parse(data)
}

// Parse decodes configuration from YAML bytes, expanding ${VAR} references
// against the process environment first.
func Parse(data []byte) (*Config, error) {
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to unmarshal config").Fatal().Build()
	}

	if config.Version == "" {
		config.Version = CurrentVersion
	}
	if config.Version != CurrentVersion {
		return nil, errors.ConfigError(fmt.Sprintf("unsupported configuration version: %s (expected %s)", config.Version, CurrentVersion)).Build()
	}

	// Normalization pass (case-fold enumerations) before defaults
	warnings, err := NormalizeConfig(&config)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "config normalization: %s\n", w)
	}

	if err := NewDefaultApplier().ApplyDefaults(&config); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	if err := ValidateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Resolve returns the configuration at path. An empty path falls back to
// DefaultPath when that file exists and to Default() otherwise.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		return Load(DefaultPath)
	}
	return Default(), nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{Version: CurrentVersion}
	// The composite applier never fails on a fresh config.
	_ = NewDefaultApplier().ApplyDefaults(cfg)
	return cfg
}

// Init creates a new configuration file with the default values.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ValidationError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", configPath)).
			WithContext(errors.ContextPath, configPath).
			Build()
	}

	example := Default()
	example.Parser.ExtraTags = []string{}

	data, err := yaml.Marshal(example)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal config").Build()
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			WithContext(errors.ContextPath, configPath).
			Build()
	}

	return nil
}
