package config

import (
	"fmt"
	"net"

	"git.home.luguber.info/inful/markup/internal/foundation/errors"
)

// MaxDepthCeiling caps parser.max_depth; the grammar recurses on the goroutine stack.
const MaxDepthCeiling = 10000

// ValidateConfig validates the complete configuration structure.
func ValidateConfig(cfg *Config) error {
	return newConfigurationValidator(cfg).validate()
}

// configurationValidator coordinates validation across all configuration domains.
type configurationValidator struct {
	config *Config
}

func newConfigurationValidator(config *Config) *configurationValidator {
	return &configurationValidator{config: config}
}

func (cv *configurationValidator) validate() error {
	if err := cv.validateParser(); err != nil {
		return err
	}
	return cv.validateMetrics()
}

func (cv *configurationValidator) validateParser() error {
	depth := cv.config.Parser.MaxDepth
	if depth < 1 || depth > MaxDepthCeiling {
		return errors.ConfigError(fmt.Sprintf("parser.max_depth must be between 1 and %d, got %d", MaxDepthCeiling, depth)).
			WithContext(errors.ContextDepth, depth).
			Build()
	}
	for _, tag := range cv.config.Parser.ExtraTags {
		if !isTagName(tag) {
			return errors.ConfigError(fmt.Sprintf("parser.extra_tags entry %q is not a tag name ([a-z0-9]+)", tag)).Build()
		}
	}
	return nil
}

func (cv *configurationValidator) validateMetrics() error {
	m := cv.config.Metrics
	if m.Listen == "" {
		return nil
	}
	if !m.Enabled {
		return errors.ConfigError("metrics.listen requires metrics.enabled").Build()
	}
	if _, _, err := net.SplitHostPort(m.Listen); err != nil {
		return errors.WrapError(err, errors.CategoryConfig, fmt.Sprintf("metrics.listen %q is not host:port", m.Listen)).Fatal().Build()
	}
	return nil
}

func isTagName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
