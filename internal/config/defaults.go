package config

import "git.home.luguber.info/inful/markup/internal/metrics"

// DefaultMaxDepth bounds grammar nesting when the config does not.
const DefaultMaxDepth = 200

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// ParserDefaultApplier handles parser defaults.
type ParserDefaultApplier struct{}

func (p *ParserDefaultApplier) Domain() string { return "parser" }

func (p *ParserDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Parser.MaxDepth == 0 {
		cfg.Parser.MaxDepth = DefaultMaxDepth
	}
	return nil
}

// InputDefaultApplier handles input decoding defaults.
type InputDefaultApplier struct{}

func (i *InputDefaultApplier) Domain() string { return "input" }

func (i *InputDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Input.Encoding == "" {
		cfg.Input.Encoding = EncodingUTF8
	}
	return nil
}

// LoggingDefaultApplier handles logging defaults.
type LoggingDefaultApplier struct{}

func (l *LoggingDefaultApplier) Domain() string { return "logging" }

func (l *LoggingDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
	return nil
}

// OutputDefaultApplier handles output defaults.
type OutputDefaultApplier struct{}

func (o *OutputDefaultApplier) Domain() string { return "output" }

func (o *OutputDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Output.Format == "" {
		cfg.Output.Format = OutputFormatTree
	}
	return nil
}

// MetricsDefaultApplier handles metrics defaults.
type MetricsDefaultApplier struct{}

func (m *MetricsDefaultApplier) Domain() string { return "metrics" }

func (m *MetricsDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = metrics.DefaultNamespace
	}
	return nil
}

// CompositeDefaultApplier applies defaults across all configuration domains.
type CompositeDefaultApplier struct {
	appliers []DefaultApplier
}

// NewDefaultApplier creates a composite default applier with all domain appliers.
func NewDefaultApplier() *CompositeDefaultApplier {
	return &CompositeDefaultApplier{
		appliers: []DefaultApplier{
			&ParserDefaultApplier{},
			&InputDefaultApplier{},
			&LoggingDefaultApplier{},
			&OutputDefaultApplier{},
			&MetricsDefaultApplier{},
		},
	}
}

// ApplyDefaults runs every domain applier in order.
func (c *CompositeDefaultApplier) ApplyDefaults(cfg *Config) error {
	for _, applier := range c.appliers {
		if err := applier.ApplyDefaults(cfg); err != nil {
			return err
		}
	}
	return nil
}

// GetApplierByDomain returns the applier for a domain, or nil.
func (c *CompositeDefaultApplier) GetApplierByDomain(domain string) DefaultApplier {
	for _, applier := range c.appliers {
		if applier.Domain() == domain {
			return applier
		}
	}
	return nil
}
