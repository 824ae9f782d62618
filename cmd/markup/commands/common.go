package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/markup/internal/config"
	"git.home.luguber.info/inful/markup/internal/foundation/errors"
	"git.home.luguber.info/inful/markup/internal/logfields"
	"git.home.luguber.info/inful/markup/internal/markup"
	"git.home.luguber.info/inful/markup/internal/metrics"
	"git.home.luguber.info/inful/markup/internal/parser"
	"git.home.luguber.info/inful/markup/internal/source"
)

// Global carries the process streams and the active logger into subcommands.
type Global struct {
	Logger *slog.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewGlobal binds the process streams.
func NewGlobal(logger *slog.Logger) *Global {
	return &Global{Logger: logger, Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// CLI definition & global flags.
type CLI struct {
	Config    string           `short:"c" help:"Configuration file path (markup.yaml is used when present)"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogFormat string           `name:"log-format" help:"Log format: text or json (overrides config)"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Parse ParseCmd `cmd:"" help:"Parse one input and print its tree"`
	Check CheckCmd `cmd:"" help:"Parse inputs and print one status line per file"`
	Watch WatchCmd `cmd:"" help:"Reparse an input every time it changes"`
	Init  InitCmd  `cmd:"" help:"Write a default configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(newLogger(os.Stderr, level, config.NormalizeLogFormat(c.LogFormat)))
	return nil
}

func newLogger(w io.Writer, level slog.Level, format config.LogFormat) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// loadConfig resolves the configuration and reinstalls the logger with the
// configured level and format. Flags win over the file.
func loadConfig(g *Global, root *CLI) (*config.Config, error) {
	cfg, err := config.Resolve(root.Config)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level.SlogLevel()
	if root.Verbose {
		level = slog.LevelDebug
	}
	format := cfg.Logging.Format
	if root.LogFormat != "" {
		format = config.NormalizeLogFormat(root.LogFormat)
	}
	g.Logger = newLogger(g.Stderr, level, format)
	slog.SetDefault(g.Logger)

	if root.Config != "" {
		g.Logger.Debug("Configuration loaded", logfields.ConfigFile(root.Config))
	}
	return cfg, nil
}

// newDriver builds a driver from cfg. The registry is nil unless metrics are enabled.
func newDriver(cfg *config.Config, logger *slog.Logger) (*markup.Driver, *prom.Registry) {
	grammar := parser.New(
		parser.WithMaxDepth(cfg.Parser.MaxDepth),
		parser.WithExtraTags(cfg.Parser.ExtraTags...),
		parser.WithLogger(logger),
	)

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var reg *prom.Registry
	if cfg.Metrics.Enabled {
		reg = prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg, cfg.Metrics.Namespace)
	}

	return markup.New(
		markup.WithGrammar(grammar),
		markup.WithLogger(logger),
		markup.WithRecorder(recorder),
	), reg
}

func resolveEncoding(flag string, cfg *config.Config) (config.Encoding, error) {
	if flag == "" {
		return cfg.Input.Encoding, nil
	}
	return config.ParseEncoding(flag)
}

func resolveFormat(flag string, cfg *config.Config) (config.OutputFormat, error) {
	if flag == "" {
		return cfg.Output.Format, nil
	}
	return config.ParseOutputFormat(flag)
}

func readInput(g *Global, path string, enc config.Encoding) (source.Input, error) {
	if path == "" || path == "-" {
		return source.ReadFrom(g.Stdin, source.StdinName, enc)
	}
	return source.Read(path, enc)
}

// parseInput parses in and reports positions as offsets into the raw input
// bytes rather than the decoded text.
func parseInput(driver *markup.Driver, in source.Input) markup.Result {
	return rebase(in, driver.Parse(in.Text))
}

func rebase(in source.Input, res markup.Result) markup.Result {
	if res.Complete || in.Encoding != config.EncodingLatin1 {
		return res
	}
	lineStart := res.Offset - (res.Column - 1)
	offset := in.RawOffset(res.Offset)
	res.Column = offset - in.RawOffset(lineStart) + 1
	res.Offset = offset
	ce, ok := errors.AsClassified(res.Err)
	if !ok {
		return res
	}
	ctx := errors.ErrorContext{
		errors.ContextOffset: res.Offset,
		errors.ContextColumn: res.Column,
	}
	if at, ok := ce.Context().GetInt(errors.ContextOpenedAt); ok {
		ctx[errors.ContextOpenedAt] = in.RawOffset(at)
	}
	res.Err = ce.WithContextMap(ctx)
	return res
}

func render(w io.Writer, format config.OutputFormat, name string, res markup.Result) error {
	if format == config.OutputFormatYAML {
		return markup.WriteYAML(w, name, res)
	}
	return markup.Report(w, name, res)
}
