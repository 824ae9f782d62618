// Package markup drives a parse: it runs the grammar over one input buffer,
// decides between success and failure, classifies the failure and reports it.
package markup

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/markup/internal/ast"
	"git.home.luguber.info/inful/markup/internal/foundation/errors"
	"git.home.luguber.info/inful/markup/internal/logfields"
	"git.home.luguber.info/inful/markup/internal/metrics"
	"git.home.luguber.info/inful/markup/internal/parser"
)

// Result is the outcome of one parse.
type Result struct {
	// ID correlates log records of this parse.
	ID string
	// Root holds the blocks matched so far; on success, the whole document.
	Root ast.NodeList
	// Complete is true when the input was consumed and validated.
	Complete bool
	// Offset is the byte offset of the first unconsumed character.
	Offset int
	// Line and Column locate Offset, both 1-based. Column counts bytes.
	Line, Column int
	// Remaining is the unconsumed suffix of the input.
	Remaining string
	// Err is the classified failure; nil when Complete.
	Err error
}

// Outcome returns the metrics label for r.
func (r Result) Outcome() metrics.OutcomeLabel {
	switch {
	case r.Complete:
		return metrics.OutcomeComplete
	case errors.HasCategory(r.Err, errors.CategoryRecursion), errors.HasCategory(r.Err, errors.CategoryNotFound):
		return metrics.OutcomeFailed
	default:
		return metrics.OutcomePartial
	}
}

// Driver parses inputs with a shared grammar. It is safe for concurrent use.
type Driver struct {
	grammar  *parser.Grammar
	logger   *slog.Logger
	recorder metrics.Recorder
}

// Option configures a Driver.
type Option func(*Driver)

// WithGrammar replaces the default grammar.
func WithGrammar(g *parser.Grammar) Option {
	return func(d *Driver) {
		if g != nil {
			d.grammar = g
		}
	}
}

// WithLogger sets the logger for per-parse records; nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder; nil keeps the no-op recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(d *Driver) {
		if r != nil {
			d.recorder = r
		}
	}
}

// New builds a Driver. Without options it uses the default grammar, the
// default logger and no metrics.
func New(opts ...Option) *Driver {
	d := &Driver{logger: slog.Default(), recorder: metrics.NoopRecorder{}}
	for _, opt := range opts {
		opt(d)
	}
	if d.grammar == nil {
		d.grammar = parser.New(parser.WithLogger(d.logger))
	}
	return d
}

// Parse parses input with a default Driver.
func Parse(input string) Result {
	return New().Parse(input)
}

// Parse runs the grammar over input. Full consumption, trailing whitespace
// allowed, followed by a successful attribute check is success.
func (d *Driver) Parse(input string) Result {
	start := time.Now()
	id := uuid.NewString()

	pr := d.grammar.Parse(input)
	res := Result{ID: id, Root: pr.Root, Offset: pr.End, Remaining: input[pr.End:]}

	switch {
	case pr.Err != nil:
		res.Err = pr.Err
	case pr.End < len(input):
		res.Err = stopError(pr)
	default:
		res.Err = CheckAttributes(pr.Root)
	}
	res.Complete = res.Err == nil
	res.Line, res.Column = Position(input, res.Offset)
	if res.Err != nil {
		res.Err = withPosition(res.Err, res.Line, res.Column)
	}

	d.observe(res, len(input), time.Since(start))
	return res
}

// stopError classifies why the grammar stopped before the end of input. An
// unterminated construct opened at or after the stop offset is the better
// explanation; otherwise it is a plain mismatch.
func stopError(pr parser.Result) error {
	if c, ok := pr.OpenFrom(pr.End); ok {
		return errors.UnterminatedError(fmt.Sprintf("unterminated %s", c.Name)).
			AtOffset(pr.End).
			WithContext(errors.ContextOpenedAt, c.Offset).
			WithContext(errors.ContextConstruct, c.Name).
			Build()
	}
	return errors.GrammarError("no markup construct matches").
		AtOffset(pr.End).
		Build()
}

func withPosition(err error, line, column int) error {
	ce, ok := errors.AsClassified(err)
	if !ok {
		return err
	}
	return ce.WithContextMap(errors.ErrorContext{
		errors.ContextLine:   line,
		errors.ContextColumn: column,
	})
}

func (d *Driver) observe(res Result, size int, elapsed time.Duration) {
	outcome := res.Outcome()
	nodes := ast.Count(res.Root)

	d.recorder.ObserveParseDuration(elapsed)
	d.recorder.IncParseOutcome(outcome)
	d.recorder.ObserveNodeCount(nodes)
	d.recorder.ObserveInputBytes(size)

	attrs := []any{
		logfields.ParseID(res.ID),
		logfields.Bytes(size),
		logfields.Size(humanize.Bytes(uint64(size))),
		logfields.Nodes(nodes),
		logfields.DurationMS(float64(elapsed.Microseconds()) / 1000),
		logfields.Outcome(string(outcome)),
	}
	if res.Complete {
		d.logger.Debug("Parse complete", attrs...)
		return
	}

	d.recorder.IncFailureCategory(string(errors.GetCategory(res.Err)))
	attrs = append(attrs,
		logfields.Offset(res.Offset),
		logfields.Line(res.Line),
		logfields.Column(res.Column),
		logfields.Error(res.Err),
	)
	d.logger.Warn("Parse failed", attrs...)
}
