// Package parser implements the markup grammar: blocks, inline spans,
// passthrough HTML and the procedural template clauses, producing an
// ast.NodeList.
//
// The grammar is a set of mutually recursive functions over a byte cursor.
// Alternatives are tried in a fixed order and the first match wins; a failed
// alternative restores the cursor. Inline results are memoized per offset so
// nested retries stay linear.
package parser

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"

	"git.home.luguber.info/inful/markup/internal/ast"
	"git.home.luguber.info/inful/markup/internal/foundation/errors"
	"git.home.luguber.info/inful/markup/internal/logfields"
)

// DefaultMaxDepth is the nesting ceiling used when none is configured.
const DefaultMaxDepth = 200

// Grammar holds the immutable parser configuration. A Grammar is safe for
// concurrent use; every Parse call allocates its own state.
type Grammar struct {
	maxDepth int
	tags     map[string]struct{}
	logger   *slog.Logger
}

// Option configures a Grammar.
type Option func(*Grammar)

// WithMaxDepth sets the nesting ceiling. Values below 1 are ignored.
func WithMaxDepth(n int) Option {
	return func(g *Grammar) {
		if n > 0 {
			g.maxDepth = n
		}
	}
}

// WithExtraTags adds names to the passthrough HTML allow-list.
func WithExtraTags(names ...string) Option {
	return func(g *Grammar) {
		for _, n := range names {
			g.tags[n] = struct{}{}
		}
	}
}

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(g *Grammar) {
		if l != nil {
			g.logger = l
		}
	}
}

// New builds a Grammar.
func New(opts ...Option) *Grammar {
	g := &Grammar{
		maxDepth: DefaultMaxDepth,
		tags:     defaultTags(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// MaxDepth returns the configured nesting ceiling.
func (g *Grammar) MaxDepth() int { return g.maxDepth }

// Tags returns the passthrough allow-list, sorted.
func (g *Grammar) Tags() []string {
	names := make([]string, 0, len(g.tags))
	for n := range g.tags {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Construct is an opening delimiter whose closing counterpart never appears.
type Construct struct {
	Name   string // e.g. "<div>", "<%", "```"
	Offset int    // byte offset of the opening delimiter
}

// Result is the outcome of one Parse call.
type Result struct {
	// Root holds the blocks matched before the grammar stopped.
	Root ast.NodeList
	// End is the offset where matching stopped, after trailing whitespace.
	// End == len(input) means the whole input was consumed.
	End int
	// Furthest is the largest offset any alternative reached before failing.
	Furthest int
	// Err is a hard failure that aborted matching, such as exceeding the
	// nesting ceiling. It is nil for plain grammar mismatches.
	Err error
	// Open lists unterminated constructs in offset order.
	Open []Construct
}

// OpenFrom returns the first unterminated construct opened at or after offset.
func (r Result) OpenFrom(offset int) (Construct, bool) {
	i, _ := slices.BinarySearchFunc(r.Open, offset, func(c Construct, off int) int {
		return c.Offset - off
	})
	if i < len(r.Open) {
		return r.Open[i], true
	}
	return Construct{}, false
}

// Parse matches input against the document grammar.
func (g *Grammar) Parse(input string) Result {
	s := newState(g, input)
	root := s.document()
	end := s.pos
	for end < len(input) && isSpace(input[end]) {
		end++
	}

	res := Result{Root: root, End: end, Furthest: max(s.furthest, end), Err: s.err}
	for off, name := range s.open {
		res.Open = append(res.Open, Construct{Name: name, Offset: off})
	}
	slices.SortFunc(res.Open, func(a, b Construct) int { return a.Offset - b.Offset })
	return res
}

// state is the per-call mutable parse state.
type state struct {
	g        *Grammar
	src      string
	pos      int
	depth    int
	furthest int
	err      error
	memo     map[memoKey]memoEntry
	open     map[int]string
}

type memoKey struct {
	pos  int
	line bool
}

type memoEntry struct {
	node ast.Node
	end  int
	ok   bool
}

func newState(g *Grammar, src string) *state {
	return &state{
		g:    g,
		src:  src,
		memo: make(map[memoKey]memoEntry),
		open: make(map[int]string),
	}
}

// enter guards one level of recursion. It fails once the sticky error is set.
func (s *state) enter() bool {
	if s.err != nil {
		return false
	}
	s.depth++
	if s.depth > s.g.maxDepth {
		s.err = errors.RecursionError(fmt.Sprintf("nesting deeper than %d levels", s.g.maxDepth)).
			AtOffset(s.pos).
			WithContext(errors.ContextDepth, s.g.maxDepth).
			Build()
		s.g.logger.Debug("Nesting limit reached", logfields.Offset(s.pos), logfields.Depth(s.g.maxDepth))
		return false
	}
	return true
}

func (s *state) leave() { s.depth-- }

// unterminated records name as opened at off when close never occurs after from.
func (s *state) unterminated(off, from int, name, close string) {
	if from > len(s.src) || containsFrom(s.src, from, close) {
		return
	}
	s.markOpen(off, name)
}

// markOpen records name as an unterminated construct opened at off.
func (s *state) markOpen(off int, name string) {
	if _, seen := s.open[off]; seen {
		return
	}
	s.open[off] = name
	s.g.logger.Debug("Unterminated construct", logfields.Construct(name), logfields.Offset(off))
}
