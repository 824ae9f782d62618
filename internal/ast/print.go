package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/markup/internal/foundation/errors"
)

// printer renders the indented debug dump. Each line is prefixed by two
// spaces per depth level; children print one level deeper than their parent.
type printer struct {
	w       io.Writer
	depth   int
	err     error // first write failure; stops output
	unknown error // first node outside the closed set; output continues
}

// Fprint writes the dump of n to w. A nil node is the only value outside the
// closed set; it is reported as an internal error after the rest is written.
func Fprint(w io.Writer, n Node) error {
	p := &printer{w: w}
	p.node(n)
	if p.err != nil {
		return p.err
	}
	return p.unknown
}

// Dump returns the dump of n as a string.
func Dump(n Node) string {
	var sb strings.Builder
	_ = Fprint(&sb, n)
	return sb.String()
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, err := fmt.Fprintf(p.w, strings.Repeat("  ", p.depth)+format+"\n", args...)
	if err != nil {
		p.err = errors.WrapError(err, errors.CategoryFileSystem, "failed to write dump").Build()
	}
}

func (p *printer) nested(n Node) {
	p.depth++
	p.node(n)
	p.depth--
}

func (p *printer) list(nodes []Node) {
	p.line("{")
	for _, n := range nodes {
		p.nested(n)
	}
	p.line("}")
}

func (p *printer) attrs(head string, attrs Attributes) {
	if len(attrs) == 0 {
		p.line("%s", head)
		return
	}
	p.line("%s [", head)
	p.depth++
	for _, a := range attrs {
		p.line("%s=", a.Name)
		p.nested(a.Value)
	}
	p.line("]")
	p.depth--
}

func (p *printer) node(n Node) {
	switch n := n.(type) {
	case Null:
		p.line("NULL")
	case Text:
		p.line("text: %q", n.Value)
	case Comment:
		p.line("comment: %q", n.Body)
	case NodeList:
		p.list(n)
	case FuncVariable:
		p.line("var: %s", n.Name)
	case FuncString:
		p.line("string: %q", n.Value)
	case FuncTemplate:
		p.line("template: %s", n.Name)
	case FuncInteger:
		p.line("integer: %d", n.Value)
	case FuncDouble:
		p.line("double: %s", strconv.FormatFloat(n.Value, 'g', -1, 64))
	case FuncCall:
		p.line("call: %s {", n.Name)
		p.list(n.Args)
		p.line("}")
	case FuncFilter:
		p.line("filter: [")
		p.nested(n.Clause)
		p.line("] on %q", n.Content)
	case FuncExpr:
		p.line("expr: {")
		p.list(n)
		p.line("}")
	case FuncSet:
		p.line("set: %s", n.Name)
		p.line("value:")
		p.nested(n.Value)
	case FuncIf:
		p.line("if: [")
		p.nested(n.Condition)
		p.line("]")
		p.line("true:")
		p.nested(n.IfTrue)
		p.line("else:")
		p.nested(n.IfFalse)
	case FuncFor:
		p.line("for: %s[", n.Name)
		p.nested(n.Arg)
		p.line("]")
		p.line("subtree:")
		p.nested(n.Body)
	case TaggedNode:
		p.line("<%s>", n.Tag)
		p.nested(n.Subtree)
	case HTMLNode:
		p.attrs("<"+n.Tag+">", n.Attrs)
		p.nested(n.Subtree)
	case HTMLSelfNode:
		p.attrs("<"+n.Tag+">", n.Attrs)
	case Highlight:
		p.line("highlight[%s]", n.Language)
		p.line("%q", n.Content)
	default:
		p.line("?")
		if p.unknown == nil {
			p.unknown = errors.InternalError(fmt.Sprintf("unknown node %T", n)).
				WithContext(errors.ContextDepth, p.depth).
				Build()
		}
	}
}
