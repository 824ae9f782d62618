package parser

import (
	"strings"

	"git.home.luguber.info/inful/markup/internal/ast"
)

// document matches blocks until none applies.
func (s *state) document() ast.NodeList {
	out := ast.NodeList{}
	for !s.eof() {
		mark := s.pos
		n, ok := s.block()
		if !ok || s.pos == mark {
			s.reset(mark)
			break
		}
		out = append(out, n)
	}
	return out
}

func (s *state) block() (ast.Node, bool) {
	if !s.enter() {
		return nil, false
	}
	defer s.leave()

	start := s.pos
	s.skipBlankLines()
	if s.eof() {
		s.reset(start)
		return nil, false
	}

	alternatives := [...]func() (ast.Node, bool){
		s.commentBlock,
		s.verbatimBlock,
		s.filterBlock,
		s.procBlock,
		s.highlight,
		s.header,
		s.topList,
		s.htmlPhrase,
		s.paragraph,
		s.inlineRun,
	}
	for _, alt := range alternatives {
		mark := s.pos
		if n, ok := alt(); ok {
			return n, true
		}
		s.reset(mark)
		if s.err != nil || s.open[mark] == fence {
			break
		}
	}
	s.reset(start)
	return nil, false
}

// endOfLine consumes a line ending, or succeeds at end of input.
func (s *state) endOfLine() bool {
	return s.eol() || s.eof()
}

func (s *state) commentBlock() (ast.Node, bool) {
	n, ok := s.commentInline(false)
	if ok {
		s.skipEOLs()
	}
	return n, ok
}

func (s *state) verbatimBlock() (ast.Node, bool) {
	start := s.pos
	if !s.lit("<%$") || !s.eol() {
		return nil, false
	}
	body, ok := s.until("%>")
	if !ok {
		s.unterminated(start, s.pos, "<%$", "%>")
		return nil, false
	}
	if !s.endOfLine() {
		return nil, false
	}
	return ast.Text{Value: body}, true
}

// procBlock is a procedural span on its own line.
func (s *state) procBlock() (ast.Node, bool) {
	n, ok := s.procSpan()
	if !ok || !s.endOfLine() {
		return nil, false
	}
	return n, true
}

// untilLineMarker consumes text up to a line ending that is directly followed
// by marker, then the line ending and marker. accept, when set, must approve
// what follows the marker; rejected candidates are skipped.
func (s *state) untilLineMarker(marker string, accept func(rest string) bool) (string, bool) {
	for i := s.pos; i < len(s.src); i++ {
		c := s.src[i]
		if c != '\n' && c != '\r' {
			continue
		}
		after := i + 1
		if c == '\r' && after < len(s.src) && s.src[after] == '\n' {
			after++
		}
		if !strings.HasPrefix(s.src[after:], marker) {
			continue
		}
		end := after + len(marker)
		if accept != nil && !accept(s.src[end:]) {
			continue
		}
		body := s.src[s.pos:i]
		s.pos = end
		return body, true
	}
	return "", false
}

func (s *state) filterBlock() (ast.Node, bool) {
	start := s.pos
	if !s.lit("<%|") {
		return nil, false
	}
	clause, ok := s.filterClause()
	if !ok || !s.token("%>") || !s.eol() {
		return nil, false
	}
	body, ok := s.untilLineMarker("<%|%>", nil)
	if !ok {
		s.unterminated(start, s.pos, "<%|", "<%|%>")
		return nil, false
	}
	return ast.FuncFilter{Clause: clause, Content: body}, true
}

// fenceClose accepts a closing fence followed by blanks and a line end.
func fenceClose(rest string) bool {
	rest = strings.TrimLeft(rest, " \t")
	return rest == "" || rest[0] == '\n' || rest[0] == '\r'
}

const fence = "```"

// highlight matches a fenced code block. The body is kept verbatim. A fence
// that is never closed ends the document at its opening line.
func (s *state) highlight() (ast.Node, bool) {
	start := s.pos
	if !s.lit(fence) {
		return nil, false
	}
	s.skipBlanks()
	langStart := s.pos
	for !s.eof() && !s.atEOL() {
		s.pos++
	}
	lang := strings.TrimRight(s.src[langStart:s.pos], " \t")
	if !s.eol() {
		s.markOpen(start, fence)
		return nil, false
	}

	var body string
	if s.hasPrefix(fence) && fenceClose(s.src[s.pos+len(fence):]) {
		s.pos += len(fence)
	} else {
		var ok bool
		if body, ok = s.untilLineMarker(fence, fenceClose); !ok {
			s.markOpen(start, fence)
			return nil, false
		}
	}
	s.skipBlanks()
	s.endOfLine()
	return ast.Highlight{Language: lang, Content: body}, true
}

// header matches "# text" through "###### text", optionally with an anchor
// id as in "##(intro) text".
func (s *state) header() (ast.Node, bool) {
	level := 0
	for s.peek() == '#' && !s.eof() {
		s.pos++
		level++
	}
	if level == 0 || level > 6 {
		return nil, false
	}

	content := ast.NodeList{}
	switch {
	case s.char('('):
		idStart := s.pos
		for !s.eof() && s.peek() != ')' {
			s.pos++
		}
		id := s.src[idStart:s.pos]
		if id == "" || !s.lit(") ") {
			return nil, false
		}
		content = append(content, ast.HTMLNode{
			Tag:     "a",
			Attrs:   ast.Attributes{{Name: "id", Value: ast.Text{Value: id}}},
			Subtree: ast.NodeList{},
		})
	case s.char(' '):
	default:
		return nil, false
	}

	inlines, ok := s.inlines(true, "")
	if !ok {
		return nil, false
	}
	content = append(content, inlines...)
	return ast.TaggedNode{Tag: "h" + string(rune('0'+level)), Subtree: content}, true
}

func (s *state) paragraph() (ast.Node, bool) {
	content, ok := s.inlines(false, "")
	if !ok {
		return nil, false
	}
	ended := s.eof()
	for !s.eof() {
		if s.eol() {
			ended = true
			continue
		}
		mark := s.pos
		if s.skipBlanks() && s.eof() {
			ended = true
			break
		}
		s.pos = mark
		break
	}
	if !ended {
		return nil, false
	}
	return ast.TaggedNode{Tag: "p", Subtree: content}, true
}

// inlineRun is the bare fallback used where no line end follows, such as
// inside procedural bodies.
func (s *state) inlineRun() (ast.Node, bool) {
	content, ok := s.inlines(false, "")
	if !ok {
		return nil, false
	}
	return content, true
}
