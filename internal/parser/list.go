package parser

import "git.home.luguber.info/inful/markup/internal/ast"

// maxListLevel is the deepest nesting level; markers below it are text.
const maxListLevel = 2

func (s *state) topList() (ast.Node, bool) { return s.list(0) }

// list matches one or more items at level. The first marker decides between
// "ul" and "ol".
func (s *state) list(level int) (ast.Node, bool) {
	if !s.enter() {
		return nil, false
	}
	defer s.leave()

	mark := s.pos
	if !s.indents(level) {
		return nil, false
	}
	tag := "ul"
	switch {
	case s.enumet():
		tag = "ol"
	case s.bullet():
	default:
		s.pos = mark
		return nil, false
	}
	s.pos = mark

	items := ast.NodeList{}
	for {
		m := s.pos
		li, ok := s.listItem(level)
		if !ok {
			s.reset(m)
			break
		}
		items = append(items, li)
	}
	if len(items) == 0 {
		return nil, false
	}
	return ast.TaggedNode{Tag: tag, Subtree: items}, true
}

func (s *state) indents(n int) bool {
	for range n {
		if !s.indent() {
			return false
		}
	}
	return true
}

// listItem matches a marker line, its continuation lines and nested lists.
func (s *state) listItem(level int) (ast.Node, bool) {
	if !s.indents(level) || !s.marker() || s.isBlankLine() {
		return nil, false
	}
	content, ok := s.line()
	if !ok {
		return nil, false
	}
	for {
		mark := s.pos
		if level < maxListLevel {
			if n, ok := s.list(level + 1); ok {
				content = append(content, n)
				continue
			}
			s.reset(mark)
		}
		if more, ok := s.continuation(level); ok {
			content = append(content, more...)
			continue
		}
		s.reset(mark)
		break
	}
	return ast.TaggedNode{Tag: "li", Subtree: content}, true
}

// line matches one line of inlines and its line ending plus at most one
// blank line.
func (s *state) line() (ast.NodeList, bool) {
	content, ok := s.inlines(true, "")
	if !ok {
		return nil, false
	}
	if s.eol() {
		s.blankLine()
		return content, true
	}
	return content, s.eof()
}

// continuation matches an indented line of the item at level that does not
// start a list of its own. It yields a separating space and the line content.
func (s *state) continuation(level int) (ast.NodeList, bool) {
	if s.eof() || s.isBlankLine() {
		return nil, false
	}
	mark := s.pos
	n := 0
	for s.indent() {
		n++
	}
	structural := s.marker() && n <= min(level+1, maxListLevel)
	s.pos = mark
	if structural || !s.indents(level+1) {
		return nil, false
	}
	s.skipBlanks()
	content, ok := s.line()
	if !ok {
		return nil, false
	}
	return append(ast.NodeList{ast.Text{Value: " "}}, content...), true
}
