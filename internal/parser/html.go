package parser

import (
	"strings"

	"git.home.luguber.info/inful/markup/internal/ast"
)

// htmlPhrase matches a passthrough element, an HTML comment, or a
// self-closing element, in that order.
func (s *state) htmlPhrase() (ast.Node, bool) {
	if s.peek() != '<' {
		return nil, false
	}
	mark := s.pos
	if n, ok := s.htmlElement(); ok {
		return n, true
	}
	s.reset(mark)
	if n, ok := s.htmlComment(); ok {
		return n, true
	}
	s.reset(mark)
	return s.htmlSelfClose()
}

// tagName scans [a-z0-9]+ and accepts it only when it is allow-listed.
func (s *state) tagName() (string, bool) {
	start := s.pos
	for !s.eof() {
		c := s.peek()
		if (c < 'a' || c > 'z') && !isDigit(c) {
			break
		}
		s.pos++
	}
	name := s.src[start:s.pos]
	return name, name != "" && s.g.allowed(name)
}

// openTag matches "<name attrs" and leaves the cursor before ">" or "/>".
func (s *state) openTag() (string, ast.Attributes, bool) {
	if !s.char('<') {
		return "", nil, false
	}
	name, ok := s.tagName()
	if !ok {
		return "", nil, false
	}
	attrs := ast.Attributes{}
	for {
		a, ok := s.attribute()
		if !ok {
			break
		}
		attrs = append(attrs, a)
	}
	s.skipSpace()
	return name, attrs, true
}

func (s *state) htmlElement() (ast.Node, bool) {
	start := s.pos
	name, attrs, ok := s.openTag()
	if !ok || !s.char('>') {
		return nil, false
	}
	s.skipEOLs()
	content := ast.NodeList{}
	for {
		n, ok := s.inline(false)
		if !ok {
			break
		}
		content = append(content, n)
		s.skipEOLs()
	}
	closing := "</" + name + ">"
	if !s.lit(closing) {
		if unclosed(s.src[start:], name) {
			s.markOpen(start, "<"+name+">")
		}
		return nil, false
	}
	s.skipEOLs()
	return ast.HTMLNode{Tag: name, Attrs: attrs, Subtree: content}, true
}

func (s *state) htmlSelfClose() (ast.Node, bool) {
	name, attrs, ok := s.openTag()
	if !ok || !s.lit("/>") {
		return nil, false
	}
	s.skipEOLs()
	return ast.HTMLSelfNode{Tag: name, Attrs: attrs}, true
}

// htmlComment keeps <!-- ... --> as raw text.
func (s *state) htmlComment() (ast.Node, bool) {
	start := s.pos
	if !s.lit("<!--") {
		return nil, false
	}
	body, ok := s.until("-->")
	if !ok {
		s.unterminated(start, s.pos, "<!--", "-->")
		return nil, false
	}
	s.skipEOLs()
	return ast.Text{Value: "<!--" + body + "-->"}, true
}

// attribute matches whitespace, a name, '=' and a double-quoted value.
func (s *state) attribute() (ast.Attribute, bool) {
	mark := s.pos
	if s.eof() || !isSpace(s.peek()) {
		return ast.Attribute{}, false
	}
	s.skipSpace()
	start := s.pos
	for !s.eof() && (isAlnum(s.peek()) || s.peek() == '-') {
		s.pos++
	}
	name := s.src[start:s.pos]
	if name == "" {
		s.reset(mark)
		return ast.Attribute{}, false
	}
	s.skipSpace()
	if !s.char('=') {
		s.reset(mark)
		return ast.Attribute{}, false
	}
	s.skipSpace()
	value, ok := s.quoted()
	if !ok {
		s.reset(mark)
		return ast.Attribute{}, false
	}
	return ast.Attribute{Name: name, Value: value}, true
}

// quoted matches a double-quoted attribute value made of text runs, comments
// and procedural spans.
func (s *state) quoted() (ast.NodeList, bool) {
	open := s.pos
	if !s.char('"') {
		return nil, false
	}
	parts := ast.NodeList{}
	for !s.eof() && s.peek() != '"' {
		mark := s.pos
		if n, ok := s.commentInline(false); ok {
			parts = append(parts, n)
			continue
		}
		s.reset(mark)
		if n, ok := s.procSpan(); ok {
			parts = append(parts, n)
			continue
		}
		s.reset(mark)
		if v, ok := s.quotedText(); ok {
			parts = append(parts, ast.Text{Value: v})
			continue
		}
		s.reset(mark)
		break
	}
	if !s.char('"') {
		s.unterminated(open, open+1, `"`, `"`)
		return nil, false
	}
	return parts, true
}

// unclosed reports whether src, which starts with an opening name tag, holds
// fewer closing tags for name than opening ones.
func unclosed(src, name string) bool {
	opens := 0
	open := "<" + name
	for i := 0; ; {
		j := strings.Index(src[i:], open)
		if j < 0 {
			break
		}
		i += j + len(open)
		if i < len(src) && (src[i] == '>' || isSpace(src[i])) {
			opens++
		}
	}
	return strings.Count(src, "</"+name+">") < opens
}
