package parser

import (
	"git.home.luguber.info/inful/markup/internal/ast"
)

// inline matches one inline construct. In line mode no construct crosses a
// line ending on its own; headers and list lines use it.
func (s *state) inline(line bool) (ast.Node, bool) {
	key := memoKey{pos: s.pos, line: line}
	if e, ok := s.memo[key]; ok {
		if e.ok {
			s.pos = e.end
		}
		return e.node, e.ok
	}
	start := s.pos
	n, ok := s.inlineChoice(line)
	if !ok {
		s.reset(start)
	}
	s.memo[key] = memoEntry{node: n, end: s.pos, ok: ok}
	return n, ok
}

func (s *state) inlineChoice(line bool) (ast.Node, bool) {
	if s.eof() || !s.enter() {
		return nil, false
	}
	defer s.leave()

	alternatives := [...]func(bool) (ast.Node, bool){
		s.commentInline,
		s.verbatimInline,
		s.filterInline,
		s.procInline,
		s.codeSpan,
		s.strongSpan,
		s.emphSpan,
		s.selfLink,
		s.download,
		s.image,
		s.link,
		s.htmlInline,
		s.plainText,
		s.specialText,
	}
	for _, alt := range alternatives {
		mark := s.pos
		if n, ok := alt(line); ok {
			return n, true
		}
		s.reset(mark)
		if s.err != nil {
			return nil, false
		}
	}
	return nil, false
}

// inlines matches one or more inline constructs, stopping before stop when
// stop is non-empty.
func (s *state) inlines(line bool, stop string) (ast.NodeList, bool) {
	out := ast.NodeList{}
	for !s.eof() {
		if stop != "" && s.hasPrefix(stop) {
			break
		}
		n, ok := s.inline(line)
		if !ok {
			break
		}
		out = append(out, n)
	}
	return out, len(out) > 0
}

func (s *state) commentInline(bool) (ast.Node, bool) {
	start := s.pos
	if !s.lit("<%#") {
		return nil, false
	}
	body, ok := s.until("%>")
	if !ok {
		s.unterminated(start, s.pos, "<%#", "%>")
		return nil, false
	}
	return ast.Comment{Body: body}, true
}

func (s *state) verbatimInline(bool) (ast.Node, bool) {
	start := s.pos
	if !s.lit("<%$") {
		return nil, false
	}
	body, ok := s.until("%>")
	if !ok {
		s.unterminated(start, s.pos, "<%$", "%>")
		return nil, false
	}
	return ast.Text{Value: body}, true
}

func (s *state) procInline(bool) (ast.Node, bool) {
	return s.procSpan()
}

// span matches delim, one or more inlines not starting with delim, and delim.
func (s *state) span(line bool, delim, tag string) (ast.Node, bool) {
	if !s.lit(delim) {
		return nil, false
	}
	content, ok := s.inlines(line, delim)
	if !ok || !s.lit(delim) {
		return nil, false
	}
	return ast.TaggedNode{Tag: tag, Subtree: content}, true
}

func (s *state) codeSpan(line bool) (ast.Node, bool)   { return s.span(line, "`", "code") }
func (s *state) strongSpan(line bool) (ast.Node, bool) { return s.span(line, "**", "b") }
func (s *state) emphSpan(line bool) (ast.Node, bool)   { return s.span(line, "*", "i") }

// selfLink matches <http...> and builds an anchor pointing at itself.
func (s *state) selfLink(bool) (ast.Node, bool) {
	if !s.hasPrefix("<http") {
		return nil, false
	}
	s.pos++
	start := s.pos
	for !s.eof() && s.peek() != '>' {
		s.pos++
	}
	if !s.char('>') {
		return nil, false
	}
	url := s.src[start : s.pos-1]
	if len(url) == len("http") {
		return nil, false
	}
	return ast.HTMLNode{
		Tag:     "a",
		Attrs:   ast.Attributes{{Name: "href", Value: ast.Text{Value: url}}},
		Subtree: ast.NodeList{ast.Text{Value: url}},
	}, true
}

// download matches [[ref]].
func (s *state) download(bool) (ast.Node, bool) {
	if !s.lit("[[") {
		return nil, false
	}
	start := s.pos
	for !s.eof() && s.peek() != ']' {
		s.pos++
	}
	ref := s.src[start:s.pos]
	if ref == "" || !s.lit("]]") {
		return nil, false
	}
	return ast.HTMLSelfNode{
		Tag:   "markdown-download",
		Attrs: ast.Attributes{{Name: "href", Value: ast.Text{Value: ref}}},
	}, true
}

// linkParts matches "text](ref)" after the opening bracket.
func (s *state) linkParts(line bool) (text, ref ast.NodeList, ok bool) {
	if text, ok = s.inlines(line, "]"); !ok || !s.lit("](") {
		return nil, nil, false
	}
	if ref, ok = s.inlines(line, ")"); !ok || !s.char(')') {
		return nil, nil, false
	}
	return text, ref, true
}

func (s *state) image(line bool) (ast.Node, bool) {
	if !s.lit("![") {
		return nil, false
	}
	alt, src, ok := s.linkParts(line)
	if !ok {
		return nil, false
	}
	return ast.HTMLSelfNode{
		Tag:   "markdown-img",
		Attrs: ast.Attributes{{Name: "alt", Value: alt}, {Name: "src", Value: src}},
	}, true
}

func (s *state) link(line bool) (ast.Node, bool) {
	if !s.char('[') {
		return nil, false
	}
	text, ref, ok := s.linkParts(line)
	if !ok {
		return nil, false
	}
	return ast.HTMLNode{
		Tag:     "markdown-a",
		Attrs:   ast.Attributes{{Name: "href", Value: ref}},
		Subtree: text,
	}, true
}

func (s *state) htmlInline(bool) (ast.Node, bool) {
	return s.htmlPhrase()
}

func (s *state) plainText(line bool) (ast.Node, bool) {
	v, ok := s.text(line)
	if !ok {
		return nil, false
	}
	return ast.Text{Value: v}, true
}

func (s *state) specialText(bool) (ast.Node, bool) {
	v, ok := s.special()
	if !ok {
		return nil, false
	}
	return ast.Text{Value: v}, true
}
