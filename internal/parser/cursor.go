package parser

import "strings"

func (s *state) eof() bool { return s.pos >= len(s.src) }

// peek returns the byte at the cursor, or 0 at end of input.
func (s *state) peek() byte {
	if s.pos < len(s.src) {
		return s.src[s.pos]
	}
	return 0
}

func (s *state) peekAt(i int) byte {
	if s.pos+i < len(s.src) {
		return s.src[s.pos+i]
	}
	return 0
}

func (s *state) hasPrefix(lit string) bool {
	return strings.HasPrefix(s.src[s.pos:], lit)
}

// lit consumes lit when it is next.
func (s *state) lit(lit string) bool {
	if s.hasPrefix(lit) {
		s.pos += len(lit)
		return true
	}
	return false
}

func (s *state) char(c byte) bool {
	if s.peek() == c && !s.eof() {
		s.pos++
		return true
	}
	return false
}

// reset backtracks to mark, remembering how far the failed attempt got.
func (s *state) reset(mark int) {
	if s.pos > s.furthest {
		s.furthest = s.pos
	}
	s.pos = mark
}

// until consumes everything up to and including close and returns the text
// before it.
func (s *state) until(close string) (string, bool) {
	i := strings.Index(s.src[s.pos:], close)
	if i < 0 {
		return "", false
	}
	body := s.src[s.pos : s.pos+i]
	s.pos += i + len(close)
	return body, true
}

func containsFrom(src string, from int, sub string) bool {
	return strings.Contains(src[from:], sub)
}
