package parser

import (
	"strings"
	"unicode/utf8"

	"git.home.luguber.info/inful/markup/internal/entity"
)

func isBlank(c byte) bool { return c == ' ' || c == '\t' }

// isSpace matches the whitespace skipped between procedural tokens.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentStart(c byte) bool { return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isIdentChar(c byte) bool { return c == '_' || isAlnum(c) }

func (s *state) skipBlanks() bool {
	start := s.pos
	for !s.eof() && isBlank(s.peek()) {
		s.pos++
	}
	return s.pos > start
}

func (s *state) skipSpace() {
	for !s.eof() && isSpace(s.peek()) {
		s.pos++
	}
}

func (s *state) atEOL() bool {
	c := s.peek()
	return !s.eof() && (c == '\n' || c == '\r')
}

// eol consumes one line ending: "\r\n", "\n" or "\r".
func (s *state) eol() bool {
	switch {
	case s.lit("\r\n"):
		return true
	case s.char('\n'), s.char('\r'):
		return true
	}
	return false
}

func (s *state) skipEOLs() {
	for s.eol() {
	}
}

// blankLine consumes optional blanks followed by a line ending.
func (s *state) blankLine() bool {
	mark := s.pos
	s.skipBlanks()
	if s.eol() {
		return true
	}
	s.pos = mark
	return false
}

func (s *state) isBlankLine() bool {
	mark := s.pos
	ok := s.blankLine()
	s.pos = mark
	return ok
}

func (s *state) skipBlankLines() {
	for s.blankLine() {
	}
}

// indent consumes one indentation unit: a tab or two spaces.
func (s *state) indent() bool {
	return s.char('\t') || s.lit("  ")
}

func (s *state) bullet() bool {
	mark := s.pos
	switch s.peek() {
	case '+', '*', '-':
		s.pos++
		if s.skipBlanks() {
			return true
		}
	}
	s.pos = mark
	return false
}

func (s *state) enumet() bool {
	mark := s.pos
	digits := 0
	for isDigit(s.peek()) && !s.eof() {
		s.pos++
		digits++
	}
	if digits > 0 && s.char('.') && s.skipBlanks() {
		return true
	}
	s.pos = mark
	return false
}

func (s *state) marker() bool { return s.bullet() || s.enumet() }

// identifier matches [A-Za-z_][A-Za-z0-9_]*.
func (s *state) identifier() (string, bool) {
	if s.eof() || !isIdentStart(s.peek()) {
		return "", false
	}
	start := s.pos
	s.pos++
	for !s.eof() && isIdentChar(s.peek()) {
		s.pos++
	}
	return s.src[start:s.pos], true
}

// keyword matches kw when no identifier character follows it.
func (s *state) keyword(kw string) bool {
	if !s.hasPrefix(kw) {
		return false
	}
	if next := s.pos + len(kw); next < len(s.src) && isIdentChar(s.src[next]) {
		return false
	}
	s.pos += len(kw)
	return true
}

// token skips whitespace and then consumes lit.
func (s *state) token(lit string) bool {
	mark := s.pos
	s.skipSpace()
	if s.lit(lit) {
		return true
	}
	s.pos = mark
	return false
}

// kw skips whitespace and then consumes a keyword.
func (s *state) kw(word string) bool {
	mark := s.pos
	s.skipSpace()
	if s.keyword(word) {
		return true
	}
	s.pos = mark
	return false
}

// foldNewline consumes a line ending plus following blanks when the next line
// has content, so a single newline inside a paragraph reads as a space.
func (s *state) foldNewline() bool {
	mark := s.pos
	if !s.eol() {
		return false
	}
	s.skipBlanks()
	if s.eof() || s.atEOL() {
		s.pos = mark
		return false
	}
	return true
}

// text scans a run of plain body text. In line mode newlines end the run.
func (s *state) text(line bool) (string, bool) {
	var sb strings.Builder
	start := s.pos
	for !s.eof() {
		c := s.peek()
		switch {
		case entity.IsTextChar(c):
			sb.WriteByte(c)
			s.pos++
		case isBlank(c):
			s.skipBlanks()
			if !line {
				s.foldNewline()
			}
			sb.WriteByte(' ')
		case c == '\n' || c == '\r':
			if line || !s.foldNewline() {
				return sb.String(), s.pos > start
			}
			sb.WriteByte(' ')
		default:
			r, size := utf8.DecodeRuneInString(s.src[s.pos:])
			ent, ok := entity.Text(r)
			if !ok || r == utf8.RuneError {
				return sb.String(), s.pos > start
			}
			sb.WriteString(ent)
			s.pos += size
		}
	}
	return sb.String(), s.pos > start
}

// special matches one delimiter character or backslash escape as literal text.
func (s *state) special() (string, bool) {
	c := s.peek()
	switch {
	case s.eof():
		return "", false
	case entity.IsSpecial(c):
		s.pos++
		return string(c), true
	case c == '\\':
		if out, ok := entity.Escape(s.peekAt(1)); ok && s.pos+1 < len(s.src) {
			s.pos += 2
			return out, true
		}
	case c == '%' && s.peekAt(1) != '%':
		s.pos++
		return "%", true
	}
	return "", false
}

// quotedText scans a run of attribute value text.
func (s *state) quotedText() (string, bool) {
	var sb strings.Builder
	start := s.pos
	for !s.eof() {
		c := s.peek()
		switch {
		case entity.IsAttrChar(c):
			sb.WriteByte(c)
			s.pos++
		case c == '<' && s.peekAt(1) != '%':
			sb.WriteByte('<')
			s.pos++
		case c == '\\' && s.peekAt(1) == '"':
			sb.WriteByte('"')
			s.pos += 2
		default:
			r, size := utf8.DecodeRuneInString(s.src[s.pos:])
			ent, ok := entity.Attr(r)
			if !ok || r == utf8.RuneError {
				return sb.String(), s.pos > start
			}
			sb.WriteString(ent)
			s.pos += size
		}
	}
	return sb.String(), s.pos > start
}
