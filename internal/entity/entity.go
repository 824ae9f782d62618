// Package entity holds the fixed character tables used when scanning body
// text and quoted attribute values. The two tables are deliberately separate:
// a character may be literal in one context and escaped in the other.
package entity

// accents maps the supported accented letters to their named entities. The
// code points equal their ISO-8859-1 byte values, so a latin1 input decoded to
// UTF-8 hits the same table.
var accents = map[rune]string{
	'Ä': "&Auml;",
	'Ö': "&Ouml;",
	'Ü': "&Uuml;",
	'ß': "&szlig;",
	'ä': "&auml;",
	'è': "&egrave;",
	'é': "&eacute;",
	'ö': "&ouml;",
	'ü': "&uuml;",
}

// Accent returns the named entity for an accented letter.
func Accent(r rune) (string, bool) {
	s, ok := accents[r]
	return s, ok
}

const (
	textChars  = "~@$^.,:;_=+({}|?/-"
	attrChars  = "~!@#$%^.,:;_=+*()[]{}>'|?/ -"
	specialSet = "*`#[])!"
)

func isAlnum(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

func inSet(c byte, set string) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == c {
			return true
		}
	}
	return false
}

// IsTextChar reports whether c passes through body text unchanged.
func IsTextChar(c byte) bool {
	return isAlnum(c) || inSet(c, textChars)
}

// IsAttrChar reports whether c passes through a quoted attribute unchanged.
func IsAttrChar(c byte) bool {
	return isAlnum(c) || inSet(c, attrChars)
}

// IsSpecial reports whether c is a markup delimiter that becomes literal text
// when no construct claims it.
func IsSpecial(c byte) bool {
	return inSet(c, specialSet)
}

// Text maps a body-text character to its entity.
func Text(r rune) (string, bool) {
	switch r {
	case '&':
		return "&amp;", true
	case '"':
		return "&quot;", true
	case '\'':
		return "&apos;", true
	case '>':
		return "&gt;", true
	}
	return Accent(r)
}

// Attr maps a quoted-attribute character to its entity. Only '&' and the
// accented letters are rewritten inside attributes.
func Attr(r rune) (string, bool) {
	if r == '&' {
		return "&amp;", true
	}
	return Accent(r)
}

// Escape maps the character following a backslash in body text.
func Escape(c byte) (string, bool) {
	switch c {
	case '\\', '"', '&', '*', '#', '`', '[':
		return string(c), true
	case '<':
		return "&lt;", true
	}
	return "", false
}
