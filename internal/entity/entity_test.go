package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		in   rune
		want string
		ok   bool
	}{
		{'&', "&amp;", true},
		{'"', "&quot;", true},
		{'\'', "&apos;", true},
		{'>', "&gt;", true},
		{'Ä', "&Auml;", true},
		{'ß', "&szlig;", true},
		{'è', "&egrave;", true},
		{'ü', "&uuml;", true},
		{'<', "", false},
		{'a', "", false},
		{'ñ', "", false},
	}
	for _, tt := range tests {
		got, ok := Text(tt.in)
		assert.Equal(t, tt.ok, ok, "rune %q", tt.in)
		assert.Equal(t, tt.want, got, "rune %q", tt.in)
	}
}

func TestAttrTableIsNarrower(t *testing.T) {
	got, ok := Attr('&')
	assert.True(t, ok)
	assert.Equal(t, "&amp;", got)

	got, ok = Attr('é')
	assert.True(t, ok)
	assert.Equal(t, "&eacute;", got)

	for _, r := range []rune{'"', '\'', '>'} {
		_, ok := Attr(r)
		assert.False(t, ok, "attribute table must not rewrite %q", r)
	}
}

func TestEscape(t *testing.T) {
	for _, c := range []byte{'\\', '"', '&', '*', '#', '`', '['} {
		got, ok := Escape(c)
		assert.True(t, ok)
		assert.Equal(t, string(c), got)
	}
	got, ok := Escape('<')
	assert.True(t, ok)
	assert.Equal(t, "&lt;", got)

	_, ok = Escape('n')
	assert.False(t, ok)
}

func TestCharacterClasses(t *testing.T) {
	for _, c := range []byte("Az09~@$^.,:;_=+({}|?/-") {
		assert.True(t, IsTextChar(c), "%q", c)
	}
	for _, c := range []byte("*`#[])!<>&\"' \t\n%") {
		assert.False(t, IsTextChar(c), "%q", c)
	}
	for _, c := range []byte("*`#[])!") {
		assert.True(t, IsSpecial(c), "%q", c)
	}
	for _, c := range []byte("Az09~!@#$%^.,:;_=+*()[]{}>'|?/ -") {
		assert.True(t, IsAttrChar(c), "%q", c)
	}
	for _, c := range []byte("<&\"\\\n") {
		assert.False(t, IsAttrChar(c), "%q", c)
	}
}
