// Package source loads parser input from files or standard input and decodes
// it to UTF-8.
package source

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"git.home.luguber.info/inful/markup/internal/config"
	"git.home.luguber.info/inful/markup/internal/foundation/errors"
)

// StdinName is the display name used for standard input.
const StdinName = "stdin"

// Input is one decoded source buffer.
type Input struct {
	Name string
	Text string
	// Size is the raw byte length before decoding.
	Size int
	// Encoding is the encoding Text was decoded from.
	Encoding config.Encoding
}

// RawOffset maps a byte offset in Text back to the matching offset in the
// raw input. Latin-1 stores one byte per rune.
func (in Input) RawOffset(off int) int {
	if in.Encoding != config.EncodingLatin1 {
		return off
	}
	off = max(0, min(off, len(in.Text)))
	return utf8.RuneCountInString(in.Text[:off])
}

// Read loads path, or standard input when path is "" or "-".
func Read(path string, enc config.Encoding) (Input, error) {
	if path == "" || path == "-" {
		return ReadFrom(os.Stdin, StdinName, enc)
	}
	f, err := os.Open(path)
	if err != nil {
		return Input{}, errors.WrapError(err, errors.CategoryFileSystem, "failed to open input").
			WithContext(errors.ContextPath, path).
			Build()
	}
	defer func() { _ = f.Close() }()
	return ReadFrom(f, path, enc)
}

// ReadFrom loads and decodes everything r yields.
func ReadFrom(r io.Reader, name string, enc config.Encoding) (Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Input{}, errors.WrapError(err, errors.CategoryFileSystem, "failed to read input").
			WithContext(errors.ContextPath, name).
			Build()
	}
	text, err := Decode(data, enc)
	if err != nil {
		if ce, ok := errors.AsClassified(err); ok {
			err = ce.WithContext(errors.ContextPath, name)
		}
		return Input{}, err
	}
	return Input{Name: name, Text: text, Size: len(data), Encoding: enc}, nil
}

// Decode converts data to UTF-8. UTF-8 input must be valid; the error names
// the offset of the first bad byte. Latin-1 input always decodes.
func Decode(data []byte, enc config.Encoding) (string, error) {
	switch enc {
	case config.EncodingLatin1:
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return "", errors.WrapError(err, errors.CategoryValidation, "failed to decode latin1 input").Build()
		}
		return string(out), nil
	case config.EncodingUTF8, "":
		if off := invalidUTF8(data); off >= 0 {
			return "", errors.ValidationError(fmt.Sprintf("invalid UTF-8 at byte %d (try --encoding latin1)", off)).
				AtOffset(off).
				Build()
		}
		return string(data), nil
	default:
		return "", errors.ConfigError(fmt.Sprintf("unsupported input encoding: %s", enc)).Build()
	}
}

// invalidUTF8 returns the offset of the first invalid sequence, or -1.
func invalidUTF8(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
