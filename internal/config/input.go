package config

import "git.home.luguber.info/inful/markup/internal/foundation/normalization"

// Encoding names the byte encoding of input files.
type Encoding string

const (
	EncodingUTF8   Encoding = "utf-8"
	EncodingLatin1 Encoding = "latin1"
)

var encodingNormalizer = normalization.NewEnumNormalizer("input.encoding", map[string]Encoding{
	"utf-8":      EncodingUTF8,
	"utf8":       EncodingUTF8,
	"latin1":     EncodingLatin1,
	"latin-1":    EncodingLatin1,
	"iso-8859-1": EncodingLatin1,
}, EncodingUTF8)

// ParseEncoding validates a raw encoding name, e.g. from a CLI flag.
func ParseEncoding(raw string) (Encoding, error) {
	return encodingNormalizer.NormalizeWithValidation(raw)
}

// OutputFormat selects the tree rendering.
type OutputFormat string

const (
	OutputFormatTree OutputFormat = "tree"
	OutputFormatYAML OutputFormat = "yaml"
)

var outputFormatNormalizer = normalization.NewEnumNormalizer("output.format", map[string]OutputFormat{
	"tree": OutputFormatTree,
	"yaml": OutputFormatYAML,
	"yml":  OutputFormatYAML,
}, OutputFormatTree)

// ParseOutputFormat validates a raw output format name.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	return outputFormatNormalizer.NormalizeWithValidation(raw)
}
