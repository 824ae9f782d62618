package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/markup/internal/foundation/errors"
)

type outputFormat string

const (
	formatTree outputFormat = "tree"
	formatYAML outputFormat = "yaml"
)

func formats() *EnumNormalizer[outputFormat] {
	return NewEnumNormalizer("output.format", map[string]outputFormat{
		"tree": formatTree,
		"yaml": formatYAML,
		"yml":  formatYAML,
	}, formatTree)
}

func TestNormalize(t *testing.T) {
	enum := formats()

	tests := []struct {
		name     string
		input    string
		expected outputFormat
	}{
		{"exact match", "yaml", formatYAML},
		{"alias", "yml", formatYAML},
		{"case insensitive", "TREE", formatTree},
		{"with spaces", "  yaml  ", formatYAML},
		{"unknown falls back", "json", formatTree},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, enum.Normalize(tt.input))
		})
	}
}

func TestNormalizeWithValidation(t *testing.T) {
	enum := formats()

	value, err := enum.NormalizeWithValidation(" Tree ")
	require.NoError(t, err)
	assert.Equal(t, formatTree, value)

	value, err = enum.NormalizeWithValidation("   ")
	require.NoError(t, err)
	assert.Equal(t, formatTree, value, "empty input selects the fallback")

	_, err = enum.NormalizeWithValidation("xml")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
	assert.Contains(t, err.Error(), `invalid output.format "xml", valid options: tree, yaml, yml`)

	assert.Equal(t, []string{"tree", "yaml", "yml"}, enum.ValidValues())
	assert.Equal(t, "output.format", enum.Field())
}

func TestCanonicalize(t *testing.T) {
	enum := formats()

	tests := []struct {
		raw     string
		value   outputFormat
		warning string
	}{
		{"yaml", formatYAML, ""},
		{"", formatTree, ""},
		{"yml", formatYAML, "normalized output.format from 'yml' to 'yaml'"},
		{"  TREE ", formatTree, "normalized output.format from '  TREE ' to 'tree'"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			value, warning, err := enum.Canonicalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.value, value)
			assert.Equal(t, tt.warning, warning)
		})
	}

	_, _, err := enum.Canonicalize("json")
	require.Error(t, err)
}
