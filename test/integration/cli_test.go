package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/markup/internal/ast"
	"git.home.luguber.info/inful/markup/internal/foundation/errors"
	"git.home.luguber.info/inful/markup/internal/markup"
)

// TestCLI_CheckGoldenInputs runs 'check' over every golden input. Only the
// unterminated document is expected to fail.
func TestCLI_CheckGoldenInputs(t *testing.T) {
	inputs := goldenInputs(t)

	out, err := runCLI(t, "", append([]string{"check"}, inputs...)...)
	require.Error(t, err)
	assert.Equal(t, errors.CategoryUnterminated, errors.GetCategory(err))

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(inputs))
	for i, in := range inputs {
		if filepath.Base(in) == "unterminated.mu" {
			assert.True(t, strings.HasPrefix(lines[i], "FAIL "+in+":"), lines[i])
			continue
		}
		assert.True(t, strings.HasPrefix(lines[i], "ok   "+in+" ("), lines[i])
	}
}

// TestCLI_YAMLMatchesDriver checks that the YAML printed by 'parse' carries
// exactly the tree the driver builds.
func TestCLI_YAMLMatchesDriver(t *testing.T) {
	for _, in := range goldenInputs(t) {
		t.Run(filepath.Base(in), func(t *testing.T) {
			data, err := os.ReadFile(in)
			require.NoError(t, err)
			res := markup.Parse(string(data))

			out, runErr := runCLI(t, "", "parse", "--format", "yaml", in)
			if res.Complete {
				require.NoError(t, runErr)
			} else {
				require.Error(t, runErr)
			}

			var got struct {
				Name     string `yaml:"name"`
				Complete bool   `yaml:"complete"`
				Offset   int    `yaml:"offset"`
				Root     any    `yaml:"root"`
			}
			require.NoError(t, yaml.Unmarshal([]byte(out), &got))
			assert.Equal(t, in, got.Name)
			assert.Equal(t, res.Complete, got.Complete)
			assert.Equal(t, res.Offset, got.Offset)
			assert.Equal(t, normalize(t, ast.Tree(res.Root)), got.Root)
		})
	}
}

// TestCLI_StdinReport covers the default tree output on standard input.
func TestCLI_StdinReport(t *testing.T) {
	out, err := runCLI(t, "## Title\n", "parse")
	require.NoError(t, err)
	assert.Contains(t, out, "Parsing stdin succeeded.")
	assert.Contains(t, out, "<h2>")
}

// normalize passes v through YAML so both sides share decoded types.
func normalize(t *testing.T, v any) any {
	t.Helper()
	data, err := yaml.Marshal(v)
	require.NoError(t, err)
	var out any
	require.NoError(t, yaml.Unmarshal(data, &out))
	return out
}
