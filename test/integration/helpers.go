package integration

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/markup/cmd/markup/commands"
)

const goldenDir = "../testdata/golden"

// goldenInputs lists the .mu documents shared with the report golden tests.
func goldenInputs(t *testing.T) []string {
	t.Helper()
	inputs, err := filepath.Glob(filepath.Join(goldenDir, "*.mu"))
	require.NoError(t, err)
	require.NotEmpty(t, inputs, "no golden inputs in %s", goldenDir)
	return inputs
}

// runCLI executes the markup command line in-process and returns its stdout.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	g := &commands.Global{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Stdin:  strings.NewReader(stdin),
		Stdout: &out,
		Stderr: io.Discard,
	}

	cli := &commands.CLI{}
	k, err := kong.New(cli,
		kong.Name("markup"),
		kong.Vars{"version": "test"},
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
	)
	require.NoError(t, err)
	kctx, err := k.Parse(args)
	require.NoError(t, err)

	err = kctx.Run(g, cli)
	return out.String(), err
}
