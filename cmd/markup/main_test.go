package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/markup/cmd/markup/commands"
)

func TestNewParserRoutesCommands(t *testing.T) {
	tests := []struct {
		args    []string
		command string
	}{
		{[]string{"parse"}, "parse"},
		{[]string{"parse", "--format", "yaml", "doc.mu"}, "parse"},
		{[]string{"check", "a.mu", "b.mu"}, "check"},
		{[]string{"watch", "--debounce", "50ms", "doc.mu"}, "watch"},
		{[]string{"-c", "markup.yaml", "init", "--force"}, "init"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			cli := &commands.CLI{}
			parser, err := newParser(cli, kong.Exit(func(int) { t.Fatal("unexpected exit") }))
			require.NoError(t, err)
			kctx, err := parser.Parse(tt.args)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(kctx.Command(), tt.command), kctx.Command())
		})
	}
}

func TestNewParserVersionFlag(t *testing.T) {
	var out bytes.Buffer
	exited := false
	cli := &commands.CLI{}
	parser, err := newParser(cli, kong.Writers(&out, &out), kong.Exit(func(int) { exited = true }))
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--version"})
	assert.True(t, exited)
	assert.Contains(t, out.String(), "markup ")
}
