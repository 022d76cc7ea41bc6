package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ollama/termline/readline"
	"github.com/ollama/termline/terminfo"
)

type readWriter struct {
	io.Reader
	io.Writer
}

func TestNewCLI(t *testing.T) {
	root := NewCLI()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"read", "keys", "caps"}, names)

	read, _, err := root.Find([]string{"read"})
	require.NoError(t, err)
	usage := read.UsageString()
	assert.Contains(t, usage, "Environment Variables:")
	assert.Contains(t, usage, "TERMLINE_MASK")
	assert.Contains(t, usage, "TERMINFO_DIRS")
}

func TestCapsCommand(t *testing.T) {
	t.Setenv("TERMLINE_NOFASTLOAD", "")

	root := NewCLI()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"caps", "xterm"})
	require.NoError(t, root.Execute())

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "xterm (built-in, complete)\n"), got)
	assert.Contains(t, got, "kcub1")
	assert.Contains(t, got, `\EOD`)
	assert.Contains(t, got, "smkx")
}

func TestCapsCommandUnknownTerm(t *testing.T) {
	t.Setenv("TERMINFO", "")
	t.Setenv("TERMINFO_DIRS", "")
	t.Setenv("HOME", t.TempDir())

	root := NewCLI()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"caps", "no-such-terminal-xyz"})
	assert.ErrorIs(t, root.Execute(), terminfo.ErrNotFound)
}

func TestParseEcho(t *testing.T) {
	for s, want := range map[string]readline.Echo{
		"visible": readline.EchoVisible,
		"hidden":  readline.EchoHidden,
		"masked":  readline.EchoMasked,
	} {
		got, err := parseEcho(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := parseEcho("loud")
	assert.Error(t, err)
}

func TestParseMask(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{"", 0, false},
		{"#", '#', false},
		{"é", 'é', false},
		{"ab", 0, true},
		{"＊", 0, true},
		{"日", 0, true},
		{"\xff", 0, true},
	}

	for _, tt := range tests {
		got, err := parseMask(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestPrintEvents(t *testing.T) {
	t.Setenv("TERMLINE_NOFASTLOAD", "")
	caps, err := terminfo.LoadTerm("xterm")
	require.NoError(t, err)

	ch := readline.NewChannel(readWriter{strings.NewReader("a\x1bOD\x01é\ndropped"), io.Discard}, caps, readline.NewRecognizer(caps))

	var out bytes.Buffer
	require.NoError(t, printEvents(&out, ch))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{
		"press keys, enter or ctrl-d to stop",
		"ascii    'a'",
		"escape   kcub1",
		`special  "^A"`,
		`special  "é"`,
		`ascii    '\n'`,
	}, lines)
}

func TestCapsCommandFromTerm(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("TERMLINE_NOFASTLOAD", "")

	root := NewCLI()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"caps"})
	require.NoError(t, root.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "xterm-256color (built-in, complete)\n"), out.String())

	t.Setenv("TERM", "")
	root = NewCLI()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"caps"})
	err := root.Execute()
	assert.ErrorIs(t, err, readline.ErrConfiguration)
	assert.ErrorIs(t, err, terminfo.ErrNotConfigured)
}
