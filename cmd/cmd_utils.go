// cmd_utils.go - Gemeinsame Hilfsfunktionen
// Hauptfunktionen: openInput, parseEcho, parseMask
package cmd

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/ollama/termline/readline"
)

const (
	defaultPrompt = "> "
	ttyPath       = "/dev/tty"
)

// openInput - Gibt stdin oder das steuernde Terminal zurueck
func openInput(cmd *cobra.Command) (*os.File, func(), error) {
	useTTY, err := cmd.Flags().GetBool("tty")
	if err != nil {
		return nil, nil, err
	}

	if !useTTY {
		return os.Stdin, func() {}, nil
	}

	f, err := os.OpenFile(ttyPath, os.O_RDWR, 0)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// parseEcho - Wandelt den Flag-Wert in einen Echo-Modus
func parseEcho(s string) (readline.Echo, error) {
	for _, echo := range []readline.Echo{readline.EchoVisible, readline.EchoHidden, readline.EchoMasked} {
		if s == echo.String() {
			return echo, nil
		}
	}
	return 0, fmt.Errorf("invalid echo mode %q (visible, hidden, masked)", s)
}

// parseMask - Genau ein einspaltiges Zeichen oder leer fuer den Default
func parseMask(s string) (rune, error) {
	if s == "" {
		return 0, nil
	}

	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("mask must be a single character, got %q", s)
	}
	if runewidth.RuneWidth(r) != 1 {
		return 0, fmt.Errorf("mask must be one column wide, got %q", s)
	}
	return r, nil
}
