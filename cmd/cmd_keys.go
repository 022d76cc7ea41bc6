// cmd_keys.go - Keys Command
// Hauptfunktionen: KeysHandler, describeEvent
package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ollama/termline/readline"
	"github.com/ollama/termline/terminfo"
)

// KeysHandler - Zeigt jedes erkannte Eingabe-Ereignis an, bis Enter oder EOT
func KeysHandler(cmd *cobra.Command, args []string) error {
	in, closeInput, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer closeInput()

	t := readline.NewTerminal(int(in.Fd()))
	if !t.IsTerminal() {
		return errors.New("keys needs an interactive terminal")
	}

	caps, err := terminfo.Load()
	if err != nil {
		return err
	}

	if err := t.SetRawMode(); err != nil {
		return err
	}
	t.TrapSignals()

	ch := readline.NewChannel(t, caps, readline.NewRecognizer(caps))
	ch.WriteCapability(terminfo.KeypadXmit) //nolint:errcheck
	err = ch.Flush()
	if err == nil {
		err = printEvents(cmd.OutOrStdout(), ch)
	}
	ch.WriteCapability(terminfo.KeypadLocal) //nolint:errcheck
	ch.Flush()                               //nolint:errcheck

	t.ReleaseSignals()
	if restoreErr := t.UnsetRawMode(); restoreErr != nil {
		return restoreErr
	}
	if raiseErr := t.Raise(); raiseErr != nil {
		return raiseErr
	}

	return err
}

// printEvents - Liest Ereignisse aus ch bis Enter oder Ende der Eingabe
func printEvents(w io.Writer, ch *readline.Channel) error {
	fmt.Fprintln(w, "press keys, enter or ctrl-d to stop")
	for {
		ev := ch.ReadEvent()
		fmt.Fprintln(w, describeEvent(ev))

		switch {
		case ev.Kind == readline.EventStop:
			return ev.Err
		case ev.Kind == readline.EventASCII && (ev.Char == readline.CharEnter || ev.Char == readline.CharCR):
			return nil
		}
	}
}

// describeEvent - Einzeilige Beschreibung eines Ereignisses
func describeEvent(ev readline.Event) string {
	switch ev.Kind {
	case readline.EventASCII:
		return fmt.Sprintf("%-8s %s", ev.Kind, strconv.QuoteRune(rune(ev.Char)))
	case readline.EventEscape:
		return fmt.Sprintf("%-8s %s", ev.Kind, ev.Key)
	case readline.EventSpecial:
		return fmt.Sprintf("%-8s %q", ev.Kind, ev.Literal)
	default:
		if ev.Err != nil {
			return fmt.Sprintf("%-8s %v", ev.Kind, ev.Err)
		}
		return ev.Kind.String()
	}
}
