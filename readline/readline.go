// Package readline liest eine editierbare Zeile von einem Terminal.
//
// Ablauf einer Sitzung: Raw-Mode setzen, Signale abonnieren, Keypad-Modus
// einschalten, Prompt ausgeben, Ereignisse verarbeiten bis Enter oder Ende
// der Eingabe, danach alles in umgekehrter Reihenfolge wiederherstellen.
// Ein waehrend der Sitzung empfangenes Signal wird erst nach der
// Wiederherstellung erneut ausgeloest.
package readline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/sys/unix"

	"github.com/ollama/termline/terminfo"
)

type Prompt struct {
	Prompt string
	Echo   Echo
	// Mask ist das Ersatzzeichen fuer EchoMasked, Standard '*'.
	// Zeichen mit einer Breite ungleich 1 werden durch '*' ersetzt.
	Mask rune
}

// mask liefert das Ersatzzeichen; nur einspaltige Zeichen sind erlaubt
func (p *Prompt) mask() rune {
	if p.Mask == 0 || runewidth.RuneWidth(p.Mask) != 1 {
		return '*'
	}
	return p.Mask
}

// Instance haelt Capabilities und Erkenner; beides wird nur gelesen
type Instance struct {
	Prompt *Prompt
	caps   *terminfo.Store
	keys   *Recognizer
}

// New laedt die Capabilities fuer $TERM
func New(prompt Prompt) (*Instance, error) {
	caps, err := terminfo.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return NewWithStore(prompt, caps), nil
}

// NewWithStore verwendet einen bereits geladenen Store
func NewWithStore(prompt Prompt, caps *terminfo.Store) *Instance {
	if caps.Status() == terminfo.Partial {
		slog.Debug("terminal capabilities incomplete", "term", caps.Name(), "missing", caps.Missing())
	}

	return &Instance{
		Prompt: &prompt,
		caps:   caps,
		keys:   NewRecognizer(caps),
	}
}

// Capabilities gibt den verwendeten Store zurueck
func (i *Instance) Capabilities() *terminfo.Store {
	return i.caps
}

// Readline fuehrt eine Sitzung auf fd aus
func (i *Instance) Readline(fd int) (string, error) {
	if fd < 0 {
		return "", ErrBadDescriptor
	}

	t := NewTerminal(fd)
	if !t.IsTerminal() {
		return readAll(fd)
	}

	return i.edit(t)
}

// EditLine liest eine Zeile von fd. Die Capabilities werden nur fuer
// interaktive Terminals geladen.
func EditLine(fd int, prompt Prompt) (string, error) {
	if fd < 0 {
		return "", ErrBadDescriptor
	}

	t := NewTerminal(fd)
	if !t.IsTerminal() {
		return readAll(fd)
	}

	i, err := New(prompt)
	if err != nil {
		return "", err
	}

	return i.edit(t)
}

// ReadLine liest eine Zeile mit sichtbarem Echo von stdin
func ReadLine(prompt string) (string, error) {
	return EditLine(int(os.Stdin.Fd()), Prompt{Prompt: prompt})
}

// ReadLineFd liest eine Zeile mit sichtbarem Echo von fd
func ReadLineFd(fd int, prompt string) (string, error) {
	return EditLine(fd, Prompt{Prompt: prompt})
}

func (i *Instance) edit(t terminal) (string, error) {
	if err := t.SetRawMode(); err != nil {
		return "", fmt.Errorf("%w: set raw mode: %w", ErrSystem, err)
	}
	t.TrapSignals()

	ch := NewChannel(t, i.caps, i.keys)
	buf := NewBuffer(ch, i.Prompt)
	defer buf.Clear()

	loopErr := i.run(ch, buf)

	// Wiederherstellung wird immer versucht, auch nach einem Fehler
	t.ReleaseSignals()
	restoreErr := t.UnsetRawMode()

	ch.WriteCapability(terminfo.KeypadLocal) //nolint:errcheck
	ch.WriteString("\n")                     //nolint:errcheck
	flushErr := ch.Flush()

	raiseErr := t.Raise()

	switch {
	case restoreErr != nil:
		return "", fmt.Errorf("%w: restore terminal: %w", ErrSystem, restoreErr)
	case errors.Is(loopErr, errInterrupted):
		return "", fmt.Errorf("%w: %w", ErrSystem, loopErr)
	case loopErr != nil:
		return "", loopErr
	case flushErr != nil:
		return "", flushErr
	case raiseErr != nil:
		return "", fmt.Errorf("%w: raise signal: %w", ErrSystem, raiseErr)
	case buf.IsEmpty():
		return "", ErrEmpty
	}

	return buf.String(), nil
}

// run gibt Keypad-Modus und Prompt aus und verarbeitet Ereignisse bis zum Ende
func (i *Instance) run(ch *Channel, buf *Buffer) error {
	ch.WriteCapability(terminfo.KeypadXmit) //nolint:errcheck
	ch.WriteString(i.Prompt.Prompt)         //nolint:errcheck
	if err := ch.Flush(); err != nil {
		return err
	}

	for {
		done, err := processEvent(buf, ch.ReadEvent())
		if flushErr := ch.Flush(); err == nil {
			err = flushErr
		}

		if done || err != nil {
			return err
		}
	}
}

// readAll liest einen nicht interaktiven Descriptor bis zum Ende
func readAll(fd int) (string, error) {
	data, err := io.ReadAll(fdReader(fd))
	if err != nil {
		return "", fmt.Errorf("%w: read: %w", ErrSystem, err)
	}

	line := string(data)
	if n := len(line); n > 0 && line[n-1] == CharEnter {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == CharCR {
			line = line[:n-1]
		}
	}

	if line == "" {
		return "", ErrEmpty
	}
	return line, nil
}

// fdReader liest direkt vom Descriptor, ohne ihn in ein *os.File zu wickeln
type fdReader int

func (r fdReader) Read(p []byte) (int, error) {
	for {
		n, err := unix.Read(int(r), p)
		switch {
		case errors.Is(err, unix.EINTR):
			continue
		case err != nil:
			return 0, err
		case n == 0 && len(p) > 0:
			return 0, io.EOF
		}
		return n, nil
	}
}
