// Package readline - Terminal-Modul
//
// Dieses Modul enthaelt die Terminal-Strukturen und -Methoden fuer den
// Raw-Mode und die Signalbehandlung einer Sitzung.
//
// Hauptkomponenten:
// - Terminal: File-Descriptor mit gesicherten Termios und Signal-Abo
// - Read: blockierendes Lesen, das bei einem Signal abbricht
// - SetRawMode/UnsetRawMode: ICANON und ECHO aus- und wieder einschalten

package readline

import (
	"errors"
	"io"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Poll-Intervall in Millisekunden, danach wird auf Signale geprueft
const pollInterval = 100

// terminal ist die Sicht des Editors auf den Descriptor
type terminal interface {
	io.ReadWriter
	SetRawMode() error
	UnsetRawMode() error
	TrapSignals()
	ReleaseSignals()
	Raise() error
}

// Terminal verwaltet einen Descriptor waehrend einer Sitzung
type Terminal struct {
	fd      int
	rawmode bool
	termios *unix.Termios

	// sigCh hat genau einen Platz; das erste Signal wird in signal vermerkt
	// und erst nach der Wiederherstellung erneut ausgeloest
	sigCh  chan os.Signal
	signal os.Signal
}

// NewTerminal fuehrt keinen Systemaufruf aus
func NewTerminal(fd int) *Terminal {
	return &Terminal{fd: fd}
}

// Fd gibt den Descriptor zurueck
func (t *Terminal) Fd() int {
	return t.fd
}

// IsTerminal prueft, ob der Descriptor ein interaktives Terminal ist
func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(t.fd)
}

// SetRawMode sichert die Termios und schaltet kanonischen Modus und Echo ab.
// ISIG bleibt gesetzt, Ctrl-C erzeugt weiterhin SIGINT.
func (t *Terminal) SetRawMode() error {
	termios, err := unix.IoctlGetTermios(t.fd, ioctlReadTermios)
	if err != nil {
		return err
	}

	raw := *termios
	raw.Lflag &^= unix.ICANON | unix.ECHO
	if err := unix.IoctlSetTermios(t.fd, ioctlWriteTermios, &raw); err != nil {
		return err
	}

	t.termios = termios
	t.rawmode = true
	return nil
}

// UnsetRawMode stellt die gesicherten Termios wieder her
func (t *Terminal) UnsetRawMode() error {
	if !t.rawmode {
		return nil
	}

	t.rawmode = false
	return unix.IoctlSetTermios(t.fd, ioctlWriteTermios, t.termios)
}

// TrapSignals abonniert SIGHUP, SIGINT, SIGTERM und SIGQUIT
func (t *Terminal) TrapSignals() {
	t.signal = nil
	t.sigCh = make(chan os.Signal, 1)
	signal.Notify(t.sigCh, unix.SIGHUP, unix.SIGINT, unix.SIGTERM, unix.SIGQUIT)
}

// ReleaseSignals beendet das Abo; danach gelten wieder die alten Dispositionen
func (t *Terminal) ReleaseSignals() {
	if t.sigCh == nil {
		return
	}

	signal.Stop(t.sigCh)
	select {
	case sig := <-t.sigCh:
		if t.signal == nil {
			t.signal = sig
		}
	default:
	}
	t.sigCh = nil
}

// Signal gibt das vermerkte Signal zurueck
func (t *Terminal) Signal() os.Signal {
	return t.signal
}

// Raise loest ein vermerktes Signal erneut aus
func (t *Terminal) Raise() error {
	sig, ok := t.signal.(unix.Signal)
	if !ok {
		return nil
	}

	t.signal = nil
	return unix.Kill(unix.Getpid(), sig)
}

// Read blockiert bis Daten anliegen. Ein abonniertes Signal beendet das
// Warten mit errInterrupted; 0 Bytes bedeuten io.EOF.
func (t *Terminal) Read(p []byte) (int, error) {
	fds := []unix.PollFd{{Fd: int32(t.fd), Events: unix.POLLIN}}

	for {
		if t.signal != nil {
			return 0, errInterrupted
		}

		select {
		case sig := <-t.sigCh:
			t.signal = sig
			return 0, errInterrupted
		default:
		}

		n, err := unix.Poll(fds, pollInterval)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return 0, err
		}

		if n == 0 {
			continue
		}

		n, err = unix.Read(t.fd, p)
		if err != nil {
			if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
				continue
			}
			return 0, err
		}

		if n == 0 {
			return 0, io.EOF
		}

		return n, nil
	}
}

// Write schreibt p vollstaendig
func (t *Terminal) Write(p []byte) (int, error) {
	var written int
	for written < len(p) {
		n, err := unix.Write(t.fd, p[written:])
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return written, err
		}
		written += n
	}
	return written, nil
}
