package readline

import (
	"errors"
)

var (
	// ErrEmpty - Sitzung endete ohne ein einziges Zeichen
	ErrEmpty = errors.New("readline: empty input")
	// ErrBadDescriptor - ungueltiger File-Descriptor (< 0)
	ErrBadDescriptor = errors.New("readline: bad file descriptor")
	// ErrSystem - Terminal-, Signal-, Read- oder Write-Systemaufruf fehlgeschlagen
	ErrSystem = errors.New("readline: system call failed")
	// ErrConfiguration - TERM fehlt oder die Terminfo-Datenbank ist unlesbar
	ErrConfiguration = errors.New("readline: terminal not configured")

	errInterrupted = errors.New("readline: interrupted by signal")
)
