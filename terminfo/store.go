// store.go - Capability-Tabelle
//
// Ein Store wird einmal geladen und danach nur gelesen. Er kann ohne
// Synchronisation zwischen mehreren Editor-Sitzungen geteilt werden.
package terminfo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotConfigured - TERM ist nicht gesetzt
	ErrNotConfigured = errors.New("terminfo: TERM not set")
	// ErrNotFound - keine Datenbank-Datei fuer den Terminal-Typ gefunden
	ErrNotFound = errors.New("terminfo: terminal description not found")
	// ErrInvalidFormat - Datei ist keine gueltige kompilierte Terminfo-Datei
	ErrInvalidFormat = errors.New("terminfo: invalid file format")
)

// Status beschreibt, ob alle benoetigten Capabilities vorhanden sind
type Status int

const (
	Complete Status = iota
	// Partial - mindestens eine Capability fehlt; der Editor degradiert
	Partial
)

func (s Status) String() string {
	switch s {
	case Complete:
		return "complete"
	case Partial:
		return "partial"
	default:
		return "unknown"
	}
}

// Store haelt die aufgeloesten Sequenzen eines Terminal-Typs
type Store struct {
	name    string
	path    string
	inputs  [inputCount][]byte
	outputs [outputCount][]byte
}

// Name gibt den Terminal-Typ zurueck
func (s *Store) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Path gibt die geladene Datei zurueck, leer fuer eingebaute Tabellen
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Input gibt die Sequenz einer Taste zurueck
func (s *Store) Input(id Input) ([]byte, bool) {
	if s == nil || !id.valid() || s.inputs[id] == nil {
		return nil, false
	}
	return s.inputs[id], true
}

// Output gibt die Sequenz einer Terminal-Aktion zurueck
func (s *Store) Output(id Output) ([]byte, bool) {
	if s == nil || !id.valid() || s.outputs[id] == nil {
		return nil, false
	}
	return s.outputs[id], true
}

// Status meldet Partial, sobald eine Capability fehlt
func (s *Store) Status() Status {
	if s == nil {
		return Partial
	}
	for _, seq := range s.inputs {
		if seq == nil {
			return Partial
		}
	}
	for _, seq := range s.outputs {
		if seq == nil {
			return Partial
		}
	}
	return Complete
}

// Missing listet die Kurznamen aller fehlenden Capabilities
func (s *Store) Missing() []string {
	var missing []string
	if s == nil {
		s = &Store{}
	}
	for id, seq := range s.inputs {
		if seq == nil {
			missing = append(missing, Input(id).String())
		}
	}
	for id, seq := range s.outputs {
		if seq == nil {
			missing = append(missing, Output(id).String())
		}
	}
	return missing
}

func (s *Store) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "terminfo %q (%s)", s.name, s.Status())
	for id, seq := range s.inputs {
		fmt.Fprintf(&sb, " %s=%s", Input(id), Printable(seq))
	}
	for id, seq := range s.outputs {
		fmt.Fprintf(&sb, " %s=%s", Output(id), Printable(seq))
	}
	return sb.String()
}

// Printable stellt eine Sequenz in Terminfo-Notation dar (\E, ^X)
func Printable(seq []byte) string {
	if seq == nil {
		return "-"
	}

	var sb strings.Builder
	for _, c := range seq {
		switch {
		case c == 0x1b:
			sb.WriteString(`\E`)
		case c == 0x7f:
			sb.WriteString("^?")
		case c < 0x20:
			sb.WriteByte('^')
			sb.WriteByte(c + '@')
		case c == '^' || c == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
