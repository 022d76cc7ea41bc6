// Package readline - Gepufferter Kanal
//
// Der Kanal sitzt zwischen File-Descriptor und Editor. Gelesen wird ueber
// einen bufio.Reader: Bytes einer laufenden Escape-Suche werden nur gepeekt
// (pending) und erst bei einem Treffer verworfen (consumed). Scheitert die
// Suche, wird genau ein Byte uebernommen, der Rest wird erneut gelesen.
// Geschrieben wird in einen festen Puffer, der vor einem Ueberlauf geleert wird.

package readline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/ollama/termline/logutil"
	"github.com/ollama/termline/terminfo"
)

// EventKind unterscheidet die Eingabe-Ereignisse
type EventKind int

const (
	// EventASCII - ein einzelnes druckbares Zeichen, Newline, CR oder Tab
	EventASCII EventKind = iota
	// EventEscape - eine erkannte Tastensequenz
	EventEscape
	// EventSpecial - ein Literal aus mehreren Bytes (Steuerzeichen in
	// ^X-Schreibweise oder ein vollstaendiges UTF-8-Zeichen)
	EventSpecial
	// EventStop - Ende der Eingabe, Fehler oder Signal
	EventStop
)

func (k EventKind) String() string {
	switch k {
	case EventASCII:
		return "ascii"
	case EventEscape:
		return "escape"
	case EventSpecial:
		return "special"
	case EventStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Event ist ein klassifiziertes Eingabe-Ereignis
type Event struct {
	Kind    EventKind
	Char    byte
	Key     terminfo.Input
	Literal []byte
	// Err ist bei EventStop gesetzt, ausser bei regulaerem Ende der Eingabe
	Err error
}

// Channel besitzt den Descriptor fuer eine Sitzung
type Channel struct {
	r       *bufio.Reader
	w       *bufio.Writer
	caps    *terminfo.Store
	keys    *Recognizer
	pending int
}

// NewChannel initialisiert beide Puffer
func NewChannel(rw io.ReadWriter, caps *terminfo.Store, keys *Recognizer) *Channel {
	return &Channel{
		r:    bufio.NewReaderSize(rw, bufferSize),
		w:    bufio.NewWriterSize(rw, bufferSize),
		caps: caps,
		keys: keys,
	}
}

// nextByte liefert das naechste noch nicht gepeekte Byte und blockiert
// dafuer hoechstens fuer einen weiteren Read. EOT gilt als Ende der Eingabe.
func (c *Channel) nextByte() (byte, error) {
	buf, err := c.r.Peek(c.pending + 1)
	if len(buf) <= c.pending {
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}

	b := buf[c.pending]
	c.pending++
	if b == CharEOT {
		return 0, io.EOF
	}
	return b, nil
}

// commit uebernimmt n gepeekte Bytes als gelesen
func (c *Channel) commit(n int) {
	c.r.Discard(n) //nolint:errcheck
	c.pending = 0
}

// ReadEvent liest das naechste Ereignis
func (c *Channel) ReadEvent() Event {
	c.pending = 0

	m := c.keys.Search(c.nextByte)
	switch m.Result {
	case Matched:
		c.commit(c.pending)
		logutil.Trace("key", "kind", EventEscape, "key", m.Key)
		return Event{Kind: EventEscape, Key: m.Key}
	case EndOfInput:
		c.commit(c.pending)
		return c.stop(m.Err)
	}

	// Keine Sequenz: das erste Byte ist ein Literal, der Rest wird neu gelesen
	c.pending = 0
	b, err := c.nextByte()
	if err != nil {
		c.commit(c.pending)
		return c.stop(err)
	}

	switch {
	case b == CharEnter || b == CharCR || b == CharTab || (b >= CharSpace && b < CharDel):
		c.commit(1)
		return Event{Kind: EventASCII, Char: b}
	case b < CharSpace || b == CharDel:
		c.commit(1)
		return Event{Kind: EventSpecial, Literal: caret(b)}
	}

	literal := c.readRune(b)
	c.commit(len(literal))
	return Event{Kind: EventSpecial, Literal: literal}
}

// readRune vervollstaendigt ein UTF-8-Zeichen ab dem Startbyte b. Bei
// ungueltigen oder abgebrochenen Folgen bleibt nur b selbst.
func (c *Channel) readRune(b byte) []byte {
	size := runeLen(b)
	if size <= 1 {
		return []byte{b}
	}

	for range size - 1 {
		cont, err := c.nextByte()
		if err != nil || utf8.RuneStart(cont) {
			return []byte{b}
		}
	}

	buf, _ := c.r.Peek(size)
	if !utf8.FullRune(buf) || !utf8.Valid(buf) {
		return []byte{b}
	}
	return append([]byte(nil), buf...)
}

func (c *Channel) stop(err error) Event {
	switch {
	case err == nil, errors.Is(err, io.EOF):
		err = nil
	case errors.Is(err, errInterrupted):
	default:
		err = fmt.Errorf("%w: read: %w", ErrSystem, err)
	}
	return Event{Kind: EventStop, Err: err}
}

// Write puffert p. Ein Block, der nicht mehr passt, loest vorher ein Flush
// aus; ein Block groesser als der Puffer geht direkt an den Descriptor.
func (c *Channel) Write(p []byte) error {
	if len(p) > c.w.Available() && c.w.Buffered() > 0 {
		if err := c.Flush(); err != nil {
			return err
		}
	}

	if _, err := c.w.Write(p); err != nil {
		return fmt.Errorf("%w: write: %w", ErrSystem, err)
	}
	return nil
}

// WriteString ist Write fuer Strings
func (c *Channel) WriteString(s string) error {
	return c.Write([]byte(s))
}

// WriteCapability schreibt eine Output-Capability; fehlt sie, passiert nichts
func (c *Channel) WriteCapability(id terminfo.Output) error {
	seq, ok := c.caps.Output(id)
	if !ok {
		return nil
	}
	return c.Write(seq)
}

// Flush schreibt den Puffer mit einem einzigen Write
func (c *Channel) Flush() error {
	if err := c.w.Flush(); err != nil {
		return fmt.Errorf("%w: write: %w", ErrSystem, err)
	}
	return nil
}

// caret stellt ein Steuerzeichen als ^X dar
func caret(b byte) []byte {
	if b == CharDel {
		return []byte("^?")
	}
	return []byte{'^', b + '@'}
}

// runeLen gibt die Laenge einer UTF-8-Folge anhand des Startbytes zurueck,
// 0 fuer ungueltige Startbytes
func runeLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	}
	return 0
}
