// Buffer-Modul: Hauptstruktur und Basis-Funktionen
// Dieses Modul verwaltet den Zeilenpuffer einer Sitzung.
// Siehe auch: buffer_cursor.go, buffer_edit.go

package readline

import (
	"bytes"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/ollama/termline/terminfo"
)

var tabSpaces = bytes.Repeat([]byte{CharSpace}, tabWidth)

// Buffer haelt die Eingabezeile und den Cursor als Byte-Index.
// Es gilt immer 0 <= Pos <= len(Buf).
type Buffer struct {
	Buf  []byte
	Pos  int
	Echo Echo
	Mask rune
	out  *Channel
}

func NewBuffer(out *Channel, prompt *Prompt) *Buffer {
	return &Buffer{
		Buf:  make([]byte, 0, startAlloc),
		Echo: prompt.Echo,
		Mask: prompt.mask(),
		out:  out,
	}
}

func (b *Buffer) IsEmpty() bool {
	return len(b.Buf) == 0
}

func (b *Buffer) Size() int {
	return len(b.Buf)
}

func (b *Buffer) String() string {
	return string(b.Buf)
}

// Clear ueberschreibt den Inhalt mit Nullen, z.B. fuer Passwoerter
func (b *Buffer) Clear() {
	clear(b.Buf[:cap(b.Buf)])
	b.Buf = b.Buf[:0]
	b.Pos = 0
}

// grow stellt Platz fuer n weitere Bytes sicher; die Kapazitaet verdoppelt sich
func (b *Buffer) grow(n int) {
	if len(b.Buf)+n <= cap(b.Buf) {
		return
	}

	size := max(cap(b.Buf), startAlloc)
	for size < len(b.Buf)+n {
		size *= growFactor
	}

	buf := make([]byte, len(b.Buf), size)
	copy(buf, b.Buf)
	clear(b.Buf)
	b.Buf = buf
}

// DisplaySize gibt die Breite eines Abschnitts im aktuellen Echo-Modus zurueck
func (b *Buffer) DisplaySize(seg []byte) int {
	switch b.Echo {
	case EchoHidden:
		return 0
	case EchoMasked:
		return utf8.RuneCount(seg) * runewidth.RuneWidth(b.Mask)
	default:
		return runewidth.StringWidth(string(seg)) + bytes.Count(seg, []byte{CharTab})*tabWidth
	}
}

// echo schreibt einen Abschnitt im aktuellen Echo-Modus und gibt die Breite zurueck
func (b *Buffer) echo(seg []byte) int {
	switch b.Echo {
	case EchoHidden:
		return 0
	case EchoMasked:
		mask := string(b.Mask)
		for range utf8.RuneCount(seg) {
			b.out.WriteString(mask) //nolint:errcheck
		}
	default:
		// Tab als tabWidth Leerzeichen
		b.out.Write(bytes.ReplaceAll(seg, []byte{CharTab}, tabSpaces)) //nolint:errcheck
	}
	return b.DisplaySize(seg)
}

// erase ueberschreibt n Spalten mit Leerzeichen
func (b *Buffer) erase(n int) {
	if b.Echo == EchoHidden {
		return
	}
	for range n {
		b.out.WriteString(" ") //nolint:errcheck
	}
}

func (b *Buffer) cursorLeftN(n int) {
	if b.Echo == EchoHidden {
		return
	}
	for range n {
		b.out.WriteCapability(terminfo.CursorLeft) //nolint:errcheck
	}
}

func (b *Buffer) cursorRightN(n int) {
	if b.Echo == EchoHidden {
		return
	}
	for range n {
		b.out.WriteCapability(terminfo.CursorRight) //nolint:errcheck
	}
}

// drawRemaining zeichnet den Rest ab Pos neu, loescht pad Spalten dahinter
// und setzt den Cursor zurueck auf Pos
func (b *Buffer) drawRemaining(pad int) {
	n := b.echo(b.Buf[b.Pos:])
	b.erase(pad)
	b.cursorLeftN(n + pad)
}
