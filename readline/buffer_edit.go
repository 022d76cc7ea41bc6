// Buffer-Edit-Modul: Bearbeitungsfunktionen fuer den Zeilenpuffer
// Dieses Modul enthaelt alle Funktionen zum Hinzufuegen und Entfernen von Text.

package readline

import (
	"unicode/utf8"
)

// Add fuegt ein einzelnes Byte am Cursor ein
func (b *Buffer) Add(c byte) {
	b.Insert([]byte{c})
}

// Insert fuegt seq am Cursor ein und zeichnet den Rest der Zeile neu
func (b *Buffer) Insert(seq []byte) {
	if len(seq) == 0 {
		return
	}

	b.grow(len(seq))
	start := b.Pos
	end := len(b.Buf)
	b.Buf = b.Buf[:end+len(seq)]
	copy(b.Buf[start+len(seq):], b.Buf[start:end])
	copy(b.Buf[start:], seq)
	b.Pos += len(seq)

	b.echo(b.Buf[start:])
	b.cursorLeftN(b.DisplaySize(b.Buf[b.Pos:]))
}

// Remove loescht das Zeichen vor dem Cursor (Backspace)
func (b *Buffer) Remove() {
	if b.Pos > 0 {
		_, size := utf8.DecodeLastRune(b.Buf[:b.Pos])
		width := b.DisplaySize(b.Buf[b.Pos-size : b.Pos])

		b.Buf = append(b.Buf[:b.Pos-size], b.Buf[b.Pos:]...)
		b.Pos -= size

		b.cursorLeftN(width)
		b.drawRemaining(width)
	}
}

// Delete loescht das Zeichen unter dem Cursor
func (b *Buffer) Delete() {
	if b.Pos < len(b.Buf) {
		_, size := utf8.DecodeRune(b.Buf[b.Pos:])
		width := b.DisplaySize(b.Buf[b.Pos : b.Pos+size])

		b.Buf = append(b.Buf[:b.Pos], b.Buf[b.Pos+size:]...)

		b.drawRemaining(width)
	}
}
