// Buffer-Cursor-Modul: Cursor-Bewegungen im Zeilenpuffer
// Der Cursor springt immer ueber ein ganzes UTF-8-Zeichen.

package readline

import (
	"unicode/utf8"
)

func (b *Buffer) MoveLeft() {
	if b.Pos > 0 {
		_, size := utf8.DecodeLastRune(b.Buf[:b.Pos])
		width := b.DisplaySize(b.Buf[b.Pos-size : b.Pos])
		b.Pos -= size
		b.cursorLeftN(width)
	}
}

func (b *Buffer) MoveRight() {
	if b.Pos < len(b.Buf) {
		_, size := utf8.DecodeRune(b.Buf[b.Pos:])
		width := b.DisplaySize(b.Buf[b.Pos : b.Pos+size])
		b.Pos += size
		b.cursorRightN(width)
	}
}

func (b *Buffer) MoveToStart() {
	if b.Pos > 0 {
		width := b.DisplaySize(b.Buf[:b.Pos])
		b.Pos = 0
		b.cursorLeftN(width)
	}
}

func (b *Buffer) MoveToEnd() {
	if b.Pos < len(b.Buf) {
		width := b.DisplaySize(b.Buf[b.Pos:])
		b.Pos = len(b.Buf)
		b.cursorRightN(width)
	}
}
