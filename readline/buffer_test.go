package readline

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuffer(t *testing.T, prompt Prompt) (*Buffer, *Channel, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c := newTestChannel(t, strings.NewReader(""), &out)
	return NewBuffer(c, &prompt), c, &out
}

func flushed(t *testing.T, c *Channel, out *bytes.Buffer) string {
	t.Helper()
	require.NoError(t, c.Flush())
	s := out.String()
	out.Reset()
	return s
}

func TestBufferInsertMiddle(t *testing.T) {
	b, c, out := newTestBuffer(t, Prompt{})

	b.Add('a')
	b.Add('c')
	b.MoveLeft()
	b.Add('b')

	assert.Equal(t, "abc", b.String())
	assert.Equal(t, 2, b.Pos)
	assert.Equal(t, "ac\bbc\b", flushed(t, c, out))
}

func TestBufferRemoveAndDelete(t *testing.T) {
	b, c, out := newTestBuffer(t, Prompt{})
	b.Insert([]byte("abcd"))
	flushed(t, c, out)

	b.MoveLeft()
	b.MoveLeft()
	b.Remove()
	assert.Equal(t, "acd", b.String())
	assert.Equal(t, 1, b.Pos)
	// zurueck, Rest neu zeichnen, eine Spalte loeschen, zurueck zum Cursor
	assert.Equal(t, "\b\b\bcd \b\b\b", flushed(t, c, out))

	b.Delete()
	assert.Equal(t, "ad", b.String())
	assert.Equal(t, 1, b.Pos)
	assert.Equal(t, "d \b\b", flushed(t, c, out))

	b.MoveToEnd()
	b.Delete()
	assert.Equal(t, "ad", b.String())
	b.MoveToStart()
	b.Remove()
	assert.Equal(t, "ad", b.String())
	assert.Equal(t, 0, b.Pos)
}

func TestBufferCursorBounds(t *testing.T) {
	b, _, _ := newTestBuffer(t, Prompt{})

	b.MoveLeft()
	b.MoveRight()
	b.MoveToStart()
	b.MoveToEnd()
	assert.Zero(t, b.Pos)

	b.Insert([]byte("xyz"))
	for range 5 {
		b.MoveRight()
	}
	assert.Equal(t, 3, b.Pos)
	for range 5 {
		b.MoveLeft()
	}
	assert.Zero(t, b.Pos)
}

func TestBufferRoundTrip(t *testing.T) {
	for _, input := range []string{"a", "hello world", "é日🙂x", strings.Repeat("z", 3*startAlloc)} {
		b, _, _ := newTestBuffer(t, Prompt{})

		b.Insert([]byte(input))
		require.Equal(t, input, b.String())

		for !b.IsEmpty() {
			b.Remove()
		}
		assert.Zero(t, b.Pos)
		assert.Zero(t, b.Size())
	}
}

func TestBufferGrow(t *testing.T) {
	b, _, _ := newTestBuffer(t, Prompt{})
	assert.Equal(t, startAlloc, cap(b.Buf))

	for range startAlloc + 1 {
		b.Add('q')
	}
	assert.Equal(t, startAlloc*growFactor, cap(b.Buf))
	assert.Equal(t, startAlloc+1, b.Size())
}

func TestBufferClear(t *testing.T) {
	b, _, _ := newTestBuffer(t, Prompt{Echo: EchoHidden})
	b.Insert([]byte("secret"))
	backing := b.Buf[:cap(b.Buf)]

	b.Clear()
	assert.True(t, b.IsEmpty())
	assert.Zero(t, b.Pos)
	assert.Equal(t, make([]byte, len(backing)), backing)
}

func TestBufferWideRunes(t *testing.T) {
	b, c, out := newTestBuffer(t, Prompt{})
	b.Insert([]byte("日本"))
	flushed(t, c, out)

	b.MoveLeft()
	assert.Equal(t, len("日"), b.Pos)
	assert.Equal(t, "\b\b", flushed(t, c, out))

	b.Remove()
	assert.Equal(t, "本", b.String())
	assert.Equal(t, "\b\b本  \b\b\b\b", flushed(t, c, out))
}

func TestBufferEcho(t *testing.T) {
	cases := []struct {
		name   string
		prompt Prompt
		want   string
	}{
		{"visible", Prompt{}, "abé\b\bé \b\b"},
		{"hidden", Prompt{Echo: EchoHidden}, ""},
		{"masked default", Prompt{Echo: EchoMasked}, "***\b\b* \b\b"},
		{"masked", Prompt{Echo: EchoMasked, Mask: '#'}, "###\b\b# \b\b"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			b, c, out := newTestBuffer(t, tt.prompt)

			b.Insert([]byte("a"))
			b.Insert([]byte("b"))
			b.Insert([]byte("é"))
			b.MoveLeft()
			b.Remove()

			assert.Equal(t, "aé", b.String())
			assert.Equal(t, tt.want, flushed(t, c, out))
		})
	}
}

func TestBufferTab(t *testing.T) {
	b, c, out := newTestBuffer(t, Prompt{})

	b.Insert([]byte("a"))
	b.Add(CharTab)
	assert.Equal(t, "a    ", flushed(t, c, out))
	assert.Equal(t, 1+tabWidth, b.DisplaySize(b.Buf))

	b.Remove()
	assert.Equal(t, "a", b.String())
	assert.Equal(t, "\b\b\b\b    \b\b\b\b", flushed(t, c, out))

	b.Add(CharTab)
	b.Add('x')
	flushed(t, c, out)

	b.MoveLeft()
	b.MoveLeft()
	assert.Equal(t, 1, b.Pos)
	assert.Equal(t, "\b\b\b\b\b", flushed(t, c, out))

	b.MoveToEnd()
	assert.Equal(t, "\x1b[C\x1b[C\x1b[C\x1b[C\x1b[C", flushed(t, c, out))
}

func TestBufferTabMasked(t *testing.T) {
	b, c, out := newTestBuffer(t, Prompt{Echo: EchoMasked})

	b.Insert([]byte("a\t"))
	b.Remove()
	assert.Equal(t, "**\b \b", flushed(t, c, out))
}

func TestBufferWideMask(t *testing.T) {
	b, c, out := newTestBuffer(t, Prompt{Echo: EchoMasked, Mask: '＊'})

	b.Insert([]byte("ab"))
	b.Remove()
	// jedes geloeschte Zeichen belegt genau eine Spalte
	assert.Equal(t, "**\b \b", flushed(t, c, out))
}
