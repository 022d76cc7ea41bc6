// parse.go - Parser fuer kompilierte Terminfo-Dateien
//
// Format (term(5)): sechs 16-Bit-Header-Felder, Namen, Booleans, Zahlen
// (16 oder 32 Bit je nach Magic), String-Offsets und die String-Tabelle.
// Gelesen werden nur Offsets und String-Tabelle, der Rest wird per Seek
// uebersprungen.
package terminfo

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

const (
	magicInt16 = 0o432
	magicInt32 = 0o1036

	// Groesse des Headers in Bytes
	headerSize = 12
)

type header struct {
	Magic     uint16
	NamesSize int16
	BoolCount int16
	NumCount  int16
	StrCount  int16
	TableSize int16
}

// Parse liest eine kompilierte Terminfo-Datei
func Parse(r io.ReadSeeker) (*Store, error) {
	return parse(r, "", "")
}

func parse(r io.ReadSeeker, name, path string) (*Store, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrInvalidFormat, err)
	}

	var numSize int64
	switch h.Magic {
	case magicInt16:
		numSize = 2
	case magicInt32:
		numSize = 4
	default:
		return nil, fmt.Errorf("%w: bad magic %#o", ErrInvalidFormat, h.Magic)
	}

	if h.NamesSize < 0 || h.BoolCount < 0 || h.NumCount < 0 || h.StrCount < 0 || h.TableSize < 0 {
		return nil, fmt.Errorf("%w: negative section size", ErrInvalidFormat)
	}

	// Namen und Booleans, danach Padding auf gerade Adresse
	skip := int64(h.NamesSize) + int64(h.BoolCount)
	if (headerSize+skip)%2 != 0 {
		skip++
	}
	skip += numSize * int64(h.NumCount)

	if _, err := r.Seek(skip, io.SeekCurrent); err != nil {
		return nil, fmt.Errorf("%w: seek: %w", ErrInvalidFormat, err)
	}

	offsets := make([]int16, h.StrCount)
	if err := binary.Read(r, binary.LittleEndian, offsets); err != nil {
		return nil, fmt.Errorf("%w: string offsets: %w", ErrInvalidFormat, err)
	}

	table := make([]byte, h.TableSize)
	if _, err := io.ReadFull(r, table); err != nil {
		return nil, fmt.Errorf("%w: string table: %w", ErrInvalidFormat, err)
	}

	s := &Store{name: name, path: path}
	for id, index := range inputIndex {
		seq, err := lookup(offsets, table, index)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFormat, Input(id), err)
		}
		s.inputs[id] = seq
	}
	for id, index := range outputIndex {
		seq, err := lookup(offsets, table, index)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFormat, Output(id), err)
		}
		s.outputs[id] = seq
	}

	return s, nil
}

// lookup loest einen Index ueber das Offset-Array auf.
// nil bedeutet "nicht vorhanden" (-1 fehlt, -2 abgeschaltet).
func lookup(offsets []int16, table []byte, index int) ([]byte, error) {
	if index >= len(offsets) {
		return nil, nil
	}

	offset := int(offsets[index])
	if offset < 0 {
		return nil, nil
	}
	if offset >= len(table) {
		return nil, fmt.Errorf("offset %d outside string table (%d bytes)", offset, len(table))
	}

	seq := table[offset:]
	if end := bytes.IndexByte(seq, 0); end >= 0 {
		seq = seq[:end]
	}
	if len(seq) == 0 {
		return nil, nil
	}

	return bytes.Clone(seq), nil
}
