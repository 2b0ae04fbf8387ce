// Package testsupport builds synthetic snapshots for tests.
package testsupport

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// Line is one disassembled script instruction.
type Line struct {
	Addr uint16
	Text string
}

// RGB is one palette colour.
type RGB [3]uint8

// Snapshot accumulates catalog entries in order.
type Snapshot struct {
	entries [][]byte
	codes   []uint8
}

// Entry appends an entry with an arbitrary payload.
func (s *Snapshot) Entry(code uint8, payload []byte) *Snapshot {
	s.codes = append(s.codes, code)
	s.entries = append(s.entries, payload)
	return s
}

func (s *Snapshot) Palette(code uint8, frames ...[16]RGB) *Snapshot {
	return s.Entry(code, PalettePayload(frames...))
}

func (s *Snapshot) Script(code uint8, lines ...Line) *Snapshot {
	return s.Entry(code, ScriptPayload(lines...))
}

func (s *Snapshot) Sound(code uint8, samples []byte) *Snapshot {
	return s.Entry(code, SoundPayload(len(samples)/2, samples))
}

func (s *Snapshot) Len() int { return len(s.entries) }

// Bytes lays the snapshot out as the engine does.
func (s *Snapshot) Bytes() []byte {
	out := []byte{uint8(len(s.entries))}
	for i, payload := range s.entries {
		out = append(out, s.codes[i])
		out = binary.LittleEndian.AppendUint16(out, uint16(len(payload)))
		out = append(out, payload...)
	}
	return out
}

// WriteFile stores the snapshot in a temporary directory and returns its
// path.
func (s *Snapshot) WriteFile(t testing.TB) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.bin")
	if err := os.WriteFile(path, s.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func PalettePayload(frames ...[16]RGB) []byte {
	out := []byte{uint8(len(frames))}
	for _, f := range frames {
		for _, c := range f {
			out = append(out, c[0], c[1], c[2])
		}
	}
	return out
}

func ScriptPayload(lines ...Line) []byte {
	out := binary.LittleEndian.AppendUint16(nil, uint16(len(lines)))
	for _, l := range lines {
		out = binary.LittleEndian.AppendUint16(out, l.Addr)
		out = append(out, uint8(len(l.Text)))
		out = append(out, l.Text...)
	}
	return out
}

// SoundPayload writes the 8 byte sub-header with a big-endian length of
// words 16-bit words, followed by samples.
func SoundPayload(words int, samples []byte) []byte {
	out := binary.BigEndian.AppendUint16(nil, uint16(words))
	out = append(out, 0, 0, 0, 0, 0, 0)
	return append(out, samples...)
}
