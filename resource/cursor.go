package resource

import (
	"bufio"
	"bytes"
	"encoding/binary"

	"github.com/32bitkid/bitreader"
)

// Cursor reads a byte buffer strictly front to back. Every read is checked
// against the bytes left in the buffer before anything is consumed.
type Cursor struct {
	bits bitreader.BitReader
	base int
	pos  int
	size int
}

func NewCursor(b []byte) *Cursor {
	return newCursorAt(b, 0)
}

func newCursorAt(b []byte, base int) *Cursor {
	return &Cursor{
		bits: bitreader.NewReader(bufio.NewReader(bytes.NewReader(b))),
		base: base,
		size: len(b),
	}
}

// Position is the absolute offset of the next read within the snapshot.
func (c *Cursor) Position() int { return c.base + c.pos }

// Consumed is the number of bytes read through this cursor.
func (c *Cursor) Consumed() int { return c.pos }

// Remaining is the number of unread bytes.
func (c *Cursor) Remaining() int { return c.size - c.pos }

func (c *Cursor) ensure(n int) error {
	if n < 0 || n > c.Remaining() {
		return &UnderrunError{
			Offset:    c.Position(),
			Requested: n,
			Remaining: c.Remaining(),
		}
	}
	return nil
}

func (c *Cursor) ReadU8() (uint8, error) {
	if err := c.ensure(1); err != nil {
		return 0, err
	}
	v, err := c.bits.Read8(8)
	if err != nil {
		return 0, err
	}
	c.pos++
	return v, nil
}

func (c *Cursor) ReadU16(order binary.ByteOrder) (uint16, error) {
	if err := c.ensure(2); err != nil {
		return 0, err
	}
	var raw [2]byte
	for i := range raw {
		v, err := c.bits.Read8(8)
		if err != nil {
			return 0, err
		}
		raw[i] = v
	}
	c.pos += 2
	return order.Uint16(raw[:]), nil
}

func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if err := c.ensure(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	for i := range out {
		v, err := c.bits.Read8(8)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	c.pos += n
	return out, nil
}

// Skip discards n bytes.
func (c *Cursor) Skip(n int) error {
	_, err := c.ReadBytes(n)
	return err
}

// Sub consumes the next n bytes and returns a cursor bounded to them. Its
// positions stay absolute so errors inside a payload point into the
// snapshot.
func (c *Cursor) Sub(n int) (*Cursor, error) {
	start := c.Position()
	b, err := c.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	return newCursorAt(b, start), nil
}
