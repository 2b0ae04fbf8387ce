package resource

import "encoding/binary"

// soundHeaderSize covers the big-endian length and loop-length words and
// four bytes the engine doesn't use.
const soundHeaderSize = 8

// DecodeSound reads a sampled clip. The length field counts 16-bit words
// and, unlike the catalog header, is big-endian. The whole declared size is
// always consumed.
func DecodeSound(c *Cursor, size uint16) (Payload, error) {
	sound := Sound{Channels: 1}
	if size == 0 {
		return sound, nil
	}

	if c.Remaining() < soundHeaderSize {
		return sound, c.Skip(c.Remaining())
	}

	words, err := c.ReadU16(binary.BigEndian)
	if err != nil {
		return nil, err
	}
	if err := c.Skip(soundHeaderSize - 2); err != nil {
		return nil, err
	}

	n := int(words) * 2
	if n > c.Remaining() {
		n = c.Remaining()
		sound.Truncated = true
	}

	raw, err := c.ReadBytes(n)
	if err != nil {
		return nil, err
	}

	sound.Samples = make([]float32, len(raw))
	for i, b := range raw {
		sound.Samples[i] = float32(b) / 255
	}

	return sound, c.Skip(c.Remaining())
}
