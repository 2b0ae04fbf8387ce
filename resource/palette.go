package resource

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const frameColors = 16

// RGBHex formats a colour as "#RRGGBB".
func RGBHex(r, g, b uint8) string {
	c := colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
	return strings.ToUpper(c.Hex())
}

// DecodePalette reads a frame count followed by 16 RGB triples per frame.
func DecodePalette(c *Cursor, size uint16) (Payload, error) {
	count, err := c.ReadU8()
	if err != nil {
		return nil, err
	}

	frames := make([]Frame, count)
	for f := range frames {
		raw, err := c.ReadBytes(frameColors * 3)
		if err != nil {
			return nil, err
		}
		for i := 0; i < frameColors; i++ {
			frames[f][i] = RGBHex(raw[i*3], raw[i*3+1], raw[i*3+2])
		}
	}

	return Palette{Frames: frames}, nil
}

// DecodeRaw copies the payload verbatim.
func DecodeRaw(c *Cursor, size uint16) (Payload, error) {
	b, err := c.ReadBytes(int(size))
	if err != nil {
		return nil, err
	}
	return Raw{Bytes: b}, nil
}
