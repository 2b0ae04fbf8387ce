package screen

import (
	"fmt"
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"

	"github.com/32bitkid/anotherworld/resource"
)

// Frame converts a decoded palette frame into a 16 entry color.Palette.
func Frame(f resource.Frame) (color.Palette, error) {
	palette := make(color.Palette, len(f))
	for i, hex := range f {
		c, err := clr.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette colour %d: %w", i, err)
		}
		r, g, b := c.RGB255()
		palette[i] = rgb(r, g, b)
	}
	return palette, nil
}

// PaletteFrame picks frame n of a palette resource.
func PaletteFrame(res resource.Resource, n int) (color.Palette, error) {
	p, ok := res.Payload.(resource.Palette)
	if !ok {
		return nil, fmt.Errorf("resource %d is %v, not a palette", res.ID, res.Class)
	}
	if n < 0 || n >= len(p.Frames) {
		return nil, fmt.Errorf("resource %d: frame %d out of range (%d frames)", res.ID, n, len(p.Frames))
	}
	return Frame(p.Frames[n])
}

// Grey is used when no palette is available.
var Grey = func() color.Palette {
	p := make(color.Palette, 16)
	for i := range p {
		y := uint8(i * 0x11)
		p[i] = color.Gray{Y: y}
	}
	return p
}()
