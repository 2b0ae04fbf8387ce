package screen

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

const (
	Width  = 320
	Height = 200
)

// Bitmap renders a bitmap resource, one colour index per byte, with the
// given palette.
func Bitmap(pixels []byte, palette color.Palette) (*image.Paletted, error) {
	if len(pixels) != Width*Height {
		return nil, fmt.Errorf("bitmap: expected(%d) != actual(%d) bytes", Width*Height, len(pixels))
	}
	if len(palette) < 16 {
		return nil, fmt.Errorf("bitmap: palette has %d colours, need 16", len(palette))
	}

	img := image.NewPaletted(image.Rect(0, 0, Width, Height), palette)
	for i, p := range pixels {
		img.Pix[i] = p & 0xF
	}
	return img, nil
}

// Scale enlarges img by an integer factor without smoothing.
func Scale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

func EncodeBMP(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}
