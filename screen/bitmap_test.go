package screen

import (
	"bytes"
	"image/color"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/32bitkid/anotherworld/resource"
)

func TestFrame(t *testing.T) {
	var f resource.Frame
	for i := range f {
		f[i] = "#000000"
	}
	f[1] = "#FF8000"

	palette, err := Frame(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(palette) != 16 {
		t.Fatalf("expected(16) != actual(%d)", len(palette))
	}
	if expected, actual := (color.RGBA{0xFF, 0x80, 0x00, 0xFF}), palette[1]; expected != actual {
		t.Fatalf("expected(%v) != actual(%v)", expected, actual)
	}
}

func TestFrameRejectsBadColour(t *testing.T) {
	var f resource.Frame
	for i := range f {
		f[i] = "#000000"
	}
	f[3] = "red"

	if _, err := Frame(f); err == nil {
		t.Fatal("expected error")
	}
}

func TestPaletteFrame(t *testing.T) {
	var f resource.Frame
	for i := range f {
		f[i] = "#FFFFFF"
	}
	res := resource.Resource{ID: 2, Class: resource.ClassPalette, Payload: resource.Palette{Frames: []resource.Frame{f}}}

	if _, err := PaletteFrame(res, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := PaletteFrame(res, 1); err == nil {
		t.Fatal("expected out of range frame to fail")
	}
	if _, err := PaletteFrame(resource.Resource{Payload: resource.Raw{}}, 0); err == nil {
		t.Fatal("expected non-palette resource to fail")
	}
}

func TestBitmap(t *testing.T) {
	pixels := make([]byte, Width*Height)
	pixels[0] = 0x1F
	pixels[len(pixels)-1] = 0x03

	img, err := Bitmap(pixels, Grey)
	if err != nil {
		t.Fatal(err)
	}
	if expected, actual := uint8(0x0F), img.ColorIndexAt(0, 0); expected != actual {
		t.Fatalf("expected(%d) != actual(%d)", expected, actual)
	}
	if expected, actual := uint8(0x03), img.ColorIndexAt(Width-1, Height-1); expected != actual {
		t.Fatalf("expected(%d) != actual(%d)", expected, actual)
	}
}

func TestBitmapErrors(t *testing.T) {
	if _, err := Bitmap(make([]byte, 10), Grey); err == nil {
		t.Fatal("expected short bitmap to fail")
	}
	if _, err := Bitmap(make([]byte, Width*Height), Grey[:8]); err == nil {
		t.Fatal("expected short palette to fail")
	}
}

func TestScaleAndEncode(t *testing.T) {
	img, err := Bitmap(make([]byte, Width*Height), Grey)
	if err != nil {
		t.Fatal(err)
	}

	scaled := Scale(img, 2)
	if b := scaled.Bounds(); b.Dx() != Width*2 || b.Dy() != Height*2 {
		t.Fatalf("unexpected bounds %v", b)
	}
	if Scale(img, 1) != img {
		t.Fatal("factor 1 should return the source image")
	}

	var buf bytes.Buffer
	if err := EncodeBMP(&buf, scaled); err != nil {
		t.Fatal(err)
	}
	cfg, err := bmp.DecodeConfig(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != Width*2 || cfg.Height != Height*2 {
		t.Fatalf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}
}
