package render

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestFramebufferPixelRoundTrip(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	c := color.RGBA{R: 10, G: 20, B: 30, A: 255}

	fb.SetPixel(2, 1, c)
	if got := fb.GetPixel(2, 1); got != c {
		t.Errorf("GetPixel(2,1) = %v, want %v", got, c)
	}
	if got := fb.GetPixel(0, 0); got != (color.RGBA{}) {
		t.Errorf("untouched pixel = %v, want zero", got)
	}
}

func TestFramebufferIgnoresOutOfBounds(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	c := color.RGBA{R: 255, A: 255}

	fb.SetPixel(-1, 0, c)
	fb.SetPixel(0, -1, c)
	fb.SetPixel(2, 0, c)
	fb.SetPixel(0, 2, c)

	for i, p := range fb.Pixels {
		if p != (color.RGBA{}) {
			t.Errorf("pixel %d written by out-of-bounds SetPixel: %v", i, p)
		}
	}
	if got := fb.GetPixel(5, 5); got != (color.RGBA{}) {
		t.Errorf("out-of-bounds read = %v, want zero", got)
	}
}

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(3, 3)
	c := color.RGBA{R: 1, G: 2, B: 3, A: 255}

	fb.Clear(c)
	for i, p := range fb.Pixels {
		if p != c {
			t.Fatalf("pixel %d = %v after Clear, want %v", i, p, c)
		}
	}
}

func TestFramebufferSavePNG(t *testing.T) {
	fb := NewFramebuffer(8, 6)
	fb.Clear(color.RGBA{R: 63, G: 96, B: 188, A: 255})
	fb.SetPixel(3, 2, color.RGBA{R: 255, A: 255})

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := fb.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode saved frame: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("saved frame is %dx%d, want 8x6", b.Dx(), b.Dy())
	}
	r, _, _, _ := img.At(3, 2).RGBA()
	if r>>8 != 255 {
		t.Errorf("marker pixel red = %d, want 255", r>>8)
	}
}
