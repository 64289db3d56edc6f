package px

import (
	"image"
	"image/color"
	"testing"
)

// Verify at compile time that Pixmap implements image.Image.
var _ image.Image = (*Pixmap)(nil)

func TestNewPixmap(t *testing.T) {
	pm := NewPixmap(8, 4)
	if pm.Width() != 8 || pm.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, want 8x4", pm.Width(), pm.Height())
	}
	if len(pm.Data()) != 8*4*4 {
		t.Fatalf("data length = %d, want %d", len(pm.Data()), 8*4*4)
	}
	// New pixmaps start fully transparent.
	for i, v := range pm.Data() {
		if v != 0 {
			t.Fatalf("data[%d] = %d, want 0", i, v)
		}
	}
}

func TestNewPixmap_NegativeDimensions(t *testing.T) {
	pm := NewPixmap(-3, -7)
	if pm.Width() != 0 || pm.Height() != 0 {
		t.Errorf("dimensions = %dx%d, want 0x0", pm.Width(), pm.Height())
	}
	if len(pm.Data()) != 0 {
		t.Errorf("data length = %d, want 0", len(pm.Data()))
	}
}

func TestPixmap_SetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(3, 7, Red)

	got := pm.GetPixel(3, 7)
	if got != Red {
		t.Errorf("GetPixel(3, 7) = %v, want %v", got, Red)
	}

	// Raw layout is straight-alpha RGBA, row-major.
	i := (7*10 + 3) * 4
	data := pm.Data()
	if data[i+0] != 255 || data[i+1] != 0 || data[i+2] != 0 || data[i+3] != 255 {
		t.Errorf("raw data = (%d, %d, %d, %d), want (255, 0, 0, 255)",
			data[i+0], data[i+1], data[i+2], data[i+3])
	}
}

func TestPixmap_SetPixelOutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(Black)

	original := make([]uint8, len(pm.Data()))
	copy(original, pm.Data())

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, Red)
	}

	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d: got %d, want %d", i, v, original[i])
		}
	}
}

func TestPixmap_GetPixelOutOfBounds(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(White)

	if got := pm.GetPixel(-1, 0); got != Transparent {
		t.Errorf("GetPixel(-1, 0) = %v, want Transparent", got)
	}
	if got := pm.GetPixel(4, 0); got != Transparent {
		t.Errorf("GetPixel(4, 0) = %v, want Transparent", got)
	}
}

func TestPixmap_Clear(t *testing.T) {
	pm := NewPixmap(5, 5)
	pm.Clear(Blue)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if got := pm.GetPixel(x, y); got != Blue {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, Blue)
			}
		}
	}
}

func TestPixmap_Clone(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(1, 2, Green)

	clone := pm.Clone()
	if clone.GetPixel(1, 2) != Green {
		t.Fatalf("clone did not copy pixel data")
	}

	// Mutating the clone must not affect the original.
	clone.SetPixel(0, 0, Red)
	if pm.GetPixel(0, 0) != Transparent {
		t.Errorf("mutating clone modified original")
	}
}

func TestPixmap_ImageRoundtrip(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.SetPixel(0, 0, Red)
	pm.SetPixel(2, 1, RGBA{0, 0, 1, 0.5})

	img := pm.ToImage()
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("image bounds = %v, want (0,0)-(3,2)", img.Bounds())
	}

	back := FromImage(img)
	if back.Width() != 3 || back.Height() != 2 {
		t.Fatalf("roundtrip dimensions = %dx%d, want 3x2", back.Width(), back.Height())
	}
	// NRGBA shares the straight-alpha layout, so bytes survive exactly.
	for i, v := range back.Data() {
		if v != pm.Data()[i] {
			t.Fatalf("roundtrip data[%d] = %d, want %d", i, v, pm.Data()[i])
		}
	}
}

func TestPixmap_FromImageGeneric(t *testing.T) {
	// A non-NRGBA source goes through the generic per-pixel path.
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	src.SetRGBA(1, 1, color.RGBA{R: 128, G: 0, B: 0, A: 128})

	pm := FromImage(src)
	if got := pm.GetPixel(0, 0); got != Red {
		t.Errorf("pixel (0, 0) = %v, want %v", got, Red)
	}
	half := pm.GetPixel(1, 1)
	if absDiff(half.R, 1) > 0.01 || absDiff(half.A, 0.5) > 0.01 {
		t.Errorf("pixel (1, 1) = %v, want unpremultiplied R=1 A=0.5", half)
	}
}

func TestPixmap_FromImageOffsetBounds(t *testing.T) {
	// Sub-images have a non-zero Min; FromImage must normalize to (0, 0).
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(2, 2, color.NRGBA{G: 255, A: 255})

	sub := src.SubImage(image.Rect(1, 1, 4, 4)).(*image.NRGBA)
	pm := FromImage(sub)
	if pm.Width() != 3 || pm.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 3x3", pm.Width(), pm.Height())
	}
	if got := pm.GetPixel(1, 1); got != Green {
		t.Errorf("pixel (1, 1) = %v, want %v", got, Green)
	}
}

func TestPixmap_At(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(1, 0, RGBA{1, 0, 0, 0.5})

	c := pm.At(1, 0)
	nrgba, ok := c.(color.NRGBA)
	if !ok {
		t.Fatalf("At returned %T, want color.NRGBA", c)
	}
	if nrgba.R != 255 || nrgba.A != 127 {
		t.Errorf("At(1, 0) = %v, want straight-alpha R=255 A=127", nrgba)
	}
}
