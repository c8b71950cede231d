package text

import (
	"image"
	"image/color"
	"testing"
)

// inkBounds returns the bounding box of non-transparent pixels and
// whether any were found.
func inkBounds(img image.Image) (image.Rectangle, bool) {
	var bounds image.Rectangle
	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			px := image.Rect(x, y, x+1, y+1)
			if !found {
				bounds = px
				found = true
			} else {
				bounds = bounds.Union(px)
			}
		}
	}
	return bounds, found
}

func TestDraw(t *testing.T) {
	for _, parser := range []string{"ximage", "gotext"} {
		t.Run(parser, func(t *testing.T) {
			source := testSource(t, WithParser(parser))
			face := source.Face(16.0)

			dst := image.NewRGBA(image.Rect(0, 0, 200, 50))
			Draw(dst, "Hello, World!", face, 10, 30, color.Black)

			ink, found := inkBounds(dst)
			if !found {
				t.Fatal("expected Draw to modify the destination image")
			}

			// Ink should sit around the baseline, not bleed across the
			// whole image.
			if ink.Min.Y < 5 || ink.Max.Y > 40 {
				t.Errorf("ink rows %d..%d, want text near the baseline at y=30", ink.Min.Y, ink.Max.Y)
			}
			if ink.Min.X < 8 {
				t.Errorf("ink starts at column %d, want at or after the pen at x=10", ink.Min.X)
			}
		})
	}
}

func TestDrawEmpty(t *testing.T) {
	source := testSource(t)
	face := source.Face(12.0)

	dst := image.NewRGBA(image.Rect(0, 0, 100, 50))

	// Draw empty string (should not panic)
	Draw(dst, "", face, 10, 30, color.Black)

	if _, found := inkBounds(dst); found {
		t.Error("expected no ink for empty string")
	}
}

func TestDrawNilFace(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 50))

	// Draw with nil face (should not panic)
	Draw(dst, "Hello", nil, 10, 30, color.Black)
}

func TestDrawColor(t *testing.T) {
	source := testSource(t)
	face := source.Face(24.0)

	dst := image.NewRGBA(image.Rect(0, 0, 60, 60))
	red := color.RGBA{R: 255, A: 255}
	Draw(dst, "A", face, 10, 40, red)

	ink, found := inkBounds(dst)
	if !found {
		t.Fatal("expected ink for 'A'")
	}

	// Every inked pixel should be a shade of red.
	for y := ink.Min.Y; y < ink.Max.Y; y++ {
		for x := ink.Min.X; x < ink.Max.X; x++ {
			r, g, b, a := dst.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			if g != 0 || b != 0 {
				t.Fatalf("pixel (%d,%d) = rgba(%d,%d,%d,%d), want pure red", x, y, r, g, b, a)
			}
		}
	}
}

func TestDrawRune(t *testing.T) {
	source := testSource(t)
	face := source.Face(24.0)

	dst := image.NewRGBA(image.Rect(0, 0, 60, 60))
	advance := DrawRune(dst, 'A', face, 10, 40, color.Black)

	if advance <= 0 {
		t.Errorf("DrawRune advance = %f, want positive", advance)
	}

	ink, found := inkBounds(dst)
	if !found {
		t.Fatal("expected ink for 'A'")
	}

	// The cap of 'A' must be above the baseline, the bulk of the glyph
	// between the pen and pen+advance.
	if ink.Max.Y > 42 {
		t.Errorf("ink reaches row %d, want glyph above baseline at y=40", ink.Max.Y)
	}
	if ink.Min.X < 9 || ink.Max.X > 11+int(advance)+1 {
		t.Errorf("ink columns %d..%d, want within pen 10 .. pen+advance %f", ink.Min.X, ink.Max.X, advance)
	}
}

func TestDrawRuneMissingGlyph(t *testing.T) {
	source := testSource(t)
	face := source.Face(24.0)

	dst := image.NewRGBA(image.Rect(0, 0, 60, 60))
	advance := DrawRune(dst, '', face, 10, 40, color.Black)

	if advance != 0 {
		t.Errorf("advance = %f, want 0 for missing glyph", advance)
	}
	if _, found := inkBounds(dst); found {
		t.Error("expected no ink for missing glyph")
	}
}

func TestDrawRuneSpace(t *testing.T) {
	source := testSource(t)
	face := source.Face(24.0)

	dst := image.NewRGBA(image.Rect(0, 0, 60, 60))
	advance := DrawRune(dst, ' ', face, 10, 40, color.Black)

	// A space advances the pen but paints nothing.
	if advance <= 0 {
		t.Errorf("advance = %f, want positive for space", advance)
	}
	if _, found := inkBounds(dst); found {
		t.Error("expected no ink for space")
	}
}

func TestMeasure(t *testing.T) {
	source := testSource(t)
	face := source.Face(16.0)

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"word", "Hello"},
		{"sentence", "The quick brown fox"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			width, height := Measure(tt.text, face)

			if tt.text == "" {
				if width != 0 || height != 0 {
					t.Errorf("Measure(\"\") = (%f, %f), want (0, 0)", width, height)
				}
				return
			}

			if width != face.Advance(tt.text) {
				t.Errorf("width = %f, want Advance %f", width, face.Advance(tt.text))
			}
			if height != face.Metrics().LineHeight() {
				t.Errorf("height = %f, want LineHeight %f", height, face.Metrics().LineHeight())
			}
		})
	}
}

func TestMeasureNilFace(t *testing.T) {
	width, height := Measure("Hello", nil)
	if width != 0 || height != 0 {
		t.Errorf("Measure with nil face = (%f, %f), want (0, 0)", width, height)
	}
}
