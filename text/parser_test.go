package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// stubParser is a FontParser that always fails, for registry tests.
type stubParser struct{}

func (stubParser) Parse(data []byte) (ParsedFont, error) {
	return nil, errors.New("stub parser")
}

func TestRegisterParser(t *testing.T) {
	RegisterParser("stub", stubParser{})
	defer delete(parserRegistry, "stub")

	p, name := getParser("stub")
	if _, ok := p.(stubParser); !ok {
		t.Error("expected registered stub parser to be returned")
	}
	if name != "stub" {
		t.Errorf("effective name = %q, want %q", name, "stub")
	}

	// A source created with the stub must surface its error as a
	// ParseError naming the backend.
	_, err := NewSource(goregular.TTF, WithParser("stub"))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if perr.Parser != "stub" {
		t.Errorf("Parser = %q, want %q", perr.Parser, "stub")
	}
	if perr.Unwrap() == nil {
		t.Error("expected the backend error to be wrapped")
	}
}

func TestGetParserFallback(t *testing.T) {
	p, name := getParser("no-such-parser")
	if _, ok := p.(*ximageParser); !ok {
		t.Errorf("getParser fallback = %T, want *ximageParser", p)
	}
	if name != defaultParserName {
		t.Errorf("effective name = %q, want %q", name, defaultParserName)
	}
}

// parseWith parses the bundled Go font with a named backend.
func parseWith(t *testing.T, name string) ParsedFont {
	t.Helper()

	parser, _ := getParser(name)
	parsed, err := parser.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return parsed
}

// TestParsedFontContract runs the ParsedFont contract against every
// built-in backend.
func TestParsedFontContract(t *testing.T) {
	for _, name := range []string{"ximage", "gotext"} {
		t.Run(name, func(t *testing.T) {
			parsed := parseWith(t, name)

			if parsed.Name() == "" {
				t.Error("Name() is empty")
			}
			if upem := parsed.UnitsPerEm(); upem <= 0 {
				t.Errorf("UnitsPerEm() = %d, want positive", upem)
			}

			gid := parsed.GlyphIndex('A')
			if gid == 0 {
				t.Fatal("GlyphIndex('A') = 0, want a glyph")
			}
			if missing := parsed.GlyphIndex(''); missing != 0 {
				t.Errorf("GlyphIndex(private use) = %d, want 0", missing)
			}

			const ppem = 32.0
			if adv := parsed.GlyphAdvance(gid, ppem); adv <= 0 || adv > ppem*2 {
				t.Errorf("GlyphAdvance = %f, want within (0, %f]", adv, ppem*2)
			}

			bounds := parsed.GlyphBounds(gid, ppem)
			if bounds.Empty() {
				t.Error("GlyphBounds is empty for 'A'")
			}
			if bounds.MinY >= 0 {
				t.Errorf("GlyphBounds.MinY = %f, want negative (above baseline)", bounds.MinY)
			}

			metrics := parsed.Metrics(ppem)
			if metrics.Ascent <= 0 {
				t.Errorf("Metrics.Ascent = %f, want positive", metrics.Ascent)
			}
			if metrics.Descent >= 0 {
				t.Errorf("Metrics.Descent = %f, want negative", metrics.Descent)
			}
			if metrics.Height() <= 0 {
				t.Errorf("Metrics.Height() = %f, want positive", metrics.Height())
			}
		})
	}
}

func TestRasterize(t *testing.T) {
	for _, name := range []string{"ximage", "gotext"} {
		t.Run(name, func(t *testing.T) {
			parsed := parseWith(t, name)

			const ppem = 32.0
			gid := parsed.GlyphIndex('A')
			glyph := parsed.Rasterize(gid, ppem, HintingFull)
			if glyph == nil {
				t.Fatal("Rasterize returned nil for 'A'")
			}
			if glyph.Mask == nil {
				t.Fatal("expected a mask for 'A'")
			}
			if glyph.Advance <= 0 {
				t.Errorf("Advance = %f, want positive", glyph.Advance)
			}

			// Mask dimensions must match the reported bounds.
			if got, want := glyph.Mask.Bounds().Size(), glyph.Bounds.Size(); got != want {
				t.Errorf("mask size %v != bounds size %v", got, want)
			}
			if glyph.Bounds.Min.Y >= 0 {
				t.Errorf("Bounds.Min.Y = %d, want negative (above baseline)", glyph.Bounds.Min.Y)
			}

			// The mask must contain actual coverage.
			covered := 0
			for _, a := range glyph.Mask.Pix {
				if a > 0 {
					covered++
				}
			}
			if covered == 0 {
				t.Error("mask has no coverage")
			}
		})
	}
}

func TestRasterizeSpace(t *testing.T) {
	for _, name := range []string{"ximage", "gotext"} {
		t.Run(name, func(t *testing.T) {
			parsed := parseWith(t, name)

			gid := parsed.GlyphIndex(' ')
			if gid == 0 {
				t.Fatal("GlyphIndex(' ') = 0, want a glyph")
			}
			glyph := parsed.Rasterize(gid, 32, HintingFull)
			if glyph == nil {
				t.Fatal("Rasterize returned nil for space")
			}
			if glyph.Mask != nil {
				t.Error("expected nil mask for space (no outline)")
			}
			if glyph.Advance <= 0 {
				t.Errorf("Advance = %f, want positive for space", glyph.Advance)
			}
		})
	}
}

// TestRasterizeBackendAgreement checks that both backends place and
// size a glyph consistently. They share the rasterizer, so the masks
// should agree to within a pixel of rounding.
func TestRasterizeBackendAgreement(t *testing.T) {
	ximage := parseWith(t, "ximage")
	gotext := parseWith(t, "gotext")

	const ppem = 48.0
	for _, r := range []rune{'A', 'g', '0'} {
		xg := ximage.Rasterize(ximage.GlyphIndex(r), ppem, HintingNone)
		gg := gotext.Rasterize(gotext.GlyphIndex(r), ppem, HintingNone)
		if xg == nil || gg == nil {
			t.Fatalf("%q: Rasterize returned nil (ximage=%v gotext=%v)", r, xg == nil, gg == nil)
		}

		if dx := xg.Bounds.Dx() - gg.Bounds.Dx(); dx < -1 || dx > 1 {
			t.Errorf("%q: width %d (ximage) vs %d (gotext)", r, xg.Bounds.Dx(), gg.Bounds.Dx())
		}
		if dy := xg.Bounds.Dy() - gg.Bounds.Dy(); dy < -1 || dy > 1 {
			t.Errorf("%q: height %d (ximage) vs %d (gotext)", r, xg.Bounds.Dy(), gg.Bounds.Dy())
		}

		da := xg.Advance - gg.Advance
		if da < -1 || da > 1 {
			t.Errorf("%q: advance %f (ximage) vs %f (gotext)", r, xg.Advance, gg.Advance)
		}
	}
}
