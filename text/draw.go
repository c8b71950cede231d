package text

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Draw renders text to a destination image.
// Position (x, y) is the baseline origin.
// The face must have been created by this package.
func Draw(dst draw.Image, text string, face Face, x, y float64, col color.Color) {
	if text == "" || face == nil {
		return
	}

	pen := x
	for _, r := range text {
		pen += DrawRune(dst, r, face, pen, y, col)
	}
}

// DrawRune renders a single glyph with its origin at (x, y) on the
// baseline and returns the glyph's advance width. Runes without a glyph
// in the face's font draw nothing and return 0.
func DrawRune(dst draw.Image, r rune, face Face, x, y float64, col color.Color) float64 {
	if face == nil {
		return 0
	}

	sf, ok := face.(*sourceFace)
	if !ok {
		return 0
	}

	parsed := sf.source.Parsed()
	if parsed == nil {
		return 0
	}
	gid := parsed.GlyphIndex(r)
	if gid == 0 {
		return 0
	}

	glyph := parsed.Rasterize(gid, sf.size, sf.config.hinting)
	if glyph == nil {
		return 0
	}

	if glyph.Mask != nil {
		origin := image.Pt(int(math.Round(x)), int(math.Round(y)))
		target := glyph.Bounds.Add(origin)
		draw.DrawMask(dst, target, image.NewUniform(col), image.Point{}, glyph.Mask, glyph.Bounds.Min, draw.Over)
	}

	return glyph.Advance
}

// Measure returns the dimensions of text.
// Width is the horizontal advance, height is the font's line height.
func Measure(text string, face Face) (width, height float64) {
	if text == "" || face == nil {
		return 0, 0
	}

	// Get advance width
	width = face.Advance(text)

	// Get line height from metrics
	metrics := face.Metrics()
	height = metrics.LineHeight()

	return width, height
}
