package text

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
type gotextParser struct{}

// Parse implements FontParser.Parse.
// ParseTTF accepts both TrueType and CFF outlines despite the name.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &gotextParsedFont{face: face}, nil
}

// gotextParsedFont implements ParsedFont using go-text/typesetting.
// Glyph metrics and outlines come back in font units with the Y axis
// pointing up; every method scales by ppem/upem and flips Y.
type gotextParsedFont struct {
	face *font.Face
}

// Name implements ParsedFont.Name.
func (f *gotextParsedFont) Name() string {
	return f.face.Describe().Family
}

// FullName implements ParsedFont.FullName.
// go-text exposes only the family name, so this matches Name.
func (f *gotextParsedFont) FullName() string {
	return f.face.Describe().Family
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	return int(f.face.Upem())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *gotextParsedFont) GlyphIndex(r rune) uint16 {
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return uint16(gid)
}

// scale returns the font-unit to pixel conversion factor for ppem.
func (f *gotextParsedFont) scale(ppem float64) float64 {
	upem := float64(f.face.Upem())
	if upem == 0 {
		return 0
	}
	return ppem / upem
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *gotextParsedFont) GlyphAdvance(glyphIndex uint16, ppem float64) float64 {
	return float64(f.face.HorizontalAdvance(font.GID(glyphIndex))) * f.scale(ppem)
}

// GlyphBounds implements ParsedFont.GlyphBounds.
func (f *gotextParsedFont) GlyphBounds(glyphIndex uint16, ppem float64) Rect {
	ext, ok := f.face.GlyphExtents(font.GID(glyphIndex))
	if !ok {
		return Rect{}
	}
	s := f.scale(ppem)

	// YBearing is the top of the glyph above the baseline (positive up)
	// and Height extends downward from there (negative).
	return Rect{
		MinX: float64(ext.XBearing) * s,
		MinY: -float64(ext.YBearing) * s,
		MaxX: float64(ext.XBearing+ext.Width) * s,
		MaxY: -float64(ext.YBearing+ext.Height) * s,
	}
}

// Metrics implements ParsedFont.Metrics.
func (f *gotextParsedFont) Metrics(ppem float64) FontMetrics {
	ext, ok := f.face.FontHExtents()
	if !ok {
		return FontMetrics{}
	}
	s := f.scale(ppem)

	// The descender is typically negative already; normalize fonts that
	// report it positive.
	descent := float64(ext.Descender) * s
	if descent > 0 {
		descent = -descent
	}

	return FontMetrics{
		Ascent:    float64(ext.Ascender) * s,
		Descent:   descent,
		LineGap:   float64(ext.LineGap) * s,
		XHeight:   f.topBearing('x', s),
		CapHeight: f.topBearing('H', s),
	}
}

// topBearing returns the scaled top bearing of the glyph for r, or 0 if
// the font has no such glyph. Used to derive x-height and cap height,
// which go-text does not expose directly.
func (f *gotextParsedFont) topBearing(r rune, scale float64) float64 {
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	ext, ok := f.face.GlyphExtents(gid)
	if !ok {
		return 0
	}
	return float64(ext.YBearing) * scale
}

// Rasterize implements ParsedFont.Rasterize.
// Only outline glyphs are supported; bitmap and SVG glyphs return nil.
func (f *gotextParsedFont) Rasterize(glyphIndex uint16, ppem float64, hinting Hinting) *GlyphImage {
	data := f.face.GlyphData(font.GID(glyphIndex))
	outline, ok := data.(font.GlyphOutline)
	if !ok {
		return nil
	}

	advance := f.GlyphAdvance(glyphIndex, ppem)
	if len(outline.Segments) == 0 {
		return &GlyphImage{Advance: advance}
	}

	s := float32(f.scale(ppem))
	rect := outlineHull(outline.Segments, s)
	if rect.Empty() {
		return &GlyphImage{Advance: advance}
	}

	gp := newGlyphPath(rect)
	for _, seg := range outline.Segments {
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			gp.MoveTo(seg.Args[0].X*s, -seg.Args[0].Y*s)
		case opentype.SegmentOpLineTo:
			gp.LineTo(seg.Args[0].X*s, -seg.Args[0].Y*s)
		case opentype.SegmentOpQuadTo:
			gp.QuadTo(
				seg.Args[0].X*s, -seg.Args[0].Y*s,
				seg.Args[1].X*s, -seg.Args[1].Y*s,
			)
		case opentype.SegmentOpCubeTo:
			gp.CubeTo(
				seg.Args[0].X*s, -seg.Args[0].Y*s,
				seg.Args[1].X*s, -seg.Args[1].Y*s,
				seg.Args[2].X*s, -seg.Args[2].Y*s,
			)
		}
	}

	return &GlyphImage{
		Mask:    gp.mask(),
		Bounds:  rect,
		Advance: advance,
	}
}

// outlineHull returns the pixel rectangle enclosing all segment points
// after scaling to pixels and flipping to a downward Y axis.
func outlineHull(segs []opentype.Segment, scale float32) image.Rectangle {
	first := true
	var minX, minY, maxX, maxY float64

	add := func(px, py float32) {
		x := float64(px * scale)
		y := float64(-py * scale)
		if first {
			minX, minY, maxX, maxY = x, y, x, y
			first = false
			return
		}
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}

	for _, seg := range segs {
		switch seg.Op {
		case opentype.SegmentOpMoveTo, opentype.SegmentOpLineTo:
			add(seg.Args[0].X, seg.Args[0].Y)
		case opentype.SegmentOpQuadTo:
			add(seg.Args[0].X, seg.Args[0].Y)
			add(seg.Args[1].X, seg.Args[1].Y)
		case opentype.SegmentOpCubeTo:
			add(seg.Args[0].X, seg.Args[0].Y)
			add(seg.Args[1].X, seg.Args[1].Y)
			add(seg.Args[2].X, seg.Args[2].Y)
		}
	}

	if first {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}
