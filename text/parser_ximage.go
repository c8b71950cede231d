package text

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
type ximageParsedFont struct {
	font *opentype.Font
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil && buf != "" {
		return buf
	}
	return ""
}

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFull); err == nil && buf != "" {
		return buf
	}
	return ""
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(glyphIndex uint16, ppem float64) float64 {
	var buf sfnt.Buffer

	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(glyphIndex), fixed.Int26_6(ppem*64), font.HintingFull)
	if err != nil {
		return 0
	}

	return fixedToFloat64(advance)
}

// GlyphBounds implements ParsedFont.GlyphBounds.
func (f *ximageParsedFont) GlyphBounds(glyphIndex uint16, ppem float64) Rect {
	var buf sfnt.Buffer

	bounds, _, err := f.font.GlyphBounds(&buf, sfnt.GlyphIndex(glyphIndex), fixed.Int26_6(ppem*64), font.HintingFull)
	if err != nil {
		return Rect{}
	}

	return Rect{
		MinX: fixedToFloat64(bounds.Min.X),
		MinY: fixedToFloat64(bounds.Min.Y),
		MaxX: fixedToFloat64(bounds.Max.X),
		MaxY: fixedToFloat64(bounds.Max.Y),
	}
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(ppem float64) FontMetrics {
	var buf sfnt.Buffer

	metrics, err := f.font.Metrics(&buf, fixed.Int26_6(ppem*64), font.HintingFull)
	if err != nil {
		return FontMetrics{}
	}

	// font.Metrics reports Descent as a positive distance below the
	// baseline; FontMetrics stores it negative.
	return FontMetrics{
		Ascent:    fixedToFloat64(metrics.Ascent),
		Descent:   -fixedToFloat64(metrics.Descent),
		LineGap:   fixedToFloat64(metrics.Height) - fixedToFloat64(metrics.Ascent) - fixedToFloat64(metrics.Descent),
		XHeight:   fixedToFloat64(metrics.XHeight),
		CapHeight: fixedToFloat64(metrics.CapHeight),
	}
}

// Rasterize implements ParsedFont.Rasterize.
// Outline segments from sfnt are unhinted and already scaled to ppem,
// with the Y axis pointing down.
func (f *ximageParsedFont) Rasterize(glyphIndex uint16, ppem float64, hinting Hinting) *GlyphImage {
	var buf sfnt.Buffer

	segs, err := f.font.LoadGlyph(&buf, sfnt.GlyphIndex(glyphIndex), fixed.Int26_6(ppem*64), nil)
	if err != nil {
		return nil
	}

	advance := f.GlyphAdvance(glyphIndex, ppem)
	if len(segs) == 0 {
		return &GlyphImage{Advance: advance}
	}

	rect := segmentHull(segs)
	if rect.Empty() {
		return &GlyphImage{Advance: advance}
	}

	gp := newGlyphPath(rect)
	for _, seg := range segs {
		// Args are fixed.Int26_6: 1<<6 == 64.
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			gp.MoveTo(
				float32(seg.Args[0].X)/64,
				float32(seg.Args[0].Y)/64,
			)
		case sfnt.SegmentOpLineTo:
			gp.LineTo(
				float32(seg.Args[0].X)/64,
				float32(seg.Args[0].Y)/64,
			)
		case sfnt.SegmentOpQuadTo:
			gp.QuadTo(
				float32(seg.Args[0].X)/64,
				float32(seg.Args[0].Y)/64,
				float32(seg.Args[1].X)/64,
				float32(seg.Args[1].Y)/64,
			)
		case sfnt.SegmentOpCubeTo:
			gp.CubeTo(
				float32(seg.Args[0].X)/64,
				float32(seg.Args[0].Y)/64,
				float32(seg.Args[1].X)/64,
				float32(seg.Args[1].Y)/64,
				float32(seg.Args[2].X)/64,
				float32(seg.Args[2].Y)/64,
			)
		}
	}

	return &GlyphImage{
		Mask:    gp.mask(),
		Bounds:  rect,
		Advance: advance,
	}
}

// segmentHull returns the pixel rectangle enclosing all segment points.
// Bézier curves stay within the convex hull of their control points, so
// the hull always contains the rendered outline.
func segmentHull(segs []sfnt.Segment) image.Rectangle {
	first := true
	var minX, minY, maxX, maxY fixed.Int26_6

	add := func(p fixed.Point26_6) {
		if first {
			minX, minY, maxX, maxY = p.X, p.Y, p.X, p.Y
			first = false
			return
		}
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo, sfnt.SegmentOpLineTo:
			add(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			add(seg.Args[0])
			add(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			add(seg.Args[0])
			add(seg.Args[1])
			add(seg.Args[2])
		}
	}

	if first {
		return image.Rectangle{}
	}
	return image.Rect(minX.Floor(), minY.Floor(), maxX.Ceil(), maxY.Ceil())
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
