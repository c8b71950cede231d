package text

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// GlyphImage represents a rasterized glyph.
// This contains the alpha mask and positioning information.
type GlyphImage struct {
	// Mask is the alpha mask (grayscale image).
	// This represents the glyph's shape. Nil for glyphs without an
	// outline, such as the space character.
	Mask *image.Alpha

	// Bounds relative to glyph origin.
	// The origin is on the baseline at the left edge, Y axis down.
	Bounds image.Rectangle

	// Advance width in pixels.
	// This is how far the cursor should move after drawing this glyph.
	Advance float64
}

// glyphPath accumulates a glyph outline into a coverage rasterizer.
// Coordinates passed to the path methods are in glyph space (pixels,
// origin on the baseline, Y axis down); the path translates them into
// the mask rectangle. Contours are closed automatically: MoveTo closes
// any open contour, and mask closes the last one. Closing an already
// closed contour adds a zero-length edge and no coverage.
type glyphPath struct {
	rast       *vector.Rasterizer
	offX, offY float32
	rect       image.Rectangle
	open       bool
}

// newGlyphPath creates a path for a glyph whose outline fits in rect.
func newGlyphPath(rect image.Rectangle) *glyphPath {
	r := vector.NewRasterizer(rect.Dx(), rect.Dy())
	r.DrawOp = draw.Src
	return &glyphPath{
		rast: r,
		offX: float32(-rect.Min.X),
		offY: float32(-rect.Min.Y),
		rect: rect,
	}
}

func (p *glyphPath) MoveTo(x, y float32) {
	if p.open {
		p.rast.ClosePath()
	}
	p.rast.MoveTo(x+p.offX, y+p.offY)
	p.open = true
}

func (p *glyphPath) LineTo(x, y float32) {
	p.rast.LineTo(x+p.offX, y+p.offY)
}

func (p *glyphPath) QuadTo(bx, by, cx, cy float32) {
	p.rast.QuadTo(bx+p.offX, by+p.offY, cx+p.offX, cy+p.offY)
}

func (p *glyphPath) CubeTo(bx, by, cx, cy, dx, dy float32) {
	p.rast.CubeTo(bx+p.offX, by+p.offY, cx+p.offX, cy+p.offY, dx+p.offX, dy+p.offY)
}

// mask rasterizes the accumulated path and returns the alpha mask.
// The mask's bounds equal the rectangle passed to newGlyphPath.
func (p *glyphPath) mask() *image.Alpha {
	if p.open {
		p.rast.ClosePath()
		p.open = false
	}
	m := image.NewAlpha(p.rect)
	p.rast.Draw(m, p.rect, image.Opaque, image.Point{})
	return m
}
