package iconic

import (
	"image"
	"math"
)

// Painter renders an icon into a rectangle of a drawing context.
//
// The built-in CharPainter draws font glyphs; applications register
// their own implementations under the "custom" prefix with
// IconFont.SetCustomIcon to draw arbitrary artwork through the same
// Icon API.
type Painter interface {
	// Paint draws the icon into rect on dc. The options slice carries
	// one entry per glyph layer; custom painters receive a single
	// entry describing the requested render.
	Paint(fm *IconFont, dc *Context, rect image.Rectangle, state State, opts []*Options) error
}

// CharPainter is the default Painter. It draws each option layer as a
// single font glyph centered in the icon rect, back to front.
type CharPainter struct{}

// Paint implements Painter.
func (CharPainter) Paint(fm *IconFont, dc *Context, rect image.Rectangle, state State, opts []*Options) error {
	for _, o := range opts {
		if err := paintLayer(fm, dc, rect, state, o); err != nil {
			return err
		}
	}
	return nil
}

// paintLayer draws one glyph layer. Pen color and font are restored
// afterwards so layers cannot leak state into each other.
func paintLayer(fm *IconFont, dc *Context, rect image.Rectangle, state State, o *Options) error {
	dc.Push()
	defer dc.Pop()

	// Glyph size follows the rect height, not the width, matching how
	// icon glyphs are designed around a square em box.
	drawSize := math.Round(float64(rect.Dy()) * o.ScaleFactor())
	if drawSize <= 0 {
		return nil
	}

	face, err := fm.Font(o.Prefix(), drawSize)
	if err != nil {
		return err
	}

	col := o.Color(state)
	dc.SetRGBA(col.R, col.G, col.B, col.A)
	dc.SetFont(face)

	cx := float64(rect.Min.X) + float64(rect.Dx())/2
	cy := float64(rect.Min.Y) + float64(rect.Dy())/2
	dc.DrawRuneAnchored(o.Char(state), cx, cy, 0.5, 0.5)
	return nil
}
