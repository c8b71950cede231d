package iconic

import (
	"image"
	"image/color"

	"github.com/dalthviz/iconic/text"
)

// Context is the drawing surface handed to painters.
// It maintains a pixmap, the current pen color, the current font face,
// and a saved-state stack so painters can restore their caller's
// configuration after drawing.
type Context struct {
	width  int
	height int
	pixmap *Pixmap

	// Current state
	color RGBA
	face  text.Face

	// State stack for Push/Pop
	stack []drawState
}

// drawState is one saved entry of the context's Push/Pop stack.
type drawState struct {
	color RGBA
	face  text.Face
}

// ContextOption configures a Context during creation.
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	pixmap *Pixmap
}

// defaultContextOptions returns the default context options.
func defaultContextOptions() contextOptions {
	return contextOptions{
		pixmap: nil, // Will be created if nil
	}
}

// WithPixmap sets a custom pixmap for the Context.
// The pixmap dimensions should match the Context dimensions.
//
// Example:
//
//	pm := iconic.NewPixmap(64, 64)
//	dc := iconic.NewContext(64, 64, iconic.WithPixmap(pm))
func WithPixmap(pm *Pixmap) ContextOption {
	return func(o *contextOptions) {
		o.pixmap = pm
	}
}

// NewContext creates a new drawing context with the given dimensions.
// The context starts with a fully transparent pixmap, a black pen,
// and no font face.
func NewContext(width, height int, opts ...ContextOption) *Context {
	options := defaultContextOptions()
	for _, opt := range opts {
		opt(&options)
	}

	pixmap := options.pixmap
	if pixmap == nil {
		pixmap = NewPixmap(width, height)
	}

	return &Context{
		width:  width,
		height: height,
		pixmap: pixmap,
		color:  Black,
		stack:  make([]drawState, 0, 4),
	}
}

// NewContextForImage creates a context for drawing on a copy of an
// existing image.
func NewContextForImage(img image.Image) *Context {
	bounds := img.Bounds()
	pm := FromImage(img)
	return NewContext(bounds.Dx(), bounds.Dy(), WithPixmap(pm))
}

// Width returns the width of the context.
func (c *Context) Width() int {
	return c.width
}

// Height returns the height of the context.
func (c *Context) Height() int {
	return c.height
}

// Pixmap returns the context's pixel buffer.
func (c *Context) Pixmap() *Pixmap {
	return c.pixmap
}

// Image returns the context's image.
func (c *Context) Image() image.Image {
	return c.pixmap.ToImage()
}

// SavePNG saves the context to a PNG file.
func (c *Context) SavePNG(path string) error {
	return c.pixmap.SavePNG(path)
}

// Clear fills the entire context with transparency.
func (c *Context) Clear() {
	c.pixmap.Clear(Transparent)
}

// ClearWithColor fills the entire context with a specific color.
func (c *Context) ClearWithColor(col RGBA) {
	c.pixmap.Clear(col)
}

// SetColor sets the current pen color.
func (c *Context) SetColor(col color.Color) {
	c.color = FromColor(col)
}

// SetRGB sets the current pen color using RGB values (0-1).
func (c *Context) SetRGB(r, g, b float64) {
	c.color = RGB(r, g, b)
}

// SetRGBA sets the current pen color using RGBA values (0-1).
func (c *Context) SetRGBA(r, g, b, a float64) {
	c.color = RGBA{R: r, G: g, B: b, A: a}
}

// SetHexColor sets the current pen color using a hex string.
func (c *Context) SetHexColor(hex string) {
	c.color = Hex(hex)
}

// Color returns the current pen color.
func (c *Context) Color() RGBA {
	return c.color
}

// SetFont sets the current font face for glyph drawing.
//
// Example:
//
//	source, _ := text.NewSourceFromFile("font.ttf")
//	face := source.Face(12.0)
//	dc.SetFont(face)
func (c *Context) SetFont(face text.Face) {
	c.face = face
}

// Font returns the current font face.
// Returns nil if no font has been set.
func (c *Context) Font() text.Face {
	return c.face
}

// Push saves the current state (pen color and font face).
func (c *Context) Push() {
	c.stack = append(c.stack, drawState{
		color: c.color,
		face:  c.face,
	})
}

// Pop restores the last saved state.
func (c *Context) Pop() {
	if len(c.stack) == 0 {
		return
	}

	s := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.color = s.color
	c.face = s.face
}

// DrawString draws text at position (x, y) where y is the baseline.
// If no font has been set with SetFont, this function does nothing.
//
// The baseline is the line on which most letters sit. Characters with
// descenders (like 'g', 'j', 'p', 'q', 'y') extend below the baseline.
func (c *Context) DrawString(s string, x, y float64) {
	if c.face == nil {
		return
	}
	text.Draw(c.pixmap, s, c.face, x, y, c.color)
}

// DrawStringAnchored draws text with an anchor point.
// The anchor point is specified by ax and ay, which are in the range [0, 1].
//
//	(0, 0) = top-left
//	(0.5, 0.5) = center
//	(1, 1) = bottom-right
//
// The text is positioned so that the anchor point is at (x, y).
func (c *Context) DrawStringAnchored(s string, x, y, ax, ay float64) {
	if c.face == nil {
		return
	}

	w, h := text.Measure(s, c.face)

	x -= w * ax
	y += h * ay // y is baseline, so we adjust upward for top alignment

	text.Draw(c.pixmap, s, c.face, x, y, c.color)
}

// MeasureString returns the dimensions of text in pixels.
// Returns (width, height) where:
//   - width is the horizontal advance of the text
//   - height is the line height (ascent + descent + line gap)
//
// If no font has been set, returns (0, 0).
func (c *Context) MeasureString(s string) (w, h float64) {
	if c.face == nil {
		return 0, 0
	}
	return text.Measure(s, c.face)
}

// DrawRune draws a single glyph with its origin at (x, y) on the baseline.
// If no font has been set, this function does nothing.
func (c *Context) DrawRune(r rune, x, y float64) {
	if c.face == nil {
		return
	}
	text.DrawRune(c.pixmap, r, c.face, x, y, c.color)
}

// DrawRuneAnchored draws a single glyph so that the anchor point of its
// bounding box is at (x, y). The anchor is in the range [0, 1] per axis:
// (0.5, 0.5) places the glyph's visual center at (x, y).
//
// Unlike DrawStringAnchored, which anchors by advance and line height,
// this positions by the glyph's exact outline bounds. Icon glyphs are
// often drawn far from the typographic baseline, so bounds-based
// centering is the only way to truly center them.
func (c *Context) DrawRuneAnchored(r rune, x, y, ax, ay float64) {
	if c.face == nil {
		return
	}

	b, ok := c.face.GlyphBounds(r)
	if !ok {
		return
	}

	penX := x - b.MinX - ax*b.Width()
	penY := y - b.MinY - ay*b.Height()

	text.DrawRune(c.pixmap, r, c.face, penX, penY, c.color)
}
