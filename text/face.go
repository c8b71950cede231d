package text

// Face represents a font face at a specific pixel size.
// This is a lightweight object that can be created from a Source.
// Face is safe for concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Advance returns the total advance width of the text in pixels.
	// This is the sum of all glyph advances.
	Advance(text string) float64

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// GlyphBounds returns the bounding box of the rune's glyph at this
	// face's size, relative to the glyph origin on the baseline with the
	// Y axis pointing down. The second result is false when the font has
	// no glyph for the rune.
	GlyphBounds(r rune) (Rect, bool)

	// Source returns the Source this face was created from.
	Source() *Source

	// Size returns the pixel size of this face.
	Size() float64

	// private prevents external implementation
	private()
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *Source
	size   float64
	config faceConfig
}

// Metrics implements Face.Metrics.
func (f *sourceFace) Metrics() Metrics {
	parsed := f.source.Parsed()
	if parsed == nil {
		return Metrics{}
	}
	fontMetrics := parsed.Metrics(f.size)

	// FontMetrics.Descent is negative (below baseline)
	// Metrics.Descent is positive (absolute distance from baseline)
	descent := fontMetrics.Descent
	if descent < 0 {
		descent = -descent
	}

	return Metrics{
		Ascent:    fontMetrics.Ascent,
		Descent:   descent,
		LineGap:   fontMetrics.LineGap,
		XHeight:   fontMetrics.XHeight,
		CapHeight: fontMetrics.CapHeight,
	}
}

// Advance implements Face.Advance.
func (f *sourceFace) Advance(text string) float64 {
	parsed := f.source.Parsed()
	if parsed == nil {
		return 0
	}
	totalAdvance := 0.0

	for _, r := range text {
		gid := parsed.GlyphIndex(r)
		advance := parsed.GlyphAdvance(gid, f.size)
		totalAdvance += advance
	}

	return totalAdvance
}

// HasGlyph implements Face.HasGlyph.
func (f *sourceFace) HasGlyph(r rune) bool {
	parsed := f.source.Parsed()
	if parsed == nil {
		return false
	}
	return parsed.GlyphIndex(r) != 0
}

// GlyphBounds implements Face.GlyphBounds.
func (f *sourceFace) GlyphBounds(r rune) (Rect, bool) {
	parsed := f.source.Parsed()
	if parsed == nil {
		return Rect{}, false
	}
	gid := parsed.GlyphIndex(r)
	if gid == 0 {
		return Rect{}, false
	}
	return parsed.GlyphBounds(gid, f.size), true
}

// Source implements Face.Source.
func (f *sourceFace) Source() *Source {
	return f.source
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

// private implements the Face interface.
func (f *sourceFace) private() {}
