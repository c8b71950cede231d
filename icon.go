package iconic

import "image"

// Icon is a renderable handle to one icon. It captures the painter and
// the resolved options at creation time, so later font registrations
// on the owning IconFont do not change an existing Icon's layers.
//
// The zero Icon is the null icon: IsSet reports false and rendering
// draws nothing. Lookups that fail by name return it rather than an
// error, mirroring how icon themes degrade to a blank image.
type Icon struct {
	fm      *IconFont
	painter Painter
	opts    []*Options
}

// IsSet reports whether the icon has something to draw.
func (i Icon) IsSet() bool {
	return i.painter != nil
}

// Paint draws the icon into rect on dc for the given state. Painting
// the null icon is a no-op.
func (i Icon) Paint(dc *Context, rect image.Rectangle, state State) error {
	if i.painter == nil {
		return nil
	}
	return i.painter.Paint(i.fm, dc, rect, state, i.opts)
}

// Image renders the icon at the given pixel size on a transparent
// background. The null icon renders to a fully transparent pixmap.
func (i Icon) Image(width, height int, state State) (*Pixmap, error) {
	pixmap := NewPixmap(width, height)
	if i.painter == nil {
		return pixmap, nil
	}
	dc := NewContext(width, height, WithPixmap(pixmap))
	if err := i.Paint(dc, image.Rect(0, 0, width, height), state); err != nil {
		return nil, err
	}
	return pixmap, nil
}
