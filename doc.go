// Package iconic renders icon fonts to images.
//
// # Overview
//
// iconic loads icon fonts (FontAwesome, Material Design Icons, and the
// like) together with a JSON charmap naming each glyph, and turns
// names such as "fa.home" into renderable icons. Icons carry per-state
// colors and glyphs, can stack several glyphs into one image, and can
// delegate to application-registered painters for fully custom
// artwork.
//
// # Quick Start
//
//	import "github.com/dalthviz/iconic"
//
//	fm := iconic.New()
//	if err := fm.LoadFont("fa", "fontawesome-webfont.ttf", "fontawesome-charmap.json"); err != nil {
//		log.Fatal(err)
//	}
//
//	icon, err := fm.Icon("fa.home", iconic.WithColor(iconic.RGB(0.2, 0.4, 0.8)))
//	if err != nil {
//		log.Fatal(err)
//	}
//	pixmap, _ := icon.Image(64, 64, iconic.StateNormal)
//	pixmap.SavePNG("home.png")
//
// # Visual States
//
// Every icon renders in one of four states (StateNormal,
// StateDisabled, StateActive, StateSelected). Options such as
// WithColorDisabled or WithCharActive override the base color or
// glyph for a single state; states without an override fall back to
// the base values.
//
// # Stacked Icons
//
// IconStack layers several glyphs into one icon, first name at the
// bottom:
//
//	icon, err := fm.IconStack(
//		[]string{"fa.circle", "fa.home"},
//		[]iconic.IconOption{iconic.WithColor(iconic.RGB(0.9, 0.9, 0.9))},
//		[]iconic.IconOption{iconic.WithScaleFactor(0.5)},
//	)
//
// # Custom Painters
//
// Anything implementing Painter can be registered under the reserved
// "custom" prefix and addressed like a glyph icon:
//
//	fm.SetCustomIcon("logo", logoPainter{})
//	icon, err := fm.Icon("custom.logo")
//
// # Lookup Tolerance
//
// Unknown icon names degrade to the zero Icon, which paints nothing,
// so a typo'd name in user configuration renders blank instead of
// crashing the UI. Malformed names and unloaded prefixes are errors.
//
// # Font Backends
//
// Fonts are parsed and rasterized by the text subpackage, which ships
// two interchangeable backends ("ximage" and "gotext"); New's
// WithParser selects one for every font the manager loads.
package iconic

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
