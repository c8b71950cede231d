// Package text provides font loading and glyph rendering for iconic.
//
// The font pipeline follows a separation of concerns:
//
//   - Source: Heavyweight, shared font resource (parses TTF/OTF files)
//   - Face: Lightweight font instance at a specific pixel size
//   - FontParser: Pluggable font parsing backend (default: golang.org/x/image)
//
// # Example usage
//
//	// Load font (do once, share across application)
//	source, err := text.NewSourceFromFile("fontawesome-webfont.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	// Create face at a specific size (lightweight)
//	face := source.Face(24)
//
//	// Draw a glyph onto any draw.Image
//	text.DrawRune(dst, '', face, 10, 30, color.Black)
//
// # Pluggable Parser Backend
//
// The font parsing is abstracted through the FontParser interface.
// Two backends are built in: "ximage" (golang.org/x/image/font/sfnt,
// the default) and "gotext" (github.com/go-text/typesetting). Custom
// parsers can be registered for alternative implementations:
//
//	// Register a custom parser
//	text.RegisterParser("myparser", myCustomParser)
//
//	// Use the custom parser
//	source, err := text.NewSource(data, text.WithParser("myparser"))
//
// Both built-in backends rasterize glyph outlines into alpha masks with
// golang.org/x/image/vector, so switching backends does not change the
// rendering model.
package text
