// Package fonts bundles charmaps for common icon fonts.
//
// Charmaps pair with font binaries supplied by the application, either
// as files in the manager's font directory or embedded alongside the
// application:
//
//	//go:embed fontawesome-webfont.ttf
//	var fontAwesomeTTF []byte
//
//	fm := iconic.New()
//	err := fm.LoadFontData(fonts.FontAwesomePrefix, fontAwesomeTTF, fonts.FontAwesome)
//
// Font binaries themselves are not bundled here; icon fonts are large
// and applications usually ship exactly one.
package fonts

import _ "embed"

// FontAwesomePrefix is the conventional prefix for FontAwesome icons.
const FontAwesomePrefix = "fa"

// FontAwesome is the charmap for FontAwesome 4.7, mapping icon names
// to hexadecimal codepoints.
//
//go:embed fontawesome-charmap.json
var FontAwesome []byte
