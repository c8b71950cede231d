package iconic

import (
	"github.com/spf13/afero"
)

// Built-in option defaults, merged into every constructed Options value.
var defaultColor = Hex("#323232")

// defaultScaleFactor leaves a margin around the glyph inside its rect.
const defaultScaleFactor = 0.9

// Options is the resolved option set captured by one icon layer.
// It is built once per Icon call by applying IconOption values over the
// package defaults, and is immutable afterwards: the same Options value
// may be consulted concurrently by independent renders.
type Options struct {
	prefix      string
	char        rune
	color       RGBA
	scaleFactor float64

	// Per-state overrides. A nil color or zero char means "not set":
	// resolution falls back to the base values above.
	colorDisabled *RGBA
	colorActive   *RGBA
	colorSelected *RGBA
	charDisabled  rune
	charActive    rune
	charSelected  rune
}

// newOptions builds an Options value for one glyph layer.
func newOptions(prefix string, char rune, opts []IconOption) *Options {
	o := &Options{
		prefix:      prefix,
		char:        char,
		color:       defaultColor,
		scaleFactor: defaultScaleFactor,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Prefix returns the font prefix this layer draws from.
func (o *Options) Prefix() string {
	return o.prefix
}

// ScaleFactor returns the glyph scale relative to the icon rect height.
func (o *Options) ScaleFactor() float64 {
	return o.scaleFactor
}

// Color returns the pen color for the given state. State-specific
// overrides win when set; otherwise the base color applies.
func (o *Options) Color(state State) RGBA {
	switch state {
	case StateDisabled:
		if o.colorDisabled != nil {
			return *o.colorDisabled
		}
	case StateActive:
		if o.colorActive != nil {
			return *o.colorActive
		}
	case StateSelected:
		if o.colorSelected != nil {
			return *o.colorSelected
		}
	}
	return o.color
}

// Char returns the glyph for the given state. State-specific overrides
// win when set; otherwise the base glyph applies.
func (o *Options) Char(state State) rune {
	switch state {
	case StateDisabled:
		if o.charDisabled != 0 {
			return o.charDisabled
		}
	case StateActive:
		if o.charActive != 0 {
			return o.charActive
		}
	case StateSelected:
		if o.charSelected != 0 {
			return o.charSelected
		}
	}
	return o.char
}

// IconOption customizes one icon layer at Icon or IconStack time.
type IconOption func(*Options)

// WithColor sets the base color for every state without an override.
func WithColor(c RGBA) IconOption {
	return func(o *Options) {
		o.color = c
	}
}

// WithScaleFactor sets the glyph scale relative to the icon rect height.
// The default is 0.9.
func WithScaleFactor(f float64) IconOption {
	return func(o *Options) {
		o.scaleFactor = f
	}
}

// WithChar replaces the glyph resolved from the charmap.
func WithChar(r rune) IconOption {
	return func(o *Options) {
		o.char = r
	}
}

// WithPrefix draws the layer with another loaded font's glyphs while
// keeping the name resolution of the original prefix.
func WithPrefix(prefix string) IconOption {
	return func(o *Options) {
		o.prefix = prefix
	}
}

// WithColorDisabled sets the color used in StateDisabled.
func WithColorDisabled(c RGBA) IconOption {
	return func(o *Options) {
		o.colorDisabled = &c
	}
}

// WithColorActive sets the color used in StateActive.
func WithColorActive(c RGBA) IconOption {
	return func(o *Options) {
		o.colorActive = &c
	}
}

// WithColorSelected sets the color used in StateSelected.
func WithColorSelected(c RGBA) IconOption {
	return func(o *Options) {
		o.colorSelected = &c
	}
}

// WithCharDisabled sets the glyph used in StateDisabled.
func WithCharDisabled(r rune) IconOption {
	return func(o *Options) {
		o.charDisabled = r
	}
}

// WithCharActive sets the glyph used in StateActive.
func WithCharActive(r rune) IconOption {
	return func(o *Options) {
		o.charActive = r
	}
}

// WithCharSelected sets the glyph used in StateSelected.
func WithCharSelected(r rune) IconOption {
	return func(o *Options) {
		o.charSelected = r
	}
}

// Option configures an IconFont during creation.
type Option func(*managerConfig)

// managerConfig holds configuration for IconFont creation.
type managerConfig struct {
	fs     afero.Fs
	dir    string
	parser string
}

// defaultManagerConfig returns the default manager configuration.
func defaultManagerConfig() managerConfig {
	return managerConfig{
		fs:  afero.NewOsFs(),
		dir: "fonts",
	}
}

// WithFS sets the filesystem LoadFont reads from.
// The default is the operating system filesystem; tests and embedded
// deployments can supply an afero in-memory filesystem instead.
func WithFS(fsys afero.Fs) Option {
	return func(c *managerConfig) {
		c.fs = fsys
	}
}

// WithFontDirectory sets the directory LoadFont resolves file names
// against. The default is "fonts".
func WithFontDirectory(dir string) Option {
	return func(c *managerConfig) {
		c.dir = dir
	}
}

// WithParser selects the font parser backend used for every font this
// manager loads. See text.WithParser for the available backends.
func WithParser(name string) Option {
	return func(c *managerConfig) {
		c.parser = name
	}
}

// LoadOption customizes a single LoadFont call.
type LoadOption func(*loadConfig)

// loadConfig holds configuration for one LoadFont call.
type loadConfig struct {
	dir string
}

// WithDirectory overrides the manager's font directory for one
// LoadFont call.
func WithDirectory(dir string) LoadOption {
	return func(c *loadConfig) {
		c.dir = dir
	}
}
