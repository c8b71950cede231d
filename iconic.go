package iconic

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/dalthviz/iconic/text"
	"github.com/spf13/afero"
)

// CustomPrefix is the reserved prefix for application-registered
// painters. Names under it resolve through SetCustomIcon instead of a
// font charmap, so no font may be loaded with this prefix.
const CustomPrefix = "custom"

// IconFont loads icon fonts and hands out renderable icons.
//
// Each font is registered under a short prefix ("fa", "mdi", ...)
// together with a charmap naming its glyphs; icons are then addressed
// as "prefix.name". State only accumulates: loading a prefix again
// replaces its font and charmap wholesale, nothing is ever pruned.
//
// IconFont is safe for concurrent use. Loads may race with lookups
// and paints from other goroutines; each sees a consistent snapshot.
type IconFont struct {
	mu sync.RWMutex

	// Configuration, read-only after New.
	fs     afero.Fs
	dir    string
	parser string

	charmaps map[string]map[string]rune
	sources  map[string]*text.Source
	painters map[string]Painter

	// painter draws every glyph icon. Custom icons carry their own.
	painter Painter
}

// New creates an empty icon font manager.
func New(opts ...Option) *IconFont {
	cfg := defaultManagerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &IconFont{
		fs:       cfg.fs,
		dir:      cfg.dir,
		parser:   cfg.parser,
		charmaps: make(map[string]map[string]rune),
		sources:  make(map[string]*text.Source),
		painters: make(map[string]Painter),
		painter:  CharPainter{},
	}
}

// LoadFont reads a font file and its charmap from the manager's font
// directory and registers them under prefix. Read and charmap errors
// are fatal to the call and leave the prefix untouched; a font that
// parses but reports no family name is logged as a warning and leaves
// the prefix without a font, with the charmap still loaded.
func (f *IconFont) LoadFont(prefix, fontFile, charmapFile string, opts ...LoadOption) error {
	cfg := loadConfig{dir: f.dir}
	for _, opt := range opts {
		opt(&cfg)
	}

	fontData, err := afero.ReadFile(f.fs, filepath.Join(cfg.dir, fontFile))
	if err != nil {
		return fmt.Errorf("iconic: read font %s: %w", fontFile, err)
	}
	charmapData, err := afero.ReadFile(f.fs, filepath.Join(cfg.dir, charmapFile))
	if err != nil {
		return fmt.Errorf("iconic: read charmap %s: %w", charmapFile, err)
	}
	return f.LoadFontData(prefix, fontData, charmapData)
}

// LoadFontData registers font bytes and charmap bytes under prefix.
// It is the byte-level counterpart of LoadFont for fonts shipped via
// go:embed, such as the charmaps in the fonts subpackage.
func (f *IconFont) LoadFontData(prefix string, font, charmap []byte) error {
	if prefix == CustomPrefix {
		return fmt.Errorf("iconic: prefix %q is reserved for custom painters", CustomPrefix)
	}
	names, err := parseCharmap(charmap)
	if err != nil {
		return err
	}

	var srcOpts []text.SourceOption
	if f.parser != "" {
		srcOpts = append(srcOpts, text.WithParser(f.parser))
	}
	src, err := text.NewSource(font, srcOpts...)

	f.mu.Lock()
	defer f.mu.Unlock()

	// The charmap registers even when the font does not, matching the
	// tolerant lookup contract: names resolve, drawing reports the
	// missing font.
	f.charmaps[prefix] = names
	if err != nil || src.Name() == "" {
		delete(f.sources, prefix)
		Logger().Warn("font reports no usable family, prefix not registered",
			"prefix", prefix)
		return nil
	}
	f.sources[prefix] = src
	Logger().Debug("font registered",
		"prefix", prefix, "family", src.Name(), "glyphs", len(names))
	return nil
}

// Icon resolves "prefix.name" to a renderable Icon.
//
// The name must contain exactly one "." separator; anything else is a
// *BadNameError. A prefix with no loaded charmap is an
// *UnknownPrefixError. A name missing from a loaded charmap, or a
// custom name with no registered painter, degrades to the zero Icon
// with a nil error so a typo'd name renders as blank instead of
// crashing the caller.
func (f *IconFont) Icon(fullname string, opts ...IconOption) (Icon, error) {
	prefix, name, err := splitName(fullname)
	if err != nil {
		return Icon{}, err
	}

	if prefix == CustomPrefix {
		f.mu.RLock()
		p := f.painters[name]
		f.mu.RUnlock()
		if p == nil {
			Logger().Debug("no custom painter registered", "name", name)
			return Icon{}, nil
		}
		return Icon{
			fm:      f,
			painter: p,
			opts:    []*Options{newOptions(CustomPrefix, 0, opts)},
		}, nil
	}

	f.mu.RLock()
	names, ok := f.charmaps[prefix]
	var ch rune
	var found bool
	if ok {
		ch, found = names[name]
	}
	f.mu.RUnlock()

	if !ok {
		return Icon{}, &UnknownPrefixError{Prefix: prefix}
	}
	if !found {
		Logger().Debug("unknown icon name", "prefix", prefix, "name", name)
		return Icon{}, nil
	}
	return Icon{
		fm:      f,
		painter: f.painter,
		opts:    []*Options{newOptions(prefix, ch, opts)},
	}, nil
}

// IconStack resolves several "prefix.name" glyphs into one Icon that
// paints them into the same rect, first name at the bottom.
//
// layers customizes the glyphs: omit it for defaults everywhere, pass
// one option list to apply to every glyph, or one list per glyph for
// positional control. Any other count is a *BadOptionCountError.
// Custom painters cannot be stacked; a "custom" name returns
// ErrStackedCustom. An unknown name anywhere degrades the whole stack
// to the zero Icon, as in Icon.
func (f *IconFont) IconStack(fullnames []string, layers ...[]IconOption) (Icon, error) {
	if len(fullnames) == 0 {
		return Icon{}, nil
	}
	if len(layers) > 1 && len(layers) != len(fullnames) {
		return Icon{}, &BadOptionCountError{Glyphs: len(fullnames), Layers: len(layers)}
	}

	opts := make([]*Options, 0, len(fullnames))

	f.mu.RLock()
	defer f.mu.RUnlock()
	for i, fullname := range fullnames {
		prefix, name, err := splitName(fullname)
		if err != nil {
			return Icon{}, err
		}
		if prefix == CustomPrefix {
			return Icon{}, ErrStackedCustom
		}
		names, ok := f.charmaps[prefix]
		if !ok {
			return Icon{}, &UnknownPrefixError{Prefix: prefix}
		}
		ch, ok := names[name]
		if !ok {
			Logger().Debug("unknown icon name", "prefix", prefix, "name", name)
			return Icon{}, nil
		}

		var layer []IconOption
		switch len(layers) {
		case 0:
		case 1:
			layer = layers[0]
		default:
			layer = layers[i]
		}
		opts = append(opts, newOptions(prefix, ch, layer))
	}
	return Icon{fm: f, painter: f.painter, opts: opts}, nil
}

// SetCustomIcon registers a painter under the "custom" prefix, making
// Icon("custom.<name>") resolve to it. Registering a name again
// replaces the painter; registering nil removes it.
func (f *IconFont) SetCustomIcon(name string, p Painter) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p == nil {
		delete(f.painters, name)
		return
	}
	f.painters[name] = p
}

// Font returns a face for the font registered under prefix, sized in
// pixels. Faces are pure values over the shared source, so callers may
// request the same prefix at many sizes without accumulating state.
func (f *IconFont) Font(prefix string, size float64) (text.Face, error) {
	f.mu.RLock()
	src := f.sources[prefix]
	f.mu.RUnlock()
	if src == nil {
		return nil, &FontNotRegisteredError{Prefix: prefix}
	}
	return src.Face(size), nil
}

// Family returns the family name reported by the font registered
// under prefix.
func (f *IconFont) Family(prefix string) (string, error) {
	f.mu.RLock()
	src := f.sources[prefix]
	f.mu.RUnlock()
	if src == nil {
		return "", &FontNotRegisteredError{Prefix: prefix}
	}
	return src.Name(), nil
}

// Names returns the sorted icon names available under prefix, nil when
// the prefix has no charmap. For the "custom" prefix it lists the
// registered painters.
func (f *IconFont) Names(prefix string) []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if prefix == CustomPrefix {
		keys := make([]string, 0, len(f.painters))
		for name := range f.painters {
			keys = append(keys, name)
		}
		slices.Sort(keys)
		return keys
	}

	names, ok := f.charmaps[prefix]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(names))
	for name := range names {
		keys = append(keys, name)
	}
	slices.Sort(keys)
	return keys
}

// HasPrefix reports whether icons can resolve under prefix: a loaded
// charmap for font prefixes, or at least one registered painter for
// the "custom" prefix.
func (f *IconFont) HasPrefix(prefix string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if prefix == CustomPrefix {
		return len(f.painters) > 0
	}
	_, ok := f.charmaps[prefix]
	return ok
}

// splitName splits "prefix.name" into its two parts.
func splitName(fullname string) (prefix, name string, err error) {
	parts := strings.Split(fullname, ".")
	if len(parts) != 2 {
		return "", "", &BadNameError{Name: fullname}
	}
	return parts[0], parts[1], nil
}
