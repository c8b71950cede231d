package iconic

import (
	"errors"
	"fmt"
)

// Sentinel errors for the iconic package.
var (
	// ErrStackedCustom is returned by IconStack when one of the names
	// uses the reserved "custom" prefix. Custom painters draw whole
	// icons and have no glyph to resolve, so they cannot be layered.
	ErrStackedCustom = errors.New("iconic: custom icons cannot be stacked")
)

// BadNameError is returned when an icon name is not of the form
// "prefix.name" with exactly one separator.
type BadNameError struct {
	Name string
}

func (e *BadNameError) Error() string {
	return fmt.Sprintf("iconic: invalid icon name %q: want exactly one '.' separator", e.Name)
}

// UnknownPrefixError is returned when an icon name references a prefix
// that no LoadFont call has registered.
type UnknownPrefixError struct {
	Prefix string
}

func (e *UnknownPrefixError) Error() string {
	return fmt.Sprintf("iconic: unknown font prefix %q: call LoadFont first", e.Prefix)
}

// FontNotRegisteredError is returned when a font handle is requested
// for a prefix whose font never registered successfully. The charmap
// for the prefix may still be loaded; only the font itself is missing.
type FontNotRegisteredError struct {
	Prefix string
}

func (e *FontNotRegisteredError) Error() string {
	return fmt.Sprintf("iconic: no font registered for prefix %q", e.Prefix)
}

// BadOptionCountError is returned by IconStack when the number of
// option layers matches neither one (broadcast to every glyph) nor the
// number of glyphs.
type BadOptionCountError struct {
	Glyphs int
	Layers int
}

func (e *BadOptionCountError) Error() string {
	return fmt.Sprintf("iconic: %d option layers for %d glyphs: want 0, 1, or %d", e.Layers, e.Glyphs, e.Glyphs)
}

// CharmapError is returned when a charmap file cannot be decoded.
// Entry names the offending mapping when a single entry is at fault;
// it is empty for document-level failures.
type CharmapError struct {
	Entry string
	Err   error
}

func (e *CharmapError) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("iconic: invalid charmap entry %q: %v", e.Entry, e.Err)
	}
	return fmt.Sprintf("iconic: invalid charmap: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *CharmapError) Unwrap() error {
	return e.Err
}
