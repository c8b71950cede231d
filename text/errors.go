package text

import (
	"errors"
	"fmt"
)

// ErrEmptyFontData is returned when font data is empty.
var ErrEmptyFontData = errors.New("text: empty font data")

// ParseError is returned when a parser backend rejects font data.
// Parser names the backend that failed (see RegisterParser).
type ParseError struct {
	Parser string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("text: parser %q: %v", e.Parser, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
