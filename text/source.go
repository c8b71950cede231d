package text

import (
	"fmt"
	"os"
	"sync"
)

// Source represents a loaded font file.
// One Source can create multiple Face instances at different sizes.
// Source is heavyweight and should be shared across the application.
//
// Source is safe for concurrent use.
// Source must not be copied after creation (enforced by copyCheck).
type Source struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the Source itself.
	addr *Source

	// parsed is the abstracted font (pluggable backend).
	parsed ParsedFont

	// Metadata
	name string

	// Mutex protects internal state around Close.
	mu sync.RWMutex

	// Configuration
	config sourceConfig
}

// NewSource creates a Source from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
//
// Options can be used to configure the parser backend.
func NewSource(data []byte, opts ...SourceOption) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Copy before parsing: parsers keep references into the slice.
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parser, parserName := getParser(config.parserName)
	parsed, err := parser.Parse(dataCopy)
	if err != nil {
		return nil, &ParseError{Parser: parserName, Err: err}
	}

	s := &Source{
		parsed: parsed,
		config: config,
	}
	s.addr = s // Self-reference for copy detection

	s.name = extractFontName(parsed)

	return s, nil
}

// NewSourceFromFile loads a Source from a font file path.
func NewSourceFromFile(path string, opts ...SourceOption) (*Source, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewSource(data, opts...)
}

// Face creates a Face at the specified pixel size.
// Multiple faces can be created from the same Source.
//
// Face is a lightweight object; creating one performs no rasterization.
// Panics if s is nil (e.g. when NewSourceFromFile error was ignored).
func (s *Source) Face(size float64, opts ...FaceOption) Face {
	if s == nil {
		panic("text: Source is nil — did you check the error from NewSourceFromFile?")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &sourceFace{
		source: s,
		size:   size,
		config: config,
	}
}

// Name returns the font family name.
// Returns an empty string if the font carries no usable name records.
func (s *Source) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the parsed font for advanced operations.
// This is primarily used by Face implementations.
func (s *Source) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// Close releases resources associated with the Source.
// All faces created from this source become invalid after Close.
func (s *Source) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.parsed = nil

	return nil
}

// copyCheck panics if Source was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *Source) copyCheck() {
	if s.addr != s {
		panic("text: Source must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
// An empty result means the font has no usable name records; callers
// decide how to treat such fonts.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}

	// Fall back to the full name.
	return parsed.FullName()
}
