package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/font/gofont/goregular"
)

// testSource parses the bundled Go Regular font.
func testSource(t *testing.T, opts ...SourceOption) *Source {
	t.Helper()

	source, err := NewSource(goregular.TTF, opts...)
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}
	t.Cleanup(func() {
		_ = source.Close()
	})
	return source
}

func TestNewSource(t *testing.T) {
	source := testSource(t)

	if source.name == "" {
		t.Error("expected non-empty font name")
	}

	t.Logf("Font name: %s", source.name)
}

func TestNewSourceEmptyData(t *testing.T) {
	_, err := NewSource(nil)
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewSource(nil) error = %v, want ErrEmptyFontData", err)
	}

	_, err = NewSource([]byte{})
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewSource(empty) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewSourceInvalidData(t *testing.T) {
	_, err := NewSource([]byte("definitely not a font"))
	if err == nil {
		t.Error("expected error for invalid font data")
	}
}

func TestNewSourceDataReuse(t *testing.T) {
	// The data slice is documented as reusable after NewSource.
	data := make([]byte, len(goregular.TTF))
	copy(data, goregular.TTF)

	source, err := NewSource(data)
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}
	defer func() {
		_ = source.Close()
	}()

	// Clobber the caller's slice and check the source still works.
	for i := range data {
		data[i] = 0
	}

	face := source.Face(16)
	if !face.HasGlyph('A') {
		t.Error("expected glyph lookup to survive caller reusing the data slice")
	}
}

func TestNewSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatalf("failed to write font file: %v", err)
	}

	source, err := NewSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewSourceFromFile failed: %v", err)
	}
	defer func() {
		_ = source.Close()
	}()

	if source.name == "" {
		t.Error("expected non-empty font name")
	}
}

func TestNewSourceFromFileMissing(t *testing.T) {
	_, err := NewSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf"))
	if err == nil {
		t.Error("expected error for missing font file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist in chain", err)
	}
}

func TestSourceFace(t *testing.T) {
	source := testSource(t)

	// Create faces at different sizes
	sizes := []float64{12, 16, 24, 32, 48}
	for _, size := range sizes {
		face := source.Face(size)
		if face == nil {
			t.Fatalf("Face(%v) returned nil", size)
		}
		if got := face.Size(); got != size {
			t.Errorf("Face(%v).Size() = %v", size, got)
		}
		if face.Source() != source {
			t.Errorf("Face(%v).Source() != source", size)
		}
	}
}

func TestSourceFaceNilSource(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for Face on nil Source")
		}
	}()

	var source *Source
	source.Face(12)
}

func TestSourceCopyProtection(t *testing.T) {
	source := testSource(t)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic when copying Source")
		} else {
			t.Logf("Copy protection panic (expected): %v", r)
		}
	}()

	// Copy fields manually to avoid the govet copylocks warning.
	// The addr field is wrong after the copy, which is what copyCheck
	// detects.
	var clone Source
	clone.addr = source.addr
	clone.parsed = source.parsed
	clone.name = source.name
	clone.config = source.config
	_ = clone.Name()
}

func TestSourceName(t *testing.T) {
	source := testSource(t)

	name := source.Name()
	if name == "" {
		t.Error("expected non-empty font name")
	}

	t.Logf("Font name: %s", name)
}

func TestSourceClose(t *testing.T) {
	source, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}

	if err := source.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
	if source.Parsed() != nil {
		t.Error("expected parsed font to be nil after Close()")
	}

	// Faces over a closed source degrade to zero values.
	face := source.Face(16)
	if face.HasGlyph('A') {
		t.Error("expected no glyphs after Close()")
	}
}

func TestNewSourceWithParser(t *testing.T) {
	for _, name := range []string{"ximage", "gotext"} {
		t.Run(name, func(t *testing.T) {
			source, err := NewSource(goregular.TTF, WithParser(name))
			if err != nil {
				t.Fatalf("NewSource(%s) failed: %v", name, err)
			}
			defer func() {
				_ = source.Close()
			}()

			if source.Name() == "" {
				t.Errorf("parser %s: expected non-empty font name", name)
			}
			t.Logf("parser %s: font name %q", name, source.Name())
		})
	}
}

func TestNewSourceUnknownParserFallsBack(t *testing.T) {
	source, err := NewSource(goregular.TTF, WithParser("no-such-parser"))
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}
	defer func() {
		_ = source.Close()
	}()

	if source.Name() == "" {
		t.Error("expected fallback parser to produce a usable source")
	}
}

func TestNewSourceCFF(t *testing.T) {
	// Latin Modern ships CFF outlines; both backends must accept them.
	for _, name := range []string{"ximage", "gotext"} {
		t.Run(name, func(t *testing.T) {
			source, err := NewSource(lmroman10regular.TTF, WithParser(name))
			if err != nil {
				t.Fatalf("NewSource(%s) failed: %v", name, err)
			}
			defer func() {
				_ = source.Close()
			}()

			face := source.Face(24)
			if !face.HasGlyph('A') {
				t.Errorf("parser %s: expected glyph for 'A'", name)
			}
			t.Logf("parser %s: font name %q", name, source.Name())
		})
	}
}
