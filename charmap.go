package iconic

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
)

// parseCharmap decodes a charmap document: a flat JSON object mapping
// icon names to hexadecimal codepoint strings, e.g.
//
//	{"home": "f015", "star": "f005"}
//
// Values may carry an optional "0x" prefix and use either hex case.
func parseCharmap(data []byte) (map[string]rune, error) {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &CharmapError{Err: err}
	}

	m := make(map[string]rune, len(raw))
	for name, code := range raw {
		r, err := parseCodepoint(code)
		if err != nil {
			return nil, &CharmapError{Entry: name, Err: err}
		}
		m[name] = r
	}

	return m, nil
}

// parseCodepoint converts a hexadecimal codepoint string to a rune.
func parseCodepoint(s string) (rune, error) {
	h := s
	if strings.HasPrefix(h, "0x") || strings.HasPrefix(h, "0X") {
		h = h[2:]
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parse codepoint %q: %w", s, err)
	}
	if v > unicode.MaxRune || utf16.IsSurrogate(rune(v)) {
		return 0, fmt.Errorf("codepoint %q outside the valid range", s)
	}

	return rune(v), nil
}
