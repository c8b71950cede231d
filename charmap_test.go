package iconic

import (
	"errors"
	"testing"
)

func TestParseCharmap(t *testing.T) {
	data := []byte(`{"home": "f015", "star": "f005", "bang": "21"}`)

	m, err := parseCharmap(data)
	if err != nil {
		t.Fatalf("parseCharmap failed: %v", err)
	}

	want := map[string]rune{
		"home": 0xf015,
		"star": 0xf005,
		"bang": '!',
	}
	if len(m) != len(want) {
		t.Fatalf("len = %d, want %d", len(m), len(want))
	}
	for name, r := range want {
		if m[name] != r {
			t.Errorf("%s = %U, want %U", name, m[name], r)
		}
	}
}

func TestParseCharmapCodepointFormats(t *testing.T) {
	tests := []struct {
		name string
		code string
		want rune
	}{
		{"bare lower", "f015", 0xf015},
		{"bare upper", "F015", 0xf015},
		{"0x prefix", "0xf015", 0xf015},
		{"0X prefix", "0XF015", 0xf015},
		{"ascii", "41", 'A'},
		{"supplementary plane", "1f600", 0x1f600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := parseCharmap([]byte(`{"icon": "` + tt.code + `"}`))
			if err != nil {
				t.Fatalf("parseCharmap failed: %v", err)
			}
			if m["icon"] != tt.want {
				t.Errorf("icon = %U, want %U", m["icon"], tt.want)
			}
		})
	}
}

func TestParseCharmapErrors(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantEntry string
	}{
		{"malformed json", `{"home": `, ""},
		{"wrong shape", `["f015"]`, ""},
		{"non-hex codepoint", `{"home": "xyz"}`, "home"},
		{"empty codepoint", `{"home": ""}`, "home"},
		{"out of range", `{"home": "110000"}`, "home"},
		{"surrogate", `{"home": "d800"}`, "home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCharmap([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}

			var cerr *CharmapError
			if !errors.As(err, &cerr) {
				t.Fatalf("error type = %T, want *CharmapError", err)
			}
			if cerr.Entry != tt.wantEntry {
				t.Errorf("Entry = %q, want %q", cerr.Entry, tt.wantEntry)
			}
			if tt.wantEntry != "" && cerr.Unwrap() == nil {
				t.Error("expected a wrapped cause")
			}
		})
	}
}

func TestParseCharmapEmpty(t *testing.T) {
	m, err := parseCharmap([]byte(`{}`))
	if err != nil {
		t.Fatalf("parseCharmap failed: %v", err)
	}
	if len(m) != 0 {
		t.Errorf("len = %d, want 0", len(m))
	}
}
