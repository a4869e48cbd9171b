package csslex

import (
	"strings"
	"testing"
	"testing/iotest"
)

func TestNormalizeString(t *testing.T) {
	tests := []struct {
		s, want string
	}{
		{"", ""},
		{"a { }", "a { }"},
		{"a\r\nb", "a\nb"},
		{"a\rb", "a\nb"},
		{"a\r\r\nb", "a\n\nb"},
		{"a\fb", "a\nb"},
		{"a\x00b", "a�b"},
		{"a\r", "a\n"},
		{"é\r\n", "é\n"},
	}
	for _, test := range tests {
		if got := NormalizeString(test.s); got != test.want {
			t.Errorf("NormalizeString(%q) = %q, want %q", test.s, got, test.want)
		}
	}
}

func TestReadAll(t *testing.T) {
	in := "a {\r\n  color: red;\r\n}\r\n/*\x00*/\r"
	want := "a {\n  color: red;\n}\n/*�*/\n"

	got, err := ReadAll(iotest.OneByteReader(strings.NewReader(in)))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if got != want {
		t.Errorf("ReadAll() = %q, want %q", got, want)
	}

	// Large inputs span several transformer buffers.
	big := strings.Repeat("a\r\n\x00", 4096)
	got, err = ReadAll(strings.NewReader(big))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if want := strings.Repeat("a\n�", 4096); got != want {
		t.Errorf("ReadAll() on large input returned %d bytes, want %d", len(got), len(want))
	}
}

func TestNormalizedTokens(t *testing.T) {
	toks := Tokenize(NormalizeString("a\r\n\fb"))
	if len(toks) != 3 || toks[1].Value != "\n\n" {
		t.Errorf("Tokenize(NormalizeString()) = %v, want newlines collapsed to LF", toks)
	}
}
