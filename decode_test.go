package csslex

import (
	"errors"
	"math"
	"testing"
)

func TestUnescape(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{`\41`, "A"},
		{`\41 B`, "AB"},
		{`\41  B`, "A B"},
		{"\\41\r\nB", "AB"},
		{"\\41\tB", "AB"},
		{`\000041x`, "Ax"},
		{`\0000411`, "A1"},
		{`\0a f`, "\nf"},
		{`\0af`, "¯"},
		{`\2603`, "☃"},
		{`\0`, "\uFFFD"},
		{`\d800`, "\uFFFD"},
		{`\DFFF`, "\uFFFD"},
		{`\110000`, "\uFFFD"},
		{`\fffffff`, "\uFFFDf"},
		{`\10FFFF`, "\U0010FFFF"},
		{`\"`, `"`},
		{`\\`, `\`},
		{`a\`, "a"},
		{"a\\\nb", "a\nb"},
		{`\é`, "é"},
		{`\26 \26`, "&&"},
		{`foo\)bar`, "foo)bar"},
		{`u\72l`, "url"},
	}
	for _, test := range tests {
		if got := Unescape(test.s); got != test.want {
			t.Errorf("Unescape(%q) = %q, want %q", test.s, got, test.want)
		}
	}
}

func TestUnescapeNoAllocs(t *testing.T) {
	s := "no-escapes-here"
	allocs := testing.AllocsPerRun(100, func() {
		Unescape(s)
	})
	if allocs != 0 {
		t.Errorf("Unescape without escapes allocated %v times, want 0", allocs)
	}
}

func TestTokenUnescape(t *testing.T) {
	toks := Tokenize(`#\66oo "a\62 c" 10\70x`)
	want := []struct {
		value, unit string
	}{
		{"foo", ""},
		{" ", ""},
		{"abc", ""},
		{" ", ""},
		{"10", "px"},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tok := range toks {
		if got := tok.Unescape(); got != want[i].value {
			t.Errorf("token %d Unescape() = %q, want %q", i, got, want[i].value)
		}
		if got := tok.UnescapeUnit(); got != want[i].unit {
			t.Errorf("token %d UnescapeUnit() = %q, want %q", i, got, want[i].unit)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		s    string
		want float64
	}{
		{"1", 1},
		{"+1", 1},
		{"-1", -1},
		{"007", 7},
		{"1.5", 1.5},
		{".5", 0.5},
		{"-.5", -0.5},
		{"1e+1", 10},
		{"1E-1", 0.1},
		{"-1.5e2", -150},
		{"50%", 50},
		{"10px", 10},
		{"2.5e1em", 25},
	}
	for _, test := range tests {
		toks := Tokenize(test.s)
		if len(toks) != 1 {
			t.Errorf("tokenize %q returned %d tokens", test.s, len(toks))
			continue
		}
		got, err := ParseNumber(toks[0])
		if err != nil {
			t.Errorf("ParseNumber(%v): %v", toks[0], err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseNumber(%v) = %v, want %v", toks[0], got, test.want)
		}
	}
}

func TestParseNumberRange(t *testing.T) {
	got, err := ParseNumber(Tokenize("1e400")[0])
	if err != nil {
		t.Fatalf("ParseNumber: %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("ParseNumber(1e400) = %v, want +Inf", got)
	}
}

func TestParseNumberErr(t *testing.T) {
	for _, s := range []string{" foo", "#1", `"1"`, "+"} {
		toks := Tokenize(s)
		tok := toks[len(toks)-1]
		_, err := ParseNumber(tok)
		if err == nil {
			t.Errorf("expected error parsing number from %v", tok)
			continue
		}
		if !errors.Is(err, ErrInvalidKind) {
			t.Errorf("ParseNumber(%v) got err %v, want ErrInvalidKind", tok, err)
		}
		var perr *Error
		if !errors.As(err, &perr) {
			t.Errorf("ParseNumber(%v) got err %T, want *Error", tok, err)
			continue
		}
		if perr.Pos != tok.Pos {
			t.Errorf("ParseNumber(%v) got error at pos %d, want %d", tok, perr.Pos, tok.Pos)
		}
	}
}
