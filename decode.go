package csslex

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Unescape resolves the escape sequences of a raw token value. Values without
// a backslash are returned unchanged and without allocating.
//
// https://www.w3.org/TR/css-syntax-3/#consume-escaped-code-point
func Unescape(s string) string {
	i := strings.IndexByte(s, '\\')
	if i < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i >= 0 {
		b.WriteString(s[:i])
		s = s[i+1:]
		if s == "" {
			break
		}

		n := 0
		for n < len(s) && n < 6 && isHex(rune(s[n])) {
			n++
		}
		if n == 0 {
			// Not hex, the next code point is taken literally.
			_, size := utf8.DecodeRuneInString(s)
			b.WriteString(s[:size])
			s = s[size:]
		} else {
			cp, _ := strconv.ParseUint(s[:n], 16, 32)
			b.WriteRune(escapedRune(cp))
			s = s[n:]
			switch {
			case strings.HasPrefix(s, "\r\n"):
				s = s[2:]
			case s != "" && isWhitespace(rune(s[0])):
				s = s[1:]
			}
		}
		i = strings.IndexByte(s, '\\')
	}
	b.WriteString(s)
	return b.String()
}

func escapedRune(cp uint64) rune {
	if cp == 0 || cp > utf8.MaxRune || (0xd800 <= cp && cp <= 0xdfff) {
		return utf8.RuneError
	}
	return rune(cp)
}

// Unescape returns the token's value with escape sequences resolved.
func (t Token) Unescape() string {
	return Unescape(t.Value)
}

// UnescapeUnit returns the unit of a dimension token with escape sequences
// resolved.
func (t Token) UnescapeUnit() string {
	return Unescape(t.Unit)
}

// ParseNumber parses the numeric value of a <number-token>,
// <percentage-token>, or <dimension-token>. Any other token kind results in an
// error wrapping ErrInvalidKind.
func ParseNumber(t Token) (float64, error) {
	switch t.Kind {
	case Number, Percentage, Dimension:
	default:
		return 0, &Error{Pos: t.Pos, Msg: "cannot parse number from " + t.Kind.String(), Err: ErrInvalidKind}
	}
	f, err := strconv.ParseFloat(t.Value, 64)
	if errors.Is(err, strconv.ErrRange) {
		// Out of range values saturate to ±Inf or 0.
		return f, nil
	}
	if err != nil {
		return 0, &Error{Pos: t.Pos, Msg: "invalid number " + strconv.Quote(t.Value), Err: err}
	}
	return f, nil
}
