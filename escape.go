package csslex

// eof is returned by the cursor for any read past the end of the input. It
// can't collide with an input byte, which are always in [0, 0xff].
const eof = -1

// https://www.w3.org/TR/css-syntax-3/#whitespace
func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	default:
		return false
	}
}

// https://www.w3.org/TR/css-syntax-3/#newline
//
// The input isn't preprocessed, so CR and FF count as newlines as well.
func isNewline(r rune) bool {
	return r == '\n' || r == '\r' || r == '\f'
}

// https://www.w3.org/TR/css-syntax-3/#digit
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// https://www.w3.org/TR/css-syntax-3/#hex-digit
func isHex(r rune) bool {
	return isDigit(r) || ('A' <= r && r <= 'F') || ('a' <= r && r <= 'f')
}

// https://www.w3.org/TR/css-syntax-3/#letter
func isLetter(r rune) bool {
	return ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z')
}

// https://www.w3.org/TR/css-syntax-3/#non-ascii-code-point
//
// The tokenizer works on bytes, and every byte of a multi-byte UTF-8 sequence
// is >= 0x80, so a non-ASCII code point is consumed one byte at a time.
func isNonASCII(r rune) bool {
	return r >= 0x80
}

// https://www.w3.org/TR/css-syntax-3/#ident-start-code-point
func isNameStart(r rune) bool {
	return isLetter(r) || isNonASCII(r) || r == '_'
}

// https://www.w3.org/TR/css-syntax-3/#ident-code-point
func isName(r rune) bool {
	return isNameStart(r) || isDigit(r) || r == '-'
}

// https://www.w3.org/TR/css-syntax-3/#non-printable-code-point
func isNonPrintable(r rune) bool {
	switch {
	case 0x0 <= r && r <= 0x8:
		return true
	case r == 0xb:
		return true
	case 0xe <= r && r <= 0x1f:
		return true
	case r == 0x7f:
		return true
	}
	return false
}

// https://www.w3.org/TR/css-syntax-3/#check-if-two-code-points-are-a-valid-escape
func isValidEscape(r1, r2 rune) bool {
	if r1 != '\\' {
		return false
	}
	return r2 != eof && !isNewline(r2)
}

// https://www.w3.org/TR/css-syntax-3/#check-if-three-code-points-would-start-an-ident-sequence
func isIdentStart(r1, r2, r3 rune) bool {
	switch {
	case r1 == '-':
		return isNameStart(r2) || r2 == '-' || isValidEscape(r2, r3)
	case isNameStart(r1):
		return true
	case r1 == '\\':
		return isValidEscape(r1, r2)
	}
	return false
}

// https://www.w3.org/TR/css-syntax-3/#check-if-three-code-points-would-start-a-number
func isNumStart(r1, r2, r3 rune) bool {
	if r1 == '+' || r1 == '-' {
		if isDigit(r2) {
			return true
		}
		return r2 == '.' && isDigit(r3)
	}
	if r1 == '.' {
		return isDigit(r2)
	}
	return isDigit(r1)
}
