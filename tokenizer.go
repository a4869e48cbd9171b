package csslex

import "strings"

// Tokenizer implements tokenization of CSS as described by CSS Syntax Level 3.
//
// https://www.w3.org/TR/css-syntax-3/#tokenization
//
// The tokenizer never copies its input. It tracks an open region starting at
// start and a lookahead distance off from that start. Lookahead moves off
// forward, a reconsume moves it back, and committing a token slices the region
// and starts a new one at start+off.
//
// A Tokenizer must not be used from multiple goroutines.
type Tokenizer struct {
	s     string
	start int
	off   int
}

// NewTokenizer returns a tokenizer reading from s.
func NewTokenizer(s string) *Tokenizer {
	return &Tokenizer{s: s}
}

// Tokenize returns every token of s.
func Tokenize(s string) []Token {
	var toks []Token
	z := NewTokenizer(s)
	for {
		t, ok := z.Next()
		if !ok {
			return toks
		}
		toks = append(toks, t)
	}
}

func (z *Tokenizer) index() int {
	return z.start + z.off
}

// current returns the next code point to be consumed.
func (z *Tokenizer) current() rune {
	return z.peekN(0)
}

func (z *Tokenizer) peek() rune {
	return z.peekN(1)
}

func (z *Tokenizer) peekN(n int) rune {
	i := z.index() + n
	if len(z.s) <= i {
		return eof
	}
	return rune(z.s[i])
}

func (z *Tokenizer) consume() {
	if z.index() < len(z.s) {
		z.off++
	}
}

func (z *Tokenizer) consumeN(n int) {
	z.off += n
	if z.index() > len(z.s) {
		z.off = len(z.s) - z.start
	}
}

// reconsume is the equivalent of "reconsume the current input code point".
func (z *Tokenizer) reconsume() {
	if z.off > 0 {
		z.off--
	}
}

// commit closes the open region, returning it, and starts a new one.
func (z *Tokenizer) commit() string {
	s := z.s[z.start:z.index()]
	z.start += z.off
	z.off = 0
	return s
}

func (z *Tokenizer) token(kind Kind, value string, flag Flag) Token {
	pos := z.start
	return Token{Kind: kind, Flag: flag, Value: value, Raw: z.commit(), Pos: pos}
}

// emit commits the open region as a token whose value is the region itself.
func (z *Tokenizer) emit(kind Kind) Token {
	pos := z.start
	raw := z.commit()
	return Token{Kind: kind, Value: raw, Raw: raw, Pos: pos}
}

// singleByte holds the tokens that are always exactly one code point.
var singleByte = [128]Kind{
	'(': LeftParenthesis,
	')': RightParenthesis,
	'[': LeftSquareBracket,
	']': RightSquareBracket,
	'{': LeftCurlyBracket,
	'}': RightCurlyBracket,
	',': Comma,
	':': Colon,
	';': Semicolon,
}

// Next returns the next token of the input. It returns false once the input
// is exhausted, and on every call after that.
//
// https://www.w3.org/TR/css-syntax-3/#consume-token
func (z *Tokenizer) Next() (Token, bool) {
	z.skipComments()

	r := z.current()
	if r == eof {
		return Token{}, false
	}
	if 0 <= r && r < rune(len(singleByte)) && singleByte[r] != 0 {
		z.consume()
		return z.emit(singleByte[r]), true
	}

	switch {
	case isWhitespace(r):
		for isWhitespace(z.current()) {
			z.consume()
		}
		return z.emit(Whitespace), true
	case isDigit(r):
		return z.consumeNumericToken(), true
	case isNameStart(r):
		return z.consumeIdentLikeToken(), true
	}

	switch r {
	case '"', '\'':
		return z.consumeStringToken(r), true
	case '#':
		return z.consumeHash(), true
	case '+', '.':
		if isNumStart(r, z.peek(), z.peekN(2)) {
			return z.consumeNumericToken(), true
		}
	case '-':
		if isNumStart(r, z.peek(), z.peekN(2)) {
			return z.consumeNumericToken(), true
		}
		if z.peek() == '-' && z.peekN(2) == '>' {
			z.consumeN(3)
			return z.emit(CDC), true
		}
		if isIdentStart(r, z.peek(), z.peekN(2)) {
			return z.consumeIdentLikeToken(), true
		}
	case '<':
		return z.consumeLessThan(), true
	case '@':
		z.consume()
		if isIdentStart(z.current(), z.peek(), z.peekN(2)) {
			name := z.consumeName()
			return z.token(AtKeyword, name, FlagNone), true
		}
		return z.emit(Delimiter), true
	case '\\':
		if isValidEscape(r, z.peek()) {
			return z.consumeIdentLikeToken(), true
		}
	}
	z.consume()
	return z.emit(Delimiter), true
}

// skipComments discards any comments at the current position. An
// unterminated comment runs to the end of the input.
//
// https://www.w3.org/TR/css-syntax-3/#consume-comment
func (z *Tokenizer) skipComments() {
	for z.current() == '/' && z.peek() == '*' {
		rest := z.s[z.index()+2:]
		end := strings.Index(rest, "*/")
		if end < 0 {
			z.consumeN(2 + len(rest))
		} else {
			z.consumeN(2 + end + 2)
		}
		z.commit()
	}
}

// consumeLessThan emits a <CDO-token> for "<!--" or a '<' delimiter. A
// partial match of "!--" is unwound so that only the '<' is consumed.
func (z *Tokenizer) consumeLessThan() Token {
	z.consume()
	n := 0
	for _, want := range "!--" {
		if z.current() != want {
			break
		}
		z.consume()
		n++
	}
	if n == 3 {
		return z.emit(CDO)
	}
	for ; n > 0; n-- {
		z.reconsume()
	}
	return z.emit(Delimiter)
}

// consumeHash handles a '#' code point, emitting a <hash-token> or a
// <delim-token>.
func (z *Tokenizer) consumeHash() Token {
	z.consume()
	if !isName(z.current()) && !isValidEscape(z.current(), z.peek()) {
		return z.emit(Delimiter)
	}
	flag := FlagUnrestricted
	if isIdentStart(z.current(), z.peek(), z.peekN(2)) {
		flag = FlagID
	}
	name := z.consumeName()
	return z.token(Hash, name, flag)
}

// https://www.w3.org/TR/css-syntax-3/#consume-a-string-token
func (z *Tokenizer) consumeStringToken(quote rune) Token {
	z.consume()
	begin := z.index()
	for {
		r := z.current()
		switch {
		case r == quote:
			value := z.s[begin:z.index()]
			z.consume()
			return z.token(String, value, FlagNone)
		case r == eof:
			return z.token(String, z.s[begin:z.index()], FlagNone)
		case isNewline(r):
			// The newline is left for the next token.
			return z.token(BadString, "", FlagNone)
		case r == '\\':
			next := z.peek()
			switch {
			case next == eof:
				value := z.s[begin:z.index()]
				z.consume()
				return z.token(String, value, FlagNone)
			case isNewline(next):
				z.consumeN(2)
				if next == '\r' && z.current() == '\n' {
					z.consume()
				}
			default:
				z.consumeEscape()
			}
		default:
			z.consume()
		}
	}
}

// consumeEscape advances past a valid escape starting at the current '\'. The
// escape isn't resolved, see Unescape.
//
// https://www.w3.org/TR/css-syntax-3/#consume-escaped-code-point
func (z *Tokenizer) consumeEscape() {
	z.consume()
	if !isHex(z.current()) {
		z.consume()
		return
	}
	for n := 0; n < 6 && isHex(z.current()); n++ {
		z.consume()
	}
	switch r := z.current(); {
	case r == '\r' && z.peek() == '\n':
		z.consumeN(2)
	case isWhitespace(r):
		z.consume()
	}
}

// https://www.w3.org/TR/css-syntax-3/#consume-name
func (z *Tokenizer) consumeName() string {
	begin := z.index()
	for {
		r := z.current()
		if isName(r) {
			z.consume()
			continue
		}
		if isValidEscape(r, z.peek()) {
			z.consumeEscape()
			continue
		}
		return z.s[begin:z.index()]
	}
}

// https://www.w3.org/TR/css-syntax-3/#consume-a-numeric-token
func (z *Tokenizer) consumeNumericToken() Token {
	num, flag := z.consumeNumber()

	if isIdentStart(z.current(), z.peek(), z.peekN(2)) {
		unit := z.consumeName()
		t := z.token(Dimension, num, flag)
		t.Unit = unit
		return t
	}

	if z.current() == '%' {
		z.consume()
		return z.token(Percentage, num, flag)
	}
	return z.token(Number, num, flag)
}

// https://www.w3.org/TR/css-syntax-3/#consume-a-number
func (z *Tokenizer) consumeNumber() (string, Flag) {
	begin := z.index()
	flag := FlagInteger

	if r := z.current(); r == '+' || r == '-' {
		z.consume()
	}
	z.consumeDigits()

	if z.current() == '.' && isDigit(z.peek()) {
		z.consumeN(2)
		z.consumeDigits()
		flag = FlagNumber
	}

	if r := z.current(); r == 'e' || r == 'E' {
		n := 1
		if sign := z.peek(); sign == '+' || sign == '-' {
			n = 2
		}
		if isDigit(z.peekN(n)) {
			z.consumeN(n + 1)
			z.consumeDigits()
			flag = FlagNumber
		}
	}
	return z.s[begin:z.index()], flag
}

func (z *Tokenizer) consumeDigits() {
	for isDigit(z.current()) {
		z.consume()
	}
}

// https://www.w3.org/TR/css-syntax-3/#consume-an-ident-like-token
func (z *Tokenizer) consumeIdentLikeToken() Token {
	name := z.consumeName()

	if isURLName(name) && z.current() == '(' {
		z.consume()
		if z.startsQuotedURL() {
			return z.token(Function, name, FlagNone)
		}
		return z.consumeURLToken()
	}

	if z.current() == '(' {
		z.consume()
		return z.token(Function, name, FlagNone)
	}
	return z.token(Identifier, name, FlagNone)
}

func isURLName(name string) bool {
	if strings.IndexByte(name, '\\') >= 0 {
		name = Unescape(name)
	}
	return strings.EqualFold(name, "url")
}

// startsQuotedURL reports whether the text after "url(" is a quote, possibly
// preceded by whitespace. Nothing is consumed: the whitespace and the string
// are tokenized normally after the <function-token>.
func (z *Tokenizer) startsQuotedURL() bool {
	n := 0
	for isWhitespace(z.peekN(n)) && isWhitespace(z.peekN(n+1)) {
		n++
	}
	r := z.peekN(n)
	if isWhitespace(r) {
		r = z.peekN(n + 1)
	}
	return r == '"' || r == '\''
}

// https://www.w3.org/TR/css-syntax-3/#consume-a-url-token
func (z *Tokenizer) consumeURLToken() Token {
	for isWhitespace(z.current()) {
		z.consume()
	}
	begin := z.index()

	for {
		r := z.current()
		switch {
		case r == ')', r == eof:
			value := z.s[begin:z.index()]
			z.consume()
			return z.token(URL, value, FlagNone)
		case isWhitespace(r):
			end := z.index()
			for isWhitespace(z.current()) {
				z.consume()
			}
			if r := z.current(); r == ')' || r == eof {
				z.consume()
				return z.token(URL, z.s[begin:end], FlagNone)
			}
			return z.consumeBadURL()
		case r == '"', r == '\'', r == '(', isNonPrintable(r):
			return z.consumeBadURL()
		case r == '\\':
			if !isValidEscape(r, z.peek()) {
				return z.consumeBadURL()
			}
			z.consumeEscape()
		default:
			z.consume()
		}
	}
}

// consumeBadURL searches for the next unescaped ')' and emits a
// <bad-url-token> covering everything up to and including it.
//
// https://www.w3.org/TR/css-syntax-3/#consume-remnants-of-bad-url
func (z *Tokenizer) consumeBadURL() Token {
	rest := z.s[z.index():]
	i := 0
	for {
		j := strings.IndexByte(rest[i:], ')')
		if j < 0 {
			z.consumeN(len(rest))
			return z.token(BadURL, "", FlagNone)
		}
		i += j
		if !isEscaped(rest, i) {
			z.consumeN(i + 1)
			return z.token(BadURL, "", FlagNone)
		}
		i++
	}
}

// isEscaped reports whether s[i] is preceded by an odd number of backslashes.
func isEscaped(s string, i int) bool {
	n := 0
	for ; i > 0 && s[i-1] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}
