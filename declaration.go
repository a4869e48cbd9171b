package csslex

import (
	"errors"
	"fmt"
	"strings"
)

// Declaration is a single "name: value" pair of a declaration list, such as
// the body of a style rule or a style attribute.
//
// https://www.w3.org/TR/css-syntax-3/#declaration
type Declaration struct {
	// Pos is the position of the declaration's name in the input.
	Pos int
	// Name is the unescaped property name.
	Name string
	// Value holds the component tokens of the value with surrounding
	// whitespace and any "!important" removed.
	Value []Token
	// RawValue is the input text spanned by Value, including any comments.
	RawValue  string
	Important bool
}

type parseErr struct {
	msg string
	pos int
}

func (p *parseErr) Error() string {
	return fmt.Sprintf("%s at position %d", p.msg, p.pos)
}

type parser struct {
	s string
	z *Tokenizer
	// peekQueue holds tokens that have been peeked but not consumed. These are
	// consumed before the tokenizer is consulted.
	peekQueue *queue
}

func newParser(s string) *parser {
	return &parser{s: s, z: NewTokenizer(s), peekQueue: newQueue(3)}
}

func (p *parser) peek() (Token, bool) {
	return p.peekN(0)
}

func (p *parser) peekN(n int) (Token, bool) {
	for n >= p.peekQueue.len() {
		t, ok := p.z.Next()
		if !ok {
			return Token{Pos: len(p.s)}, false
		}
		p.peekQueue.push(t)
	}
	return p.peekQueue.get(n), true
}

func (p *parser) next() (Token, bool) {
	if p.peekQueue.len() > 0 {
		return p.peekQueue.pop(), true
	}
	t, ok := p.z.Next()
	if !ok {
		return Token{Pos: len(p.s)}, false
	}
	return t, true
}

func (p *parser) errorf(t Token, msg string, v ...interface{}) error {
	return &parseErr{fmt.Sprintf(msg, v...), t.Pos}
}

func (p *parser) skipWhitespace() bool {
	seen := false
	for {
		t, ok := p.peek()
		if !ok || t.Kind != Whitespace {
			return seen
		}
		seen = true
		p.next()
	}
}

// ParseDeclarations parses a list of declarations separated by semicolons,
// for example the value of an HTML style attribute.
//
//	color: red; margin: 0 auto !important
//
// ParseDeclarations reports the first error hit when parsing.
//
// https://www.w3.org/TR/css-syntax-3/#consume-list-of-declarations
func ParseDeclarations(s string) ([]Declaration, error) {
	p := newParser(s)
	decls, err := p.declarations()
	if err != nil {
		var perr *parseErr
		if errors.As(err, &perr) {
			return nil, &Error{Pos: perr.pos, Msg: perr.msg}
		}
		return nil, err
	}
	return decls, nil
}

func (p *parser) declarations() ([]Declaration, error) {
	var decls []Declaration
	for {
		t, ok := p.peek()
		if !ok {
			return decls, nil
		}
		if t.Kind == Whitespace || t.Kind == Semicolon {
			p.next()
			continue
		}
		d, err := p.declaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, *d)
	}
}

// https://www.w3.org/TR/css-syntax-3/#consume-declaration
func (p *parser) declaration() (*Declaration, error) {
	name, _ := p.next()
	if name.Kind != Identifier {
		return nil, p.errorf(name, "expected identifier")
	}
	d := &Declaration{Pos: name.Pos, Name: name.Unescape()}

	p.skipWhitespace()
	t, ok := p.next()
	if !ok || t.Kind != Colon {
		return nil, p.errorf(t, "expected ':'")
	}
	p.skipWhitespace()

	value, err := p.any(Semicolon)
	if err != nil {
		return nil, err
	}
	p.next() // ';' or nothing at EOF

	value = trimWhitespace(value)
	if n := importantSuffix(value); n > 0 {
		d.Important = true
		value = trimWhitespace(value[:len(value)-n])
	}
	if len(value) > 0 {
		d.Value = value
		d.RawValue = p.s[value[0].Pos:value[len(value)-1].End()]
	}
	return d, nil
}

// any consumes component values until a top level token of kind until or the
// end of the input. The until token itself isn't consumed.
//
// https://drafts.csswg.org/css-syntax-3/#typedef-any-value
func (p *parser) any(until Kind) ([]Token, error) {
	var (
		tokens      []Token
		wantClosing []Kind
	)
	for {
		t, ok := p.peek()
		if !ok {
			if len(wantClosing) != 0 {
				return nil, p.errorf(t, "unexpected eof attempting to match '%s'", wantClosing[len(wantClosing)-1])
			}
			return tokens, nil
		}
		if len(wantClosing) == 0 && t.Kind == until {
			return tokens, nil
		}
		p.next()

		switch t.Kind {
		case LeftSquareBracket:
			wantClosing = append(wantClosing, RightSquareBracket)
		case LeftCurlyBracket:
			wantClosing = append(wantClosing, RightCurlyBracket)
		case LeftParenthesis, Function:
			wantClosing = append(wantClosing, RightParenthesis)
		case RightSquareBracket, RightCurlyBracket, RightParenthesis:
			if len(wantClosing) == 0 || wantClosing[len(wantClosing)-1] != t.Kind {
				return nil, p.errorf(t, "unmatched '%s'", t.Value)
			}
			wantClosing = wantClosing[:len(wantClosing)-1]
		}
		tokens = append(tokens, t)
	}
}

func trimWhitespace(toks []Token) []Token {
	for len(toks) > 0 && toks[0].Kind == Whitespace {
		toks = toks[1:]
	}
	for len(toks) > 0 && toks[len(toks)-1].Kind == Whitespace {
		toks = toks[:len(toks)-1]
	}
	return toks
}

// importantSuffix returns the number of trailing tokens making up
// "!important", or 0 if the value doesn't end with it.
func importantSuffix(toks []Token) int {
	n := len(toks)
	if n < 2 {
		return 0
	}
	last := toks[n-1]
	if last.Kind != Identifier || !strings.EqualFold(last.Unescape(), "important") {
		return 0
	}
	i := n - 2
	for i >= 0 && toks[i].Kind == Whitespace {
		i--
	}
	if i < 0 || !toks[i].isDelim("!") {
		return 0
	}
	return n - i
}
