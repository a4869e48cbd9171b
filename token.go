package csslex

import "fmt"

// Kind identifies the type of a token.
type Kind int

// Create a shorter type alias so links to csswg.org don't wrap.
type k = Kind

const (
	_                  k = iota
	Identifier           // https://drafts.csswg.org/css-syntax-3/#typedef-ident-token
	Function             // https://drafts.csswg.org/css-syntax-3/#typedef-function-token
	AtKeyword            // https://drafts.csswg.org/css-syntax-3/#typedef-at-keyword-token
	Hash                 // https://drafts.csswg.org/css-syntax-3/#typedef-hash-token
	String               // https://drafts.csswg.org/css-syntax-3/#typedef-string-token
	BadString            // https://drafts.csswg.org/css-syntax-3/#typedef-bad-string-token
	URL                  // https://drafts.csswg.org/css-syntax-3/#typedef-url-token
	BadURL               // https://drafts.csswg.org/css-syntax-3/#typedef-bad-url-token
	Delimiter            // https://drafts.csswg.org/css-syntax-3/#typedef-delim-token
	Number               // https://drafts.csswg.org/css-syntax-3/#typedef-number-token
	Percentage           // https://drafts.csswg.org/css-syntax-3/#typedef-percentage-token
	Dimension            // https://drafts.csswg.org/css-syntax-3/#typedef-dimension-token
	Whitespace           // https://drafts.csswg.org/css-syntax-3/#typedef-whitespace-token
	CDO                  // https://drafts.csswg.org/css-syntax-3/#typedef-cdo-token
	CDC                  // https://drafts.csswg.org/css-syntax-3/#typedef-cdc-token
	Colon                // https://drafts.csswg.org/css-syntax-3/#typedef-colon-token
	Semicolon            // https://drafts.csswg.org/css-syntax-3/#typedef-semicolon-token
	Comma                // https://drafts.csswg.org/css-syntax-3/#typedef-comma-token
	LeftSquareBracket    // https://drafts.csswg.org/css-syntax-3/#tokendef-open-square
	RightSquareBracket   // https://drafts.csswg.org/css-syntax-3/#tokendef-close-square
	LeftParenthesis      // https://drafts.csswg.org/css-syntax-3/#tokendef-open-paren
	RightParenthesis     // https://drafts.csswg.org/css-syntax-3/#tokendef-close-paren
	LeftCurlyBracket     // https://drafts.csswg.org/css-syntax-3/#tokendef-open-curly
	RightCurlyBracket    // https://drafts.csswg.org/css-syntax-3/#tokendef-close-curly
)

var kindString = map[Kind]string{
	Identifier:         "<ident-token>",
	Function:           "<function-token>",
	AtKeyword:          "<at-keyword-token>",
	Hash:               "<hash-token>",
	String:             "<string-token>",
	BadString:          "<bad-string-token>",
	URL:                "<url-token>",
	BadURL:             "<bad-url-token>",
	Delimiter:          "<delim-token>",
	Number:             "<number-token>",
	Percentage:         "<percentage-token>",
	Dimension:          "<dimension-token>",
	Whitespace:         "<whitespace-token>",
	CDO:                "<CDO-token>",
	CDC:                "<CDC-token>",
	Colon:              "<colon-token>",
	Semicolon:          "<semicolon-token>",
	Comma:              "<comma-token>",
	LeftSquareBracket:  "<[-token>",
	RightSquareBracket: "<]-token>",
	LeftParenthesis:    "<(-token>",
	RightParenthesis:   "<)-token>",
	LeftCurlyBracket:   "<{-token>",
	RightCurlyBracket:  "<}-token>",
}

func (k Kind) String() string {
	if s, ok := kindString[k]; ok {
		return s
	}
	return fmt.Sprintf("<0x%x-token>", int(k))
}

// Flag holds the type flag of hash and numeric tokens.
type Flag int

const (
	// FlagNone is set on every token that doesn't carry a type flag.
	FlagNone Flag = iota
	// FlagUnrestricted is the default flag of a <hash-token>.
	FlagUnrestricted
	// FlagID marks a <hash-token> whose value is a valid identifier.
	FlagID
	// FlagInteger marks a numeric token without a fraction or exponent.
	FlagInteger
	// FlagNumber marks a numeric token with a fraction or exponent.
	FlagNumber
)

var flagString = map[Flag]string{
	FlagNone:         "none",
	FlagUnrestricted: "unrestricted",
	FlagID:           "id",
	FlagInteger:      "integer",
	FlagNumber:       "number",
}

func (f Flag) String() string {
	if s, ok := flagString[f]; ok {
		return s
	}
	return fmt.Sprintf("Flag(%d)", int(f))
}

// Token is a single lexical unit of a stylesheet.
//
// Value, Unit, and Raw are substrings of the tokenizer's input and are never
// copied. None of them are unescaped; use Unescape and ParseNumber to decode.
type Token struct {
	Kind Kind
	Flag Flag

	// Value is the token's payload. It excludes quotes for strings, the
	// leading '#' and '@' for hashes and at-keywords, the '(' of functions,
	// the "url(" wrapper and surrounding whitespace of URLs, and the '%' of
	// percentages. For dimensions it holds the numeric part. It's empty for
	// bad-string and bad-url tokens.
	Value string
	// Unit is the unit of a dimension token.
	Unit string

	// Raw is the full text consumed for the token.
	Raw string
	// Pos is the byte offset of Raw in the input.
	Pos int
}

func (t Token) String() string {
	if t.Kind == Dimension {
		return fmt.Sprintf("%s %q unit=%q pos=%d", t.Kind, t.Value, t.Unit, t.Pos)
	}
	return fmt.Sprintf("%s %q pos=%d", t.Kind, t.Value, t.Pos)
}

// End returns the byte offset just past the token in the input.
func (t Token) End() int {
	return t.Pos + len(t.Raw)
}

func (t Token) isDelim(s string) bool {
	return t.Kind == Delimiter && t.Value == s
}
