package csslex

import (
	"io"

	"golang.org/x/text/transform"
)

// Normalize returns a transformer performing CSS input preprocessing: CR, CRLF,
// and FF are replaced by LF, and NUL by U+FFFD.
//
// The tokenizer handles unprocessed input, so normalizing is only needed when
// callers want newlines in token values to be uniform.
//
// https://www.w3.org/TR/css-syntax-3/#input-preprocessing
func Normalize() transform.Transformer {
	return normalizer{}
}

type normalizer struct {
	transform.NopResetter
}

const replacement = "�"

func (normalizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		switch c {
		case '\r':
			// Wait for the next byte to know if this is a CRLF pair.
			if nSrc+1 == len(src) && !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '\n'
			nDst++
			nSrc++
			if nSrc < len(src) && src[nSrc] == '\n' {
				nSrc++
			}
		case 0:
			if nDst+len(replacement) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], replacement)
			nSrc++
		default:
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			if c == '\f' {
				c = '\n'
			}
			dst[nDst] = c
			nDst++
			nSrc++
		}
	}
	return nDst, nSrc, nil
}

// NormalizeString returns s with CSS input preprocessing applied.
func NormalizeString(s string) string {
	out, _, err := transform.String(Normalize(), s)
	if err != nil {
		// The transformer never fails on complete input.
		return s
	}
	return out
}

// ReadAll reads a stylesheet from r, applying CSS input preprocessing.
func ReadAll(r io.Reader) (string, error) {
	b, err := io.ReadAll(transform.NewReader(r, Normalize()))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
