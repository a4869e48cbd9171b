//go:build gofuzz
// +build gofuzz

package csslex

func Fuzz(data []byte) int {
	toks := Tokenize(string(data))
	if len(toks) == 0 {
		return 0
	}
	if _, err := ParseDeclarations(string(data)); err != nil {
		return 0
	}
	return 1
}
