package wordfreq

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// newLowerCaser returns a caser applying full Unicode lowercase mapping.
// A Caser keeps state, so each tokenization pass builds its own.
func newLowerCaser() cases.Caser {
	return cases.Lower(language.Und)
}

// Tokenize splits a single line into lowercase tokens.
// Every separator rune acts as a space and runs of separators collapse,
// so a line that holds no word runes yields no tokens.
func Tokenize(line string) []string {
	return appendTokens(nil, line, newLowerCaser())
}

// appendTokens appends the tokens of line to dst.
func appendTokens(dst []string, line string, lower cases.Caser) []string {
	for _, field := range strings.FieldsFunc(line, isSeparator) {
		dst = append(dst, lower.String(field))
	}
	return dst
}

// Tokens returns a lazy sequence of the tokens of every line, in line order
// and left to right within a line. The sequence can be ranged over again
// whenever lines can.
func Tokens(lines iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		lower := newLowerCaser()
		for line := range lines {
			for _, field := range strings.FieldsFunc(line, isSeparator) {
				if !yield(lower.String(field)) {
					return
				}
			}
		}
	}
}
