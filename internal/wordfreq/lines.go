package wordfreq

import (
	"iter"
	"unicode"
)

// isWordRune reports whether r belongs to the word character class:
// letters, numbers and underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// isSeparator is the complement of isWordRune.
func isSeparator(r rune) bool {
	return !isWordRune(r)
}

// IsCleanLine reports whether line holds at least one word rune that is not
// a decimal digit. Lines made only of digits, punctuation, symbols and
// whitespace are not clean. The empty line is not clean.
func IsCleanLine(line string) bool {
	for _, r := range line {
		if isWordRune(r) && !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// CleanLines returns the subsequence of lines for which IsCleanLine is true.
// Order is preserved and the input is consumed lazily.
func CleanLines(lines iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range lines {
			if !IsCleanLine(line) {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}
