// Package wordfreq implements the word frequency core: line filtering,
// tokenization, counting, word filtering and ranking.
//
// Every function in this package is pure. Input arrives as iter.Seq[string]
// or plain maps, and nothing here opens files or writes output. The stages
// compose as
//
//	lines -> CleanLines -> Tokens -> Count -> Filter (optional) -> Rank
//
// # Word characters
//
// A rune is a word rune when it is a Unicode letter, a Unicode number or an
// underscore. Every other rune is a separator. A line is dropped by
// CleanLines when it holds no word rune other than decimal digits, so lines
// such as "1234 --- !!" never contribute tokens.
//
// # Ordering
//
// Rank orders by count descending and breaks ties by ascending byte-wise
// word order, so output is deterministic for a given input.
//
// # Filter case
//
// Tokens are lowercased but FilterSet entries are kept verbatim. A filter
// entry "The" therefore never matches the token "the". Call FilterSet.Fold
// to lowercase the entries when case-insensitive filtering is wanted.
package wordfreq
