package wordfreq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// FilterSet is a set of words to exclude from a FrequencyMap.
// It is only used for membership tests and is never modified after it is
// built.
type FilterSet map[string]struct{}

// NewFilterSet returns a FilterSet holding words verbatim.
func NewFilterSet(words ...string) FilterSet {
	set := make(FilterSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// ParseFilterSet reads one entry per line from r.
//
// Only trailing line terminators ('\n' and '\r') are removed. Other
// whitespace and letter case are kept, so an entry "The " (with a trailing
// space) matches nothing the tokenizer can produce.
func ParseFilterSet(r io.Reader) (FilterSet, error) {
	set := make(FilterSet)
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			set[strings.TrimRight(line, "\r\n")] = struct{}{}
		}
		if errors.Is(err, io.EOF) {
			return set, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read filter entries: %w", err)
		}
	}
}

// Contains reports whether word is in the set.
func (s FilterSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of entries.
func (s FilterSet) Len() int {
	return len(s)
}

// Fold returns a copy of the set with every entry lowercased the same way
// the tokenizer lowercases tokens.
func (s FilterSet) Fold() FilterSet {
	lower := newLowerCaser()
	out := make(FilterSet, len(s))
	for w := range s {
		out[lower.String(w)] = struct{}{}
	}
	return out
}

// Filter returns a new FrequencyMap holding the entries of m whose key is
// not in set. Counts of retained entries are unchanged and m is not
// modified. A nil or empty set yields a plain copy of m.
func Filter(m FrequencyMap, set FilterSet) FrequencyMap {
	out := make(FrequencyMap, len(m))
	for word, n := range m {
		if set.Contains(word) {
			continue
		}
		out[word] = n
	}
	return out
}
