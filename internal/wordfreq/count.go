package wordfreq

import "iter"

// FrequencyMap maps a token to the number of times it occurred.
// Every key present has a count of at least one.
type FrequencyMap map[string]int

// Count consumes tokens and returns their frequencies.
// An empty sequence yields an empty, non-nil map.
func Count(tokens iter.Seq[string]) FrequencyMap {
	freq := make(FrequencyMap)
	for token := range tokens {
		freq[token]++
	}
	return freq
}

// CountLines runs the full counting front half over raw lines:
// CleanLines, then Tokens, then Count.
func CountLines(lines iter.Seq[string]) FrequencyMap {
	return Count(Tokens(CleanLines(lines)))
}

// Total returns the sum of all counts, which equals the number of tokens
// that were counted.
func (m FrequencyMap) Total() int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

// Len returns the number of distinct words.
func (m FrequencyMap) Len() int { return len(m) }

// Merge adds every count in other to m.
func (m FrequencyMap) Merge(other FrequencyMap) {
	for word, n := range other {
		m[word] += n
	}
}

// Clone returns an independent copy of m. The copy is never nil.
func (m FrequencyMap) Clone() FrequencyMap {
	out := make(FrequencyMap, len(m))
	for word, n := range m {
		out[word] = n
	}
	return out
}
