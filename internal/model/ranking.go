package model

import "time"

// RankedEntry is a (word, count) pair.
// Entries are ordered by Count descending, then by Word ascending.
type RankedEntry struct {
	// Word is the lowercased token.
	Word string `json:"word"`

	// Count is the number of occurrences of Word in the input. Always >= 1.
	Count int `json:"count"`
}

// Ranking is the result of one run over a single input file.
// It is what every report writer receives.
type Ranking struct {
	// Source is the input file path as given on the command line.
	Source string `json:"source"`

	// Encoding is the text encoding the input was successfully decoded with.
	Encoding string `json:"encoding"`

	// GeneratedAt is when the ranking was produced.
	GeneratedAt time.Time `json:"generated_at"`

	// TotalTokens is the number of tokens produced by the tokenizer,
	// before any word filter was applied.
	TotalTokens int `json:"total_tokens"`

	// DistinctWords is the number of distinct tokens before filtering.
	DistinctWords int `json:"distinct_words"`

	// FilteredWords is the number of distinct words removed by the word filter.
	// Zero when no filter was applied.
	FilteredWords int `json:"filtered_words"`

	// Filtered reports whether a word filter was applied.
	Filtered bool `json:"filtered"`

	// Entries holds the ranked words, most frequent first.
	// It may be truncated when a top-N limit is configured.
	Entries []RankedEntry `json:"entries"`
}

// NewRanking creates an empty Ranking for the given source.
func NewRanking(source, encoding string) *Ranking {
	return &Ranking{
		Source:      source,
		Encoding:    encoding,
		GeneratedAt: time.Now(),
		Entries:     make([]RankedEntry, 0),
	}
}

// IsEmpty reports whether the ranking has no entries.
func (r *Ranking) IsEmpty() bool {
	return len(r.Entries) == 0
}

// ListedTokens returns the sum of counts over the listed entries.
func (r *Ranking) ListedTokens() int {
	total := 0
	for _, e := range r.Entries {
		total += e.Count
	}
	return total
}

// Words returns the listed words in rank order.
func (r *Ranking) Words() []string {
	words := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		words[i] = e.Word
	}
	return words
}
