package pipeline

import (
	"github.com/nao1215/wordrank/internal/model"
	"github.com/nao1215/wordrank/internal/wordfreq"
)

// Analysis carries the input and intermediate results of one run.
type Analysis struct {
	// Lines is the decoded input, one element per line.
	Lines []string

	// Filter is the optional word filter. A nil Filter skips filtering.
	Filter wordfreq.FilterSet

	// Frequencies is set by the count step and replaced by the filter step.
	Frequencies wordfreq.FrequencyMap

	// Ranking is set by the rank step.
	Ranking *model.Ranking
}

// NewAnalysis creates an Analysis for lines read from source.
func NewAnalysis(source, encoding string, lines []string) *Analysis {
	return &Analysis{
		Lines:   lines,
		Ranking: model.NewRanking(source, encoding),
	}
}
