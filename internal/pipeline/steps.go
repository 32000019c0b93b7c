package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/wordrank/internal/wordfreq"
)

// CountStep filters, tokenizes and counts Analysis.Lines.
type CountStep struct {
	// workers is the number of goroutines used for counting.
	// Values below two count sequentially.
	workers int

	logger *slog.Logger
}

// NewCountStep creates a count step using up to workers goroutines.
func NewCountStep(workers int, logger *slog.Logger) *CountStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &CountStep{workers: workers, logger: logger}
}

// Name returns the step name.
func (s *CountStep) Name() string {
	return "count"
}

// Do counts the tokens of every clean line.
func (s *CountStep) Do(ctx context.Context, a *Analysis) error {
	freq, err := wordfreq.CountParallel(ctx, a.Lines, s.workers)
	if err != nil {
		return err
	}

	a.Frequencies = freq
	a.Ranking.TotalTokens = freq.Total()
	a.Ranking.DistinctWords = freq.Len()

	s.logger.Debug("counted tokens",
		"lines", len(a.Lines),
		"tokens", a.Ranking.TotalTokens,
		"words", a.Ranking.DistinctWords,
		"workers", s.workers,
	)
	return nil
}

// FilterStep removes words found in Analysis.Filter.
type FilterStep struct {
	logger *slog.Logger
}

// NewFilterStep creates a filter step.
func NewFilterStep(logger *slog.Logger) *FilterStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &FilterStep{logger: logger}
}

// Name returns the step name.
func (s *FilterStep) Name() string {
	return "filter"
}

// Do replaces Analysis.Frequencies with its filtered copy.
// It does nothing when no filter is attached.
func (s *FilterStep) Do(_ context.Context, a *Analysis) error {
	if a.Filter == nil {
		return nil
	}

	before := len(a.Frequencies)
	a.Frequencies = wordfreq.Filter(a.Frequencies, a.Filter)
	a.Ranking.Filtered = true
	a.Ranking.FilteredWords = before - len(a.Frequencies)

	s.logger.Debug("filtered words",
		"entries", a.Filter.Len(),
		"removed", a.Ranking.FilteredWords,
	)
	return nil
}

// RankStep orders Analysis.Frequencies into Analysis.Ranking.
type RankStep struct {
	// top limits the number of ranked entries. Zero keeps all.
	top int
}

// NewRankStep creates a rank step keeping the top entries.
func NewRankStep(top int) *RankStep {
	return &RankStep{top: top}
}

// Name returns the step name.
func (s *RankStep) Name() string {
	return "rank"
}

// Do ranks the current frequencies.
func (s *RankStep) Do(_ context.Context, a *Analysis) error {
	a.Ranking.Entries = wordfreq.Top(wordfreq.Rank(a.Frequencies), s.top)
	return nil
}

// DefaultPipeline returns the count -> filter -> rank pipeline.
func DefaultPipeline(workers, top int, logger *slog.Logger) *Pipeline {
	p := New(WithLogger(logger))
	p.AddSteps(
		NewCountStep(workers, logger),
		NewFilterStep(logger),
		NewRankStep(top),
	)
	return p
}
