package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/wordrank/internal/model"
)

// WordsWriter prints one word per line, most frequent first.
// An empty ranking produces no output at all.
type WordsWriter struct {
	baseWriter
}

// NewWordsWriter creates a WordsWriter that outputs to the given writer.
func NewWordsWriter(output io.Writer) *WordsWriter {
	return &WordsWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the ranked words.
func (w *WordsWriter) Write(ranking *model.Ranking) (int, error) {
	var sb strings.Builder
	for _, e := range ranking.Entries {
		sb.WriteString(e.Word)
		sb.WriteByte('\n')
	}
	return io.WriteString(w.output, sb.String())
}

// CountsWriter prints "count word" per line, most frequent first.
type CountsWriter struct {
	baseWriter
}

// NewCountsWriter creates a CountsWriter that outputs to the given writer.
func NewCountsWriter(output io.Writer) *CountsWriter {
	return &CountsWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the ranked counts and words.
func (w *CountsWriter) Write(ranking *model.Ranking) (int, error) {
	var sb strings.Builder
	for _, e := range ranking.Entries {
		sb.WriteString(strconv.Itoa(e.Count))
		sb.WriteByte(' ')
		sb.WriteString(e.Word)
		sb.WriteByte('\n')
	}
	return io.WriteString(w.output, sb.String())
}
