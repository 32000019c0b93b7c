package report

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/nao1215/wordrank/internal/model"
)

// Writer defines the interface for ranking output.
type Writer interface {
	// Write outputs the ranking to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(ranking *model.Ranking) (int, error)
}

// Output format names accepted by NewWriter.
const (
	FormatWords    = "words"
	FormatCounts   = "counts"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatTable    = "table"
)

// ErrUnknownFormat is returned by NewWriter for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats returns every supported format name.
func Formats() []string {
	return []string{FormatWords, FormatCounts, FormatJSON, FormatMarkdown, FormatTable}
}

// IsValidFormat reports whether format is a supported format name.
func IsValidFormat(format string) bool {
	return slices.Contains(Formats(), format)
}

// NewWriter returns the Writer for format writing to output.
func NewWriter(format string, output io.Writer) (Writer, error) {
	switch format {
	case FormatWords:
		return NewWordsWriter(output), nil
	case FormatCounts:
		return NewCountsWriter(output), nil
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint()), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	case FormatTable:
		return NewTableWriter(output), nil
	default:
		return nil, fmt.Errorf("%w: %q (expected one of %s)",
			ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
