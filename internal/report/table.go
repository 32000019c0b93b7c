package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nao1215/wordrank/internal/model"
)

// TableWriter outputs the ranking as a boxed table for terminals.
type TableWriter struct {
	baseWriter

	// style is the go-pretty table style.
	style table.Style
}

// TableWriterOption configures a TableWriter.
type TableWriterOption func(*TableWriter)

// WithTableStyle overrides the table style. The default is table.StyleRounded.
func WithTableStyle(style table.Style) TableWriterOption {
	return func(w *TableWriter) {
		w.style = style
	}
}

// NewTableWriter creates a TableWriter that outputs to the given writer.
func NewTableWriter(output io.Writer, opts ...TableWriterOption) *TableWriter {
	w := &TableWriter{
		baseWriter: newBaseWriter(output),
		style:      table.StyleRounded,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the ranking table followed by a totals footer.
func (w *TableWriter) Write(ranking *model.Ranking) (int, error) {
	tw := table.NewWriter()
	tw.SetStyle(w.style)

	tw.AppendHeader(table.Row{"Rank", "Word", "Count"})
	for i, e := range ranking.Entries {
		tw.AppendRow(table.Row{i + 1, e.Word, e.Count})
	}
	tw.AppendFooter(table.Row{"", "Total", ranking.ListedTokens()})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})

	return fmt.Fprintln(w.output, tw.Render())
}
