package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/wordrank/internal/model"
)

// pieChartEntries is how many top words appear in the pie chart.
const pieChartEntries = 10

// MarkdownWriter outputs the ranking as GitHub Flavored Markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the ranking in Markdown format.
func (w *MarkdownWriter) Write(ranking *model.Ranking) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, ranking)
	if ranking.IsEmpty() {
		md.Note("No words found in the input.")
		md.PlainText("")
	} else {
		w.writeRanking(md, ranking)
		w.writePieChart(md, ranking)
	}
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and the summary table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, ranking *model.Ranking) {
	md.H1("Word Frequency Report")
	md.PlainText("")

	rows := [][]string{
		{"Source", "`" + ranking.Source + "`"},
		{"Encoding", ranking.Encoding},
		{"Generated", ranking.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
		{"Total Tokens", strconv.Itoa(ranking.TotalTokens)},
		{"Distinct Words", strconv.Itoa(ranking.DistinctWords)},
	}
	if ranking.Filtered {
		rows = append(rows, []string{"Filtered Words", strconv.Itoa(ranking.FilteredWords)})
	}
	rows = append(rows, []string{"Listed Words", strconv.Itoa(len(ranking.Entries))})

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeRanking writes the ranked words table.
func (w *MarkdownWriter) writeRanking(md *markdown.Markdown, ranking *model.Ranking) {
	md.H2("Ranking")
	md.PlainText("")

	rows := make([][]string, len(ranking.Entries))
	for i, e := range ranking.Entries {
		rows[i] = []string{strconv.Itoa(i + 1), e.Word, strconv.Itoa(e.Count)}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Word", "Count"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart of the most frequent words.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, ranking *model.Ranking) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Top Words"),
		piechart.WithShowData(true),
	)

	for i, e := range ranking.Entries {
		if i == pieChartEntries {
			break
		}
		chart.LabelAndIntValue(e.Word, uint64(e.Count)) //nolint:gosec // counts are always positive
	}

	md.H2("Distribution")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [wordrank](https://github.com/nao1215/wordrank)*")
}
