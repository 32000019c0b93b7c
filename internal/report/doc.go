// Package report renders a model.Ranking.
//
// This package contains writers for different output formats:
//   - WordsWriter: one word per line, most frequent first
//   - CountsWriter: "count word" per line, most frequent first
//   - JSONWriter: the full ranking as JSON for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown with tables and a pie chart
//   - TableWriter: a boxed table for terminal display
//
// Writers implement the Writer interface and are selected by name with
// NewWriter.
package report
