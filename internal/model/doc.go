// Package model defines the data structures shared between the frequency
// pipeline and the output writers.
//
// This package contains the following main types:
//   - RankedEntry: A single (word, count) pair in ranked order
//   - Ranking: The complete ranked result of one run, with summary counters
//
// Models live in their own package so that the core (wordfreq), the
// orchestration layer (pipeline) and the writers (report) can share them
// without import cycles. All types serialize to JSON for the JSON writer.
package model
