// Package pipeline runs the word frequency stages as a sequence of named
// steps over a shared Analysis.
//
// The default pipeline is
//
//	count -> filter -> rank
//
// where the filter step is a no-op when no FilterSet is attached. Each step
// wraps one function from the wordfreq package and records its result on
// the Analysis, so a failed run can be retried by creating a new Analysis
// and executing the pipeline again. No step performs file I/O.
package pipeline
