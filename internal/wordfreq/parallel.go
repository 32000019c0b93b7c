package wordfreq

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"
)

// minChunkLines is the smallest number of lines worth handing to a worker.
// Below this the goroutine overhead is larger than the counting itself.
const minChunkLines = 256

// CountParallel counts the tokens of lines using up to workers goroutines.
//
// Lines are split into contiguous chunks. Each chunk runs the whole
// CleanLines -> Tokens -> Count chain on its own and the partial maps are
// summed afterwards. Line filtering is decided per line and counting is
// order independent, so the result always equals CountLines over the same
// input.
//
// A workers value below two counts sequentially. The only error returned is
// the context error when ctx is cancelled before all chunks finish.
func CountParallel(ctx context.Context, lines []string, workers int) (FrequencyMap, error) {
	if workers < 2 || len(lines) < 2*minChunkLines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return CountLines(slices.Values(lines)), nil
	}

	chunkSize := (len(lines) + workers - 1) / workers
	if chunkSize < minChunkLines {
		chunkSize = minChunkLines
	}
	chunks := slices.Collect(slices.Chunk(lines, chunkSize))
	partials := make([]FrequencyMap, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, chunk := range chunks {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			// Each goroutine writes only its own slot.
			partials[i] = CountLines(slices.Values(chunk))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	freq := make(FrequencyMap)
	for _, partial := range partials {
		freq.Merge(partial)
	}
	return freq, nil
}
