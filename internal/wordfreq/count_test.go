package wordfreq

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"testing"
)

func TestCount(t *testing.T) {
	t.Parallel()

	t.Run("counts every token", func(t *testing.T) {
		t.Parallel()

		tokens := []string{"the", "cat", "sat", "on", "the", "mat", "the", "cat", "ran"}
		got := Count(slices.Values(tokens))
		want := FrequencyMap{"the": 3, "cat": 2, "sat": 1, "on": 1, "mat": 1, "ran": 1}
		if !maps.Equal(got, want) {
			t.Errorf("Count() = %v, want %v", got, want)
		}
		if got.Total() != len(tokens) {
			t.Errorf("Total() = %d, want %d", got.Total(), len(tokens))
		}
		if len(got) != 6 {
			t.Errorf("expected 6 distinct keys, got %d", len(got))
		}
	})

	t.Run("empty sequence gives empty map", func(t *testing.T) {
		t.Parallel()

		got := Count(slices.Values([]string(nil)))
		if got == nil {
			t.Fatal("expected non-nil map")
		}
		if len(got) != 0 {
			t.Errorf("expected empty map, got %v", got)
		}
	})
}

func TestCountLines(t *testing.T) {
	t.Parallel()

	t.Run("pure symbol input", func(t *testing.T) {
		t.Parallel()

		got := CountLines(slices.Values([]string{"!!! 123 --- ???\n"}))
		if len(got) != 0 {
			t.Errorf("expected empty map, got %v", got)
		}
	})

	t.Run("digits on symbol lines are never counted", func(t *testing.T) {
		t.Parallel()

		got := CountLines(slices.Values([]string{"2024\n", "year 2024\n"}))
		if got["2024"] != 1 {
			t.Errorf("expected 2024 counted once, got %d", got["2024"])
		}
	})
}

func TestFrequencyMapMergeAndClone(t *testing.T) {
	t.Parallel()

	a := FrequencyMap{"x": 1, "y": 2}
	b := FrequencyMap{"y": 3, "z": 4}

	c := a.Clone()
	c.Merge(b)

	want := FrequencyMap{"x": 1, "y": 5, "z": 4}
	if !maps.Equal(c, want) {
		t.Errorf("Merge() = %v, want %v", c, want)
	}
	if a["y"] != 2 {
		t.Error("Clone() shares storage with the original")
	}
	if FrequencyMap(nil).Clone() == nil {
		t.Error("Clone() of nil map returned nil")
	}
}

func TestCountParallel(t *testing.T) {
	t.Parallel()

	// buildLines returns a deterministic mix of clean and symbol lines.
	buildLines := func(n int) []string {
		lines := make([]string, 0, n)
		for i := range n {
			switch i % 4 {
			case 0:
				lines = append(lines, fmt.Sprintf("Word%d and the word %d\n", i%17, i))
			case 1:
				lines = append(lines, "---- 12 ----\n")
			case 2:
				lines = append(lines, strings.Repeat("The ", i%5+1)+"end.\n")
			default:
				lines = append(lines, "\n")
			}
		}
		return lines
	}

	t.Run("matches sequential count", func(t *testing.T) {
		t.Parallel()

		lines := buildLines(5000)
		want := CountLines(slices.Values(lines))

		for _, workers := range []int{0, 1, 2, 3, 8} {
			got, err := CountParallel(context.Background(), lines, workers)
			if err != nil {
				t.Fatalf("workers=%d: unexpected error: %v", workers, err)
			}
			if !maps.Equal(got, want) {
				t.Errorf("workers=%d: parallel count differs from sequential count", workers)
			}
		}
	})

	t.Run("small input", func(t *testing.T) {
		t.Parallel()

		got, err := CountParallel(context.Background(), []string{"a b a\n"}, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !maps.Equal(got, FrequencyMap{"a": 2, "b": 1}) {
			t.Errorf("unexpected counts: %v", got)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := CountParallel(ctx, buildLines(10), 1); err == nil {
			t.Error("expected error for cancelled context")
		}
	})
}
