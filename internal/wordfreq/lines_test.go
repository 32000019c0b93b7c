package wordfreq

import (
	"slices"
	"testing"
)

func TestIsCleanLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want bool
	}{
		{"plain words", "The cat sat\n", true},
		{"digits and symbols only", "1234 --- !!\n", false},
		{"symbols only", "!!! 123 --- ???", false},
		{"newline only", "\n", false},
		{"empty line", "", false},
		{"whitespace only", " \t \n", false},
		{"letter among symbols", "--- a ---\n", true},
		{"letters mixed with digits", "abc123", true},
		{"underscore counts as word", "___\n", true},
		{"non-ASCII letters", "Grüße, Welt!\n", true},
		{"non-Latin script", "こんにちは\n", true},
		{"fullwidth digits only", "１２３\n", false},
		{"vulgar fraction is a number but not a digit", "½\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsCleanLine(tt.line); got != tt.want {
				t.Errorf("IsCleanLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestCleanLines(t *testing.T) {
	t.Parallel()

	t.Run("drops symbol lines and keeps order", func(t *testing.T) {
		t.Parallel()

		lines := []string{
			"Chapter 1\n",
			"==========\n",
			"\n",
			"It was a dark night.\n",
			"1999 -- 2000\n",
			"The end.\n",
		}
		got := slices.Collect(CleanLines(slices.Values(lines)))
		want := []string{"Chapter 1\n", "It was a dark night.\n", "The end.\n"}
		if !slices.Equal(got, want) {
			t.Errorf("CleanLines() = %q, want %q", got, want)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		got := slices.Collect(CleanLines(slices.Values([]string(nil))))
		if len(got) != 0 {
			t.Errorf("expected no lines, got %q", got)
		}
	})

	t.Run("stops when consumer stops", func(t *testing.T) {
		t.Parallel()

		lines := []string{"a\n", "b\n", "c\n"}
		var got []string
		for line := range CleanLines(slices.Values(lines)) {
			got = append(got, line)
			if len(got) == 2 {
				break
			}
		}
		if len(got) != 2 {
			t.Errorf("expected 2 lines, got %d", len(got))
		}
	})
}
