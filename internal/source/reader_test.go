package source

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// writeFile creates a file with the given content in a temp directory.
func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestReadLines(t *testing.T) {
	t.Parallel()

	t.Run("reads utf-8 lines", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "in.txt", []byte("The cat sat on the mat.\nThe cat ran.\n"))
		lines, err := ReadLines(path, DefaultEncoding)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"The cat sat on the mat.\n", "The cat ran.\n"}
		if !slices.Equal(lines, want) {
			t.Errorf("ReadLines() = %q, want %q", lines, want)
		}
	})

	t.Run("empty encoding means utf-8", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "in.txt", []byte("héllo"))
		lines, err := ReadLines(path, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !slices.Equal(lines, []string{"héllo"}) {
			t.Errorf("unexpected lines: %q", lines)
		}
	})

	t.Run("missing file is resource unavailable", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.txt")
		_, err := ReadLines(path, DefaultEncoding)
		if !errors.Is(err, ErrResourceUnavailable) {
			t.Fatalf("expected ErrResourceUnavailable, got %v", err)
		}
		var rerr *ResourceError
		if !errors.As(err, &rerr) {
			t.Fatalf("expected *ResourceError, got %T", err)
		}
		if rerr.Role != RoleInput || rerr.Path != path {
			t.Errorf("unexpected error details: role=%s path=%s", rerr.Role, rerr.Path)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Error("expected underlying os.ErrNotExist")
		}
		if IsDecodingFailure(err) {
			t.Error("resource error must not be a decoding failure")
		}
	})

	t.Run("invalid utf-8 is a decoding failure", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "latin1.txt", []byte("caf\xe9\n"))
		_, err := ReadLines(path, DefaultEncoding)
		if !IsDecodingFailure(err) {
			t.Fatalf("expected decoding failure, got %v", err)
		}
		var derr *DecodeError
		if !errors.As(err, &derr) {
			t.Fatalf("expected *DecodeError, got %T", err)
		}
		if derr.Offset != 3 {
			t.Errorf("expected offset 3, got %d", derr.Offset)
		}
		if derr.Encoding != "utf-8" {
			t.Errorf("expected encoding utf-8, got %q", derr.Encoding)
		}
	})

	t.Run("retry with latin1 succeeds", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "latin1.txt", []byte("caf\xe9\n"))
		lines, err := ReadLines(path, "latin1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !slices.Equal(lines, []string{"café\n"}) {
			t.Errorf("unexpected lines: %q", lines)
		}
	})

	t.Run("unknown encoding is a decoding failure", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "in.txt", []byte("hello\n"))
		_, err := ReadLines(path, "no-such-encoding")
		if !errors.Is(err, ErrUnknownEncoding) {
			t.Fatalf("expected ErrUnknownEncoding, got %v", err)
		}
		if !IsDecodingFailure(err) {
			t.Error("expected unknown encoding to be retryable")
		}
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     []byte
		encoding string
		want     string
	}{
		{"utf8 alias", []byte("ok"), "UTF8", "ok"},
		{"utf_8 spelling", []byte("ok"), "utf_8", "ok"},
		{"iso-8859-1", []byte{0x47, 0x72, 0xfc, 0xdf, 0x65}, "ISO-8859-1", "Grüße"},
		{"shift_jis", []byte{0x82, 0xa0}, "Shift_JIS", "あ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Decode(tt.data, tt.encoding)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"no terminator", "abc", []string{"abc"}},
		{"lf", "a\nb\n", []string{"a\n", "b\n"}},
		{"crlf", "a\r\nb\r\n", []string{"a\n", "b\n"}},
		{"lone cr", "a\rb", []string{"a\n", "b"}},
		{"blank lines", "\n\nx", []string{"\n", "\n", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SplitLines(tt.text)
			if !slices.Equal(got, tt.want) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestLoadFilterSet(t *testing.T) {
	t.Parallel()

	t.Run("loads entries", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "filter.txt", []byte("the\nand\r\n"))
		set, err := LoadFilterSet(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !set.Contains("the") || !set.Contains("and") || set.Len() != 2 {
			t.Errorf("unexpected set: %v", set)
		}
	})

	t.Run("missing file names the filter role", func(t *testing.T) {
		t.Parallel()

		_, err := LoadFilterSet(filepath.Join(t.TempDir(), "nope.txt"))
		var rerr *ResourceError
		if !errors.As(err, &rerr) {
			t.Fatalf("expected *ResourceError, got %v", err)
		}
		if rerr.Role != RoleFilter {
			t.Errorf("expected role filter, got %s", rerr.Role)
		}
	})
}
