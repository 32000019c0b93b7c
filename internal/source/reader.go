package source

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/nao1215/wordrank/internal/wordfreq"
)

// DefaultEncoding is the encoding used when none is requested.
const DefaultEncoding = "utf-8"

// ReadLines reads the file at path, decodes it using the named encoding and
// returns its lines. Each returned line ends with "\n" except possibly the
// last one; "\r\n" and lone "\r" terminators are normalised to "\n".
//
// The whole file is loaded into memory.
func ReadLines(path, encodingName string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, &ResourceError{Role: RoleInput, Path: path, Err: err}
	}

	text, err := Decode(data, encodingName)
	if err != nil {
		return nil, err
	}
	return SplitLines(text), nil
}

// Decode converts data to a UTF-8 string using the named encoding.
// An empty name means DefaultEncoding.
func Decode(data []byte, encodingName string) (string, error) {
	name := strings.TrimSpace(encodingName)
	if name == "" {
		name = DefaultEncoding
	}

	if isUTF8(name) {
		if !utf8.Valid(data) {
			return "", &DecodeError{Encoding: name, Offset: firstInvalidUTF8(data)}
		}
		return string(data), nil
	}

	enc, err := lookupEncoding(name)
	if err != nil {
		return "", err
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", &DecodeError{Encoding: name, Offset: -1}
	}
	// x/text decoders substitute U+FFFD for invalid input instead of failing.
	if bytes.ContainsRune(decoded, utf8.RuneError) {
		return "", &DecodeError{Encoding: name, Offset: -1}
	}
	return string(decoded), nil
}

// isUTF8 reports whether name refers to plain UTF-8.
func isUTF8(name string) bool {
	switch strings.ToLower(strings.ReplaceAll(name, "_", "-")) {
	case "utf-8", "utf8":
		return true
	}
	return false
}

// lookupEncoding resolves an IANA encoding name or alias.
func lookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}
	// ianaindex returns a nil Encoding for names it knows but cannot decode.
	if enc == nil {
		return nil, fmt.Errorf("%w: %s is not supported", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// firstInvalidUTF8 returns the byte offset of the first invalid UTF-8 sequence
// in data, or -1 when data is valid.
func firstInvalidUTF8(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

// SplitLines splits text into lines, keeping a normalised "\n" terminator on
// every line that had one. "\r\n" and "\r" both end a line.
func SplitLines(text string) []string {
	lines := make([]string, 0, strings.Count(text, "\n")+1)
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i]+"\n")
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i]+"\n")
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// LoadFilterSet reads the word filter file at path.
// Entries are taken verbatim apart from trailing line terminators.
func LoadFilterSet(path string) (wordfreq.FilterSet, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided filter path is intentional
	if err != nil {
		return nil, &ResourceError{Role: RoleFilter, Path: path, Err: err}
	}
	defer f.Close()

	set, err := wordfreq.ParseFilterSet(f)
	if err != nil {
		return nil, &ResourceError{Role: RoleFilter, Path: path, Err: err}
	}
	return set, nil
}
