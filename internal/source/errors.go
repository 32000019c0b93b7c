package source

import (
	"errors"
	"fmt"
)

// Source errors.
var (
	// ErrResourceUnavailable is returned when a file cannot be opened or read,
	// for example because it does not exist or permission is denied.
	ErrResourceUnavailable = errors.New("resource unavailable")

	// ErrDecoding is returned when the file content is not valid in the
	// requested encoding.
	ErrDecoding = errors.New("decoding failure")

	// ErrUnknownEncoding is returned when the encoding name is not known or
	// the encoding is not supported for decoding.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// Role names which file an error refers to.
type Role string

const (
	// RoleInput is the text being analyzed.
	RoleInput Role = "input"
	// RoleFilter is the word filter file.
	RoleFilter Role = "filter"
)

// ResourceError describes a file that could not be opened or read.
type ResourceError struct {
	// Role is which file failed.
	Role Role
	// Path is the path that was opened.
	Path string
	// Err is the underlying os error.
	Err error
}

// Error implements error.
func (e *ResourceError) Error() string {
	return fmt.Sprintf("cannot read %s file %s: %v", e.Role, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// Is reports ErrResourceUnavailable as a match so callers can test the class
// with errors.Is without caring about the os error.
func (e *ResourceError) Is(target error) bool {
	return target == ErrResourceUnavailable
}

// DecodeError describes input bytes that are invalid in an encoding.
type DecodeError struct {
	// Encoding is the encoding name that was requested.
	Encoding string
	// Offset is the byte offset of the first invalid sequence, or -1 when
	// the position is not known.
	Offset int
}

// Error implements error.
func (e *DecodeError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %s can't decode input", ErrDecoding, e.Encoding)
	}
	return fmt.Sprintf("%s: %s can't decode byte at offset %d", ErrDecoding, e.Encoding, e.Offset)
}

// Unwrap returns ErrDecoding.
func (e *DecodeError) Unwrap() error {
	return ErrDecoding
}

// IsDecodingFailure reports whether err means the input could not be decoded
// with the requested encoding, so that retrying with another one may help.
func IsDecodingFailure(err error) bool {
	return errors.Is(err, ErrDecoding) || errors.Is(err, ErrUnknownEncoding)
}
