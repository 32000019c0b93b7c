package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/nao1215/wordrank/internal/report"
	"github.com/nao1215/wordrank/internal/source"
)

// Filter error policies.
const (
	// FilterErrorAbort stops the run when the filter file cannot be read.
	FilterErrorAbort = "abort"

	// FilterErrorSkip logs a warning and prints unfiltered results.
	FilterErrorSkip = "skip"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "wordrank"

	// DefaultFormat prints one word per line.
	DefaultFormat = report.FormatWords

	// DefaultEncoding is the encoding tried first when reading the input.
	DefaultEncoding = source.DefaultEncoding

	// DefaultWorkers counts on a single goroutine.
	DefaultWorkers = 1

	// DefaultFilterErrorPolicy aborts when the filter file is unreadable.
	DefaultFilterErrorPolicy = FilterErrorAbort
)

// Config holds all options for one run.
// It is populated from the config file first and then from CLI flags.
type Config struct {
	// InputFile is the text file to analyze. Required.
	InputFile string

	// FilterFile is the optional word filter file, one word per line.
	// Empty means no filtering.
	FilterFile string

	// Format selects the report writer (see report.Formats).
	Format string

	// Top limits output to the N most frequent words. Zero lists all words.
	Top int

	// Encoding is the text encoding tried first for the input file.
	Encoding string

	// Workers is the number of goroutines used to count tokens.
	Workers int

	// OutputFile is the report destination. Empty means stdout.
	OutputFile string

	// FilterErrorPolicy decides what happens when the filter file cannot be
	// read: FilterErrorAbort or FilterErrorSkip.
	FilterErrorPolicy string

	// FoldFilterCase lowercases filter entries before matching.
	// When false, entries are matched verbatim against lowercase tokens,
	// so an entry "The" removes nothing.
	FoldFilterCase bool

	// PromptEncoding enables asking for another encoding when the input
	// cannot be decoded. It is enabled when stdin is a terminal.
	PromptEncoding bool

	// Verbose enables debug logging.
	Verbose bool

	// LogJSON writes log records as JSON instead of text.
	LogJSON bool

	// Timing prints the elapsed time to stderr after the run.
	Timing bool

	// ConfigFilePath is the configuration file to load. If empty, the
	// default locations are searched (see FindConfigFile).
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Format:            DefaultFormat,
		Encoding:          DefaultEncoding,
		Workers:           DefaultWorkers,
		FilterErrorPolicy: DefaultFilterErrorPolicy,
	}
}

// XDGConfigDir returns the XDG config directory for wordrank.
// On Linux: ~/.config/wordrank
// On macOS: ~/Library/Application Support/wordrank
// On Windows: %APPDATA%\wordrank
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Apply copies every value set in the file onto c.
// Zero values in the file leave c unchanged.
func (c *Config) Apply(f *File) {
	if f == nil {
		return
	}
	if f.Filter != "" {
		c.FilterFile = f.Filter
	}
	if f.Format != "" {
		c.Format = f.Format
	}
	if f.Top != 0 {
		c.Top = f.Top
	}
	if f.Encoding != "" {
		c.Encoding = f.Encoding
	}
	if f.Workers != 0 {
		c.Workers = f.Workers
	}
	if f.FilterError != "" {
		c.FilterErrorPolicy = f.FilterError
	}
	if f.FoldFilterCase {
		c.FoldFilterCase = true
	}
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return ErrNoInput
	}

	if !report.IsValidFormat(c.Format) {
		return fmt.Errorf("%w: %q (expected one of %s)",
			ErrInvalidFormat, c.Format, strings.Join(report.Formats(), ", "))
	}

	if c.Top < 0 {
		return ErrInvalidTop
	}

	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}

	if c.FilterErrorPolicy != FilterErrorAbort && c.FilterErrorPolicy != FilterErrorSkip {
		return ErrInvalidFilterErrorPolicy
	}

	if strings.TrimSpace(c.Encoding) == "" {
		return ErrEmptyEncoding
	}

	return nil
}
