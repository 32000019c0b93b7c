package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name searched for in the
// current and home directories.
const DefaultConfigFile = ".wordrank.yaml"

// File represents the structure of the configuration file.
// Every field is optional; unset fields keep the built-in defaults.
type File struct {
	// Filter is the default word filter file. A relative path is resolved
	// against the directory holding the configuration file.
	Filter string `yaml:"filter,omitempty" toml:"filter"`

	// Format is the default output format.
	Format string `yaml:"format,omitempty" toml:"format"`

	// Top is the default number of words to list. Zero lists all.
	Top int `yaml:"top,omitempty" toml:"top"`

	// Encoding is the encoding tried first for input files.
	Encoding string `yaml:"encoding,omitempty" toml:"encoding"`

	// Workers is the number of counting goroutines.
	Workers int `yaml:"workers,omitempty" toml:"workers"`

	// FilterError is "abort" or "skip".
	FilterError string `yaml:"filter_error,omitempty" toml:"filter_error"`

	// FoldFilterCase lowercases filter entries before matching.
	FoldFilterCase bool `yaml:"fold_filter_case,omitempty" toml:"fold_filter_case"`
}

// LoadConfigFile loads a configuration file.
// Files with a .toml extension are decoded as TOML, everything else as YAML.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cf); err != nil {
			return nil, fmt.Errorf("invalid TOML: %w", err)
		}
	} else {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cf); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	}

	if cf.Filter != "" && !filepath.IsAbs(cf.Filter) {
		cf.Filter = filepath.Join(filepath.Dir(path), cf.Filter)
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. .wordrank.yaml in the current directory
//  3. config.yaml or config.toml in the XDG config directory
//  4. .wordrank.yaml in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	candidates = append(candidates,
		filepath.Join(XDGConfigDir(), "config.yaml"),
		filepath.Join(XDGConfigDir(), "config.toml"),
	)
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
