// Package config provides configuration structures and utilities for wordrank.
// It defines the run options (input, filter, output format, encoding) and the
// optional configuration file that supplies defaults for them.
package config
