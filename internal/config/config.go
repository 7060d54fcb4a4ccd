// Package config holds runtime configuration: defaults, CLI flag binding,
// validation, and loading naming configs from disk.
package config

import (
	"errors"
	"runtime"
	"strings"
)

// --- Enum types for validated string fields ---

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// OutputFormat selects how batch results are written.
type OutputFormat string

const (
	FormatTable OutputFormat = "table" // Aligned text table (default).
	FormatCSV   OutputFormat = "csv"   // Comma-separated rows with a header.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by the flags bound in [BindFlags] before being passed (by
// pointer) to packages that need it.
type Config struct {
	// Naming.
	NamingFile string // Optional TOML/YAML naming config; empty means defaults.

	// Batch.
	Workers      int          // Default: runtime.NumCPU().
	OutputFormat OutputFormat // Default: "table".
	DryRun       bool         // Default: true. Cleared by rename --apply.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{
		Workers:      runtime.NumCPU(),
		OutputFormat: FormatTable,
		DryRun:       true,
		Verbose:      false,
		ColorMode:    ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values and that the worker
// count is usable.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	switch c.OutputFormat {
	case FormatTable, FormatCSV:
		// valid
	default:
		return errors.New("invalid format (use 'table' or 'csv')")
	}

	if c.Workers < 1 {
		return errors.New("workers must be at least 1")
	}
	return nil
}
