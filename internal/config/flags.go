package config

// This file binds CLI flags onto pflag FlagSets.
// Flags are grouped into naming, batch, display, and rename.
// Negated flags (e.g. --no-color) are applied after Parse so Config defaults hold unless set.

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flags ties a Config to the flags bound for it. Call [Flags.Apply] once the
// FlagSet has been parsed.
type Flags struct {
	cfg     *Config
	negated negatedFlags
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either force a mode (forceColor, noColor) or invert a default (apply -> DryRun=false).
type negatedFlags struct {
	forceColor bool
	noColor    bool
	apply      bool
}

// BindFlags registers the global flags on fs. They write straight into cfg,
// except the negated flags which wait for [Flags.Apply].
func BindFlags(fs *pflag.FlagSet, cfg *Config) *Flags {
	f := &Flags{cfg: cfg}
	defineNamingFlags(fs, cfg)
	defineBatchFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &f.negated)
	return f
}

// BindRenameFlags registers the flags only the rename command takes.
func (f *Flags) BindRenameFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&f.negated.apply, "apply", false, "Move files (default is a dry run)")
}

// Apply folds the negated flags into the Config and validates it.
func (f *Flags) Apply() error {
	applyNegatedFlags(f.cfg, &f.negated)
	return f.cfg.Validate()
}

// defineNamingFlags registers -c/--config.
func defineNamingFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.NamingFile, "config", "c", cfg.NamingFile, "Naming config file (.toml, .yaml, .yml)")
}

// defineBatchFlags registers -j/--workers and --format.
func defineBatchFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.IntVarP(&cfg.Workers, "workers", "j", cfg.Workers, "Parallel parse workers")
	fs.Var(&outputFormatValue{&cfg.OutputFormat}, "format", "Output format: table | csv")
}

// defineDisplayFlags registers -v/--verbose, -l/--log, --color-mode, --color, --no-color.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Debug logging")
	fs.StringVarP(&cfg.LogFile, "log", "l", cfg.LogFile, "Also write a JSON log to this file")
	fs.Var(&colorModeValue{&cfg.ColorMode}, "color-mode", "Color output: auto | always | never")
	fs.BoolVar(&n.forceColor, "color", false, "Same as --color-mode=always")
	fs.BoolVar(&n.noColor, "no-color", false, "Same as --color-mode=never")
}

// applyNegatedFlags applies the deferred flags. --no-color wins over --color.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	}
	if n.apply {
		cfg.DryRun = false
	}
}

// pflag.Value adapters so we can use enum types (OutputFormat, ColorMode) with fs.Var.

type outputFormatValue struct{ p *OutputFormat }

func (o *outputFormatValue) String() string { return string(*o.p) }
func (o *outputFormatValue) Type() string   { return "format" }
func (o *outputFormatValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "table":
		*o.p = FormatTable
	case "csv":
		*o.p = FormatCSV
	default:
		return fmt.Errorf("invalid format %q (use 'table' or 'csv')", s)
	}
	return nil
}

type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string { return string(*c.p) }
func (c *colorModeValue) Type() string   { return "mode" }
func (c *colorModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*c.p = ColorAuto
	case "always":
		*c.p = ColorAlways
	case "never":
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
