// Package check provides naming-config diagnostics (the check command): it
// validates the config, renders every sample, and verifies that each sample
// parses back to the episodes it was rendered from.
package check

import (
	"slices"

	"github.com/backmassage/namewright/internal/naming"
	"github.com/backmassage/namewright/internal/parser"
	"github.com/backmassage/namewright/internal/sample"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// RunCheck runs the check flow over cfg and reports whether it passed.
// Validation and render failures fail the check; samples that do not parse
// back are only warned about.
func RunCheck(cfg naming.Config, log Logger) bool {
	log.Info("=== Naming Check ===")

	if !checkConfig(cfg, log) {
		return false
	}
	checkTokens(cfg, log)
	ok := checkSamples(cfg, log)
	return checkFolders(cfg, log) && ok
}

// checkConfig validates enums, ranges and every format.
func checkConfig(cfg naming.Config, log Logger) bool {
	if err := cfg.Validate(); err != nil {
		log.Error("Invalid naming config: %v", err)
		return false
	}
	log.Success("Naming config is valid")
	return true
}

// checkTokens lists the tokens each format was parsed into.
func checkTokens(cfg naming.Config, log Logger) {
	formats := []struct{ name, format string }{
		{"episode", cfg.EpisodeFormat},
		{"daily", cfg.DailyFormat},
		{"anime", cfg.AnimeFormat},
		{"series folder", cfg.SeriesFormat},
		{"season folder", cfg.SeasonFormat},
	}
	for _, f := range formats {
		tmpl, err := naming.ParseTemplate(f.format)
		if err != nil {
			continue // already reported by checkConfig
		}
		var kinds []string
		for _, tok := range tmpl.Tokens {
			if tok.Kind != naming.TokenLiteral {
				kinds = append(kinds, tok.Kind.String())
			}
		}
		log.Debug("%s format %q: %v", f.name, f.format, kinds)
	}
}

// checkSamples renders every sample kind and parses each result back.
func checkSamples(cfg naming.Config, log Logger) bool {
	log.Info("Samples:")
	ok := true
	for _, kind := range sample.Kinds() {
		res := sample.Build(kind, cfg)
		if res.Filename == "" {
			log.Error("  %s: could not render", kind)
			ok = false
			continue
		}
		log.Success("  %s: %s", kind, res.Filename)
		if !parsesBack(res) {
			log.Warn("  %s: %q does not parse back to the same episode", kind, res.Filename)
		}
	}
	return ok
}

// checkFolders renders the series and season folder samples.
func checkFolders(cfg naming.Config, log Logger) bool {
	series := sample.SeriesFolder(cfg)
	season := sample.SeasonFolder(cfg)
	if series == "" || season == "" {
		log.Error("Folder formats could not be rendered")
		return false
	}
	log.Success("  folders: %s/%s", series, season)
	return true
}

// parsesBack reports whether the rendered sample name identifies the same
// episodes as its fixtures.
func parsesBack(res sample.Result) bool {
	info, ok := parser.ParseTitle(res.Filename)
	if !ok || len(res.Episodes) == 0 {
		return false
	}
	first := res.Episodes[0]
	switch res.Kind {
	case sample.KindDaily:
		if info.Daily {
			return info.AirDate == first.AirDate
		}
	case sample.KindAnime:
		if info.IsAbsolute() {
			return info.AbsoluteEpisodeNumber == first.AbsoluteEpisodeNumber
		}
	}
	want := make([]int, len(res.Episodes))
	for i, ep := range res.Episodes {
		want[i] = ep.EpisodeNumber
	}
	return info.SeasonNumber == first.SeasonNumber && slices.Equal(info.EpisodeNumbers, want)
}
