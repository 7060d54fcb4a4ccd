package naming

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/backmassage/namewright/internal/media"
)

// --- Enum types for validated string fields ---

// MultiEpisodeStyle selects how a season/episode group expands when a file
// holds more than one episode.
type MultiEpisodeStyle string

const (
	StyleExtend    MultiEpisodeStyle = "extend-range"     // S01E01-E03
	StyleRepeat    MultiEpisodeStyle = "repeat-marker"    // S01E01E02E03
	StyleDuplicate MultiEpisodeStyle = "duplicate-format" // S01E01 S01E02 S01E03
)

// Separator replaces whitespace inside substituted values.
type Separator string

const (
	SeparatorSpace      Separator = "space"
	SeparatorDot        Separator = "dot"
	SeparatorUnderscore Separator = "underscore"
)

// Char returns the character written for s.
func (s Separator) Char() string {
	switch s {
	case SeparatorDot:
		return "."
	case SeparatorUnderscore:
		return "_"
	}
	return " "
}

// TitleCase controls the letter case of every substituted value.
type TitleCase string

const (
	CaseOriginal TitleCase = "original"
	CaseTitle    TitleCase = "title"
	CaseLower    TitleCase = "lower"
)

// Config is the naming configuration. Use [DefaultConfig] as the base and
// call [Config.Validate] before rendering with a user-supplied value.
type Config struct {
	EpisodeFormat string `toml:"episode_format" yaml:"episode_format" validate:"required"`
	DailyFormat   string `toml:"daily_format" yaml:"daily_format" validate:"required"`
	AnimeFormat   string `toml:"anime_format" yaml:"anime_format" validate:"required"`
	SeriesFormat  string `toml:"series_format" yaml:"series_format" validate:"required"`
	SeasonFormat  string `toml:"season_format" yaml:"season_format" validate:"required"`

	MultiEpisodeStyle MultiEpisodeStyle `toml:"multi_episode_style" yaml:"multi_episode_style" validate:"oneof=extend-range repeat-marker duplicate-format"`
	Separator         Separator         `toml:"separator" yaml:"separator" validate:"oneof=space dot underscore"`
	TitleCase         TitleCase         `toml:"title_case" yaml:"title_case" validate:"oneof=original title lower"`
	NumberPadding     int               `toml:"number_padding" yaml:"number_padding" validate:"min=1,max=3"`

	IncludeSeriesTitle  bool `toml:"include_series_title" yaml:"include_series_title"`
	IncludeEpisodeTitle bool `toml:"include_episode_title" yaml:"include_episode_title"`
	IncludeQuality      bool `toml:"include_quality" yaml:"include_quality"`
	IncludeReleaseGroup bool `toml:"include_release_group" yaml:"include_release_group"`
}

// Default format strings.
const (
	DefaultEpisodeFormat = "{Series Title} - S{season}E{episode} - {Episode Title} [{Quality}]-{Release Group}"
	DefaultDailyFormat   = "{Series Title} - {Air Date} - {Episode Title} [{Quality}]"
	DefaultAnimeFormat   = "{Series Title} - {absolute} - {Episode Title} [{Quality}]"
	DefaultSeriesFormat  = "{Series Title}"
	DefaultSeasonFormat  = "Season {season}"
)

// DefaultConfig returns the stock naming configuration.
func DefaultConfig() Config {
	return Config{
		EpisodeFormat:       DefaultEpisodeFormat,
		DailyFormat:         DefaultDailyFormat,
		AnimeFormat:         DefaultAnimeFormat,
		SeriesFormat:        DefaultSeriesFormat,
		SeasonFormat:        DefaultSeasonFormat,
		MultiEpisodeStyle:   StyleExtend,
		Separator:           SeparatorSpace,
		TitleCase:           CaseOriginal,
		NumberPadding:       2,
		IncludeSeriesTitle:  true,
		IncludeEpisodeTitle: true,
		IncludeQuality:      true,
		IncludeReleaseGroup: true,
	}
}

// FormatFor returns the file-name format used for a series type. Unknown
// types use the standard episode format.
func (c Config) FormatFor(t media.SeriesType) string {
	switch t {
	case media.SeriesDaily:
		return c.DailyFormat
	case media.SeriesAnime:
		return c.AnimeFormat
	}
	return c.EpisodeFormat
}

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}()

// Validate checks every enum and range field, then parses every format and
// verifies each file-name format can identify an episode. The first error is
// returned.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fieldMessage(fe)
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	formats := []struct {
		name   string
		format string
		needs  [][]TokenKind // at least one of these token sets must be present
	}{
		{"episode_format", c.EpisodeFormat, [][]TokenKind{{TokenSeasonEpisode}, {TokenSeasonNumber, TokenEpisodeNumber}}},
		{"daily_format", c.DailyFormat, [][]TokenKind{{TokenAirDate}, {TokenSeasonEpisode}}},
		{"anime_format", c.AnimeFormat, [][]TokenKind{{TokenAbsoluteNumber}, {TokenSeasonEpisode}}},
		{"series_format", c.SeriesFormat, nil},
		{"season_format", c.SeasonFormat, nil},
	}
	for _, f := range formats {
		tmpl, err := ParseTemplate(f.format)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		if len(f.needs) > 0 && !tmpl.hasAnySet(f.needs) {
			return fmt.Errorf("%s: %w", f.name, &TemplateError{
				Format: f.format,
				Pos:    len(f.format),
				Reason: "no token identifies the episode",
			})
		}
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s (got %q)", fe.Field(), fe.Param(), fe.Value())
	case "min", "max":
		return fmt.Sprintf("%s must be between 1 and 3 (got %v)", fe.Field(), fe.Value())
	}
	return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
}
