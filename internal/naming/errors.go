package naming

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTemplate is wrapped by every [TemplateError].
	ErrInvalidTemplate = errors.New("invalid naming template")
	// ErrInvalidConfig is returned by [Config.Validate] for out-of-range
	// settings.
	ErrInvalidConfig = errors.New("invalid naming config")

	ErrNoEpisodes   = errors.New("no episodes to render")
	ErrMixedSeries  = errors.New("episodes belong to different series")
	ErrMixedSeasons = errors.New("episodes span more than one season")
)

// TemplateError describes why a format string could not be parsed. Pos is
// the byte offset of the offending brace or token.
type TemplateError struct {
	Format string
	Pos    int
	Reason string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("invalid naming template %q at offset %d: %s", e.Format, e.Pos, e.Reason)
}

func (e *TemplateError) Unwrap() error { return ErrInvalidTemplate }
