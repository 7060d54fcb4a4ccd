package media

import (
	"fmt"
	"time"

	"github.com/backmassage/namewright/internal/quality"
)

// SeriesType selects which episode format a series renders with.
type SeriesType string

const (
	SeriesStandard SeriesType = "standard"
	SeriesDaily    SeriesType = "daily"
	SeriesAnime    SeriesType = "anime"
)

// Series identifies a show in the library.
type Series struct {
	ID    int
	Title string
	Type  SeriesType
}

// Episode is one library episode. AbsoluteEpisodeNumber is 0 when unknown.
type Episode struct {
	SeriesID              int
	SeasonNumber          int
	EpisodeNumber         int
	AbsoluteEpisodeNumber int
	Title                 string
	AirDate               AirDate
}

// EpisodeFile is the on-disk file backing one or more episodes.
// SceneName is the original release title the file was imported from.
type EpisodeFile struct {
	RelativePath string
	SceneName    string
	Quality      quality.Model
	ReleaseGroup string
}

// AirDate is a calendar date without a time component. The zero value means
// no date.
type AirDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewAirDate returns the date and true when year/month/day name a real
// calendar day.
func NewAirDate(year, month, day int) (AirDate, bool) {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return AirDate{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return AirDate{}, false
	}
	return AirDate{Year: year, Month: time.Month(month), Day: day}, true
}

// IsZero reports whether no date is set.
func (d AirDate) IsZero() bool { return d == AirDate{} }

// String formats the date as YYYY-MM-DD, or "" for the zero date.
func (d AirDate) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
