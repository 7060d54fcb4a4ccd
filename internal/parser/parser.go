package parser

import (
	"regexp"
	"strings"

	"github.com/backmassage/namewright/internal/media"
	"github.com/backmassage/namewright/internal/quality"
)

// Info is the structured identity parsed from a release title. Exactly one
// primary axis is populated, depending on [Info.Rule]:
//
//   - standard, multi-episode: SeasonNumber and EpisodeNumbers
//   - daily: AirDate (SeasonNumber is -1)
//   - absolute: AbsoluteEpisodeNumber (SeasonNumber is -1)
//   - full-season: SeasonNumber with FullSeason set
//   - special: SeasonNumber 0 with Special set
type Info struct {
	SeriesTitle           string
	SeasonNumber          int
	EpisodeNumbers        []int
	AbsoluteEpisodeNumber int
	AirDate               media.AirDate
	Quality               quality.Model
	ReleaseGroup          string
	FullSeason            bool
	Special               bool
	Daily                 bool
	Rule                  string
}

// IsAbsolute reports whether the title was numbered by absolute index only.
func (i Info) IsAbsolute() bool { return i.AbsoluteEpisodeNumber > 0 && i.SeasonNumber < 0 }

// ParseTitle parses a single release title. ok is false when no recognizer
// accepts the title.
func ParseTitle(title string) (Info, bool) {
	normalized := Normalize(title)
	res, ok := Match(normalized)
	if !ok {
		return Info{}, false
	}
	return Info{
		SeriesTitle:           res.Title,
		SeasonNumber:          res.Season,
		EpisodeNumbers:        res.Episodes,
		AbsoluteEpisodeNumber: res.Absolute,
		AirDate:               res.AirDate,
		Quality:               quality.Detect(normalized),
		ReleaseGroup:          ParseReleaseGroup(title),
		FullSeason:            res.FullSeason,
		Special:               res.Special,
		Daily:                 res.Daily,
		Rule:                  res.Rule,
	}, true
}

// ParsePath parses a file path. Directories are ignored unless the file name
// alone is unparsable, in which case the parent directory is tried, then the
// parent and file name together. A parsed file with no series title borrows
// one from the nearest directory that is not a season or specials folder.
func ParsePath(path string) (Info, bool) {
	segs := splitPath(path)
	if len(segs) == 0 {
		return Info{}, false
	}
	file := segs[len(segs)-1]
	dirs := segs[:len(segs)-1]

	info, ok := ParseTitle(file)
	if !ok && len(dirs) > 0 {
		parent := dirs[len(dirs)-1]
		if info, ok = ParseTitle(parent); !ok {
			info, ok = ParseTitle(parent + " " + StripExtension(file))
		}
		if ok {
			if g := ParseReleaseGroup(file); g != UnknownReleaseGroup {
				info.ReleaseGroup = g
			}
		}
	}
	if !ok {
		return Info{}, false
	}

	if info.SeriesTitle == "" {
		info.SeriesTitle = titleFromDirs(dirs)
	}
	return info, true
}

var reContainerFolder = regexp.MustCompile(`(?i)^(?:season ?[0-9]{1,3}|s[0-9]{1,2}|specials?|extras?)$`)

// titleFromDirs walks up from the innermost directory and returns the first
// one that names a series rather than a season or specials folder.
func titleFromDirs(dirs []string) string {
	for i := len(dirs) - 1; i >= 0; i-- {
		name := Normalize(dirs[i])
		if name == "" || reContainerFolder.MatchString(name) || strings.HasSuffix(dirs[i], ":") {
			continue
		}
		return cleanTitle(name)
	}
	return ""
}
