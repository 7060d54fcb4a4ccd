// Package sample renders preview file and folder names for a naming config
// from a fixed set of fictional episodes. Fixtures are built fresh on every
// call, so callers may modify a returned [Result] freely.
package sample

import (
	"errors"
	"fmt"
	"strings"

	"github.com/backmassage/namewright/internal/media"
	"github.com/backmassage/namewright/internal/naming"
	"github.com/backmassage/namewright/internal/quality"
)

// Kind selects a sample fixture.
type Kind string

const (
	KindStandard     Kind = "standard"
	KindMultiEpisode Kind = "multi-episode"
	KindDaily        Kind = "daily"
	KindAnime        Kind = "anime"
)

// ErrUnknownKind is returned by [ParseKind].
var ErrUnknownKind = errors.New("unknown sample kind")

// Kinds lists every sample kind in display order.
func Kinds() []Kind {
	return []Kind{KindStandard, KindMultiEpisode, KindDaily, KindAnime}
}

// ParseKind reads a kind name as typed on the command line.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "episode":
		return KindStandard, nil
	case "multi-episode", "multi", "multiepisode":
		return KindMultiEpisode, nil
	case "daily":
		return KindDaily, nil
	case "anime":
		return KindAnime, nil
	}
	return "", fmt.Errorf("%w %q (want one of %s, %s, %s, %s)",
		ErrUnknownKind, s, KindStandard, KindMultiEpisode, KindDaily, KindAnime)
}

// Result is a rendered sample and the fixtures it was rendered from.
// Filename is empty when the config's format could not be rendered.
type Result struct {
	Kind     Kind
	Filename string
	Series   media.Series
	Episodes []media.Episode
	File     media.EpisodeFile
}

const (
	seriesID    = 1
	seriesTitle = "Series Title"
	groupName   = "RlsGrp"
)

// --- Fixture constructors ---

func newSeries(t media.SeriesType) media.Series {
	return media.Series{ID: seriesID, Title: seriesTitle, Type: t}
}

func newEpisode1() media.Episode {
	airDate, _ := media.NewAirDate(2013, 10, 30)
	return media.Episode{
		SeriesID:              seriesID,
		SeasonNumber:          1,
		EpisodeNumber:         1,
		AbsoluteEpisodeNumber: 1,
		Title:                 "Episode Title (1)",
		AirDate:               airDate,
	}
}

func newEpisode2() media.Episode {
	return media.Episode{
		SeriesID:              seriesID,
		SeasonNumber:          1,
		EpisodeNumber:         2,
		AbsoluteEpisodeNumber: 2,
		Title:                 "Episode Title (2)",
	}
}

func newFile(scene string) media.EpisodeFile {
	return media.EpisodeFile{
		RelativePath: scene + ".mkv",
		SceneName:    scene,
		Quality:      quality.NewModel(quality.HDTV720p),
		ReleaseGroup: groupName,
	}
}

func fixtures(kind Kind) (Result, bool) {
	switch kind {
	case KindStandard:
		return Result{
			Series:   newSeries(media.SeriesStandard),
			Episodes: []media.Episode{newEpisode1()},
			File:     newFile("Series.Title.S01E01.720p.HDTV.x264-EVOLVE"),
		}, true
	case KindMultiEpisode:
		return Result{
			Series:   newSeries(media.SeriesStandard),
			Episodes: []media.Episode{newEpisode1(), newEpisode2()},
			File:     newFile("Series.Title.S01E01-E02.720p.HDTV.x264-EVOLVE"),
		}, true
	case KindDaily:
		return Result{
			Series:   newSeries(media.SeriesDaily),
			Episodes: []media.Episode{newEpisode1()},
			File:     newFile("Series.Title.2013.10.30.HDTV.x264-EVOLVE"),
		}, true
	case KindAnime:
		return Result{
			Series:   newSeries(media.SeriesAnime),
			Episodes: []media.Episode{newEpisode1()},
			File:     newFile("Series.Title.001.HDTV.x264-EVOLVE"),
		}, true
	}
	return Result{}, false
}

// Build renders the sample of kind with cfg. Rendering errors leave
// Filename empty; an unknown kind returns a zero Result.
func Build(kind Kind, cfg naming.Config) Result {
	res, ok := fixtures(kind)
	if !ok {
		return Result{}
	}
	res.Kind = kind
	name, err := naming.Render(naming.Context{
		Series:   res.Series,
		Episodes: res.Episodes,
		File:     res.File,
	}, cfg)
	if err == nil {
		res.Filename = name
	}
	return res
}

// Preview returns only the rendered sample file name, or "" on error.
func Preview(kind Kind, cfg naming.Config) string {
	return Build(kind, cfg).Filename
}

// SeriesFolder previews the series folder format, or "" on error.
func SeriesFolder(cfg naming.Config) string {
	name, err := naming.SeriesFolder(newSeries(media.SeriesStandard), cfg)
	if err != nil {
		return ""
	}
	return name
}

// SeasonFolder previews the season folder format for season 1, or "" on
// error.
func SeasonFolder(cfg naming.Config) string {
	name, err := naming.SeasonFolder(newSeries(media.SeriesStandard), newEpisode1().SeasonNumber, cfg)
	if err != nil {
		return ""
	}
	return name
}
