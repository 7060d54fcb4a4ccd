package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/backmassage/namewright/internal/media"
	"github.com/backmassage/namewright/internal/naming"
	"github.com/backmassage/namewright/internal/parser"
)

var (
	// ErrNotEpisode is recorded for parsed items that name no single
	// episode, such as full-season packs or bare specials folders.
	ErrNotEpisode = errors.New("not an episode file")
	// ErrNoTitle is recorded when neither the file nor its folders name a
	// series.
	ErrNoTitle = errors.New("no series title")
	// ErrTargetExists is returned by [Apply] when a planned target appears
	// on disk before the move.
	ErrTargetExists = errors.New("target already exists")
)

// Rename is one planned move. Target is empty when Err is set.
type Rename struct {
	Source string
	Target string
	Size   int64
	Info   parser.Info
	Err    error
}

// Unchanged reports whether the file already has its canonical name.
func (r Rename) Unchanged() bool { return r.Err == nil && r.Source == r.Target }

// Plan renders a canonical target under root for every item. Series titles
// are harmonized across the batch before rendering, so "Show" and
// "Show (2019)" land in one folder when the year form is unambiguous.
// Targets that collide within the batch, or with a file already on disk,
// get " (N)" suffixes.
func Plan(fs afero.Fs, root string, items []Item, cfg naming.Config) []Rename {
	titles := make([]string, 0, len(items))
	for _, it := range items {
		if it.OK() {
			titles = append(titles, it.Info.SeriesTitle)
		}
	}
	yearIndex := naming.BuildYearVariantIndex(titles)
	resolver := naming.NewCollisionResolver()
	ids := make(map[string]int)

	plan := make([]Rename, len(items))
	for i, it := range items {
		r := Rename{Source: it.Input, Size: it.Size, Info: it.Info, Err: it.Err}
		if r.Err == nil {
			r.Target, r.Err = planOne(it, cfg, yearIndex, ids)
		}
		if r.Err == nil {
			r.Target, r.Err = resolveTarget(fs, resolver, r.Source, filepath.Join(root, r.Target))
		}
		if r.Err != nil {
			r.Target = ""
		}
		plan[i] = r
	}
	return plan
}

// resolveTarget claims target for source. A name already taken on disk by
// another file is reserved and the next " (N)" suffix is tried instead.
func resolveTarget(fs afero.Fs, resolver *naming.CollisionResolver, source, target string) (string, error) {
	got := resolver.Resolve(source, target)
	for !samePath(got, source) {
		exists, err := afero.Exists(fs, got)
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", got, err)
		}
		if !exists {
			break
		}
		resolver.Reserve(got)
		got = resolver.Resolve(source, target)
	}
	return got, nil
}

func planOne(it Item, cfg naming.Config, yearIndex naming.YearVariantIndex, ids map[string]int) (string, error) {
	info := it.Info
	title := naming.HarmonizeSeriesTitle(info.SeriesTitle, yearIndex)
	if title == "" {
		return "", ErrNoTitle
	}
	key := strings.ToLower(title)
	id, ok := ids[key]
	if !ok {
		id = len(ids) + 1
		ids[key] = id
	}

	series := media.Series{ID: id, Title: title, Type: seriesType(info)}
	episodes, err := episodesFor(id, info)
	if err != nil {
		return "", err
	}

	group := info.ReleaseGroup
	if group == parser.UnknownReleaseGroup {
		group = ""
	}
	ctx := naming.Context{
		Series:   series,
		Episodes: episodes,
		File: media.EpisodeFile{
			RelativePath: it.Input,
			SceneName:    parser.StripExtension(filepath.Base(it.Input)),
			Quality:      info.Quality,
			ReleaseGroup: group,
		},
	}
	return naming.RenderPath(ctx, cfg)
}

func seriesType(info parser.Info) media.SeriesType {
	switch {
	case info.Daily:
		return media.SeriesDaily
	case info.IsAbsolute():
		return media.SeriesAnime
	}
	return media.SeriesStandard
}

// episodesFor builds the library episodes a parsed file covers. Daily
// episodes are filed under their air year as season and numbered by day of
// year; absolute-only episodes are filed under season 1 with the absolute
// number as episode number.
func episodesFor(seriesID int, info parser.Info) ([]media.Episode, error) {
	switch {
	case info.Daily:
		return []media.Episode{{
			SeriesID:      seriesID,
			SeasonNumber:  info.AirDate.Year,
			EpisodeNumber: dayOfYear(info.AirDate),
			AirDate:       info.AirDate,
		}}, nil
	case info.IsAbsolute():
		return []media.Episode{{
			SeriesID:              seriesID,
			SeasonNumber:          1,
			EpisodeNumber:         info.AbsoluteEpisodeNumber,
			AbsoluteEpisodeNumber: info.AbsoluteEpisodeNumber,
		}}, nil
	case len(info.EpisodeNumbers) > 0:
		eps := make([]media.Episode, len(info.EpisodeNumbers))
		for i, n := range info.EpisodeNumbers {
			eps[i] = media.Episode{SeriesID: seriesID, SeasonNumber: info.SeasonNumber, EpisodeNumber: n}
		}
		return eps, nil
	}
	return nil, ErrNotEpisode
}

func dayOfYear(d media.AirDate) int {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).YearDay()
}

// samePath compares case-insensitively so a case-only rename is not
// reported as a clash with itself.
func samePath(a, b string) bool {
	return strings.EqualFold(filepath.Clean(a), filepath.Clean(b))
}
