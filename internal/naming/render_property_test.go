package naming

import (
	"reflect"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/backmassage/namewright/internal/media"
	"github.com/backmassage/namewright/internal/parser"
	"github.com/backmassage/namewright/internal/quality"
)

// titleGen generates plain multi-word titles without digits or quality
// words, so the title itself can never look like an episode marker.
func titleGen() *rapid.Generator[string] {
	word := rapid.StringMatching(`[A-Z][a-z]{2,8}`).Filter(func(w string) bool {
		return !quality.IsToken(w)
	})
	return rapid.Custom(func(t *rapid.T) string {
		words := rapid.SliceOfN(word, 1, 4).Draw(t, "words")
		return strings.Join(words, " ")
	})
}

func configGen() *rapid.Generator[Config] {
	return rapid.Custom(func(t *rapid.T) Config {
		cfg := DefaultConfig()
		cfg.MultiEpisodeStyle = rapid.SampledFrom([]MultiEpisodeStyle{StyleExtend, StyleRepeat, StyleDuplicate}).Draw(t, "style")
		cfg.Separator = rapid.SampledFrom([]Separator{SeparatorSpace, SeparatorDot, SeparatorUnderscore}).Draw(t, "sep")
		cfg.NumberPadding = rapid.IntRange(1, 3).Draw(t, "padding")
		return cfg
	})
}

// contextGen builds a standard-series context with 1 to 3 consecutive
// episodes of one season.
func contextGen() *rapid.Generator[Context] {
	return rapid.Custom(func(t *rapid.T) Context {
		series := media.Series{ID: 7, Title: titleGen().Draw(t, "series"), Type: media.SeriesStandard}
		season := rapid.IntRange(1, 99).Draw(t, "season")
		first := rapid.IntRange(1, 500).Draw(t, "first")
		count := rapid.IntRange(1, 3).Draw(t, "count")

		ctx := Context{
			Series: series,
			File: media.EpisodeFile{
				Quality:      quality.NewModel(quality.HDTV720p),
				ReleaseGroup: "RlsGrp",
			},
		}
		for i := range count {
			ctx.Episodes = append(ctx.Episodes, media.Episode{
				SeriesID:      series.ID,
				SeasonNumber:  season,
				EpisodeNumber: first + i,
				Title:         titleGen().Draw(t, "episodeTitle"),
			})
		}
		return ctx
	})
}

func TestRender_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := contextGen().Draw(t, "ctx")
		cfg := configGen().Draw(t, "cfg")

		a, errA := Render(ctx, cfg)
		b, errB := Render(ctx, cfg)
		if errA != nil || errB != nil {
			t.Fatalf("Render errors: %v, %v", errA, errB)
		}
		if a != b {
			t.Fatalf("Render not deterministic: %q vs %q", a, b)
		}
	})
}

func TestRender_ParseRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := contextGen().Draw(t, "ctx")
		cfg := configGen().Draw(t, "cfg")

		name, err := Render(ctx, cfg)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}

		info, ok := parser.ParseTitle(name + ".mkv")
		if !ok {
			t.Fatalf("ParseTitle(%q) not parsed", name)
		}

		wantEps := make([]int, len(ctx.Episodes))
		for i, ep := range ctx.Episodes {
			wantEps[i] = ep.EpisodeNumber
		}
		if info.SeasonNumber != ctx.Episodes[0].SeasonNumber {
			t.Fatalf("%q: season %d, want %d", name, info.SeasonNumber, ctx.Episodes[0].SeasonNumber)
		}
		if !reflect.DeepEqual(info.EpisodeNumbers, wantEps) {
			t.Fatalf("%q: episodes %v, want %v", name, info.EpisodeNumbers, wantEps)
		}
		if info.SeriesTitle != ctx.Series.Title {
			t.Fatalf("%q: title %q, want %q", name, info.SeriesTitle, ctx.Series.Title)
		}
		if info.ReleaseGroup != "RlsGrp" {
			t.Fatalf("%q: group %q", name, info.ReleaseGroup)
		}
		if info.Quality.Quality != quality.HDTV720p {
			t.Fatalf("%q: quality %s", name, info.Quality)
		}
	})
}
