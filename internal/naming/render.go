package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/backmassage/namewright/internal/media"
)

// Context is everything a file name is rendered from.
type Context struct {
	Series   media.Series
	Episodes []media.Episode
	File     media.EpisodeFile
}

// validate enforces the record invariants and returns the episodes sorted by
// episode number.
func (c Context) validate() ([]media.Episode, error) {
	if len(c.Episodes) == 0 {
		return nil, ErrNoEpisodes
	}
	season := c.Episodes[0].SeasonNumber
	for _, ep := range c.Episodes {
		if ep.SeriesID != c.Series.ID {
			return nil, fmt.Errorf("%w: episode S%dE%d has series %d, want %d",
				ErrMixedSeries, ep.SeasonNumber, ep.EpisodeNumber, ep.SeriesID, c.Series.ID)
		}
		if ep.SeasonNumber != season {
			return nil, fmt.Errorf("%w: seasons %d and %d", ErrMixedSeasons, season, ep.SeasonNumber)
		}
	}

	eps := make([]media.Episode, len(c.Episodes))
	copy(eps, c.Episodes)
	sort.SliceStable(eps, func(i, j int) bool {
		return eps[i].EpisodeNumber < eps[j].EpisodeNumber
	})
	return eps, nil
}

// Render produces the file name (without extension) for ctx. The format is
// picked by the series type. cfg is validated first; an invalid config
// renders nothing. Errors are [ErrInvalidConfig], [ErrNoEpisodes],
// [ErrMixedSeries], [ErrMixedSeasons] or a [*TemplateError].
func Render(ctx Context, cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	return renderFile(ctx, cfg)
}

func renderFile(ctx Context, cfg Config) (string, error) {
	eps, err := ctx.validate()
	if err != nil {
		return "", err
	}
	tmpl, err := ParseTemplate(cfg.FormatFor(ctx.Series.Type))
	if err != nil {
		return "", err
	}
	r := renderer{
		cfg:      cfg,
		series:   ctx.Series,
		episodes: eps,
		file:     ctx.File,
		season:   eps[0].SeasonNumber,
		fileName: true,
	}
	return r.render(tmpl), nil
}

// SeriesFolder renders the series folder name.
func SeriesFolder(series media.Series, cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	return seriesFolder(series, cfg)
}

func seriesFolder(series media.Series, cfg Config) (string, error) {
	tmpl, err := ParseTemplate(cfg.SeriesFormat)
	if err != nil {
		return "", err
	}
	r := renderer{cfg: cfg, series: series, season: -1}
	return r.render(tmpl), nil
}

// SpecialsFolder is the season folder used for season 0.
const SpecialsFolder = "Specials"

// SeasonFolder renders the folder name for one season of series. Season 0
// always renders as [SpecialsFolder].
func SeasonFolder(series media.Series, season int, cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	return seasonFolder(series, season, cfg)
}

func seasonFolder(series media.Series, season int, cfg Config) (string, error) {
	tmpl, err := ParseTemplate(cfg.SeasonFormat)
	if err != nil {
		return "", err
	}
	if season == 0 {
		return SpecialsFolder, nil
	}
	r := renderer{cfg: cfg, series: series, season: season}
	return r.render(tmpl), nil
}

// RenderPath joins the series folder, season folder and file name of ctx,
// keeping the extension of ctx.File.RelativePath.
func RenderPath(ctx Context, cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	name, err := renderFile(ctx, cfg)
	if err != nil {
		return "", err
	}
	seriesDir, err := seriesFolder(ctx.Series, cfg)
	if err != nil {
		return "", err
	}
	seasonDir, err := seasonFolder(ctx.Series, ctx.Episodes[0].SeasonNumber, cfg)
	if err != nil {
		return "", err
	}
	return filepath.Join(seriesDir, seasonDir, name+filepath.Ext(ctx.File.RelativePath)), nil
}

// --- Rendering ---

type renderer struct {
	cfg      Config
	series   media.Series
	episodes []media.Episode
	file     media.EpisodeFile
	season   int  // -1 when no season applies
	fileName bool // include flags only apply to file names
}

// part is a rendered token. blank marks a substituted token that produced no
// text, which triggers separator and bracket cleanup around it.
type part struct {
	literal bool
	text    string
	blank   bool
}

func (r renderer) render(t Template) string {
	parts := make([]part, len(t.Tokens))
	for i, tok := range t.Tokens {
		if tok.Kind == TokenLiteral {
			parts[i] = part{literal: true, text: tok.Text}
			continue
		}
		v := r.value(tok)
		parts[i] = part{text: v, blank: v == ""}
	}

	for i := range parts {
		if parts[i].blank {
			dropAround(parts, i)
		}
	}

	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.text)
	}
	return b.String()
}

const separatorChars = " -._"

// dropAround removes what a blank token leaves behind: an emptied bracket
// pair around it, then the run of separator characters on one side of it
// (the preceding side when there is one).
func dropAround(parts []part, i int) {
	prev, next := -1, -1
	if i > 0 && parts[i-1].literal {
		prev = i - 1
	}
	if i+1 < len(parts) && parts[i+1].literal {
		next = i + 1
	}

	if prev >= 0 && next >= 0 {
		for _, pair := range [][2]string{{"[", "]"}, {"(", ")"}} {
			if strings.HasSuffix(parts[prev].text, pair[0]) && strings.HasPrefix(parts[next].text, pair[1]) {
				parts[prev].text = strings.TrimSuffix(parts[prev].text, pair[0])
				parts[next].text = strings.TrimPrefix(parts[next].text, pair[1])
				break
			}
		}
	}

	if prev >= 0 {
		if trimmed := strings.TrimRight(parts[prev].text, separatorChars); trimmed != parts[prev].text {
			parts[prev].text = trimmed
			return
		}
	}
	if next >= 0 {
		parts[next].text = strings.TrimLeft(parts[next].text, separatorChars)
	}
}

var reWhitespace = regexp.MustCompile(`\s+`)

// value renders a single non-literal token.
func (r renderer) value(tok Token) string {
	switch tok.Kind {
	case TokenLiteral:
		return tok.Text
	case TokenSeriesTitle:
		if r.fileName && !r.cfg.IncludeSeriesTitle {
			return ""
		}
		return r.clean(r.series.Title)
	case TokenSeasonNumber:
		if r.season < 0 {
			return ""
		}
		return r.pad(r.season)
	case TokenEpisodeNumber:
		return r.episodeNumbers()
	case TokenSeasonEpisode:
		return r.seasonEpisode(tok)
	case TokenEpisodeTitle:
		if r.fileName && !r.cfg.IncludeEpisodeTitle {
			return ""
		}
		return r.clean(r.episodeTitle())
	case TokenAirDate:
		if len(r.episodes) == 0 {
			return ""
		}
		return r.clean(r.episodes[0].AirDate.String())
	case TokenAbsoluteNumber:
		return r.absoluteNumbers()
	case TokenQuality:
		if r.fileName && !r.cfg.IncludeQuality {
			return ""
		}
		if r.file.Quality.Quality.Name == "" {
			return ""
		}
		return r.clean(r.file.Quality.String())
	case TokenReleaseGroup:
		if r.fileName && !r.cfg.IncludeReleaseGroup {
			return ""
		}
		return r.clean(r.file.ReleaseGroup)
	case TokenSceneTitle:
		return r.clean(r.file.SceneName)
	}
	return ""
}

// illegalChars replaces characters most filesystems reject.
var illegalChars = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// clean applies case folding, whitespace to separator, then
// illegal-character replacement to a substituted value.
func (r renderer) clean(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	switch r.cfg.TitleCase {
	case CaseTitle:
		s = cases.Title(language.Und).String(s)
	case CaseLower:
		s = cases.Lower(language.Und).String(s)
	}
	s = reWhitespace.ReplaceAllString(s, r.cfg.Separator.Char())
	return illegalChars.Replace(s)
}

func (r renderer) pad(n int) string {
	width := r.cfg.NumberPadding
	if width < 1 {
		width = 1
	}
	return fmt.Sprintf("%0*d", width, n)
}

// absolutePadding is the minimum width of absolute numbers.
const absolutePadding = 3

func (r renderer) episodeNumbers() string {
	nums := make([]string, len(r.episodes))
	for i, ep := range r.episodes {
		nums[i] = r.pad(ep.EpisodeNumber)
	}
	return r.joinNumbers(nums)
}

func (r renderer) absoluteNumbers() string {
	width := max(r.cfg.NumberPadding, absolutePadding)
	var nums []string
	for _, ep := range r.episodes {
		if ep.AbsoluteEpisodeNumber > 0 {
			nums = append(nums, fmt.Sprintf("%0*d", width, ep.AbsoluteEpisodeNumber))
		}
	}
	return r.joinNumbers(nums)
}

// joinNumbers renders a bare number list according to the multi-episode
// style: "01-03" (extend), "01-02-03" (repeat) or "01 02 03" (duplicate,
// joined with the separator).
func (r renderer) joinNumbers(nums []string) string {
	switch len(nums) {
	case 0:
		return ""
	case 1:
		return nums[0]
	}
	switch r.cfg.MultiEpisodeStyle {
	case StyleRepeat:
		return strings.Join(nums, "-")
	case StyleDuplicate:
		return strings.Join(nums, r.cfg.Separator.Char())
	}
	return nums[0] + "-" + nums[len(nums)-1]
}

// seasonEpisode renders a grouped "S{season}E{episode}" token for one or
// more episodes.
func (r renderer) seasonEpisode(tok Token) string {
	if len(r.episodes) == 0 {
		if r.season < 0 {
			return ""
		}
		return tok.Prefix + r.pad(r.season)
	}
	head := tok.Prefix + r.pad(r.season) + tok.Infix
	if len(r.episodes) == 1 {
		return head + r.pad(r.episodes[0].EpisodeNumber)
	}

	switch r.cfg.MultiEpisodeStyle {
	case StyleRepeat:
		var b strings.Builder
		b.WriteString(tok.Prefix + r.pad(r.season))
		for _, ep := range r.episodes {
			b.WriteString(tok.Infix + r.pad(ep.EpisodeNumber))
		}
		return b.String()
	case StyleDuplicate:
		parts := make([]string, len(r.episodes))
		for i, ep := range r.episodes {
			parts[i] = head + r.pad(ep.EpisodeNumber)
		}
		return strings.Join(parts, r.cfg.Separator.Char())
	}

	first := r.episodes[0].EpisodeNumber
	last := r.episodes[len(r.episodes)-1].EpisodeNumber
	marker := "-"
	if strings.EqualFold(tok.Infix, "e") {
		marker += tok.Infix
	}
	return head + r.pad(first) + marker + r.pad(last)
}

// episodeTitle joins the distinct episode titles with " + ".
func (r renderer) episodeTitle() string {
	var titles []string
	for _, ep := range r.episodes {
		t := strings.TrimSpace(ep.Title)
		if t == "" || (len(titles) > 0 && titles[len(titles)-1] == t) {
			continue
		}
		titles = append(titles, t)
	}
	return strings.Join(titles, " + ")
}
