package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/backmassage/namewright/internal/media"
)

// Rule pairs a compiled regex with an extraction function. Rules are
// evaluated in order by [Match]; the first rule whose pattern hits and whose
// Extract accepts wins. Extract receives the whole normalized text and the
// submatches so it can reject a hit or look for a later candidate.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Extract func(normalized string, m []string) (Result, bool)
}

// Rule names as reported in [Result.Rule] and [Info.Rule].
const (
	RuleStandard     = "standard"
	RuleMultiEpisode = "multi-episode"
	RuleDaily        = "daily"
	RuleAbsolute     = "absolute"
	RuleFullSeason   = "full-season"
	RuleSpecial      = "special"
)

// Result is the raw identity recovered by one rule.
type Result struct {
	Rule       string
	Title      string
	Season     int // -1 when the rule carries no season
	Episodes   []int
	Absolute   int
	AirDate    media.AirDate
	FullSeason bool
	Special    bool
	Daily      bool
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

// --- Title cleanup shared by every rule ---

var (
	reLeadingGroupTag = regexp.MustCompile(`^\[[^\]]*\]\s*`)
	reTrailingSeason  = regexp.MustCompile(`(?i)[\s\-]*\b(?:s[0-9]{1,2}|season [0-9]{1,3})$`)
	reSeasonMarker    = regexp.MustCompile(`(?i)\b(?:s[0-9]{1,2}|season [0-9]{1,3})\b`)
	reSeasonLead      = regexp.MustCompile(`(?i)\bseason ?$`)
	reVersionPrefix   = regexp.MustCompile(`(?i)^v[0-9]+`)
)

// cleanTitle trims separators from a title fragment and removes a leading
// "[group]" tag.
func cleanTitle(s string) string {
	s = strings.TrimSpace(s)
	s = reLeadingGroupTag.ReplaceAllString(s, "")
	return strings.Trim(s, " -[(")
}

// --- Compiled rule patterns (order matters) ---

var (
	// First episode marker: S01E05, S01 E05 or legacy 10x11.
	reEpisodeMarker = regexp.MustCompile(
		`(?i)^(.*?)(?:\bs([0-9]{1,3}) ?e|\b([0-9]{1,2})x)([0-9]{1,3})(.*)$`)

	reDaily = regexp.MustCompile(
		`\b((?:19|20)[0-9]{2})[-. /]([0-9]{1,2})[-. /]([0-9]{1,2})\b`)

	reAbsolute = regexp.MustCompile(
		`(?i)\b([0-9]{2,4})(?:v[0-9]+)?\b`)

	reFullSeason = regexp.MustCompile(
		`(?i)^(.*?)\b(?:s([0-9]{1,2})|season ([0-9]{1,3}))\b(.*)$`)

	reSpecial = regexp.MustCompile(
		`(?i)^(.*?)\b(?:specials?|extras?)\b(.*)$`)

	reQualifier = regexp.MustCompile(`(?i)\b(?:specials?|extras?)\b`)
)

// --- Episode continuation markers for multi-episode runs ---

type continuationRule struct {
	Pattern *regexp.Regexp
	Range   bool // fills every episode between the previous one and this one
	Legacy  bool // only follows a legacy NxNN marker
}

// Each pattern captures an optional season and the episode number. The end
// of a marker is checked by [markerEnds], not by the pattern.
var continuations = []continuationRule{
	// "-E02", "-02", "-S01E02"
	{regexp.MustCompile(`(?i)^-(?:s([0-9]{1,3}) ?)?e?([0-9]{1,3})(?:v[0-9]+)?`), true, false},
	// " - E02", " - S01E02"
	{regexp.MustCompile(`(?i)^ - (?:s([0-9]{1,3}) ?)?e([0-9]{1,3})(?:v[0-9]+)?`), true, false},
	// "E02", " E02", " S01E02"
	{regexp.MustCompile(`(?i)^ ?(?:s([0-9]{1,3}) ?)?e([0-9]{1,3})(?:v[0-9]+)?`), false, false},
	// "x02"
	{regexp.MustCompile(`(?i)^x()([0-9]{1,3})(?:v[0-9]+)?`), false, true},
}

// markerEnds reports whether an episode marker may end at rest[n]: at the
// end of the text, before a non-word character, or directly before the "E"
// of a chained marker as in "E01E02E03".
func markerEnds(rest string, n int) bool {
	if n >= len(rest) {
		return true
	}
	switch c := rest[n]; {
	case c == 'e' || c == 'E':
		return true
	case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		return false
	}
	return true
}

// nextContinuation matches the episode marker at the start of rest, if any.
func nextContinuation(rest string, legacy bool) ([]string, bool) {
	for _, c := range continuations {
		if c.Legacy && !legacy {
			continue
		}
		if sm := c.Pattern.FindStringSubmatch(rest); sm != nil && markerEnds(rest, len(sm[0])) {
			return sm, c.Range
		}
	}
	return nil, false
}

// Rules is the ordered recognizer table. First accepting rule wins.
var Rules = []Rule{
	{RuleStandard, reEpisodeMarker, extractStandard},
	{RuleMultiEpisode, reEpisodeMarker, extractMultiEpisode},
	{RuleDaily, reDaily, extractDaily},
	{RuleAbsolute, reAbsolute, extractAbsolute},
	{RuleFullSeason, reFullSeason, extractFullSeason},
	{RuleSpecial, reSpecial, extractSpecial},
}

// Match runs the rule table over already-normalized text. A miss is reported
// through ok, never as an error.
func Match(normalized string) (Result, bool) {
	for _, rule := range Rules {
		m := rule.Pattern.FindStringSubmatch(normalized)
		if m == nil {
			continue
		}
		if res, ok := rule.Extract(normalized, m); ok {
			res.Rule = rule.Name
			return res, true
		}
	}
	return Result{}, false
}

// --- Extract functions (one per rule) ---

// markerSeason returns the season of a reEpisodeMarker hit and whether the
// hit used the legacy NxNN form.
func markerSeason(m []string) (season int, legacy bool) {
	if m[2] != "" {
		return atoi(m[2]), false
	}
	return atoi(m[3]), true
}

func extractStandard(_ string, m []string) (Result, bool) {
	season, legacy := markerSeason(m)
	rest := reVersionPrefix.ReplaceAllString(m[5], "")
	if rest != "" && rest[0] >= '0' && rest[0] <= '9' {
		return Result{}, false
	}
	if sm, _ := nextContinuation(rest, legacy); sm != nil {
		return Result{}, false
	}
	return Result{
		Title:    cleanTitle(m[1]),
		Season:   season,
		Episodes: []int{atoi(m[4])},
	}, true
}

func extractMultiEpisode(_ string, m []string) (Result, bool) {
	season, legacy := markerSeason(m)
	prev := atoi(m[4])
	seen := map[int]struct{}{prev: {}}
	rest := reVersionPrefix.ReplaceAllString(m[5], "")

	more := 0
	for {
		sm, ranged := nextContinuation(rest, legacy)
		if sm == nil {
			break
		}
		if sm[1] != "" && atoi(sm[1]) != season {
			return Result{}, false
		}
		ep := atoi(sm[2])
		if ranged && ep > prev {
			for n := prev + 1; n < ep; n++ {
				seen[n] = struct{}{}
			}
		}
		seen[ep] = struct{}{}
		prev = ep
		rest = rest[len(sm[0]):]
		more++
	}
	if more == 0 {
		return Result{}, false
	}

	eps := make([]int, 0, len(seen))
	for n := range seen {
		eps = append(eps, n)
	}
	sort.Ints(eps)
	return Result{
		Title:    cleanTitle(m[1]),
		Season:   season,
		Episodes: eps,
	}, true
}

func extractDaily(s string, _ []string) (Result, bool) {
	for _, loc := range reDaily.FindAllStringSubmatchIndex(s, -1) {
		date, ok := media.NewAirDate(
			atoi(s[loc[2]:loc[3]]), atoi(s[loc[4]:loc[5]]), atoi(s[loc[6]:loc[7]]))
		if !ok {
			continue
		}
		return Result{
			Title:   cleanTitle(s[:loc[0]]),
			Season:  -1,
			AirDate: date,
			Daily:   true,
		}, true
	}
	return Result{}, false
}

func extractAbsolute(s string, _ []string) (Result, bool) {
	for _, loc := range reAbsolute.FindAllStringSubmatchIndex(s, -1) {
		digits := s[loc[2]:loc[3]]
		if len(digits) == 4 && (strings.HasPrefix(digits, "19") || strings.HasPrefix(digits, "20")) {
			continue
		}
		before, after := s[:loc[0]], s[loc[1]:]
		if reSeasonMarker.MatchString(before) || reSeasonLead.MatchString(before) {
			continue
		}
		// "The 4400 Season 2" is a season pack, not episode 4400.
		if reSeasonMarker.MatchString(after) {
			continue
		}
		title := cleanTitle(before)
		if title == "" {
			continue
		}
		n := atoi(digits)
		if n == 0 {
			continue
		}
		return Result{
			Title:    title,
			Season:   -1,
			Absolute: n,
		}, true
	}
	return Result{}, false
}

func extractFullSeason(_ string, m []string) (Result, bool) {
	if reQualifier.MatchString(m[1]) || reQualifier.MatchString(m[4]) {
		return Result{}, false
	}
	season := atoi(m[2])
	if m[2] == "" {
		season = atoi(m[3])
	}
	return Result{
		Title:      cleanTitle(m[1]),
		Season:     season,
		FullSeason: true,
	}, true
}

func extractSpecial(_ string, m []string) (Result, bool) {
	title := reTrailingSeason.ReplaceAllString(cleanTitle(m[1]), "")
	return Result{
		Title:   cleanTitle(title),
		Season:  0,
		Special: true,
	}, true
}
