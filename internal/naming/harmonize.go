package naming

import (
	"regexp"
	"strings"
)

// YearVariantIndex maps a series title without a year to the year-tagged
// variants seen across a batch. If "Show" only ever appears as "Show (2019)",
// bare references to "Show" can be upgraded.
type YearVariantIndex map[string][]string

// Accepts "Show (2019)", "Show (2019-2021)" and the parser's "Show 2019".
var reSeriesYearTag = regexp.MustCompile(
	`^(.+?)\s+\(?((?:19|20)[0-9]{2})(-[0-9]{4})?\)?$`)

// SplitSeriesYear splits "Show Name (2019)" into ("Show Name", "2019").
// yearTag is empty when title carries no trailing year.
func SplitSeriesYear(title string) (base, yearTag string) {
	m := reSeriesYearTag.FindStringSubmatch(strings.TrimSpace(title))
	if m == nil {
		return strings.TrimSpace(title), ""
	}
	return strings.TrimSpace(m[1]), m[2] + m[3]
}

// canonicalYearTitle rewrites any accepted year form as "Base (Year)".
func canonicalYearTitle(title string) string {
	base, year := SplitSeriesYear(title)
	if year == "" {
		return title
	}
	return base + " (" + year + ")"
}

// BuildYearVariantIndex registers every year-tagged title of a batch. The
// result is read by [HarmonizeSeriesTitle].
func BuildYearVariantIndex(titles []string) YearVariantIndex {
	idx := make(YearVariantIndex)
	for _, t := range titles {
		base, year := SplitSeriesYear(t)
		if year == "" || base == "" {
			continue
		}
		key := strings.ToLower(base)
		variant := base + " (" + year + ")"
		dup := false
		for _, v := range idx[key] {
			if v == variant {
				dup = true
				break
			}
		}
		if !dup {
			idx[key] = append(idx[key], variant)
		}
	}
	return idx
}

// HarmonizeSeriesTitle returns the canonical form of title. Year-tagged
// titles are rewritten as "Base (Year)". A bare title is upgraded only when
// exactly one year-tagged variant exists in idx.
func HarmonizeSeriesTitle(title string, idx YearVariantIndex) string {
	if _, year := SplitSeriesYear(title); year != "" {
		return canonicalYearTitle(title)
	}
	if variants := idx[strings.ToLower(strings.TrimSpace(title))]; len(variants) == 1 {
		return variants[0]
	}
	return title
}
