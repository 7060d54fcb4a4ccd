package parser

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/backmassage/namewright/internal/quality"
)

// UnknownReleaseGroup is returned when no release group can be identified.
const UnknownReleaseGroup = "NOGROUP"

var (
	reGroupCandidate = regexp.MustCompile(`^[\p{L}\p{N}]+$`)
	reAllDigits      = regexp.MustCompile(`^[0-9]+$`)
	reEpisodeToken   = regexp.MustCompile(`(?i)^(?:s[0-9]{1,3})?e[0-9]{1,4}$`)
)

// ParseReleaseGroup returns the release group tag of a title or path: the
// text after the last hyphen of the file name, with the container extension
// removed and a trailing "-RP" repost marker skipped. Candidates that are
// numeric, contain separators, or are quality or episode tokens are rejected.
// The result is never empty and keeps its original case.
func ParseReleaseGroup(title string) string {
	s := norm.NFC.String(strings.TrimSpace(title))
	s = StripExtension(lastSegment(s))

	parts := strings.Split(s, "-")
	if len(parts) < 2 {
		return UnknownReleaseGroup
	}
	if len(parts) >= 3 && strings.EqualFold(parts[len(parts)-1], "RP") {
		parts = parts[:len(parts)-1]
	}

	candidate := parts[len(parts)-1]
	if !isGroupCandidate(candidate) {
		return UnknownReleaseGroup
	}
	return candidate
}

func isGroupCandidate(s string) bool {
	switch {
	case !reGroupCandidate.MatchString(s):
		return false
	case reAllDigits.MatchString(s):
		return false
	case reEpisodeToken.MatchString(s):
		return false
	case quality.IsToken(s):
		return false
	}
	return true
}
