package parser

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// containerExtensions lists the trailing extensions stripped from titles.
// The value reports whether the extension is a playable video container
// (as opposed to a download artifact such as .nzb).
var containerExtensions = map[string]bool{
	"mkv": true, "mp4": true, "avi": true, "m4v": true, "mov": true,
	"wmv": true, "flv": true, "webm": true, "ts": true, "m2ts": true,
	"mpg": true, "mpeg": true, "vob": true, "ogv": true, "divx": true,
	"iso": true, "wtv": true,
	"strm": false, "nzb": false, "torrent": false,
}

var (
	reCodecDot   = regexp.MustCompile(`(?i)\b([hx])\.(26[45])\b`)
	reSeparators = regexp.MustCompile(`[._\s]+`)
)

// Normalize folds a raw release title into the canonical form the
// recognizers expect: NFC text, last path segment only, container extension
// removed, and every run of dots, underscores and whitespace collapsed to a
// single space. "H.264" style codec names are kept as one token. Normalize is
// idempotent and never fails.
func Normalize(raw string) string {
	s := norm.NFC.String(raw)
	s = lastSegment(s)
	s = StripExtension(s)
	s = reCodecDot.ReplaceAllString(s, "${1}${2}")
	s = reSeparators.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// StripExtension removes a trailing known container extension, compared
// case-insensitively. Unknown extensions are left in place.
func StripExtension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return name
	}
	if _, ok := containerExtensions[strings.ToLower(name[i+1:])]; ok {
		return name[:i]
	}
	return name
}

// HasMediaExtension reports whether name ends in a playable video container
// extension.
func HasMediaExtension(name string) bool {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return false
	}
	return containerExtensions[strings.ToLower(name[i+1:])]
}

// lastSegment returns the text after the final '/' or '\'.
func lastSegment(s string) string {
	if i := strings.LastIndexAny(s, `/\`); i >= 0 {
		return s[i+1:]
	}
	return s
}

// splitPath breaks a path on both separator styles, dropping empty segments.
func splitPath(p string) []string {
	return strings.FieldsFunc(p, func(r rune) bool { return r == '/' || r == '\\' })
}
