package quality

import (
	"regexp"
	"strconv"
	"strings"
)

// --- Resolution cascade (first hit wins) ---

type resolutionRule struct {
	Resolution int
	Pattern    *regexp.Regexp
}

var resolutionRules = []resolutionRule{
	{2160, regexp.MustCompile(`(?i)\b(2160p|4k|uhd)\b`)},
	{1080, regexp.MustCompile(`(?i)\b1080[pi]\b`)},
	{720, regexp.MustCompile(`(?i)\b720p\b`)},
	{480, regexp.MustCompile(`(?i)\b(480[pi]|576p|640x480|848x480)\b`)},
}

// --- Source cascade (first hit wins) ---

type sourceRule struct {
	Source  Source
	Pattern *regexp.Regexp
}

var sourceRules = []sourceRule{
	{SourceBluray, regexp.MustCompile(`(?i)\b(blu-?ray|bdrip|brrip|bdremux|bd25|bd50|bd)\b`)},
	{SourceWeb, regexp.MustCompile(`(?i)\b(web-?dl|web-?rip|web)\b`)},
	{SourceRawHD, regexp.MustCompile(`(?i)\b(raw-?hd|mpeg-?2)\b`)},
	{SourceTV, regexp.MustCompile(`(?i)\b(hdtv|pdtv|sdtv|dsr|dsrip|tvrip)\b`)},
	{SourceDVD, regexp.MustCompile(`(?i)\b(dvdrip|dvdr|dvd5|dvd9|dvd|ntsc|pal)\b`)},
}

var (
	reHDTV      = regexp.MustCompile(`(?i)\bhdtv\b`)
	reSDCodec   = regexp.MustCompile(`(?i)\b(xvid|divx)\b`)
	reProper    = regexp.MustCompile(`(?i)\b(proper|repack|rerip)\b`)
	reVersion   = regexp.MustCompile(`(?i)(?:\b|\d)v([0-9])\b`)
	reRealToken = regexp.MustCompile(`\bREAL\b`)
)

// Detect infers the quality model of a normalized release title.
func Detect(normalized string) Model {
	return Model{
		Quality:  detectQuality(normalized),
		Revision: detectRevision(normalized),
	}
}

func detectResolution(s string) int {
	for _, r := range resolutionRules {
		if r.Pattern.MatchString(s) {
			return r.Resolution
		}
	}
	return 0
}

func detectSource(s string) Source {
	for _, r := range sourceRules {
		if r.Pattern.MatchString(s) {
			return r.Source
		}
	}
	return SourceUnknown
}

func detectQuality(s string) Quality {
	res := detectResolution(s)
	switch detectSource(s) {
	case SourceBluray:
		return pickByResolution(res, Bluray2160p, Bluray1080p, Bluray720p, DVD)
	case SourceWeb:
		return pickByResolution(res, WEBDL2160p, WEBDL1080p, WEBDL720p, WEBDL480p)
	case SourceRawHD:
		return RAWHD
	case SourceTV:
		if !reHDTV.MatchString(s) && res == 0 {
			return SDTV
		}
		return pickByResolution(res, HDTV2160p, HDTV1080p, HDTV720p, SDTV)
	case SourceDVD:
		return DVD
	}

	switch res {
	case 2160:
		return HDTV2160p
	case 1080:
		return HDTV1080p
	case 720:
		return HDTV720p
	case 480:
		return SDTV
	}
	if reSDCodec.MatchString(s) {
		return SDTV
	}
	return Unknown
}

// pickByResolution maps a resolution to one of four qualities of the same
// source. Unknown and SD resolutions fall to sd.
func pickByResolution(res int, uhd, fhd, hd, sd Quality) Quality {
	switch res {
	case 2160:
		return uhd
	case 1080:
		return fhd
	case 720:
		return hd
	}
	return sd
}

func detectRevision(s string) Revision {
	rev := Revision{Version: 1}
	if reProper.MatchString(s) {
		rev.Version = 2
	}
	if m := reVersion.FindStringSubmatch(s); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil && v > 0 {
			rev.Version = v
		}
	}
	rev.Real = len(reRealToken.FindAllStringIndex(s, -1))
	return rev
}

// vocabulary is the release-group denylist: every token the detector treats
// as a quality, source, codec or revision marker, plus common audio tags that
// sit in the same position of a release name.
var vocabulary = map[string]struct{}{}

func init() {
	for _, tok := range []string{
		// resolutions
		"360p", "480p", "480i", "576p", "720p", "1080p", "1080i", "2160p", "4k", "uhd",
		// sources
		"hdtv", "pdtv", "sdtv", "dsr", "dsrip", "tvrip",
		"dvd", "dvdrip", "dvdr", "dvd5", "dvd9", "ntsc", "pal",
		"bluray", "bdrip", "brrip", "bdremux", "bd", "bd25", "bd50", "remux",
		"web", "webdl", "webrip", "dl", "rip", "rawhd", "mpeg2",
		// video codecs
		"x264", "x265", "h264", "h265", "hevc", "avc", "xvid", "divx", "10bit",
		// audio
		"aac", "ac3", "eac3", "dts", "truehd", "flac", "mp3", "dd51", "atmos",
		// revision markers
		"proper", "repack", "rerip", "real", "internal",
	} {
		vocabulary[tok] = struct{}{}
	}
}

var reResolutionToken = regexp.MustCompile(`(?i)^[0-9]{3,4}[pi]$`)

// IsToken reports whether s, compared case-insensitively, is a quality,
// source, codec or revision token rather than a plausible release group.
func IsToken(s string) bool {
	if _, ok := vocabulary[strings.ToLower(s)]; ok {
		return true
	}
	return reResolutionToken.MatchString(s)
}
