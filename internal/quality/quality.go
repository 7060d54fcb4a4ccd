package quality

import "fmt"

// Source is where a release was captured from.
type Source string

const (
	SourceUnknown Source = "unknown"
	SourceTV      Source = "television"
	SourceRawHD   Source = "televisionRaw"
	SourceWeb     Source = "web"
	SourceDVD     Source = "dvd"
	SourceBluray  Source = "bluray"
)

// Quality is one rung of the ranked quality ladder.
type Quality struct {
	ID         int
	Name       string
	Source     Source
	Resolution int
}

var (
	Unknown     = Quality{0, "Unknown", SourceUnknown, 0}
	SDTV        = Quality{1, "SDTV", SourceTV, 480}
	DVD         = Quality{2, "DVD", SourceDVD, 480}
	WEBDL1080p  = Quality{3, "WEBDL-1080p", SourceWeb, 1080}
	HDTV720p    = Quality{4, "HDTV-720p", SourceTV, 720}
	WEBDL720p   = Quality{5, "WEBDL-720p", SourceWeb, 720}
	Bluray720p  = Quality{6, "Bluray-720p", SourceBluray, 720}
	Bluray1080p = Quality{7, "Bluray-1080p", SourceBluray, 1080}
	WEBDL480p   = Quality{8, "WEBDL-480p", SourceWeb, 480}
	HDTV1080p   = Quality{9, "HDTV-1080p", SourceTV, 1080}
	RAWHD       = Quality{10, "Raw-HD", SourceRawHD, 1080}
	HDTV2160p   = Quality{16, "HDTV-2160p", SourceTV, 2160}
	WEBDL2160p  = Quality{18, "WEBDL-2160p", SourceWeb, 2160}
	Bluray2160p = Quality{19, "Bluray-2160p", SourceBluray, 2160}
)

// ladder lists every quality from worst to best. A quality's index is its
// weight in comparisons.
var ladder = []Quality{
	Unknown,
	SDTV,
	WEBDL480p,
	DVD,
	HDTV720p,
	HDTV1080p,
	RAWHD,
	WEBDL720p,
	Bluray720p,
	WEBDL1080p,
	Bluray1080p,
	HDTV2160p,
	WEBDL2160p,
	Bluray2160p,
}

var weights = func() map[int]int {
	m := make(map[int]int, len(ladder))
	for i, q := range ladder {
		m[q.ID] = i
	}
	return m
}()

// All returns the quality ladder ordered from lowest to highest.
func All() []Quality {
	out := make([]Quality, len(ladder))
	copy(out, ladder)
	return out
}

// Weight returns the rank of q. Qualities not in the ladder rank as Unknown.
func (q Quality) Weight() int { return weights[q.ID] }

func (q Quality) String() string { return q.Name }

// Revision records re-releases of the same quality. Version starts at 1;
// PROPER/REPACK bump it to 2 and anime "v3" style markers set it directly.
type Revision struct {
	Version int
	Real    int
}

// Model is a detected quality plus its revision.
type Model struct {
	Quality  Quality
	Revision Revision
}

// NewModel returns m at revision 1.
func NewModel(q Quality) Model {
	return Model{Quality: q, Revision: Revision{Version: 1}}
}

// Compare orders two models by quality weight, then revision version, then
// the REAL counter. It returns -1, 0 or 1.
func (m Model) Compare(other Model) int {
	if c := cmpInt(m.Quality.Weight(), other.Quality.Weight()); c != 0 {
		return c
	}
	if c := cmpInt(m.Revision.Version, other.Revision.Version); c != 0 {
		return c
	}
	return cmpInt(m.Revision.Real, other.Revision.Real)
}

// String renders the label used in file names, e.g. "HDTV-720p Proper".
func (m Model) String() string {
	s := m.Quality.Name
	if m.Revision.Version > 1 {
		s += " Proper"
	}
	if m.Revision.Real > 0 {
		s += " REAL"
	}
	return s
}

// GoString keeps %#v output short in test failures.
func (m Model) GoString() string {
	return fmt.Sprintf("quality.Model{%s v%d r%d}", m.Quality.Name, m.Revision.Version, m.Revision.Real)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
