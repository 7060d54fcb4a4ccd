package display

import (
	"fmt"
)

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// FormatEpisodes renders episode numbers as "1", "1-3" for a contiguous run,
// or "1,3,5" otherwise. Empty input gives "".
func FormatEpisodes(eps []int) string {
	switch len(eps) {
	case 0:
		return ""
	case 1:
		return fmt.Sprint(eps[0])
	}
	contiguous := true
	for i := 1; i < len(eps); i++ {
		if eps[i] != eps[i-1]+1 {
			contiguous = false
			break
		}
	}
	if contiguous {
		return fmt.Sprintf("%d-%d", eps[0], eps[len(eps)-1])
	}
	s := fmt.Sprint(eps[0])
	for _, e := range eps[1:] {
		s += fmt.Sprintf(",%d", e)
	}
	return s
}
