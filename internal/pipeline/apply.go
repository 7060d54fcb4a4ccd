package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/backmassage/namewright/internal/logging"
)

// Apply carries out plan on fs. In dry-run mode nothing is moved but every
// decision is logged and counted as if it were. A failed move is logged and
// counted; the batch continues.
func Apply(ctx context.Context, fs afero.Fs, plan []Rename, dryRun bool, log *logging.Logger) RunStats {
	stats := RunStats{Total: len(plan)}
	for i, r := range plan {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		base := filepath.Base(r.Source)
		switch {
		case r.Err != nil:
			if isSkip(r.Err) {
				log.Warn("[%d/%d] Skip %s: %v", i+1, stats.Total, base, r.Err)
				stats.Skipped++
			} else {
				log.Error("[%d/%d] %s: %v", i+1, stats.Total, base, r.Err)
				stats.Failed++
			}
		case r.Unchanged():
			log.Debug("[%d/%d] Unchanged: %s", i+1, stats.Total, base)
			stats.Unchanged++
		case dryRun:
			log.Info("[%d/%d] %s", i+1, stats.Total, base)
			log.Success("[DRY] Would rename -> %s", r.Target)
			stats.Renamed++
			stats.TotalBytes += r.Size
		default:
			log.Info("[%d/%d] %s", i+1, stats.Total, base)
			if err := move(fs, r.Source, r.Target); err != nil {
				log.Error("Rename failed: %v", err)
				stats.Failed++
				continue
			}
			log.Success("Renamed -> %s", r.Target)
			stats.Renamed++
			stats.TotalBytes += r.Size
		}
	}
	return stats
}

func isSkip(err error) bool {
	return errors.Is(err, ErrUnparsable) || errors.Is(err, ErrNotEpisode) || errors.Is(err, ErrNoTitle)
}

// move renames source to target, creating the target directory. It never
// replaces an existing file, except for a case-only rename of source itself.
func move(fs afero.Fs, source, target string) error {
	if !samePath(source, target) {
		exists, err := afero.Exists(fs, target)
		if err != nil {
			return fmt.Errorf("stat %s: %w", target, err)
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrTargetExists, target)
		}
	}
	if err := fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(target), err)
	}
	if err := fs.Rename(source, target); err != nil {
		return fmt.Errorf("rename %s: %w", source, err)
	}
	return nil
}
