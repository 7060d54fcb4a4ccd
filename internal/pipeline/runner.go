package pipeline

import (
	"context"

	"github.com/spf13/afero"

	"github.com/backmassage/namewright/internal/config"
	"github.com/backmassage/namewright/internal/display"
	"github.com/backmassage/namewright/internal/logging"
	"github.com/backmassage/namewright/internal/naming"
)

// Run is the rename batch entry point. It discovers media files under root,
// parses them in parallel, plans canonical names, applies the plan (or logs
// it when cfg.DryRun is set), and returns aggregate stats with the plan.
func Run(
	ctx context.Context,
	fs afero.Fs,
	cfg *config.Config,
	ncfg naming.Config,
	root string,
	log *logging.Logger,
) (RunStats, []Rename, error) {
	files, err := Discover(fs, root)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return RunStats{}, nil, err
	}
	logBatchHeader(cfg, ncfg, log, root, len(files))

	items, err := Scan(ctx, files, cfg.Workers)
	if err != nil {
		log.Warn("Interrupted during scan")
		return RunStats{Total: len(files)}, nil, err
	}

	plan := Plan(fs, root, items, ncfg)
	stats := Apply(ctx, fs, plan, cfg.DryRun, log)
	logSummary(cfg, log, &stats)
	return stats, plan, ctx.Err()
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, ncfg naming.Config, log *logging.Logger, root string, n int) {
	log.Info("Found %d files in %s", n, root)
	log.Info("Episode format: %s", ncfg.EpisodeFormat)
	log.Debug("Daily format: %s", ncfg.DailyFormat)
	log.Debug("Anime format: %s", ncfg.AnimeFormat)
	log.Info("Folders: %s / %s", ncfg.SeriesFormat, ncfg.SeasonFormat)
	log.Info("Multi-episode style: %s, separator: %s, case: %s",
		ncfg.MultiEpisodeStyle, ncfg.Separator, ncfg.TitleCase)
	log.Debug("Workers: %d", cfg.Workers)
	if cfg.DryRun {
		log.Info("Dry run: no files will be moved (use --apply)")
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	verb := "renamed"
	if cfg.DryRun {
		verb = "to rename"
	}
	log.Info("Done: %d %s, %d unchanged, %d skipped, %d failed",
		stats.Renamed, verb, stats.Unchanged, stats.Skipped, stats.Failed)
	log.Info("  Total files processed: %d of %d", stats.Processed(), stats.Total)
	if stats.Renamed > 0 {
		log.Info("  Data %s: %s", verb, display.FormatBytes(stats.TotalBytes))
	}
	if stats.Failed > 0 {
		log.Warn("  %d files need attention", stats.Failed)
	}
}
