package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/namewright/internal/config"
	"github.com/backmassage/namewright/internal/display"
	"github.com/backmassage/namewright/internal/pipeline"
)

func newScanCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <dir>",
		Short: "Parse every media file under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := config.NormalizeDirArg(args[0])
			files, err := pipeline.Discover(a.fs, root)
			if err != nil {
				return fmt.Errorf("discover %s: %w", root, err)
			}
			a.log.Debug("Found %d files in %s", len(files), root)

			items, err := pipeline.Scan(cmd.Context(), files, a.cfg.Workers)
			if err != nil {
				return err
			}
			return pipeline.WriteScanReport(a.out, items, a.cfg.OutputFormat)
		},
	}
}

func newRenameCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <dir>",
		Short: "Rename media files under a directory to the naming config",
		Long: "Plans a canonical name for every media file under <dir> and moves it\n" +
			"there. Nothing is moved unless --apply is given.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ncfg, err := a.namingConfig()
			if err != nil {
				return err
			}
			root := config.NormalizeDirArg(args[0])

			if a.cfg.OutputFormat == config.FormatTable {
				display.PrintBanner(a.out)
			}
			stats, plan, err := pipeline.Run(cmd.Context(), a.fs, &a.cfg, ncfg, root, a.log)
			if err != nil {
				return err
			}
			if a.cfg.OutputFormat == config.FormatCSV {
				if err := pipeline.WritePlanReport(a.out, plan, a.cfg.OutputFormat); err != nil {
					return err
				}
			}
			if stats.Failed > 0 {
				return errReported
			}
			return nil
		},
	}
	a.flags.BindRenameFlags(cmd.Flags())
	return cmd
}
