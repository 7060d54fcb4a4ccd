package main

import (
	"fmt"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/backmassage/namewright/internal/config"
	"github.com/backmassage/namewright/internal/display"
	"github.com/backmassage/namewright/internal/parser"
	"github.com/backmassage/namewright/internal/pipeline"
)

func newParseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <title>...",
		Short: "Parse release titles or file paths into episode identities",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := pipeline.ScanTitles(cmd.Context(), args, a.cfg.Workers)
			if err != nil {
				return err
			}
			failed := 0
			for _, it := range items {
				if !it.OK() {
					a.log.Debug("Unparsable: %s", it.Input)
					failed++
				}
			}
			if err := pipeline.WriteScanReport(a.out, items, a.cfg.OutputFormat); err != nil {
				return err
			}
			if failed == len(items) {
				a.log.Warn("No title could be parsed")
				return errReported
			}
			return nil
		},
	}
}

// groupRow is one CSV row of the group command.
type groupRow struct {
	Title string `csv:"title"`
	Group string `csv:"release_group"`
}

func newGroupCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "group <title>...",
		Short: "Print the release group of each title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([]groupRow, len(args))
			for i, title := range args {
				rows[i] = groupRow{Title: title, Group: parser.ParseReleaseGroup(title)}
			}
			if a.cfg.OutputFormat == config.FormatCSV {
				return gocsv.Marshal(&rows, a.out)
			}
			cells := make([][]string, len(rows))
			for i, r := range rows {
				cells[i] = []string{r.Title, r.Group}
			}
			_, err := fmt.Fprintln(a.out, display.RenderTable([]string{"Title", "Release Group"}, cells, nil))
			return err
		},
	}
}
