package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/namewright/internal/display"
	"github.com/backmassage/namewright/internal/sample"
)

func newPreviewCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preview [standard|multi-episode|daily|anime]",
		Short: "Render sample file and folder names for the naming config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ncfg, err := a.namingConfig()
			if err != nil {
				return err
			}

			kinds := sample.Kinds()
			if len(args) == 1 {
				kind, err := sample.ParseKind(args[0])
				if err != nil {
					return err
				}
				kinds = []sample.Kind{kind}
			}

			var rows [][]string
			for _, kind := range kinds {
				rows = append(rows, []string{string(kind), sample.Preview(kind, ncfg)})
			}
			if len(args) == 0 {
				rows = append(rows,
					[]string{"series folder", sample.SeriesFolder(ncfg)},
					[]string{"season folder", sample.SeasonFolder(ncfg)},
				)
			}
			_, err = fmt.Fprintln(a.out, display.RenderTable([]string{"Sample", "Name"}, rows, nil))
			return err
		},
	}
}
