package main

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/namewright/internal/check"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the naming config and show samples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ncfg, err := a.namingConfig()
			if err != nil {
				a.log.Error("%v", err)
				return errReported
			}
			if !check.RunCheck(ncfg, a.log) {
				return errReported
			}
			return nil
		},
	}
}
