package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/namewright/internal/config"
)

func newConfigCommand(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Naming config utilities",
	}
	configCmd.AddCommand(newConfigInitCommand(a))
	return configCmd
}

func newConfigInitCommand(a *app) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Write a sample naming config (.toml, .yaml or .yml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]
			err := config.WriteNamingSample(a.fs, target, overwrite)
			if errors.Is(err, config.ErrExists) {
				return fmt.Errorf("%w (use --overwrite to replace it)", err)
			}
			if err != nil {
				return fmt.Errorf("create sample naming config: %w", err)
			}
			fmt.Fprintf(a.out, "Wrote sample naming config to %s\n", target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite an existing file")
	return cmd
}
