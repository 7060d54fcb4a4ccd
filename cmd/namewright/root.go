package main

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/namewright/internal/config"
)

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "namewright",
		Short:         "Parse release titles and rename episodes to a naming scheme",
		Version:       version + " (" + commit + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	a.flags = config.BindFlags(rootCmd.PersistentFlags(), &a.cfg)

	rootCmd.AddCommand(newParseCommand(a))
	rootCmd.AddCommand(newGroupCommand(a))
	rootCmd.AddCommand(newPreviewCommand(a))
	rootCmd.AddCommand(newScanCommand(a))
	rootCmd.AddCommand(newRenameCommand(a))
	rootCmd.AddCommand(newCheckCommand(a))
	rootCmd.AddCommand(newConfigCommand(a))

	return rootCmd
}
