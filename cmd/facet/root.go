package main

import (
	"github.com/spf13/cobra"

	"github.com/facetui/facet/internal/logger"
)

func newRootCmd(log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "facet",
		Short:         "Facet resolves design-system themes and component specs",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newInspectCmd(log))
	cmd.AddCommand(newPlatformsCmd())
	cmd.AddCommand(newPreviewCmd(log))
	cmd.AddCommand(newBrowseCmd(log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
