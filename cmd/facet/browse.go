package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/facetui/facet/internal/browser"
	"github.com/facetui/facet/internal/logger"
)

func newBrowseCmd(log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse resolved component specs interactively",
		Long:  `Launch the interactive browser to explore component specs across variants, platforms, densities and interaction states.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info("launching browser")

			p := tea.NewProgram(browser.NewModel(), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				log.Error(err, "browser failed")
				return fmt.Errorf("failed to run browser: %w", err)
			}

			log.Info("browser closed")
			return nil
		},
	}

	return cmd
}
