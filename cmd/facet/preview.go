package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/facetui/facet/internal/logger"
	"github.com/facetui/facet/internal/render"
	"github.com/facetui/facet/theme"
)

type previewOptions struct {
	theme  themeFlags
	family string
}

func newPreviewCmd(log *logger.Logger) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the resolved palette and component specs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, log, opts)
		},
	}

	opts.theme.register(cmd)
	cmd.Flags().StringVar(&opts.family, "family", "", "Limit output to one component family")

	return cmd
}

func runPreview(cmd *cobra.Command, log *logger.Logger, opts *previewOptions) error {
	th, _, err := opts.theme.resolve()
	if err != nil {
		return err
	}

	log.WithFields(map[string]any{"variant": th.Variant.String()}).Debug("rendering preview")

	out := cmd.OutOrStdout()

	if opts.family == "" {
		fmt.Fprintln(out, render.Palette(th))
		for _, family := range render.Families() {
			fmt.Fprintln(out, render.FamilySummary(family, th, theme.StateNone))
		}
		return nil
	}

	for _, family := range render.Families() {
		if string(family) == opts.family {
			fmt.Fprintln(out, render.FamilySummary(family, th, theme.StateNone))
			return nil
		}
	}

	return fmt.Errorf("unknown family %q", opts.family)
}
