package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/facetui/facet/platform"
)

type platformsOptions struct {
	jsonOutput bool
}

func newPlatformsCmd() *cobra.Command {
	opts := &platformsOptions{}

	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "List the canonical platform capability records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlatforms(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output capability records as JSON")

	return cmd
}

func runPlatforms(cmd *cobra.Command, opts *platformsOptions) error {
	if opts.jsonOutput {
		payload := make([]capabilitiesSnapshot, 0, len(platform.Platforms()))
		names := make([]string, 0, len(platform.Platforms()))
		for _, p := range platform.Platforms() {
			names = append(names, p.String())
			payload = append(payload, capabilitiesJSON(platform.CapabilitiesFor(p)))
		}

		doc := make(map[string]capabilitiesSnapshot, len(names))
		for i, name := range names {
			doc[name] = payload[i]
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(doc)
	}

	for _, p := range platform.Platforms() {
		caps := platform.CapabilitiesFor(p)
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", p, p.Class())
		fmt.Fprintf(cmd.OutOrStdout(), "  hover: %-5v  focus ring: %-5v  toasts: %v\n",
			caps.SupportsHover, caps.SupportsFocusRing, caps.SupportsToasts)
		fmt.Fprintf(cmd.OutOrStdout(), "  inline text: %-5v  inline pickers: %-5v  large targets: %v\n",
			caps.SupportsInlineTextEditing, caps.SupportsInlinePickers, caps.PrefersLargeTapTargets)
		fmt.Fprintf(cmd.OutOrStdout(), "  form rows: %s  pickers: %s  text entry: %s\n\n",
			caps.FormRowLayout, caps.PickerPresentation, caps.TextFieldMode)
	}

	return nil
}

func capabilitiesJSON(caps platform.Capabilities) capabilitiesSnapshot {
	return capabilitiesSnapshot{
		Hover:             caps.SupportsHover,
		FocusRing:         caps.SupportsFocusRing,
		InlineTextEditing: caps.SupportsInlineTextEditing,
		InlinePickers:     caps.SupportsInlinePickers,
		Toasts:            caps.SupportsToasts,
		LargeTapTargets:   caps.PrefersLargeTapTargets,
		FormRowLayout:     caps.FormRowLayout.String(),
		Picker:            caps.PickerPresentation.String(),
		TextFieldMode:     caps.TextFieldMode.String(),
	}
}
