package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/facetui/facet/internal/logger"
	"github.com/facetui/facet/platform"
	"github.com/facetui/facet/theme"
	"github.com/facetui/facet/tokens"
)

type inspectOptions struct {
	theme  themeFlags
	format string
}

func newInspectCmd(log *logger.Logger) *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Resolve a theme and print every resolved role",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, log, opts)
		},
	}

	opts.theme.register(cmd)
	cmd.Flags().StringVar(&opts.format, "format", "yaml", "Output format (yaml, json)")

	return cmd
}

func runInspect(cmd *cobra.Command, log *logger.Logger, opts *inspectOptions) error {
	th, caps, err := opts.theme.resolve()
	if err != nil {
		return err
	}

	log.WithFields(map[string]any{
		"variant": th.Variant.String(),
		"density": th.Density.String(),
	}).Debug("theme resolved")

	snap := snapshotTheme(th, caps)

	switch opts.format {
	case "yaml":
		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(snap)
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(snap)
	default:
		return fmt.Errorf("unknown format %q (expected yaml or json)", opts.format)
	}
}

// themeSnapshot is the serialization shape of a resolved theme. Colors are
// rendered as "#hex" or "#hex@alpha" strings to keep the document compact.
type themeSnapshot struct {
	Variant string `yaml:"variant" json:"variant"`
	Density string `yaml:"density" json:"density"`

	Capabilities capabilitiesSnapshot `yaml:"capabilities" json:"capabilities"`

	Colors     map[string]string       `yaml:"colors" json:"colors"`
	Typography typographySnapshot      `yaml:"typography" json:"typography"`
	Spacing    spacingSnapshot         `yaml:"spacing" json:"spacing"`
	Radii      map[string]float64      `yaml:"radii" json:"radii"`
	Shadows    map[string]shadowDetail `yaml:"shadows" json:"shadows"`
	Strokes    map[string]float64      `yaml:"strokes" json:"strokes"`
	Motion     motionSnapshot          `yaml:"motion" json:"motion"`
}

type capabilitiesSnapshot struct {
	Hover             bool   `yaml:"hover" json:"hover"`
	FocusRing         bool   `yaml:"focus_ring" json:"focus_ring"`
	InlineTextEditing bool   `yaml:"inline_text_editing" json:"inline_text_editing"`
	InlinePickers     bool   `yaml:"inline_pickers" json:"inline_pickers"`
	Toasts            bool   `yaml:"toasts" json:"toasts"`
	LargeTapTargets   bool   `yaml:"large_tap_targets" json:"large_tap_targets"`
	FormRowLayout     string `yaml:"form_row_layout" json:"form_row_layout"`
	Picker            string `yaml:"picker" json:"picker"`
	TextFieldMode     string `yaml:"text_field_mode" json:"text_field_mode"`
}

type fontDetail struct {
	Size   float64 `yaml:"size" json:"size"`
	Weight string  `yaml:"weight" json:"weight"`
	Mono   bool    `yaml:"mono,omitempty" json:"mono,omitempty"`
}

type typographySnapshot struct {
	System    map[string]fontDetail `yaml:"system" json:"system"`
	Component map[string]fontDetail `yaml:"component" json:"component"`
}

type spacingSnapshot struct {
	Padding   map[string]float64 `yaml:"padding" json:"padding"`
	Gap       map[string]float64 `yaml:"gap" json:"gap"`
	RowHeight map[string]float64 `yaml:"row_height" json:"row_height"`
	Inset     map[string]float64 `yaml:"inset" json:"inset"`
}

type shadowDetail struct {
	Color   string  `yaml:"color" json:"color"`
	Radius  float64 `yaml:"radius" json:"radius"`
	YOffset float64 `yaml:"y_offset" json:"y_offset"`
}

type motionSnapshot struct {
	ReduceMotion bool               `yaml:"reduce_motion" json:"reduce_motion"`
	Duration     map[string]float64 `yaml:"duration" json:"duration"`
}

func snapshotTheme(th theme.Theme, caps platform.Capabilities) themeSnapshot {
	return themeSnapshot{
		Variant: th.Variant.String(),
		Density: th.Density.String(),
		Capabilities: capabilitiesSnapshot{
			Hover:             caps.SupportsHover,
			FocusRing:         caps.SupportsFocusRing,
			InlineTextEditing: caps.SupportsInlineTextEditing,
			InlinePickers:     caps.SupportsInlinePickers,
			Toasts:            caps.SupportsToasts,
			LargeTapTargets:   caps.PrefersLargeTapTargets,
			FormRowLayout:     caps.FormRowLayout.String(),
			Picker:            caps.PickerPresentation.String(),
			TextFieldMode:     caps.TextFieldMode.String(),
		},
		Colors: map[string]string{
			"canvas":           colorString(th.Colors.Canvas),
			"surface":          colorString(th.Colors.Surface),
			"surface_elevated": colorString(th.Colors.SurfaceElevated),
			"card":             colorString(th.Colors.Card),
			"text_primary":     colorString(th.Colors.TextPrimary),
			"text_secondary":   colorString(th.Colors.TextSecondary),
			"text_tertiary":    colorString(th.Colors.TextTertiary),
			"text_disabled":    colorString(th.Colors.TextDisabled),
			"border_subtle":    colorString(th.Colors.BorderSubtle),
			"border_strong":    colorString(th.Colors.BorderStrong),
			"separator":        colorString(th.Colors.Separator),
			"accent_primary":   colorString(th.Colors.AccentPrimary),
			"accent_secondary": colorString(th.Colors.AccentSecondary),
			"on_accent":        colorString(th.Colors.OnAccent),
			"success":          colorString(th.Colors.Success),
			"warning":          colorString(th.Colors.Warning),
			"danger":           colorString(th.Colors.Danger),
			"info":             colorString(th.Colors.Info),
			"focus_ring":       colorString(th.Colors.FocusRing),
		},
		Typography: typographySnapshot{
			System: map[string]fontDetail{
				"large_title": fontSnapshot(th.Typography.System.LargeTitle),
				"title":       fontSnapshot(th.Typography.System.Title),
				"title2":      fontSnapshot(th.Typography.System.Title2),
				"title3":      fontSnapshot(th.Typography.System.Title3),
				"headline":    fontSnapshot(th.Typography.System.Headline),
				"body":        fontSnapshot(th.Typography.System.Body),
				"callout":     fontSnapshot(th.Typography.System.Callout),
				"subheadline": fontSnapshot(th.Typography.System.Subheadline),
				"footnote":    fontSnapshot(th.Typography.System.Footnote),
				"caption":     fontSnapshot(th.Typography.System.Caption),
				"caption2":    fontSnapshot(th.Typography.System.Caption2),
			},
			Component: map[string]fontDetail{
				"button_label":      fontSnapshot(th.Typography.Component.ButtonLabel),
				"field_text":        fontSnapshot(th.Typography.Component.FieldText),
				"field_placeholder": fontSnapshot(th.Typography.Component.FieldPlaceholder),
				"helper_text":       fontSnapshot(th.Typography.Component.HelperText),
				"row_title":         fontSnapshot(th.Typography.Component.RowTitle),
				"row_value":         fontSnapshot(th.Typography.Component.RowValue),
				"section_header":    fontSnapshot(th.Typography.Component.SectionHeader),
				"badge_text":        fontSnapshot(th.Typography.Component.BadgeText),
				"mono_text":         fontSnapshot(th.Typography.Component.MonoText),
			},
		},
		Spacing: spacingSnapshot{
			Padding: map[string]float64{
				"xxs": th.Spacing.Padding.XXS,
				"xs":  th.Spacing.Padding.XS,
				"s":   th.Spacing.Padding.S,
				"m":   th.Spacing.Padding.M,
				"l":   th.Spacing.Padding.L,
				"xl":  th.Spacing.Padding.XL,
				"xxl": th.Spacing.Padding.XXL,
			},
			Gap: map[string]float64{
				"row":       th.Spacing.Gap.Row,
				"section":   th.Spacing.Gap.Section,
				"stack":     th.Spacing.Gap.Stack,
				"inline":    th.Spacing.Gap.Inline,
				"dashboard": th.Spacing.Gap.Dashboard,
			},
			RowHeight: map[string]float64{
				"compact": th.Spacing.RowHeight.Compact,
				"default": th.Spacing.RowHeight.Default,
				"large":   th.Spacing.RowHeight.Large,
			},
			Inset: map[string]float64{
				"screen":  th.Spacing.Inset.Screen,
				"card":    th.Spacing.Inset.Card,
				"section": th.Spacing.Inset.Section,
			},
		},
		Radii: map[string]float64{
			"small":   th.Radii.Small,
			"medium":  th.Radii.Medium,
			"large":   th.Radii.Large,
			"field":   th.Radii.Field,
			"search":  th.Radii.Search,
			"card":    th.Radii.Card,
			"capsule": th.Radii.Capsule,
		},
		Shadows: map[string]shadowDetail{
			"button":      shadowSnapshot(th.Shadows.Button),
			"card":        shadowSnapshot(th.Shadows.Card),
			"card_raised": shadowSnapshot(th.Shadows.CardRaised),
			"overlay":     shadowSnapshot(th.Shadows.Overlay),
		},
		Strokes: map[string]float64{
			"hairline":   th.Strokes.Hairline,
			"default":    th.Strokes.Default,
			"strong":     th.Strokes.Strong,
			"focus_ring": th.Strokes.FocusRing,
		},
		Motion: motionSnapshot{
			ReduceMotion: th.Motion.ReduceMotionEnabled,
			Duration: map[string]float64{
				"instant": th.Motion.Duration.Instant,
				"fast":    th.Motion.Duration.Fast,
				"normal":  th.Motion.Duration.Normal,
				"slow":    th.Motion.Duration.Slow,
			},
		},
	}
}

func fontSnapshot(f tokens.FontToken) fontDetail {
	return fontDetail{Size: f.Size, Weight: f.Weight.String(), Mono: f.Mono}
}

func shadowSnapshot(s theme.ShadowSpec) shadowDetail {
	return shadowDetail{Color: colorString(s.Color), Radius: s.Radius, YOffset: s.YOffset}
}

func colorString(c tokens.Color) string {
	if c.IsClear() {
		return "none"
	}
	if c.Alpha >= 1 {
		return c.Hex
	}
	return fmt.Sprintf("%s@%.2f", c.Hex, c.Alpha)
}
