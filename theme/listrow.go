package theme

import (
	"github.com/facetui/facet/platform"
	"github.com/facetui/facet/tokens"
)

// ListRowStyle selects the row's emphasis.
type ListRowStyle int

const (
	ListRowPlain ListRowStyle = iota
	ListRowProminent
	ListRowDestructive
)

func (s ListRowStyle) String() string {
	switch s {
	case ListRowProminent:
		return "prominent"
	case ListRowDestructive:
		return "destructive"
	default:
		return "plain"
	}
}

const (
	listRowDisabledOpacity = 0.6

	accessoryIconSizeCompact = 14.0
	accessoryIconSizeLarge   = 16.0
)

// ListRowSpec is the fully resolved rendering bundle for one list row.
type ListRowSpec struct {
	Background tokens.Color

	Title     tokens.Color
	Value     tokens.Color
	TitleFont tokens.FontToken
	ValueFont tokens.FontToken

	AccessoryIconSize float64
	MinHeight         float64
	PaddingX          float64
	PaddingY          float64

	SeparatorInsetLeading  float64
	SeparatorInsetTrailing float64

	Opacity float64
}

type defaultListRowResolver struct{}

func (defaultListRowResolver) Identifier() string { return "facet.listrow" }

// ResolveListRow resolves a list row. Style drives the title color,
// pressed swaps the background, and the platform's tap-target preference
// picks the tall or compact minimum height, matching form rows.
func (defaultListRowResolver) ResolveListRow(t Theme, style ListRowStyle, state State, caps platform.Capabilities) ListRowSpec {
	spec := ListRowSpec{
		Background:            t.Colors.Surface,
		Title:                 t.Colors.TextPrimary,
		Value:                 t.Colors.TextSecondary,
		TitleFont:             t.Typography.Component.RowTitle,
		ValueFont:             t.Typography.Component.RowValue,
		AccessoryIconSize:     accessoryIconSizeCompact,
		MinHeight:             t.Spacing.RowHeight.Compact,
		PaddingX:              t.Spacing.Inset.Screen,
		PaddingY:              t.Spacing.Padding.S,
		SeparatorInsetLeading: t.Spacing.Inset.Screen,
		Opacity:               1,
	}

	switch style {
	case ListRowProminent:
		spec.Title = t.Colors.AccentPrimary
	case ListRowDestructive:
		spec.Title = t.Colors.Danger
	}

	if caps.PrefersLargeTapTargets {
		spec.MinHeight = t.Spacing.RowHeight.Default
		spec.AccessoryIconSize = accessoryIconSizeLarge
	}

	if state.Pressed() && !state.Disabled() {
		spec.Background = t.Colors.SurfaceElevated
	}

	if state.Disabled() {
		spec.Title = t.Colors.TextDisabled
		spec.Value = t.Colors.TextDisabled
		spec.Opacity = listRowDisabledOpacity
	}

	return spec
}
