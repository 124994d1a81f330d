package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/facetui/facet/platform"
)

func resolveListRow(t Theme, style ListRowStyle, state State, caps platform.Capabilities) ListRowSpec {
	return t.Components.ListRow.ResolveListRow(t, style, state, caps)
}

func TestListRowStyleDrivesTitleColor(t *testing.T) {
	th := baselineTheme()
	caps := platform.HandheldCapabilities()

	plain := resolveListRow(th, ListRowPlain, StateNone, caps)
	assert.Equal(t, th.Colors.TextPrimary, plain.Title)
	assert.Equal(t, th.Colors.TextSecondary, plain.Value)

	prominent := resolveListRow(th, ListRowProminent, StateNone, caps)
	assert.Equal(t, th.Colors.AccentPrimary, prominent.Title)

	destructive := resolveListRow(th, ListRowDestructive, StateNone, caps)
	assert.Equal(t, th.Colors.Danger, destructive.Title)
}

func TestPressedListRowSwapsBackground(t *testing.T) {
	th := baselineTheme()
	caps := platform.HandheldCapabilities()

	rest := resolveListRow(th, ListRowPlain, StateNone, caps)
	pressed := resolveListRow(th, ListRowPlain, StatePressed, caps)

	assert.Equal(t, th.Colors.Surface, rest.Background)
	assert.Equal(t, th.Colors.SurfaceElevated, pressed.Background)
}

func TestDisabledListRowIgnoresPress(t *testing.T) {
	th := baselineTheme()
	caps := platform.HandheldCapabilities()

	spec := resolveListRow(th, ListRowProminent, StateDisabled.With(StatePressed), caps)

	assert.Equal(t, th.Colors.Surface, spec.Background, "disabled rows keep the resting background")
	assert.Equal(t, th.Colors.TextDisabled, spec.Title, "disabled trumps the prominent accent")
	assert.Equal(t, 0.6, spec.Opacity)
}

func TestAccessorySizeFollowsTapTargets(t *testing.T) {
	th := baselineTheme()

	large := resolveListRow(th, ListRowPlain, StateNone, platform.HandheldCapabilities())
	compact := resolveListRow(th, ListRowPlain, StateNone, platform.DesktopCapabilities())

	assert.Equal(t, 16.0, large.AccessoryIconSize)
	assert.Equal(t, 14.0, compact.AccessoryIconSize)
	assert.Greater(t, large.MinHeight, compact.MinHeight)
}
