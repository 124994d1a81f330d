package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/facetui/facet/tokens"
)

func TestToggleGeometryIsFixed(t *testing.T) {
	th := baselineTheme()

	spec := th.Components.Toggle.ResolveToggle(th, true, StateNone)

	assert.Equal(t, 51.0, spec.TrackWidth)
	assert.Equal(t, 31.0, spec.TrackHeight)
	assert.Equal(t, 15.5, spec.TrackCornerRadius, "track is always a full capsule")
	assert.Equal(t, 27.0, spec.ThumbSize)
	assert.Equal(t, tokens.White, spec.Thumb)
}

func TestToggleOnUsesAccentWithoutBorder(t *testing.T) {
	th := baselineTheme()

	spec := th.Components.Toggle.ResolveToggle(th, true, StateNone)

	assert.Equal(t, th.Colors.AccentPrimary, spec.TrackFill)
	assert.Equal(t, 0.0, spec.TrackBorderWidth)
	assert.True(t, spec.TrackBorder.IsClear())
}

func TestToggleOffUsesNeutralTrackWithBorder(t *testing.T) {
	th := baselineTheme()

	spec := th.Components.Toggle.ResolveToggle(th, false, StateNone)

	assert.Equal(t, th.Colors.SurfaceElevated, spec.TrackFill)
	assert.Equal(t, th.Colors.BorderSubtle, spec.TrackBorder)
	assert.Equal(t, th.Strokes.Default, spec.TrackBorderWidth)
}

func TestToggleDisabledDimsIndependentOfPosition(t *testing.T) {
	th := baselineTheme()

	for _, isOn := range []bool{true, false} {
		enabled := th.Components.Toggle.ResolveToggle(th, isOn, StateNone)
		disabled := th.Components.Toggle.ResolveToggle(th, isOn, StateDisabled)

		assert.Equal(t, 0.5, disabled.Opacity)
		assert.InDelta(t, enabled.TrackFill.Alpha*0.4, disabled.TrackFill.Alpha, 1e-9)
	}
}

func TestSliderMirrorsToggleDisabledRule(t *testing.T) {
	th := baselineTheme()

	enabled := th.Components.Slider.ResolveSlider(th, StateNone)
	disabled := th.Components.Slider.ResolveSlider(th, StateDisabled)

	assert.Equal(t, 4.0, enabled.TrackHeight)
	assert.Equal(t, 28.0, enabled.ThumbSize)
	assert.Equal(t, th.Colors.AccentPrimary, enabled.ActiveTrack)
	assert.Equal(t, 0.5, disabled.Opacity)
	assert.InDelta(t, enabled.ActiveTrack.Alpha*0.4, disabled.ActiveTrack.Alpha, 1e-9)
}
