package theme

import "github.com/facetui/facet/tokens"

// Toggle track and thumb geometry is fixed across platforms; only colors
// and opacity respond to state.
const (
	toggleTrackWidth  = 51.0
	toggleTrackHeight = 31.0
	toggleThumbSize   = 27.0

	toggleDisabledTrackAlpha = 0.4
	toggleDisabledOpacity    = 0.5
)

// ToggleSpec is the fully resolved rendering bundle for one toggle.
type ToggleSpec struct {
	TrackFill         tokens.Color
	TrackWidth        float64
	TrackHeight       float64
	TrackCornerRadius float64
	TrackBorder       tokens.Color
	TrackBorderWidth  float64

	Thumb       tokens.Color
	ThumbSize   float64
	ThumbShadow ShadowSpec

	Opacity   float64
	Animation Animation
}

type defaultToggleResolver struct{}

func (defaultToggleResolver) Identifier() string { return "facet.toggle" }

// ResolveToggle resolves a toggle. On selects the accent-filled track with
// no border; off selects the elevated neutral track with a subtle border.
// Disabled dims the track fill and the whole control, independent of the
// on/off choice.
func (defaultToggleResolver) ResolveToggle(t Theme, isOn bool, state State) ToggleSpec {
	spec := ToggleSpec{
		TrackWidth:        toggleTrackWidth,
		TrackHeight:       toggleTrackHeight,
		TrackCornerRadius: toggleTrackHeight / 2,
		Thumb:             tokens.White,
		ThumbSize:         toggleThumbSize,
		ThumbShadow:       t.Shadows.Button,
		Opacity:           1,
		Animation:         t.Motion.StateChange,
	}

	if isOn {
		spec.TrackFill = t.Colors.AccentPrimary
	} else {
		spec.TrackFill = t.Colors.SurfaceElevated
		spec.TrackBorder = t.Colors.BorderSubtle
		spec.TrackBorderWidth = t.Strokes.Default
	}

	if state.Disabled() {
		spec.TrackFill = spec.TrackFill.ScaleAlpha(toggleDisabledTrackAlpha)
		spec.Opacity = toggleDisabledOpacity
	}

	return spec
}
