package theme

import "github.com/facetui/facet/tokens"

const (
	sliderTrackHeight = 4.0
	sliderThumbSize   = 28.0

	sliderDisabledTrackAlpha = 0.4
	sliderDisabledOpacity    = 0.5
)

// SliderSpec is the fully resolved rendering bundle for one slider.
type SliderSpec struct {
	TrackHeight       float64
	TrackCornerRadius float64
	ActiveTrack       tokens.Color
	InactiveTrack     tokens.Color

	Thumb       tokens.Color
	ThumbSize   float64
	ThumbShadow ShadowSpec

	Opacity   float64
	Animation Animation
}

type defaultSliderResolver struct{}

func (defaultSliderResolver) Identifier() string { return "facet.slider" }

// ResolveSlider resolves a slider. Disabled dims the active track and the
// whole control, mirroring the toggle's rule.
func (defaultSliderResolver) ResolveSlider(t Theme, state State) SliderSpec {
	spec := SliderSpec{
		TrackHeight:       sliderTrackHeight,
		TrackCornerRadius: sliderTrackHeight / 2,
		ActiveTrack:       t.Colors.AccentPrimary,
		InactiveTrack:     t.Colors.BorderSubtle,
		Thumb:             tokens.White,
		ThumbSize:         sliderThumbSize,
		ThumbShadow:       t.Shadows.Button,
		Opacity:           1,
		Animation:         t.Motion.PressFeedback,
	}

	if state.Disabled() {
		spec.ActiveTrack = spec.ActiveTrack.ScaleAlpha(sliderDisabledTrackAlpha)
		spec.Opacity = sliderDisabledOpacity
	}

	return spec
}
