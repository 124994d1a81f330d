package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/facetui/facet/platform"
)

func darkBaselineTheme() Theme {
	return Resolve(Dark, DefaultPolicy(), DensityRegular, platform.HandheldCapabilities())
}

func TestGlassEffectGate(t *testing.T) {
	light := baselineTheme()
	dark := darkBaselineTheme()

	tests := []struct {
		name      string
		theme     Theme
		elevation CardElevation
		glass     bool
	}{
		{"dark elevated", dark, CardElevated, true},
		{"dark overlay", dark, CardOverlay, true},
		{"dark flat", dark, CardFlat, false},
		{"dark raised", dark, CardRaised, false},
		{"light elevated", light, CardElevated, false},
		{"light overlay", light, CardOverlay, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := tt.theme.Components.Card.ResolveCard(tt.theme, tt.elevation)
			assert.Equal(t, tt.glass, spec.UsesGlassEffect)
			if tt.glass {
				assert.False(t, spec.GlassBorder.IsClear())
			}
		})
	}
}

func TestReduceTransparencyForcesOpaqueCards(t *testing.T) {
	th := Resolve(Dark, Policy{ReduceTransparency: true, DynamicType: DynamicTypeLarge}, DensityRegular, platform.HandheldCapabilities())

	spec := th.Components.Card.ResolveCard(th, CardElevated)
	assert.False(t, spec.UsesGlassEffect)
	assert.False(t, spec.Background.IsClear())
}

func TestCardBackgroundEscalatesWithElevation(t *testing.T) {
	th := baselineTheme()

	flat := th.Components.Card.ResolveCard(th, CardFlat)
	raised := th.Components.Card.ResolveCard(th, CardRaised)
	elevated := th.Components.Card.ResolveCard(th, CardElevated)
	overlay := th.Components.Card.ResolveCard(th, CardOverlay)

	assert.Equal(t, th.Colors.Card, flat.Background)
	assert.Equal(t, th.Colors.Card, raised.Background)
	assert.Equal(t, th.Colors.SurfaceElevated, elevated.Background)
	assert.Equal(t, th.Colors.SurfaceElevated, overlay.Background)
}

func TestCardShadowEscalation(t *testing.T) {
	th := baselineTheme()

	assert.True(t, th.Components.Card.ResolveCard(th, CardFlat).Shadow.IsNone())
	assert.Equal(t, th.Shadows.Card, th.Components.Card.ResolveCard(th, CardRaised).Shadow)
	assert.Equal(t, th.Shadows.CardRaised, th.Components.Card.ResolveCard(th, CardElevated).Shadow)
	assert.Equal(t, th.Shadows.Overlay, th.Components.Card.ResolveCard(th, CardOverlay).Shadow)
}

func TestCardBorderRules(t *testing.T) {
	light := baselineTheme()
	dark := darkBaselineTheme()

	// Flat cards always carry a border.
	assert.Greater(t, light.Components.Card.ResolveCard(light, CardFlat).BorderWidth, 0.0)
	assert.Greater(t, dark.Components.Card.ResolveCard(dark, CardFlat).BorderWidth, 0.0)

	// Raised and above only border in dark.
	assert.Equal(t, 0.0, light.Components.Card.ResolveCard(light, CardRaised).BorderWidth)
	assert.Greater(t, dark.Components.Card.ResolveCard(dark, CardRaised).BorderWidth, 0.0)
	assert.Equal(t, 0.0, light.Components.Card.ResolveCard(light, CardOverlay).BorderWidth)
}
