package theme

import "github.com/facetui/facet/tokens"

// CardElevation selects the card's elevation tier.
type CardElevation int

const (
	CardFlat CardElevation = iota
	CardRaised
	CardElevated
	CardOverlay
)

func (e CardElevation) String() string {
	switch e {
	case CardRaised:
		return "raised"
	case CardElevated:
		return "elevated"
	case CardOverlay:
		return "overlay"
	default:
		return "flat"
	}
}

const glassBorderAlpha = 0.08

// CardSpec is the fully resolved rendering bundle for one card surface.
type CardSpec struct {
	Background  tokens.Color
	Border      tokens.Color
	BorderWidth float64

	CornerRadius float64
	Shadow       ShadowSpec
	Padding      float64

	UsesGlassEffect bool
	GlassBorder     tokens.Color
}

type defaultCardResolver struct{}

func (defaultCardResolver) Identifier() string { return "facet.card" }

// ResolveCard resolves a card surface. Flat cards always carry a border;
// higher tiers only border in the dark variant, where shadows alone do not
// separate surfaces. The glass treatment activates only for dark elevated
// and overlay cards, and the reduce-transparency policy forces the opaque
// fallback.
func (defaultCardResolver) ResolveCard(t Theme, elevation CardElevation) CardSpec {
	spec := CardSpec{
		Background:   t.Colors.Card,
		CornerRadius: t.Radii.Card,
		Padding:      t.Spacing.Inset.Card,
	}

	switch elevation {
	case CardRaised:
		spec.Shadow = t.Shadows.Card
	case CardElevated:
		spec.Background = t.Colors.SurfaceElevated
		spec.Shadow = t.Shadows.CardRaised
	case CardOverlay:
		spec.Background = t.Colors.SurfaceElevated
		spec.Shadow = t.Shadows.Overlay
	}

	bordered := elevation == CardFlat || t.Variant == Dark
	if bordered {
		spec.Border = t.Colors.BorderSubtle
		spec.BorderWidth = t.Strokes.Default
	}

	glassTier := elevation == CardElevated || elevation == CardOverlay
	if t.Variant == Dark && glassTier && !t.ReduceTransparency {
		spec.UsesGlassEffect = true
		spec.GlassBorder = tokens.White.WithAlpha(glassBorderAlpha)
	}

	return spec
}
