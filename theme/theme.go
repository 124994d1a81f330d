package theme

import "github.com/facetui/facet/platform"

// Variant selects the light or dark appearance.
type Variant int

const (
	Light Variant = iota
	Dark
)

func (v Variant) String() string {
	if v == Dark {
		return "dark"
	}
	return "light"
}

// Theme is the fully resolved design system for one environment
// configuration: one variant, one accessibility policy, one density, one
// platform. It is an immutable value; a "theme change" replaces the whole
// value and re-resolves every dependent spec.
//
// Theme contains resolver interfaces, so compare themes with Equal rather
// than ==.
type Theme struct {
	Variant    Variant
	Colors     ColorRoles
	Typography TypographyRoles
	Spacing    SpacingRoles
	Radii      RadiusRoles
	Shadows    ShadowRoles
	Strokes    StrokeRoles
	Motion     MotionRoles
	Density    Density

	// Capabilities is the platform record the theme was resolved for,
	// kept so callers can feed capability-aware resolvers without
	// re-threading the record.
	Capabilities platform.Capabilities

	// Policy flags that component resolvers consult directly.
	IncreasedContrast  bool
	ReduceTransparency bool

	Components ComponentStyles
}

// Equal reports structural equality. Component resolvers compare by
// identifier, not function identity.
func (t Theme) Equal(o Theme) bool {
	return t.Variant == o.Variant &&
		t.Colors == o.Colors &&
		t.Typography == o.Typography &&
		t.Spacing == o.Spacing &&
		t.Radii == o.Radii &&
		t.Shadows == o.Shadows &&
		t.Strokes == o.Strokes &&
		t.Motion == o.Motion &&
		t.Density == o.Density &&
		t.Capabilities == o.Capabilities &&
		t.IncreasedContrast == o.IncreasedContrast &&
		t.ReduceTransparency == o.ReduceTransparency &&
		t.Components.Equal(o.Components)
}
