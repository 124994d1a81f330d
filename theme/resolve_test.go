package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetui/facet/platform"
	"github.com/facetui/facet/tokens"
)

func baselineTheme() Theme {
	return Resolve(Light, DefaultPolicy(), DensityRegular, platform.HandheldCapabilities())
}

func TestResolveIsDeterministic(t *testing.T) {
	policies := []Policy{
		DefaultPolicy(),
		{ReduceMotion: true, DynamicType: DynamicTypeAccessibilityLarge},
		{IncreasedContrast: true, BoldText: true, DynamicType: DynamicTypeSmall},
		{ReduceTransparency: true, DynamicType: DynamicTypeExtraExtraLarge},
	}

	for _, variant := range []Variant{Light, Dark} {
		for _, policy := range policies {
			for _, density := range []Density{DensityCompact, DensityRegular, DensitySpacious} {
				for _, p := range platform.Platforms() {
					a := Resolve(variant, policy, density, platform.CapabilitiesFor(p))
					b := Resolve(variant, policy, density, platform.CapabilitiesFor(p))
					require.True(t, a.Equal(b),
						"identical inputs must resolve identical themes (%s/%s/%s)", variant, density, p)
				}
			}
		}
	}
}

func TestBodySizeStrictlyIncreasesWithDynamicType(t *testing.T) {
	caps := platform.HandheldCapabilities()
	previous := -1.0
	for s := DynamicTypeExtraSmall; s <= DynamicTypeAccessibilityExtraExtraExtraLarge; s++ {
		th := Resolve(Light, Policy{DynamicType: s}, DensityRegular, caps)
		assert.Greater(t, th.Typography.System.Body.Size, previous, "body size at %s", s)
		previous = th.Typography.System.Body.Size
	}
}

func TestDensityOrderingForPaddingAndRowHeight(t *testing.T) {
	caps := platform.HandheldCapabilities()
	compact := Resolve(Light, DefaultPolicy(), DensityCompact, caps)
	regular := Resolve(Light, DefaultPolicy(), DensityRegular, caps)
	spacious := Resolve(Light, DefaultPolicy(), DensitySpacious, caps)

	assert.Less(t, compact.Spacing.Padding.M, regular.Spacing.Padding.M)
	assert.Less(t, regular.Spacing.Padding.M, spacious.Spacing.Padding.M)

	assert.Less(t, compact.Spacing.RowHeight.Default, regular.Spacing.RowHeight.Default)
	assert.Less(t, regular.Spacing.RowHeight.Default, spacious.Spacing.RowHeight.Default)
}

func TestReduceMotionCollapsesDurations(t *testing.T) {
	caps := platform.HandheldCapabilities()

	reduced := Resolve(Light, Policy{ReduceMotion: true, DynamicType: DynamicTypeLarge}, DensityRegular, caps)
	assert.Less(t, reduced.Motion.Duration.Normal, 0.1)
	assert.True(t, reduced.Motion.ReduceMotionEnabled)
	assert.True(t, reduced.Motion.Spring.Snappy.IsInstant())
	assert.True(t, reduced.Motion.PressFeedback.Spring.IsInstant())

	normal := baselineTheme()
	assert.Greater(t, normal.Motion.Duration.Normal, 0.1)
	assert.False(t, normal.Motion.ReduceMotionEnabled)
}

func TestDarkVariantUsesDarkSafeAccents(t *testing.T) {
	caps := platform.HandheldCapabilities()
	light := Resolve(Light, DefaultPolicy(), DensityRegular, caps)
	dark := Resolve(Dark, DefaultPolicy(), DensityRegular, caps)

	assert.Equal(t, tokens.AccentBlue.Light, light.Colors.AccentPrimary)
	assert.Equal(t, tokens.AccentBlue.DarkSafe, dark.Colors.AccentPrimary)
	assert.Equal(t, tokens.AccentRed.DarkSafe, dark.Colors.Danger)
}

func TestIncreasedContrastWidensStrokes(t *testing.T) {
	caps := platform.HandheldCapabilities()
	base := baselineTheme()
	contrast := Resolve(Light, Policy{IncreasedContrast: true, DynamicType: DynamicTypeLarge}, DensityRegular, caps)

	assert.Greater(t, contrast.Strokes.Default, base.Strokes.Default)
	assert.Greater(t, contrast.Strokes.Strong, base.Strokes.Strong)
	assert.Greater(t, contrast.Strokes.FocusRing, base.Strokes.FocusRing)
	assert.NotEqual(t, base.Colors.BorderSubtle, contrast.Colors.BorderSubtle)
}

func TestReduceTransparencyNeverRaisesShadowOpacity(t *testing.T) {
	caps := platform.HandheldCapabilities()
	for _, variant := range []Variant{Light, Dark} {
		base := Resolve(variant, DefaultPolicy(), DensityRegular, caps)
		reduced := Resolve(variant, Policy{ReduceTransparency: true, DynamicType: DynamicTypeLarge}, DensityRegular, caps)

		assert.Less(t, reduced.Shadows.Card.Color.Alpha, base.Shadows.Card.Color.Alpha)
		assert.Less(t, reduced.Shadows.Overlay.Color.Alpha, base.Shadows.Overlay.Color.Alpha)
		assert.True(t, reduced.ReduceTransparency)
	}
}

func TestBoldTextShiftsWeightWithoutResizing(t *testing.T) {
	caps := platform.HandheldCapabilities()
	base := baselineTheme()
	bold := Resolve(Light, Policy{BoldText: true, DynamicType: DynamicTypeLarge}, DensityRegular, caps)

	assert.Equal(t, base.Typography.System.Body.Size, bold.Typography.System.Body.Size)
	assert.Equal(t, base.Typography.System.Body.Weight.Heavier(), bold.Typography.System.Body.Weight)
	assert.Equal(t, tokens.WeightBold, bold.Typography.Component.ButtonLabel.Weight)
}

func TestAccessibilitySizesWidenGapsAndRows(t *testing.T) {
	caps := platform.HandheldCapabilities()
	base := baselineTheme()
	ax := Resolve(Light, Policy{DynamicType: DynamicTypeAccessibilityMedium}, DensityRegular, caps)

	assert.Greater(t, ax.Spacing.Gap.Row, base.Spacing.Gap.Row)
	assert.Greater(t, ax.Spacing.RowHeight.Default, base.Spacing.RowHeight.Default)
	assert.Equal(t, base.Spacing.Padding.M, ax.Spacing.Padding.M, "padding does not take the accessibility boost")
}

func TestRadiiIgnorePolicyAndDensity(t *testing.T) {
	caps := platform.HandheldCapabilities()
	a := Resolve(Light, DefaultPolicy(), DensityCompact, caps)
	b := Resolve(Dark, Policy{IncreasedContrast: true, DynamicType: DynamicTypeAccessibilityLarge}, DensitySpacious, caps)

	assert.Equal(t, a.Radii, b.Radii)
}

func TestOutOfRangeDynamicTypeResolvesLikeBoundary(t *testing.T) {
	caps := platform.HandheldCapabilities()
	over := Resolve(Light, Policy{DynamicType: DynamicTypeSize(99)}, DensityRegular, caps)
	max := Resolve(Light, Policy{DynamicType: DynamicTypeAccessibilityExtraExtraExtraLarge}, DensityRegular, caps)

	assert.True(t, over.Equal(max))
}

func TestThemeCarriesCapabilityRecord(t *testing.T) {
	th := Resolve(Light, DefaultPolicy(), DensityRegular, platform.WristCapabilities())
	assert.Equal(t, platform.WristCapabilities(), th.Capabilities)
}
