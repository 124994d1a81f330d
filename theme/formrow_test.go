package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/facetui/facet/platform"
)

func resolveRow(t Theme, mode platform.Adaptive[platform.FormRowLayout], caps platform.Capabilities) FormRowSpec {
	return t.Components.FormRow.ResolveFormRow(t, mode, caps)
}

func TestAutoLayoutFollowsPlatformPreference(t *testing.T) {
	tests := []struct {
		name   string
		caps   platform.Capabilities
		layout platform.FormRowLayout
	}{
		{"handheld", platform.HandheldCapabilities(), platform.LayoutInline},
		{"handheld pointer", platform.HandheldPointerCapabilities(), platform.LayoutInline},
		{"desktop", platform.DesktopCapabilities(), platform.LayoutTwoColumn},
		{"wrist", platform.WristCapabilities(), platform.LayoutStacked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := Resolve(Light, DefaultPolicy(), DensityRegular, tt.caps)
			spec := resolveRow(th, platform.Auto[platform.FormRowLayout](), tt.caps)
			assert.Equal(t, tt.layout, spec.Layout)
		})
	}
}

func TestFixedLayoutBeatsPlatformPreference(t *testing.T) {
	caps := platform.DesktopCapabilities()
	th := Resolve(Light, DefaultPolicy(), DensityRegular, caps)

	spec := resolveRow(th, platform.Fixed(platform.LayoutStacked), caps)
	assert.Equal(t, platform.LayoutStacked, spec.Layout)
}

func TestRowSpacingIsMutuallyExclusive(t *testing.T) {
	th := baselineTheme()

	stacked := resolveRow(th, platform.Fixed(platform.LayoutStacked), platform.HandheldCapabilities())
	assert.Greater(t, stacked.VerticalSpacing, 0.0)
	assert.Equal(t, 0.0, stacked.HorizontalSpacing)

	inline := resolveRow(th, platform.Fixed(platform.LayoutInline), platform.HandheldCapabilities())
	assert.Greater(t, inline.HorizontalSpacing, 0.0)
	assert.Equal(t, 0.0, inline.VerticalSpacing)
}

func TestTwoColumnFixesLabelColumn(t *testing.T) {
	caps := platform.DesktopCapabilities()
	th := Resolve(Light, DefaultPolicy(), DensityRegular, caps)

	spec := resolveRow(th, platform.Auto[platform.FormRowLayout](), caps)

	assert.Equal(t, 140.0, spec.LabelWidth)
	assert.Equal(t, AlignTrailing, spec.LabelAlignment)
}

func TestNonTwoColumnLabelHugsContent(t *testing.T) {
	th := baselineTheme()

	for _, layout := range []platform.FormRowLayout{platform.LayoutInline, platform.LayoutStacked} {
		spec := resolveRow(th, platform.Fixed(layout), platform.HandheldCapabilities())
		assert.Equal(t, 0.0, spec.LabelWidth, "%s label has no fixed width", layout)
		assert.Equal(t, AlignLeading, spec.LabelAlignment)
	}
}

func TestLargeTapTargetsRaiseMinHeight(t *testing.T) {
	handheld := platform.HandheldCapabilities()
	desktop := platform.DesktopCapabilities()

	thHandheld := Resolve(Light, DefaultPolicy(), DensityRegular, handheld)
	thDesktop := Resolve(Light, DefaultPolicy(), DensityRegular, desktop)

	tall := resolveRow(thHandheld, platform.Auto[platform.FormRowLayout](), handheld)
	compact := resolveRow(thDesktop, platform.Auto[platform.FormRowLayout](), desktop)

	assert.Equal(t, thHandheld.Spacing.RowHeight.Default, tall.MinHeight)
	assert.Equal(t, thDesktop.Spacing.RowHeight.Compact, compact.MinHeight)
}

func TestStackedRowsHideSeparators(t *testing.T) {
	th := baselineTheme()
	caps := platform.HandheldCapabilities()

	stacked := resolveRow(th, platform.Fixed(platform.LayoutStacked), caps)
	assert.False(t, stacked.ShowSeparator)

	inline := resolveRow(th, platform.Fixed(platform.LayoutInline), caps)
	assert.True(t, inline.ShowSeparator)
	assert.Equal(t, th.Spacing.Inset.Screen, inline.SeparatorInsetLeading)
	assert.Equal(t, 0.0, inline.SeparatorInsetTrailing)
}

func TestRowTransitionUsesStateChangeMotion(t *testing.T) {
	th := baselineTheme()
	spec := resolveRow(th, platform.Auto[platform.FormRowLayout](), platform.HandheldCapabilities())
	assert.Equal(t, th.Motion.StateChange, spec.Transition)
}
