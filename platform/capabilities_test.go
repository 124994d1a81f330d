package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalRecordsPerPlatform(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		layout   FormRowLayout
		picker   PickerPresentation
		text     TextFieldMode
	}{
		{"handheld", Handheld, LayoutInline, PickerSheet, TextFieldInline},
		{"handheld pointer", HandheldPointer, LayoutInline, PickerPopover, TextFieldInline},
		{"desktop", Desktop, LayoutTwoColumn, PickerMenu, TextFieldInline},
		{"wrist", Wrist, LayoutStacked, PickerNavigation, TextFieldSeparateScreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := CapabilitiesFor(tt.platform)
			assert.Equal(t, tt.layout, caps.FormRowLayout)
			assert.Equal(t, tt.picker, caps.PickerPresentation)
			assert.Equal(t, tt.text, caps.TextFieldMode)
		})
	}
}

func TestPointerVariantGainsHoverAndFocus(t *testing.T) {
	handheld := HandheldCapabilities()
	pointer := HandheldPointerCapabilities()

	assert.False(t, handheld.SupportsHover)
	assert.True(t, pointer.SupportsHover)
	assert.True(t, pointer.SupportsFocusRing)
	assert.Equal(t, handheld.FormRowLayout, pointer.FormRowLayout, "pointer variant keeps handheld layout")
}

func TestWristDropsInlineInteraction(t *testing.T) {
	caps := WristCapabilities()

	assert.False(t, caps.SupportsInlineTextEditing)
	assert.False(t, caps.SupportsInlinePickers)
	assert.False(t, caps.SupportsToasts)
	assert.True(t, caps.PrefersLargeTapTargets)
}

func TestDesktopPrefersCompactTargets(t *testing.T) {
	assert.False(t, DesktopCapabilities().PrefersLargeTapTargets)
}

func TestCapabilitiesAreHashable(t *testing.T) {
	seen := map[Capabilities]Platform{}
	for _, p := range Platforms() {
		seen[CapabilitiesFor(p)] = p
	}
	assert.Len(t, seen, len(Platforms()), "every canonical record must be distinct")
}

func TestDeviceClassGrouping(t *testing.T) {
	assert.Equal(t, ClassHandheld, Handheld.Class())
	assert.Equal(t, ClassHandheld, HandheldPointer.Class())
	assert.Equal(t, ClassDesktop, Desktop.Class())
	assert.Equal(t, ClassWrist, Wrist.Class())
}
