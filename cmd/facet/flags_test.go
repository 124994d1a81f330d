package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetui/facet/platform"
	"github.com/facetui/facet/theme"
)

func TestParseVariant(t *testing.T) {
	v, err := parseVariant("dark")
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, v)

	_, err = parseVariant("sepia")
	assert.Error(t, err)
}

func TestParsePlatform(t *testing.T) {
	p, err := parsePlatform("handheld-pointer")
	require.NoError(t, err)
	assert.Equal(t, platform.HandheldPointer, p)

	_, err = parsePlatform("tablet")
	assert.Error(t, err)
}

func TestParseDensity(t *testing.T) {
	d, err := parseDensity("spacious")
	require.NoError(t, err)
	assert.Equal(t, theme.DensitySpacious, d)

	_, err = parseDensity("cozy")
	assert.Error(t, err)
}

func TestParseDynamicType(t *testing.T) {
	s, err := parseDynamicType("accessibilityMedium")
	require.NoError(t, err)
	assert.Equal(t, theme.DynamicTypeAccessibilityMedium, s)

	_, err = parseDynamicType("huge")
	assert.Error(t, err)
}

func TestThemeFlagsResolve(t *testing.T) {
	flags := themeFlags{
		variant:      "dark",
		platform:     "wrist",
		density:      "compact",
		dynamicType:  "large",
		reduceMotion: true,
	}

	th, caps, err := flags.resolve()
	require.NoError(t, err)

	assert.Equal(t, theme.Dark, th.Variant)
	assert.Equal(t, theme.DensityCompact, th.Density)
	assert.Equal(t, platform.WristCapabilities(), caps)
	assert.True(t, th.Motion.ReduceMotionEnabled)
}

func TestThemeFlagsResolveRejectsBadInput(t *testing.T) {
	flags := themeFlags{variant: "light", platform: "mainframe", density: "regular", dynamicType: "large"}
	_, _, err := flags.resolve()
	assert.Error(t, err)
}
