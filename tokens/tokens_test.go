package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFontWeightHeavierSaturates(t *testing.T) {
	assert.Equal(t, WeightMedium, WeightRegular.Heavier())
	assert.Equal(t, WeightBold, WeightSemibold.Heavier())
	assert.Equal(t, WeightBlack, WeightBlack.Heavier())
}

func TestSpringInstantHasNoResponse(t *testing.T) {
	assert.True(t, SpringInstant.IsInstant())
	assert.False(t, SpringSnappy.IsInstant())
	assert.False(t, SpringBouncy.IsInstant())
}

func TestDurationScaleOrdering(t *testing.T) {
	assert.Less(t, DurationInstant, DurationFast)
	assert.Less(t, DurationFast, DurationNormal)
	assert.Less(t, DurationNormal, DurationSlow)
	assert.Less(t, DurationReduced, 0.1, "reduced duration must stay below the motion threshold")
}

func TestDarkSafeAccentsDifferFromLight(t *testing.T) {
	pairs := []AccentPair{AccentBlue, AccentPurple, AccentGreen, AccentAmber, AccentRed, AccentCyan}
	for _, pair := range pairs {
		assert.NotEqual(t, pair.Light, pair.DarkSafe)
	}
}

func TestShadowTokensDarkerInDarkMode(t *testing.T) {
	for _, tok := range []ShadowToken{ShadowButton, ShadowCard, ShadowCardRaised, ShadowOverlay} {
		assert.Greater(t, tok.DarkOpacity, tok.LightOpacity)
	}
}
