package tokens

// ShadowToken defines an elevation shadow before variant selection.
// Dark surfaces need heavier shadows to read at all, so each token carries
// a per-variant opacity pair; the resolver picks one.
type ShadowToken struct {
	Color        Color
	LightOpacity float64
	DarkOpacity  float64
	Radius       float64
	YOffset      float64
}

// Elevation shadow scale.
var (
	ShadowNone       = ShadowToken{}
	ShadowButton     = ShadowToken{Color: Black, LightOpacity: 0.12, DarkOpacity: 0.30, Radius: 6, YOffset: 2}
	ShadowCard       = ShadowToken{Color: Black, LightOpacity: 0.08, DarkOpacity: 0.35, Radius: 10, YOffset: 3}
	ShadowCardRaised = ShadowToken{Color: Black, LightOpacity: 0.12, DarkOpacity: 0.45, Radius: 18, YOffset: 6}
	ShadowOverlay    = ShadowToken{Color: Black, LightOpacity: 0.20, DarkOpacity: 0.55, Radius: 30, YOffset: 12}
)

// Stroke widths in points, with the widened counterparts used when the
// increased-contrast policy is active.
const (
	StrokeHairline float64 = 0.5
	StrokeDefault  float64 = 1.0
	StrokeStrong   float64 = 1.5
	StrokeFocus    float64 = 2.0

	StrokeHairlineContrast float64 = 1.0
	StrokeDefaultContrast  float64 = 1.5
	StrokeStrongContrast   float64 = 2.0
	StrokeFocusContrast    float64 = 3.0
)
