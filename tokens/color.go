package tokens

// Color is a raw color token: an sRGB hex value plus an alpha multiplier.
// Colors carry no semantics; the theme resolver maps them onto roles.
// The zero value is "no color" and renders as fully transparent.
type Color struct {
	Hex   string
	Alpha float64
}

// RGB creates an opaque color token from a hex string such as "#1e293b".
func RGB(hex string) Color {
	return Color{Hex: hex, Alpha: 1}
}

// RGBA creates a color token with an explicit alpha in [0, 1].
func RGBA(hex string, alpha float64) Color {
	return Color{Hex: hex, Alpha: clampUnit(alpha)}
}

// Clear is the fully transparent color.
var Clear = Color{}

// White and Black are fixed anchors used by several component resolvers
// (toggle thumbs, filled-button foregrounds) independent of variant.
var (
	White = RGB("#ffffff")
	Black = RGB("#000000")
)

// WithAlpha returns a copy of the color with its alpha replaced.
func (c Color) WithAlpha(alpha float64) Color {
	c.Alpha = clampUnit(alpha)
	return c
}

// ScaleAlpha returns a copy with the alpha multiplied by factor.
func (c Color) ScaleAlpha(factor float64) Color {
	return c.WithAlpha(c.Alpha * factor)
}

// IsClear reports whether the color renders nothing.
func (c Color) IsClear() bool {
	return c.Hex == "" || c.Alpha == 0
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
