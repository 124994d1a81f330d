package tokens

// Corner radius scale in points.
const (
	RadiusNone   float64 = 0
	RadiusSmall  float64 = 6
	RadiusMedium float64 = 10
	RadiusLarge  float64 = 14
	RadiusField  float64 = 10
	RadiusSearch float64 = 18
	RadiusCard   float64 = 16

	// RadiusCapsule is a sentinel larger than any control dimension;
	// renderers clamp it to half the control height.
	RadiusCapsule float64 = 9999
)
