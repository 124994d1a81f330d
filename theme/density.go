package theme

// Density is a uniform spacing and control-height tier. Compact tightens
// layouts below the regular baseline, spacious loosens them.
type Density int

const (
	DensityCompact Density = iota
	DensityRegular
	DensitySpacious
)

// SpacingMultiplier returns the factor applied to padding and gap roles.
func (d Density) SpacingMultiplier() float64 {
	switch d {
	case DensityCompact:
		return 0.85
	case DensitySpacious:
		return 1.15
	default:
		return 1.0
	}
}

// ControlHeightMultiplier returns the factor applied to row and control
// heights.
func (d Density) ControlHeightMultiplier() float64 {
	switch d {
	case DensityCompact:
		return 0.9
	case DensitySpacious:
		return 1.1
	default:
		return 1.0
	}
}

func (d Density) String() string {
	switch d {
	case DensityCompact:
		return "compact"
	case DensitySpacious:
		return "spacious"
	default:
		return "regular"
	}
}
