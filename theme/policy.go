package theme

// DynamicTypeSize is the ordered accessibility text-size preference. The
// ordering is total: ExtraSmall < ... < AccessibilityExtraExtraExtraLarge.
// The six Accessibility* steps form a contiguous upper subrange that also
// triggers larger spacing.
type DynamicTypeSize int

const (
	DynamicTypeExtraSmall DynamicTypeSize = iota
	DynamicTypeSmall
	DynamicTypeMedium
	DynamicTypeLarge
	DynamicTypeExtraLarge
	DynamicTypeExtraExtraLarge
	DynamicTypeExtraExtraExtraLarge
	DynamicTypeAccessibilitySmall
	DynamicTypeAccessibilityMedium
	DynamicTypeAccessibilityLarge
	DynamicTypeAccessibilityExtraLarge
	DynamicTypeAccessibilityExtraExtraLarge
	DynamicTypeAccessibilityExtraExtraExtraLarge
)

// dynamicTypeFactors maps each step to its type scale factor. The Large
// baseline step is exactly 1.0 and factors increase strictly with the step.
var dynamicTypeFactors = [...]float64{
	DynamicTypeExtraSmall:                        0.82,
	DynamicTypeSmall:                             0.88,
	DynamicTypeMedium:                            0.94,
	DynamicTypeLarge:                             1.00,
	DynamicTypeExtraLarge:                        1.06,
	DynamicTypeExtraExtraLarge:                   1.12,
	DynamicTypeExtraExtraExtraLarge:              1.20,
	DynamicTypeAccessibilitySmall:                1.32,
	DynamicTypeAccessibilityMedium:               1.45,
	DynamicTypeAccessibilityLarge:                1.60,
	DynamicTypeAccessibilityExtraLarge:           1.75,
	DynamicTypeAccessibilityExtraExtraLarge:      1.95,
	DynamicTypeAccessibilityExtraExtraExtraLarge: 2.15,
}

// Clamped returns the nearest defined step. Out-of-range values fail
// closed to the boundary steps rather than panicking mid-resolution.
func (s DynamicTypeSize) Clamped() DynamicTypeSize {
	if s < DynamicTypeExtraSmall {
		return DynamicTypeExtraSmall
	}
	if s > DynamicTypeAccessibilityExtraExtraExtraLarge {
		return DynamicTypeAccessibilityExtraExtraExtraLarge
	}
	return s
}

// ScaleFactor returns the typography scale factor for the step.
func (s DynamicTypeSize) ScaleFactor() float64 {
	return dynamicTypeFactors[s.Clamped()]
}

// IsAccessibilitySize reports whether the step belongs to the
// accessibility subrange.
func (s DynamicTypeSize) IsAccessibilitySize() bool {
	return s.Clamped() >= DynamicTypeAccessibilitySmall
}

func (s DynamicTypeSize) String() string {
	switch s.Clamped() {
	case DynamicTypeExtraSmall:
		return "extraSmall"
	case DynamicTypeSmall:
		return "small"
	case DynamicTypeMedium:
		return "medium"
	case DynamicTypeLarge:
		return "large"
	case DynamicTypeExtraLarge:
		return "extraLarge"
	case DynamicTypeExtraExtraLarge:
		return "extraExtraLarge"
	case DynamicTypeExtraExtraExtraLarge:
		return "extraExtraExtraLarge"
	case DynamicTypeAccessibilitySmall:
		return "accessibilitySmall"
	case DynamicTypeAccessibilityMedium:
		return "accessibilityMedium"
	case DynamicTypeAccessibilityLarge:
		return "accessibilityLarge"
	case DynamicTypeAccessibilityExtraLarge:
		return "accessibilityExtraLarge"
	case DynamicTypeAccessibilityExtraExtraLarge:
		return "accessibilityExtraExtraLarge"
	default:
		return "accessibilityExtraExtraExtraLarge"
	}
}

// Policy is the accessibility state of the host environment, supplied per
// render context and consumed read-only by Resolve. VoiceOverRunning and
// SwitchControlRunning do not affect resolution; they are carried so
// renderers can adjust focus ordering and hit targets.
type Policy struct {
	ReduceMotion             bool
	IncreasedContrast        bool
	ReduceTransparency       bool
	DifferentiateWithoutColor bool
	DynamicType              DynamicTypeSize
	BoldText                 bool
	VoiceOverRunning         bool
	SwitchControlRunning     bool
}

// DefaultPolicy returns the policy of an environment with no accessibility
// settings enabled, at the Large baseline type step.
func DefaultPolicy() Policy {
	return Policy{DynamicType: DynamicTypeLarge}
}
