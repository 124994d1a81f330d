package tokens

// Duration scale in seconds.
const (
	DurationInstant float64 = 0
	DurationFast    float64 = 0.15
	DurationNormal  float64 = 0.25
	DurationSlow    float64 = 0.40

	// DurationReduced replaces every non-zero duration when the
	// reduce-motion policy is active. Kept below 0.1s so transitions
	// register as state changes rather than movement.
	DurationReduced float64 = 0.05
)

// SpringToken is a response/damping spring preset. A zero Response means
// no spring: the transition completes instantly.
type SpringToken struct {
	Response float64
	Damping  float64
}

// Spring presets.
var (
	SpringInstant = SpringToken{}
	SpringSnappy  = SpringToken{Response: 0.30, Damping: 0.85}
	SpringSmooth  = SpringToken{Response: 0.45, Damping: 1.0}
	SpringBouncy  = SpringToken{Response: 0.40, Damping: 0.65}
)

// IsInstant reports whether the preset skips animation entirely.
func (s SpringToken) IsInstant() bool {
	return s.Response == 0
}

// Curve names a timing curve for non-spring transitions.
type Curve int

const (
	CurveLinear Curve = iota
	CurveEaseIn
	CurveEaseOut
	CurveEaseInOut
)

func (c Curve) String() string {
	switch c {
	case CurveLinear:
		return "linear"
	case CurveEaseIn:
		return "easeIn"
	case CurveEaseOut:
		return "easeOut"
	case CurveEaseInOut:
		return "easeInOut"
	default:
		return "easeInOut"
	}
}
