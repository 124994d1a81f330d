package tokens

// FontWeight is an ordered weight scale. Ordering is total so that weight
// adjustments (bold-text accessibility) can shift by whole steps.
type FontWeight int

const (
	WeightUltraLight FontWeight = iota
	WeightThin
	WeightLight
	WeightRegular
	WeightMedium
	WeightSemibold
	WeightBold
	WeightHeavy
	WeightBlack
)

// Heavier returns the weight one step up, saturating at WeightBlack.
func (w FontWeight) Heavier() FontWeight {
	if w >= WeightBlack {
		return WeightBlack
	}
	return w + 1
}

func (w FontWeight) String() string {
	switch w {
	case WeightUltraLight:
		return "ultralight"
	case WeightThin:
		return "thin"
	case WeightLight:
		return "light"
	case WeightRegular:
		return "regular"
	case WeightMedium:
		return "medium"
	case WeightSemibold:
		return "semibold"
	case WeightBold:
		return "bold"
	case WeightHeavy:
		return "heavy"
	case WeightBlack:
		return "black"
	default:
		return "regular"
	}
}

// FontToken is a raw type token: an unscaled point size plus weight.
// Mono selects the monospaced family.
type FontToken struct {
	Size   float64
	Weight FontWeight
	Mono   bool
}

// System type scale, unscaled base sizes in points. The Large dynamic-type
// step renders these sizes exactly; every other step scales them.
var (
	FontLargeTitle  = FontToken{Size: 34, Weight: WeightBold}
	FontTitle       = FontToken{Size: 28, Weight: WeightBold}
	FontTitle2      = FontToken{Size: 22, Weight: WeightBold}
	FontTitle3      = FontToken{Size: 20, Weight: WeightSemibold}
	FontHeadline    = FontToken{Size: 17, Weight: WeightSemibold}
	FontBody        = FontToken{Size: 17, Weight: WeightRegular}
	FontCallout     = FontToken{Size: 16, Weight: WeightRegular}
	FontSubheadline = FontToken{Size: 15, Weight: WeightRegular}
	FontFootnote    = FontToken{Size: 13, Weight: WeightRegular}
	FontCaption     = FontToken{Size: 12, Weight: WeightRegular}
	FontCaption2    = FontToken{Size: 11, Weight: WeightRegular}
	FontMono        = FontToken{Size: 15, Weight: WeightRegular, Mono: true}
)
