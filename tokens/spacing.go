package tokens

// Base padding scale in points, before density scaling.
const (
	PaddingXXS float64 = 2
	PaddingXS  float64 = 4
	PaddingS   float64 = 8
	PaddingM   float64 = 12
	PaddingL   float64 = 16
	PaddingXL  float64 = 20
	PaddingXXL float64 = 24
)

// Base gap scale in points, before density scaling.
const (
	GapRow       float64 = 8
	GapSection   float64 = 24
	GapStack     float64 = 12
	GapInline    float64 = 6
	GapDashboard float64 = 16
)

// Base control and row heights in points, before density scaling.
const (
	RowHeightCompact float64 = 36
	RowHeightDefault float64 = 44
	RowHeightLarge   float64 = 56
)

// Content insets in points.
const (
	InsetScreen  float64 = 16
	InsetCard    float64 = 16
	InsetSection float64 = 12
)
