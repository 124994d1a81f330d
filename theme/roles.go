package theme

import "github.com/facetui/facet/tokens"

// ColorRoles maps semantic color purposes to concrete tokens for one
// variant under one accessibility policy.
type ColorRoles struct {
	// Backgrounds, ordered by elevation.
	Canvas          tokens.Color
	Surface         tokens.Color
	SurfaceElevated tokens.Color
	Card            tokens.Color

	// Foregrounds.
	TextPrimary   tokens.Color
	TextSecondary tokens.Color
	TextTertiary  tokens.Color
	TextDisabled  tokens.Color

	// Borders.
	BorderSubtle tokens.Color
	BorderStrong tokens.Color
	Separator    tokens.Color

	// Accents and the foreground used on filled accent surfaces.
	AccentPrimary   tokens.Color
	AccentSecondary tokens.Color
	OnAccent        tokens.Color

	// Status.
	Success tokens.Color
	Warning tokens.Color
	Danger  tokens.Color
	Info    tokens.Color

	FocusRing tokens.Color
}

// SystemType is the resolved system type scale, already scaled for the
// policy's dynamic type step and weight-shifted for bold text.
type SystemType struct {
	LargeTitle  tokens.FontToken
	Title       tokens.FontToken
	Title2      tokens.FontToken
	Title3      tokens.FontToken
	Headline    tokens.FontToken
	Body        tokens.FontToken
	Callout     tokens.FontToken
	Subheadline tokens.FontToken
	Footnote    tokens.FontToken
	Caption     tokens.FontToken
	Caption2    tokens.FontToken
}

// ComponentType holds per-component typography roles derived from the
// system scale with role-specific size and weight overrides baked in.
type ComponentType struct {
	ButtonLabel      tokens.FontToken
	FieldText        tokens.FontToken
	FieldPlaceholder tokens.FontToken
	HelperText       tokens.FontToken
	RowTitle         tokens.FontToken
	RowValue         tokens.FontToken
	SectionHeader    tokens.FontToken
	BadgeText        tokens.FontToken
	MonoText         tokens.FontToken
}

// TypographyRoles bundles the system and component scales.
type TypographyRoles struct {
	System    SystemType
	Component ComponentType
}

// PaddingScale is the resolved padding scale in points.
type PaddingScale struct {
	XXS, XS, S, M, L, XL, XXL float64
}

// GapScale is the resolved gap scale in points.
type GapScale struct {
	Row       float64
	Section   float64
	Stack     float64
	Inline    float64
	Dashboard float64
}

// RowHeights holds resolved minimum row heights in points.
type RowHeights struct {
	Compact float64
	Default float64
	Large   float64
}

// InsetScale holds resolved content insets in points.
type InsetScale struct {
	Screen  float64
	Card    float64
	Section float64
}

// SpacingRoles bundles every resolved spacing role.
type SpacingRoles struct {
	Padding   PaddingScale
	Gap       GapScale
	RowHeight RowHeights
	Inset     InsetScale
}

// RadiusRoles maps component radius roles to points. Radii carry no
// density or accessibility dependency.
type RadiusRoles struct {
	Small   float64
	Medium  float64
	Large   float64
	Field   float64
	Search  float64
	Card    float64
	Capsule float64
}

// ShadowSpec is a fully resolved elevation shadow. Opacity is folded into
// the color's alpha.
type ShadowSpec struct {
	Color   tokens.Color
	Radius  float64
	YOffset float64
}

// IsNone reports whether the shadow renders nothing.
func (s ShadowSpec) IsNone() bool {
	return s.Color.IsClear()
}

// ShadowRoles maps elevation roles to resolved shadows.
type ShadowRoles struct {
	None       ShadowSpec
	Button     ShadowSpec
	Card       ShadowSpec
	CardRaised ShadowSpec
	Overlay    ShadowSpec
}

// StrokeRoles holds resolved stroke widths in points.
type StrokeRoles struct {
	Hairline  float64
	Default   float64
	Strong    float64
	FocusRing float64
}

// DurationScale holds resolved durations in seconds.
type DurationScale struct {
	Instant float64
	Fast    float64
	Normal  float64
	Slow    float64
}

// SpringScale holds resolved spring presets.
type SpringScale struct {
	Snappy tokens.SpringToken
	Smooth tokens.SpringToken
	Bouncy tokens.SpringToken
}

// Animation is a resolved animation handle attached to component specs.
// Renderers prefer the spring when it is not instant, falling back to the
// duration/curve pair.
type Animation struct {
	Duration float64
	Curve    tokens.Curve
	Spring   tokens.SpringToken
}

// MotionRoles bundles resolved motion values. ReduceMotionEnabled mirrors
// the policy so downstream specs consult the theme instead of re-deriving
// it.
type MotionRoles struct {
	Duration DurationScale
	Spring   SpringScale

	PressFeedback Animation
	StateChange   Animation
	Reveal        Animation

	ReduceMotionEnabled bool
}
