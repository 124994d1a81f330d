package theme

import "github.com/facetui/facet/tokens"

// ButtonVariant selects the button's visual treatment.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
	ButtonTertiary
	ButtonDestructive
)

func (v ButtonVariant) String() string {
	switch v {
	case ButtonSecondary:
		return "secondary"
	case ButtonTertiary:
		return "tertiary"
	case ButtonDestructive:
		return "destructive"
	default:
		return "primary"
	}
}

// ButtonSize selects the button's fixed height tier.
type ButtonSize int

const (
	ButtonSmall ButtonSize = iota
	ButtonMedium
	ButtonLarge
)

func (s ButtonSize) String() string {
	switch s {
	case ButtonSmall:
		return "small"
	case ButtonLarge:
		return "large"
	default:
		return "medium"
	}
}

// Tint and overlay alphas for the non-filled variants.
const (
	secondaryTintAlpha    = 0.12
	secondaryHoverAlpha   = 0.16
	secondaryPressedAlpha = 0.20
	secondaryBorderAlpha  = 0.30

	tertiaryHoverAlpha   = 0.08
	tertiaryPressedAlpha = 0.12

	filledHoverAlpha   = 0.90
	filledPressedAlpha = 0.80

	buttonDisabledOpacity = 0.6
	buttonLoadingOpacity  = 0.8
	buttonPressScale      = 0.97

	smallButtonFontScale = 0.82
)

// ButtonSpec is the fully resolved rendering bundle for one button in one
// state. Specs are ephemeral snapshots; resolve a fresh one per render.
type ButtonSpec struct {
	Background tokens.Color
	Foreground tokens.Color
	Border     tokens.Color

	BorderWidth  float64
	Height       float64
	PaddingX     float64
	PaddingY     float64
	CornerRadius float64

	Font tokens.FontToken

	Shadow     ShadowSpec
	Opacity    float64
	PressScale float64
	Animation  Animation
}

type defaultButtonResolver struct{}

func (defaultButtonResolver) Identifier() string { return "facet.button" }

// ResolveButton applies the button resolution order: variant base colors,
// then hover/press overlays, then the disabled override, then loading and
// press effects, then the shadow presence rule. Later rules override
// earlier ones; disabled wins over pressed and hovered for colors, and
// over loading for opacity.
func (defaultButtonResolver) ResolveButton(t Theme, variant ButtonVariant, size ButtonSize, state State) ButtonSpec {
	spec := ButtonSpec{
		Opacity:    1,
		PressScale: 1,
		Animation:  t.Motion.PressFeedback,
	}

	accent := t.Colors.AccentPrimary

	// 1. Variant base.
	switch variant {
	case ButtonSecondary:
		spec.Background = accent.WithAlpha(secondaryTintAlpha)
		spec.Foreground = accent
		spec.Border = accent.WithAlpha(secondaryBorderAlpha)
		spec.BorderWidth = t.Strokes.Default
	case ButtonTertiary:
		spec.Background = tokens.Clear
		spec.Foreground = accent
	case ButtonDestructive:
		spec.Background = t.Colors.Danger
		spec.Foreground = t.Colors.OnAccent
	default:
		spec.Background = accent
		spec.Foreground = t.Colors.OnAccent
	}

	// 2. Interaction overlay. Hover sits between rest and pressed.
	if !state.Disabled() {
		switch {
		case state.Pressed():
			switch variant {
			case ButtonSecondary:
				spec.Background = accent.WithAlpha(secondaryPressedAlpha)
			case ButtonTertiary:
				spec.Background = accent.WithAlpha(tertiaryPressedAlpha)
			default:
				spec.Background = spec.Background.ScaleAlpha(filledPressedAlpha)
			}
		case state.Hovered():
			switch variant {
			case ButtonSecondary:
				spec.Background = accent.WithAlpha(secondaryHoverAlpha)
			case ButtonTertiary:
				spec.Background = accent.WithAlpha(tertiaryHoverAlpha)
			default:
				spec.Background = spec.Background.ScaleAlpha(filledHoverAlpha)
			}
		}
	}

	// 3. Disabled overrides every color decision above.
	if state.Disabled() {
		spec.Foreground = t.Colors.TextDisabled
		switch variant {
		case ButtonSecondary:
			spec.Background = tokens.Clear
			spec.Border = t.Colors.BorderSubtle
			spec.BorderWidth = t.Strokes.Default
		case ButtonTertiary:
			spec.Background = tokens.Clear
		default:
			spec.Background = t.Colors.BorderSubtle
		}
	}

	// 4. Opacity: disabled wins outright over loading, never compounds.
	switch {
	case state.Disabled():
		spec.Opacity = buttonDisabledOpacity
	case state.Loading():
		spec.Opacity = buttonLoadingOpacity
	}

	// 5. Press feedback only applies to enabled buttons.
	if state.Pressed() && !state.Disabled() {
		spec.PressScale = buttonPressScale
	}

	// 6. Shadow presence: filled variants only, and only at rest.
	filled := variant == ButtonPrimary || variant == ButtonDestructive
	if filled && !state.Disabled() && !state.Pressed() {
		spec.Shadow = t.Shadows.Button
	}

	spec.Font = t.Typography.Component.ButtonLabel

	switch size {
	case ButtonSmall:
		spec.Height = 32
		spec.PaddingX = t.Spacing.Padding.M
		spec.PaddingY = t.Spacing.Padding.XS
		spec.CornerRadius = t.Radii.Small
		spec.Font.Size *= smallButtonFontScale
	case ButtonLarge:
		spec.Height = 48
		spec.PaddingX = t.Spacing.Padding.XL
		spec.PaddingY = t.Spacing.Padding.S
		spec.CornerRadius = t.Radii.Large
	default:
		spec.Height = 40
		spec.PaddingX = t.Spacing.Padding.L
		spec.PaddingY = t.Spacing.Padding.S
		spec.CornerRadius = t.Radii.Medium
	}

	return spec
}
