package theme

import "github.com/facetui/facet/tokens"

// FieldVariant selects the text field's visual treatment.
type FieldVariant int

const (
	FieldDefault FieldVariant = iota
	FieldSearch
)

func (v FieldVariant) String() string {
	if v == FieldSearch {
		return "search"
	}
	return "default"
}

// ValidationState is the validation feedback attached to a field.
type ValidationState int

const (
	ValidationNone ValidationState = iota
	ValidationSuccess
	ValidationWarning
	ValidationError
	ValidationValidating
)

func (v ValidationState) String() string {
	switch v {
	case ValidationSuccess:
		return "success"
	case ValidationWarning:
		return "warning"
	case ValidationError:
		return "error"
	case ValidationValidating:
		return "validating"
	default:
		return "none"
	}
}

const (
	fieldHeight          = 40.0
	fieldDisabledOpacity = 0.6

	validationBorderWidth        = 1.5
	validationFocusedBorderWidth = 2.0
	successBorderWidth           = 1.0
	focusedBorderWidth           = 2.0
	disabledBorderWidth          = 1.0
)

// FieldSpec is the fully resolved rendering bundle for one text field.
type FieldSpec struct {
	Background  tokens.Color
	Foreground  tokens.Color
	Placeholder tokens.Color

	Border      tokens.Color
	BorderWidth float64

	FocusRing      tokens.Color
	FocusRingWidth float64

	Height       float64
	PaddingX     float64
	PaddingY     float64
	CornerRadius float64

	Font            tokens.FontToken
	PlaceholderFont tokens.FontToken

	Opacity   float64
	Animation Animation
}

type defaultFieldResolver struct{}

func (defaultFieldResolver) Identifier() string { return "facet.field" }

// ResolveField resolves border and focus treatment by priority: error,
// then warning, then success, then focus, then disabled, then the resting
// default. Validation colors replace the accent border but keep the
// focused width, so focus never silently thins an error border.
func (defaultFieldResolver) ResolveField(t Theme, variant FieldVariant, state State, validation ValidationState) FieldSpec {
	spec := FieldSpec{
		Background:      t.Colors.SurfaceElevated,
		Foreground:      t.Colors.TextPrimary,
		Placeholder:     t.Colors.TextTertiary,
		Height:          fieldHeight,
		PaddingX:        t.Spacing.Padding.M,
		PaddingY:        t.Spacing.Padding.S,
		CornerRadius:    t.Radii.Field,
		Font:            t.Typography.Component.FieldText,
		PlaceholderFont: t.Typography.Component.FieldPlaceholder,
		Opacity:         1,
		Animation:       t.Motion.StateChange,
	}

	if variant == FieldSearch {
		spec.CornerRadius = t.Radii.Search
	}

	// Border priority is literal: focus outranks disabled, so a focused
	// disabled field keeps the accent border and ring. Disabled's
	// background, foreground and opacity effects apply separately below.
	focused := state.Focused()

	switch {
	case validation == ValidationError:
		spec.Border = t.Colors.Danger
		spec.BorderWidth = validationBorderWidth
		if focused {
			spec.BorderWidth = validationFocusedBorderWidth
		}
	case validation == ValidationWarning:
		spec.Border = t.Colors.Warning
		spec.BorderWidth = validationBorderWidth
		if focused {
			spec.BorderWidth = validationFocusedBorderWidth
		}
	case validation == ValidationSuccess:
		// Focus does not thicken a success border.
		spec.Border = t.Colors.Success
		spec.BorderWidth = successBorderWidth
	case focused:
		spec.Border = t.Colors.AccentPrimary
		spec.BorderWidth = focusedBorderWidth
	case state.Disabled():
		spec.Border = t.Colors.BorderSubtle.ScaleAlpha(0.5)
		spec.BorderWidth = disabledBorderWidth
	default:
		spec.Border = t.Colors.BorderSubtle
		spec.BorderWidth = t.Strokes.Default
	}

	// The ring follows the border's color family so validation feedback
	// stays visible while focused.
	if focused {
		spec.FocusRingWidth = t.Strokes.FocusRing
		switch validation {
		case ValidationError:
			spec.FocusRing = t.Colors.Danger.WithAlpha(0.4)
		case ValidationWarning:
			spec.FocusRing = t.Colors.Warning.WithAlpha(0.4)
		case ValidationSuccess:
			spec.FocusRing = t.Colors.Success.WithAlpha(0.4)
		default:
			spec.FocusRing = t.Colors.FocusRing.WithAlpha(0.4)
		}
	}

	if state.Disabled() {
		spec.Background = t.Colors.SurfaceElevated.ScaleAlpha(0.5)
		spec.Foreground = t.Colors.TextDisabled
		spec.Placeholder = t.Colors.TextDisabled
		spec.Opacity = fieldDisabledOpacity
	}

	return spec
}
