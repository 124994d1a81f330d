package platform

// Adaptive is a two-path configuration value: either "auto", resolving to
// whatever the platform's capability record prefers, or fixed, always
// winning regardless of platform. Form-row layout, picker presentation and
// text-field mode all degrade through this one rule.
//
// The zero value is auto.
type Adaptive[T any] struct {
	fixed bool
	value T
}

// Auto returns an adaptive value that defers to the capability record.
func Auto[T any]() Adaptive[T] {
	return Adaptive[T]{}
}

// Fixed returns an adaptive value pinned to v.
func Fixed[T any](v T) Adaptive[T] {
	return Adaptive[T]{fixed: true, value: v}
}

// IsAuto reports whether the value defers to the capability record.
func (a Adaptive[T]) IsAuto() bool {
	return !a.fixed
}

// Resolve returns the fixed value if set, otherwise preferred.
func (a Adaptive[T]) Resolve(preferred T) T {
	if a.fixed {
		return a.value
	}
	return preferred
}

// ResolveRowLayout resolves a form-row layout choice against capabilities.
func ResolveRowLayout(mode Adaptive[FormRowLayout], caps Capabilities) FormRowLayout {
	return mode.Resolve(caps.FormRowLayout)
}

// ResolvePickerPresentation resolves a picker presentation choice against
// capabilities.
func ResolvePickerPresentation(mode Adaptive[PickerPresentation], caps Capabilities) PickerPresentation {
	return mode.Resolve(caps.PickerPresentation)
}

// ResolveTextFieldMode resolves a text entry mode choice against
// capabilities.
func ResolveTextFieldMode(mode Adaptive[TextFieldMode], caps Capabilities) TextFieldMode {
	return mode.Resolve(caps.TextFieldMode)
}
