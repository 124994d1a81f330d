package theme

import "github.com/facetui/facet/platform"

// Resolver interfaces, one per component family. Each resolver is a pure
// function from theme plus component parameters to a spec, tagged with a
// stable identifier used for value equality and debugging.

// ButtonResolver resolves button specs.
type ButtonResolver interface {
	Identifier() string
	ResolveButton(t Theme, variant ButtonVariant, size ButtonSize, state State) ButtonSpec
}

// FieldResolver resolves text field specs.
type FieldResolver interface {
	Identifier() string
	ResolveField(t Theme, variant FieldVariant, state State, validation ValidationState) FieldSpec
}

// ToggleResolver resolves toggle specs.
type ToggleResolver interface {
	Identifier() string
	ResolveToggle(t Theme, isOn bool, state State) ToggleSpec
}

// SliderResolver resolves slider specs.
type SliderResolver interface {
	Identifier() string
	ResolveSlider(t Theme, state State) SliderSpec
}

// CardResolver resolves card specs.
type CardResolver interface {
	Identifier() string
	ResolveCard(t Theme, elevation CardElevation) CardSpec
}

// FormRowResolver resolves form row specs.
type FormRowResolver interface {
	Identifier() string
	ResolveFormRow(t Theme, mode platform.Adaptive[platform.FormRowLayout], caps platform.Capabilities) FormRowSpec
}

// ListRowResolver resolves list row specs.
type ListRowResolver interface {
	Identifier() string
	ResolveListRow(t Theme, style ListRowStyle, state State, caps platform.Capabilities) ListRowSpec
}

// ComponentStyles is a swappable table of spec resolvers, one slot per
// component family. The default table uses the built-in resolvers; a
// consumer replaces individual slots through the With methods without
// touching the rest. Equality compares resolver identifiers so the table
// stays a plain comparable value for change detection.
type ComponentStyles struct {
	Button  ButtonResolver
	Field   FieldResolver
	Toggle  ToggleResolver
	Slider  SliderResolver
	Card    CardResolver
	FormRow FormRowResolver
	ListRow ListRowResolver
}

// DefaultComponentStyles returns the built-in resolver table.
func DefaultComponentStyles() ComponentStyles {
	return ComponentStyles{
		Button:  defaultButtonResolver{},
		Field:   defaultFieldResolver{},
		Toggle:  defaultToggleResolver{},
		Slider:  defaultSliderResolver{},
		Card:    defaultCardResolver{},
		FormRow: defaultFormRowResolver{},
		ListRow: defaultListRowResolver{},
	}
}

// WithButton returns a copy with the button slot replaced.
func (c ComponentStyles) WithButton(r ButtonResolver) ComponentStyles {
	c.Button = r
	return c
}

// WithField returns a copy with the field slot replaced.
func (c ComponentStyles) WithField(r FieldResolver) ComponentStyles {
	c.Field = r
	return c
}

// WithToggle returns a copy with the toggle slot replaced.
func (c ComponentStyles) WithToggle(r ToggleResolver) ComponentStyles {
	c.Toggle = r
	return c
}

// WithSlider returns a copy with the slider slot replaced.
func (c ComponentStyles) WithSlider(r SliderResolver) ComponentStyles {
	c.Slider = r
	return c
}

// WithCard returns a copy with the card slot replaced.
func (c ComponentStyles) WithCard(r CardResolver) ComponentStyles {
	c.Card = r
	return c
}

// WithFormRow returns a copy with the form row slot replaced.
func (c ComponentStyles) WithFormRow(r FormRowResolver) ComponentStyles {
	c.FormRow = r
	return c
}

// WithListRow returns a copy with the list row slot replaced.
func (c ComponentStyles) WithListRow(r ListRowResolver) ComponentStyles {
	c.ListRow = r
	return c
}

// Equal compares two tables slot by slot using resolver identifiers.
func (c ComponentStyles) Equal(o ComponentStyles) bool {
	return resolverID(c.Button) == resolverID(o.Button) &&
		resolverID(c.Field) == resolverID(o.Field) &&
		resolverID(c.Toggle) == resolverID(o.Toggle) &&
		resolverID(c.Slider) == resolverID(o.Slider) &&
		resolverID(c.Card) == resolverID(o.Card) &&
		resolverID(c.FormRow) == resolverID(o.FormRow) &&
		resolverID(c.ListRow) == resolverID(o.ListRow)
}

type identified interface {
	Identifier() string
}

func resolverID(r identified) string {
	switch v := r.(type) {
	case nil:
		return ""
	default:
		return v.Identifier()
	}
}

// Func adapters wrap plain functions as resolvers so consumers can
// override a slot without declaring a type.

// ButtonResolverFunc adapts a function to ButtonResolver.
type ButtonResolverFunc struct {
	ID string
	Fn func(t Theme, variant ButtonVariant, size ButtonSize, state State) ButtonSpec
}

// Identifier returns the adapter's identifier.
func (f ButtonResolverFunc) Identifier() string { return f.ID }

// ResolveButton invokes the wrapped function.
func (f ButtonResolverFunc) ResolveButton(t Theme, variant ButtonVariant, size ButtonSize, state State) ButtonSpec {
	return f.Fn(t, variant, size, state)
}

// FieldResolverFunc adapts a function to FieldResolver.
type FieldResolverFunc struct {
	ID string
	Fn func(t Theme, variant FieldVariant, state State, validation ValidationState) FieldSpec
}

// Identifier returns the adapter's identifier.
func (f FieldResolverFunc) Identifier() string { return f.ID }

// ResolveField invokes the wrapped function.
func (f FieldResolverFunc) ResolveField(t Theme, variant FieldVariant, state State, validation ValidationState) FieldSpec {
	return f.Fn(t, variant, state, validation)
}

// ToggleResolverFunc adapts a function to ToggleResolver.
type ToggleResolverFunc struct {
	ID string
	Fn func(t Theme, isOn bool, state State) ToggleSpec
}

// Identifier returns the adapter's identifier.
func (f ToggleResolverFunc) Identifier() string { return f.ID }

// ResolveToggle invokes the wrapped function.
func (f ToggleResolverFunc) ResolveToggle(t Theme, isOn bool, state State) ToggleSpec {
	return f.Fn(t, isOn, state)
}

// SliderResolverFunc adapts a function to SliderResolver.
type SliderResolverFunc struct {
	ID string
	Fn func(t Theme, state State) SliderSpec
}

// Identifier returns the adapter's identifier.
func (f SliderResolverFunc) Identifier() string { return f.ID }

// ResolveSlider invokes the wrapped function.
func (f SliderResolverFunc) ResolveSlider(t Theme, state State) SliderSpec {
	return f.Fn(t, state)
}

// CardResolverFunc adapts a function to CardResolver.
type CardResolverFunc struct {
	ID string
	Fn func(t Theme, elevation CardElevation) CardSpec
}

// Identifier returns the adapter's identifier.
func (f CardResolverFunc) Identifier() string { return f.ID }

// ResolveCard invokes the wrapped function.
func (f CardResolverFunc) ResolveCard(t Theme, elevation CardElevation) CardSpec {
	return f.Fn(t, elevation)
}

// FormRowResolverFunc adapts a function to FormRowResolver.
type FormRowResolverFunc struct {
	ID string
	Fn func(t Theme, mode platform.Adaptive[platform.FormRowLayout], caps platform.Capabilities) FormRowSpec
}

// Identifier returns the adapter's identifier.
func (f FormRowResolverFunc) Identifier() string { return f.ID }

// ResolveFormRow invokes the wrapped function.
func (f FormRowResolverFunc) ResolveFormRow(t Theme, mode platform.Adaptive[platform.FormRowLayout], caps platform.Capabilities) FormRowSpec {
	return f.Fn(t, mode, caps)
}

// ListRowResolverFunc adapts a function to ListRowResolver.
type ListRowResolverFunc struct {
	ID string
	Fn func(t Theme, style ListRowStyle, state State, caps platform.Capabilities) ListRowSpec
}

// Identifier returns the adapter's identifier.
func (f ListRowResolverFunc) Identifier() string { return f.ID }

// ResolveListRow invokes the wrapped function.
func (f ListRowResolverFunc) ResolveListRow(t Theme, style ListRowStyle, state State, caps platform.Capabilities) ListRowSpec {
	return f.Fn(t, style, state, caps)
}
