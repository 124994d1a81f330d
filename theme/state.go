package theme

// State is a set of non-exclusive interaction flags. Flags combine freely:
// a control can be focused and disabled at once, and resolvers define the
// precedence when combinations conflict.
type State uint8

const (
	StatePressed State = 1 << iota
	StateHovered
	StateFocused
	StateDisabled
	StateLoading
	StateSelected

	// StateNone is the resting state.
	StateNone State = 0
)

// Has reports whether every flag in f is set.
func (s State) Has(f State) bool {
	return s&f == f
}

// With returns the state with the given flags added.
func (s State) With(f State) State {
	return s | f
}

// Without returns the state with the given flags removed.
func (s State) Without(f State) State {
	return s &^ f
}

// Pressed reports the pressed flag.
func (s State) Pressed() bool { return s.Has(StatePressed) }

// Hovered reports the hovered flag.
func (s State) Hovered() bool { return s.Has(StateHovered) }

// Focused reports the focused flag.
func (s State) Focused() bool { return s.Has(StateFocused) }

// Disabled reports the disabled flag.
func (s State) Disabled() bool { return s.Has(StateDisabled) }

// Loading reports the loading flag.
func (s State) Loading() bool { return s.Has(StateLoading) }

// Selected reports the selected flag.
func (s State) Selected() bool { return s.Has(StateSelected) }
