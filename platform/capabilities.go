package platform

// FormRowLayout is the arrangement of a form row's label and control.
type FormRowLayout int

const (
	// LayoutStacked places the label above the control. Used where
	// horizontal space is scarce.
	LayoutStacked FormRowLayout = iota
	// LayoutInline places the label leading and the control trailing in
	// a single row.
	LayoutInline
	// LayoutTwoColumn aligns labels in a fixed-width trailing-aligned
	// column with controls following.
	LayoutTwoColumn
)

func (l FormRowLayout) String() string {
	switch l {
	case LayoutInline:
		return "inline"
	case LayoutTwoColumn:
		return "twoColumn"
	default:
		return "stacked"
	}
}

// PickerPresentation is how a picker control presents its options.
type PickerPresentation int

const (
	PickerSheet PickerPresentation = iota
	PickerPopover
	PickerMenu
	PickerNavigation
)

func (p PickerPresentation) String() string {
	switch p {
	case PickerPopover:
		return "popover"
	case PickerMenu:
		return "menu"
	case PickerNavigation:
		return "navigation"
	default:
		return "sheet"
	}
}

// TextFieldMode is how text entry is performed.
type TextFieldMode int

const (
	TextFieldInline TextFieldMode = iota
	TextFieldSeparateScreen
)

func (m TextFieldMode) String() string {
	if m == TextFieldSeparateScreen {
		return "separateScreen"
	}
	return "inline"
}

// Capabilities describes what interaction and layout patterns a platform
// supports or prefers. Every spec resolver that degrades behaviour per
// platform consumes one of these records.
//
// Canonical records are fully concrete: every field holds a real value,
// never an "auto" placeholder. Auto resolution is the consumer's concern
// (see Adaptive).
type Capabilities struct {
	SupportsHover             bool
	SupportsFocusRing         bool
	SupportsInlineTextEditing bool
	SupportsInlinePickers     bool
	SupportsToasts            bool
	PrefersLargeTapTargets    bool

	FormRowLayout      FormRowLayout
	PickerPresentation PickerPresentation
	TextFieldMode      TextFieldMode
}

// HandheldCapabilities returns the canonical handheld record: touch-first,
// inline rows, sheet pickers, large tap targets.
func HandheldCapabilities() Capabilities {
	return Capabilities{
		SupportsInlineTextEditing: true,
		SupportsInlinePickers:     true,
		SupportsToasts:            true,
		PrefersLargeTapTargets:    true,
		FormRowLayout:             LayoutInline,
		PickerPresentation:        PickerSheet,
		TextFieldMode:             TextFieldInline,
	}
}

// HandheldPointerCapabilities returns the handheld-with-pointer record.
// Hover and focus rings become available and pickers move to popovers,
// but layout stays handheld.
func HandheldPointerCapabilities() Capabilities {
	caps := HandheldCapabilities()
	caps.SupportsHover = true
	caps.SupportsFocusRing = true
	caps.PickerPresentation = PickerPopover
	return caps
}

// DesktopCapabilities returns the canonical desktop record: pointer-first,
// two-column forms, menu pickers, compact targets.
func DesktopCapabilities() Capabilities {
	return Capabilities{
		SupportsHover:             true,
		SupportsFocusRing:         true,
		SupportsInlineTextEditing: true,
		SupportsInlinePickers:     true,
		SupportsToasts:            true,
		FormRowLayout:             LayoutTwoColumn,
		PickerPresentation:        PickerMenu,
		TextFieldMode:             TextFieldInline,
	}
}

// WristCapabilities returns the canonical wrist-worn record: stacked rows,
// navigation pickers, text entry on a separate screen, no hover, no
// toasts, large tap targets.
func WristCapabilities() Capabilities {
	return Capabilities{
		PrefersLargeTapTargets: true,
		FormRowLayout:          LayoutStacked,
		PickerPresentation:     PickerNavigation,
		TextFieldMode:          TextFieldSeparateScreen,
	}
}

// CapabilitiesFor returns the canonical capability record for a platform.
func CapabilitiesFor(p Platform) Capabilities {
	switch p {
	case HandheldPointer:
		return HandheldPointerCapabilities()
	case Desktop:
		return DesktopCapabilities()
	case Wrist:
		return WristCapabilities()
	default:
		return HandheldCapabilities()
	}
}
