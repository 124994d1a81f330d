package theme

import (
	"github.com/facetui/facet/platform"
	"github.com/facetui/facet/tokens"
)

// LabelAlignment is the horizontal alignment of a form row's label.
type LabelAlignment int

const (
	AlignLeading LabelAlignment = iota
	AlignTrailing
)

func (a LabelAlignment) String() string {
	if a == AlignTrailing {
		return "trailing"
	}
	return "leading"
}

// twoColumnLabelWidth is the fixed label column width for the two-column
// layout. Zero LabelWidth in any other layout means the label hugs its
// content.
const twoColumnLabelWidth = 140.0

// FormRowSpec is the fully resolved layout bundle for one form row.
// HorizontalSpacing and VerticalSpacing are mutually exclusive: stacked
// rows use only vertical spacing, inline and two-column rows only
// horizontal.
type FormRowSpec struct {
	Layout         platform.FormRowLayout
	LabelWidth     float64
	LabelAlignment LabelAlignment

	HorizontalSpacing float64
	VerticalSpacing   float64

	ContentPaddingX float64
	ContentPaddingY float64
	MinHeight       float64

	ShowSeparator          bool
	Separator              tokens.Color
	SeparatorInsetLeading  float64
	SeparatorInsetTrailing float64

	Transition Animation
}

type defaultFormRowResolver struct{}

func (defaultFormRowResolver) Identifier() string { return "facet.formrow" }

// ResolveFormRow resolves the row layout through the shared two-path rule:
// auto resolves to the capability record's preferred layout, fixed always
// wins. Everything else derives from the resolved layout plus the
// platform's tap-target preference.
func (defaultFormRowResolver) ResolveFormRow(t Theme, mode platform.Adaptive[platform.FormRowLayout], caps platform.Capabilities) FormRowSpec {
	layout := platform.ResolveRowLayout(mode, caps)

	spec := FormRowSpec{
		Layout:          layout,
		ContentPaddingX: t.Spacing.Inset.Screen,
		ContentPaddingY: t.Spacing.Padding.S,
		MinHeight:       t.Spacing.RowHeight.Compact,
		Separator:       t.Colors.Separator,
		Transition:      t.Motion.StateChange,
	}

	if caps.PrefersLargeTapTargets {
		spec.MinHeight = t.Spacing.RowHeight.Default
	}

	switch layout {
	case platform.LayoutStacked:
		spec.VerticalSpacing = t.Spacing.Gap.Inline
	case platform.LayoutTwoColumn:
		spec.LabelWidth = twoColumnLabelWidth
		spec.LabelAlignment = AlignTrailing
		spec.HorizontalSpacing = t.Spacing.Gap.Row
	default:
		spec.HorizontalSpacing = t.Spacing.Gap.Row
	}

	// Stacked rows read as discrete blocks; separators only help the
	// single-line layouts.
	if layout != platform.LayoutStacked {
		spec.ShowSeparator = true
		spec.SeparatorInsetLeading = t.Spacing.Inset.Screen
	}

	return spec
}
