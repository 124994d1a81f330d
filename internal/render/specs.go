package render

import (
	"fmt"
	"strings"

	"github.com/facetui/facet/platform"
	"github.com/facetui/facet/theme"
)

// Family names one browsable component family.
type Family string

const (
	FamilyButton  Family = "button"
	FamilyField   Family = "field"
	FamilyToggle  Family = "toggle"
	FamilySlider  Family = "slider"
	FamilyCard    Family = "card"
	FamilyFormRow Family = "form row"
	FamilyListRow Family = "list row"
)

// Families lists every browsable family, in display order.
func Families() []Family {
	return []Family{
		FamilyButton,
		FamilyField,
		FamilyToggle,
		FamilySlider,
		FamilyCard,
		FamilyFormRow,
		FamilyListRow,
	}
}

// FamilySummary renders the resolved specs of one family under the given
// theme and interaction state.
func FamilySummary(family Family, th theme.Theme, state theme.State) string {
	switch family {
	case FamilyField:
		return FieldSummary(th, state)
	case FamilyToggle:
		return ToggleSummary(th, state)
	case FamilySlider:
		return SliderSummary(th, state)
	case FamilyCard:
		return CardSummary(th)
	case FamilyFormRow:
		return FormRowSummary(th)
	case FamilyListRow:
		return ListRowSummary(th, state)
	default:
		return ButtonSummary(th, state)
	}
}

// ButtonSummary renders every button variant at medium size for one state.
func ButtonSummary(th theme.Theme, state theme.State) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Buttons"))
	b.WriteString("\n")

	variants := []theme.ButtonVariant{
		theme.ButtonPrimary,
		theme.ButtonSecondary,
		theme.ButtonTertiary,
		theme.ButtonDestructive,
	}

	for _, variant := range variants {
		spec := th.Components.Button.ResolveButton(th, variant, theme.ButtonMedium, state)

		b.WriteString(headingStyle.UnsetMarginBottom().Render(variant.String()))
		b.WriteString("\n")
		b.WriteString(colorRow("background", spec.Background) + "\n")
		b.WriteString(colorRow("foreground", spec.Foreground) + "\n")
		if spec.BorderWidth > 0 {
			b.WriteString(colorRow("border", spec.Border) + "\n")
		}
		b.WriteString(row("geometry", fmt.Sprintf("h=%.0f px=%.0f radius=%.0f", spec.Height, spec.PaddingX, spec.CornerRadius)) + "\n")
		b.WriteString(row("font", formatFont(spec.Font)) + "\n")
		b.WriteString(row("shadow", formatShadow(spec.Shadow)) + "\n")
		b.WriteString(row("opacity", fmt.Sprintf("%.2f scale=%.2f", spec.Opacity, spec.PressScale)) + "\n")
		b.WriteString(row("animation", formatAnimation(spec.Animation)) + "\n\n")
	}

	return b.String()
}

// FieldSummary renders both field variants across validation states.
func FieldSummary(th theme.Theme, state theme.State) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Fields"))
	b.WriteString("\n")

	validations := []theme.ValidationState{
		theme.ValidationNone,
		theme.ValidationError,
		theme.ValidationWarning,
		theme.ValidationSuccess,
	}

	for _, variant := range []theme.FieldVariant{theme.FieldDefault, theme.FieldSearch} {
		for _, validation := range validations {
			spec := th.Components.Field.ResolveField(th, variant, state, validation)

			b.WriteString(headingStyle.UnsetMarginBottom().Render(fmt.Sprintf("%s / %s", variant, validation)))
			b.WriteString("\n")
			b.WriteString(colorRow("border", spec.Border) + "\n")
			b.WriteString(row("border width", fmt.Sprintf("%.1f", spec.BorderWidth)) + "\n")
			if spec.FocusRingWidth > 0 {
				b.WriteString(colorRow("focus ring", spec.FocusRing) + "\n")
			}
			b.WriteString(row("geometry", fmt.Sprintf("h=%.0f radius=%.0f", spec.Height, spec.CornerRadius)) + "\n\n")
		}
	}

	return b.String()
}

// ToggleSummary renders the toggle in both positions.
func ToggleSummary(th theme.Theme, state theme.State) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Toggle"))
	b.WriteString("\n")

	for _, isOn := range []bool{true, false} {
		spec := th.Components.Toggle.ResolveToggle(th, isOn, state)

		label := "off"
		if isOn {
			label = "on"
		}
		b.WriteString(headingStyle.UnsetMarginBottom().Render(label))
		b.WriteString("\n")
		b.WriteString(colorRow("track", spec.TrackFill) + "\n")
		b.WriteString(colorRow("thumb", spec.Thumb) + "\n")
		b.WriteString(row("geometry", fmt.Sprintf("%.0fx%.0f thumb=%.0f", spec.TrackWidth, spec.TrackHeight, spec.ThumbSize)) + "\n")
		b.WriteString(row("opacity", fmt.Sprintf("%.2f", spec.Opacity)) + "\n\n")
	}

	return b.String()
}

// SliderSummary renders the slider spec.
func SliderSummary(th theme.Theme, state theme.State) string {
	spec := th.Components.Slider.ResolveSlider(th, state)

	var b strings.Builder
	b.WriteString(headingStyle.Render("Slider"))
	b.WriteString("\n")
	b.WriteString(colorRow("active track", spec.ActiveTrack) + "\n")
	b.WriteString(colorRow("inactive track", spec.InactiveTrack) + "\n")
	b.WriteString(colorRow("thumb", spec.Thumb) + "\n")
	b.WriteString(row("geometry", fmt.Sprintf("track=%.0f thumb=%.0f", spec.TrackHeight, spec.ThumbSize)) + "\n")
	b.WriteString(row("opacity", fmt.Sprintf("%.2f", spec.Opacity)) + "\n")

	return b.String()
}

// CardSummary renders every elevation tier.
func CardSummary(th theme.Theme) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Cards"))
	b.WriteString("\n")

	elevations := []theme.CardElevation{
		theme.CardFlat,
		theme.CardRaised,
		theme.CardElevated,
		theme.CardOverlay,
	}

	for _, elevation := range elevations {
		spec := th.Components.Card.ResolveCard(th, elevation)

		b.WriteString(headingStyle.UnsetMarginBottom().Render(elevation.String()))
		b.WriteString("\n")
		b.WriteString(colorRow("background", spec.Background) + "\n")
		if spec.BorderWidth > 0 {
			b.WriteString(colorRow("border", spec.Border) + "\n")
		}
		b.WriteString(row("shadow", formatShadow(spec.Shadow)) + "\n")
		glass := "no"
		if spec.UsesGlassEffect {
			glass = "yes"
		}
		b.WriteString(row("glass", glass) + "\n\n")
	}

	return b.String()
}

// FormRowSummary renders the auto-resolved row layout for the theme's
// platform record.
func FormRowSummary(th theme.Theme) string {
	spec := th.Components.FormRow.ResolveFormRow(th, platform.Auto[platform.FormRowLayout](), th.Capabilities)

	var b strings.Builder
	b.WriteString(headingStyle.Render("Form row"))
	b.WriteString("\n")
	b.WriteString(row("layout", spec.Layout.String()) + "\n")
	if spec.LabelWidth > 0 {
		b.WriteString(row("label column", fmt.Sprintf("%.0f (%s)", spec.LabelWidth, spec.LabelAlignment)) + "\n")
	}
	b.WriteString(row("spacing", fmt.Sprintf("h=%.1f v=%.1f", spec.HorizontalSpacing, spec.VerticalSpacing)) + "\n")
	b.WriteString(row("min height", fmt.Sprintf("%.1f", spec.MinHeight)) + "\n")
	separator := "hidden"
	if spec.ShowSeparator {
		separator = fmt.Sprintf("inset %.1f", spec.SeparatorInsetLeading)
	}
	b.WriteString(row("separator", separator) + "\n")

	return b.String()
}

// ListRowSummary renders every list row style for one state.
func ListRowSummary(th theme.Theme, state theme.State) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("List rows"))
	b.WriteString("\n")

	styles := []theme.ListRowStyle{
		theme.ListRowPlain,
		theme.ListRowProminent,
		theme.ListRowDestructive,
	}

	for _, style := range styles {
		spec := th.Components.ListRow.ResolveListRow(th, style, state, th.Capabilities)

		b.WriteString(headingStyle.UnsetMarginBottom().Render(style.String()))
		b.WriteString("\n")
		b.WriteString(colorRow("background", spec.Background) + "\n")
		b.WriteString(colorRow("title", spec.Title) + "\n")
		b.WriteString(colorRow("value", spec.Value) + "\n")
		b.WriteString(row("geometry", fmt.Sprintf("min=%.1f accessory=%.0f", spec.MinHeight, spec.AccessoryIconSize)) + "\n\n")
	}

	return b.String()
}
