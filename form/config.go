package form

import (
	"github.com/facetui/facet/platform"
	"github.com/facetui/facet/theme"
)

// ValidationDisplay is where a form shows validation feedback. It is
// consumed by the rendering layer; resolvers thread it through unchanged.
type ValidationDisplay int

const (
	// ValidationDisplayInline renders feedback inside the row.
	ValidationDisplayInline ValidationDisplay = iota
	// ValidationDisplayBelow renders feedback under the row.
	ValidationDisplayBelow
	// ValidationDisplaySummary collects feedback at the top of the form.
	ValidationDisplaySummary
	// ValidationDisplayHidden suppresses visible feedback.
	ValidationDisplayHidden
)

func (v ValidationDisplay) String() string {
	switch v {
	case ValidationDisplayBelow:
		return "below"
	case ValidationDisplaySummary:
		return "summary"
	case ValidationDisplayHidden:
		return "hidden"
	default:
		return "inline"
	}
}

// Configuration is the per-form configuration surface. LayoutMode feeds
// the form-row resolver; ValidationDisplay and KeyboardAvoidanceEnabled
// are carried for the rendering layer and never influence resolution.
type Configuration struct {
	LayoutMode               platform.Adaptive[platform.FormRowLayout]
	ValidationDisplay        ValidationDisplay
	Density                  *theme.Density
	KeyboardAvoidanceEnabled bool
	ShowRowSeparators        bool
	Animation                *theme.Animation
}

// DefaultConfiguration returns the configuration of an unconfigured form:
// auto layout, inline validation, ambient density, keyboard avoidance and
// separators on.
func DefaultConfiguration() Configuration {
	return Configuration{
		LayoutMode:               platform.Auto[platform.FormRowLayout](),
		ValidationDisplay:        ValidationDisplayInline,
		KeyboardAvoidanceEnabled: true,
		ShowRowSeparators:        true,
	}
}

// EffectiveDensity returns the configured density override, or ambient
// when no override is set.
func (c Configuration) EffectiveDensity(ambient theme.Density) theme.Density {
	if c.Density != nil {
		return *c.Density
	}
	return ambient
}

// RowSpec resolves the form-row spec for this configuration using the
// theme's registered resolver and the supplied capability record, with the
// configuration's separator setting applied on top.
func (c Configuration) RowSpec(t theme.Theme, caps platform.Capabilities) theme.FormRowSpec {
	spec := t.Components.FormRow.ResolveFormRow(t, c.LayoutMode, caps)
	if !c.ShowRowSeparators {
		spec.ShowSeparator = false
	}
	if c.Animation != nil {
		spec.Transition = *c.Animation
	}
	return spec
}
