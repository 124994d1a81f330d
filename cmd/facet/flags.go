package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/facetui/facet/platform"
	"github.com/facetui/facet/theme"
)

// themeFlags is the shared flag set every resolving command exposes. The
// defaults resolve the same theme an unconfigured handheld app would see.
type themeFlags struct {
	variant     string
	platform    string
	density     string
	dynamicType string

	reduceMotion       bool
	increasedContrast  bool
	reduceTransparency bool
	boldText           bool
}

func (f *themeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.variant, "variant", "light", "Appearance variant (light, dark)")
	cmd.Flags().StringVar(&f.platform, "platform", "handheld", "Target platform (handheld, handheld-pointer, desktop, wrist)")
	cmd.Flags().StringVar(&f.density, "density", "regular", "Layout density (compact, regular, spacious)")
	cmd.Flags().StringVar(&f.dynamicType, "dynamic-type", "large", "Dynamic type step (extraSmall..accessibilityExtraExtraExtraLarge)")
	cmd.Flags().BoolVar(&f.reduceMotion, "reduce-motion", false, "Resolve with reduced motion")
	cmd.Flags().BoolVar(&f.increasedContrast, "increased-contrast", false, "Resolve with increased contrast")
	cmd.Flags().BoolVar(&f.reduceTransparency, "reduce-transparency", false, "Resolve with reduced transparency")
	cmd.Flags().BoolVar(&f.boldText, "bold-text", false, "Resolve with bold text")
}

// resolve parses the flag values and runs the resolution pipeline once.
func (f *themeFlags) resolve() (theme.Theme, platform.Capabilities, error) {
	variant, err := parseVariant(f.variant)
	if err != nil {
		return theme.Theme{}, platform.Capabilities{}, err
	}

	p, err := parsePlatform(f.platform)
	if err != nil {
		return theme.Theme{}, platform.Capabilities{}, err
	}

	density, err := parseDensity(f.density)
	if err != nil {
		return theme.Theme{}, platform.Capabilities{}, err
	}

	dynamicType, err := parseDynamicType(f.dynamicType)
	if err != nil {
		return theme.Theme{}, platform.Capabilities{}, err
	}

	policy := theme.Policy{
		ReduceMotion:       f.reduceMotion,
		IncreasedContrast:  f.increasedContrast,
		ReduceTransparency: f.reduceTransparency,
		BoldText:           f.boldText,
		DynamicType:        dynamicType,
	}

	caps := platform.CapabilitiesFor(p)
	return theme.Resolve(variant, policy, density, caps), caps, nil
}

func parseVariant(s string) (theme.Variant, error) {
	switch s {
	case "light":
		return theme.Light, nil
	case "dark":
		return theme.Dark, nil
	default:
		return theme.Light, fmt.Errorf("unknown variant %q (expected light or dark)", s)
	}
}

func parsePlatform(s string) (platform.Platform, error) {
	for _, p := range platform.Platforms() {
		if p.String() == s {
			return p, nil
		}
	}
	return platform.Handheld, fmt.Errorf("unknown platform %q (expected handheld, handheld-pointer, desktop or wrist)", s)
}

func parseDensity(s string) (theme.Density, error) {
	switch s {
	case "compact":
		return theme.DensityCompact, nil
	case "regular":
		return theme.DensityRegular, nil
	case "spacious":
		return theme.DensitySpacious, nil
	default:
		return theme.DensityRegular, fmt.Errorf("unknown density %q (expected compact, regular or spacious)", s)
	}
}

func parseDynamicType(s string) (theme.DynamicTypeSize, error) {
	for step := theme.DynamicTypeExtraSmall; step <= theme.DynamicTypeAccessibilityExtraExtraExtraLarge; step++ {
		if step.String() == s {
			return step, nil
		}
	}
	return theme.DynamicTypeLarge, fmt.Errorf("unknown dynamic type step %q", s)
}
