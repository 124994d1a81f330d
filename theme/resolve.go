package theme

import (
	"github.com/facetui/facet/platform"
	"github.com/facetui/facet/tokens"
)

// Tunable resolution constants. These are design decisions, not derived
// values; see DESIGN.md for the rationale behind each.
const (
	// shadowTransparencyFactor scales shadow opacity down when the
	// reduce-transparency policy is active. Must stay in (0, 1] so
	// transparency-reduced shadows are never more opaque than the base.
	shadowTransparencyFactor = 0.5

	// Accessibility type sizes push gaps and row heights up so enlarged
	// text does not collide with neighbouring rows.
	accessibilityGapFactor       = 1.2
	accessibilityRowHeightFactor = 1.1
)

// Resolve maps raw tokens to a complete Theme for one environment
// configuration. It is pure, deterministic, and total: every input
// combination produces a valid theme, with out-of-range enum values
// clamped to their nearest defined neighbour.
func Resolve(variant Variant, policy Policy, density Density, caps platform.Capabilities) Theme {
	policy.DynamicType = policy.DynamicType.Clamped()

	return Theme{
		Variant:            variant,
		Colors:             resolveColors(variant, policy),
		Typography:         resolveTypography(policy),
		Spacing:            resolveSpacing(policy, density),
		Radii:              resolveRadii(),
		Shadows:            resolveShadows(variant, policy),
		Strokes:            resolveStrokes(policy),
		Motion:             resolveMotion(policy),
		Density:            density,
		Capabilities:       caps,
		IncreasedContrast:  policy.IncreasedContrast,
		ReduceTransparency: policy.ReduceTransparency,
		Components:         DefaultComponentStyles(),
	}
}

func resolveColors(variant Variant, policy Policy) ColorRoles {
	if variant == Dark {
		return resolveDarkColors(policy)
	}
	return resolveLightColors(policy)
}

func resolveLightColors(policy Policy) ColorRoles {
	n := tokens.NeutralLight

	roles := ColorRoles{
		Canvas:          n.N100,
		Surface:         n.N50,
		SurfaceElevated: tokens.White,
		Card:            tokens.White,

		TextPrimary:   n.N900,
		TextSecondary: n.N600,
		TextTertiary:  n.N500,
		TextDisabled:  n.N400,

		BorderSubtle: n.N200,
		BorderStrong: n.N400,
		Separator:    n.N200,

		AccentPrimary:   tokens.AccentBlue.Light,
		AccentSecondary: tokens.AccentPurple.Light,
		OnAccent:        tokens.White,

		Success: tokens.AccentGreen.Light,
		Warning: tokens.AccentAmber.Light,
		Danger:  tokens.AccentRed.Light,
		Info:    tokens.AccentCyan.Light,

		FocusRing: tokens.AccentBlue.Light,
	}

	if policy.IncreasedContrast {
		roles.TextSecondary = n.N700
		roles.TextTertiary = n.N600
		roles.TextDisabled = n.N500
		roles.BorderSubtle = n.N400
		roles.BorderStrong = n.N600
		roles.Separator = n.N300
		roles.AccentPrimary = tokens.AccentBlueContrast.Light
		roles.AccentSecondary = tokens.AccentPurpleContrast.Light
		roles.Success = tokens.AccentGreenContrast.Light
		roles.Warning = tokens.AccentAmberContrast.Light
		roles.Danger = tokens.AccentRedContrast.Light
		roles.Info = tokens.AccentCyanContrast.Light
		roles.FocusRing = tokens.AccentBlueContrast.Light
	}

	return roles
}

func resolveDarkColors(policy Policy) ColorRoles {
	n := tokens.NeutralDark

	// Dark accents are the fixed dark-safe variants, never the saturated
	// light-mode entries.
	roles := ColorRoles{
		Canvas:          n.N50,
		Surface:         n.N100,
		SurfaceElevated: n.N200,
		Card:            n.N200,

		TextPrimary:   n.N900,
		TextSecondary: n.N600,
		TextTertiary:  n.N500,
		TextDisabled:  n.N400,

		BorderSubtle: n.N300,
		BorderStrong: n.N500,
		Separator:    n.N300,

		AccentPrimary:   tokens.AccentBlue.DarkSafe,
		AccentSecondary: tokens.AccentPurple.DarkSafe,
		OnAccent:        tokens.White,

		Success: tokens.AccentGreen.DarkSafe,
		Warning: tokens.AccentAmber.DarkSafe,
		Danger:  tokens.AccentRed.DarkSafe,
		Info:    tokens.AccentCyan.DarkSafe,

		FocusRing: tokens.AccentBlue.DarkSafe,
	}

	if policy.IncreasedContrast {
		roles.TextSecondary = n.N700
		roles.TextTertiary = n.N600
		roles.TextDisabled = n.N500
		roles.BorderSubtle = n.N500
		roles.BorderStrong = n.N700
		roles.Separator = n.N400
		roles.AccentPrimary = tokens.AccentBlueContrast.DarkSafe
		roles.AccentSecondary = tokens.AccentPurpleContrast.DarkSafe
		roles.Success = tokens.AccentGreenContrast.DarkSafe
		roles.Warning = tokens.AccentAmberContrast.DarkSafe
		roles.Danger = tokens.AccentRedContrast.DarkSafe
		roles.Info = tokens.AccentCyanContrast.DarkSafe
		roles.FocusRing = tokens.AccentBlueContrast.DarkSafe
	}

	return roles
}

func resolveTypography(policy Policy) TypographyRoles {
	factor := policy.DynamicType.ScaleFactor()

	scale := func(tok tokens.FontToken) tokens.FontToken {
		tok.Size *= factor
		if policy.BoldText {
			tok.Weight = tok.Weight.Heavier()
		}
		return tok
	}

	system := SystemType{
		LargeTitle:  scale(tokens.FontLargeTitle),
		Title:       scale(tokens.FontTitle),
		Title2:      scale(tokens.FontTitle2),
		Title3:      scale(tokens.FontTitle3),
		Headline:    scale(tokens.FontHeadline),
		Body:        scale(tokens.FontBody),
		Callout:     scale(tokens.FontCallout),
		Subheadline: scale(tokens.FontSubheadline),
		Footnote:    scale(tokens.FontFootnote),
		Caption:     scale(tokens.FontCaption),
		Caption2:    scale(tokens.FontCaption2),
	}

	withWeight := func(tok tokens.FontToken, w tokens.FontWeight) tokens.FontToken {
		tok.Weight = w
		if policy.BoldText {
			tok.Weight = tok.Weight.Heavier()
		}
		return tok
	}

	component := ComponentType{
		ButtonLabel:      withWeight(system.Body, tokens.WeightSemibold),
		FieldText:        system.Body,
		FieldPlaceholder: system.Body,
		HelperText:       system.Footnote,
		RowTitle:         system.Body,
		RowValue:         system.Body,
		SectionHeader:    withWeight(system.Footnote, tokens.WeightSemibold),
		BadgeText:        withWeight(system.Caption, tokens.WeightSemibold),
		MonoText:         scale(tokens.FontMono),
	}

	return TypographyRoles{System: system, Component: component}
}

func resolveSpacing(policy Policy, density Density) SpacingRoles {
	sm := density.SpacingMultiplier()
	hm := density.ControlHeightMultiplier()

	gapBoost := 1.0
	rowBoost := 1.0
	if policy.DynamicType.IsAccessibilitySize() {
		gapBoost = accessibilityGapFactor
		rowBoost = accessibilityRowHeightFactor
	}

	return SpacingRoles{
		Padding: PaddingScale{
			XXS: tokens.PaddingXXS * sm,
			XS:  tokens.PaddingXS * sm,
			S:   tokens.PaddingS * sm,
			M:   tokens.PaddingM * sm,
			L:   tokens.PaddingL * sm,
			XL:  tokens.PaddingXL * sm,
			XXL: tokens.PaddingXXL * sm,
		},
		Gap: GapScale{
			Row:       tokens.GapRow * sm * gapBoost,
			Section:   tokens.GapSection * sm * gapBoost,
			Stack:     tokens.GapStack * sm * gapBoost,
			Inline:    tokens.GapInline * sm * gapBoost,
			Dashboard: tokens.GapDashboard * sm * gapBoost,
		},
		RowHeight: RowHeights{
			Compact: tokens.RowHeightCompact * hm * rowBoost,
			Default: tokens.RowHeightDefault * hm * rowBoost,
			Large:   tokens.RowHeightLarge * hm * rowBoost,
		},
		Inset: InsetScale{
			Screen:  tokens.InsetScreen * sm,
			Card:    tokens.InsetCard * sm,
			Section: tokens.InsetSection * sm,
		},
	}
}

func resolveRadii() RadiusRoles {
	return RadiusRoles{
		Small:   tokens.RadiusSmall,
		Medium:  tokens.RadiusMedium,
		Large:   tokens.RadiusLarge,
		Field:   tokens.RadiusField,
		Search:  tokens.RadiusSearch,
		Card:    tokens.RadiusCard,
		Capsule: tokens.RadiusCapsule,
	}
}

func resolveShadows(variant Variant, policy Policy) ShadowRoles {
	resolve := func(tok tokens.ShadowToken) ShadowSpec {
		if tok.Color.IsClear() {
			return ShadowSpec{}
		}
		opacity := tok.LightOpacity
		if variant == Dark {
			opacity = tok.DarkOpacity
		}
		if policy.ReduceTransparency {
			opacity *= shadowTransparencyFactor
		}
		return ShadowSpec{
			Color:   tok.Color.WithAlpha(opacity),
			Radius:  tok.Radius,
			YOffset: tok.YOffset,
		}
	}

	return ShadowRoles{
		None:       ShadowSpec{},
		Button:     resolve(tokens.ShadowButton),
		Card:       resolve(tokens.ShadowCard),
		CardRaised: resolve(tokens.ShadowCardRaised),
		Overlay:    resolve(tokens.ShadowOverlay),
	}
}

func resolveStrokes(policy Policy) StrokeRoles {
	if policy.IncreasedContrast {
		return StrokeRoles{
			Hairline:  tokens.StrokeHairlineContrast,
			Default:   tokens.StrokeDefaultContrast,
			Strong:    tokens.StrokeStrongContrast,
			FocusRing: tokens.StrokeFocusContrast,
		}
	}
	return StrokeRoles{
		Hairline:  tokens.StrokeHairline,
		Default:   tokens.StrokeDefault,
		Strong:    tokens.StrokeStrong,
		FocusRing: tokens.StrokeFocus,
	}
}

func resolveMotion(policy Policy) MotionRoles {
	if policy.ReduceMotion {
		instant := Animation{Duration: tokens.DurationReduced, Curve: tokens.CurveLinear, Spring: tokens.SpringInstant}
		return MotionRoles{
			Duration: DurationScale{
				Instant: tokens.DurationInstant,
				Fast:    tokens.DurationReduced,
				Normal:  tokens.DurationReduced,
				Slow:    tokens.DurationReduced,
			},
			Spring: SpringScale{
				Snappy: tokens.SpringInstant,
				Smooth: tokens.SpringInstant,
				Bouncy: tokens.SpringInstant,
			},
			PressFeedback:       instant,
			StateChange:         instant,
			Reveal:              instant,
			ReduceMotionEnabled: true,
		}
	}

	return MotionRoles{
		Duration: DurationScale{
			Instant: tokens.DurationInstant,
			Fast:    tokens.DurationFast,
			Normal:  tokens.DurationNormal,
			Slow:    tokens.DurationSlow,
		},
		Spring: SpringScale{
			Snappy: tokens.SpringSnappy,
			Smooth: tokens.SpringSmooth,
			Bouncy: tokens.SpringBouncy,
		},
		PressFeedback: Animation{Duration: tokens.DurationFast, Curve: tokens.CurveEaseOut, Spring: tokens.SpringSnappy},
		StateChange:   Animation{Duration: tokens.DurationNormal, Curve: tokens.CurveEaseInOut, Spring: tokens.SpringSmooth},
		Reveal:        Animation{Duration: tokens.DurationSlow, Curve: tokens.CurveEaseOut, Spring: tokens.SpringSmooth},
	}
}
