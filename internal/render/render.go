// Package render turns resolved themes and component specs into terminal
// output. It is the only package that knows about lipgloss; the resolution
// core stays render-agnostic.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/facetui/facet/theme"
	"github.com/facetui/facet/tokens"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Width(18)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	swatchStyle  = lipgloss.NewStyle().Width(6)
)

// Swatch renders a colored block followed by the color's hex form.
func Swatch(c tokens.Color) string {
	if c.IsClear() {
		return mutedStyle.Render("none")
	}

	block := swatchStyle.Background(lipgloss.Color(c.Hex)).Render("")
	if c.Alpha < 1 {
		return fmt.Sprintf("%s %s", block, mutedStyle.Render(fmt.Sprintf("%s@%.2f", c.Hex, c.Alpha)))
	}
	return fmt.Sprintf("%s %s", block, mutedStyle.Render(c.Hex))
}

func row(label string, value string) string {
	return labelStyle.Render(label) + value
}

func colorRow(label string, c tokens.Color) string {
	return row(label, Swatch(c))
}

// Palette renders every resolved color role as a swatch table.
func Palette(th theme.Theme) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render(fmt.Sprintf("Palette (%s, %s)", th.Variant, th.Density)))
	b.WriteString("\n")

	rows := []struct {
		label string
		color tokens.Color
	}{
		{"canvas", th.Colors.Canvas},
		{"surface", th.Colors.Surface},
		{"surface elevated", th.Colors.SurfaceElevated},
		{"card", th.Colors.Card},
		{"text primary", th.Colors.TextPrimary},
		{"text secondary", th.Colors.TextSecondary},
		{"text tertiary", th.Colors.TextTertiary},
		{"text disabled", th.Colors.TextDisabled},
		{"border subtle", th.Colors.BorderSubtle},
		{"border strong", th.Colors.BorderStrong},
		{"separator", th.Colors.Separator},
		{"accent primary", th.Colors.AccentPrimary},
		{"accent secondary", th.Colors.AccentSecondary},
		{"on accent", th.Colors.OnAccent},
		{"success", th.Colors.Success},
		{"warning", th.Colors.Warning},
		{"danger", th.Colors.Danger},
		{"info", th.Colors.Info},
		{"focus ring", th.Colors.FocusRing},
	}

	for _, r := range rows {
		b.WriteString(colorRow(r.label, r.color))
		b.WriteString("\n")
	}

	return b.String()
}

func formatAnimation(a theme.Animation) string {
	if a.Spring.IsInstant() {
		return fmt.Sprintf("%.2fs %s (instant spring)", a.Duration, a.Curve)
	}
	return fmt.Sprintf("%.2fs %s, spring response %.2f", a.Duration, a.Curve, a.Spring.Response)
}

func formatShadow(s theme.ShadowSpec) string {
	if s.IsNone() {
		return "none"
	}
	return fmt.Sprintf("%s@%.2f r=%.0f y=%.0f", s.Color.Hex, s.Color.Alpha, s.Radius, s.YOffset)
}

func formatFont(f tokens.FontToken) string {
	family := ""
	if f.Mono {
		family = " mono"
	}
	return fmt.Sprintf("%.1fpt %s%s", f.Size, f.Weight, family)
}
