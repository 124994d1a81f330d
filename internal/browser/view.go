package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/facetui/facet/internal/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1)

	contextStyle = lipgloss.NewStyle().
			Faint(true).
			PaddingLeft(1)

	familyStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedFamilyStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true)

	footerStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingTop(1)
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString(m.viewport.View())
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) headerView() string {
	title := titleStyle.Render("facet browser")
	context := contextStyle.Render(fmt.Sprintf(
		"%s · %s · %s · %s",
		m.variant, m.platform(), m.density, stateName(m.state()),
	))

	var families []string
	for i, family := range m.families {
		if i == m.cursor {
			families = append(families, selectedFamilyStyle.Render(string(family)))
		} else {
			families = append(families, familyStyle.Render(string(family)))
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center, title, context),
		lipgloss.JoinHorizontal(lipgloss.Center, families...),
	) + "\n"
}

func (m Model) footerView() string {
	return footerStyle.Render(m.help.View(m.keys))
}

func (m Model) headerHeight() int {
	return lipgloss.Height(m.headerView())
}

func (m Model) footerHeight() int {
	return lipgloss.Height(m.footerView())
}

func (m *Model) refreshContent() {
	if !m.ready {
		return
	}

	body := render.FamilySummary(m.family(), m.theme, m.state())
	if m.family() == render.FamilyButton {
		body = render.Palette(m.theme) + "\n" + body
	}
	m.viewport.SetContent(body)
	m.viewport.GotoTop()
}
