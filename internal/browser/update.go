package browser

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/facetui/facet/platform"
	"github.com/facetui/facet/theme"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.refreshContent()
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.families)-1 {
				m.cursor++
				m.refreshContent()
			}
			return m, nil

		case key.Matches(msg, m.keys.Variant):
			if m.variant == theme.Light {
				m.variant = theme.Dark
			} else {
				m.variant = theme.Light
			}
			m.resolve()
			m.refreshContent()
			return m, nil

		case key.Matches(msg, m.keys.Platform):
			m.platformIndex = (m.platformIndex + 1) % len(platform.Platforms())
			m.resolve()
			m.refreshContent()
			return m, nil

		case key.Matches(msg, m.keys.Density):
			switch m.density {
			case theme.DensityCompact:
				m.density = theme.DensityRegular
			case theme.DensityRegular:
				m.density = theme.DensitySpacious
			default:
				m.density = theme.DensityCompact
			}
			m.resolve()
			m.refreshContent()
			return m, nil

		case key.Matches(msg, m.keys.State):
			m.stateIndex = (m.stateIndex + 1) % len(interactionStates)
			m.refreshContent()
			return m, nil

		case key.Matches(msg, m.keys.Help):
			// The expanded help is taller, so the viewport must shrink.
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// resize fits the viewport between the header and the footer at the
// current dimensions.
func (m *Model) resize() {
	bodyHeight := m.height - m.headerHeight() - m.footerHeight()
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	if !m.ready {
		m.viewport = viewport.New(m.width, bodyHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = bodyHeight
	}
}
