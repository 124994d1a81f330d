// Package browser is the interactive spec browser: a bubbletea program
// that re-resolves the theme on every toggle and shows the resulting
// component specs.
package browser

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/facetui/facet/internal/render"
	"github.com/facetui/facet/platform"
	"github.com/facetui/facet/theme"
)

// interactionStates is the cycle order for the state key.
var interactionStates = []theme.State{
	theme.StateNone,
	theme.StateHovered,
	theme.StatePressed,
	theme.StateFocused,
	theme.StateDisabled,
	theme.StateLoading,
}

func stateName(s theme.State) string {
	switch s {
	case theme.StateHovered:
		return "hovered"
	case theme.StatePressed:
		return "pressed"
	case theme.StateFocused:
		return "focused"
	case theme.StateDisabled:
		return "disabled"
	case theme.StateLoading:
		return "loading"
	default:
		return "rest"
	}
}

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Variant  key.Binding
	Platform key.Binding
	Density  key.Binding
	State    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Variant, k.Platform, k.Density, k.State, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Variant, k.Platform, k.Density, k.State},
		{k.Help, k.Quit},
	}
}

var defaultKeyMap = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous family")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next family")),
	Variant:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "toggle variant")),
	Platform: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "cycle platform")),
	Density:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "cycle density")),
	State:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle state")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the browser's bubbletea model. Theme resolution is cheap, so
// every toggle re-resolves instead of caching.
type Model struct {
	families []render.Family
	cursor   int

	variant       theme.Variant
	platformIndex int
	density       theme.Density
	stateIndex    int

	theme theme.Theme

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	ready    bool

	width  int
	height int
}

// NewModel creates a browser model starting at the light handheld baseline.
func NewModel() Model {
	m := Model{
		families: render.Families(),
		variant:  theme.Light,
		density:  theme.DensityRegular,
		keys:     defaultKeyMap,
		help:     help.New(),
		width:    80,
		height:   24,
	}
	m.resolve()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) resolve() {
	caps := platform.CapabilitiesFor(m.platform())
	policy := theme.DefaultPolicy()
	m.theme = theme.Resolve(m.variant, policy, m.density, caps)
}

func (m Model) platform() platform.Platform {
	return platform.Platforms()[m.platformIndex]
}

func (m Model) state() theme.State {
	return interactionStates[m.stateIndex]
}

func (m Model) family() render.Family {
	return m.families[m.cursor]
}
