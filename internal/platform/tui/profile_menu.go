package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lander/internal/config"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	menuDescStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuKeyMap defines the profile menu key bindings.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default menu key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "fly"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ProfileMenuModel lets users choose a rule profile before a flight.
type ProfileMenuModel struct {
	profiles []config.ProfileInfo
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	selected *config.Profile
	quitting bool
}

// NewProfileMenuModel creates a new profile menu.
func NewProfileMenuModel(width, height int) ProfileMenuModel {
	return ProfileMenuModel{
		profiles: config.Profiles(),
		width:    width,
		height:   height,
		keys:     DefaultMenuKeyMap(),
	}
}

// Init initializes the model.
func (m ProfileMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ProfileMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m ProfileMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.profiles)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		p := m.profiles[m.cursor].Name
		m.selected = &p
		return m, tea.Quit
	}
	return m, nil
}

// View renders the profile list.
func (m ProfileMenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("L U N A R   L A N D E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select rules:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.profiles {
		cursor := "  "
		if i == m.cursor {
			cursor = menuCursorStyle.Render("> ")
		}
		line := fmt.Sprintf("%s%-10s %s", cursor, p.Name, menuDescStyle.Render(p.Description))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Fly  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen profile, or nil if none was chosen.
func (m ProfileMenuModel) Selected() *config.Profile {
	return m.selected
}

// centerText centers a line within width.
func centerText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// RunProfileMenu shows the profile menu and returns the choice,
// or nil when the user quit without choosing.
func RunProfileMenu(width, height int) (*config.Profile, error) {
	p := tea.NewProgram(
		NewProfileMenuModel(width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: profile menu: %w", err)
	}

	m, ok := finalModel.(ProfileMenuModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
