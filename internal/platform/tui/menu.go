package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sigma-bird/internal/core"
	"github.com/vovakirdan/sigma-bird/internal/storage"
)

// TitleChoice is the entry picked on the title screen.
type TitleChoice int

const (
	ChoiceNone TitleChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// TitleItem is one selectable entry on the title screen.
type TitleItem struct {
	Label  string
	Choice TitleChoice
}

var titleItems = []TitleItem{
	{Label: "Play", Choice: ChoicePlay},
	{Label: "High Scores", Choice: ChoiceScores},
	{Label: "Quit", Choice: ChoiceQuit},
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))
	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// TitleModel is the Bubble Tea model for the title menu.
type TitleModel struct {
	items     []TitleItem
	cursor    int
	width     int
	height    int
	best      int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    TitleChoice
}

// NewTitleModel creates a title menu. The store may be nil.
func NewTitleModel(store *storage.Store, cfg core.RuntimeConfig) TitleModel {
	m := TitleModel{
		items:     titleItems,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	if store != nil {
		if best, err := store.HighScore(); err == nil {
			m.best = best
		}
	}
	return m
}

// Init initializes the menu model.
func (m TitleModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m TitleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m TitleModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = ChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = m.items[m.cursor].Choice
		return m, tea.Quit

	case MenuActionScoreboard:
		m.choice = ChoiceScores
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m TitleModel) View() string {
	if m.choice == ChoiceQuit {
		return ""
	}

	var b strings.Builder

	top := (m.height - 12) / 2
	if top > 0 {
		b.WriteString(strings.Repeat("\n", top))
	}

	b.WriteString(centerText(titleStyle.Render("  S I G M A   B I R D  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Best: %d", m.best), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Label
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.Label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(hintStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the picked entry, or ChoiceNone while the menu is open.
func (m TitleModel) Choice() TitleChoice {
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m TitleModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
// Width is measured without ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunTitle runs the title menu and returns the picked entry along with the
// terminal size it ended at.
func RunTitle(store *storage.Store, cfg core.RuntimeConfig) (TitleChoice, core.RuntimeConfig, error) {
	p := tea.NewProgram(
		NewTitleModel(store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return ChoiceQuit, cfg, err
	}

	m, ok := finalModel.(TitleModel)
	if !ok || m.Choice() == ChoiceNone {
		return ChoiceQuit, cfg, nil
	}
	return m.Choice(), m.Config(), nil
}
