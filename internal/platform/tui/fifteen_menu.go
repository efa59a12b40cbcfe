package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
)

// FifteenSelection holds the user's selection from the fifteen setup screen.
type FifteenSelection struct {
	Preset config.DifficultyPreset
}

// fifteenBoardOption pairs a preset with its menu line.
type fifteenBoardOption struct {
	preset config.DifficultyPreset
	label  string
}

var fifteenBoardOptions = []fifteenBoardOption{
	{config.DifficultyNormal, "Classic (4x4)"},
	{config.DifficultyEasy, "Small (3x3, faster slides)"},
	{config.DifficultyHard, "Large (5x5, slower slides)"},
	{config.DifficultyFixed, "Custom (values from config file)"},
}

// FifteenSetupModel lets users choose a board preset before playing.
type FifteenSetupModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection FifteenSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewFifteenSetupModel creates a new fifteen setup model.
func NewFifteenSetupModel(width, height int) FifteenSetupModel {
	return FifteenSetupModel{
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m FifteenSetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m FifteenSetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m FifteenSetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(fifteenBoardOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = FifteenSelection{Preset: fifteenBoardOptions[m.cursor].preset}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the board selection.
func (m FifteenSetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("F I F T E E N", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a board:", m.width))
	b.WriteString("\n\n")

	for i, opt := range fifteenBoardOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, opt.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m FifteenSetupModel) Selected() *FifteenSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m FifteenSetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m FifteenSetupModel) WantsBack() bool {
	return m.back
}

// RunFifteenSetup runs the board selection and returns the selection.
// A nil selection means the user backed out or quit.
func RunFifteenSetup(cfg core.RuntimeConfig) (*FifteenSelection, core.RuntimeConfig, error) {
	model := NewFifteenSetupModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(FifteenSetupModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
