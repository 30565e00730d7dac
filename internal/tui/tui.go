package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/inner-demons/internal/command"
	"github.com/tatianab/inner-demons/internal/engine"
	"github.com/tatianab/inner-demons/internal/models"
)

type sessionState int

const (
	statePlaying sessionState = iota
	stateLost
	stateError
)

// Setup is what a new game is built from; /restart reuses it.
type Setup struct {
	Demons       []models.DemonKind
	StartingDeck []models.CardKind
}

type model struct {
	state     sessionState
	engine    *engine.Engine
	setup     Setup
	game      *models.GameState
	turn      int
	textInput textinput.Model
	viewport  viewport.Model
	err       error
	gameLog   string
	width     int
	height    int
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	rejectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF8787"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	lostStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true)
)

func NewModel(eng *engine.Engine, setup Setup) model {
	ti := textinput.New()
	ti.Placeholder = "What do you do?"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	m := model{
		engine:    eng,
		setup:     setup,
		textInput: ti,
	}
	m.newGame()
	return m
}

// newGame replaces the current game. Setup errors move the model into
// the error state.
func (m *model) newGame() {
	game, events, err := m.engine.NewGame(m.setup.Demons, m.setup.StartingDeck)
	if err != nil {
		m.err = err
		m.state = stateError
		return
	}
	m.game = game
	m.turn = 1
	m.state = statePlaying
	m.gameLog = gameStyle.Bold(true).Render("Turn 1") + "\n"
	m.logEvents(events)
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}
			m.textInput.Reset()

			switch input {
			case "/quit":
				return m, tea.Quit
			case "/restart":
				m.newGame()
				m.refresh()
				return m, nil
			}
			if m.state != statePlaying {
				return m, nil
			}

			m.gameLog += "\n" + userStyle.Width(m.logWidth()).Render("> "+input) + "\n"
			m.run(input)
			m.refresh()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.viewport.Width == 0 {
			m.viewport = viewport.New(m.logWidth(), msg.Height-6)
		}
		m.viewport.Width = m.logWidth()
		m.viewport.Height = msg.Height - 6
		m.refresh()
	}

	if m.state == statePlaying || m.state == stateLost {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// run parses and applies one command, logging either the resulting
// events or the reason it was rejected.
func (m *model) run(input string) {
	c, err := command.Parse(input)
	if err != nil {
		m.reject(err)
		return
	}

	events, err := c.Apply(m.engine, m.game)
	m.logEvents(events)
	switch {
	case errors.Is(err, engine.ErrNoCardsAvailable):
		m.reject(fmt.Errorf("no cards left to draw"))
		return
	case err != nil:
		m.reject(err)
		return
	}

	if c.Verb == command.VerbEnd {
		m.turn++
		m.gameLog += "\n" + gameStyle.Bold(true).Render(fmt.Sprintf("Turn %d", m.turn)) + "\n"
	}
	if m.game.Lost() {
		m.state = stateLost
	}
}

func (m *model) reject(err error) {
	m.gameLog += rejectStyle.Render("! "+err.Error()) + "\n"
}

func (m *model) logEvents(events []engine.Event) {
	for _, ev := range events {
		line := ev.String()
		if ev.Type == engine.EventDefeat {
			line = lostStyle.Render(line)
		}
		m.gameLog += gameStyle.Width(m.logWidth()).Render(line) + "\n"
	}
}

func (m *model) refresh() {
	m.viewport.SetContent(m.renderLog())
	m.viewport.GotoBottom()
}

func (m model) logWidth() int {
	return int(float64(m.width) * 0.65)
}

func (m model) View() string {
	var s string

	switch m.state {
	case statePlaying, stateLost:
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			m.renderState(),
		)

		help := helpStyle.Render("Commands: " + command.Help + ", /restart, /quit")
		if m.state == stateLost {
			help = lostStyle.Render("Your resolve is gone. /restart or /quit.")
		}

		s = lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			"\n"+m.textInput.View(),
			"\n"+help,
		)

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) renderState() string {
	if m.game == nil {
		return ""
	}
	snap := m.game.Snapshot()

	resolve := titleStyle.Render("RESOLVE") + "\n" + fmt.Sprintf("%d", snap.Resolve) + "\n\n"

	demons := titleStyle.Render("DEMONS") + "\n"
	for _, d := range snap.Demons {
		line := fmt.Sprintf("%s: power %d", d.Kind, d.Power)
		if d.Stunned() {
			line += fmt.Sprintf(" (stunned %d)", d.StunTime)
		}
		demons += line + "\n"
	}
	demons += "\n"

	hand := titleStyle.Render("HAND") + "\n"
	if len(snap.Hand) == 0 {
		hand += "(empty)\n"
	}
	for i, c := range snap.Hand {
		hand += fmt.Sprintf("%d. %s #%d\n", i+1, c.Kind, c.ID)
	}
	hand += "\n"

	zones := titleStyle.Render("ZONES") + "\n" +
		fmt.Sprintf("In play: %d\nDeck: %d\nDiscard: %d\n", len(snap.InPlay), len(snap.Deck), len(snap.DiscardPile))
	if top, ok := m.game.Top(models.ZoneDiscard); ok {
		zones += fmt.Sprintf("Top of discard: %s\n", top.Kind)
	}

	content := resolve + demons + hand + zones

	stateWidth := int(float64(m.width) * 0.32)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

func (m model) renderLog() string {
	return m.gameLog
}

func Run(eng *engine.Engine, setup Setup) error {
	p := tea.NewProgram(NewModel(eng, setup), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
