// Package tui plays or watches a session in the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"snakebot/internal/app"
	"snakebot/internal/core"
	"snakebot/internal/game"
)

const frameInterval = time.Second / 30

var moveKeys = map[string]core.Move{
	"up": core.Up, "w": core.Up, "k": core.Up,
	"down": core.Down, "s": core.Down, "j": core.Down,
	"left": core.Left, "a": core.Left, "h": core.Left,
	"right": core.Right, "d": core.Right, "l": core.Right,
}

// FrameMsg drives the simulation clock.
type FrameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Model is the bubbletea model for one session.
type Model struct {
	session  *app.Session
	fixed    *core.FixedStep
	paused   bool
	reported bool
	showPath bool
}

// New wraps a session for the terminal.
func New(s *app.Session) Model {
	return Model{session: s, fixed: core.NewFixedStep(s.CurrentTPS())}
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return frameCmd()
}

// Update handles keys and frames.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	sim := m.session.Game
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		case "n":
			m.step(1)
		case "r":
			sim.Reset(sim.Seed())
			m.reported = false
		case "c":
			m.showPath = !m.showPath
		case "+", "=":
			if sim.Piloted() {
				m.session.TPS = min(app.MaxBotTPS, m.session.TPS*2)
			}
		case "-":
			if sim.Piloted() {
				m.session.TPS = max(app.MinBotTPS, m.session.TPS/2)
			}
		default:
			if mv, ok := moveKeys[key]; ok && !sim.Piloted() {
				sim.Queue(mv)
			}
		}
	case FrameMsg:
		m.fixed.SetTPS(m.session.CurrentTPS())
		steps := m.fixed.Due()
		if !m.paused {
			m.step(steps)
		}
		return m, frameCmd()
	}
	return m, nil
}

func (m *Model) step(n int) {
	sim := m.session.Game
	for i := 0; i < n && sim.Outcome() == game.Running; i++ {
		sim.Step()
	}
	if sim.Outcome() != game.Running && !m.reported {
		m.session.Finished()
		m.reported = true
	}
}
