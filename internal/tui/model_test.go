package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snakebot/internal/app"
	"snakebot/internal/game"
)

func newModel(t *testing.T, bot bool) Model {
	t.Helper()
	cfg := app.NewConfig()
	cfg.Bot = bot
	cfg.GridW, cfg.GridH = 6, 6
	cfg.Seed = 5
	cfg.TPS = 100
	s, err := cfg.NewSession(log.NewNopLogger())
	require.NoError(t, err)
	return New(s)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStepKeyAdvancesBot(t *testing.T) {
	m := newModel(t, true)
	next, _ := m.Update(key("n"))
	m = next.(Model)
	assert.Equal(t, 1, m.session.Game.Ticks())
}

func TestPauseToggles(t *testing.T) {
	m := newModel(t, true)
	next, _ := m.Update(key(" "))
	assert.True(t, next.(Model).paused)
}

func TestQuit(t *testing.T) {
	m := newModel(t, false)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestArrowQueuesPlayerTurn(t *testing.T) {
	m := newModel(t, false)
	head := m.session.Game.State().Head()
	m.Update(key("up"))
	m.Update(key("n"))
	if m.session.Game.Outcome() == game.Running {
		assert.Equal(t, head.Y-1, m.session.Game.State().Head().Y)
	}
}

func TestSpeedKeysClamp(t *testing.T) {
	m := newModel(t, true)
	for i := 0; i < 20; i++ {
		m.Update(key("+"))
	}
	assert.Equal(t, app.MaxBotTPS, m.session.TPS)
	for i := 0; i < 20; i++ {
		m.Update(key("-"))
	}
	assert.Equal(t, app.MinBotTPS, m.session.TPS)
}

func TestViewShowsStatus(t *testing.T) {
	m := newModel(t, true)
	m.step(3)
	out := m.View()
	assert.Contains(t, out, "bot")
	assert.Contains(t, out, "ticks 3")
}
