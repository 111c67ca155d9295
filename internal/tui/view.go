package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"snakebot/internal/core"
	"snakebot/internal/game"
)

var (
	bodyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	headStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("156")).Bold(true)
	appleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	crashStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238"))
)

var pathGlyphs = map[core.Move]string{
	core.Up:    "↑ ",
	core.Down:  "↓ ",
	core.Left:  "← ",
	core.Right: "→ ",
}

// View draws the board two columns per cell with a status line beneath.
func (m Model) View() string {
	sim := m.session.Game
	size := sim.Size()
	cells := sim.Cells()

	var b strings.Builder
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			b.WriteString(m.glyph(cells[y*size.W+x], core.Cell{X: x, Y: y}))
		}
		if y < size.H-1 {
			b.WriteByte('\n')
		}
	}

	state := sim.Outcome().String()
	if m.paused && sim.Outcome() == game.Running {
		state = "paused"
	}
	status := fmt.Sprintf("%s  score %d  length %d/%d  ticks %d  %d tps  %s",
		sim.Name(), sim.Score(), sim.State().Len(), size.W*size.H, sim.Ticks(), m.session.CurrentTPS(), state)
	help := "space pause · n step · r reset · c cycle · +/- speed · q quit"
	return boardStyle.Render(b.String()) + "\n" + statusStyle.Render(status) + "\n" + statusStyle.Render(help) + "\n"
}

func (m Model) glyph(v uint8, c core.Cell) string {
	switch v {
	case game.CellBody:
		return bodyStyle.Render("██")
	case game.CellHead:
		return headStyle.Render("██")
	case game.CellApple:
		return appleStyle.Render("● ")
	case game.CellCrash:
		return crashStyle.Render("XX")
	}
	if m.showPath && m.session.Cycle != nil {
		return pathStyle.Render(pathGlyphs[m.session.Cycle.Dir(c)])
	}
	return "  "
}
