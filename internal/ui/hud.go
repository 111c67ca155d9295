//go:build ebiten

package ui

import (
	"fmt"
	"strings"

	"snakebot/internal/core"
	"snakebot/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUD prints session status and tuning in the top-left corner. H toggles it.
type HUD struct {
	game   *game.Game
	tuning core.ParameterSnapshot
	show   bool
}

// NewHUD builds a HUD for g. tuning may be empty in player mode.
func NewHUD(g *game.Game, tuning core.ParameterSnapshot) *HUD {
	return &HUD{game: g, tuning: tuning, show: true}
}

// Update handles the toggle key.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.show = !h.show
	}
}

// Draw prints the status lines.
func (h *HUD) Draw(dst *ebiten.Image, tps int, paused bool) {
	if !h.show {
		return
	}
	ebitenutil.DebugPrintAt(dst, h.Text(tps, paused), 4, 4)
}

// Text renders the HUD contents.
func (h *HUD) Text(tps int, paused bool) string {
	var b strings.Builder
	state := h.game.Outcome().String()
	if paused && h.game.Outcome() == game.Running {
		state = "paused"
	}
	fmt.Fprintf(&b, "%s  score %d  ticks %d  %d tps  %s\n", h.game.Name(), h.game.Score(), h.game.Ticks(), tps, state)
	for _, group := range h.tuning.Groups {
		for _, p := range group.Params {
			fmt.Fprintf(&b, "%s %s\n", p.Label, p.Value)
		}
	}
	b.WriteString("space pause  n step  r reset  c cycle  h hud  q quit")
	return b.String()
}
