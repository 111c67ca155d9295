//go:build ebiten

package app

import (
	"time"

	"snakebot/internal/core"
	"snakebot/internal/game"
	"snakebot/internal/render"
	"snakebot/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// moveKeys is scanned in order, so turns pressed in the same frame queue
// deterministically.
var moveKeys = []struct {
	key  ebiten.Key
	move core.Move
}{
	{ebiten.KeyArrowUp, core.Up},
	{ebiten.KeyW, core.Up},
	{ebiten.KeyArrowDown, core.Down},
	{ebiten.KeyS, core.Down},
	{ebiten.KeyArrowLeft, core.Left},
	{ebiten.KeyA, core.Left},
	{ebiten.KeyArrowRight, core.Right},
	{ebiten.KeyD, core.Right},
}

// pressedMoves returns the turns whose keys satisfy pressed, in moveKeys
// order.
func pressedMoves(pressed func(ebiten.Key) bool) []core.Move {
	var out []core.Move
	for _, mk := range moveKeys {
		if pressed(mk.key) {
			out = append(out, mk.move)
		}
	}
	return out
}

// Game adapts a session to the ebiten.Game interface. Ticks are decoupled
// from frames so the bot can run faster than the display.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	fixed   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	reported bool
}

// New constructs a Game for the provided session.
func New(s *Session, scale int) *Game {
	size := s.Game.Size()
	var snapshot core.ParameterSnapshot
	if s.Game.Piloted() {
		snapshot = s.Tuning.Snapshot()
	}
	return &Game{
		session: s,
		painter: render.NewGridPainter(size.W, size.H, render.DefaultPalette),
		overlay: ui.NewOverlay(s.Cycle, scale),
		hud:     ui.NewHUD(s.Game, snapshot),
		fixed:   core.NewFixedStep(s.CurrentTPS()),
		scale:   scale,
	}
}

// Reset restarts the session with the provided seed.
func (g *Game) Reset(seed int64) {
	g.session.Game.Reset(seed)
	g.tickOnce = false
	g.reported = false
}

// Update handles per-frame logic and advances the session.
func (g *Game) Update() error {
	sim := g.session.Game
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(sim.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.Reset(time.Now().UnixNano() & 0x7fffffff)
	}
	if sim.Piloted() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
			g.session.TPS = min(MaxBotTPS, g.session.TPS*2)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
			g.session.TPS = max(MinBotTPS, g.session.TPS/2)
		}
	} else {
		for _, m := range pressedMoves(inpututil.IsKeyJustPressed) {
			sim.Queue(m)
		}
	}
	g.overlay.Update()
	g.hud.Update()

	g.fixed.SetTPS(g.session.CurrentTPS())
	steps := g.fixed.Due()
	switch {
	case g.tickOnce:
		steps = 1
		g.tickOnce = false
	case g.paused:
		steps = 0
	}
	for i := 0; i < steps && sim.Outcome() == game.Running; i++ {
		sim.Step()
	}
	if sim.Outcome() != game.Running && !g.reported {
		g.session.Finished()
		g.reported = true
	}
	return nil
}

// Draw renders the board, the optional cycle path and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Game.Cells(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.session.CurrentTPS(), g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Game.Size()
	return s.W * g.scale, s.H * g.scale
}
