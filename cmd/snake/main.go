//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"snakebot/internal/app"

	"github.com/go-kit/log/level"
	"github.com/hajimehoshi/ebiten/v2"
)

// maxWindow caps the window's longer side in pixels.
const maxWindow = 1080

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := app.NewLogger(os.Stderr, cfg.LogLevel)
	session, err := cfg.NewSession(logger)
	if err != nil {
		level.Error(logger).Log("msg", "cannot start", "err", err)
		os.Exit(1)
	}

	size := session.Game.Size()
	scale := cfg.Scale
	if longest := max(size.W, size.H); longest*scale > maxWindow {
		scale = max(1, maxWindow/longest)
	}
	game := app.New(session, scale)

	ebiten.SetWindowTitle("snakebot: " + session.Game.Name())
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(size.W*scale, size.H*scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		level.Error(session.Logger).Log("msg", "game loop failed", "err", err)
		os.Exit(1)
	}
}
