//go:build !ebiten

package ui

import (
	"snakebot/internal/core"
	"snakebot/internal/game"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*game.Game, core.ParameterSnapshot) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, bool) {}
