// Package snakebot is the public entry point for generating and validating
// Hamiltonian cycle files.
package snakebot

import (
	"fmt"
	"strings"

	"snakebot/internal/core"
	"snakebot/internal/cycle"
	"snakebot/internal/cyclefile"
)

const version = "snakebot 1.1"

// DefaultSeed is used by GenerateCycle.
const DefaultSeed = 0xC0FFEE

// Errors returned by this package, for use with errors.Is.
var (
	ErrInvalidDimensions       = core.ErrInvalidDimensions
	ErrUnsupportedGrid         = core.ErrUnsupportedGrid
	ErrMalformedArtifact       = core.ErrMalformedArtifact
	ErrCycleInvariant          = core.ErrCycleInvariant
	ErrConfigurationOutOfRange = core.ErrConfigurationOutOfRange
)

// Version reports the library version string.
func Version() string { return version }

// GenerateCycle returns the default maze cycle for a w×h grid as w*h
// direction letters with no separators.
func GenerateCycle(w, h int) (string, error) {
	g, err := core.NewGrid(w, h)
	if err != nil {
		return "", err
	}
	c, err := cycle.Generate(g, DefaultSeed, cycle.DefaultStrategy)
	if err != nil {
		return "", err
	}
	return cyclefile.Letters(c, false), nil
}

// BuildCycleFile generates a complete cycle file. seed must be positive and
// the window must be an exact multiple of the grid.
func BuildCycleFile(w, h, windowW, windowH int, seed int64, strategy string) (string, error) {
	data, err := cyclefile.Build(w, h, windowW, windowH, seed, strategy)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ValidateCycle checks w*h direction letters. Whitespace is ignored and the
// torus seam is allowed only when both dimensions are odd.
func ValidateCycle(w, h int, text string) error {
	g, err := core.NewGrid(w, h)
	if err != nil {
		return err
	}
	if g.Exceeds(cycle.MaxCells) {
		return fmt.Errorf("grid %dx%d exceeds %d cells: %w", w, h, cycle.MaxCells, core.ErrInvalidDimensions)
	}
	letters := strings.Join(strings.Fields(text), "")
	dirs := make([]core.Move, 0, len(letters))
	for i := 0; i < len(letters); i++ {
		m, ok := core.MoveFromLetter(letters[i])
		if !ok {
			return fmt.Errorf("invalid letter %q at offset %d: %w", letters[i], i, core.ErrMalformedArtifact)
		}
		dirs = append(dirs, m)
	}
	return cycle.ValidateDirs(g, dirs, w%2 == 1 && h%2 == 1)
}

// ValidateCycleFile checks a complete cycle file and returns its grid size.
func ValidateCycleFile(text string) (w, h int, err error) {
	return cyclefile.ValidateText([]byte(text))
}
