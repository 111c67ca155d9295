package cyclefile

import (
	"fmt"
	"os"
	"path/filepath"

	"snakebot/internal/core"
	"snakebot/internal/cycle"
)

// Build generates a cycle and renders it as a complete file. The rendered
// file is decoded again before it is returned.
func Build(w, h, windowW, windowH int, seed int64, strategy string) ([]byte, error) {
	g, err := core.NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	if seed <= 0 {
		return nil, fmt.Errorf("seed %d must be positive: %w", seed, core.ErrConfigurationOutOfRange)
	}
	if err := checkWindow(g, windowW, windowH); err != nil {
		return nil, err
	}
	s, err := cycle.ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}
	c, err := cycle.Generate(g, seed, s)
	if err != nil {
		return nil, err
	}
	data, err := Encode(c, Metadata{WindowW: windowW, WindowH: windowH, Seed: seed, Strategy: s})
	if err != nil {
		return nil, err
	}
	if _, _, err := Decode(data); err != nil {
		return nil, fmt.Errorf("generated file failed validation: %w", err)
	}
	return data, nil
}

// ValidateText decodes a cycle file, including its window size, and reports
// the grid dimensions.
func ValidateText(data []byte) (w, h int, err error) {
	c, m, err := Decode(data)
	if err != nil {
		return 0, 0, err
	}
	g := c.Grid()
	if err := checkWindow(g, m.WindowW, m.WindowH); err != nil {
		return 0, 0, err
	}
	return g.W, g.H, nil
}

// ReadFile loads and decodes the cycle file at path.
func ReadFile(path string) (*cycle.Cycle, Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Metadata{}, err
	}
	c, m, err := Decode(data)
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, m, nil
}

// WriteFile replaces path with data through a temporary file so readers never
// observe a partial artifact.
func WriteFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".cycle-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
