// Package cyclefile reads and writes the SNAKECYCLE text artifact.
package cyclefile

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"snakebot/internal/core"
	"snakebot/internal/cycle"
)

const (
	magic      = "SNAKECYCLE 1"
	dataMarker = "DATA"
)

// Metadata is the header information carried next to the cycle itself.
// Encode requires a window that is a positive multiple of the grid, so every
// encoded file passes ValidateText. Decode also accepts hand-written files
// that omit the window keys; such files leave WindowW and WindowH zero.
type Metadata struct {
	WindowW  int
	WindowH  int
	Seed     int64
	Strategy cycle.Strategy
}

// Encode renders c and m as a cycle file. Every cell is written as the letter
// of the move to its successor, one grid row per line.
func Encode(c *cycle.Cycle, m Metadata) ([]byte, error) {
	g := c.Grid()
	if err := checkWindow(g, m.WindowW, m.WindowH); err != nil {
		return nil, err
	}
	var b bytes.Buffer
	b.Grow(g.Len() + g.H + 128)
	fmt.Fprintln(&b, magic)
	fmt.Fprintf(&b, "width=%d\n", g.W)
	fmt.Fprintf(&b, "height=%d\n", g.H)
	fmt.Fprintf(&b, "window_w=%d\n", m.WindowW)
	fmt.Fprintf(&b, "window_h=%d\n", m.WindowH)
	fmt.Fprintf(&b, "seed=%d\n", m.Seed)
	fmt.Fprintf(&b, "cycle_type=%s\n", m.Strategy)
	wrap := 0
	if c.Wrap() {
		wrap = 1
	}
	fmt.Fprintf(&b, "wrap=%d\n", wrap)
	fmt.Fprintln(&b, dataMarker)
	b.WriteString(Letters(c, true))
	return b.Bytes(), nil
}

// Letters returns the direction letters of c in row-major order, with a
// newline after each row when rows is set.
func Letters(c *cycle.Cycle, rows bool) string {
	g := c.Grid()
	dirs := c.Dirs()
	var sb strings.Builder
	sb.Grow(len(dirs) + g.H)
	for i, m := range dirs {
		sb.WriteByte(m.Letter())
		if rows && (i+1)%g.W == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

type header struct {
	width, height    int
	windowW, windowH int
	seed             int64
	strategy         cycle.Strategy
	wrap             int
	dataLine         int
}

func malformed(line int, format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", line, fmt.Sprintf(format, args...), core.ErrMalformedArtifact)
}

// Decode parses a cycle file and validates the cycle it describes. It never
// returns a partial result.
func Decode(data []byte) (*cycle.Cycle, Metadata, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	h, err := parseHeader(lines)
	if err != nil {
		return nil, Metadata{}, err
	}
	g, err := core.NewGrid(h.width, h.height)
	if err != nil {
		return nil, Metadata{}, err
	}
	if g.Exceeds(cycle.MaxCells) {
		return nil, Metadata{}, fmt.Errorf("grid %dx%d exceeds %d cells: %w", g.W, g.H, cycle.MaxCells, core.ErrInvalidDimensions)
	}
	if h.windowW != 0 || h.windowH != 0 {
		if err := checkWindow(g, h.windowW, h.windowH); err != nil {
			return nil, Metadata{}, err
		}
	}

	dirs, err := parseRows(lines, h.dataLine, g)
	if err != nil {
		return nil, Metadata{}, err
	}
	wrap := g.W%2 == 1 && g.H%2 == 1
	if h.wrap >= 0 {
		wrap = h.wrap == 1
	}
	c, err := cycle.FromDirs(g, dirs, wrap)
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("cycle file: %w", err)
	}
	return c, Metadata{WindowW: h.windowW, WindowH: h.windowH, Seed: h.seed, Strategy: h.strategy}, nil
}

func parseHeader(lines []string) (header, error) {
	h := header{wrap: -1, strategy: cycle.DefaultStrategy}
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != magic {
		return h, malformed(1, "missing %q header", magic)
	}
	seen := map[string]bool{}
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		n := i + 1
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case line == dataMarker:
			h.dataLine = i
			if !seen["width"] || !seen["height"] {
				return h, malformed(n, "width and height must precede %s", dataMarker)
			}
			return h, nil
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return h, malformed(n, "expected key=value, got %q", line)
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if seen[key] {
			return h, malformed(n, "duplicate key %q", key)
		}
		seen[key] = true
		var err error
		switch key {
		case "width":
			h.width, err = strconv.Atoi(value)
		case "height":
			h.height, err = strconv.Atoi(value)
		case "window_w":
			h.windowW, err = strconv.Atoi(value)
		case "window_h":
			h.windowH, err = strconv.Atoi(value)
		case "seed":
			h.seed, err = strconv.ParseInt(value, 10, 64)
		case "cycle_type":
			h.strategy, err = cycle.ParseStrategy(value)
		case "wrap":
			switch value {
			case "0":
				h.wrap = 0
			case "1":
				h.wrap = 1
			default:
				err = fmt.Errorf("want 0 or 1")
			}
		}
		if err != nil {
			return h, malformed(n, "bad %s value %q: %v", key, value, err)
		}
	}
	return h, malformed(len(lines), "missing %s section", dataMarker)
}

func parseRows(lines []string, dataLine int, g core.Grid) ([]core.Move, error) {
	dirs := make([]core.Move, 0, g.Len())
	i := dataLine + 1
	for row := 0; row < g.H; row++ {
		if i >= len(lines) {
			return nil, malformed(i, "got %d of %d rows", row, g.H)
		}
		line := strings.TrimRight(lines[i], " \t")
		if len(line) != g.W {
			return nil, malformed(i+1, "row %d has %d letters, want %d", row, len(line), g.W)
		}
		for x := 0; x < len(line); x++ {
			m, ok := core.MoveFromLetter(line[x])
			if !ok {
				return nil, malformed(i+1, "invalid letter %q at column %d", line[x], x)
			}
			dirs = append(dirs, m)
		}
		i++
	}
	for ; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "" {
			return nil, malformed(i+1, "unexpected content after %d rows", g.H)
		}
	}
	return dirs, nil
}

func checkWindow(g core.Grid, windowW, windowH int) error {
	if windowW <= 0 || windowH <= 0 {
		return fmt.Errorf("window %dx%d: %w", windowW, windowH, core.ErrInvalidDimensions)
	}
	if windowW%g.W != 0 || windowH%g.H != 0 {
		return fmt.Errorf("window %dx%d is not a multiple of grid %dx%d: %w", windowW, windowH, g.W, g.H, core.ErrInvalidDimensions)
	}
	return nil
}
