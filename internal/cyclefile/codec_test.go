package cyclefile

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snakebot/internal/core"
	"snakebot/internal/cycle"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, dims := range [][2]int{{4, 4}, {5, 5}, {6, 3}, {9, 7}} {
		g := core.Grid{W: dims[0], H: dims[1]}
		for _, s := range cycle.Strategies() {
			c, err := cycle.Generate(g, 21, s)
			require.NoError(t, err)
			meta := Metadata{WindowW: g.W * 20, WindowH: g.H * 20, Seed: 21, Strategy: s}
			data, err := Encode(c, meta)
			require.NoError(t, err)
			back, gotMeta, err := Decode(data)
			require.NoError(t, err, "%v %v", g, s)
			assert.True(t, c.Equal(back), "%v %v", g, s)
			assert.Equal(t, meta, gotMeta)
		}
	}
}

func TestEncodeLayout(t *testing.T) {
	c, err := cycle.Generate(core.Grid{W: 2, H: 2}, 1, cycle.Serpentine)
	require.NoError(t, err)
	data, err := Encode(c, Metadata{WindowW: 40, WindowH: 40, Seed: 1, Strategy: cycle.Serpentine})
	require.NoError(t, err)
	got := string(data)
	want := "SNAKECYCLE 1\nwidth=2\nheight=2\nwindow_w=40\nwindow_h=40\nseed=1\ncycle_type=serpentine\nwrap=0\nDATA\nRD\nUL\n"
	assert.Equal(t, want, got)
}

func TestEncodeRequiresWindow(t *testing.T) {
	c, err := cycle.Generate(core.Grid{W: 4, H: 3}, 1, cycle.Maze)
	require.NoError(t, err)
	for _, m := range []Metadata{{}, {WindowW: 80}, {WindowW: 81, WindowH: 60}, {WindowW: -80, WindowH: 60}} {
		_, err := Encode(c, m)
		require.ErrorIs(t, err, core.ErrInvalidDimensions, "%+v", m)
	}
	data, err := Encode(c, Metadata{WindowW: 80, WindowH: 60, Seed: 1})
	require.NoError(t, err)
	w, h, err := ValidateText(data)
	require.NoError(t, err)
	assert.Equal(t, [2]int{4, 3}, [2]int{w, h})
}

const twoByTwo = "SNAKECYCLE 1\n# comment\n\nwidth=2\nheight=2\nwindow_w=40\nwindow_h=40\nDATA\nRD\nUL\n"

func TestDecodeAcceptsCommentsAndInfersWrap(t *testing.T) {
	c, m, err := Decode([]byte(twoByTwo))
	require.NoError(t, err)
	assert.False(t, c.Wrap())
	assert.Equal(t, 40, m.WindowW)
	assert.Equal(t, cycle.DefaultStrategy, m.Strategy)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"bad magic":     strings.Replace(twoByTwo, "SNAKECYCLE 1", "SNAKECYCLE 2", 1),
		"no data":       "SNAKECYCLE 1\nwidth=2\nheight=2\n",
		"duplicate key": strings.Replace(twoByTwo, "height=2", "height=2\nheight=2", 1),
		"bad number":    strings.Replace(twoByTwo, "width=2", "width=two", 1),
		"short row":     strings.Replace(twoByTwo, "RD\n", "R\n", 1),
		"bad letter":    strings.Replace(twoByTwo, "UL", "UX", 1),
		"missing row":   strings.Replace(twoByTwo, "UL\n", "", 1),
		"extra row":     twoByTwo + "RD\n",
		"no key":        strings.Replace(twoByTwo, "# comment", "junk", 1),
		"bad wrap":      strings.Replace(twoByTwo, "DATA", "wrap=2\nDATA", 1),
		"missing width": strings.Replace(twoByTwo, "width=2\n", "", 1),
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			c, _, err := Decode([]byte(text))
			require.ErrorIs(t, err, core.ErrMalformedArtifact)
			assert.Nil(t, c)
		})
	}
}

func TestDecodeRejectsBrokenCycle(t *testing.T) {
	text := "SNAKECYCLE 1\nwidth=4\nheight=4\nDATA\nRDRD\nUDUD\nUDUD\nULUL\n"
	_, _, err := Decode([]byte(text))
	require.ErrorIs(t, err, core.ErrCycleInvariant)
	assert.Contains(t, err.Error(), "closes after 8 of 16 cells")
}

func TestDecodeRejectsOverflowingDimensions(t *testing.T) {
	huge := strconv.Itoa(math.MaxInt/2 + 1)
	for _, text := range []string{
		"SNAKECYCLE 1\nwidth=" + huge + "\nheight=3\nDATA\nUU\n",
		"SNAKECYCLE 1\nwidth=3\nheight=" + huge + "\nDATA\nUUU\n",
	} {
		_, _, err := Decode([]byte(text))
		require.ErrorIs(t, err, core.ErrInvalidDimensions)
		_, _, err = ValidateText([]byte(text))
		require.ErrorIs(t, err, core.ErrInvalidDimensions)
	}
}

func TestDecodeRejectsWindowMismatch(t *testing.T) {
	text := strings.Replace(twoByTwo, "window_w=40", "window_w=41", 1)
	_, _, err := Decode([]byte(text))
	require.ErrorIs(t, err, core.ErrInvalidDimensions)
}

func TestBuild(t *testing.T) {
	data, err := Build(6, 4, 120, 80, 7, "maze-based")
	require.NoError(t, err)
	w, h, err := ValidateText(data)
	require.NoError(t, err)
	assert.Equal(t, [2]int{6, 4}, [2]int{w, h})

	_, err = Build(6, 4, 121, 80, 7, "maze")
	require.ErrorIs(t, err, core.ErrInvalidDimensions)
	_, err = Build(6, 4, 120, 80, 0, "maze")
	require.ErrorIs(t, err, core.ErrConfigurationOutOfRange)
	_, err = Build(1, 4, 20, 80, 7, "maze")
	require.ErrorIs(t, err, core.ErrInvalidDimensions)
	_, err = Build(6, 4, 120, 80, 7, "zigzag")
	require.ErrorIs(t, err, core.ErrUnsupportedGrid)
}

func TestValidateTextRequiresWindow(t *testing.T) {
	text := "SNAKECYCLE 1\nwidth=2\nheight=2\nDATA\nRD\nUL\n"
	_, _, err := ValidateText([]byte(text))
	require.ErrorIs(t, err, core.ErrInvalidDimensions)
}

func TestWriteAndReadFile(t *testing.T) {
	data, err := Build(5, 5, 100, 100, 3, "spiral")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "board.cycle")
	require.NoError(t, WriteFile(path, data))
	c, m, err := ReadFile(path)
	require.NoError(t, err)
	assert.True(t, c.Wrap())
	assert.Equal(t, cycle.Spiral, m.Strategy)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
