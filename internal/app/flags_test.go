package app

import (
	"bytes"
	"flag"
	"math"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snakebot/internal/core"
	"snakebot/internal/cyclefile"
	"snakebot/internal/game"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse(args))
	return cfg
}

func TestOverridesBeatPresetRegardlessOfOrder(t *testing.T) {
	cfg := parse(t, "--bot-k-skip", "2", "--bot-preset", "chaotic", "--bot-loop-window", "30")
	tn, err := cfg.Tuning()
	require.NoError(t, err)
	assert.Equal(t, 2.0, tn.KSkip)
	assert.Equal(t, 30, tn.LoopWindow)
	assert.Equal(t, 6.0, tn.KProgress)
}

func TestOverrideAppliesAfterPreset(t *testing.T) {
	cfg := NewConfig()
	cfg.Override("k_skip", "4")
	cfg.Preset = "aggressive"
	tn, err := cfg.Tuning()
	require.NoError(t, err)
	assert.Equal(t, 4.0, tn.KSkip)
	assert.Equal(t, 14.0, tn.KProgress)

	cfg.Override("k_magic", "1")
	_, err = cfg.Tuning()
	require.Error(t, err)
	assert.NotErrorIs(t, err, core.ErrConfigurationOutOfRange)
}

func TestTuningClampIsAWarning(t *testing.T) {
	cfg := parse(t, "--bot", "--bot-loop-window", "500")
	tn, err := cfg.Tuning()
	require.ErrorIs(t, err, core.ErrConfigurationOutOfRange)
	assert.Equal(t, 80, tn.LoopWindow)
	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := parse(t, "--bot", "--bot-tps", "6", "--grid-w", "1", "--bot-preset", "reckless")
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrConfigurationOutOfRange)
	assert.ErrorIs(t, err, core.ErrInvalidDimensions)
	assert.Contains(t, err.Error(), "reckless")

	cfg = parse(t, "--bot", "--bot-tps", "7000", "--bot-strategy", "zigzag")
	assert.ErrorIs(t, cfg.Validate(), core.ErrUnsupportedGrid)
}

func TestValidateRejectsOverflowingGrid(t *testing.T) {
	cfg := parse(t, "--grid-w", strconv.Itoa(math.MaxInt/2+1), "--grid-h", "3")
	assert.ErrorIs(t, cfg.Validate(), core.ErrInvalidDimensions)
	_, err := cfg.NewSession(log.NewNopLogger())
	require.ErrorIs(t, err, core.ErrInvalidDimensions)
}

func TestNewSessionHuman(t *testing.T) {
	var buf bytes.Buffer
	cfg := parse(t, "--grid-w", "12", "--grid-h", "9", "--seed", "4")
	s, err := cfg.NewSession(NewLogger(&buf, "info"))
	require.NoError(t, err)
	assert.False(t, s.Game.Piloted())
	assert.Nil(t, s.Cycle)
	assert.Equal(t, 7, s.CurrentTPS())
	assert.Contains(t, buf.String(), "mode=human")
	assert.Contains(t, buf.String(), "session="+s.ID)
}

func TestNewSessionBotFromFile(t *testing.T) {
	data, err := cyclefile.Build(6, 6, 120, 120, 3, "spiral")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "six.cycle")
	require.NoError(t, cyclefile.WriteFile(path, data))

	cfg := parse(t, "--bot", "--bot-cycle", path, "--bot-tps", "500", "--seed", "8", "--bot-k-loop", "900")
	var buf bytes.Buffer
	s, err := cfg.NewSession(NewLogger(&buf, "info"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "tuning clamped")
	assert.Equal(t, 200.0, s.Tuning.KLoop)
	assert.Equal(t, 500, s.CurrentTPS())

	for s.Game.Outcome() == game.Running {
		s.Game.Step()
	}
	assert.Equal(t, game.Won, s.Game.Outcome())
}

func TestNewSessionBotGenerated(t *testing.T) {
	cfg := parse(t, "--bot", "--grid-w", "7", "--grid-h", "5", "--bot-strategy", "scrambled", "--seed", "2")
	s, err := cfg.NewSession(log.NewNopLogger())
	require.NoError(t, err)
	assert.True(t, s.Cycle.Wrap())
	assert.Equal(t, core.Size{W: 7, H: 5}, s.Game.Size())
}

func TestNewSessionMissingCycleFile(t *testing.T) {
	cfg := parse(t, "--bot", "--bot-cycle", filepath.Join(t.TempDir(), "absent.cycle"))
	_, err := cfg.NewSession(log.NewNopLogger())
	require.Error(t, err)
}
