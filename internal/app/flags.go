package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"snakebot/internal/bot"
	"snakebot/internal/core"
	"snakebot/internal/cycle"
)

// Bot tick-rate bounds.
const (
	MinBotTPS = 7
	MaxBotTPS = 7000
)

// Config represents the command-line parameters for the application.
type Config struct {
	Bot      bool
	Cycle    string
	Strategy string
	TPS      int
	Preset   string
	GridW    int
	GridH    int
	Seed     int64
	Scale    int
	Wrap     bool
	LogLevel string

	overrides [][2]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Strategy: cycle.DefaultStrategy.String(),
		TPS:      60,
		Preset:   bot.DefaultPreset,
		GridW:    20,
		GridH:    20,
		Scale:    20,
		Wrap:     true,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet. Tuning flags are
// recorded as overrides and applied on top of the preset whatever their
// order on the command line.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.BoolVar(&c.Bot, "bot", c.Bot, "let the bot play")
	fs.StringVar(&c.Cycle, "bot-cycle", c.Cycle, "cycle file for the bot (generated when empty)")
	fs.StringVar(&c.Strategy, "bot-strategy", c.Strategy, "cycle strategy when no cycle file is given: serpentine, spiral, maze, scrambled")
	fs.IntVar(&c.TPS, "bot-tps", c.TPS, fmt.Sprintf("bot ticks per second (%d..%d)", MinBotTPS, MaxBotTPS))
	fs.StringVar(&c.Preset, "bot-preset", c.Preset, "bot tuning preset: "+strings.Join(bot.PresetNames(), ", "))
	for _, ctl := range (bot.Tuning{}).ParameterControls() {
		key := ctl.Key
		name := "bot-" + strings.ReplaceAll(key, "_", "-")
		usage := fmt.Sprintf("%s override (%s..%s)", ctl.Label, ctl.Format(ctl.Min), ctl.Format(ctl.Max))
		fs.Func(name, usage, func(v string) error {
			c.overrides = append(c.overrides, [2]string{key, v})
			return nil
		})
	}
	fs.IntVar(&c.GridW, "grid-w", c.GridW, "grid width in cells")
	fs.IntVar(&c.GridH, "grid-h", c.GridH, "grid height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for cycle and apple placement (0 picks one)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.BoolVar(&c.Wrap, "wrap", c.Wrap, "let the player wrap around the edges")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}

// Override records a tuning override as if given on the command line.
func (c *Config) Override(key, value string) {
	c.overrides = append(c.overrides, [2]string{key, value})
}

// Validate reports every problem with the configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.Bot && (c.TPS < MinBotTPS || c.TPS > MaxBotTPS) {
		errs = append(errs, fmt.Errorf("bot-tps %d outside %d..%d: %w", c.TPS, MinBotTPS, MaxBotTPS, core.ErrConfigurationOutOfRange))
	}
	if c.Cycle == "" {
		if g, err := core.NewGrid(c.GridW, c.GridH); err != nil {
			errs = append(errs, err)
		} else if g.Exceeds(cycle.MaxCells) {
			errs = append(errs, fmt.Errorf("grid %dx%d exceeds %d cells: %w", c.GridW, c.GridH, cycle.MaxCells, core.ErrInvalidDimensions))
		}
	}
	if c.Bot && c.Cycle == "" {
		if _, err := cycle.ParseStrategy(c.Strategy); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Seed < 0 {
		errs = append(errs, fmt.Errorf("seed %d must not be negative: %w", c.Seed, core.ErrConfigurationOutOfRange))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %d must be positive: %w", c.Scale, core.ErrConfigurationOutOfRange))
	}
	if _, err := c.Tuning(); err != nil && !errors.Is(err, core.ErrConfigurationOutOfRange) {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Tuning resolves the preset with overrides applied and clamped. A returned
// error wrapping ErrConfigurationOutOfRange is a warning; the tuning is still
// usable.
func (c *Config) Tuning() (bot.Tuning, error) {
	t, err := bot.Preset(c.Preset)
	if err != nil {
		return bot.Tuning{}, err
	}
	for _, kv := range c.overrides {
		if err := t.Set(kv[0], kv[1]); err != nil {
			return bot.Tuning{}, err
		}
	}
	return t.Clamp()
}
