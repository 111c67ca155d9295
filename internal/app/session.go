package app

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"snakebot/internal/bot"
	"snakebot/internal/core"
	"snakebot/internal/cycle"
	"snakebot/internal/cyclefile"
	"snakebot/internal/game"
)

// Session is a configured game together with what front ends display.
type Session struct {
	ID     string
	Game   *game.Game
	Cycle  *cycle.Cycle
	Tuning bot.Tuning
	Preset string
	TPS    int
	Logger log.Logger
}

// NewSession loads or generates the cycle, builds the controller when the bot
// plays, and places the snake. Non-fatal problems are logged as warnings.
func (c *Config) NewSession(logger log.Logger) (*Session, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s := &Session{ID: uuid.NewString(), Preset: c.Preset, TPS: c.TPS}
	s.Logger = log.With(logger, "session", s.ID)

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano() & 0x7fffffff
	}

	if !c.Bot {
		g, err := core.NewGrid(c.GridW, c.GridH)
		if err != nil {
			return nil, err
		}
		s.TPS = game.HumanTPS(0)
		s.Game, err = game.New(game.Config{Grid: g, Wrap: c.Wrap, Window: 1}, nil, seed)
		if err != nil {
			return nil, err
		}
		level.Info(s.Logger).Log("msg", "session started", "mode", "human", "grid", fmt.Sprintf("%dx%d", g.W, g.H), "wrap", c.Wrap, "seed", seed)
		return s, nil
	}

	tuning, err := c.Tuning()
	if err != nil {
		if !errors.Is(err, core.ErrConfigurationOutOfRange) {
			return nil, err
		}
		level.Warn(s.Logger).Log("msg", "tuning clamped", "err", err)
	}
	s.Tuning = tuning

	source := c.Cycle
	if c.Cycle != "" {
		s.Cycle, _, err = cyclefile.ReadFile(c.Cycle)
	} else {
		s.Cycle, err = c.generate(seed)
		source = "generated:" + c.Strategy
	}
	if err != nil {
		return nil, fmt.Errorf("load cycle: %w", err)
	}

	ctl, err := bot.New(s.Cycle, tuning)
	if err != nil {
		return nil, err
	}
	g := s.Cycle.Grid()
	s.Game, err = game.New(game.Config{Grid: g, Wrap: s.Cycle.Wrap(), Window: tuning.LoopWindow}, ctl, seed)
	if err != nil {
		return nil, err
	}
	level.Info(s.Logger).Log(
		"msg", "session started",
		"mode", "bot",
		"grid", fmt.Sprintf("%dx%d", g.W, g.H),
		"cycle", source,
		"wrap", s.Cycle.Wrap(),
		"preset", c.Preset,
		"tps", c.TPS,
		"seed", seed,
	)
	return s, nil
}

func (c *Config) generate(seed int64) (*cycle.Cycle, error) {
	g, err := core.NewGrid(c.GridW, c.GridH)
	if err != nil {
		return nil, err
	}
	strategy, err := cycle.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}
	return cycle.Generate(g, seed, strategy)
}

// CurrentTPS is the tick rate the session should run at right now.
func (s *Session) CurrentTPS() int {
	if s.Game.Piloted() {
		return s.TPS
	}
	return game.HumanTPS(s.Game.Score())
}

// Finished logs the outcome once the game stops running.
func (s *Session) Finished() {
	level.Info(s.Logger).Log("msg", "session finished", "outcome", s.Game.Outcome(), "score", s.Game.Score(), "ticks", s.Game.Ticks())
}

// NewLogger builds the logfmt logger used by the binaries.
func NewLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return level.NewFilter(logger, levelOption(lvl))
}

func levelOption(lvl string) level.Option {
	switch lvl {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	}
	return level.AllowInfo()
}
