package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"snakebot/internal/app"
	"snakebot/internal/bot"
	"snakebot/internal/core"
	"snakebot/internal/cycle"
	"snakebot/internal/game"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type scenario struct {
	strategy cycle.Strategy
	preset   string
	tuning   bot.Tuning
	seed     int64
}

type scenarioResult struct {
	scenario
	outcome game.Outcome
	ticks   int
	score   int
	err     error
}

type summary struct {
	strategy cycle.Strategy
	preset   string
	runs     int
	wins     int
	mean     float64
	stddev   float64
	best     float64
	apples   int
}

func main() {
	width := flag.Int("w", 20, "grid width")
	height := flag.Int("h", 20, "grid height")
	seeds := flag.Int("seeds", 8, "seeds per strategy and preset")
	firstSeed := flag.Int64("seed", 1, "first seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	maxTicks := flag.Int("max-ticks", 0, "tick limit per game (default cells squared)")
	presetList := flag.String("presets", strings.Join(bot.PresetNames(), ","), "comma-separated presets")
	strategyList := flag.String("strategies", "serpentine,spiral,maze,scrambled", "comma-separated cycle strategies")
	var overrides kvList
	flag.Var(&overrides, "set", "tuning override in key=value form applied to every preset (repeatable)")
	flag.Parse()

	logger := log.With(app.NewLogger(os.Stderr, "info"), "sweep", uuid.NewString())

	grid, err := core.NewGrid(*width, *height)
	if err != nil {
		level.Error(logger).Log("msg", "bad grid", "err", err)
		os.Exit(2)
	}
	if *maxTicks <= 0 {
		*maxTicks = grid.Len() * grid.Len()
	}

	scenarios, err := buildScenarios(logger, *strategyList, *presetList, overrides, *firstSeed, *seeds)
	if err != nil {
		level.Error(logger).Log("msg", "bad sweep", "err", err)
		os.Exit(2)
	}

	fmt.Printf("Sweeping %d games on %dx%d (%d workers, %s tick limit)\n",
		len(scenarios), grid.W, grid.H, *workers, humanize.Comma(int64(*maxTicks)))

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(grid, sc, *maxTicks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	grouped := map[string][]scenarioResult{}
	var totalTicks int64
	for res := range results {
		if res.err != nil {
			level.Warn(logger).Log("msg", "scenario failed", "strategy", res.strategy, "preset", res.preset, "seed", res.seed, "err", res.err)
			continue
		}
		if res.outcome != game.Won {
			level.Warn(logger).Log("msg", "game not won", "strategy", res.strategy, "preset", res.preset, "seed", res.seed, "outcome", res.outcome, "score", res.score)
		}
		key := res.strategy.String() + "/" + res.preset
		grouped[key] = append(grouped[key], res)
		totalTicks += int64(res.ticks)
	}

	summaries := summarize(grouped)
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].mean < summaries[j].mean })
	elapsed := time.Since(start)

	fmt.Printf("\nResults (elapsed %s, %s ticks simulated):\n", elapsed.Round(time.Millisecond), humanize.Comma(totalTicks))
	fmt.Printf("%-11s %-11s %5s %12s %10s %12s %9s\n", "strategy", "preset", "wins", "mean ticks", "stddev", "best", "apples/kt")
	for _, s := range summaries {
		perK := 0.0
		if s.mean > 0 {
			perK = float64(s.apples) / float64(s.runs) / s.mean * 1000
		}
		fmt.Printf("%-11s %-11s %2d/%-2d %12s %10.1f %12s %9.2f\n",
			s.strategy, s.preset, s.wins, s.runs, humanize.Comma(int64(s.mean)), s.stddev, humanize.Comma(int64(s.best)), perK)
	}
	if len(summaries) > 0 {
		best := summaries[0]
		fmt.Printf("\nFastest: %s with %s (mean %s ticks to fill the board)\n", best.strategy, best.preset, humanize.Comma(int64(best.mean)))
	}
}

func buildScenarios(logger log.Logger, strategyList, presetList string, overrides kvList, firstSeed int64, seeds int) ([]scenario, error) {
	var out []scenario
	for _, sname := range strings.Split(strategyList, ",") {
		strategy, err := cycle.ParseStrategy(sname)
		if err != nil {
			return nil, err
		}
		for _, pname := range strings.Split(presetList, ",") {
			cfg := app.NewConfig()
			cfg.Preset = strings.TrimSpace(pname)
			for _, kv := range overrides {
				key, value, ok := strings.Cut(kv, "=")
				if !ok {
					return nil, fmt.Errorf("override %q is not key=value", kv)
				}
				cfg.Override(key, value)
			}
			tuning, err := cfg.Tuning()
			if err != nil {
				if !errors.Is(err, core.ErrConfigurationOutOfRange) {
					return nil, err
				}
				level.Warn(logger).Log("msg", "tuning clamped", "preset", cfg.Preset, "err", err)
			}
			for i := 0; i < seeds; i++ {
				out = append(out, scenario{strategy: strategy, preset: cfg.Preset, tuning: tuning, seed: firstSeed + int64(i)})
			}
		}
	}
	return out, nil
}

func runScenario(grid core.Grid, sc scenario, maxTicks int) scenarioResult {
	res := scenarioResult{scenario: sc}
	c, err := cycle.Generate(grid, sc.seed, sc.strategy)
	if err != nil {
		res.err = err
		return res
	}
	ctl, err := bot.New(c, sc.tuning)
	if err != nil {
		res.err = err
		return res
	}
	g, err := game.New(game.Config{Grid: grid, Wrap: c.Wrap(), Window: sc.tuning.LoopWindow}, ctl, sc.seed)
	if err != nil {
		res.err = err
		return res
	}
	for g.Outcome() == game.Running && g.Ticks() < maxTicks {
		g.Step()
	}
	res.outcome, res.ticks, res.score = g.Outcome(), g.Ticks(), g.Score()
	return res
}

func summarize(grouped map[string][]scenarioResult) []summary {
	out := make([]summary, 0, len(grouped))
	for _, runs := range grouped {
		s := summary{strategy: runs[0].strategy, preset: runs[0].preset, runs: len(runs)}
		ticks := make([]float64, 0, len(runs))
		for _, r := range runs {
			ticks = append(ticks, float64(r.ticks))
			s.apples += r.score
			if r.outcome == game.Won {
				s.wins++
			}
		}
		s.mean, s.stddev = stat.MeanStdDev(ticks, nil)
		sort.Float64s(ticks)
		s.best = ticks[0]
		out = append(out, s)
	}
	return out
}
