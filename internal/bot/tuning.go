package bot

import (
	"errors"
	"fmt"
	"strings"

	"snakebot/internal/core"
)

// Tuning holds the controller coefficients. A zero cap means uncapped.
type Tuning struct {
	KProgress       float64
	KAway           float64
	KSkip           float64
	KSlack          float64
	KLoop           float64
	LoopWindow      int
	AggressionScale float64
	MaxSkipCap      int
}

// Tuning keys as used on the command line and in key=value overrides.
const (
	KeyKProgress       = "k_progress"
	KeyKAway           = "k_away"
	KeyKSkip           = "k_skip"
	KeyKSlack          = "k_slack"
	KeyKLoop           = "k_loop"
	KeyLoopWindow      = "loop_window"
	KeyAggressionScale = "aggression_scale"
	KeyMaxSkipCap      = "max_skip_cap"
)

var controls = []core.ParameterControl{
	{Key: KeyKProgress, Label: "Progress weight", Type: core.ParamTypeFloat, Min: 0, Max: 50, HasMin: true, HasMax: true},
	{Key: KeyKAway, Label: "Away penalty", Type: core.ParamTypeFloat, Min: 0, Max: 200, HasMin: true, HasMax: true},
	{Key: KeyKSkip, Label: "Skip bonus", Type: core.ParamTypeFloat, Min: 0, Max: 5, HasMin: true, HasMax: true},
	{Key: KeyKSlack, Label: "Slack penalty", Type: core.ParamTypeFloat, Min: 0, Max: 50, HasMin: true, HasMax: true},
	{Key: KeyKLoop, Label: "Loop penalty", Type: core.ParamTypeFloat, Min: 0, Max: 200, HasMin: true, HasMax: true},
	{Key: KeyLoopWindow, Label: "Loop window", Type: core.ParamTypeInt, Min: 1, Max: 80, HasMin: true, HasMax: true},
	{Key: KeyAggressionScale, Label: "Aggression", Type: core.ParamTypeFloat, Min: 0, Max: 2, HasMin: true, HasMax: true},
	{Key: KeyMaxSkipCap, Label: "Max skip", Type: core.ParamTypeInt, Min: 0, Max: 10000, HasMin: true, HasMax: true},
}

// ParameterControls lists every tunable with its bounds.
func (t Tuning) ParameterControls() []core.ParameterControl {
	return append([]core.ParameterControl(nil), controls...)
}

func (t *Tuning) field(key string) (*float64, *int) {
	switch key {
	case KeyKProgress:
		return &t.KProgress, nil
	case KeyKAway:
		return &t.KAway, nil
	case KeyKSkip:
		return &t.KSkip, nil
	case KeyKSlack:
		return &t.KSlack, nil
	case KeyKLoop:
		return &t.KLoop, nil
	case KeyLoopWindow:
		return nil, &t.LoopWindow
	case KeyAggressionScale:
		return &t.AggressionScale, nil
	case KeyMaxSkipCap:
		return nil, &t.MaxSkipCap
	}
	return nil, nil
}

// Get returns the value stored under key.
func (t Tuning) Get(key string) (float64, bool) {
	f, i := t.field(key)
	switch {
	case f != nil:
		return *f, true
	case i != nil:
		return float64(*i), true
	}
	return 0, false
}

// Set parses value into the field named key. Dashes in key are accepted in
// place of underscores. Bounds are applied later by Clamp.
func (t *Tuning) Set(key, value string) error {
	key = strings.ReplaceAll(strings.TrimSpace(key), "-", "_")
	ctl, ok := control(key)
	if !ok {
		return fmt.Errorf("unknown tuning key %q", key)
	}
	v, err := ctl.Parse(strings.TrimSpace(value))
	if err != nil {
		return err
	}
	f, i := t.field(key)
	if f != nil {
		*f = v
	} else {
		*i = int(v)
	}
	return nil
}

func control(key string) (core.ParameterControl, bool) {
	for _, c := range controls {
		if c.Key == key {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

// Clamp returns t with every field pulled into its documented range. The
// error lists each field that moved; it wraps ErrConfigurationOutOfRange and
// is a warning, not a failure.
func (t Tuning) Clamp() (Tuning, error) {
	out := t
	var errs []error
	for _, ctl := range controls {
		f, i := out.field(ctl.Key)
		var v float64
		if f != nil {
			v = *f
		} else {
			v = float64(*i)
		}
		clamped, moved := ctl.Clamp(v)
		if !moved {
			continue
		}
		if f != nil {
			*f = clamped
		} else {
			*i = int(clamped)
		}
		errs = append(errs, fmt.Errorf("%s=%v clamped to %s: %w", ctl.Key, v, ctl.Format(clamped), core.ErrConfigurationOutOfRange))
	}
	return out, errors.Join(errs...)
}

// Snapshot describes the tuning for display.
func (t Tuning) Snapshot() core.ParameterSnapshot {
	params := make([]core.Parameter, 0, len(controls))
	for _, ctl := range controls {
		v, _ := t.Get(ctl.Key)
		params = append(params, core.Parameter{Key: ctl.Key, Label: ctl.Label, Type: ctl.Type, Value: ctl.Format(v)})
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{Name: "Bot", Params: params}}}
}

// DefaultPreset is used when no preset is named.
const DefaultPreset = "safe"

var presets = map[string]Tuning{
	"safe":       {KProgress: 10, KAway: 50, KSkip: 0.75, KSlack: 5, KLoop: 100, LoopWindow: 24, AggressionScale: 1.0},
	"aggressive": {KProgress: 14, KAway: 35, KSkip: 1.2, KSlack: 3.5, KLoop: 80, LoopWindow: 16, AggressionScale: 1.4},
	"greedy":     {KProgress: 18, KAway: 30, KSkip: 1.0, KSlack: 4, KLoop: 120, LoopWindow: 24, AggressionScale: 1.2},
	"chaotic":    {KProgress: 6, KAway: 20, KSkip: 0.5, KSlack: 2, KLoop: 40, LoopWindow: 12, AggressionScale: 0.8},
}

// PresetNames lists the built-in presets from most to least conservative.
func PresetNames() []string { return []string{"safe", "aggressive", "greedy", "chaotic"} }

// Preset returns the named tuning. Empty selects the default and
// "greedy-apple" is an alias for greedy.
func Preset(name string) (Tuning, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		name = DefaultPreset
	case "greedy-apple", "greedy_apple":
		name = "greedy"
	}
	t, ok := presets[name]
	if !ok {
		return Tuning{}, fmt.Errorf("unknown preset %q", name)
	}
	return t, nil
}
