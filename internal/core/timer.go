package core

import "time"

// maxCatchUp bounds how many ticks Due reports after a stall.
const maxCatchUp = 8

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// TPS reports the current tick rate.
func (f *FixedStep) TPS() int { return int(time.Second / f.step) }

func (f *FixedStep) advance() {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	f.advance()
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Due returns how many whole ticks are owed since the previous call. Rates
// above the frame rate yield several ticks per frame; a long stall is capped
// at the rate's share of maxCatchUp frames and the excess is dropped.
func (f *FixedStep) Due() int {
	f.advance()
	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	if limit := maxCatchUp * max(1, f.TPS()/60); n > limit {
		n = limit
	}
	return n
}
