package game

import "time"

// FixedStep turns elapsed wall time into whole simulation ticks and an
// interpolation factor for rendering.
type FixedStep struct {
	step     time.Duration
	maxFrame time.Duration
	acc      time.Duration
}

// NewFixedStep runs tps ticks per second and drops time beyond three ticks
// per frame so a stalled frame does not trigger a long catch-up burst.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	step := time.Second / time.Duration(tps)
	return &FixedStep{step: step, maxFrame: 3 * step}
}

func (f *FixedStep) Step() time.Duration { return f.step }

// Advance adds elapsed time and returns how many ticks are due.
func (f *FixedStep) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > f.maxFrame {
		elapsed = f.maxFrame
	}
	f.acc += elapsed
	n := int(f.acc / f.step)
	f.acc -= time.Duration(n) * f.step
	return n
}

// Alpha is the fraction of a tick accumulated but not yet simulated.
func (f *FixedStep) Alpha() float64 {
	return float64(f.acc) / float64(f.step)
}
