package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate
// regardless of how often the driving loop polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the driving loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Steps reports how many whole ticks have elapsed since the last call, so a
// caller that fell behind can catch up in one batch. Callers that do not
// want to catch up should cap the returned count.
func (f *FixedStep) Steps() int {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
	}
	return n
}
