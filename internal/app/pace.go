package app

import "time"

// Pace releases simulation rings at a steady rate independent of the frame
// rate the window is drawn at.
type Pace struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewPace targets the given rings per second. The first call to Ready
// always reports true.
func NewPace(rate int) *Pace {
	p := &Pace{now: time.Now}
	p.SetRate(rate)
	p.accumulator = p.step
	return p
}

// SetRate changes the ring rate; non-positive values fall back to 4.
func (p *Pace) SetRate(rate int) {
	if rate <= 0 {
		rate = 4
	}
	p.step = time.Second / time.Duration(rate)
}

// Ready reports whether the next ring is due.
func (p *Pace) Ready() bool {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		return true
	}
	return false
}
