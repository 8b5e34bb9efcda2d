// Package haptics provides vibration for platforms that have none: a
// terminal cannot shake the device, so a Pulse shakes the dial instead.
package haptics

import (
	"sync"
	"time"
)

// Pulse records how long the current vibration lasts.
type Pulse struct {
	now func() time.Time

	mu    sync.Mutex
	until time.Time
}

func NewPulse() *Pulse {
	return &Pulse{now: time.Now}
}

// Vibrate extends the pulse to cover d from now. Non-positive durations are ignored.
func (p *Pulse) Vibrate(d time.Duration) {
	if d <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if end := p.now().Add(d); end.After(p.until) {
		p.until = end
	}
}

// Active reports whether a pulse is in progress.
func (p *Pulse) Active() bool {
	return p.Remaining() > 0
}

func (p *Pulse) Remaining() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if left := p.until.Sub(p.now()); left > 0 {
		return left
	}
	return 0
}

// Cancel stops the pulse early.
func (p *Pulse) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.until = time.Time{}
}
