package haptics

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestPulse() (*Pulse, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	return &Pulse{now: clock.now}, clock
}

func TestPulseLifetime(t *testing.T) {
	p, clock := newTestPulse()
	if p.Active() {
		t.Fatalf("new pulse should be idle")
	}
	p.Vibrate(50 * time.Millisecond)
	if !p.Active() || p.Remaining() != 50*time.Millisecond {
		t.Fatalf("expected 50ms pulse, got %v", p.Remaining())
	}
	clock.t = clock.t.Add(50 * time.Millisecond)
	if p.Active() {
		t.Fatalf("pulse should have ended")
	}
}

func TestPulseExtendsButNeverShortens(t *testing.T) {
	p, clock := newTestPulse()
	p.Vibrate(3 * time.Second)
	clock.t = clock.t.Add(time.Second)
	p.Vibrate(50 * time.Millisecond)
	if p.Remaining() != 2*time.Second {
		t.Fatalf("short pulse must not cut a long one, got %v", p.Remaining())
	}
	p.Vibrate(5 * time.Second)
	if p.Remaining() != 5*time.Second {
		t.Fatalf("expected extension to 5s, got %v", p.Remaining())
	}
	p.Cancel()
	if p.Active() {
		t.Fatalf("cancel should end the pulse")
	}
}

func TestPulseIgnoresNonPositive(t *testing.T) {
	p, _ := newTestPulse()
	p.Vibrate(0)
	p.Vibrate(-time.Second)
	if p.Active() {
		t.Fatalf("non-positive durations must be ignored")
	}
}
