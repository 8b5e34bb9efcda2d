package dial_test

import (
	"testing"

	"github.com/akyairhashvil/eggtimer/internal/dial"
	"github.com/akyairhashvil/eggtimer/internal/testutil"
)

func TestOpenCloseIdempotent(t *testing.T) {
	c := dial.New(nil, nil)
	c.Close()
	if c.IsOpen() {
		t.Fatalf("close on closed dial should be a no-op")
	}
	c.Open()
	c.Open()
	if !c.IsOpen() {
		t.Fatalf("expected open")
	}
	c.Close()
	c.Close()
	if c.IsOpen() {
		t.Fatalf("expected closed")
	}
	c.Open()
	if !c.IsOpen() {
		t.Fatalf("dial should reopen after close")
	}
}

func TestOutsideClickCloses(t *testing.T) {
	for _, running := range []bool{false, true} {
		b := testutil.NewController().WithMinutes(2).Opened()
		if running {
			b = b.Running()
		}
		c := b.Build()
		c.OutsidePress()
		if !c.IsOpen() {
			t.Fatalf("press alone must not close (running=%v)", running)
		}
		c.PointerRelease(true)
		if c.IsOpen() {
			t.Fatalf("outside click should close (running=%v)", running)
		}
		if running && c.State() != dial.StateRunning {
			t.Fatalf("closing must not stop the countdown")
		}
	}
}

func TestReleaseInsideConsumesOutsidePress(t *testing.T) {
	c := testutil.NewController().Opened().Build()
	c.OutsidePress()
	c.PointerRelease(false)
	if !c.IsOpen() {
		t.Fatalf("release inside should not close")
	}
	c.PointerRelease(true)
	if !c.IsOpen() {
		t.Fatalf("listener is one-shot; stray release should not close")
	}
}

func TestOutsideClickWhileRingingKeepsOpen(t *testing.T) {
	audio := testutil.NewFakeAudio()
	c := testutil.NewController().WithAudio(audio).WithMinutes(1).Opened().Running().Build()
	c.OutsidePress() // press before the ring, release after
	gen := c.Generation()
	for c.Tick(gen) == dial.TickApplied {
	}
	c.PointerRelease(true)
	if !c.IsOpen() {
		t.Fatalf("ringing dial must not close on outside release")
	}
	c.OutsidePress()
	c.PointerRelease(true)
	if !c.IsOpen() {
		t.Fatalf("ringing dial must not close on outside click")
	}

	audio.Finish(dial.ClipAlarm)
	c.AlarmEnded()
	c.OutsidePress()
	c.PointerRelease(true)
	if c.IsOpen() {
		t.Fatalf("outside click after the alarm should close")
	}
}

func TestOpenIgnoredWhileRinging(t *testing.T) {
	c := testutil.NewController().WithMinutes(1).Running().Build()
	gen := c.Generation()
	for c.Tick(gen) == dial.TickApplied {
	}
	// nil audio ends the clip immediately but the controller stays ringing
	// until the adapter reports it.
	c.Open()
	if c.IsOpen() {
		t.Fatalf("open while ringing should be ignored")
	}
	c.AlarmEnded()
	c.Open()
	if !c.IsOpen() {
		t.Fatalf("expected open after alarm")
	}
}
