package dial_test

import (
	"math"
	"testing"

	"github.com/akyairhashvil/eggtimer/internal/config"
	"github.com/akyairhashvil/eggtimer/internal/dial"
	"github.com/akyairhashvil/eggtimer/internal/testutil"
)

func TestDragRightRemovesTime(t *testing.T) {
	c := testutil.NewController().WithMinutes(10).Opened().Build()
	c.PointerDown(100)
	if !c.Dragging() {
		t.Fatalf("expected dragging")
	}
	c.PointerMove(124)
	if c.Rotation() != -48 {
		t.Fatalf("expected raw rotation -48, got %v", c.Rotation())
	}
	if c.TimeText() != "8:00" {
		t.Fatalf("expected 8:00, got %q", c.TimeText())
	}
	c.PointerUp()
	if c.Dragging() {
		t.Fatalf("drag should be over")
	}
	if c.Rotation() != -48 {
		t.Fatalf("expected -48 after release, got %v", c.Rotation())
	}
}

func TestDragLeftClampsAtOneHour(t *testing.T) {
	c := testutil.NewController().WithMinutes(59).Opened().Build()
	c.PointerDown(0)
	c.PointerMove(-40)
	if c.Rotation() != -374 {
		t.Fatalf("raw rotation should stay unclamped during drag, got %v", c.Rotation())
	}
	if c.Adjusted() != -360 {
		t.Fatalf("expected adjusted -360, got %v", c.Adjusted())
	}
	if c.TimeText() != "1:00:00" {
		t.Fatalf("expected 1:00:00, got %q", c.TimeText())
	}
	c.PointerUp()
	if c.Rotation() != -360 {
		t.Fatalf("expected clamp to -360 on release, got %v", c.Rotation())
	}
}

func TestDragKeepsRawAndAdjustedApart(t *testing.T) {
	c := testutil.NewController().WithMinutes(10).Opened().Build()
	c.PointerDown(0)
	c.PointerMove(5)
	if c.Rotation() != -57.5 {
		t.Fatalf("expected raw -57.5, got %v", c.Rotation())
	}
	if c.Adjusted() != -60 || c.TimeText() != "10:00" {
		t.Fatalf("expected adjusted 10:00, got %v %q", c.Adjusted(), c.TimeText())
	}
	if c.Offset() != 5 {
		t.Fatalf("expected offset 5, got %v", c.Offset())
	}
}

func TestWindingFeedbackOncePerMinute(t *testing.T) {
	audio := testutil.NewFakeAudio()
	haptics := &testutil.FakeHaptics{}
	c := testutil.NewController().WithAudio(audio).WithHaptics(haptics).Opened().Build()

	c.PointerDown(0)
	c.PointerMove(-6) // adjusted -6
	c.PointerMove(-8) // still -6
	c.PointerMove(-30)
	if got := audio.Plays(dial.ClipWinding); got != 2 {
		t.Fatalf("expected 2 winding clicks, got %d", got)
	}
	if haptics.Count() != 2 {
		t.Fatalf("expected 2 pulses, got %d", haptics.Count())
	}
	for _, d := range haptics.Pulses {
		if d != config.WindingVibration {
			t.Fatalf("unexpected pulse length %v", d)
		}
	}
	c.PointerUp()

	// The reference point survives the gesture.
	c.PointerDown(0)
	c.PointerMove(2)
	if got := audio.Plays(dial.ClipWinding); got != 2 {
		t.Fatalf("small move should not click, got %d", got)
	}
}

func TestDragTogglesButtonWhenIdle(t *testing.T) {
	c := testutil.NewController().Opened().Build()
	c.PointerDown(50)
	c.PointerMove(30)
	if c.Button().Disabled {
		t.Fatalf("button should enable once time is set")
	}
	c.PointerMove(60)
	if !c.Button().Disabled {
		t.Fatalf("button should disable when the dial is back at zero")
	}
	c.PointerUp()
	if c.Rotation() != 0 {
		t.Fatalf("expected rotation 0, got %v", c.Rotation())
	}
}

func TestDragPausesRunningCountdown(t *testing.T) {
	audio := testutil.NewFakeAudio()
	c := testutil.NewController().WithAudio(audio).WithMinutes(5).Opened().Running().Build()
	for i := 0; i < 10; i++ {
		c.Tick(c.Generation())
	}
	gen := c.Generation()

	c.PointerDown(0)
	if c.State() != dial.StatePaused {
		t.Fatalf("expected paused during drag, got %v", c.State())
	}
	if res := c.Tick(gen); res != dial.TickStale {
		t.Fatalf("tick during drag must be stale, got %v", res)
	}
	c.PointerMove(-12)
	if c.Button().Disabled {
		t.Fatalf("control must stay enabled while a countdown is active")
	}
	c.PointerUp()
	if c.State() != dial.StateRunning {
		t.Fatalf("expected running after drag, got %v", c.State())
	}
	if c.Generation() == gen {
		t.Fatalf("resume must start a new tick generation")
	}
	// -29 raw minus 6 degrees snaps to -36.
	if c.Rotation() != -36 {
		t.Fatalf("expected snapped rotation -36, got %v", c.Rotation())
	}
	if audio.Pauses(dial.ClipTicking) != 1 || audio.Plays(dial.ClipTicking) != 2 {
		t.Fatalf("ticking should pause and resume once")
	}
}

func TestPointerIgnoredWhenClosedOrRinging(t *testing.T) {
	c := testutil.NewController().WithMinutes(1).Build()
	c.PointerDown(0)
	if c.Dragging() {
		t.Fatalf("closed dial must not drag")
	}
	c.PointerMove(40)
	c.PointerUp()
	if c.Rotation() != -6 {
		t.Fatalf("rotation changed without a drag: %v", c.Rotation())
	}

	c.Open()
	c.Start()
	gen := c.Generation()
	for c.Tick(gen) == dial.TickApplied {
	}
	c.PointerDown(0)
	if c.Dragging() {
		t.Fatalf("ringing dial must not drag")
	}
}

func TestReleaseSnapsOffset(t *testing.T) {
	c := testutil.NewController().Opened().Build()
	c.PointerDown(0)
	c.PointerMove(-17)
	c.PointerUp()
	if c.Offset() != -12 {
		t.Fatalf("expected offset -12, got %v", c.Offset())
	}

	c.PointerDown(0)
	c.PointerMove(-730)
	c.PointerUp()
	if c.Offset() != -12 {
		t.Fatalf("expected wrapped offset -12, got %v", c.Offset())
	}
}

func TestNonFiniteRotationPanics(t *testing.T) {
	c := testutil.NewController().Opened().Build()
	c.PointerDown(0)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for NaN position")
		}
	}()
	c.PointerMove(math.NaN())
}
