package audio

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/akyairhashvil/eggtimer/internal/config"
	"github.com/akyairhashvil/eggtimer/internal/dial"
	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(8000)

func newTestPlayer(t *testing.T, volume float64) *Player {
	t.Helper()
	p, err := newPlayer(testRate, volume, func() {}, func() {})
	if err != nil {
		t.Fatalf("newPlayer failed: %v", err)
	}
	return p
}

// drain pulls d worth of samples through the mixer and reports whether any
// of them were audible.
func drain(p *Player, d time.Duration) bool {
	buf := make([][2]float64, 256)
	audible := false
	for n := testRate.N(d); n > 0; n -= len(buf) {
		p.mixer.Stream(buf)
		for _, s := range buf {
			if s[0] != 0 || s[1] != 0 {
				audible = true
			}
		}
	}
	return audible
}

func TestAlarmEndsOnce(t *testing.T) {
	p := newTestPlayer(t, 1)
	ended := 0
	p.OnEnd(dial.ClipAlarm, func() { ended++ })
	p.Play(dial.ClipAlarm)
	if !p.IsPlaying(dial.ClipAlarm) {
		t.Fatalf("expected alarm to be playing")
	}
	if !drain(p, time.Second) {
		t.Fatalf("expected audible alarm")
	}
	if ended != 0 {
		t.Fatalf("alarm ended early")
	}
	drain(p, config.AlarmClipLength)
	if ended != 1 {
		t.Fatalf("expected one end callback, got %d", ended)
	}
	if p.IsPlaying(dial.ClipAlarm) {
		t.Fatalf("alarm should be finished")
	}
	p.Play(dial.ClipAlarm)
	drain(p, config.AlarmClipLength+time.Second)
	if ended != 1 {
		t.Fatalf("end callback is one-shot, got %d calls", ended)
	}
}

func TestTickingPauseResume(t *testing.T) {
	p := newTestPlayer(t, 1)
	if drain(p, 100*time.Millisecond) {
		t.Fatalf("ticking should start paused")
	}
	p.Play(dial.ClipTicking)
	if !p.IsPlaying(dial.ClipTicking) {
		t.Fatalf("expected ticking")
	}
	if !drain(p, config.TickingPeriod) {
		t.Fatalf("expected audible ticks")
	}
	p.Pause(dial.ClipTicking)
	if p.IsPlaying(dial.ClipTicking) {
		t.Fatalf("expected ticking paused")
	}
	if drain(p, config.TickingPeriod) {
		t.Fatalf("paused ticking must be silent")
	}
}

func TestPauseCutsOneShotShort(t *testing.T) {
	p := newTestPlayer(t, 1)
	ended := false
	p.OnEnd(dial.ClipAlarm, func() { ended = true })
	p.Play(dial.ClipAlarm)
	p.Pause(dial.ClipAlarm)
	drain(p, 50*time.Millisecond)
	if !ended {
		t.Fatalf("cut alarm should report its end")
	}
	if p.IsPlaying(dial.ClipAlarm) {
		t.Fatalf("cut alarm should not be playing")
	}
}

func TestOverlappingWindingEndsAfterLast(t *testing.T) {
	p := newTestPlayer(t, 1)
	ended := 0
	p.OnEnd(dial.ClipWinding, func() { ended++ })
	p.Play(dial.ClipWinding)
	drain(p, config.WindingClipLength/2)
	p.Play(dial.ClipWinding)
	drain(p, config.WindingClipLength*3/4)
	if ended != 0 {
		t.Fatalf("second click still playing, got %d ends", ended)
	}
	drain(p, config.WindingClipLength)
	if ended != 1 {
		t.Fatalf("expected one end after both clicks, got %d", ended)
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	p := newTestPlayer(t, 0)
	p.Play(dial.ClipTicking)
	p.Play(dial.ClipWinding)
	if drain(p, config.TickingPeriod) {
		t.Fatalf("zero volume must be silent")
	}
}

func TestDurations(t *testing.T) {
	p := newTestPlayer(t, 1)
	if p.Duration(dial.ClipAlarm) != config.AlarmClipLength {
		t.Fatalf("unexpected alarm length %v", p.Duration(dial.ClipAlarm))
	}
	if p.Duration(dial.Clip(99)) != 0 {
		t.Fatalf("unknown clip should have no length")
	}
}

func TestOpErrorUnwraps(t *testing.T) {
	err := error(&OpError{Op: "init", Err: fmt.Errorf("%w: no device", ErrUnavailable)})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable in chain")
	}
	if err.Error() != "init audio: audio output unavailable: no device" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	clipErr := &OpError{Op: "play", Clip: dial.ClipAlarm.String(), Err: ErrUnavailable}
	if clipErr.Error() != "play alarm clip: audio output unavailable" {
		t.Fatalf("unexpected message %q", clipErr.Error())
	}
}
