package dial

import (
	"math"
	"sync"

	"github.com/akyairhashvil/eggtimer/internal/config"
)

// TickResult reports what a tick did.
type TickResult int

const (
	TickStale   TickResult = iota // cancelled or superseded; nothing changed
	TickApplied                   // one second elapsed; schedule the next tick
	TickRang                      // countdown finished; no further ticks
)

// Toggle is a click on the control.
func (c *Controller) Toggle() {
	if c.button.Disabled {
		return
	}
	if c.countdownActive() {
		c.Stop()
		return
	}
	c.Start()
}

// Start begins a countdown from the current rotation.
func (c *Controller) Start() {
	if c.state != StateIdle || Adjust(c.rotation) >= 0 {
		return
	}
	c.resume()
	c.button.Label = config.LabelStop
	c.button.Stopping = true
}

// Resume restarts a paused countdown without touching the rotation.
func (c *Controller) Resume() {
	if c.state != StatePaused {
		return
	}
	c.resume()
}

func (c *Controller) resume() {
	c.gen++
	c.state = StateRunning
	c.audio.Play(ClipTicking)
}

// Pause suspends a running countdown, keeping the rotation.
func (c *Controller) Pause() {
	if c.state != StateRunning {
		return
	}
	c.gen++
	c.state = StatePaused
	c.audio.Pause(ClipTicking)
}

// Stop ends an active countdown and resets the control.
func (c *Controller) Stop() {
	if !c.countdownActive() {
		return
	}
	c.gen++
	c.state = StateIdle
	c.audio.Pause(ClipTicking)
	c.button.Label = config.LabelStart
	c.button.Stopping = false
}

// Tick advances a running countdown by one second. Ticks from an earlier
// generation are ignored.
func (c *Controller) Tick(gen uint64) TickResult {
	if c.state != StateRunning || gen != c.gen {
		return TickStale
	}
	next := c.rotation + config.SecondDegrees
	if next >= 0 {
		c.ring()
		return TickRang
	}
	c.setRotation(math.Round(next*10) / 10)
	c.shown = c.rotation
	c.offset += config.OffsetPerTick
	return TickApplied
}

func (c *Controller) ring() {
	c.setRotation(0)
	c.shown = 0
	c.Stop()
	c.state = StateRinging
	c.button.Disabled = true

	done := make(chan struct{})
	var once sync.Once
	c.alarmDone = done
	c.audio.OnEnd(ClipAlarm, func() { once.Do(func() { close(done) }) })
	c.audio.Play(ClipAlarm)
	c.vibrate(c.audio.Duration(ClipAlarm))
}

// AlarmEnded leaves the ringing state once the alarm clip has finished.
func (c *Controller) AlarmEnded() {
	if c.state != StateRinging {
		return
	}
	c.state = StateIdle
	c.alarmDone = nil
	// Idle at zero has nothing to count, so the control stays disabled.
	c.button.Disabled = Adjust(c.rotation) >= 0
}
