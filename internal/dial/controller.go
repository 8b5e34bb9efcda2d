// Package dial holds the egg timer's state machine: rotation, countdown,
// drag gestures and widget visibility. It knows nothing about terminals or
// event sources; adapters call its transition methods from a single loop.
package dial

import (
	"fmt"
	"math"
	"time"

	"github.com/akyairhashvil/eggtimer/internal/config"
)

// State is the countdown engine's state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateRinging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateRinging:
		return "ringing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Button is the control surface.
type Button struct {
	Label    string
	Disabled bool
	Stopping bool // "stop" styling while a countdown is active
}

type drag struct {
	startX   float64
	baseline float64
	paused   bool // countdown was paused by this gesture
}

// Controller owns all widget state. It is not safe for concurrent use.
type Controller struct {
	audio   Audio
	haptics Haptics

	state    State
	rotation float64 // raw; may leave the dial range during a drag
	shown    float64 // rotation behind the time text
	offset   float64
	lastSnap float64

	open         bool
	outsideArmed bool
	closePending bool

	button Button
	gen    uint64
	drag   *drag

	alarmDone chan struct{}
}

// New returns an idle, closed controller at zero. A nil audio plays nothing
// and ends clips at once; a nil haptics skips vibration.
func New(audio Audio, haptics Haptics) *Controller {
	if audio == nil {
		audio = nopAudio{}
	}
	return &Controller{
		audio:   audio,
		haptics: haptics,
		button:  Button{Label: config.LabelStart, Disabled: true},
	}
}

func (c *Controller) State() State      { return c.state }
func (c *Controller) IsOpen() bool      { return c.open }
func (c *Controller) Ringing() bool     { return c.state == StateRinging }
func (c *Controller) Dragging() bool    { return c.drag != nil }
func (c *Controller) Rotation() float64 { return c.rotation }
func (c *Controller) Offset() float64   { return c.offset }
func (c *Controller) Button() Button    { return c.button }

// Adjusted is the current rotation snapped and clamped for logic and display.
func (c *Controller) Adjusted() float64 { return Adjust(c.rotation) }

// TimeText is the formatted remaining time.
func (c *Controller) TimeText() string { return Format(c.shown) }

// Remaining is the time behind TimeText.
func (c *Controller) Remaining() time.Duration {
	return time.Duration(Seconds(c.shown)) * time.Second
}

// Generation identifies the live periodic tick. It changes whenever the
// tick is cancelled or restarted.
func (c *Controller) Generation() uint64 { return c.gen }

// AlarmDone is closed when the alarm clip of the current ring finishes.
// It is nil unless the controller is ringing.
func (c *Controller) AlarmDone() <-chan struct{} { return c.alarmDone }

// Set places the dial at rotation while no countdown is active.
func (c *Controller) Set(rotation float64) {
	if c.countdownActive() || c.state == StateRinging || c.drag != nil {
		return
	}
	c.setRotation(Adjust(rotation))
	c.shown = c.rotation
	c.button.Disabled = c.rotation >= 0
}

func (c *Controller) countdownActive() bool {
	return c.state == StateRunning || c.state == StatePaused
}

func (c *Controller) setRotation(r float64) {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		panic(fmt.Sprintf("dial: invalid rotation %v", r))
	}
	c.rotation = r
}

func (c *Controller) vibrate(d time.Duration) {
	if c.haptics != nil {
		c.haptics.Vibrate(d)
	}
}
