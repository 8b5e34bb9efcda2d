package dial

import (
	"math"

	"github.com/akyairhashvil/eggtimer/internal/config"
	"github.com/akyairhashvil/eggtimer/internal/util"
)

// PointerDown starts a drag on the dial at horizontal position x.
// A running countdown is paused for the length of the gesture.
func (c *Controller) PointerDown(x float64) {
	if !c.open || c.state == StateRinging || c.drag != nil {
		return
	}
	d := &drag{startX: x, baseline: c.rotation}
	if c.state == StateRunning {
		c.Pause()
		d.paused = true
	}
	c.drag = d
}

// PointerMove follows the drag. The raw rotation is left unclamped so the
// face moves smoothly; the time text and control use the adjusted value.
func (c *Controller) PointerMove(x float64) {
	if c.drag == nil {
		return
	}
	delta := x - c.drag.startX
	c.setRotation(c.drag.baseline + delta/config.DragPixelsPerDegree)
	c.offset = delta

	adjusted := Adjust(c.rotation)
	c.shown = adjusted
	if !c.countdownActive() {
		c.button.Disabled = adjusted >= 0
	}
	if math.Abs(adjusted-c.lastSnap) >= config.MinuteDegrees {
		c.audio.Play(ClipWinding)
		c.vibrate(config.WindingVibration)
		c.lastSnap = adjusted
	}
}

// PointerUp ends the drag, snapping the dial to the nearest whole minute.
func (c *Controller) PointerUp() {
	if c.drag == nil {
		return
	}
	d := c.drag
	c.drag = nil
	if d.paused {
		c.Resume()
	}
	c.setRotation(Adjust(c.rotation))
	c.shown = c.rotation
	c.offset = snapOffset(c.offset)
}

func snapOffset(offset float64) float64 {
	snapped := util.Wrap(util.Snap(offset, config.OffsetSnap), config.OffsetWrap)
	if snapped == 0 {
		return 0
	}
	return snapped
}
