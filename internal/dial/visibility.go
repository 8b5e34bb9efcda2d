package dial

// Open shows the dial and arms the outside-click listener.
func (c *Controller) Open() {
	if c.open || c.state == StateRinging {
		return
	}
	c.open = true
	c.outsideArmed = true
}

// Close hides the dial; a later click on the egg opens it again.
func (c *Controller) Close() {
	if !c.open {
		return
	}
	c.open = false
	c.outsideArmed = false
	c.closePending = false
}

// OutsidePress records a press outside the dial and button. The widget
// closes if the matching release also lands outside.
func (c *Controller) OutsidePress() {
	if !c.outsideArmed || c.state == StateRinging {
		return
	}
	c.closePending = true
}

// PointerRelease consumes the one-shot release listener armed by
// OutsidePress.
func (c *Controller) PointerRelease(outside bool) {
	if !c.closePending {
		return
	}
	c.closePending = false
	if outside && c.state != StateRinging {
		c.Close()
	}
}
