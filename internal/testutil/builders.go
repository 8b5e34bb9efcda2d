package testutil

import (
	"github.com/akyairhashvil/eggtimer/internal/dial"
)

// ControllerBuilder provides fluent API for creating test controllers.
type ControllerBuilder struct {
	audio    dial.Audio
	haptics  dial.Haptics
	rotation float64
	open     bool
	running  bool
}

func NewController() *ControllerBuilder {
	return &ControllerBuilder{}
}

func (b *ControllerBuilder) WithAudio(a dial.Audio) *ControllerBuilder {
	b.audio = a
	return b
}

func (b *ControllerBuilder) WithHaptics(h dial.Haptics) *ControllerBuilder {
	b.haptics = h
	return b
}

// WithMinutes sets the dial to the given number of minutes.
func (b *ControllerBuilder) WithMinutes(m int) *ControllerBuilder {
	b.rotation = -6 * float64(m)
	return b
}

func (b *ControllerBuilder) Opened() *ControllerBuilder {
	b.open = true
	return b
}

func (b *ControllerBuilder) Running() *ControllerBuilder {
	b.running = true
	return b
}

func (b *ControllerBuilder) Build() *dial.Controller {
	c := dial.New(b.audio, b.haptics)
	c.Set(b.rotation)
	if b.open {
		c.Open()
	}
	if b.running {
		c.Start()
	}
	return c
}
