package config

import "time"

// Dial geometry.
const (
	MinuteDegrees = 6.0
	SecondDegrees = MinuteDegrees / 60
	MinRotation   = -360.0
	MaxRotation   = 0.0

	// DragPixelsPerDegree converts horizontal drag distance into rotation.
	DragPixelsPerDegree = 2.0
)

// Background texture.
const (
	OffsetPerTick = 12.0 / 10
	OffsetSnap    = 12.0
	OffsetWrap    = 720.0
)

// Timer cadence and feedback.
const (
	TickInterval      = time.Second
	WindingVibration  = 50 * time.Millisecond
	WindingClipLength = 120 * time.Millisecond
	AlarmClipLength   = 4 * time.Second
	TickingPeriod     = time.Second
)

// Control labels.
const (
	LabelStart = "Start"
	LabelStop  = "Stop"
)

// Application settings.
const (
	AppName      = "eggtimer"
	LogFileName  = "debug.log"
	DefaultTheme = "default"
)
