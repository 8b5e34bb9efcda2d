package config

// Layout constants.
const (
	// PixelsPerCell maps one terminal column of mouse travel to drag pixels.
	PixelsPerCell = 4.0

	// DialWidth is the width of the open dial face in cells.
	DialWidth = 41

	// ClosedWidth is the width of the closed egg in cells.
	ClosedWidth = 13

	// ProgressWidth is the width of the hour progress bar.
	ProgressWidth = 33

	// RulerCellsPerMinute is how many ruler cells one minute occupies.
	RulerCellsPerMinute = 3
)

// Display.
const (
	// ShakeAmplitude is the column offset applied while a haptic pulse is active.
	ShakeAmplitude = 1

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
