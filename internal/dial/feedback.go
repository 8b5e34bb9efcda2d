package dial

//go:generate mockgen -destination=../mocks/mock_dial.go -package=mocks github.com/akyairhashvil/eggtimer/internal/dial Audio,Haptics

import "time"

// Clip identifies one of the widget's sound clips.
type Clip int

const (
	ClipWinding Clip = iota // short, fire-and-forget
	ClipAlarm               // finite, completion-signalled
	ClipTicking             // looping, paused and resumed
)

func (c Clip) String() string {
	switch c {
	case ClipWinding:
		return "winding"
	case ClipAlarm:
		return "alarm"
	case ClipTicking:
		return "ticking"
	default:
		return "unknown"
	}
}

// Audio is the sound player the controller drives.
// OnEnd callbacks may run on any goroutine and fire at most once.
type Audio interface {
	Play(clip Clip)
	Pause(clip Clip)
	IsPlaying(clip Clip) bool
	Duration(clip Clip) time.Duration
	OnEnd(clip Clip, fn func())
}

// Haptics produces a vibration pulse. A nil Haptics means the platform has none.
type Haptics interface {
	Vibrate(d time.Duration)
}

// nopAudio stands in when no player is supplied. It ends clips immediately.
type nopAudio struct{}

func (nopAudio) Play(Clip)                   {}
func (nopAudio) Pause(Clip)                  {}
func (nopAudio) IsPlaying(Clip) bool         { return false }
func (nopAudio) Duration(Clip) time.Duration { return 0 }
func (nopAudio) OnEnd(_ Clip, fn func())     { fn() }
