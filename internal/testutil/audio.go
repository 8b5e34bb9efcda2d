package testutil

import (
	"sync"
	"time"

	"github.com/akyairhashvil/eggtimer/internal/dial"
)

// FakeAudio records clip activity and lets tests end the alarm on demand.
type FakeAudio struct {
	mu      sync.Mutex
	plays   map[dial.Clip]int
	pauses  map[dial.Clip]int
	playing map[dial.Clip]bool
	onEnd   map[dial.Clip]func()
	Lengths map[dial.Clip]time.Duration
}

func NewFakeAudio() *FakeAudio {
	return &FakeAudio{
		plays:   make(map[dial.Clip]int),
		pauses:  make(map[dial.Clip]int),
		playing: make(map[dial.Clip]bool),
		onEnd:   make(map[dial.Clip]func()),
		Lengths: map[dial.Clip]time.Duration{dial.ClipAlarm: 3 * time.Second},
	}
}

func (f *FakeAudio) Play(clip dial.Clip) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.plays[clip]++
	f.playing[clip] = true
}

func (f *FakeAudio) Pause(clip dial.Clip) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pauses[clip]++
	f.playing[clip] = false
}

func (f *FakeAudio) IsPlaying(clip dial.Clip) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.playing[clip]
}

func (f *FakeAudio) Duration(clip dial.Clip) time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Lengths[clip]
}

func (f *FakeAudio) OnEnd(clip dial.Clip, fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onEnd[clip] = fn
}

// Finish ends clip as if playback ran out, firing its end callback once.
func (f *FakeAudio) Finish(clip dial.Clip) {
	f.mu.Lock()
	fn := f.onEnd[clip]
	delete(f.onEnd, clip)
	f.playing[clip] = false
	f.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (f *FakeAudio) Plays(clip dial.Clip) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.plays[clip]
}

func (f *FakeAudio) Pauses(clip dial.Clip) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pauses[clip]
}

// FakeHaptics records vibration requests.
type FakeHaptics struct {
	mu     sync.Mutex
	Pulses []time.Duration
}

func (f *FakeHaptics) Vibrate(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Pulses = append(f.Pulses, d)
}

func (f *FakeHaptics) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Pulses)
}
