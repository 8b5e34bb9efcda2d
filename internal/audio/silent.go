package audio

import (
	"sync"
	"time"

	"github.com/akyairhashvil/eggtimer/internal/dial"
)

// Silent keeps clip timing without producing sound. It is used when muted
// or when no audio device is available, so the alarm still ends on time.
type Silent struct {
	after func(time.Duration, func())

	mu      sync.Mutex
	playing map[dial.Clip]int
	onEnd   map[dial.Clip]func()
	seq     map[dial.Clip]int
	cut     map[dial.Clip]int // timers up to this seq were cancelled by Pause
}

var _ dial.Audio = (*Silent)(nil)

func NewSilent() *Silent {
	return newSilent(func(d time.Duration, f func()) { time.AfterFunc(d, f) })
}

func newSilent(after func(time.Duration, func())) *Silent {
	return &Silent{
		after:   after,
		playing: make(map[dial.Clip]int),
		onEnd:   make(map[dial.Clip]func()),
		seq:     make(map[dial.Clip]int),
		cut:     make(map[dial.Clip]int),
	}
}

func (s *Silent) Play(clip dial.Clip) {
	s.mu.Lock()
	if clip == dial.ClipTicking {
		s.playing[clip] = 1
		s.mu.Unlock()
		return
	}
	s.playing[clip]++
	s.seq[clip]++
	id := s.seq[clip]
	s.mu.Unlock()
	s.after(s.Duration(clip), func() { s.finished(clip, id) })
}

func (s *Silent) Pause(clip dial.Clip) {
	s.mu.Lock()
	if clip == dial.ClipTicking {
		s.playing[clip] = 0
		s.mu.Unlock()
		return
	}
	s.cut[clip] = s.seq[clip]
	s.playing[clip] = 0
	fn := s.onEnd[clip]
	delete(s.onEnd, clip)
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (s *Silent) IsPlaying(clip dial.Clip) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing[clip] > 0
}

func (s *Silent) Duration(clip dial.Clip) time.Duration { return clipLength(clip) }

func (s *Silent) OnEnd(clip dial.Clip, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEnd[clip] = fn
}

func (s *Silent) finished(clip dial.Clip, id int) {
	s.mu.Lock()
	if s.playing[clip] == 0 || id <= s.cut[clip] {
		s.mu.Unlock()
		return
	}
	s.playing[clip]--
	var fn func()
	if s.playing[clip] == 0 {
		fn = s.onEnd[clip]
		delete(s.onEnd, clip)
	}
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}
