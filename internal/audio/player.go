// Package audio plays the egg timer's clips. Clips are synthesised with
// beep and mixed into a single speaker stream.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/akyairhashvil/eggtimer/internal/config"
	"github.com/akyairhashvil/eggtimer/internal/dial"
	"github.com/akyairhashvil/eggtimer/internal/util"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player implements dial.Audio on top of a beep mixer.
//
// End callbacks run on the speaker goroutine while it holds the speaker
// lock, so p.mu is never held across lock/unlock.
type Player struct {
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	lock   func()
	unlock func()

	ticking *beep.Ctrl

	mu        sync.Mutex
	tickingOn bool
	active    map[dial.Clip][]*beep.Ctrl
	onEnd     map[dial.Clip]func()
}

var _ dial.Audio = (*Player)(nil)

func newPlayer(rate beep.SampleRate, volume float64, lock, unlock func()) (*Player, error) {
	loop, err := newTickLoop(rate, config.TickingPeriod)
	if err != nil {
		return nil, &OpError{Op: "load", Clip: dial.ClipTicking.String(), Err: err}
	}
	p := &Player{
		rate:   rate,
		volume: volume,
		mixer:  &beep.Mixer{},
		lock:   lock,
		unlock: unlock,
		active: make(map[dial.Clip][]*beep.Ctrl),
		onEnd:  make(map[dial.Clip]func()),
	}
	p.ticking = &beep.Ctrl{Streamer: loop, Paused: true}
	p.mixer.Add(p.gain(p.ticking))
	return p, nil
}

// Open initialises the speaker and starts the mixer.
func Open(volume float64) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, &OpError{Op: "init", Err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}
	p, err := newPlayer(sampleRate, volume, speaker.Lock, speaker.Unlock)
	if err != nil {
		speaker.Close()
		return nil, err
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Close silences everything and releases the speaker.
func (p *Player) Close() {
	p.lock()
	p.mixer.Clear()
	p.unlock()
	speaker.Close()
}

func (p *Player) Play(clip dial.Clip) {
	if clip == dial.ClipTicking {
		p.lock()
		p.ticking.Paused = false
		p.unlock()
		p.mu.Lock()
		p.tickingOn = true
		p.mu.Unlock()
		return
	}

	src, err := p.source(clip)
	if err != nil {
		util.LogError("audio", &OpError{Op: "play", Clip: clip.String(), Err: err})
		return
	}
	ctrl := &beep.Ctrl{Streamer: src}
	p.mu.Lock()
	p.active[clip] = append(p.active[clip], ctrl)
	p.mu.Unlock()

	stream := beep.Seq(ctrl, beep.Callback(func() { p.finished(clip, ctrl) }))
	p.lock()
	p.mixer.Add(p.gain(stream))
	p.unlock()
}

// Pause holds the ticking loop. One-shot clips cannot be held; pausing one
// cuts it short, which counts as its end.
func (p *Player) Pause(clip dial.Clip) {
	if clip == dial.ClipTicking {
		p.lock()
		p.ticking.Paused = true
		p.unlock()
		p.mu.Lock()
		p.tickingOn = false
		p.mu.Unlock()
		return
	}

	p.mu.Lock()
	ctrls := append([]*beep.Ctrl(nil), p.active[clip]...)
	p.mu.Unlock()
	p.lock()
	for _, c := range ctrls {
		c.Streamer = nil
	}
	p.unlock()
}

func (p *Player) IsPlaying(clip dial.Clip) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if clip == dial.ClipTicking {
		return p.tickingOn
	}
	return len(p.active[clip]) > 0
}

func (p *Player) Duration(clip dial.Clip) time.Duration { return clipLength(clip) }

func clipLength(clip dial.Clip) time.Duration {
	switch clip {
	case dial.ClipWinding:
		return config.WindingClipLength
	case dial.ClipAlarm:
		return config.AlarmClipLength
	case dial.ClipTicking:
		return config.TickingPeriod
	default:
		return 0
	}
}

// OnEnd registers fn for the next time clip finishes.
func (p *Player) OnEnd(clip dial.Clip, fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onEnd[clip] = fn
}

func (p *Player) finished(clip dial.Clip, ctrl *beep.Ctrl) {
	p.mu.Lock()
	list := p.active[clip]
	for i, c := range list {
		if c == ctrl {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	p.active[clip] = list
	var fn func()
	if len(list) == 0 {
		fn = p.onEnd[clip]
		delete(p.onEnd, clip)
	}
	p.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (p *Player) source(clip dial.Clip) (beep.Streamer, error) {
	switch clip {
	case dial.ClipWinding:
		return newClick(p.rate, config.WindingClipLength)
	case dial.ClipAlarm:
		return newBell(p.rate, config.AlarmClipLength)
	default:
		return nil, fmt.Errorf("no source for %v", clip)
	}
}

// math.Log2(0) is -Inf, so zero volume is handled as silence.
func (p *Player) gain(s beep.Streamer) beep.Streamer {
	if p.volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(p.volume)}
}
