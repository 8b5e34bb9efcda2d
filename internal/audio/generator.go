package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// partial is one sine component of a tone.
type partial struct {
	freq float64
	amp  float64
}

var (
	bellPartials = []partial{{1760, 0.5}, {2640, 0.3}, {3520, 0.2}}
	knockPartial = partial{180, 0.25}
	tickPartial  = partial{2400, 0.3}
	tockPartial  = partial{1800, 0.3}
)

const (
	strikeLength  = 125 * time.Millisecond
	strikesPerRun = 4 // then one strike's worth of rest
	beatLength    = 30 * time.Millisecond
	noiseAmp      = 0.35
	bellAmp       = 0.6
)

// tone mixes sine partials, each scaled to its amplitude.
func tone(sr beep.SampleRate, parts ...partial) (beep.Streamer, error) {
	streams := make([]beep.Streamer, 0, len(parts))
	for _, p := range parts {
		s, err := generators.SineTone(sr, p.freq)
		if err != nil {
			return nil, fmt.Errorf("%.0f Hz tone: %w", p.freq, err)
		}
		streams = append(streams, &effects.Gain{Streamer: s, Gain: p.amp - 1})
	}
	return beep.Mix(streams...), nil
}

// decay applies an exponential envelope, e^(-rate*t), to a streamer.
type decay struct {
	s    beep.Streamer
	sr   beep.SampleRate
	rate float64
	pos  int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.s.Stream(samples)
	for i := range samples[:n] {
		env := math.Exp(-d.rate * float64(d.pos) / float64(d.sr))
		samples[i][0] *= env
		samples[i][1] *= env
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.s.Err() }

// noise is endless white noise from a fixed-seed LCG, so clips are
// reproducible.
func noise(amp float64) beep.Streamer {
	seed := int64(0x2545F491)
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			seed = (seed*1103515245 + 12345) & 0x7fffffff
			v := amp * (float64(seed)/float64(0x7fffffff)*2 - 1)
			samples[i][0] = v
			samples[i][1] = v
		}
		return len(samples), true
	})
}

// newClick is the winding ratchet: a burst of decaying noise over a low
// knock.
func newClick(sr beep.SampleRate, length time.Duration) (beep.Streamer, error) {
	knock, err := tone(sr, knockPartial)
	if err != nil {
		return nil, err
	}
	body := beep.Mix(noise(noiseAmp), knock)
	return beep.Take(sr.N(length), &decay{s: body, sr: sr, rate: 40}), nil
}

// newBell is the alarm: a bright bell struck in runs of four.
func newBell(sr beep.SampleRate, length time.Duration) (beep.Streamer, error) {
	if _, err := tone(sr, bellPartials...); err != nil {
		return nil, err
	}
	strikeN := sr.N(strikeLength)
	hit := 0
	strikes := beep.Iterate(func() beep.Streamer {
		defer func() { hit++ }()
		if hit%(strikesPerRun+1) == strikesPerRun {
			return generators.Silence(strikeN)
		}
		ring, err := tone(sr, bellPartials...)
		if err != nil {
			return nil
		}
		return beep.Take(strikeN, &decay{s: ring, sr: sr, rate: 18})
	})
	return beep.Take(sr.N(length), &effects.Gain{Streamer: strikes, Gain: bellAmp - 1}), nil
}

// newTickLoop is the clockwork loop: a tick and a lower tock, one per
// period, forever.
func newTickLoop(sr beep.SampleRate, period time.Duration) (beep.Streamer, error) {
	if _, err := tone(sr, tickPartial, tockPartial); err != nil {
		return nil, err
	}
	beatN := sr.N(beatLength)
	restN := sr.N(period) - beatN
	beat := 0
	return beep.Iterate(func() beep.Streamer {
		p := tickPartial
		if beat%2 == 1 {
			p = tockPartial
		}
		beat++
		s, err := tone(sr, p)
		if err != nil {
			return nil
		}
		return beep.Seq(
			beep.Take(beatN, &decay{s: s, sr: sr, rate: 150}),
			generators.Silence(restN),
		)
	}), nil
}
