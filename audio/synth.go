package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer of duration at freq
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1
			if o.phase < 0.5 {
				val = 1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s over duration with the given attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, att),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := e.gain()
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) gain() float64 {
	switch {
	case e.attack > 0 && e.position < e.attack:
		return float64(e.position) / float64(e.attack)
	case e.release > 0 && e.position >= e.releaseStart:
		return max(float64(e.total-e.position)/float64(e.release), 0)
	}
	return 1
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or negative volume is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d, att, rel time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, att, rel, rate)
}

// NewCueStreamer builds the streamer for cue at volume
func NewCueStreamer(cue Cue, volume float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case CueDrop:
		// Rising two-note chime, E5 then A5
		s = beep.Seq(
			tone(659.25, dropNoteDuration, dropAttack, dropRelease, WaveSine, rate),
			tone(880.00, dropNoteDuration, dropAttack, dropRelease, WaveSine, rate),
		)
	case CueDropFail:
		s = tone(110, failDuration, failAttack, failRelease, WaveSaw, rate)
	case CueSplit:
		s = tone(1320, tickDuration, tickAttack, tickRelease, WaveSquare, rate)
	case CueCollapse:
		// Short noise swoosh, kept quieter than the tonal cues
		s = newVolume(tone(0, collapseDuration, collapseAttack, collapseRelease, WaveNoise, rate), 0.4)
	default:
		return nil
	}
	return newVolume(s, volume)
}
