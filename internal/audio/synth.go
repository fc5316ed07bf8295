package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// oscillator generates a single tone for a fixed number of samples.
// A non-positive duration plays forever.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// Tone returns a raw waveform streamer.
func Tone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	n := 0
	if duration > 0 {
		n = rate.N(duration)
	}
	return &oscillator{freq: freq, duration: n, wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.duration > 0 && o.position >= o.duration {
			return i, i > 0
		}

		val := waveAt(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// waveAt evaluates one period of a wave at phase in [0, 1).
func waveAt(w WaveType, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope fades a finite stream in and out to avoid clicks.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// Shape applies a linear attack and release over a stream of the given length.
func Shape(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; e.release > 0 && left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// gain scales a stream linearly. Zero or less is silent.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is a shaped tone.
func note(freq float64, d time.Duration, wave WaveType, vol float64, rate beep.SampleRate) beep.Streamer {
	attack := d / 10
	release := d / 3
	return gain(Shape(Tone(freq, d, wave, rate), d, attack, release, rate), vol)
}

// Effect durations
const (
	catchDuration    = 120 * time.Millisecond
	hazardDuration   = 220 * time.Millisecond
	powerupNote      = 70 * time.Millisecond
	levelNote        = 110 * time.Millisecond
	gameOverNote     = 260 * time.Millisecond
	musicNoteLength  = 240 * time.Millisecond
	musicVolume      = 0.08
	effectBaseVolume = 0.35
)

// catchSound is a short bell: fundamental plus a quiet octave.
func catchSound(rate beep.SampleRate) beep.Streamer {
	return beep.Mix(
		note(880, catchDuration, WaveSine, effectBaseVolume, rate),
		note(1760, catchDuration, WaveSine, effectBaseVolume*0.4, rate),
	)
}

// hazardSound is a low saw buzz.
func hazardSound(rate beep.SampleRate) beep.Streamer {
	return note(110, hazardDuration, WaveSaw, effectBaseVolume*0.8, rate)
}

// powerupSound is a rising major arpeggio.
func powerupSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		note(523.25, powerupNote, WaveSquare, effectBaseVolume*0.5, rate),
		note(659.25, powerupNote, WaveSquare, effectBaseVolume*0.5, rate),
		note(783.99, powerupNote, WaveSquare, effectBaseVolume*0.5, rate),
		note(1046.5, powerupNote*2, WaveSquare, effectBaseVolume*0.5, rate),
	)
}

// levelSound is a two-note fanfare.
func levelSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		note(587.33, levelNote, WaveTriangle, effectBaseVolume, rate),
		note(880, levelNote*2, WaveTriangle, effectBaseVolume, rate),
	)
}

// gameOverSound is a falling minor line.
func gameOverSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		note(392, gameOverNote, WaveTriangle, effectBaseVolume, rate),
		note(311.13, gameOverNote, WaveTriangle, effectBaseVolume, rate),
		note(261.63, gameOverNote*2, WaveTriangle, effectBaseVolume, rate),
	)
}

// jungleRiff is the background loop, in Hz. Zero is a rest.
var jungleRiff = []float64{
	220, 261.63, 293.66, 0, 329.63, 293.66, 261.63, 0,
	196, 220, 261.63, 0, 293.66, 261.63, 220, 0,
}

// melody plays a note sequence forever.
type melody struct {
	notes   []float64
	rate    beep.SampleRate
	perNote int
	pos     int
	phase   float64
}

// Music returns the endless background loop.
func Music(rate beep.SampleRate) beep.Streamer {
	return gain(&melody{
		notes:   jungleRiff,
		rate:    rate,
		perNote: rate.N(musicNoteLength),
	}, musicVolume)
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (m.pos / m.perNote) % len(m.notes)
		within := m.pos % m.perNote
		freq := m.notes[idx]

		val := 0.0
		if freq > 0 {
			// Pluck: decay over the note so consecutive notes stay distinct.
			decay := 1 - float64(within)/float64(m.perNote)
			val = decay * waveAt(WaveTriangle, m.phase)
			m.phase += freq / float64(m.rate)
			m.phase -= math.Floor(m.phase)
		}

		samples[i][0] = val
		samples[i][1] = val
		m.pos++
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }
