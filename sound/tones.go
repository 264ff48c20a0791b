package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Saw
)

// Tone is a short synthesized note.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
	// Volume is linear, 1 being full scale.
	Volume float64
	// Delay postpones the note within its cue.
	Delay time.Duration
}

type oscillator struct {
	freq     float64
	phase    float64
	position int
	duration int
	wave     Wave
	rate     beep.SampleRate
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		if o.wave == Square {
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		} else {
			val = 2 * (o.phase - 0.5)
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

// release fades the last part of a stream out linearly.
type release struct {
	streamer beep.Streamer
	position int
	total    int
	fade     int
}

func (r *release) Stream(samples [][2]float64) (int, bool) {
	n, ok := r.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if left := r.total - r.position; left < r.fade {
			vol := float64(left) / float64(r.fade)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		r.position++
	}
	return n, ok
}

func (r *release) Err() error { return r.streamer.Err() }

// Streamer renders the tone at the given sample rate.
func (t Tone) Streamer(rate beep.SampleRate) (beep.Streamer, error) {
	n := rate.N(t.Duration)

	var src beep.Streamer
	switch t.Wave {
	case Sine:
		sine, err := generators.SineTone(rate, t.Freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.0fHz: %w", t.Freq, err)
		}
		src = beep.Take(n, sine)
	default:
		src = &oscillator{freq: t.Freq, duration: n, wave: t.Wave, rate: rate}
	}

	src = &release{streamer: src, total: n, fade: n / 4}
	src = volume(src, t.Volume)
	if t.Delay > 0 {
		src = beep.Seq(beep.Silence(rate.N(t.Delay)), src)
	}
	return src, nil
}

func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
