// Package sound plays short synthesized cues for game events.
package sound

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/plus3/colorcolumns/engine"
	"github.com/plus3/colorcolumns/playing"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

// Cues lists what is played for each game cue, highest priority first. At most one
// cue sounds per tick.
var Cues = []struct {
	Cue   playing.Cue
	Tones []Tone
}{
	{playing.CueGameOver, []Tone{
		{Freq: 392, Duration: 180 * time.Millisecond, Wave: Square, Volume: 0.2},
		{Freq: 330, Duration: 180 * time.Millisecond, Wave: Square, Volume: 0.2, Delay: 180 * time.Millisecond},
		{Freq: 262, Duration: 360 * time.Millisecond, Wave: Square, Volume: 0.2, Delay: 360 * time.Millisecond},
	}},
	{playing.CueNewHighscore, []Tone{
		{Freq: 784, Duration: 120 * time.Millisecond, Volume: 0.4},
		{Freq: 1047, Duration: 200 * time.Millisecond, Volume: 0.4, Delay: 120 * time.Millisecond},
	}},
	{playing.CueChain, []Tone{
		{Freq: 660, Duration: 90 * time.Millisecond, Volume: 0.4},
		{Freq: 880, Duration: 120 * time.Millisecond, Volume: 0.4, Delay: 90 * time.Millisecond},
	}},
	{playing.CueCleared, []Tone{{Freq: 523, Duration: 150 * time.Millisecond, Volume: 0.4}}},
	{playing.CueMatch, []Tone{{Freq: 440, Duration: 60 * time.Millisecond, Volume: 0.3}}},
	{playing.CueMaxSpeed, []Tone{{Freq: 1200, Duration: 250 * time.Millisecond, Wave: Saw, Volume: 0.15}}},
	{playing.CueSpeedUp, []Tone{{Freq: 1000, Duration: 120 * time.Millisecond, Wave: Saw, Volume: 0.15}}},
	{playing.CueCargoLanded, []Tone{{Freq: 110, Duration: 50 * time.Millisecond, Wave: Square, Volume: 0.15}}},
	{playing.CuePaused, []Tone{{Freq: 220, Duration: 80 * time.Millisecond, Volume: 0.3}}},
	{playing.CueResumed, []Tone{{Freq: 330, Duration: 80 * time.Millisecond, Volume: 0.3}}},
}

// Sink receives rendered cues.
type Sink interface {
	Play(s beep.Streamer)
}

// CueSource reports what happened during the last tick.
type CueSource interface {
	Cues() playing.Cue
}

// Speaker plays through the default audio device. All streams share one mixer.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSpeaker() *Speaker {
	return &Speaker{mixer: &beep.Mixer{}}
}

// Init opens the audio device. The game runs silently when it fails.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

func (s *Speaker) Play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences everything still playing.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	s.initialized = false
}

// Player turns game cues into sounds. It runs after the stage director.
type Player struct {
	Source CueSource
	Sink   Sink
	Muted  bool
	Logger *slog.Logger

	played int
}

func (p *Player) Execute(frame *engine.Frame) {
	if p.Muted || p.Sink == nil {
		return
	}
	cues := p.Source.Cues()
	if cues == 0 {
		return
	}
	frame.Commands.Defer(func() { p.play(cues) })
}

func (p *Player) play(cues playing.Cue) {
	for _, c := range Cues {
		if !cues.Has(c.Cue) {
			continue
		}
		streamers := make([]beep.Streamer, 0, len(c.Tones))
		for _, t := range c.Tones {
			st, err := t.Streamer(SampleRate)
			if err != nil {
				if p.Logger != nil {
					p.Logger.Warn("cannot render tone", "error", err)
				}
				continue
			}
			streamers = append(streamers, st)
		}
		p.Sink.Play(beep.Mix(streamers...))
		p.played++
		return
	}
}

// Played returns how many cues were sent to the sink.
func (p *Player) Played() int {
	return p.played
}
