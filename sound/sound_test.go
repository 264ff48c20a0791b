package sound_test

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/colorcolumns/engine"
	"github.com/plus3/colorcolumns/input"
	"github.com/plus3/colorcolumns/playing"
	"github.com/plus3/colorcolumns/sound"
)

type recordingSink struct {
	streams []beep.Streamer
}

func (s *recordingSink) Play(st beep.Streamer) {
	s.streams = append(s.streams, st)
}

type fixedCues struct {
	cues playing.Cue
}

func (f *fixedCues) Cues() playing.Cue { return f.cues }

func drain(t *testing.T, st beep.Streamer) (n int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for range 10000 {
		k, ok := st.Stream(buf)
		for _, s := range buf[:k] {
			peak = max(peak, s[0], -s[0])
		}
		n += k
		if !ok {
			return n, peak
		}
	}
	t.Fatal("stream never ended")
	return
}

func TestToneLength(t *testing.T) {
	for _, wave := range []sound.Wave{sound.Sine, sound.Square, sound.Saw} {
		tone := sound.Tone{Freq: 440, Duration: 100 * time.Millisecond, Wave: wave, Volume: 0.5}
		st, err := tone.Streamer(sound.SampleRate)
		require.NoError(t, err)

		n, peak := drain(t, st)
		assert.Equal(t, sound.SampleRate.N(100*time.Millisecond), n)
		assert.Greater(t, peak, 0.0)
		assert.LessOrEqual(t, peak, 0.5+1e-9)
	}
}

func TestToneDelay(t *testing.T) {
	tone := sound.Tone{Freq: 440, Duration: 50 * time.Millisecond, Volume: 1, Delay: 20 * time.Millisecond}
	st, err := tone.Streamer(sound.SampleRate)
	require.NoError(t, err)

	n, _ := drain(t, st)
	assert.Equal(t, sound.SampleRate.N(50*time.Millisecond)+sound.SampleRate.N(20*time.Millisecond), n)
}

func TestToneAboveNyquist(t *testing.T) {
	_, err := sound.Tone{Freq: 30000, Duration: time.Millisecond, Volume: 1}.Streamer(sound.SampleRate)
	assert.Error(t, err)
}

func TestPlayerPicksHighestPriorityCue(t *testing.T) {
	sink := &recordingSink{}
	source := &fixedCues{}
	player := &sound.Player{Source: source, Sink: sink}

	scheduler := engine.NewScheduler()
	scheduler.Register(player)

	scheduler.Once(1.0/60, input.None)
	assert.Empty(t, sink.streams)

	source.cues = playing.CueCargoLanded | playing.CueGameOver
	scheduler.Once(1.0/60, input.None)
	require.Len(t, sink.streams, 1)

	n, _ := drain(t, sink.streams[0])
	assert.Equal(t, sound.SampleRate.N(360*time.Millisecond)+sound.SampleRate.N(360*time.Millisecond), n)

	source.cues = playing.CueCargoSpawned
	scheduler.Once(1.0/60, input.None)
	assert.Len(t, sink.streams, 1)
	assert.Equal(t, 1, player.Played())
}

func TestMutedPlayer(t *testing.T) {
	sink := &recordingSink{}
	player := &sound.Player{Source: &fixedCues{cues: playing.CueCleared}, Sink: sink, Muted: true}

	scheduler := engine.NewScheduler()
	scheduler.Register(player)
	scheduler.Once(1.0/60, input.None)
	assert.Empty(t, sink.streams)
}

func TestUninitializedSpeakerDropsStreams(t *testing.T) {
	s := sound.NewSpeaker()
	s.Play(beep.Silence(10))
	s.Close()
}
