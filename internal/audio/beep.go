package audio

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// BeepSink plays buffers through the system speaker using beep.
type BeepSink struct {
	sampleRate beep.SampleRate
	musicGain  float64
	sfxGain    float64

	mu      sync.Mutex
	music   *beep.Ctrl
	gen     uint64
	playing atomic.Bool
}

// BeepOptions configures the speaker.
type BeepOptions struct {
	SampleRate  int
	Buffer      time.Duration // speaker latency, 100ms if zero
	MusicVolume float64       // linear gain in [0, 1]
	SFXVolume   float64
}

// NewBeepSink opens the default output device. The returned error wraps
// ErrNoDevice when the speaker cannot be initialized.
func NewBeepSink(opts BeepOptions) (*BeepSink, error) {
	if opts.SampleRate <= 0 {
		opts.SampleRate = DefaultSampleRate
	}
	if opts.Buffer <= 0 {
		opts.Buffer = 100 * time.Millisecond
	}

	sr := beep.SampleRate(opts.SampleRate)
	if err := speaker.Init(sr, sr.N(opts.Buffer)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDevice, err)
	}
	return &BeepSink{
		sampleRate: sr,
		musicGain:  opts.MusicVolume,
		sfxGain:    opts.SFXVolume,
	}, nil
}

// withGain wraps s in a volume effect. Gain is linear; beep expects an exponent.
func withGain(s beep.Streamer, gain float64) beep.Streamer {
	if gain >= 1 {
		return s
	}
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// resampled converts buf to the speaker rate when they differ.
func (b *BeepSink) resampled(buf PCM) beep.Streamer {
	src := beep.SampleRate(buf.SampleRate)
	if src == b.sampleRate {
		return buf.Streamer()
	}
	return beep.Resample(4, src, b.sampleRate, buf.Streamer())
}

// PlayMusic implements Sink.
func (b *BeepSink) PlayMusic(buf PCM, loop bool) error {
	b.StopMusic()
	if buf.Empty() {
		return nil
	}

	var s beep.Streamer
	if loop {
		s = beep.Loop(-1, buf.Streamer())
		if buf.SampleRate != int(b.sampleRate) {
			s = beep.Resample(4, beep.SampleRate(buf.SampleRate), b.sampleRate, s)
		}
	} else {
		s = b.resampled(buf)
	}

	b.mu.Lock()
	gen := b.gen
	b.mu.Unlock()

	done := beep.Callback(func() {
		b.mu.Lock()
		if b.gen == gen {
			b.playing.Store(false)
		}
		b.mu.Unlock()
	})
	ctrl := &beep.Ctrl{Streamer: beep.Seq(withGain(s, b.musicGain), done)}

	b.mu.Lock()
	b.music = ctrl
	b.mu.Unlock()

	b.playing.Store(true)
	speaker.Play(ctrl)
	return nil
}

// StopMusic implements Sink.
func (b *BeepSink) StopMusic() {
	b.mu.Lock()
	b.gen++
	ctrl := b.music
	b.music = nil
	b.mu.Unlock()

	if ctrl != nil {
		speaker.Lock()
		ctrl.Streamer = nil
		speaker.Unlock()
	}
	b.playing.Store(false)
}

// MusicPlaying implements Sink.
func (b *BeepSink) MusicPlaying() bool {
	return b.playing.Load()
}

// PlayEffect implements Sink.
func (b *BeepSink) PlayEffect(buf PCM) error {
	if buf.Empty() {
		return nil
	}
	speaker.Play(withGain(b.resampled(buf), b.sfxGain))
	return nil
}

// Close stops all sound and releases the device.
func (b *BeepSink) Close() error {
	b.StopMusic()
	speaker.Clear()
	speaker.Close()
	return nil
}
