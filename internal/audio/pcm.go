package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep/v2"
)

// PCM is an interleaved 16-bit stereo buffer: L, R, L, R, ...
type PCM struct {
	SampleRate int
	Samples    []int16
}

// Frames returns the number of stereo frames in the buffer.
func (p PCM) Frames() int {
	return len(p.Samples) / 2
}

// Duration returns the playback length of the buffer.
func (p PCM) Duration() time.Duration {
	if p.SampleRate <= 0 {
		return 0
	}
	return time.Duration(p.Frames()) * time.Second / time.Duration(p.SampleRate)
}

// Empty reports whether the buffer has no audio.
func (p PCM) Empty() bool {
	return len(p.Samples) == 0
}

// Format returns the beep format describing the buffer.
func (p PCM) Format() beep.Format {
	return beep.Format{SampleRate: beep.SampleRate(p.SampleRate), NumChannels: 2, Precision: 2}
}

// appendMono scales mono samples in [-1, 1] by volume and appends them to
// both channels.
func (p *PCM) appendMono(mono []float64, volume float64) {
	for _, v := range mono {
		s := int16(clip(v) * volume * math.MaxInt16)
		p.Samples = append(p.Samples, s, s)
	}
}

func clip(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// Streamer returns a fresh beep.StreamSeeker reading the buffer from the start.
func (p PCM) Streamer() beep.StreamSeeker {
	return &pcmStreamer{pcm: p}
}

// pcmStreamer adapts a PCM buffer to beep's float sample stream.
type pcmStreamer struct {
	pcm PCM
	pos int // frame index
}

func (s *pcmStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	frames := s.pcm.Frames()
	if s.pos >= frames {
		return 0, false
	}
	for n < len(samples) && s.pos < frames {
		samples[n][0] = float64(s.pcm.Samples[2*s.pos]) / math.MaxInt16
		samples[n][1] = float64(s.pcm.Samples[2*s.pos+1]) / math.MaxInt16
		s.pos++
		n++
	}
	return n, true
}

func (s *pcmStreamer) Err() error {
	return nil
}

func (s *pcmStreamer) Len() int {
	return s.pcm.Frames()
}

func (s *pcmStreamer) Position() int {
	return s.pos
}

func (s *pcmStreamer) Seek(p int) error {
	if p < 0 || p > s.pcm.Frames() {
		return fmt.Errorf("audio: seek to frame %d out of range [0, %d]", p, s.pcm.Frames())
	}
	s.pos = p
	return nil
}
