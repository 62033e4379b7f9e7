// Package audio renders the game's chiptune music and sound effects from note
// tables and hands the resulting PCM buffers to a platform mixer.
//
// Everything up to the Sink is pure: Synthesize and Sequence are deterministic
// (except for noise) and are run once at startup, so the tick loop only ever
// switches between cached buffers.
package audio

import (
	"math"
	"math/rand"
)

// DefaultSampleRate is the sample rate of every rendered buffer.
const DefaultSampleRate = 44100

// Waveform selects the oscillator shape used by Synthesize.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Sawtooth
	Noise
)

// String returns the waveform name as used in configuration files.
func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	case Noise:
		return "noise"
	default:
		return "unknown"
	}
}

// ParseWaveform maps a configuration name back to a Waveform.
// Unknown names fall back to Sine.
func ParseWaveform(name string) Waveform {
	switch name {
	case "square":
		return Square
	case "sawtooth":
		return Sawtooth
	case "noise":
		return Noise
	default:
		return Sine
	}
}

// SampleCount returns the number of samples a tone of the given length occupies.
func SampleCount(seconds float64, sampleRate int) int {
	if seconds <= 0 || sampleRate <= 0 {
		return 0
	}
	return int(math.Round(float64(sampleRate) * seconds))
}

// Synthesize renders one tone as samples in [-1, 1].
// A frequency of zero or less is a rest and yields silence of the same length.
// rng is only used by Noise; nil uses the global source.
func Synthesize(freq, seconds float64, kind Waveform, sampleRate int, rng *rand.Rand) []float64 {
	n := SampleCount(seconds, sampleRate)
	out := make([]float64, n)
	if freq <= 0 {
		return out
	}

	sr := float64(sampleRate)
	for i := range out {
		t := float64(i) / sr
		switch kind {
		case Square:
			out[i] = sign(math.Sin(2 * math.Pi * freq * t))
		case Sawtooth:
			ft := freq * t
			out[i] = 2 * (ft - math.Floor(ft+0.5))
		case Noise:
			if rng != nil {
				out[i] = rng.Float64()*2 - 1
			} else {
				out[i] = rand.Float64()*2 - 1
			}
		default:
			out[i] = math.Sin(2 * math.Pi * freq * t)
		}
	}
	return out
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
