package audio

import "math"

// Note is one event of a track: a frequency (0 for a rest) held for a number of beats.
type Note struct {
	Freq  float64
	Beats float64
}

// Song is a set of note tracks rendered together. Melody and Bass are
// required; Percussion and Lead may be empty.
type Song struct {
	Melody     []Note
	Bass       []Note
	Percussion []Note
	Lead       []Note
	BPM        float64
	Volume     float64 // master volume in [0, 1]
}

// Beats returns the length of the song: the longest track wins.
func (s Song) Beats() float64 {
	longest := 0.0
	for _, tr := range [][]Note{s.Melody, s.Bass, s.Percussion, s.Lead} {
		longest = math.Max(longest, trackBeats(tr))
	}
	return longest
}

func trackBeats(notes []Note) float64 {
	total := 0.0
	for _, n := range notes {
		if n.Beats > 0 {
			total += n.Beats
		}
	}
	return total
}

// Exhausted tracks hold this rest so the step size stays bounded while the
// longer tracks finish.
const fillerBeats = 0.25

// Remaining durations at or below this are treated as finished, so sums of
// decimal beat values do not leave sliver steps behind.
const beatEpsilon = 1e-9

// voice describes how a track is played.
type voice struct {
	kind   Waveform
	weight float64
}

var (
	melodyVoice     = voice{kind: Sine, weight: 1.0}
	bassVoice       = voice{kind: Square, weight: 0.25}
	percussionVoice = voice{kind: Square, weight: 0.18}
	leadVoice       = voice{kind: Sine, weight: 0.18}
)

// track is the playback cursor over one note list.
type track struct {
	voice
	notes     []Note
	idx       int
	remaining float64
}

func newTrack(notes []Note, v voice) *track {
	t := &track{voice: v, notes: notes}
	t.seek(0)
	return t
}

// seek moves to note i, skipping notes without a positive length.
func (t *track) seek(i int) {
	for i < len(t.notes) && t.notes[i].Beats <= 0 {
		i++
	}
	t.idx = i
	if i < len(t.notes) {
		t.remaining = t.notes[i].Beats
	}
}

func (t *track) done() bool {
	return t.idx >= len(t.notes)
}

// stepBeats is the length this track allows for the next step.
func (t *track) stepBeats() float64 {
	if t.done() {
		return fillerBeats
	}
	return t.remaining
}

func (t *track) freq() float64 {
	if t.done() {
		return 0
	}
	return t.notes[t.idx].Freq
}

func (t *track) advance(beats float64) {
	if t.done() {
		return
	}
	t.remaining -= beats
	if t.remaining <= beatEpsilon {
		t.seek(t.idx + 1)
	}
}

// Sequence renders a song into a single interleaved 16-bit stereo buffer.
//
// All tracks advance in lock step. Each step lasts as long as the shortest
// note currently sounding, so notes of different lengths overlap correctly.
// Tracks with no notes take no part; tracks that finish early hold a short
// rest until the longest track ends.
func Sequence(song Song, sampleRate int) PCM {
	out := PCM{SampleRate: sampleRate}
	if song.BPM <= 0 || sampleRate <= 0 {
		return out
	}

	var tracks []*track
	for _, tr := range []struct {
		notes []Note
		v     voice
	}{
		{song.Melody, melodyVoice},
		{song.Bass, bassVoice},
		{song.Percussion, percussionVoice},
		{song.Lead, leadVoice},
	} {
		if len(tr.notes) == 0 {
			continue
		}
		tracks = append(tracks, newTrack(tr.notes, tr.v))
	}

	out.Samples = make([]int16, 0, 2*SampleCount(60/song.BPM*song.Beats(), sampleRate))
	for anyActive(tracks) {
		step := math.Inf(1)
		for _, t := range tracks {
			step = math.Min(step, t.stepBeats())
		}

		seconds := 60 / song.BPM * step
		mix := make([]float64, SampleCount(seconds, sampleRate))
		for _, t := range tracks {
			f := t.freq()
			if f <= 0 {
				continue
			}
			wave := Synthesize(f, seconds, t.kind, sampleRate, nil)
			for i := range mix {
				mix[i] += t.weight * wave[i]
			}
		}
		out.appendMono(mix, song.Volume)

		for _, t := range tracks {
			t.advance(step)
		}
	}
	return out
}

func anyActive(tracks []*track) bool {
	for _, t := range tracks {
		if !t.done() {
			return true
		}
	}
	return false
}
