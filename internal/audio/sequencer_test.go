package audio

import (
	"math"
	"testing"
)

func TestSequenceMergesTracksByLongest(t *testing.T) {
	song := Song{
		Melody: []Note{{440, 1}, {880, 1}},
		Bass:   []Note{{220, 2}},
		BPM:    60,
		Volume: 1,
	}

	pcm := Sequence(song, 44100)

	// Two beats at 60 bpm is two seconds, not three.
	if pcm.Frames() != 2*44100 {
		t.Errorf("Frames() = %d, expected %d", pcm.Frames(), 2*44100)
	}
	if pcm.Duration().Seconds() != 2 {
		t.Errorf("Duration() = %v, expected 2s", pcm.Duration())
	}
	if song.Beats() != 2 {
		t.Errorf("Beats() = %f, expected 2", song.Beats())
	}
}

func TestSequenceShortTrackHoldsFiller(t *testing.T) {
	song := Song{
		Melody: []Note{{440, 1}},
		Bass:   []Note{{110, 2}},
		BPM:    60,
		Volume: 1,
	}

	pcm := Sequence(song, 44100)
	if pcm.Frames() != 2*44100 {
		t.Fatalf("Frames() = %d, expected %d", pcm.Frames(), 2*44100)
	}

	// After the melody ends only the quiet bass square remains.
	limit := int16(math.MaxInt16/4) + 1
	for i := 44100 * 2; i < len(pcm.Samples); i++ {
		if pcm.Samples[i] > limit || pcm.Samples[i] < -limit {
			t.Fatalf("sample %d = %d, expected bass-only amplitude <= %d", i, pcm.Samples[i], limit)
		}
	}
}

func TestSequenceEmptyTracksDoNotParticipate(t *testing.T) {
	base := Song{
		Melody: []Note{{440, 0.5}, {Rest, 0.5}},
		Bass:   []Note{{220, 1}},
		BPM:    120,
		Volume: 0.5,
	}
	withEmpty := base
	withEmpty.Percussion = []Note{}
	withEmpty.Lead = nil

	a := Sequence(base, 44100)
	b := Sequence(withEmpty, 44100)
	if a.Frames() != b.Frames() {
		t.Errorf("empty tracks changed the length: %d vs %d frames", a.Frames(), b.Frames())
	}
	if a.Frames() != 22050 {
		t.Errorf("Frames() = %d, expected 22050 (one beat at 120 bpm)", a.Frames())
	}
}

func TestSequenceStereoAndVolume(t *testing.T) {
	song := Song{
		Melody:     []Note{{440, 1}},
		Bass:       []Note{{220, 1}},
		Percussion: []Note{{150, 1}},
		Lead:       []Note{{880, 1}},
		BPM:        60,
		Volume:     0.5,
	}

	pcm := Sequence(song, 8000)
	limit := int16(math.MaxInt16 / 2)
	for i := 0; i < len(pcm.Samples); i += 2 {
		l, r := pcm.Samples[i], pcm.Samples[i+1]
		if l != r {
			t.Fatalf("frame %d: left %d != right %d", i/2, l, r)
		}
		if l > limit || l < -limit {
			t.Fatalf("frame %d = %d, expected clipped to +-%d", i/2, l, limit)
		}
	}
}

func TestSequenceDegenerateInput(t *testing.T) {
	tests := []struct {
		name string
		song Song
		rate int
	}{
		{"zero tempo", Song{Melody: []Note{{440, 1}}, Bass: []Note{{220, 1}}}, 44100},
		{"zero rate", Song{Melody: []Note{{440, 1}}, Bass: []Note{{220, 1}}, BPM: 90}, 0},
		{"no notes", Song{BPM: 90, Volume: 1}, 44100},
		{"only zero-length notes", Song{Melody: []Note{{440, 0}}, Bass: []Note{{220, -1}}, BPM: 90}, 44100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if pcm := Sequence(tc.song, tc.rate); !pcm.Empty() {
				t.Errorf("Sequence() = %d frames, expected none", pcm.Frames())
			}
		})
	}
}

func TestSongsRenderWithExpectedLength(t *testing.T) {
	const rate = 8000
	for mood, song := range Songs() {
		pcm := Sequence(song, rate)
		expected := 60 / song.BPM * song.Beats() * rate
		if math.Abs(float64(pcm.Frames())-expected) > expected*0.01 {
			t.Errorf("%s: Frames() = %d, expected about %.0f", mood, pcm.Frames(), expected)
		}
	}
}

func TestSongsHaveDistinctCharacter(t *testing.T) {
	songs := Songs()

	if len(songs) != len(Moods) {
		t.Fatalf("Songs() has %d moods, expected %d", len(songs), len(Moods))
	}
	for _, m := range Moods {
		if songs[m].BPM > songs[MoodBoss].BPM {
			t.Errorf("%s is faster than the boss theme", m)
		}
		if songs[m].BPM < songs[MoodDefeat].BPM {
			t.Errorf("%s is slower than the defeat dirge", m)
		}
	}
	if len(songs[MoodTown].Lead) == 0 {
		t.Error("town theme should carry a bell lead")
	}
	if songs[MoodBoss].Volume < songs[MoodBattle].Volume {
		t.Error("boss theme should be at least as loud as the battle theme")
	}
	if songs[MoodDefeat].Melody[0].Freq <= songs[MoodDefeat].Melody[len(songs[MoodDefeat].Melody)-1].Freq {
		t.Error("defeat melody should descend")
	}
}
