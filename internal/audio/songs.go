package audio

// Note frequencies in Hz.
const (
	C1  = 32.70
	D1  = 36.71
	E1  = 41.20
	F1  = 43.65
	G1  = 49.00
	A1  = 55.00
	B1  = 61.74
	C2  = 65.41
	E2  = 82.41
	F2  = 87.31
	Fs2 = 92.50
	G2  = 98.00
	A2  = 110.00
	B2  = 123.47
	C3  = 130.81
	Cs3 = 138.59
	D3  = 146.83
	E3  = 164.81
	F3  = 174.61
	Fs3 = 185.00
	G3  = 196.00
	A3  = 220.00
	B3  = 246.94
	C4  = 261.63
	D4  = 293.66
	E4  = 329.63
	F4  = 349.23
	G4  = 392.00
	A4  = 440.00
	B4  = 493.88
	C5  = 523.25
	D5  = 587.33
	E5  = 659.25
	F5  = 698.46
	G5  = 783.99
	A5  = 880.00
	B5  = 987.77
	C6  = 1046.50
	D6  = 1174.66
	E6  = 1318.51
)

// Rest is a silent note.
const Rest = 0

// notes builds a track from alternating frequency/beat pairs.
func notes(pairs ...float64) []Note {
	out := make([]Note, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Note{Freq: pairs[i], Beats: pairs[i+1]})
	}
	return out
}

// repeat concatenates n copies of a track.
func repeat(track []Note, n int) []Note {
	out := make([]Note, 0, len(track)*n)
	for i := 0; i < n; i++ {
		out = append(out, track...)
	}
	return out
}

// Songs returns the score for every mood.
func Songs() map[Mood]Song {
	return map[Mood]Song{
		MoodMenu:      menuSong(),
		MoodOverworld: overworldSong(),
		MoodTown:      townSong(),
		MoodBattle:    battleSong(),
		MoodBoss:      bossSong(),
		MoodVictory:   victorySong(),
		MoodDefeat:    defeatSong(),
	}
}

// Stately title theme.
func menuSong() Song {
	return Song{
		Melody: repeat(notes(
			C5, 0.5, E5, 0.5, G5, 0.5, B5, 0.5,
			A5, 0.5, G5, 0.5, E5, 0.5, C5, 0.5,
			A4, 0.5, C5, 0.5, E5, 0.5, G5, 0.5,
			E5, 0.5, C5, 0.5, A4, 0.5, G4, 0.5,
		), 2),
		Bass: repeat(notes(
			C3, 1, D3, 1, E3, 1, F3, 1,
			G3, 1, A3, 1, B3, 1, C4, 1,
		), 2),
		Percussion: repeat(notes(
			200, 0.5, Rest, 0.5, 150, 0.5, Rest, 0.5,
			200, 0.5, Rest, 0.5, 150, 0.5, Rest, 0.5,
		), 4),
		BPM:    80,
		Volume: 0.25,
	}
}

func overworldSong() Song {
	return Song{
		Melody: notes(
			A4, 0.5, C5, 0.5, E5, 0.5, G5, 0.5,
			E5, 0.5, C5, 0.5, A4, 1,
			G4, 0.5, B4, 0.5, D5, 0.5, F5, 0.5,
			E5, 0.5, D5, 0.5, C5, 1,
		),
		Bass: notes(
			C3, 1, D3, 1, E3, 1, F3, 1,
			G3, 1, A3, 1, B3, 1, C4, 1,
		),
		BPM:    90,
		Volume: 0.2,
	}
}

// Town theme with a bell lead.
func townSong() Song {
	return Song{
		Melody: notes(
			C5, 0.5, D5, 0.5, E5, 0.5, F5, 0.5,
			G5, 0.5, F5, 0.5, E5, 0.5, D5, 0.5,
			C5, 0.5, B4, 0.5, A4, 0.5, G4, 0.5,
			A4, 0.5, B4, 0.5, C5, 1,
		),
		Bass: notes(
			C4, 1, D4, 1, E4, 1, F4, 1,
			G4, 1, A4, 1, B4, 1, C5, 1,
		),
		Percussion: notes(
			50, 0.5, Rest, 0.5, 30, 0.5, Rest, 0.5,
			50, 0.5, Rest, 0.5, 30, 0.5, Rest, 0.5,
		),
		Lead: notes(
			G5, 0.25, Rest, 0.25, A5, 0.25, Rest, 0.25,
			B5, 0.25, Rest, 0.25, C6, 0.25, Rest, 0.25,
			A5, 0.25, Rest, 0.25, G5, 0.25, Rest, 0.25,
			E5, 0.25, Rest, 0.25, D5, 0.25, Rest, 0.25,
		),
		BPM:    120,
		Volume: 0.15,
	}
}

func battleSong() Song {
	return Song{
		Melody: repeat(notes(
			D5, 0.25, E5, 0.25, G5, 0.25, E5, 0.25,
			D5, 0.25, C5, 0.25, B4, 0.25, A4, 0.25,
			G4, 0.25, A4, 0.25, B4, 0.25, D5, 0.25,
			E5, 0.25, D5, 0.25, C5, 0.25, B4, 0.25,
		), 2),
		Bass: repeat(notes(
			G2, 0.5, A2, 0.5, B2, 0.5, C3, 0.5,
			D3, 0.5, E3, 0.5, Fs3, 0.5, G3, 0.5,
		), 2),
		Percussion: repeat(notes(
			150, 0.25, Rest, 0.25, 100, 0.25, Rest, 0.25,
			150, 0.25, Rest, 0.25, 100, 0.25, Rest, 0.25,
		), 4),
		BPM:    140,
		Volume: 0.25,
	}
}

// Fastest and loudest theme.
func bossSong() Song {
	return Song{
		Melody: repeat(notes(
			A3, 0.25, C4, 0.25, E4, 0.25, G4, 0.25,
			B4, 0.25, G4, 0.25, E4, 0.25, C4, 0.25,
			D4, 0.25, F4, 0.25, A4, 0.25, C5, 0.25,
			E5, 0.25, C5, 0.25, A4, 0.25, F4, 0.25,
		), 2),
		Bass: repeat(notes(
			E2, 0.5, F2, 0.5, Fs2, 0.5, G2, 0.5,
			A2, 0.5, B2, 0.5, Cs3, 0.5, D3, 0.5,
		), 2),
		Percussion: repeat(notes(
			200, 0.125, Rest, 0.125, 150, 0.125, Rest, 0.125,
			100, 0.125, Rest, 0.125, 150, 0.125, Rest, 0.125,
			200, 0.125, Rest, 0.125, 150, 0.125, Rest, 0.125,
			100, 0.125, Rest, 0.125, 150, 0.125, 200, 0.125,
		), 2),
		Lead: notes(
			C5, 0.25, Rest, 0.25, E5, 0.25, Rest, 0.25,
			G5, 0.25, Rest, 0.25, B5, 0.25, Rest, 0.25,
			A5, 0.25, Rest, 0.25, F5, 0.25, Rest, 0.25,
			D5, 0.25, Rest, 0.25, B4, 0.25, Rest, 0.25,
		),
		BPM:    160,
		Volume: 0.3,
	}
}

// Short fanfare, played once.
func victorySong() Song {
	return Song{
		Melody: notes(
			E5, 0.3, G5, 0.3, B5, 0.3, A5, 0.5,
			Rest, 0.2, G5, 0.3, A5, 0.3, C6, 0.5,
			Rest, 0.2, B5, 0.3, D6, 0.3, E6, 1.0,
		),
		Bass: notes(
			C4, 0.5, E4, 0.5, G4, 0.5, C5, 0.5,
			G4, 0.5, C5, 0.5, E5, 0.5, G5, 1.0,
		),
		Percussion: notes(
			300, 0.1, Rest, 0.1, 400, 0.1, Rest, 0.1,
			500, 0.1, Rest, 0.1, 600, 0.1, Rest, 0.1,
			700, 0.5,
		),
		BPM:    120,
		Volume: 0.3,
	}
}

// Slow descending dirge, played once.
func defeatSong() Song {
	return Song{
		Melody: notes(
			C4, 1.0, B3, 1.0, A3, 1.0, G3, 2.0,
			F3, 1.0, E3, 1.0, D3, 1.0, C3, 2.0,
		),
		Bass: notes(
			C2, 2.0, B1, 2.0, A1, 2.0, G1, 4.0,
			F1, 2.0, E1, 2.0, D1, 2.0, C1, 4.0,
		),
		BPM:    60,
		Volume: 0.25,
	}
}
