package audio

// Mood selects which music plays.
type Mood int

const (
	MoodMenu Mood = iota
	MoodOverworld
	MoodTown
	MoodBattle
	MoodBoss
	MoodVictory
	MoodDefeat
)

// Moods lists every mood in declaration order.
var Moods = []Mood{MoodMenu, MoodOverworld, MoodTown, MoodBattle, MoodBoss, MoodVictory, MoodDefeat}

// String returns the mood name used on the command line.
func (m Mood) String() string {
	switch m {
	case MoodMenu:
		return "menu"
	case MoodOverworld:
		return "overworld"
	case MoodTown:
		return "town"
	case MoodBattle:
		return "battle"
	case MoodBoss:
		return "boss"
	case MoodVictory:
		return "victory"
	case MoodDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// ParseMood maps a name back to its mood.
func ParseMood(name string) (Mood, bool) {
	for _, m := range Moods {
		if m.String() == name {
			return m, true
		}
	}
	return 0, false
}

// Loops reports whether the mood's music repeats until the mood changes.
// Victory and defeat play once.
func (m Mood) Loops() bool {
	return m != MoodVictory && m != MoodDefeat
}
