package audio

// Effect names a short sound effect.
type Effect int

const (
	EffectClick Effect = iota
	EffectAttack
	EffectMagic
	EffectItem
	EffectLevelUp
	EffectGameOver
	EffectVictory
	EffectArrow
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectClick:
		return "click"
	case EffectAttack:
		return "attack"
	case EffectMagic:
		return "magic"
	case EffectItem:
		return "item"
	case EffectLevelUp:
		return "levelup"
	case EffectGameOver:
		return "gameover"
	case EffectVictory:
		return "victory"
	case EffectArrow:
		return "arrow"
	default:
		return "unknown"
	}
}

// Tone is a single synthesized beep.
type Tone struct {
	Freq   float64
	Millis int
	Volume float64
	Kind   Waveform
}

// Tones is the effect bank.
var Tones = map[Effect]Tone{
	EffectClick:    {Freq: 800, Millis: 60, Volume: 0.5, Kind: Square},
	EffectAttack:   {Freq: 200, Millis: 120, Volume: 0.5, Kind: Square},
	EffectMagic:    {Freq: 1200, Millis: 200, Volume: 0.5, Kind: Sine},
	EffectItem:     {Freq: 1000, Millis: 80, Volume: 0.5, Kind: Sine},
	EffectLevelUp:  {Freq: 1500, Millis: 300, Volume: 0.5, Kind: Sine},
	EffectGameOver: {Freq: 100, Millis: 400, Volume: 0.5, Kind: Sine},
	EffectVictory:  {Freq: 900, Millis: 500, Volume: 0.5, Kind: Sine},
	EffectArrow:    {Freq: 600, Millis: 40, Volume: 0.4, Kind: Square},
}

// RenderTone renders a tone as a stereo buffer.
func RenderTone(t Tone, sampleRate int) PCM {
	out := PCM{SampleRate: sampleRate}
	out.appendMono(Synthesize(t.Freq, float64(t.Millis)/1000, t.Kind, sampleRate, nil), t.Volume)
	return out
}
