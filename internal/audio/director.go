package audio

import (
	"io"

	"github.com/charmbracelet/log"
)

// Director owns one pre-rendered buffer per mood and keeps exactly one of
// them on the music channel. All methods are safe on a nil *Director, so a
// game without audio can hold a nil one.
type Director struct {
	sink    Sink
	logger  *log.Logger
	music   map[Mood]PCM
	effects map[Effect]PCM

	current Mood
	applied bool
}

// NewDirector renders every mood song and effect tone at sampleRate and
// returns a director playing through sink. A nil sink is replaced by NullSink.
func NewDirector(sink Sink, sampleRate int, logger *log.Logger) *Director {
	if sink == nil {
		sink = NullSink{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}

	d := &Director{
		sink:    sink,
		logger:  logger,
		music:   make(map[Mood]PCM, len(Moods)),
		effects: make(map[Effect]PCM, len(Tones)),
	}
	for mood, song := range Songs() {
		d.music[mood] = Sequence(song, sampleRate)
	}
	for effect, tone := range Tones {
		d.effects[effect] = RenderTone(tone, sampleRate)
	}
	logger.Debug("music rendered", "moods", len(d.music), "effects", len(d.effects), "sample_rate", sampleRate)
	return d
}

// SetMood switches the music to mood. Setting the mood that is already
// playing does nothing; any other mood stops the current track and starts the
// new one, looping or once as the mood dictates.
func (d *Director) SetMood(mood Mood) {
	if d == nil {
		return
	}
	if d.applied && mood == d.current {
		return
	}
	d.current = mood
	d.applied = true

	d.sink.StopMusic()
	buf, ok := d.music[mood]
	if !ok {
		d.logger.Warn("no music for mood", "mood", mood)
		return
	}
	if err := d.sink.PlayMusic(buf, mood.Loops()); err != nil {
		d.logger.Warn("music playback failed", "mood", mood, "error", err)
		return
	}
	d.logger.Debug("mood applied", "mood", mood, "loop", mood.Loops(), "length", buf.Duration())
}

// Mood returns the last applied mood and whether any mood was applied yet.
func (d *Director) Mood() (Mood, bool) {
	if d == nil {
		return 0, false
	}
	return d.current, d.applied
}

// Playing reports whether the music channel is still sounding.
func (d *Director) Playing() bool {
	if d == nil {
		return false
	}
	return d.sink.MusicPlaying()
}

// PlayEffect mixes a sound effect over the music.
func (d *Director) PlayEffect(e Effect) {
	if d == nil {
		return
	}
	buf, ok := d.effects[e]
	if !ok {
		return
	}
	if err := d.sink.PlayEffect(buf); err != nil {
		d.logger.Warn("effect playback failed", "effect", e, "error", err)
	}
}

// Buffer returns the cached music for a mood.
func (d *Director) Buffer(mood Mood) (PCM, bool) {
	if d == nil {
		return PCM{}, false
	}
	buf, ok := d.music[mood]
	return buf, ok
}

// Stop silences the music and forgets the applied mood, so the next SetMood
// always starts playback.
func (d *Director) Stop() {
	if d == nil {
		return
	}
	d.sink.StopMusic()
	d.applied = false
}

// Close releases the sink.
func (d *Director) Close() error {
	if d == nil {
		return nil
	}
	return d.sink.Close()
}
