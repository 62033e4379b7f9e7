package audio

import "errors"

// ErrNoDevice is returned when no audio output could be opened.
var ErrNoDevice = errors.New("audio: no output device")

// Sink is the platform mixer. Music is one channel that is replaced on every
// PlayMusic call; effects are mixed over it.
type Sink interface {
	// PlayMusic starts buf on the music channel, looping until stopped if loop is set.
	PlayMusic(buf PCM, loop bool) error
	// StopMusic silences the music channel.
	StopMusic()
	// MusicPlaying reports whether the music channel is still producing sound.
	MusicPlaying() bool
	// PlayEffect mixes a one-shot buffer over the music.
	PlayEffect(buf PCM) error
	Close() error
}

// NullSink discards everything. It is used when audio is disabled or the
// device cannot be opened, so callers never need to check for nil.
type NullSink struct{}

func (NullSink) PlayMusic(PCM, bool) error { return nil }
func (NullSink) StopMusic()                {}
func (NullSink) MusicPlaying() bool        { return false }
func (NullSink) PlayEffect(PCM) error      { return nil }
func (NullSink) Close() error              { return nil }
