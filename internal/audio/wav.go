package audio

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gopxl/beep/v2/wav"
)

// EncodeWAV writes buf as a 16-bit stereo PCM WAV container.
// The writer must be seekable because the RIFF sizes are patched at the end.
func EncodeWAV(w io.WriteSeeker, buf PCM) error {
	if err := wav.Encode(w, buf.Streamer(), buf.Format()); err != nil {
		return fmt.Errorf("audio: encode wav: %w", err)
	}
	return nil
}

// WriteWAVFile writes buf to path, replacing any existing file.
func WriteWAVFile(path string, buf PCM) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audio: create %s: %w", path, err)
	}
	if err := EncodeWAV(f, buf); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("audio: close %s: %w", path, err)
	}
	return nil
}

// DecodeWAV reads a WAV container back into a PCM buffer.
func DecodeWAV(r io.Reader) (PCM, error) {
	s, format, err := wav.Decode(r)
	if err != nil {
		return PCM{}, fmt.Errorf("audio: decode wav: %w", err)
	}
	defer s.Close()

	out := PCM{SampleRate: int(format.SampleRate)}
	chunk := make([][2]float64, 512)
	for {
		n, ok := s.Stream(chunk)
		for _, frame := range chunk[:n] {
			out.Samples = append(out.Samples, toInt16(frame[0]), toInt16(frame[1]))
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return PCM{}, fmt.Errorf("audio: decode wav: %w", err)
	}
	return out, nil
}

// ReadWAVFile decodes the WAV file at path.
func ReadWAVFile(path string) (PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return PCM{}, fmt.Errorf("audio: open %s: %w", path, err)
	}
	defer f.Close()
	return DecodeWAV(f)
}

func toInt16(v float64) int16 {
	return int16(math.Round(clip(v) * math.MaxInt16))
}
