package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// PCM is a mono recording with samples normalized to [-1, 1].
type PCM struct {
	Samples    []float64
	SampleRate float64
}

// Duration returns the length of the recording in seconds.
func (p *PCM) Duration() float64 {
	if p.SampleRate <= 0 {
		return 0
	}
	return float64(len(p.Samples)) / p.SampleRate
}

// LoadFile decodes a WAV or MP3 file, chosen by extension. Only the
// first channel of a multi-channel file is kept.
func LoadFile(path string) (*PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	defer f.Close()

	var pcm *PCM
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		pcm, err = DecodeWAV(f)
	case ".mp3":
		pcm, err = DecodeMP3(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	logger().Debug("audio loaded", "path", path,
		"sample_rate", pcm.SampleRate, "seconds", pcm.Duration())
	return pcm, nil
}

// DecodeWAV decodes a WAV stream.
func DecodeWAV(rs io.ReadSeeker) (*PCM, error) {
	dec := wav.NewDecoder(rs)
	if dec == nil || !dec.IsValidFile() {
		return nil, ErrInvalidWAV
	}

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("audio: wav: %w", err)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		chans = 1
	}
	depth := int(dec.BitDepth)
	if depth <= 0 {
		depth = 16
	}
	scale := float64(int(1) << (depth - 1))

	// copy first channel only of data stream
	p := &PCM{
		Samples:    make([]float64, 0, len(buf.Data)/chans),
		SampleRate: float64(dec.SampleRate),
	}
	for i := 0; i < len(buf.Data); i += chans {
		v := buf.Data[i]
		if depth == 8 {
			// 8 bit wav is unsigned
			v -= 128
		}
		p.Samples = append(p.Samples, float64(v)/scale)
	}
	if len(p.Samples) == 0 {
		return nil, ErrNoSamples
	}
	return p, nil
}

// DecodeMP3 decodes an MP3 stream.
//
// The decoder always produces 16 bit little endian stereo, so a sample
// frame is four bytes and the left channel is the first two.
func DecodeMP3(r io.Reader) (*PCM, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("audio: mp3: %w", err)
	}

	p := &PCM{SampleRate: float64(dec.SampleRate())}
	chunk := make([]byte, 4096)
	var carry []byte
	for {
		n, err := dec.Read(chunk)
		data := append(carry, chunk[:n]...)
		whole := len(data) - len(data)%4
		for i := 0; i < whole; i += 4 {
			v := int16(uint16(data[i]) | uint16(data[i+1])<<8)
			p.Samples = append(p.Samples, float64(v)/32768)
		}
		carry = append(carry[:0], data[whole:]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("audio: mp3: %w", err)
		}
	}
	if len(p.Samples) == 0 {
		return nil, ErrNoSamples
	}
	return p, nil
}
