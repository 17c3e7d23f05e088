package audio

import "errors"

var (
	// ErrUnsupportedFormat is returned for files that are neither WAV
	// nor MP3.
	ErrUnsupportedFormat = errors.New("audio: unsupported file format")

	// ErrInvalidWAV is returned when a file is not a valid WAV file.
	ErrInvalidWAV = errors.New("audio: not a valid wav file")

	// ErrNoSamples is returned when a recording decodes to no samples.
	ErrNoSamples = errors.New("audio: recording has no samples")

	// ErrFFTSize is returned for an analysis size that is not a power of
	// two between 32 and 32768.
	ErrFFTSize = errors.New("audio: fft size must be a power of two in [32, 32768]")
)
