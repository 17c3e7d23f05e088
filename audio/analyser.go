package audio

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Analyser defaults.
const (
	DefaultFFTSize     = 256
	DefaultSmoothing   = 0.8
	DefaultMinDecibels = -100.0
	DefaultMaxDecibels = -30.0
)

// Analyser computes byte frequency data from a time-domain window.
//
// An Analyser keeps the smoothed spectrum between calls and is not safe
// for concurrent use.
type Analyser struct {
	// Smoothing blends each spectrum with the previous one, in [0, 1).
	Smoothing float64

	// MinDecibels and MaxDecibels are mapped to byte 0 and 255.
	MinDecibels float64
	MaxDecibels float64

	size     int
	fft      *fourier.FFT
	window   []float64
	input    []float64
	windowed []float64
	coeffs   []complex128
	smoothed []float64
}

// NewAnalyser creates an analyser with fftSize samples per window and
// fftSize/2 frequency bins.
func NewAnalyser(fftSize int) (*Analyser, error) {
	if fftSize < 32 || fftSize > 32768 || fftSize&(fftSize-1) != 0 {
		return nil, ErrFFTSize
	}
	return &Analyser{
		Smoothing:   DefaultSmoothing,
		MinDecibels: DefaultMinDecibels,
		MaxDecibels: DefaultMaxDecibels,
		size:        fftSize,
		fft:         fourier.NewFFT(fftSize),
		window:      blackman(fftSize),
		input:       make([]float64, fftSize),
		windowed:    make([]float64, fftSize),
		coeffs:      make([]complex128, fftSize/2+1),
		smoothed:    make([]float64, fftSize/2),
	}, nil
}

// FFTSize returns the window length in samples.
func (a *Analyser) FFTSize() int {
	return a.size
}

// FrequencyBinCount returns the number of frequency bins.
func (a *Analyser) FrequencyBinCount() int {
	return a.size / 2
}

// Write sets the time-domain window. Only the last FFTSize samples are
// kept; a shorter input is zero padded at the front.
func (a *Analyser) Write(samples []float64) {
	if len(samples) >= a.size {
		copy(a.input, samples[len(samples)-a.size:])
		return
	}
	pad := a.size - len(samples)
	clear(a.input[:pad])
	copy(a.input[pad:], samples)
}

// ByteFrequencyData analyses the current window and writes one byte per
// bin into dst, growing it if needed. It returns the filled slice.
func (a *Analyser) ByteFrequencyData(dst []uint8) []uint8 {
	bins := a.FrequencyBinCount()
	if cap(dst) < bins {
		dst = make([]uint8, bins)
	}
	dst = dst[:bins]

	a.analyse()

	scale := 255 / (a.MaxDecibels - a.MinDecibels)
	for k, mag := range a.smoothed {
		db := 20 * math.Log10(mag)
		v := math.Floor(scale * (db - a.MinDecibels))
		switch {
		case math.IsNaN(v) || v <= 0:
			dst[k] = 0
		case v >= 255:
			dst[k] = 255
		default:
			dst[k] = uint8(v)
		}
	}
	return dst
}

// analyse windows the input, transforms it and updates the smoothed
// magnitudes.
func (a *Analyser) analyse() {
	for i, s := range a.input {
		a.windowed[i] = s * a.window[i]
	}
	a.coeffs = a.fft.Coefficients(a.coeffs, a.windowed)

	n := float64(a.size)
	tau := a.Smoothing
	for k := range a.smoothed {
		c := a.coeffs[k]
		mag := math.Hypot(real(c), imag(c)) / n
		s := tau*a.smoothed[k] + (1-tau)*mag
		if math.IsNaN(s) || math.IsInf(s, 0) {
			s = 0
		}
		a.smoothed[k] = s
	}
}

// blackman returns the Blackman window with alpha 0.16.
func blackman(n int) []float64 {
	const alpha = 0.16
	a0 := (1 - alpha) / 2
	a1 := 0.5
	a2 := alpha / 2

	w := make([]float64, n)
	for i := range w {
		x := float64(i) / float64(n)
		w[i] = a0 - a1*math.Cos(2*math.Pi*x) + a2*math.Cos(4*math.Pi*x)
	}
	return w
}
