package audio

// Input is a recording analysed at frame times; it stands in for a live
// microphone.
type Input struct {
	stream   *Stream
	analyser *Analyser
	bins     []uint8
}

// NewInput creates an input analysing pcm with fftSize sample windows.
func NewInput(pcm *PCM, fftSize int) (*Input, error) {
	if pcm == nil || len(pcm.Samples) == 0 {
		return nil, ErrNoSamples
	}
	a, err := NewAnalyser(fftSize)
	if err != nil {
		return nil, err
	}
	return &Input{
		stream:   NewStream(pcm, fftSize),
		analyser: a,
		bins:     make([]uint8, a.FrequencyBinCount()),
	}, nil
}

// Analyser returns the input's analyser, for tuning its decibel range
// and smoothing.
func (in *Input) Analyser() *Analyser {
	return in.analyser
}

// FrequencyData returns the byte frequency data at time t in seconds.
// The returned slice is reused by the next call.
func (in *Input) FrequencyData(t float64) []uint8 {
	in.analyser.Write(in.stream.Window(t))
	in.bins = in.analyser.ByteFrequencyData(in.bins)
	return in.bins
}
