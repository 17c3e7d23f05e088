package audio

// Stream plays a recording back against a clock, one analysis window at
// a time.
type Stream struct {
	pcm    *PCM
	window []float64
}

// NewStream creates a stream returning windows of size samples.
func NewStream(pcm *PCM, size int) *Stream {
	return &Stream{pcm: pcm, window: make([]float64, size)}
}

// PCM returns the recording.
func (s *Stream) PCM() *PCM {
	return s.pcm
}

// Window returns the size samples preceding time t in seconds. Samples
// before the start of the recording and after its end are silent. The
// returned slice is reused by the next call.
func (s *Stream) Window(t float64) []float64 {
	end := int(t * s.pcm.SampleRate)
	start := end - len(s.window)
	samples := s.pcm.Samples

	for i := range s.window {
		j := start + i
		if j < 0 || j >= len(samples) {
			s.window[i] = 0
			continue
		}
		s.window[i] = samples[j]
	}
	return s.window
}
