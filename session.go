package aura

import (
	"context"
	"fmt"
)

// Spectrum supplies byte frequency data for a point in time.
// audio.Input implements it.
type Spectrum interface {
	FrequencyData(t float64) []uint8
}

// Sink receives the layers of every rendered frame. The layers are only
// valid until WriteFrame returns.
type Sink interface {
	WriteFrame(index int, l *Layers) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(index int, l *Layers) error

// WriteFrame implements Sink.
func (f SinkFunc) WriteFrame(index int, l *Layers) error {
	return f(index, l)
}

// Session drives a Renderer from a stream of frames.
type Session struct {
	r        *Renderer
	spectrum Spectrum
}

// NewSession creates a session. spectrum may be nil, in which case
// frames keep whatever Bins they carry.
func NewSession(r *Renderer, spectrum Spectrum) *Session {
	return &Session{r: r, spectrum: spectrum}
}

// Renderer returns the session renderer, for live color edits.
func (s *Session) Renderer() *Renderer {
	return s.r
}

// Run renders frames until the channel is closed, ctx is done or the
// sink fails. Frames that cannot be rendered are logged and skipped.
// Frame indices passed to the sink count every received frame.
func (s *Session) Run(ctx context.Context, frames <-chan Frame, sink Sink) error {
	w, h := s.r.Size()
	Logger().Info("aura session started", "width", w, "height", h, "audio", s.spectrum != nil)

	var index, rendered int
	defer func() {
		Logger().Info("aura session stopped", "frames", index, "rendered", rendered)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case f, ok := <-frames:
			if !ok {
				return nil
			}
			i := index
			index++

			if s.spectrum != nil && f.Bins == nil {
				f.Bins = s.spectrum.FrequencyData(f.Time)
			}
			layers, err := s.r.Render(f)
			if err != nil {
				Logger().Warn("frame skipped", "frame", i, "err", err)
				continue
			}
			rendered++
			if err := sink.WriteFrame(i, layers); err != nil {
				return fmt.Errorf("aura: frame %d: %w", i, err)
			}
		}
	}
}
