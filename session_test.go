package aura

import (
	"context"
	"errors"
	"testing"
)

type fakeSpectrum struct {
	times []float64
	bins  []uint8
}

func (f *fakeSpectrum) FrequencyData(t float64) []uint8 {
	f.times = append(f.times, t)
	return f.bins
}

func frames(fs ...Frame) <-chan Frame {
	ch := make(chan Frame, len(fs))
	for _, f := range fs {
		ch <- f
	}
	close(ch)
	return ch
}

func TestSessionRunSkipsBadFrames(t *testing.T) {
	r, _ := NewRenderer(16, 16)
	s := NewSession(r, nil)
	mask := uniformMask(16, 16, 0)

	var got []int
	err := s.Run(context.Background(), frames(
		Frame{Mask: mask},
		Frame{},
		Frame{Mask: mask},
	), SinkFunc(func(i int, l *Layers) error {
		if l.Composite == nil {
			t.Error("sink received no composite")
		}
		got = append(got, i)
		return nil
	}))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("sink frames = %v, want [0 2]", got)
	}
}

func TestSessionRunSinkError(t *testing.T) {
	r, _ := NewRenderer(16, 16)
	s := NewSession(r, nil)
	errFull := errors.New("disk full")

	err := s.Run(context.Background(), frames(Frame{Mask: uniformMask(16, 16, 0)}),
		SinkFunc(func(int, *Layers) error { return errFull }))
	if !errors.Is(err, errFull) {
		t.Errorf("Run error = %v, want the sink error", err)
	}
}

func TestSessionRunCanceled(t *testing.T) {
	r, _ := NewRenderer(16, 16)
	s := NewSession(r, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Run(ctx, make(chan Frame), SinkFunc(func(int, *Layers) error { return nil }))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
}

func TestSessionRunSamplesSpectrum(t *testing.T) {
	r, _ := NewRenderer(16, 16)
	sp := &fakeSpectrum{bins: filled(128, 255)}
	s := NewSession(r, sp)
	mask := uniformMask(16, 16, 0)

	err := s.Run(context.Background(), frames(
		Frame{Mask: mask, Time: 0.5},
		Frame{Mask: mask, Time: 1, Bins: filled(128, 0)},
	), SinkFunc(func(int, *Layers) error { return nil }))
	if err != nil {
		t.Fatal(err)
	}

	// The second frame carried its own bins.
	if len(sp.times) != 1 || sp.times[0] != 0.5 {
		t.Errorf("spectrum sampled at %v, want [0.5]", sp.times)
	}
	if r.Level() != 0 {
		t.Errorf("level = %v, want 0 from the frame's own bins", r.Level())
	}
}
