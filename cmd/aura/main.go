// Command aura renders an audio-reactive aura over a directory of
// recorded frames.
//
// Each frame_NNNN image needs a mask_NNNN segmentation mask; an optional
// landmarks_NNNN.json adds the skeleton overlay. The audio file is played
// against the frame clock and drives the palette. Stacked frames are
// written to the output directory as PNG.
//
//	aura -frames ./capture -audio voice.wav -out ./rendered -hud
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	aura "github.com/gogpu/gg-aura"
	"github.com/gogpu/gg-aura/audio"
	"github.com/gogpu/gg-aura/internal/framesource"
	"github.com/gogpu/gg-aura/shader"
)

func main() {
	var (
		frames     = flag.String("frames", "", "frame directory (required)")
		audioPath  = flag.String("audio", "", "wav or mp3 file driving the level")
		output     = flag.String("out", "out", "output directory")
		width      = flag.Int("width", 640, "surface width")
		height     = flag.Int("height", 480, "surface height")
		fps        = flag.Float64("fps", 30, "frame rate of the recording")
		gain       = flag.Float64("gain", aura.DefaultGain, "audio level gain")
		base       = flag.String("base", "", "quiet body color (#rrggbb)")
		loudBody   = flag.String("loud-body", "", "loud body color (#rrggbb)")
		quietBG    = flag.String("quiet-bg", "", "quiet background color (#rrggbb)")
		loudBG     = flag.String("loud-bg", "", "loud background color (#rrggbb)")
		head       = flag.String("head", "eyes", "head sizing: eyes or fixed")
		headRadius = flag.Float64("head-radius", 40, "head radius in pixels for -head fixed")
		topology   = flag.String("topology", "full", "pose connectors: full or arms")
		glowRadius = flag.Float64("glow", 20, "skeleton glow radius")
		hud        = flag.Bool("hud", false, "draw the level meter")
		layers     = flag.Bool("layers", false, "also write the aura and overlay layers")
		spirv      = flag.String("emit-spirv", "", "write the compiled aura shader to this file")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	aura.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *frames == "" {
		flag.Usage()
		os.Exit(2)
	}

	headMode, ok := aura.ParseHeadMode(*head)
	if !ok {
		log.Fatalf("Unknown head mode %q", *head)
	}
	topo, ok := aura.ParsePoseTopology(*topology)
	if !ok {
		log.Fatalf("Unknown topology %q", *topology)
	}

	hc := aura.DefaultHeadConfig()
	hc.Mode = headMode
	hc.Radius = *headRadius

	r, err := aura.NewRenderer(*width, *height,
		aura.WithGain(*gain),
		aura.WithHead(hc),
		aura.WithPoseTopology(topo),
		aura.WithGlowRadius(*glowRadius),
		aura.WithHUD(*hud),
		aura.WithShader(shader.Aura()),
	)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	colors := []struct {
		name aura.ColorName
		hex  string
	}{
		{aura.ColorBase, *base},
		{aura.ColorLoudBody, *loudBody},
		{aura.ColorQuietBackground, *quietBG},
		{aura.ColorLoudBackground, *loudBG},
	}
	for _, c := range colors {
		if c.hex == "" {
			continue
		}
		if err := r.SetColor(c.name, c.hex); err != nil {
			log.Fatalf("Invalid %s color: %v", c.name, err)
		}
	}

	if *spirv != "" {
		if err := writeSPIRV(*spirv, r.ShaderModule()); err != nil {
			log.Fatalf("Failed to write shader: %v", err)
		}
	}

	var spectrum aura.Spectrum
	if *audioPath != "" {
		pcm, err := audio.LoadFile(*audioPath)
		if err != nil {
			log.Fatalf("Failed to load audio: %v", err)
		}
		in, err := audio.NewInput(pcm, audio.DefaultFFTSize)
		if err != nil {
			log.Fatalf("Failed to analyse audio: %v", err)
		}
		spectrum = in
	}

	dir, err := framesource.Open(*frames, *fps)
	if err != nil {
		log.Fatalf("Failed to open frames: %v", err)
	}
	if err := os.MkdirAll(*output, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ch := make(chan aura.Frame)
	go feed(ctx, dir, ch)

	sink := &pngSink{dir: *output, layers: *layers}
	if err := aura.NewSession(r, spectrum).Run(ctx, ch, sink); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Render failed: %v", err)
	}

	log.Printf("Rendered %d of %d frames to %s\n", sink.written, dir.Len(), *output)
}

// feed sends every readable frame of dir, then closes ch.
func feed(ctx context.Context, dir *framesource.Dir, ch chan<- aura.Frame) {
	defer close(ch)
	for {
		f, err := dir.Next()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			aura.Logger().Warn("frame unreadable", "err", err)
			continue
		}
		select {
		case ch <- f:
		case <-ctx.Done():
			return
		}
	}
}

// pngSink writes rendered frames as PNG files.
type pngSink struct {
	dir     string
	layers  bool
	written int
}

func (s *pngSink) WriteFrame(i int, l *aura.Layers) error {
	if err := l.Composite.SavePNG(filepath.Join(s.dir, fmt.Sprintf("aura_%04d.png", i))); err != nil {
		return err
	}
	if s.layers {
		if err := l.Aura.SavePNG(filepath.Join(s.dir, fmt.Sprintf("shader_%04d.png", i))); err != nil {
			return err
		}
		if err := l.Overlay.SavePNG(filepath.Join(s.dir, fmt.Sprintf("overlay_%04d.png", i))); err != nil {
			return err
		}
	}
	s.written++
	return nil
}

func writeSPIRV(path string, words []uint32) error {
	buf := make([]byte, 0, len(words)*4)
	for _, w := range words {
		buf = append(buf, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
	}
	return os.WriteFile(path, buf, 0o644)
}
