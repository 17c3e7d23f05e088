// Package aura renders an audio-reactive aura around a tracked person.
//
// # Overview
//
// aura turns the per-frame output of an external body tracker (a video
// frame, a segmentation mask and normalized pose, face and hand landmarks)
// into two stacked layers drawn with gg:
//
//   - the aura layer: a blurred, feathered silhouette glowing in colors
//     interpolated by microphone loudness
//   - the overlay layer: a stylized skeleton (head disc, spine, neck) plus
//     the tracker's connector graphs, in the same loudness color
//
// The tracker, camera and microphone are external; aura only consumes
// their results.
//
// # Quick Start
//
//	import aura "github.com/gogpu/gg-aura"
//
//	r, err := aura.NewRenderer(640, 480,
//	    aura.WithPalette(aura.DefaultPalette()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	layers, err := r.Render(aura.Frame{
//	    Video:  video,
//	    Mask:   mask,
//	    Result: aura.Result{Pose: pose},
//	    Bins:   bins, // byte frequency data, see package audio
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = layers.Composite.SavePNG("frame.png")
//
// # Pipeline
//
// Each call to [Renderer.Render] runs, in order:
//
//  1. Level sampling of the frame's byte frequency data ([LevelSampler])
//  2. Color interpolation of the body and background pairs by the level
//  3. The mask compositor ([Compositor]) into the aura layer
//  4. The skeleton overlay ([Overlay]) into the overlay layer
//  5. Source-over stacking of overlay on aura, then the optional [HUD]
//
// [Session] runs the pipeline over a channel of frames.
//
// Rendering is synchronous. The palette may be edited concurrently from
// any goroutine through [Renderer.SetPalette] and [Renderer.SetColor];
// each frame reads one snapshot.
//
// # Coordinate System
//
// Landmarks are normalized to [0,1] and scaled by the surface size. The
// origin is top-left with Y increasing down, as in gg.
package aura
