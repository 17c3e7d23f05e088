// Package framesource reads recorded frames from a directory.
//
// A frame directory holds, per frame number NNNN:
//
//	frame_NNNN.png        camera image (png, jpg or webp)
//	mask_NNNN.png         segmentation mask (png, jpg or webp)
//	landmarks_NNNN.json   tracker result, optional
//
// Frames are ordered by file name.
package framesource

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/webp"

	aura "github.com/gogpu/gg-aura"
)

// ErrNoFrames is returned by Open for a directory without frame files.
var ErrNoFrames = errors.New("framesource: no frame files")

var imageExts = []string{".png", ".jpg", ".jpeg", ".webp"}

// Dir is a sequence of frames read from a directory.
type Dir struct {
	root   string
	fps    float64
	ids    []string
	frames map[string]string // id -> frame file name
	index  int
}

// Open scans root for frame files. Frame times advance by 1/fps seconds.
func Open(root string, fps float64) (*Dir, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("framesource: fps must be positive, got %v", fps)
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("framesource: %w", err)
	}

	var ids []string
	frames := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if id, ok := frameID(e.Name()); ok {
			ids = append(ids, id)
			frames[id] = e.Name()
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFrames, root)
	}
	slices.Sort(ids)
	return &Dir{root: root, fps: fps, ids: ids, frames: frames}, nil
}

// Len returns the number of frames.
func (d *Dir) Len() int {
	return len(d.ids)
}

// Next reads the next frame. It returns io.EOF after the last frame. A
// frame that fails to load returns an error and is skipped; the
// following call moves on to the next frame.
func (d *Dir) Next() (aura.Frame, error) {
	if d.index >= len(d.ids) {
		return aura.Frame{}, io.EOF
	}
	i := d.index
	id := d.ids[i]
	d.index++

	f := aura.Frame{Time: float64(i) / d.fps}

	var err error
	if f.Video, err = d.decodeImage(d.frames[id]); err != nil {
		return aura.Frame{}, fmt.Errorf("framesource: frame %s: %w", id, err)
	}
	if f.Mask, err = d.loadImage("mask_" + id); err != nil {
		return aura.Frame{}, fmt.Errorf("framesource: frame %s: mask: %w", id, err)
	}
	if f.Result, err = d.loadResult("landmarks_" + id + ".json"); err != nil {
		return aura.Frame{}, fmt.Errorf("framesource: frame %s: %w", id, err)
	}
	return f, nil
}

// loadImage decodes the first stem.<image ext> that exists.
func (d *Dir) loadImage(stem string) (image.Image, error) {
	for _, ext := range imageExts {
		for _, e := range []string{ext, strings.ToUpper(ext)} {
			img, err := d.decodeImage(stem + e)
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return img, err
		}
	}
	return nil, fmt.Errorf("%s: %w", stem, os.ErrNotExist)
}

func (d *Dir) decodeImage(name string) (image.Image, error) {
	f, err := os.Open(filepath.Join(d.root, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return img, nil
}

// loadResult reads a landmark file. A missing file is an empty result.
func (d *Dir) loadResult(name string) (aura.Result, error) {
	data, err := os.ReadFile(filepath.Join(d.root, name))
	if errors.Is(err, os.ErrNotExist) {
		return aura.Result{}, nil
	}
	if err != nil {
		return aura.Result{}, err
	}
	var res aura.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return aura.Result{}, fmt.Errorf("%s: %w", name, err)
	}
	return res, nil
}

// frameID returns NNNN for frame_NNNN.<image ext>.
func frameID(name string) (string, bool) {
	known := slices.Contains(imageExts, strings.ToLower(filepath.Ext(name)))
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	id, ok := strings.CutPrefix(stem, "frame_")
	if !known || !ok || id == "" {
		return "", false
	}
	return id, true
}
