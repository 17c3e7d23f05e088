package shader

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/naga"
)

//go:embed aura.wgsl
var auraSource string

// Entry points of the aura shader.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

// Aura returns the WGSL source of the aura compositor.
func Aura() string {
	return auraSource
}

// Compile compiles WGSL source to SPIR-V words.
func Compile(src string) ([]uint32, error) {
	if strings.TrimSpace(src) == "" {
		return nil, ErrEmptySource
	}

	spirvBytes, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("shader: compile: %w", err)
	}
	if len(spirvBytes) < 4 || len(spirvBytes)%4 != 0 {
		return nil, ErrMalformedSPIRV
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	if words[0] != spirvMagic {
		return nil, ErrMalformedSPIRV
	}
	return words, nil
}

// UniformSize is the byte size of the uniform block.
const UniformSize = 48

// Uniforms mirrors the WGSL uniform block.
//
// Layout (uniform address space):
//
//	offset  0  body_color        vec3<f32>
//	offset 12  level             f32
//	offset 16  background_color  vec3<f32>
//	offset 28  time              f32
//	offset 32  resolution        vec2<f32>
//	offset 40  blur_radius       f32
//	offset 44  padding
type Uniforms struct {
	Body       [3]float32
	Level      float32
	Background [3]float32
	Time       float32
	Resolution [2]float32
	BlurRadius float32
}

// Bytes packs u into a little-endian uniform buffer of UniformSize bytes.
func (u Uniforms) Bytes() []byte {
	buf := make([]byte, UniformSize)
	put := func(offset int, v float32) {
		binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(v))
	}

	for i, v := range u.Body {
		put(i*4, v)
	}
	put(12, u.Level)
	for i, v := range u.Background {
		put(16+i*4, v)
	}
	put(28, u.Time)
	put(32, u.Resolution[0])
	put(36, u.Resolution[1])
	put(40, u.BlurRadius)
	return buf
}
