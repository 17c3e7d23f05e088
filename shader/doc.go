// Package shader holds the WGSL source of the aura mask compositor, its
// compilation to SPIR-V and the packing of its uniform block.
//
// The CPU compositor in package aura evaluates the same fragment math;
// this package is what a GPU surface binds:
//
//	binding 0  uniform block (Uniforms.Bytes, UniformSize bytes)
//	binding 1  mask texture, r channel, linear filtering, clamp to edge
//	binding 2  mask sampler
//
// The vertex stage draws one full-screen triangle from vertex_index, so
// no vertex buffer is bound.
package shader
