package glow

import (
	"math"
	"sync"
)

// GaussianKernel generates a normalized 1D Gaussian kernel for sigma.
// The kernel size is 2 * ceil(sigma * 3) + 1, covering 99.7% of the
// distribution. For sigma <= 0 it returns the identity kernel [1].
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1.0}
	}

	halfSize := int(math.Ceil(sigma * 3))
	size := halfSize*2 + 1
	kernel := make([]float32, size)

	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)
	for i := 0; i < size; i++ {
		x := float64(i - halfSize)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	invSum := float32(1.0 / sum)
	for i := range kernel {
		kernel[i] *= invSum
	}
	return kernel
}

// kernelCache memoizes kernels keyed by sigma quantized to 0.01.
// The overlay uses a single glow radius, so the cache stays tiny.
type kernelCache struct {
	mu    sync.RWMutex
	cache map[int][]float32
}

var defaultKernelCache = &kernelCache{cache: make(map[int][]float32)}

func (c *kernelCache) get(sigma float64) []float32 {
	key := int(sigma * 100)

	c.mu.RLock()
	kernel, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return kernel
	}

	kernel = GaussianKernel(sigma)
	c.mu.Lock()
	c.cache[key] = kernel
	c.mu.Unlock()
	return kernel
}

// CachedGaussianKernel returns a shared kernel for sigma.
// Callers must not modify the returned slice.
func CachedGaussianKernel(sigma float64) []float32 {
	return defaultKernelCache.get(sigma)
}
