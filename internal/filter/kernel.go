package filter

import (
	"math"

	"github.com/gogpu/canvas/internal/cache"
)

// GaussianKernel generates a 1D Gaussian kernel for the given radius.
// The kernel is normalized so all values sum to 1.0.
//
// The kernel size is computed as 2 * ceil(radius * 3) + 1, which covers
// 99.7% of the Gaussian distribution (3 standard deviations).
//
// For radius <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel(radius float64) []float32 {
	if radius <= 0 {
		return []float32{1.0}
	}

	sigma := radius
	halfSize := KernelRadius(radius)
	kernel := make([]float32, halfSize*2+1)

	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)
	for i := range kernel {
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

// KernelRadius returns the half width of the kernel for radius.
func KernelRadius(radius float64) int {
	if radius <= 0 {
		return 0
	}
	return int(math.Ceil(radius * 3))
}

// kernels caches Gaussian kernels keyed by radius * 100.
var kernels = cache.New[int, []float32](64)

// CachedGaussianKernel returns a cached Gaussian kernel for the radius,
// quantized to 0.01.
func CachedGaussianKernel(radius float64) []float32 {
	key := int(math.Round(radius * 100))
	k, _ := kernels.GetOrCreate(key, func() ([]float32, error) {
		return GaussianKernel(float64(key) / 100), nil
	})
	return k
}
