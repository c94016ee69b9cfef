// Package filter provides the image filters software backends use for
// shadows:
//   - Gaussian kernels, cached per radius
//   - Separable alpha blur with clamped edges
//   - Drop shadow (offset + blur + colorize)
//
// Filters work on image.RGBA layers and return new layers; compositing the
// result is left to the caller.
package filter
