package recording

import (
	"image"

	"github.com/gogpu/canvas"
)

// ResourcePool stores resources referenced by recording commands.
// Resources are stored in slices indexed by their reference types.
//
// Paths are cloned on first sight and deduplicated by canvas.PathKey, so a
// path drawn many times without changing is stored once. Mutating a path
// changes its key and stores a new copy.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths    []*canvas.Path
	pathRefs map[canvas.PathKey]PathRef
	paints   []canvas.ResolvedPaint
	images   []image.Image
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths:    make([]*canvas.Path, 0, 64),
		pathRefs: make(map[canvas.PathKey]PathRef),
		paints:   make([]canvas.ResolvedPaint, 0, 32),
		images:   make([]image.Image, 0, 8),
	}
}

// AddPath returns the reference of path, cloning it into the pool the
// first time its current key is seen.
func (p *ResourcePool) AddPath(path *canvas.Path) PathRef {
	if path == nil {
		return PathRef(InvalidRef)
	}
	key := path.Key()
	if ref, ok := p.pathRefs[key]; ok {
		return ref
	}
	p.paths = append(p.paths, path.Clone())
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := PathRef(uint32(len(p.paths) - 1))
	p.pathRefs[key] = ref
	return ref
}

// GetPath returns the path for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetPath(ref PathRef) *canvas.Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}

// AddPaint adds a resolved paint and returns its reference. Gradient stops
// are copied so the recording does not alias the canvas state.
func (p *ResourcePool) AddPaint(paint canvas.ResolvedPaint) PaintRef {
	if g, ok := paint.(canvas.GradientRamp); ok {
		g.Stops = append([]canvas.ColorStop(nil), g.Stops...)
		paint = g
	}
	p.paints = append(p.paints, paint)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PaintRef(uint32(len(p.paints) - 1))
}

// GetPaint returns the paint for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetPaint(ref PaintRef) canvas.ResolvedPaint {
	if int(ref) >= len(p.paints) {
		return nil
	}
	return p.paints[ref]
}

// PaintCount returns the number of paints in the pool.
func (p *ResourcePool) PaintCount() int {
	return len(p.paints)
}

// AddImage adds an image to the pool and returns its reference.
// Images are stored directly as Go's image.Image is treated as immutable.
func (p *ResourcePool) AddImage(img image.Image) ImageRef {
	p.images = append(p.images, img)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return ImageRef(uint32(len(p.images) - 1))
}

// GetImage returns the image for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetImage(ref ImageRef) image.Image {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int {
	return len(p.images)
}

// Clear removes all resources from the pool.
// This does not release the underlying memory; use NewResourcePool for that.
func (p *ResourcePool) Clear() {
	p.paths = p.paths[:0]
	clear(p.pathRefs)
	p.paints = p.paints[:0]
	p.images = p.images[:0]
}
