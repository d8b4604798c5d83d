package bvh

import (
	"github.com/achilleasa/bvhtree/types"
	"github.com/chewxy/math32"
)

type Axis uint8

const (
	XAxis Axis = iota
	YAxis
	ZAxis
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case XAxis:
		return "x"
	case YAxis:
		return "y"
	case ZAxis:
		return "z"
	}
	return "?"
}

// BoundingBox is the minimal axis-aligned box enclosing a set of triangles.
// The centroid is the midpoint of the box extents on each axis, not the
// average of the enclosed vertices.
type BoundingBox struct {
	// Layout: xmin, xmax, ymin, ymax, zmin, zmax
	bounds [6]float32

	centroid types.Vec3
}

// Create the bounding box for a set of triangles. An empty triangle set yields
// an inverted box with min=+Inf and max=-Inf on every axis.
func NewBoundingBox(tris ...*Triangle) BoundingBox {
	var bbox BoundingBox
	for axis := 0; axis < 3; axis++ {
		bbox.bounds[axis*2] = math32.Inf(1)
		bbox.bounds[axis*2+1] = math32.Inf(-1)
	}

	for _, tri := range tris {
		for _, v := range tri.vertices {
			bbox.extend(v)
		}
	}

	bbox.updateCentroid()
	return bbox
}

func (b *BoundingBox) extend(v types.Vec3) {
	for axis := 0; axis < 3; axis++ {
		b.bounds[axis*2] = math32.Min(b.bounds[axis*2], v[axis])
		b.bounds[axis*2+1] = math32.Max(b.bounds[axis*2+1], v[axis])
	}
}

func (b *BoundingBox) updateCentroid() {
	for axis := 0; axis < 3; axis++ {
		b.centroid[axis] = (b.bounds[axis*2] + b.bounds[axis*2+1]) / 2
	}
}

// Get the box extents ordered as (xmin, xmax, ymin, ymax, zmin, zmax).
func (b BoundingBox) Bounds() [6]float32 {
	return b.bounds
}

// Get the box min corner.
func (b BoundingBox) Min() types.Vec3 {
	return types.Vec3{b.bounds[0], b.bounds[2], b.bounds[4]}
}

// Get the box max corner.
func (b BoundingBox) Max() types.Vec3 {
	return types.Vec3{b.bounds[1], b.bounds[3], b.bounds[5]}
}

// Get the box centroid along an axis.
func (b BoundingBox) Center(axis Axis) float32 {
	return b.centroid[axis]
}

// Get the box side length along an axis.
func (b BoundingBox) Span(axis Axis) float32 {
	return math32.Abs(b.bounds[axis*2] - b.bounds[axis*2+1])
}

// Get the axis with the largest span. When several axes share the largest
// span the lowest one wins; a box with no positive span selects XAxis.
func (b BoundingBox) LongestAxis() Axis {
	bestAxis := XAxis
	var bestSpan float32
	for axis := XAxis; axis <= ZAxis; axis++ {
		if span := b.Span(axis); span > bestSpan {
			bestSpan = span
			bestAxis = axis
		}
	}
	return bestAxis
}

// Returns true if the box has zero or non-finite span on every axis.
func (b BoundingBox) IsDegenerate() bool {
	for axis := XAxis; axis <= ZAxis; axis++ {
		span := b.Span(axis)
		if span > 0 && !math32.IsInf(span, 0) && !math32.IsNaN(span) {
			return false
		}
	}
	return true
}

// Get a box enclosing both this box and other.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	out := b
	out.extend(other.Min())
	out.extend(other.Max())
	out.updateCentroid()
	return out
}
