package bvh

import "errors"

var (
	ErrInvalidMaxTris = errors.New("bvh: max triangles per leaf must be at least 1")
	ErrNoTriangles    = errors.New("bvh: no triangles to partition")
	ErrNilTriangle    = errors.New("bvh: nil triangle in partition list")
	ErrEmptyPartition = errors.New("bvh: split produced an empty partition")
)
