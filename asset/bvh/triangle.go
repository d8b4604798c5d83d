package bvh

import "github.com/achilleasa/bvhtree/types"

// Triangle is the primitive partitioned by the BVH builder. Vertex indices,
// UVs, normals and the transform are optional and carried through the build
// untouched.
type Triangle struct {
	vertices [3]types.Vec3

	indices   *[3]int32
	uvs       *[3]types.Vec2
	normals   *[3]types.Vec3
	transform *types.Mat4

	// Calculated once from the vertices.
	bbox BoundingBox
}

// Create a triangle from its three vertices.
func NewTriangle(v1, v2, v3 types.Vec3) *Triangle {
	tri := &Triangle{
		vertices: [3]types.Vec3{v1, v2, v3},
	}
	tri.bbox = NewBoundingBox(tri)
	return tri
}

// Get triangle vertices.
func (t *Triangle) Vertices() [3]types.Vec3 {
	return t.vertices
}

// Get the triangle AABB.
func (t *Triangle) BBox() BoundingBox {
	return t.bbox
}

// Set the indices of the triangle vertices in the source vertex list.
func (t *Triangle) SetIndices(indices [3]int32) {
	t.indices = &indices
}

// Get vertex indices; ok is false if they were never assigned.
func (t *Triangle) Indices() (indices [3]int32, ok bool) {
	if t.indices == nil {
		return indices, false
	}
	return *t.indices, true
}

// Set per-vertex UV coordinates.
func (t *Triangle) SetUVs(uvs [3]types.Vec2) {
	t.uvs = &uvs
}

// Get per-vertex UV coordinates; ok is false if they were never assigned.
func (t *Triangle) UVs() (uvs [3]types.Vec2, ok bool) {
	if t.uvs == nil {
		return uvs, false
	}
	return *t.uvs, true
}

// Set per-vertex normals.
func (t *Triangle) SetNormals(normals [3]types.Vec3) {
	t.normals = &normals
}

// Get per-vertex normals; ok is false if they were never assigned.
func (t *Triangle) Normals() (normals [3]types.Vec3, ok bool) {
	if t.normals == nil {
		return normals, false
	}
	return *t.normals, true
}

// Set the transformation associated with this triangle.
func (t *Triangle) SetTransform(transform types.Mat4) {
	t.transform = &transform
}

// Get the triangle transformation or nil if none is assigned.
func (t *Triangle) Transform() *types.Mat4 {
	return t.transform
}
