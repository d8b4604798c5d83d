package bvh

import (
	"testing"

	"github.com/achilleasa/bvhtree/types"
)

func TestTriangleOptionalAttributes(t *testing.T) {
	tri := NewTriangle(types.XYZ(0, 0, 0), types.XYZ(1, 0, 0), types.XYZ(0, 1, 0))

	if _, ok := tri.Indices(); ok {
		t.Fatal("expected indices to be unset")
	}
	if _, ok := tri.UVs(); ok {
		t.Fatal("expected uvs to be unset")
	}
	if _, ok := tri.Normals(); ok {
		t.Fatal("expected normals to be unset")
	}
	if tri.Transform() != nil {
		t.Fatal("expected transform to be unset")
	}

	tri.SetIndices([3]int32{4, 5, 6})
	tri.SetUVs([3]types.Vec2{types.XY(0, 0), types.XY(1, 0), types.XY(0, 1)})
	tri.SetNormals([3]types.Vec3{types.XYZ(0, 0, 1), types.XYZ(0, 0, 1), types.XYZ(0, 0, 1)})
	tri.SetTransform(types.Ident4())

	if indices, ok := tri.Indices(); !ok || indices != [3]int32{4, 5, 6} {
		t.Fatalf("expected indices [4 5 6]; got %v", indices)
	}
	if uvs, ok := tri.UVs(); !ok || uvs[1] != types.XY(1, 0) {
		t.Fatalf("unexpected uvs %v", uvs)
	}
	if normals, ok := tri.Normals(); !ok || normals[2] != types.XYZ(0, 0, 1) {
		t.Fatalf("unexpected normals %v", normals)
	}
	if tr := tri.Transform(); tr == nil || *tr != types.Ident4() {
		t.Fatalf("expected identity transform; got %v", tr)
	}

	// Attributes do not affect the bounding box
	expBounds := [6]float32{0, 1, 0, 1, 0, 0}
	if tri.BBox().Bounds() != expBounds {
		t.Fatalf("expected bounds to be %v; got %v", expBounds, tri.BBox().Bounds())
	}
}
