package bvh

import (
	"unsafe"

	"github.com/achilleasa/bvhtree/types"
)

// A fixed-size BVH node suitable for uploading to a GPU buffer.
//
// The LData and RData fields are multipurpose and their value depends on the
// node type:
//
// - For interior nodes they are both > 0 and point to the L/R child nodes
// - For leaves LData is <= 0 and holds the negated index of the first leaf
// triangle while RData holds the number of leaf triangles
//
// Parent and Sibling allow stackless traversal; both are -1 when absent.
type PackedNode struct {
	Min   types.Vec3
	LData int32

	Max   types.Vec3
	RData int32

	Parent  int32
	Sibling int32
	Axis    uint32

	padding uint32
}

var packedNodeSize = int(unsafe.Sizeof(PackedNode{}))

// Returns true if this is a leaf node.
func (n *PackedNode) IsLeaf() bool {
	return n.LData <= 0
}

// Get left and right child node indices.
func (n *PackedNode) ChildNodes() (left, right uint32) {
	return uint32(n.LData), uint32(n.RData)
}

// Get first triangle index and triangle count.
func (n *PackedNode) Triangles() (first, count uint32) {
	return uint32(-n.LData), uint32(n.RData)
}

func (n *PackedNode) setChildNodes(left, right int32) {
	n.LData = left
	n.RData = right
}

func (n *PackedNode) setTriangles(first, count int) {
	n.LData = -int32(first)
	n.RData = int32(count)
}

// Pack a serialized BVH into fixed-size node records, preserving the
// serialized order. The returned triangle list stores the triangles of each
// leaf contiguously, in leaf visiting order; packed leaves index into it.
func Pack(serialized []SerializedNode) ([]PackedNode, []*Triangle) {
	packed := make([]PackedNode, len(serialized))
	triangles := make([]*Triangle, 0)

	for index, sn := range serialized {
		pn := &packed[index]
		bbox := sn.Node.BBox()
		pn.Min = bbox.Min()
		pn.Max = bbox.Max()
		pn.Parent = sn.Parent
		pn.Sibling = sn.Sibling
		pn.Axis = uint32(sn.Node.Axis())

		if sn.Node.IsLeaf() {
			leafTris := sn.Node.Triangles()
			pn.setTriangles(len(triangles), len(leafTris))
			triangles = append(triangles, leafTris...)
			continue
		}

		pn.setChildNodes(sn.Left, sn.Right)
	}

	return packed, triangles
}
