package bvh

// NoIndex marks an absent parent, child or sibling link.
const NoIndex int32 = -1

// A BVH tree node. Leaves own an ordered triangle list; interior nodes own
// exactly two children referenced by their index in the BVH node list.
// Nodes are never modified once the build completes.
type Node struct {
	bbox BoundingBox

	// The axis used to order the node triangles.
	axis Axis

	// Leaf triangles; nil for interior nodes.
	triangles []*Triangle

	// Child node indices; NoIndex for leaves.
	left, right int32
}

func newLeaf(bbox BoundingBox, axis Axis, triangles []*Triangle) Node {
	return Node{
		bbox:      bbox,
		axis:      axis,
		triangles: triangles,
		left:      NoIndex,
		right:     NoIndex,
	}
}

func newInterior(bbox BoundingBox, axis Axis, left, right int32) Node {
	return Node{
		bbox:  bbox,
		axis:  axis,
		left:  left,
		right: right,
	}
}

// Get the node AABB.
func (n *Node) BBox() BoundingBox {
	return n.bbox
}

// Get the axis used to order the node triangles before splitting.
func (n *Node) Axis() Axis {
	return n.axis
}

// Returns true if this is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.left == NoIndex
}

// Get the triangles stored in a leaf. Interior nodes return nil.
func (n *Node) Triangles() []*Triangle {
	return n.triangles
}

// Get the left and right child indices. Leaves return NoIndex for both.
func (n *Node) Children() (left, right int32) {
	return n.left, n.right
}

// A BVH tree stored as a contiguous node list.
type BVH struct {
	nodes []Node
	root  int32
	stats Stats
}

// Get the root node.
func (t *BVH) Root() *Node {
	return &t.nodes[t.root]
}

// Get the index of the root node.
func (t *BVH) RootIndex() int32 {
	return t.root
}

// Get the node at the given index.
func (t *BVH) Node(index int32) *Node {
	return &t.nodes[index]
}

// Get the total number of nodes (leaves and interior).
func (t *BVH) NodeCount() int {
	return len(t.nodes)
}

// Get build statistics.
func (t *BVH) Stats() Stats {
	return t.stats
}
