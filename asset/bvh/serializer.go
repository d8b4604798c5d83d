package bvh

// A flattened BVH node. Links are indices into the serialized list and hold
// NoIndex when absent: the root has no parent and no sibling, leaves have no
// children.
type SerializedNode struct {
	Node *Node

	Parent  int32
	Left    int32
	Right   int32
	Sibling int32
}

// The running state of a pre-order traversal.
type serializer struct {
	tree  *BVH
	nodes []SerializedNode

	// Index assigned to the last visited node.
	counter int32
}

// Flatten the tree into a pre-order list. The root is stored at index 0 and
// every node is stored before its children, so each parent index is smaller
// than the index of the nodes pointing to it.
func (t *BVH) SerializeTree() []SerializedNode {
	s := &serializer{
		tree:    t,
		nodes:   make([]SerializedNode, 0, len(t.nodes)),
		counter: NoIndex,
	}
	s.visit(t.root, NoIndex)
	return s.nodes
}

// Serialize the subtree rooted at nodeIndex and return the serialized index
// assigned to it.
func (s *serializer) visit(nodeIndex, parent int32) int32 {
	s.counter++
	self := s.counter

	node := &s.tree.nodes[nodeIndex]
	s.nodes = append(s.nodes, SerializedNode{
		Node:    node,
		Parent:  parent,
		Left:    NoIndex,
		Right:   NoIndex,
		Sibling: NoIndex,
	})

	if node.IsLeaf() {
		return self
	}

	left := s.visit(node.left, self)
	right := s.visit(node.right, self)

	s.nodes[self].Left = left
	s.nodes[self].Right = right
	s.nodes[left].Sibling = right
	s.nodes[right].Sibling = left
	return self
}
