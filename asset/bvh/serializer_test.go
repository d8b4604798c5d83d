package bvh

import (
	"reflect"
	"testing"

	"github.com/achilleasa/bvhtree/types"
)

func TestSerializeSingleLeaf(t *testing.T) {
	tree, err := Build([]*Triangle{triangleAt(types.XYZ(0, 0, 0))}, 1)
	if err != nil {
		t.Fatal(err)
	}

	nodes := tree.SerializeTree()
	if len(nodes) != 1 {
		t.Fatalf("expected 1 serialized node; got %d", len(nodes))
	}

	exp := SerializedNode{Node: tree.Root(), Parent: NoIndex, Left: NoIndex, Right: NoIndex, Sibling: NoIndex}
	if nodes[0] != exp {
		t.Fatalf("expected serialized root to be %+v; got %+v", exp, nodes[0])
	}
}

func TestSerializeLinks(t *testing.T) {
	tris := make([]*Triangle, 4)
	for index := range tris {
		tris[index] = triangleAt(types.XYZ(float32(index), 0, 0))
	}

	tree, err := Build(tris, 1)
	if err != nil {
		t.Fatal(err)
	}

	type links struct {
		parent, left, right, sibling int32
	}
	expLinks := []links{
		{NoIndex, 1, 4, NoIndex},
		{0, 2, 3, 4},
		{1, NoIndex, NoIndex, 3},
		{1, NoIndex, NoIndex, 2},
		{0, 5, 6, 1},
		{4, NoIndex, NoIndex, 6},
		{4, NoIndex, NoIndex, 5},
	}

	nodes := tree.SerializeTree()
	if len(nodes) != len(expLinks) {
		t.Fatalf("expected %d serialized nodes; got %d", len(expLinks), len(nodes))
	}

	for index, exp := range expLinks {
		sn := nodes[index]
		got := links{sn.Parent, sn.Left, sn.Right, sn.Sibling}
		if got != exp {
			t.Fatalf("expected node %d links to be %+v; got %+v", index, exp, got)
		}
	}

	expLeafTris := map[int]*Triangle{2: tris[0], 3: tris[1], 5: tris[2], 6: tris[3]}
	for index, tri := range expLeafTris {
		if got := nodes[index].Node.Triangles(); len(got) != 1 || got[0] != tri {
			t.Fatalf("expected serialized leaf %d to contain triangle %d", index, index)
		}
	}
}

func TestSerializeInvariants(t *testing.T) {
	tree, err := Build(randomTriangles(500, 1234), 4)
	if err != nil {
		t.Fatal(err)
	}

	nodes := tree.SerializeTree()
	if len(nodes) != tree.NodeCount() {
		t.Fatalf("expected %d serialized nodes; got %d", tree.NodeCount(), len(nodes))
	}
	if nodes[0].Parent != NoIndex || nodes[0].Sibling != NoIndex {
		t.Fatalf("expected root to have no parent or sibling; got %+v", nodes[0])
	}
	if nodes[0].Node != tree.Root() {
		t.Fatal("expected root to be serialized first")
	}

	for index, sn := range nodes {
		if index > 0 && (sn.Parent < 0 || sn.Parent >= int32(index)) {
			t.Fatalf("expected node %d parent to precede it; got %d", index, sn.Parent)
		}

		if sn.Node.IsLeaf() {
			if sn.Left != NoIndex || sn.Right != NoIndex {
				t.Fatalf("expected leaf %d to have no children; got %d, %d", index, sn.Left, sn.Right)
			}
			continue
		}

		l, r := sn.Left, sn.Right
		if l != int32(index)+1 {
			t.Fatalf("expected left child of %d to follow it; got %d", index, l)
		}
		if nodes[l].Parent != int32(index) || nodes[r].Parent != int32(index) {
			t.Fatalf("expected children of %d to point back to it", index)
		}
		if nodes[l].Sibling != r || nodes[r].Sibling != l {
			t.Fatalf("expected children %d and %d of %d to be symmetric siblings", l, r, index)
		}
	}
}

func TestSerializeIdempotence(t *testing.T) {
	tree, err := Build(randomTriangles(64, 99), 2)
	if err != nil {
		t.Fatal(err)
	}

	first := tree.SerializeTree()
	second := tree.SerializeTree()
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected serializing the same tree twice to yield identical output")
	}
}
