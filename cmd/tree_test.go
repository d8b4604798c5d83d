package cmd

import (
	"strings"
	"testing"

	"github.com/achilleasa/bvhtree/asset/bvh"
	"github.com/achilleasa/bvhtree/types"
)

func TestFormatSerializedTree(t *testing.T) {
	tris := make([]*bvh.Triangle, 4)
	for index := range tris {
		x := float32(index)
		tris[index] = bvh.NewTriangle(types.XYZ(x-0.1, 0, 0), types.XYZ(x+0.1, 0, 0), types.XYZ(x, 0.1, 0))
	}

	tree, err := bvh.Build(tris, 1)
	if err != nil {
		t.Fatal(err)
	}

	out := formatSerializedTree(tree.SerializeTree(), 0)
	rows := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "|") {
			rows++
		}
	}

	// header + 7 nodes
	if rows != 8 {
		t.Fatalf("expected 8 table rows; got %d:\n%s", rows, out)
	}
	if !strings.Contains(out, "Sibling") {
		t.Fatalf("expected table header to include sibling column; got:\n%s", out)
	}

	out = formatSerializedTree(tree.SerializeTree(), 2)
	if !strings.Contains(out, "Omitted") || !strings.Contains(out, "5") {
		t.Fatalf("expected truncated table to report omitted rows; got:\n%s", out)
	}
}

func TestFmtIndex(t *testing.T) {
	if got := fmtIndex(bvh.NoIndex); got != "-" {
		t.Fatalf("expected missing index to be formatted as '-'; got %q", got)
	}
	if got := fmtIndex(3); got != "3" {
		t.Fatalf("expected index to be formatted as '3'; got %q", got)
	}
}
