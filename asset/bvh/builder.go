package bvh

import (
	"fmt"
	"sort"
	"time"

	"github.com/achilleasa/bvhtree/log"
)

type builder struct {
	logger log.Logger

	// Bvh nodes stored as a contiguous list
	nodes []Node

	// The max number of triangles that a leaf may hold.
	maxTris int

	// Stats
	stats Stats
}

// Construct a BVH from a list of triangles.
//
// At each node the triangles are sorted by centroid along the axis with the
// largest bounding box span and split at the first triangle whose centroid
// lies past the box centroid. If no such triangle exists the list is split in
// half. Nodes with at most maxTris triangles become leaves.
//
// The input slice is not modified. Build returns an error if maxTris < 1, the
// triangle list is empty or a split fails to produce two non-empty partitions.
func Build(triangles []*Triangle, maxTris int) (*BVH, error) {
	if maxTris < 1 {
		return nil, fmt.Errorf("%w; got %d", ErrInvalidMaxTris, maxTris)
	}
	if len(triangles) == 0 {
		return nil, ErrNoTriangles
	}

	workList := make([]*Triangle, len(triangles))
	for index, tri := range triangles {
		if tri == nil {
			return nil, fmt.Errorf("%w at index %d", ErrNilTriangle, index)
		}
		workList[index] = tri
	}

	b := &builder{
		logger:  log.New("bvh builder"),
		nodes:   make([]Node, 0, 2*len(triangles)/maxTris+1),
		maxTris: maxTris,
		stats: Stats{
			Triangles: len(triangles),
		},
	}

	start := time.Now()
	root, err := b.partition(workList, 0)
	if err != nil {
		return nil, err
	}
	b.stats.BuildTime = time.Since(start)

	b.logger.Debugf(
		"BVH tree build time: %d ms, maxDepth: %d, nodes: %d, leafs: %d",
		b.stats.BuildTime.Nanoseconds()/1e6,
		b.stats.MaxDepth, len(b.nodes), b.stats.Leaves,
	)

	return &BVH{
		nodes: b.nodes,
		root:  root,
		stats: b.stats,
	}, nil
}

// Partition worklist and return node index. The node slot is reserved before
// recursing so that the node list is laid out in pre-order.
func (b *builder) partition(workList []*Triangle, depth int) (int32, error) {
	if depth > b.stats.MaxDepth {
		b.stats.MaxDepth = depth
	}

	bbox := NewBoundingBox(workList...)
	if bbox.IsDegenerate() {
		b.logger.Warningf("degenerate bounding box for %d triangles at depth %d: %v", len(workList), depth, bbox.Bounds())
	}

	axis := bbox.LongestAxis()
	sortOnAxis(workList, axis)

	nodeIndex := int32(len(b.nodes))
	b.nodes = append(b.nodes, Node{})

	// Do we have few enough items to create a leaf?
	if len(workList) <= b.maxTris {
		b.nodes[nodeIndex] = newLeaf(bbox, axis, workList)
		b.stats.Leaves++
		if len(workList) > b.stats.MaxLeafTriangles {
			b.stats.MaxLeafTriangles = len(workList)
		}
		return nodeIndex, nil
	}

	splitIndex := splittingIndex(workList, bbox, axis)
	if splitIndex <= 0 || splitIndex >= len(workList) {
		return NoIndex, fmt.Errorf("%w: split index %d for %d triangles at depth %d", ErrEmptyPartition, splitIndex, len(workList), depth)
	}

	// Cap the left partition so it can never grow into the right one.
	leftIndex, err := b.partition(workList[:splitIndex:splitIndex], depth+1)
	if err != nil {
		return NoIndex, err
	}
	rightIndex, err := b.partition(workList[splitIndex:], depth+1)
	if err != nil {
		return NoIndex, err
	}

	b.nodes[nodeIndex] = newInterior(bbox, axis, leftIndex, rightIndex)
	b.stats.Interior++
	return nodeIndex, nil
}

// Sort triangles by their centroid along axis. The sort is stable so that
// triangles with equal centroids keep their input order.
func sortOnAxis(workList []*Triangle, axis Axis) {
	sort.SliceStable(workList, func(i, j int) bool {
		return workList[i].bbox.Center(axis) < workList[j].bbox.Center(axis)
	})
}

// Get the index of the first triangle whose centroid lies past the box
// centroid along axis. workList must be sorted on the same axis. Falls back
// to half the list length (rounded down) if no such triangle exists.
func splittingIndex(workList []*Triangle, bbox BoundingBox, axis Axis) int {
	median := bbox.Center(axis)
	for index, tri := range workList {
		if tri.bbox.Center(axis) > median {
			return index
		}
	}
	return len(workList) / 2
}
