package bvh

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// Stats collected while building a BVH.
type Stats struct {
	// Number of partitioned triangles.
	Triangles int

	// Node counts.
	Interior int
	Leaves   int

	// Depth of the deepest node; the root is at depth 0.
	MaxDepth int

	// Largest number of triangles stored in a single leaf.
	MaxLeafTriangles int

	BuildTime time.Duration
}

// Get the total number of nodes.
func (s Stats) Nodes() int {
	return s.Interior + s.Leaves
}

// Build a tabular representation of the stats.
func (s Stats) Table() string {
	var avgLeafTris float32
	if s.Leaves > 0 {
		avgLeafTris = float32(s.Triangles) / float32(s.Leaves)
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Triangles", fmt.Sprint(s.Triangles)})
	table.Append([]string{"Nodes", fmt.Sprint(s.Nodes())})
	table.Append([]string{"Interior nodes", fmt.Sprint(s.Interior)})
	table.Append([]string{"Leaves", fmt.Sprint(s.Leaves)})
	table.Append([]string{"Max depth", fmt.Sprint(s.MaxDepth)})
	table.Append([]string{"Max leaf triangles", fmt.Sprint(s.MaxLeafTriangles)})
	table.Append([]string{"Avg leaf triangles", fmt.Sprintf("%.2f", avgLeafTris)})
	table.Append([]string{"Packed size", fmtSize(s.Nodes() * packedNodeSize)})
	table.SetFooter([]string{"Build time", s.BuildTime.String()})

	table.Render()
	return buf.String()
}

// Format a byte count with the appropriate byte/kb/mb unit.
func fmtSize(totalBytes int) string {
	if totalBytes < 1e3 {
		return fmt.Sprintf("%d bytes", totalBytes)
	} else if totalBytes < 1e6 {
		return fmt.Sprintf("%.1f kb", float32(totalBytes)/1e3)
	}
	return fmt.Sprintf("%.1f mb", float32(totalBytes)/1e6)
}
