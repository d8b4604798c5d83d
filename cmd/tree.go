package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/achilleasa/bvhtree/asset/bvh"
	"github.com/achilleasa/bvhtree/asset/reader"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Build a BVH for each obj file argument and display its statistics.
func BuildTree(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() == 0 {
		return errors.New("missing wavefront obj file")
	}

	for idx := 0; idx < ctx.NArg(); idx++ {
		sceneFile := ctx.Args().Get(idx)
		if !strings.HasSuffix(sceneFile, ".obj") {
			logger.Warningf("skipping unsupported file %s", sceneFile)
			continue
		}

		tree, err := buildTree(sceneFile, ctx.Int("max-tris"))
		if err != nil {
			return err
		}

		packed, _ := bvh.Pack(tree.SerializeTree())
		logger.Noticef("BVH information for %s (%d packed nodes):\n%s", sceneFile, len(packed), tree.Stats().Table())
	}

	return nil
}

// Display the flattened BVH for an obj file.
func DumpTree(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("expected a single wavefront obj file")
	}

	tree, err := buildTree(ctx.Args().First(), ctx.Int("max-tris"))
	if err != nil {
		return err
	}

	fmt.Fprint(ctx.App.Writer, formatSerializedTree(tree.SerializeTree(), ctx.Int("limit")))
	return nil
}

func buildTree(sceneFile string, maxTris int) (*bvh.BVH, error) {
	tris, err := reader.ReadTriangles(sceneFile)
	if err != nil {
		return nil, err
	}

	logger.Infof("building BVH tree for %s (%d triangles, max %d per leaf)", sceneFile, len(tris), maxTris)
	return bvh.Build(tris, maxTris)
}

// Render serialized nodes as a table. If limit > 0 only the first limit
// nodes are included.
func formatSerializedTree(nodes []bvh.SerializedNode, limit int) string {
	if limit <= 0 || limit > len(nodes) {
		limit = len(nodes)
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Index", "Parent", "Left", "Right", "Sibling", "Axis", "Triangles", "Min", "Max"})
	for index, sn := range nodes[:limit] {
		triCount := "-"
		if sn.Node.IsLeaf() {
			triCount = fmt.Sprint(len(sn.Node.Triangles()))
		}

		bbox := sn.Node.BBox()
		table.Append([]string{
			fmt.Sprint(index),
			fmtIndex(sn.Parent),
			fmtIndex(sn.Left),
			fmtIndex(sn.Right),
			fmtIndex(sn.Sibling),
			sn.Node.Axis().String(),
			triCount,
			fmt.Sprintf("%v", bbox.Min()),
			fmt.Sprintf("%v", bbox.Max()),
		})
	}
	if limit < len(nodes) {
		table.SetFooter([]string{"", "", "", "", "", "", "", "Omitted", fmt.Sprint(len(nodes) - limit)})
	}

	table.Render()
	return buf.String()
}

func fmtIndex(index int32) string {
	if index == bvh.NoIndex {
		return "-"
	}
	return fmt.Sprint(index)
}
