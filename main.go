package main

import (
	"os"

	"github.com/achilleasa/bvhtree/cmd"
	"github.com/achilleasa/bvhtree/log"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	maxTrisFlag := cli.IntFlag{
		Name:   "max-tris",
		Value:  4,
		Usage:  "max number of triangles per BVH leaf",
		EnvVar: "BVH_MAX_TRIS",
	}

	app := cli.NewApp()
	app.Name = "bvhtree"
	app.Usage = "build flattened bounding volume hierarchies for triangle meshes"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "log level (debug, info, notice, warning, error)",
			EnvVar: "BVH_LOG_LEVEL",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "build",
			Usage: "build a BVH tree for wavefront obj files and display its statistics",
			Description: `
Parse the triangles defined by each wavefront obj file, recursively partition
them into a BVH tree using a median split along the longest bbox axis and
flatten the tree into a GPU-friendly node list.`,
			ArgsUsage: "scene_file1.obj scene_file2.obj ...",
			Flags:     []cli.Flag{maxTrisFlag},
			Action:    cmd.BuildTree,
		},
		{
			Name:      "dump",
			Usage:     "display the flattened BVH node list for a wavefront obj file",
			ArgsUsage: "scene_file.obj",
			Flags: []cli.Flag{
				maxTrisFlag,
				cli.IntFlag{
					Name:  "limit",
					Value: 0,
					Usage: "max number of nodes to display (0 displays all nodes)",
				},
			},
			Action: cmd.DumpTree,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("bvhtree").Error(err.Error())
		os.Exit(1)
	}
}
