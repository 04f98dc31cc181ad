package main

import (
	"os"

	"github.com/prism-render/prism/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "prism"
	app.Usage = "render scenes using progressive path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to a PNG file",
			Description: `
Render one of the built-in scenes progressively: every frame adds a batch of
samples per pixel to a persistent running average, so longer runs converge to
a cleaner image. The tone-mapped result is written once all frames finish.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "built-in scene name (default, cornell)",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 16,
					Usage: "samples per pixel per frame",
				},
				cli.IntFlag{
					Name:  "frames",
					Value: 4,
					Usage: "number of progressive frames to accumulate",
				},
				cli.Float64Flag{
					Name:  "exposure",
					Value: 1.0,
					Usage: "camera exposure for tone-mapping",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "render workers (0 = all CPUs)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
				cli.IntFlag{
					Name:  "preview",
					Value: 0,
					Usage: "also write a downscaled preview with this edge length",
				},
				cli.BoolFlag{
					Name:  "upload",
					Usage: "publish the finished frame to the configured S3 bucket",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:      "publish",
			Usage:     "upload an already rendered image to the configured S3 bucket",
			ArgsUsage: "frame.png",
			Action:    cmd.Publish,
		},
	}

	app.Run(os.Args)
}
