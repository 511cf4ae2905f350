package main

import (
	"fmt"
	"os"

	"github.com/achilleasa/altitude/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "altitude"
	app.Usage = "render fixed triangle meshes with OpenGL"
	app.Version = "0.0.1"
	app.Flags = append([]cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}, cmd.RenderFlags...)
	app.Action = cmd.Render
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene",
			Description: `
Open an 800x600 window and draw the selected scene every frame until the
window is closed or the escape key is pressed. Running the app without a
command is equivalent to running this command.`,
			Flags:  cmd.RenderFlags,
			Action: cmd.Render,
		},
		{
			Name:   "list-scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
