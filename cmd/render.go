package cmd

import (
	"fmt"

	"github.com/achilleasa/altitude/gpu/opengl"
	"github.com/achilleasa/altitude/renderer"
	"github.com/achilleasa/altitude/scene"
	"github.com/achilleasa/altitude/window"
	"github.com/urfave/cli"
)

// Exit status reported when the window or its context cannot be created.
const exitSetupFailure = -1

// Flags accepted by the render command.
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: scene.DefaultScene,
		Usage: "name of the built-in scene to render",
	},
	cli.BoolFlag{
		Name:  "wireframe",
		Usage: "draw polygon outlines",
	},
	cli.IntFlag{
		Name:  "frames",
		Value: 0,
		Usage: "exit after rendering this many frames; 0 renders until the window is closed",
	},
}

// Build the renderer options from the command line flags.
func renderOptions(ctx *cli.Context) (renderer.Options, error) {
	opts := renderer.DefaultOptions()
	opts.Wireframe = isSet(ctx, "wireframe")

	frames := ctx.Int("frames")
	if frames < 0 {
		return opts, fmt.Errorf("invalid frame count %d", frames)
	}
	opts.MaxFrames = uint64(frames)

	return opts, nil
}

// Open a window and render the selected scene until it is closed.
func Render(ctx *cli.Context) error {
	setupLogging(ctx)

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}

	sc, err := scene.Lookup(ctx.String("scene"))
	if err != nil {
		return err
	}

	win, err := window.Open(window.DefaultConfig(opts.Title, int(opts.FrameW), int(opts.FrameH)))
	if err != nil {
		logger.Errorf("failed to create window: %v", err)
		return cli.NewExitError("", exitSetupFailure)
	}

	drv, err := opengl.Init()
	if err != nil {
		win.Close()
		logger.Errorf("could not init opengl: %v", err)
		return cli.NewExitError("", exitSetupFailure)
	}
	logger.Infof("using OpenGL %s", drv.Version())

	r, err := renderer.New(sc, win, drv, opts)
	if err != nil {
		win.Close()
		return err
	}
	defer r.Close()

	if err = r.Render(); err != nil {
		return err
	}

	// Display stats
	displayFrameStats(r.Stats())

	return nil
}

func displayFrameStats(stats renderer.FrameStats) {
	logger.Noticef("frame statistics\n%s", stats.Table())
}
