package cmd

import (
	"github.com/achilleasa/altitude/scene"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	for _, name := range scene.Names() {
		sc, err := scene.Lookup(name)
		if err != nil {
			return err
		}

		logger.Noticef("scene %q: %s\n%s", sc.Name, sc.Description, sc.Stats())
	}

	return nil
}
