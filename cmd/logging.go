package cmd

import (
	"github.com/achilleasa/altitude/log"
	"github.com/urfave/cli"
)

var logger = log.New("altitude")

func setupLogging(ctx *cli.Context) {
	log.SetLevel(log.LevelForVerbosity(isSet(ctx, "v"), isSet(ctx, "vv")))
}

// Check a boolean flag on the command and on the app.
func isSet(ctx *cli.Context, name string) bool {
	return ctx.Bool(name) || ctx.GlobalBool(name)
}
