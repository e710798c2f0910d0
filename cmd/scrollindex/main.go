package main

import (
	"fmt"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/urfave/cli/v2"
)

var log logger.Logger

func main() {
	err := newApp().Run(os.Args)
	logger.OnExit()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "scrollindex",
		Usage: "query item offsets and visible ranges of a virtualized list",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "sizes",
				Aliases: []string{"s"},
				Usage:   "size document (.cbor, .yaml, .yml or .json)",
				EnvVars: []string{"SCROLLINDEX_SIZES"},
			},
			&cli.IntFlag{
				Name:    "item-count",
				Aliases: []string{"n"},
				Usage:   "number of items, overrides the document",
			},
			&cli.Float64Flag{
				Name:  "item-size",
				Usage: "constant item size, overrides the document sizes",
			},
			&cli.Float64Flag{
				Name:  "estimated-size",
				Usage: "size assumed for items not yet measured in just-in-time mode",
			},
			&cli.BoolFlag{
				Name:  "just-in-time",
				Usage: "measure sizes lazily instead of building the full table",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "INFO",
				Usage:   "NOOP, DEBUG, INFO, WARN or ERROR",
				EnvVars: []string{"SCROLLINDEX_LOG_LEVEL"},
			},
		},
		Before: setLogger,
		Commands: []*cli.Command{
			totalFlags(),
			positionFlags(),
			rangeFlags(),
			scrollToFlags(),
			tableFlags(),
			convertFlags(),
		},
	}
}

func setLogger(ctx *cli.Context) error {
	logger.New(ctx.String("log-level"))
	log = logger.Sugar.WithServiceName("scrollindex")
	return nil
}
