package main

import (
	"fmt"

	"github.com/forestrie/go-scrollindex/sizedoc"
	"github.com/urfave/cli/v2"
)

func convertFlags() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "write the size document, with flag overrides applied, in another format",
		ArgsUsage: "OUTPUT",
		Action:    convert,
	}
}

func convert(ctx *cli.Context) error {
	if ctx.Args().Len() < 1 {
		return fmt.Errorf("OUTPUT is needed")
	}
	out := ctx.Args().Get(0)

	doc, err := loadDocument(ctx)
	if err != nil {
		return err
	}
	if err = sizedoc.Save(out, doc); err != nil {
		return err
	}
	log.Infof("wrote %d items to %s", doc.Count(), out)
	return nil
}
