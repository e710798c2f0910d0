package main

import (
	"errors"
	"strconv"

	"github.com/forestrie/go-scrollindex/sizedoc"
	"github.com/forestrie/go-scrollindex/sizeindex"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

var errNoSizes = errors.New("a size document (--sizes) or --item-size with --item-count is needed")

// loadDocument reads the size document, if any, and applies the flag
// overrides on top of it.
func loadDocument(ctx *cli.Context) (sizedoc.Document, error) {
	var doc sizedoc.Document
	if path := ctx.String("sizes"); path != "" {
		var err error
		if doc, err = sizedoc.Load(path); err != nil {
			return sizedoc.Document{}, err
		}
		log.Debugf("loaded %s: %d items", path, doc.Count())
	}

	if ctx.IsSet("item-count") {
		n := ctx.Int("item-count")
		doc.ItemCount = &n
	}
	if ctx.IsSet("item-size") {
		if doc.ItemCount == nil && len(doc.Sizes) > 0 {
			n := len(doc.Sizes)
			doc.ItemCount = &n
		}
		size := ctx.Float64("item-size")
		doc.ItemSize = &size
		doc.Sizes = nil
	}
	if ctx.IsSet("estimated-size") {
		doc.EstimatedItemSize = ctx.Float64("estimated-size")
	}
	if ctx.IsSet("just-in-time") {
		doc.JustInTime = ctx.Bool("just-in-time")
	}

	if doc.ItemSize == nil && len(doc.Sizes) == 0 {
		return sizedoc.Document{}, errNoSizes
	}
	return doc, doc.Validate()
}

func loadIndex(ctx *cli.Context) (*sizeindex.Index, error) {
	doc, err := loadDocument(ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := doc.Config()
	if err != nil {
		return nil, err
	}
	return sizeindex.New(cfg, sizeindex.WithLogger(log))
}

func indexArg(ctx *cli.Context, i int) (int, error) {
	if ctx.Args().Len() <= i {
		return 0, errors.New("INDEX is needed")
	}
	return strconv.Atoi(ctx.Args().Get(i))
}

func printYAML(ctx *cli.Context, v any) error {
	enc := yaml.NewEncoder(ctx.App.Writer)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
