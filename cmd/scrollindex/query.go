package main

import (
	"fmt"

	"github.com/forestrie/go-scrollindex/sizeindex"
	"github.com/urfave/cli/v2"
)

type totalResult struct {
	ItemCount         int     `yaml:"item_count"`
	TotalSize         float64 `yaml:"total_size"`
	Exact             bool    `yaml:"exact"`
	LastMeasuredIndex int     `yaml:"last_measured_index"`
}

type positionResult struct {
	Index  int     `yaml:"index"`
	Offset float64 `yaml:"offset"`
	Size   float64 `yaml:"size"`
}

type rangeResult struct {
	Empty bool `yaml:"empty,omitempty"`
	Start int  `yaml:"start"`
	Stop  int  `yaml:"stop"`
}

type scrollResult struct {
	Index  int     `yaml:"index"`
	Align  string  `yaml:"align"`
	Offset float64 `yaml:"offset"`
}

func totalFlags() *cli.Command {
	return &cli.Command{
		Name:   "total",
		Usage:  "show the total size of all items",
		Action: total,
	}
}

func total(ctx *cli.Context) error {
	x, err := loadIndex(ctx)
	if err != nil {
		return err
	}
	return printYAML(ctx, totalResult{
		ItemCount:         x.ItemCount(),
		TotalSize:         x.TotalSize(),
		Exact:             x.LastMeasuredIndex() == x.ItemCount()-1,
		LastMeasuredIndex: x.LastMeasuredIndex(),
	})
}

func positionFlags() *cli.Command {
	return &cli.Command{
		Name:      "position",
		Usage:     "show the offset and size of items",
		ArgsUsage: "INDEX...",
		Action:    position,
	}
}

func position(ctx *cli.Context) error {
	x, err := loadIndex(ctx)
	if err != nil {
		return err
	}
	if ctx.Args().Len() < 1 {
		return fmt.Errorf("INDEX is needed")
	}

	results := make([]positionResult, 0, ctx.Args().Len())
	for i := 0; i < ctx.Args().Len(); i++ {
		index, err := indexArg(ctx, i)
		if err != nil {
			return err
		}
		datum, err := x.SizeAndPositionForIndex(index)
		if err != nil {
			return err
		}
		results = append(results, positionResult{Index: index, Offset: datum.Offset, Size: datum.Size})
	}
	return printYAML(ctx, results)
}

func rangeFlags() *cli.Command {
	return &cli.Command{
		Name:   "range",
		Usage:  "show the items visible in a viewport",
		Action: visibleRange,
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:    "offset",
				Aliases: []string{"o"},
				Usage:   "scroll offset of the viewport",
			},
			&cli.Float64Flag{
				Name:     "container-size",
				Aliases:  []string{"c"},
				Usage:    "size of the viewport",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "overscan",
				Usage: "extra items to include either side",
			},
		},
	}
}

func visibleRange(ctx *cli.Context) error {
	x, err := loadIndex(ctx)
	if err != nil {
		return err
	}
	r, err := x.VisibleRange(sizeindex.RangeQuery{
		Offset:        ctx.Float64("offset"),
		ContainerSize: ctx.Float64("container-size"),
		OverscanCount: ctx.Int("overscan"),
	})
	if err != nil {
		return err
	}
	return printYAML(ctx, rangeResult{Empty: r.Empty(), Start: r.Start, Stop: r.Stop})
}

func scrollToFlags() *cli.Command {
	return &cli.Command{
		Name:      "scroll-to",
		Usage:     "compute the scroll offset that brings an item into view",
		ArgsUsage: "INDEX",
		Action:    scrollTo,
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:     "container-size",
				Aliases:  []string{"c"},
				Usage:    "size of the viewport",
				Required: true,
			},
			&cli.Float64Flag{
				Name:  "current-offset",
				Usage: "current scroll offset, used by auto alignment",
			},
			&cli.StringFlag{
				Name:  "align",
				Value: string(sizeindex.AlignAuto),
				Usage: "auto, start, center or end",
			},
		},
	}
}

func scrollTo(ctx *cli.Context) error {
	x, err := loadIndex(ctx)
	if err != nil {
		return err
	}
	index, err := indexArg(ctx, 0)
	if err != nil {
		return err
	}
	align := sizeindex.ParseAlignment(ctx.String("align"))
	offset, err := x.UpdatedOffsetForIndex(sizeindex.ScrollQuery{
		Align:         align,
		ContainerSize: ctx.Float64("container-size"),
		CurrentOffset: ctx.Float64("current-offset"),
		TargetIndex:   index,
	})
	if err != nil {
		return err
	}
	return printYAML(ctx, scrollResult{Index: index, Align: string(align), Offset: offset})
}

func tableFlags() *cli.Command {
	return &cli.Command{
		Name:   "table",
		Usage:  "show offsets and sizes of the leading items",
		Action: table,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Value: 20,
				Usage: "number of items to show, 0 for all",
			},
		},
	}
}

func table(ctx *cli.Context) error {
	x, err := loadIndex(ctx)
	if err != nil {
		return err
	}
	n := x.ItemCount()
	if limit := ctx.Int("limit"); limit > 0 {
		n = min(n, limit)
	}

	rows := make([]positionResult, 0, n)
	for i := 0; i < n; i++ {
		datum, err := x.SizeAndPositionForIndex(i)
		if err != nil {
			return err
		}
		rows = append(rows, positionResult{Index: i, Offset: datum.Offset, Size: datum.Size})
	}
	return printYAML(ctx, rows)
}
