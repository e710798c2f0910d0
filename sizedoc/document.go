package sizedoc

import (
	"fmt"

	"github.com/forestrie/go-scrollindex/sizeindex"
)

// Document describes the items of a list. Exactly one of ItemSize and Sizes
// is set. An empty Sizes counts as unset, as it does once encoded; an empty
// list is an ItemSize with an ItemCount of zero.
type Document struct {
	// ItemCount defaults to len(Sizes). It is required with ItemSize.
	ItemCount *int      `cbor:"item_count,omitempty" yaml:"item_count,omitempty" json:"item_count,omitempty"`
	ItemSize  *float64  `cbor:"item_size,omitempty" yaml:"item_size,omitempty" json:"item_size,omitempty"`
	Sizes     []float64 `cbor:"sizes,omitempty" yaml:"sizes,omitempty" json:"sizes,omitempty"`

	// EstimatedItemSize is only used in just-in-time mode. When zero, the
	// constant size, or the mean of Sizes, is used.
	EstimatedItemSize float64 `cbor:"estimated_item_size,omitempty" yaml:"estimated_item_size,omitempty" json:"estimated_item_size,omitempty"`

	// JustInTime serves the sizes through a measuring function, so the index
	// discovers them lazily rather than building its table up front.
	JustInTime bool `cbor:"just_in_time,omitempty" yaml:"just_in_time,omitempty" json:"just_in_time,omitempty"`
}

// Count returns the number of items the document describes.
func (d Document) Count() int {
	if d.ItemCount != nil {
		return *d.ItemCount
	}
	return len(d.Sizes)
}

func (d Document) Validate() error {
	hasSizes := len(d.Sizes) > 0
	switch {
	case d.ItemSize == nil && !hasSizes:
		return fmt.Errorf("%w: one of item_size or sizes is required", ErrDocument)
	case d.ItemSize != nil && hasSizes:
		return fmt.Errorf("%w: item_size and sizes are mutually exclusive", ErrDocument)
	case d.ItemSize != nil && d.ItemCount == nil:
		return fmt.Errorf("%w: item_count is required with item_size", ErrDocument)
	case d.Count() < 0:
		return fmt.Errorf("%w: item_count %d", ErrDocument, d.Count())
	case hasSizes && len(d.Sizes) < d.Count():
		return fmt.Errorf("%w: %d sizes for %d items", ErrDocument, len(d.Sizes), d.Count())
	}
	return nil
}

// Config returns the index configuration the document describes.
func (d Document) Config() (sizeindex.Config, error) {
	if err := d.Validate(); err != nil {
		return sizeindex.Config{}, err
	}

	cfg := sizeindex.Config{
		ItemCount:         d.Count(),
		EstimatedItemSize: d.EstimatedItemSize,
	}
	if cfg.EstimatedItemSize == 0 {
		cfg.EstimatedItemSize = d.meanSize()
	}

	switch {
	case d.ItemSize != nil && d.JustInTime:
		size := *d.ItemSize
		cfg.ItemSize = sizeindex.MeasuredSizes(func(int) float64 { return size })
	case d.ItemSize != nil:
		cfg.ItemSize = sizeindex.ConstantSize(*d.ItemSize)
	case d.JustInTime:
		sizes := d.Sizes
		cfg.ItemSize = sizeindex.MeasuredSizes(func(i int) float64 { return sizes[i] })
	default:
		cfg.ItemSize = sizeindex.SequenceSizes(d.Sizes)
	}
	return cfg, nil
}

func (d Document) meanSize() float64 {
	if d.ItemSize != nil {
		return *d.ItemSize
	}
	n := d.Count()
	if n == 0 {
		return 0
	}
	var sum float64
	for _, size := range d.Sizes[:n] {
		sum += size
	}
	return sum / float64(n)
}
