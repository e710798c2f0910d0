package sizeindex

import "errors"

var (
	ErrConfiguration = errors.New("sizeindex: invalid configuration")
	ErrIndexRange    = errors.New("sizeindex: index out of range")
	ErrMeasurement   = errors.New("sizeindex: invalid size measured")
	ErrInvalidOffset = errors.New("sizeindex: invalid offset")
)

// SizeAndPosition is the measured extent of one item along the scroll axis.
// Offset is the sum of the sizes of every item before it.
type SizeAndPosition struct {
	Offset float64
	Size   float64
}

// End returns the offset just past the item.
func (sp SizeAndPosition) End() float64 {
	return sp.Offset + sp.Size
}

// Range is an inclusive span of item indices.
type Range struct {
	Start int
	Stop  int
}

// EmptyRange is returned when there is nothing to show.
var EmptyRange = Range{Start: 0, Stop: -1}

func (r Range) Empty() bool { return r.Stop < r.Start }

// Len returns the number of items in the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.Stop - r.Start + 1
}

// RangeQuery describes a viewport for VisibleRange.
type RangeQuery struct {
	ContainerSize float64
	Offset        float64
	// OverscanCount extra items are added either side of the visible items.
	OverscanCount int
}

// ScrollQuery describes a request to bring TargetIndex into view.
type ScrollQuery struct {
	Align         Alignment
	ContainerSize float64
	CurrentOffset float64
	TargetIndex   int
}
