package sizeindex

import (
	"fmt"
	"math"
)

// UpdatedOffsetForIndex returns the scroll offset that brings q.TargetIndex
// into view according to q.Align.
//
//	start   item flush with the start of the viewport
//	end     item flush with the end of the viewport
//	center  item centred in the viewport
//	auto    leave the offset alone if the item is wholly visible, otherwise
//	        scroll just far enough to reach the nearer edge
//
// The result is clamped to [0, TotalSize-ContainerSize] with the lower bound
// winning when the content is smaller than the viewport. A viewport with no
// size always gets 0.
func (x *Index) UpdatedOffsetForIndex(q ScrollQuery) (float64, error) {
	if !finite(q.ContainerSize) || !finite(q.CurrentOffset) {
		return 0, fmt.Errorf("%w: container size %v, current offset %v",
			ErrInvalidOffset, q.ContainerSize, q.CurrentOffset)
	}
	if q.ContainerSize <= 0 {
		return 0, nil
	}

	datum, err := x.SizeAndPositionForIndex(q.TargetIndex)
	if err != nil {
		return 0, err
	}

	maxOffset := datum.Offset
	minOffset := maxOffset - q.ContainerSize + datum.Size

	var idealOffset float64
	switch q.Align {
	case AlignEnd:
		idealOffset = minOffset
	case AlignCenter:
		idealOffset = maxOffset - (q.ContainerSize-datum.Size)/2
	case AlignStart:
		idealOffset = maxOffset
	default:
		idealOffset = math.Max(minOffset, math.Min(maxOffset, q.CurrentOffset))
	}

	return math.Max(0, math.Min(x.TotalSize()-q.ContainerSize, idealOffset)), nil
}
