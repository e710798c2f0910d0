package sizeindex

import "fmt"

// VisibleRange returns the items intersecting
// [q.Offset, q.Offset+q.ContainerSize], widened by q.OverscanCount items on
// each side and clamped to the valid indices. It returns EmptyRange when
// the total size is zero.
func (x *Index) VisibleRange(q RangeQuery) (Range, error) {
	if x.TotalSize() == 0 {
		return EmptyRange, nil
	}

	start, err := x.FindNearestItem(q.Offset)
	if err != nil {
		return EmptyRange, err
	}

	datum, err := x.SizeAndPositionForIndex(start)
	if err != nil {
		return EmptyRange, err
	}

	maxOffset := q.Offset + q.ContainerSize
	offset := datum.End()
	stop := start

	for offset < maxOffset && stop < x.itemCount-1 {
		stop++
		datum, err = x.SizeAndPositionForIndex(stop)
		if err != nil {
			return EmptyRange, fmt.Errorf("visible range from %d: %w", start, err)
		}
		offset += datum.Size
	}

	if q.OverscanCount > 0 {
		start = max(0, start-q.OverscanCount)
		stop = min(stop+q.OverscanCount, x.itemCount-1)
	}

	return Range{Start: start, Stop: stop}, nil
}
