package sizeindex

import (
	"fmt"
	"math"
)

// FindNearestItem returns the index of the item containing offset: the
// greatest index whose offset is <= offset. A viewport edge falling inside
// an item therefore still counts that item. Offsets past the end return the
// last item and negative offsets the first. Zero sized items share their
// offset with the item after them, so a run of them resolves to the last
// item in the run.
//
// Within the measured prefix this is a binary search. Beyond it an
// exponential search probes forward from the mark, measuring only the items
// it lands on and those before them, then binary searches the bracket. The
// cost stays logarithmic in the distance from the mark rather than linear
// in the item count.
func (x *Index) FindNearestItem(offset float64) (int, error) {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return 0, fmt.Errorf("%w: invalid offset %v specified", ErrInvalidOffset, offset)
	}
	if x.itemCount == 0 {
		return 0, fmt.Errorf("%w: no items to search for offset %v", ErrInvalidOffset, offset)
	}

	// Searches find the nearest match at or below offset, so no match exists
	// for offsets below zero.
	offset = math.Max(0, offset)

	lastMeasured := x.SizeAndPositionOfLastMeasuredItem()
	lastMeasuredIndex := max(0, x.lastMeasuredIndex)

	// An offset equal to the mark's may still belong to an unmeasured item
	// when the mark is zero sized.
	if lastMeasured.Offset > offset {
		return x.binarySearch(0, lastMeasuredIndex, offset)
	}
	return x.exponentialSearch(lastMeasuredIndex, offset)
}

func (x *Index) binarySearch(low, high int, offset float64) (int, error) {
	for low <= high {
		middle := low + (high-low)/2
		datum, err := x.SizeAndPositionForIndex(middle)
		if err != nil {
			return 0, err
		}

		if datum.Offset <= offset {
			low = middle + 1
		} else {
			high = middle - 1
		}
	}

	if low > 0 {
		return low - 1, nil
	}
	return 0, nil
}

// exponentialSearch doubles its stride from index until it lands beyond
// offset or runs off the end, then binary searches [index/2, index].
func (x *Index) exponentialSearch(index int, offset float64) (int, error) {
	interval := 1

	for index < x.itemCount {
		datum, err := x.SizeAndPositionForIndex(index)
		if err != nil {
			return 0, err
		}
		if datum.Offset > offset {
			break
		}
		index += interval
		interval *= 2
	}

	return x.binarySearch(index/2, min(index, x.itemCount-1), offset)
}
