package sizeindex

import (
	"fmt"
	"slices"
)

// SizeAndPositionForIndex returns the offset and size of the item at index.
//
// In just-in-time mode asking for an index beyond the high-water mark
// measures every item from the mark up to and including index. Offsets
// depend on the full prefix, so measurement only ever moves forward and
// never skips an item.
func (x *Index) SizeAndPositionForIndex(index int) (SizeAndPosition, error) {
	if err := x.checkIndex(index); err != nil {
		return SizeAndPosition{}, err
	}
	if x.JustInTime() {
		if err := x.measureThrough(index); err != nil {
			return SizeAndPosition{}, err
		}
	}
	return x.data[index], nil
}

// measureThrough extends the trusted prefix to cover index. On a bad
// measurement the entries before it are kept and the mark stops there.
func (x *Index) measureThrough(index int) error {
	if index <= x.lastMeasuredIndex {
		return nil
	}

	from := x.lastMeasuredIndex + 1
	offset := x.SizeAndPositionOfLastMeasuredItem().End()
	if index >= len(x.data) {
		x.data = slices.Grow(x.data, index+1-len(x.data))[:index+1]
	}

	for i := from; i <= index; i++ {
		size := x.itemSize.Size(i)
		if !validSize(size) {
			x.lastMeasuredIndex = i - 1
			if x.log != nil {
				x.log.Infof("measure: index %d returned %v, trusted through %d", i, size, x.lastMeasuredIndex)
			}
			return fmt.Errorf("%w: invalid size returned for index %d of value %v", ErrMeasurement, i, size)
		}
		x.data[i] = SizeAndPosition{Offset: offset, Size: size}
		offset += size
	}
	x.lastMeasuredIndex = index

	x.debugf("measure: indices %d..%d, offset now %v", from, index, offset)
	return nil
}

// SizeAndPositionOfLastMeasuredItem returns the entry at the high-water
// mark, or the zero entry if nothing is measured.
func (x *Index) SizeAndPositionOfLastMeasuredItem() SizeAndPosition {
	if x.lastMeasuredIndex < 0 {
		return SizeAndPosition{}
	}
	return x.data[x.lastMeasuredIndex]
}

// TotalSize returns the extent of all items.
//
// In just-in-time mode this is the measured prefix plus EstimatedItemSize
// for every item after the mark, so it is only exact once every item has
// been measured.
func (x *Index) TotalSize() float64 {
	if !x.JustInTime() {
		return x.totalSize
	}
	last := x.SizeAndPositionOfLastMeasuredItem()
	unmeasured := x.itemCount - x.lastMeasuredIndex - 1
	return last.End() + float64(unmeasured)*x.estimatedItemSize
}

// ResetItem discards the measurements of index and every item after it.
// Nothing is recomputed until one of them is asked for again. Call it when
// the true size of an item changes.
//
// Eager sizes cannot change without Configure, so in eager mode this does
// nothing.
func (x *Index) ResetItem(index int) {
	if !x.JustInTime() {
		return
	}
	mark := min(x.lastMeasuredIndex, max(index, 0)-1)
	if mark == x.lastMeasuredIndex {
		return
	}
	x.debugf("reset: index %d, trusted through %d (was %d)", index, mark, x.lastMeasuredIndex)
	x.lastMeasuredIndex = mark
}
