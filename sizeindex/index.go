package sizeindex

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
)

// Config is the complete configuration of an Index. It is always applied
// wholesale.
type Config struct {
	ItemCount int
	ItemSize  SizeSource
	// EstimatedItemSize stands in for every item not yet measured when the
	// total size is projected in just-in-time mode.
	EstimatedItemSize float64
}

func (cfg Config) validate() error {
	if cfg.ItemCount < 0 {
		return fmt.Errorf("%w: item count %d", ErrConfiguration, cfg.ItemCount)
	}
	if !validSize(cfg.EstimatedItemSize) {
		return fmt.Errorf("%w: estimated item size %v", ErrConfiguration, cfg.EstimatedItemSize)
	}
	return cfg.ItemSize.check(cfg.ItemCount)
}

// Index maps item indices to offsets along one scroll axis.
//
// With a constant or sequence size source the full table is built eagerly
// and every lookup is O(1). With a measured source sizes are discovered
// front to back: entries at or below the last measured index are trusted,
// everything after it is estimated.
//
// An Index is not safe for concurrent use, see Locked.
type Index struct {
	itemCount         int
	itemSize          SizeSource
	estimatedItemSize float64

	// data has one slot per item in eager mode. In just-in-time mode it
	// grows as items are measured. Slots above lastMeasuredIndex are stale
	// until measured again.
	data              []SizeAndPosition
	lastMeasuredIndex int

	// totalSize is only maintained in eager mode.
	totalSize float64

	log logger.Logger
}

// New creates an Index. In eager mode the position table is computed before
// New returns.
func New(cfg Config, opts ...Option) (*Index, error) {
	options := Options{}
	for _, o := range opts {
		o(&options)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	x := &Index{
		lastMeasuredIndex: -1,
		log:               options.log,
	}
	x.apply(cfg)
	if !x.JustInTime() {
		x.computeTotalSizeAndPositionData()
	}
	return x, nil
}

// Configure replaces the configuration. An invalid configuration is
// rejected and leaves the index unchanged.
//
// Switching into just-in-time mode discards every measurement. Staying in
// just-in-time mode keeps the measurements that are still in range; if the
// size function now answers differently the caller must ResetItem.
func (x *Index) Configure(cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	wasJustInTime := x.JustInTime()
	x.apply(cfg)

	x.debugf("configure: itemCount=%d, source=%s, estimated=%v",
		cfg.ItemCount, cfg.ItemSize.Kind(), cfg.EstimatedItemSize)

	if !x.JustInTime() {
		x.computeTotalSizeAndPositionData()
		return nil
	}
	x.totalSize = 0
	if !wasJustInTime {
		x.lastMeasuredIndex = -1
		return nil
	}
	x.lastMeasuredIndex = min(x.lastMeasuredIndex, x.itemCount-1)
	return nil
}

func (x *Index) apply(cfg Config) {
	x.itemCount = cfg.ItemCount
	x.estimatedItemSize = cfg.EstimatedItemSize
	x.itemSize = cfg.ItemSize
	if cfg.ItemSize.Kind() == SourceSequence {
		// Copy so the eager table cannot be invalidated behind our back.
		x.itemSize.sizes = append([]float64(nil), cfg.ItemSize.sizes[:cfg.ItemCount]...)
	}

	n := x.itemCount
	if x.JustInTime() {
		n = min(len(x.data), x.itemCount)
	}
	if cap(x.data) >= n {
		x.data = x.data[:n]
		return
	}
	data := make([]SizeAndPosition, n)
	copy(data, x.data)
	x.data = data
}

// computeTotalSizeAndPositionData fills the whole table from a constant or
// sequence source in one pass.
func (x *Index) computeTotalSizeAndPositionData() {
	var total float64
	for i := 0; i < x.itemCount; i++ {
		size := x.itemSize.Size(i)
		x.data[i] = SizeAndPosition{Offset: total, Size: size}
		total += size
	}
	x.totalSize = total
	x.lastMeasuredIndex = x.itemCount - 1
	x.debugf("eager table: itemCount=%d, total=%v", x.itemCount, total)
}

func (x *Index) ItemCount() int              { return x.itemCount }
func (x *Index) EstimatedItemSize() float64 { return x.estimatedItemSize }

// JustInTime reports whether sizes are measured lazily.
func (x *Index) JustInTime() bool { return x.itemSize.JustInTime() }

// LastMeasuredIndex is the high-water mark: entries up to and including it
// are trusted. It is -1 when nothing has been measured, and itemCount-1 in
// eager mode.
func (x *Index) LastMeasuredIndex() int { return x.lastMeasuredIndex }

// Size returns the raw size of the item at index from the size source. It
// neither reads nor updates the cache.
func (x *Index) Size(index int) (float64, error) {
	if err := x.checkIndex(index); err != nil {
		return 0, err
	}
	return x.itemSize.Size(index), nil
}

func (x *Index) checkIndex(index int) error {
	if index < 0 || index >= x.itemCount {
		return fmt.Errorf("%w: requested index %d is outside of range 0..%d", ErrIndexRange, index, x.itemCount)
	}
	return nil
}

func (x *Index) debugf(format string, args ...any) {
	if x.log == nil {
		return
	}
	x.log.Debugf(format, args...)
}
