package sizeindex

import "sync"

// Locked serialises every operation on an Index. Lookups extend the
// measurement cache, so even read-style calls need the lock.
type Locked struct {
	mu    sync.Mutex
	index *Index
}

func NewLocked(cfg Config, opts ...Option) (*Locked, error) {
	x, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Locked{index: x}, nil
}

// Wrap guards an existing Index. The caller must stop using x directly.
func Wrap(x *Index) *Locked {
	return &Locked{index: x}
}

func (l *Locked) Configure(cfg Config) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index.Configure(cfg)
}

func (l *Locked) SizeAndPositionForIndex(index int) (SizeAndPosition, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index.SizeAndPositionForIndex(index)
}

func (l *Locked) TotalSize() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index.TotalSize()
}

func (l *Locked) ResetItem(index int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.index.ResetItem(index)
}

func (l *Locked) FindNearestItem(offset float64) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index.FindNearestItem(offset)
}

func (l *Locked) VisibleRange(q RangeQuery) (Range, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index.VisibleRange(q)
}

func (l *Locked) UpdatedOffsetForIndex(q ScrollQuery) (float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index.UpdatedOffsetForIndex(q)
}

func (l *Locked) LastMeasuredIndex() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index.LastMeasuredIndex()
}

func (l *Locked) ItemCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index.ItemCount()
}

// Do runs f with the lock held, for callers that need several operations
// to see the same state.
func (l *Locked) Do(f func(x *Index) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return f(l.index)
}
