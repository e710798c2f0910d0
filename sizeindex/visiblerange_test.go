package sizeindex

import (
	"math"
	"testing"

	"github.com/forestrie/go-scrollindex/indextesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibleRange_ConstantSize(t *testing.T) {
	x := newTestIndex(t, Config{ItemCount: 10, ItemSize: ConstantSize(10)})

	tests := []struct {
		name  string
		query RangeQuery
		want  Range
	}{
		{"edges inside items", RangeQuery{Offset: 25, ContainerSize: 20}, Range{Start: 2, Stop: 4}},
		{"edges inside items with overscan", RangeQuery{Offset: 25, ContainerSize: 20, OverscanCount: 1}, Range{Start: 1, Stop: 5}},
		{"edges on boundaries", RangeQuery{Offset: 20, ContainerSize: 20}, Range{Start: 2, Stop: 3}},
		{"everything", RangeQuery{Offset: 0, ContainerSize: 100}, Range{Start: 0, Stop: 9}},
		{"container larger than content", RangeQuery{Offset: 0, ContainerSize: 1000}, Range{Start: 0, Stop: 9}},
		{"overscan clamped at the end", RangeQuery{Offset: 95, ContainerSize: 20, OverscanCount: 3}, Range{Start: 6, Stop: 9}},
		{"overscan clamped at the start", RangeQuery{Offset: 0, ContainerSize: 15, OverscanCount: 5}, Range{Start: 0, Stop: 6}},
		{"offset past the end", RangeQuery{Offset: 500, ContainerSize: 20}, Range{Start: 9, Stop: 9}},
		{"negative offset", RangeQuery{Offset: -30, ContainerSize: 20}, Range{Start: 0, Stop: 0}},
		{"zero container", RangeQuery{Offset: 42, ContainerSize: 0}, Range{Start: 4, Stop: 4}},
		{"negative overscan ignored", RangeQuery{Offset: 25, ContainerSize: 20, OverscanCount: -2}, Range{Start: 2, Stop: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := x.VisibleRange(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVisibleRange_Empty(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no items", Config{ItemCount: 0, ItemSize: ConstantSize(10)}},
		{"all items zero sized", Config{ItemCount: 4, ItemSize: ConstantSize(0)}},
		{"just-in-time with no items", Config{ItemCount: 0, ItemSize: MeasuredSizes(indextesting.LinearSizes(1, 1)), EstimatedItemSize: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := newTestIndex(t, tt.cfg)
			got, err := x.VisibleRange(RangeQuery{Offset: 0, ContainerSize: 100, OverscanCount: 2})
			require.NoError(t, err)
			assert.True(t, got.Empty())
		})
	}
}

func TestVisibleRange_InvalidOffset(t *testing.T) {
	x := newTestIndex(t, Config{ItemCount: 10, ItemSize: ConstantSize(10)})
	_, err := x.VisibleRange(RangeQuery{Offset: math.NaN(), ContainerSize: 20})
	assert.ErrorIs(t, err, ErrInvalidOffset)
}

func TestVisibleRange_MeasurementError(t *testing.T) {
	src := indextesting.NewCountingSource(indextesting.LinearSizes(10, 0))
	src.Broken[6] = math.NaN()
	x := newTestIndex(t, Config{ItemCount: 20, ItemSize: MeasuredSizes(src.Size), EstimatedItemSize: 10})

	_, err := x.VisibleRange(RangeQuery{Offset: 0, ContainerSize: 100})
	require.ErrorIs(t, err, ErrMeasurement)
	assert.Equal(t, 5, x.LastMeasuredIndex())
}

func TestVisibleRange_JustInTimeCoversViewport(t *testing.T) {
	sizes := indextesting.LinearSizes(5, 1)
	x := newTestIndex(t, Config{ItemCount: 500, ItemSize: MeasuredSizes(sizes), EstimatedItemSize: 20})

	for _, q := range []RangeQuery{
		{Offset: 0, ContainerSize: 300},
		{Offset: 1234, ContainerSize: 250},
		{Offset: 40000, ContainerSize: 600},
		{Offset: 700, ContainerSize: 80},
	} {
		r, err := x.VisibleRange(q)
		require.NoError(t, err)
		require.False(t, r.Empty())

		first, err := x.SizeAndPositionForIndex(r.Start)
		require.NoError(t, err)
		last, err := x.SizeAndPositionForIndex(r.Stop)
		require.NoError(t, err)

		// The range starts at the item containing the top edge and reaches
		// the bottom edge.
		assert.LessOrEqual(t, first.Offset, q.Offset)
		assert.Greater(t, first.End(), q.Offset)
		assert.GreaterOrEqual(t, last.End(), q.Offset+q.ContainerSize)
		if r.Stop > r.Start {
			assert.Less(t, last.Offset, q.Offset+q.ContainerSize)
		}
	}

	// 5+6+7+8 = 26 leaves the last 4 of the viewport to item 4.
	r, err := x.VisibleRange(RangeQuery{Offset: 0, ContainerSize: 30})
	require.NoError(t, err)
	assert.Equal(t, Range{Start: 0, Stop: 4}, r)
}

func TestVisibleRange_SkipsLeadingZeroSizedItems(t *testing.T) {
	x := newTestIndex(t, Config{ItemCount: 5, ItemSize: SequenceSizes([]float64{10, 0, 0, 10, 10})})
	r, err := x.VisibleRange(RangeQuery{Offset: 10, ContainerSize: 10})
	require.NoError(t, err)
	assert.Equal(t, Range{Start: 3, Stop: 3}, r)
}
