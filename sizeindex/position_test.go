package sizeindex

import (
	"math"
	"testing"

	"github.com/forestrie/go-scrollindex/indextesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJustInTime_TotalSizeEstimate(t *testing.T) {
	x := newTestIndex(t, Config{
		ItemCount:         1000,
		ItemSize:          MeasuredSizes(indextesting.LinearSizes(10, 10)),
		EstimatedItemSize: 10,
	})

	assert.True(t, x.JustInTime())
	assert.Equal(t, -1, x.LastMeasuredIndex())
	assert.Equal(t, 10000.0, x.TotalSize())

	_, err := x.SizeAndPositionForIndex(0)
	require.NoError(t, err)
	// 10 measured + 999 estimated at 10
	assert.Equal(t, 10.0+10*999, x.TotalSize())

	got, err := x.SizeAndPositionForIndex(2)
	require.NoError(t, err)
	assert.Equal(t, SizeAndPosition{Offset: 30, Size: 30}, got)
	assert.Equal(t, 2, x.LastMeasuredIndex())
	assert.Equal(t, 60.0+10*997, x.TotalSize())
}

func TestJustInTime_TotalSizeExactWhenFullyMeasured(t *testing.T) {
	tc := indextesting.NewTestContext(t, indextesting.TestConfig{Seed: 9, TestLabelPrefix: "exact"})
	sizes := tc.RandomIntSizes(64, 0, 40)
	_, total := indextesting.PrefixSum(sizes)

	x, err := New(Config{
		ItemCount:         len(sizes),
		ItemSize:          MeasuredSizes(func(i int) float64 { return sizes[i] }),
		EstimatedItemSize: 1000,
	}, WithLogger(tc.Log))
	require.NoError(t, err)

	_, err = x.SizeAndPositionForIndex(len(sizes) - 1)
	require.NoError(t, err)
	assert.Equal(t, total, x.TotalSize())
}

func TestJustInTime_MeasuresForwardOnce(t *testing.T) {
	src := indextesting.NewCountingSource(indextesting.LinearSizes(1, 2))
	x := newTestIndex(t, Config{ItemCount: 100, ItemSize: MeasuredSizes(src.Size), EstimatedItemSize: 5})

	for _, i := range []int{10, 5, 0, 10, 3} {
		_, err := x.SizeAndPositionForIndex(i)
		require.NoError(t, err)
	}
	assert.Equal(t, 11, src.Measured())
	assert.Equal(t, 1, src.MaxCalls())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, src.Order)

	_, err := x.SizeAndPositionForIndex(12)
	require.NoError(t, err)
	assert.Equal(t, []int{11, 12}, src.Order[11:])
}

func TestJustInTime_OffsetsArePrefixSums(t *testing.T) {
	sizes := indextesting.LinearSizes(3, 1)
	x := newTestIndex(t, Config{ItemCount: 200, ItemSize: MeasuredSizes(sizes), EstimatedItemSize: 3})

	var offset float64
	for i := 0; i < 200; i++ {
		got, err := x.SizeAndPositionForIndex(i)
		require.NoError(t, err)
		require.Equal(t, SizeAndPosition{Offset: offset, Size: sizes(i)}, got, "index %d", i)
		offset += sizes(i)
	}
}

func TestJustInTime_MeasurementErrors(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"NaN", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
		{"negative", -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := indextesting.NewCountingSource(indextesting.LinearSizes(10, 0))
			src.Broken[3] = tt.value
			x := newTestIndex(t, Config{ItemCount: 10, ItemSize: MeasuredSizes(src.Size), EstimatedItemSize: 10})

			_, err := x.SizeAndPositionForIndex(5)
			require.ErrorIs(t, err, ErrMeasurement)
			assert.Contains(t, err.Error(), "index 3")

			// Progress before the failure is kept.
			assert.Equal(t, 2, x.LastMeasuredIndex())
			assert.Equal(t, 30.0+10*7, x.TotalSize())
			got, err := x.SizeAndPositionForIndex(2)
			require.NoError(t, err)
			assert.Equal(t, SizeAndPosition{Offset: 20, Size: 10}, got)

			// Once the source recovers measurement resumes at the failed index.
			delete(src.Broken, 3)
			got, err = x.SizeAndPositionForIndex(5)
			require.NoError(t, err)
			assert.Equal(t, SizeAndPosition{Offset: 50, Size: 10}, got)
			assert.Equal(t, 2, src.Calls[3])
			assert.Equal(t, 1, src.Calls[2])
		})
	}
}

func TestResetItem(t *testing.T) {
	sizes := []float64{10, 10, 10, 10, 10, 10, 10, 10, 10, 10}
	src := indextesting.NewCountingSource(func(i int) float64 { return sizes[i] })
	x := newTestIndex(t, Config{ItemCount: len(sizes), ItemSize: MeasuredSizes(src.Size), EstimatedItemSize: 10})

	_, err := x.SizeAndPositionForIndex(9)
	require.NoError(t, err)

	sizes[4] = 50
	x.ResetItem(4)
	assert.Equal(t, 3, x.LastMeasuredIndex())
	assert.Equal(t, 40.0+10*6, x.TotalSize())

	got, err := x.SizeAndPositionForIndex(4)
	require.NoError(t, err)
	assert.Equal(t, SizeAndPosition{Offset: 40, Size: 50}, got)

	got, err = x.SizeAndPositionForIndex(9)
	require.NoError(t, err)
	assert.Equal(t, SizeAndPosition{Offset: 130, Size: 10}, got)
	assert.Equal(t, 140.0, x.TotalSize())

	for i := 0; i < 4; i++ {
		assert.Equal(t, 1, src.Calls[i], "index %d", i)
	}
	for i := 4; i < 10; i++ {
		assert.Equal(t, 2, src.Calls[i], "index %d", i)
	}
}

func TestResetItem_Bounds(t *testing.T) {
	x := newTestIndex(t, Config{ItemCount: 10, ItemSize: MeasuredSizes(indextesting.LinearSizes(1, 0)), EstimatedItemSize: 1})
	_, err := x.SizeAndPositionForIndex(5)
	require.NoError(t, err)

	x.ResetItem(8) // beyond the mark
	assert.Equal(t, 5, x.LastMeasuredIndex())

	x.ResetItem(6)
	assert.Equal(t, 5, x.LastMeasuredIndex())

	x.ResetItem(0)
	assert.Equal(t, -1, x.LastMeasuredIndex())

	x.ResetItem(-4)
	assert.Equal(t, -1, x.LastMeasuredIndex())
}

func TestResetItem_EagerIsNoop(t *testing.T) {
	x := newTestIndex(t, Config{ItemCount: 10, ItemSize: ConstantSize(3)})
	x.ResetItem(2)
	assert.Equal(t, 9, x.LastMeasuredIndex())
	assert.Equal(t, 30.0, x.TotalSize())
}

func TestSizeAndPositionOfLastMeasuredItem(t *testing.T) {
	x := newTestIndex(t, Config{ItemCount: 10, ItemSize: MeasuredSizes(indextesting.LinearSizes(2, 2)), EstimatedItemSize: 1})
	assert.Equal(t, SizeAndPosition{}, x.SizeAndPositionOfLastMeasuredItem())

	_, err := x.SizeAndPositionForIndex(2)
	require.NoError(t, err)
	assert.Equal(t, SizeAndPosition{Offset: 6, Size: 6}, x.SizeAndPositionOfLastMeasuredItem())
	assert.Equal(t, 12.0, x.SizeAndPositionOfLastMeasuredItem().End())
}

func TestJustInTime_StoreGrowsWithMeasurement(t *testing.T) {
	x := newTestIndex(t, Config{
		ItemCount:         1_000_000_000,
		ItemSize:          MeasuredSizes(func(int) float64 { return 2 }),
		EstimatedItemSize: 2,
	})
	assert.Empty(t, x.data)
	assert.Equal(t, 2e9, x.TotalSize())

	got, err := x.SizeAndPositionForIndex(99)
	require.NoError(t, err)
	assert.Equal(t, SizeAndPosition{Offset: 198, Size: 2}, got)
	assert.Len(t, x.data, 100)

	i, err := x.FindNearestItem(1000)
	require.NoError(t, err)
	assert.Equal(t, 500, i)
	assert.Less(t, len(x.data), 2000)

	// Shrinking keeps the measured prefix that is still in range.
	require.NoError(t, x.Configure(Config{
		ItemCount:         50,
		ItemSize:          MeasuredSizes(func(int) float64 { return 2 }),
		EstimatedItemSize: 2,
	}))
	assert.Equal(t, 49, x.LastMeasuredIndex())
	assert.Len(t, x.data, 50)
	assert.Equal(t, 100.0, x.TotalSize())
}
