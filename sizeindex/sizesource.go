package sizeindex

import (
	"fmt"
	"math"
)

// SizeFunc measures the item at index. It is called synchronously and at
// most once per index between resets.
type SizeFunc func(index int) float64

type SourceKind uint8

const (
	SourceNone SourceKind = iota
	SourceConstant
	SourceSequence
	SourceFunction
)

func (k SourceKind) String() string {
	switch k {
	case SourceConstant:
		return "constant"
	case SourceSequence:
		return "sequence"
	case SourceFunction:
		return "function"
	default:
		return "none"
	}
}

// SizeSource says where item sizes come from. The zero value is not a valid
// source; use ConstantSize, SequenceSizes or MeasuredSizes.
type SizeSource struct {
	kind     SourceKind
	constant float64
	sizes    []float64
	measure  SizeFunc
}

// ConstantSize gives every item the same size.
func ConstantSize(size float64) SizeSource {
	return SizeSource{kind: SourceConstant, constant: size}
}

// SequenceSizes gives item i the size sizes[i]. An Index copies the first
// ItemCount sizes when it is configured; later changes to the slice need a
// Configure to take effect.
func SequenceSizes(sizes []float64) SizeSource {
	return SizeSource{kind: SourceSequence, sizes: sizes}
}

// MeasuredSizes discovers sizes lazily by calling measure. An index built
// on a measured source runs in just-in-time mode.
func MeasuredSizes(measure SizeFunc) SizeSource {
	return SizeSource{kind: SourceFunction, measure: measure}
}

func (s SizeSource) Kind() SourceKind { return s.kind }

// JustInTime is true when sizes are discovered by measurement rather than
// known up front.
func (s SizeSource) JustInTime() bool { return s.kind == SourceFunction }

// Len returns the number of sizes a sequence source can answer for, and -1
// for sources that can answer for any index.
func (s SizeSource) Len() int {
	if s.kind == SourceSequence {
		return len(s.sizes)
	}
	return -1
}

// Size returns the size of the item at index. Nothing is cached here and
// the index is not range checked.
func (s SizeSource) Size(index int) float64 {
	switch s.kind {
	case SourceConstant:
		return s.constant
	case SourceSequence:
		return s.sizes[index]
	case SourceFunction:
		return s.measure(index)
	default:
		return 0
	}
}

// check validates the source against itemCount. Constant and sequence sizes
// are checked here so the eager table can never hold a bad size.
func (s SizeSource) check(itemCount int) error {
	switch s.kind {
	case SourceConstant:
		if !validSize(s.constant) {
			return fmt.Errorf("%w: constant item size %v", ErrConfiguration, s.constant)
		}
	case SourceSequence:
		if len(s.sizes) < itemCount {
			return fmt.Errorf(
				"%w: item size sequence has %d entries, fewer than the item count %d",
				ErrConfiguration, len(s.sizes), itemCount)
		}
		for i := 0; i < itemCount; i++ {
			if !validSize(s.sizes[i]) {
				return fmt.Errorf("%w: item size %v at index %d", ErrConfiguration, s.sizes[i], i)
			}
		}
	case SourceFunction:
		if s.measure == nil {
			return fmt.Errorf("%w: nil size function", ErrConfiguration)
		}
	default:
		return fmt.Errorf("%w: no item size source", ErrConfiguration)
	}
	return nil
}

// validSize is true for sizes that keep offsets finite and non-decreasing.
func validSize(size float64) bool {
	return !math.IsNaN(size) && !math.IsInf(size, 0) && size >= 0
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
