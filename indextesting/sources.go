package indextesting

// LinearSizes returns a size function where item i has size base + step*i.
func LinearSizes(base, step float64) func(int) float64 {
	return func(i int) float64 {
		return base + step*float64(i)
	}
}

// PrefixSum returns the offset of every item and the total.
func PrefixSum(sizes []float64) ([]float64, float64) {
	offsets := make([]float64, len(sizes))
	var total float64
	for i, size := range sizes {
		offsets[i] = total
		total += size
	}
	return offsets, total
}

// CountingSource wraps a size function and records how often each index is
// measured.
type CountingSource struct {
	Sizes  func(int) float64
	Calls  map[int]int
	Order  []int
	Broken map[int]float64
}

func NewCountingSource(sizes func(int) float64) *CountingSource {
	return &CountingSource{
		Sizes:  sizes,
		Calls:  make(map[int]int),
		Broken: make(map[int]float64),
	}
}

// Size is the measuring function to hand to the index. Indices present in
// Broken return that value instead of the real size.
func (s *CountingSource) Size(i int) float64 {
	s.Calls[i]++
	s.Order = append(s.Order, i)
	if v, ok := s.Broken[i]; ok {
		return v
	}
	return s.Sizes(i)
}

// Measured returns the number of distinct indices measured so far.
func (s *CountingSource) Measured() int { return len(s.Calls) }

// MaxCalls returns the largest number of times any single index was
// measured.
func (s *CountingSource) MaxCalls() int {
	n := 0
	for _, c := range s.Calls {
		n = max(n, c)
	}
	return n
}

// Reset forgets the recorded calls.
func (s *CountingSource) Reset() {
	s.Calls = make(map[int]int)
	s.Order = nil
}
