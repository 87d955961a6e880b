package knapsack

// scriptedRand replays fixed values; it panics when a script runs out so a test
// notices an unexpected draw.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (s *scriptedRand) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedRand) IntN(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		panic("scripted int out of range")
	}
	return v
}

// smallCatalog is the four-item instance whose optimum is 22 at capacity 10.
func smallCatalog() Catalog {
	return Catalog{
		{Name: "Item 1", Weight: 5, Value: 10},
		{Name: "Item 2", Weight: 8, Value: 12},
		{Name: "Item 3", Weight: 3, Value: 7},
		{Name: "Item 4", Weight: 2, Value: 5},
	}
}

// allGenomes enumerates every genome of length n.
func allGenomes(n int) []Genome {
	out := make([]Genome, 0, 1<<n)
	for mask := 0; mask < 1<<n; mask++ {
		g := NewGenome(n)
		for i := 0; i < n; i++ {
			g.Set(i, mask&(1<<i) != 0)
		}
		out = append(out, g)
	}
	return out
}
