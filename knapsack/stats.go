package knapsack

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GenerationStats summarizes the fitness of one evaluated generation.
type GenerationStats struct {
	Generation  int // 0-based
	BestIndex   int // first index holding BestFitness
	BestFitness float64
	MeanFitness float64
}

// History holds per-generation best and mean fitness, in chronological order.
type History struct {
	BestFitness []float64
	MeanFitness []float64
}

// Len returns the number of recorded generations.
func (h History) Len() int {
	return len(h.BestFitness)
}

// Clone returns a copy that shares no storage with h.
func (h History) Clone() History {
	return History{
		BestFitness: append([]float64(nil), h.BestFitness...),
		MeanFitness: append([]float64(nil), h.MeanFitness...),
	}
}

func (h *History) append(s GenerationStats) {
	h.BestFitness = append(h.BestFitness, s.BestFitness)
	h.MeanFitness = append(h.MeanFitness, s.MeanFitness)
}

// bestIndex returns the first index of the maximum fitness.
func bestIndex(fitness []float64) int {
	return floats.MaxIdx(fitness)
}

func summarize(generation int, fitness []float64) GenerationStats {
	best := bestIndex(fitness)
	return GenerationStats{
		Generation:  generation,
		BestIndex:   best,
		BestFitness: fitness[best],
		MeanFitness: stat.Mean(fitness, nil),
	}
}
