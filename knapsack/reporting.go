package knapsack

import (
	"fmt"
	"io"
	"time"
)

// Reporter receives progress notifications from an Engine.
type Reporter interface {
	StartGeneration(generation int)
	PostEvaluate(stats GenerationStats)
	NewBest(generation int, best Genome, fitness float64)
	EndGeneration(generation int, populationSize int, elapsed time.Duration)
	Complete(best Genome, fitness float64, generations int)
}

// ReporterSet fans notifications out to every registered reporter.
type ReporterSet struct {
	reporters []Reporter
}

// Add registers a reporter.
func (rs *ReporterSet) Add(r Reporter) {
	rs.reporters = append(rs.reporters, r)
}

// Len returns the number of registered reporters.
func (rs *ReporterSet) Len() int {
	return len(rs.reporters)
}

func (rs *ReporterSet) StartGeneration(generation int) {
	for _, r := range rs.reporters {
		r.StartGeneration(generation)
	}
}

func (rs *ReporterSet) PostEvaluate(stats GenerationStats) {
	for _, r := range rs.reporters {
		r.PostEvaluate(stats)
	}
}

func (rs *ReporterSet) NewBest(generation int, best Genome, fitness float64) {
	for _, r := range rs.reporters {
		r.NewBest(generation, best, fitness)
	}
}

func (rs *ReporterSet) EndGeneration(generation int, populationSize int, elapsed time.Duration) {
	for _, r := range rs.reporters {
		r.EndGeneration(generation, populationSize, elapsed)
	}
}

func (rs *ReporterSet) Complete(best Genome, fitness float64, generations int) {
	for _, r := range rs.reporters {
		r.Complete(best, fitness, generations)
	}
}

// StdOutReporter prints progress lines to W.
// Per-generation lines are only written when ShowGenerations is set.
type StdOutReporter struct {
	W               io.Writer
	ShowGenerations bool
}

// NewStdOutReporter returns a reporter writing to w.
func NewStdOutReporter(w io.Writer, showGenerations bool) *StdOutReporter {
	return &StdOutReporter{W: w, ShowGenerations: showGenerations}
}

func (r *StdOutReporter) StartGeneration(generation int) {
	if r.ShowGenerations {
		fmt.Fprintf(r.W, "****** Generation %d ******\n", generation)
	}
}

func (r *StdOutReporter) PostEvaluate(stats GenerationStats) {
	if r.ShowGenerations {
		fmt.Fprintf(r.W, " Best: %.2f (index %d), Mean: %.2f\n", stats.BestFitness, stats.BestIndex, stats.MeanFitness)
	}
}

func (r *StdOutReporter) NewBest(generation int, best Genome, fitness float64) {
	if r.ShowGenerations {
		fmt.Fprintf(r.W, " New best genome found! Fitness: %.2f, Genes: %s\n", fitness, best)
	}
}

func (r *StdOutReporter) EndGeneration(generation int, populationSize int, elapsed time.Duration) {
	if r.ShowGenerations {
		fmt.Fprintf(r.W, "Generation %d finished in %s (population %d)\n\n", generation, elapsed, populationSize)
	}
}

func (r *StdOutReporter) Complete(best Genome, fitness float64, generations int) {
	fmt.Fprintf(r.W, "Evolution complete after %d generations. Best fitness: %.2f, Genes: %s\n", generations, fitness, best)
}
