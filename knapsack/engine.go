package knapsack

import (
	"errors"
	"math"
	"time"
)

// ErrAlreadyRun is returned when Run is called on an engine that has already started.
var ErrAlreadyRun = errors.New("engine has already been run")

// State is the lifecycle stage of an Engine.
type State int

const (
	StateInitialized State = iota
	StateEvolving
	StateDone
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateEvolving:
		return "evolving"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Option customizes an Engine at construction.
type Option func(*Engine)

// WithRand injects the random source, overriding EvolutionConfig.Seed.
func WithRand(rng Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithReporter registers a progress reporter.
func WithReporter(r Reporter) Option {
	return func(e *Engine) {
		e.reporters.Add(r)
	}
}

// Engine drives the genetic search for one knapsack instance.
// An Engine runs once; use a new one per run.
type Engine struct {
	Catalog  Catalog
	Capacity float64
	Config   EvolutionConfig

	rng          Rand
	reporters    ReporterSet
	reproduction *Reproduction

	state       State
	generation  int
	population  []Genome
	best        Genome
	bestFitness float64
	history     History
}

// NewEngine validates its inputs and creates the initial population.
// The catalog is copied; the caller's slice is never modified.
func NewEngine(catalog Catalog, capacity float64, config EvolutionConfig, opts ...Option) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}

	e := &Engine{
		Catalog:     catalog.Clone(),
		Capacity:    capacity,
		Config:      config,
		bestFitness: math.Inf(-1),
		history: History{
			BestFitness: make([]float64, 0, config.NumGenerations),
			MeanFitness: make([]float64, 0, config.NumGenerations),
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewRand(config.Seed)
	}

	e.reproduction = NewReproduction(config, len(e.Catalog), e.rng)
	e.population = e.reproduction.CreateNewPopulation()
	e.state = StateInitialized
	return e, nil
}

// Run evolves the population for exactly NumGenerations generations and returns
// the best genome seen over the whole run together with its fitness.
// With zero generations the empty knapsack is returned.
func (e *Engine) Run() (Genome, float64, error) {
	if e.state != StateInitialized {
		return Genome{}, 0, ErrAlreadyRun
	}
	e.state = StateEvolving

	for e.generation < e.Config.NumGenerations {
		e.runGeneration()
	}

	if e.generation == 0 {
		e.best = NewGenome(len(e.Catalog))
		e.bestFitness = Evaluate(e.best, e.Catalog, e.Capacity)
	}
	e.state = StateDone
	e.reporters.Complete(e.best, e.bestFitness, e.generation)
	return e.best.Clone(), e.bestFitness, nil
}

// runGeneration evaluates the current population, records its statistics and
// replaces it with the next generation.
func (e *Engine) runGeneration() {
	start := time.Now()
	e.reporters.StartGeneration(e.generation)

	fitness := EvaluatePopulation(e.population, e.Catalog, e.Capacity)
	stats := summarize(e.generation, fitness)
	e.history.append(stats)
	e.reporters.PostEvaluate(stats)

	// Strict improvement only: a later tie keeps the earlier genome.
	if stats.BestFitness > e.bestFitness {
		e.best = e.population[stats.BestIndex].Clone()
		e.bestFitness = stats.BestFitness
		e.reporters.NewBest(e.generation, e.best, e.bestFitness)
	}

	e.population = e.reproduction.Reproduce(e.population, fitness)
	e.reporters.EndGeneration(e.generation, len(e.population), time.Since(start))
	e.generation++
}

// State returns the engine's lifecycle stage.
func (e *Engine) State() State {
	return e.state
}

// Generation returns the number of generations completed so far.
func (e *Engine) Generation() int {
	return e.generation
}

// History returns a copy of the per-generation best and mean fitness.
func (e *Engine) History() History {
	return e.history.Clone()
}

// Best returns a copy of the best genome seen so far and its fitness.
// Before the first generation is evaluated the genome is empty and the fitness is -Inf.
func (e *Engine) Best() (Genome, float64) {
	return e.best.Clone(), e.bestFitness
}

// Population returns copies of the current generation's genomes.
func (e *Engine) Population() []Genome {
	out := make([]Genome, len(e.population))
	for i, g := range e.population {
		out[i] = g.Clone()
	}
	return out
}
