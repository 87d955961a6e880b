package knapsack

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine_InvalidInputs(t *testing.T) {
	valid := DefaultEvolutionConfig()

	tests := []struct {
		name     string
		mutate   func(*EvolutionConfig)
		catalog  Catalog
		capacity float64
	}{
		{name: "zero population", mutate: func(c *EvolutionConfig) { c.PopulationSize = 0 }},
		{name: "negative population", mutate: func(c *EvolutionConfig) { c.PopulationSize = -4 }},
		{name: "negative generations", mutate: func(c *EvolutionConfig) { c.NumGenerations = -1 }},
		{name: "crossover above one", mutate: func(c *EvolutionConfig) { c.CrossoverRate = 1.2 }},
		{name: "crossover NaN", mutate: func(c *EvolutionConfig) { c.CrossoverRate = math.NaN() }},
		{name: "negative mutation", mutate: func(c *EvolutionConfig) { c.MutationRate = -0.01 }},
		{name: "zero tournament", mutate: func(c *EvolutionConfig) { c.TournamentSize = 0 }},
		{name: "tournament larger than population", mutate: func(c *EvolutionConfig) { c.TournamentSize = 101 }},
		{name: "empty catalog", catalog: Catalog{}},
		{name: "zero weight item", catalog: Catalog{{Name: "x", Weight: 0, Value: 1}}},
		{name: "negative value item", catalog: Catalog{{Name: "x", Weight: 1, Value: -1}}},
		{name: "negative capacity", capacity: -1},
		{name: "NaN capacity", capacity: math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}
			catalog := tt.catalog
			if catalog == nil {
				catalog = smallCatalog()
			}
			capacity := tt.capacity
			if capacity == 0 {
				capacity = 10
			}

			e, err := NewEngine(catalog, capacity, cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "error %v should wrap ErrInvalidConfig", err)
			assert.Nil(t, e)
		})
	}
}

func TestEngine_FindsOptimumOnSmallCatalog(t *testing.T) {
	hits := 0
	for seed := uint64(1); seed <= 20; seed++ {
		cfg := DefaultEvolutionConfig()
		cfg.Seed = seed

		e, err := NewEngine(smallCatalog(), 10, cfg)
		require.NoError(t, err)
		best, fitness, err := e.Run()
		require.NoError(t, err)

		assert.Equal(t, fitness, Evaluate(best, smallCatalog(), 10), "seed %d: returned fitness matches genome", seed)
		if fitness == 22 {
			hits++
			assert.Equal(t, "1011", best.String())
		}
	}
	assert.Greater(t, hits, 10, "most seeds should reach the optimum of 22")
}

func TestEngine_Deterministic(t *testing.T) {
	catalog := Catalog{
		{Name: "Item 1", Weight: 5, Value: 10}, {Name: "Item 2", Weight: 8, Value: 12},
		{Name: "Item 3", Weight: 3, Value: 7}, {Name: "Item 4", Weight: 2, Value: 5},
		{Name: "Item 5", Weight: 7, Value: 15}, {Name: "Item 6", Weight: 4, Value: 8},
		{Name: "Item 7", Weight: 9, Value: 20}, {Name: "Item 8", Weight: 1, Value: 3},
		{Name: "Item 9", Weight: 6, Value: 11}, {Name: "Item 10", Weight: 10, Value: 22},
	}
	cfg := DefaultEvolutionConfig()
	cfg.NumGenerations = 60

	run := func() (Genome, float64, History) {
		e, err := NewEngine(catalog, 25, cfg, WithRand(NewRand(1234)))
		require.NoError(t, err)
		best, fitness, err := e.Run()
		require.NoError(t, err)
		return best, fitness, e.History()
	}

	best1, fit1, hist1 := run()
	best2, fit2, hist2 := run()

	assert.True(t, best1.Equal(best2))
	assert.Equal(t, fit1, fit2)
	assert.Equal(t, hist1, hist2)
}

func TestEngine_HistoryShapeAndElitism(t *testing.T) {
	cfg := DefaultEvolutionConfig()
	cfg.NumGenerations = 80
	cfg.Seed = 77
	catalog := Catalog{
		{Weight: 12, Value: 4}, {Weight: 2, Value: 2}, {Weight: 1, Value: 1}, {Weight: 4, Value: 10},
		{Weight: 1, Value: 2}, {Weight: 3, Value: 3}, {Weight: 7, Value: 9}, {Weight: 5, Value: 5},
		{Weight: 9, Value: 8}, {Weight: 2, Value: 3}, {Weight: 6, Value: 7}, {Weight: 8, Value: 6},
	}

	e, err := NewEngine(catalog, 20, cfg)
	require.NoError(t, err)
	_, fitness, err := e.Run()
	require.NoError(t, err)

	h := e.History()
	require.Equal(t, 80, h.Len())
	require.Len(t, h.MeanFitness, 80)
	for i := 1; i < h.Len(); i++ {
		assert.GreaterOrEqual(t, h.BestFitness[i], h.BestFitness[i-1], "generation %d", i)
	}
	for i := range h.MeanFitness {
		assert.LessOrEqual(t, h.MeanFitness[i], h.BestFitness[i])
	}
	assert.Equal(t, h.BestFitness[h.Len()-1], fitness)
	assert.Len(t, e.Population(), cfg.PopulationSize)
}

func TestEngine_StateAndSingleRun(t *testing.T) {
	cfg := DefaultEvolutionConfig()
	cfg.NumGenerations = 3
	cfg.Seed = 5

	e, err := NewEngine(smallCatalog(), 10, cfg)
	require.NoError(t, err)
	assert.Equal(t, StateInitialized, e.State())
	assert.Len(t, e.Population(), 100)

	_, _, err = e.Run()
	require.NoError(t, err)
	assert.Equal(t, StateDone, e.State())
	assert.Equal(t, 3, e.Generation())

	_, _, err = e.Run()
	assert.ErrorIs(t, err, ErrAlreadyRun)
	assert.Equal(t, 3, e.History().Len())
}

func TestEngine_ZeroGenerations(t *testing.T) {
	cfg := DefaultEvolutionConfig()
	cfg.NumGenerations = 0

	e, err := NewEngine(smallCatalog(), 10, cfg, WithRand(NewRand(1)))
	require.NoError(t, err)
	best, fitness, err := e.Run()
	require.NoError(t, err)

	assert.Equal(t, "0000", best.String())
	assert.Zero(t, fitness)
	assert.Zero(t, e.History().Len())
}

func TestEngine_DegenerateCatalog(t *testing.T) {
	cfg := DefaultEvolutionConfig()
	cfg.NumGenerations = 20
	cfg.Seed = 3
	catalog := Catalog{{Name: "anvil", Weight: 50, Value: 9}, {Name: "piano", Weight: 80, Value: 30}}

	e, err := NewEngine(catalog, 10, cfg)
	require.NoError(t, err)
	_, fitness, err := e.Run()
	require.NoError(t, err)

	assert.Zero(t, fitness)
	for _, v := range e.History().BestFitness {
		assert.Zero(t, v)
	}
}

func TestEngine_DoesNotMutateInputsOrLeakState(t *testing.T) {
	catalog := smallCatalog()
	original := catalog.Clone()
	cfg := DefaultEvolutionConfig()
	cfg.NumGenerations = 10
	cfg.Seed = 9

	e, err := NewEngine(catalog, 10, cfg)
	require.NoError(t, err)
	catalog[0].Value = 1000 // caller edits after construction do not reach the engine
	best, fitness, err := e.Run()
	require.NoError(t, err)

	assert.Equal(t, original, e.Catalog)
	best.Flip(0)
	again, againFitness := e.Best()
	assert.False(t, again.Equal(best), "Run returns a copy")
	assert.Equal(t, fitness, againFitness)

	h := e.History()
	h.BestFitness[0] = -1
	assert.NotEqual(t, -1.0, e.History().BestFitness[0])
}

type countingReporter struct {
	starts, evaluations, ends, completes int
	bests                                []float64
}

func (r *countingReporter) StartGeneration(int) { r.starts++ }
func (r *countingReporter) PostEvaluate(GenerationStats) { r.evaluations++ }
func (r *countingReporter) NewBest(_ int, _ Genome, f float64) { r.bests = append(r.bests, f) }
func (r *countingReporter) EndGeneration(int, int, time.Duration) { r.ends++ }
func (r *countingReporter) Complete(Genome, float64, int) { r.completes++ }

func TestEngine_Reporters(t *testing.T) {
	cfg := DefaultEvolutionConfig()
	cfg.NumGenerations = 15
	cfg.Seed = 2
	rep := &countingReporter{}

	e, err := NewEngine(smallCatalog(), 10, cfg, WithReporter(rep))
	require.NoError(t, err)
	_, fitness, err := e.Run()
	require.NoError(t, err)

	assert.Equal(t, 15, rep.starts)
	assert.Equal(t, 15, rep.evaluations)
	assert.Equal(t, 15, rep.ends)
	assert.Equal(t, 1, rep.completes)
	require.NotEmpty(t, rep.bests)
	for i := 1; i < len(rep.bests); i++ {
		assert.Greater(t, rep.bests[i], rep.bests[i-1], "new bests are strict improvements")
	}
	assert.Equal(t, fitness, rep.bests[len(rep.bests)-1])
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "initialized", StateInitialized.String())
	assert.Equal(t, "evolving", StateEvolving.String())
	assert.Equal(t, "done", StateDone.String())
}
