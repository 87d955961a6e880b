// Package experiment runs repeated, independently seeded engine trials and
// summarizes them, for studies such as capacity sweeps and item-set comparisons.
package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"
	"gonum.org/v1/gonum/stat"

	"github.com/baldhumanity/knapsack-ga/knapsack"
)

// Trial is the outcome of one engine run.
type Trial struct {
	Seed        uint64
	Best        knapsack.Genome
	BestFitness float64
	History     knapsack.History
	Elapsed     time.Duration
	Record      knapsack.RunRecord
}

// Summary aggregates the trials of one experiment.
type Summary struct {
	Label       string
	Capacity    float64
	Trials      []Trial
	MeanElapsed time.Duration
	MeanValue   float64
	StdValue    float64 // population standard deviation of the best values
	MeanDensity float64 // mean value/weight ratio of the catalog
}

// Last returns the final trial, the one whose curve is usually plotted.
func (s Summary) Last() Trial {
	if len(s.Trials) == 0 {
		return Trial{}
	}
	return s.Trials[len(s.Trials)-1]
}

// BestValues returns the best fitness of every trial, in trial order.
func (s Summary) BestValues() []float64 {
	values := make([]float64, len(s.Trials))
	for i, t := range s.Trials {
		values[i] = t.BestFitness
	}
	return values
}

// Runner executes a fixed number of trials per experiment.
type Runner struct {
	Evolution knapsack.EvolutionConfig
	Trials    int
	Workers   int    // trials run concurrently, each on its own engine
	BaseSeed  uint64 // trial i uses BaseSeed+i+1; 0 = random seeds

	// NewReporter, when set, supplies a reporter for each trial.
	NewReporter func(label string, trial int) knapsack.Reporter
}

// NewRunner builds a runner from a loaded configuration.
func NewRunner(config *knapsack.Config) *Runner {
	return &Runner{
		Evolution: config.Evolution,
		Trials:    config.Experiment.Trials,
		Workers:   config.Experiment.Workers,
		BaseSeed:  config.Evolution.Seed,
	}
}

func (r *Runner) seed(trial int) uint64 {
	if r.BaseSeed == 0 {
		return 0
	}
	return r.BaseSeed + uint64(trial) + 1
}

// Run executes the trials for one catalog and capacity. Trials that have not
// started when ctx is cancelled are skipped and ctx.Err() is returned.
func (r *Runner) Run(ctx context.Context, label string, catalog knapsack.Catalog, capacity float64) (Summary, error) {
	if r.Trials <= 0 {
		return Summary{}, fmt.Errorf("%w: trials must be positive, got %d", knapsack.ErrInvalidConfig, r.Trials)
	}
	workers := r.Workers
	if workers <= 0 {
		workers = 1
	}

	trials := make([]Trial, r.Trials)
	p := pool.New().WithErrors().WithMaxGoroutines(workers)
	for i := 0; i < r.Trials; i++ {
		p.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			trial, err := r.runTrial(label, i, catalog, capacity)
			if err != nil {
				return fmt.Errorf("%s trial %d: %w", label, i+1, err)
			}
			trials[i] = trial
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return Summary{}, err
	}

	return summarize(label, capacity, catalog, trials), nil
}

func (r *Runner) runTrial(label string, i int, catalog knapsack.Catalog, capacity float64) (Trial, error) {
	config := r.Evolution
	config.Seed = r.seed(i)

	var opts []knapsack.Option
	if r.NewReporter != nil {
		opts = append(opts, knapsack.WithReporter(r.NewReporter(label, i)))
	}

	start := time.Now()
	engine, err := knapsack.NewEngine(catalog, capacity, config, opts...)
	if err != nil {
		return Trial{}, err
	}
	best, fitness, err := engine.Run()
	if err != nil {
		return Trial{}, err
	}
	elapsed := time.Since(start)

	return Trial{
		Seed:        config.Seed,
		Best:        best,
		BestFitness: fitness,
		History:     engine.History(),
		Elapsed:     elapsed,
		Record:      knapsack.NewRunRecord(label, engine, elapsed),
	}, nil
}

func summarize(label string, capacity float64, catalog knapsack.Catalog, trials []Trial) Summary {
	s := Summary{
		Label:       label,
		Capacity:    capacity,
		Trials:      trials,
		MeanDensity: catalog.MeanDensity(),
	}

	elapsed := make([]float64, len(trials))
	for i, t := range trials {
		elapsed[i] = t.Elapsed.Seconds()
	}
	s.MeanElapsed = time.Duration(stat.Mean(elapsed, nil) * float64(time.Second))
	s.MeanValue, s.StdValue = stat.PopMeanStdDev(s.BestValues(), nil)
	return s
}
