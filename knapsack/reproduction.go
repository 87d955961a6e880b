package knapsack

// Reproduction handles the creation of new genomes, either from scratch or
// through selection, crossover and mutation.
type Reproduction struct {
	Config   EvolutionConfig
	NumGenes int

	rng     Rand
	indices []int // scratch for sampling tournament entrants
}

// NewReproduction creates a population manager for genomes of numGenes genes.
func NewReproduction(config EvolutionConfig, numGenes int, rng Rand) *Reproduction {
	return &Reproduction{
		Config:   config,
		NumGenes: numGenes,
		rng:      rng,
		indices:  make([]int, config.PopulationSize),
	}
}

// CreateNewPopulation creates an initial population of random genomes.
// Infeasible genomes are kept; they simply score 0.
func (r *Reproduction) CreateNewPopulation() []Genome {
	population := make([]Genome, r.Config.PopulationSize)
	for i := range population {
		population[i] = RandomGenome(r.NumGenes, r.rng)
	}
	return population
}

// TournamentSelect draws TournamentSize distinct indices and returns the one
// with the highest fitness. The first entrant drawn wins ties.
func (r *Reproduction) TournamentSelect(fitness []float64) int {
	n := len(fitness)
	if cap(r.indices) < n {
		r.indices = make([]int, n)
	}
	idx := r.indices[:n]
	for i := range idx {
		idx[i] = i
	}

	k := min(r.Config.TournamentSize, n)
	winner := -1
	for i := 0; i < k; i++ {
		// Partial Fisher-Yates: position i receives a uniform pick from the rest.
		j := i + r.rng.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
		if winner < 0 || fitness[idx[i]] > fitness[winner] {
			winner = idx[i]
		}
	}
	return winner
}

// Crossover performs single-point crossover with probability CrossoverRate.
// The cut lies in [1, N-1], so each child takes a non-empty prefix from one
// parent and a non-empty suffix from the other. Otherwise, or when genomes are
// too short to cut, the children are copies of the parents.
func (r *Reproduction) Crossover(a, b Genome) (Genome, Genome) {
	c1, c2 := a.Clone(), b.Clone()
	if r.rng.Float64() >= r.Config.CrossoverRate {
		return c1, c2
	}
	n := min(a.Len(), b.Len())
	if n < 2 {
		return c1, c2
	}

	cut := 1 + r.rng.IntN(n-1)
	for i := cut; i < n; i++ {
		c1.Set(i, b.Has(i))
		c2.Set(i, a.Has(i))
	}
	return c1, c2
}

// Mutate flips each gene of g independently with probability MutationRate.
func (r *Reproduction) Mutate(g Genome) {
	for i := 0; i < g.Len(); i++ {
		if r.rng.Float64() < r.Config.MutationRate {
			g.Flip(i)
		}
	}
}

// Reproduce builds the next generation: the best genome of the current one is
// copied into slot 0 untouched, and the remaining slots are filled with mutated
// offspring of tournament-selected parents.
func (r *Reproduction) Reproduce(population []Genome, fitness []float64) []Genome {
	popSize := r.Config.PopulationSize
	next := make([]Genome, 0, popSize)

	next = append(next, population[bestIndex(fitness)].Clone())

	for len(next) < popSize {
		parent1 := population[r.TournamentSelect(fitness)]
		parent2 := population[r.TournamentSelect(fitness)]

		child1, child2 := r.Crossover(parent1, parent2)
		r.Mutate(child1)
		r.Mutate(child2)

		next = append(next, child1)
		if len(next) < popSize {
			next = append(next, child2)
		}
	}
	return next
}
