// Package knapsackga solves the 0/1 knapsack problem with a genetic algorithm.
//
// A genome is a bit vector with one gene per catalog item. Fitness is the total
// value of the packed items, or 0 when they exceed the capacity. Each generation
// keeps its best genome unchanged (elitism) and fills the rest of the population
// with offspring of tournament-selected parents, produced by single-point
// crossover and per-gene bit-flip mutation. The search is a heuristic: it is not
// guaranteed to find the optimum.
//
// The engine lives in the knapsack package; knapsack/experiment runs repeated
// seeded trials and knapsack/report renders tables and fitness plots.
//
// Basic usage:
//
//	catalog := knapsack.Catalog{
//		{Name: "tent", Weight: 5, Value: 10},
//		{Name: "stove", Weight: 8, Value: 12},
//		{Name: "lamp", Weight: 3, Value: 7},
//	}
//
//	cfg := knapsack.DefaultEvolutionConfig()
//	cfg.Seed = 42
//
//	engine, err := knapsack.NewEngine(catalog, 10, cfg)
//	if err != nil {
//		log.Fatalf("Error creating engine: %v", err)
//	}
//
//	best, fitness, err := engine.Run()
//	if err != nil {
//		log.Fatalf("Error running engine: %v", err)
//	}
//	fmt.Printf("best %s with value %.0f\n", best, fitness)
//
//	history := engine.History() // best and mean fitness per generation
package knapsackga
