package knapsack

// Evaluate scores a genome: the total value of the packed items when their
// total weight fits the capacity (inclusive), otherwise exactly 0.
// Infeasible genomes are not partially credited.
func Evaluate(g Genome, catalog Catalog, capacity float64) float64 {
	weight, value := catalog.Totals(g)
	if weight > capacity {
		return 0
	}
	return value
}

// EvaluatePopulation scores every genome of a population, in order.
func EvaluatePopulation(population []Genome, catalog Catalog, capacity float64) []float64 {
	fitness := make([]float64, len(population))
	for i, g := range population {
		fitness[i] = Evaluate(g, catalog, capacity)
	}
	return fitness
}
