package experiment

import (
	"context"
	"fmt"

	"github.com/baldhumanity/knapsack-ga/knapsack"
)

// SweepCapacities runs the same catalog at each capacity, in order.
func (r *Runner) SweepCapacities(ctx context.Context, catalog knapsack.NamedCatalog, capacities []float64) ([]Summary, error) {
	summaries := make([]Summary, 0, len(capacities))
	for _, capacity := range capacities {
		label := fmt.Sprintf("%s@%g", catalog.Name, capacity)
		s, err := r.Run(ctx, label, catalog.Items, capacity)
		if err != nil {
			return summaries, fmt.Errorf("capacity %g: %w", capacity, err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// CompareCatalogs runs each catalog at the same capacity, in order.
func (r *Runner) CompareCatalogs(ctx context.Context, catalogs []knapsack.NamedCatalog, capacity float64) ([]Summary, error) {
	summaries := make([]Summary, 0, len(catalogs))
	for _, c := range catalogs {
		s, err := r.Run(ctx, c.Name, c.Items, capacity)
		if err != nil {
			return summaries, fmt.Errorf("catalog %s: %w", c.Name, err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
