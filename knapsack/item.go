package knapsack

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Item is a single candidate for the knapsack.
type Item struct {
	Name   string
	Weight float64
	Value  float64
}

// Density returns the value carried per unit of weight.
func (it Item) Density() float64 {
	return it.Value / it.Weight
}

// Catalog is the ordered list of items a genome indexes into.
type Catalog []Item

// NamedCatalog pairs a catalog with the label used in reports.
type NamedCatalog struct {
	Name  string
	Items Catalog
}

// Validate checks that the catalog is usable as engine input.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return configErrorf("catalog must contain at least one item")
	}
	for i, it := range c {
		if !(it.Weight > 0) || math.IsInf(it.Weight, 0) {
			return configErrorf("item %d (%q) weight must be a positive finite number, got %v", i, it.Name, it.Weight)
		}
		if !(it.Value > 0) || math.IsInf(it.Value, 0) {
			return configErrorf("item %d (%q) value must be a positive finite number, got %v", i, it.Name, it.Value)
		}
	}
	return nil
}

// Clone returns a copy that shares no storage with c.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	copy(out, c)
	return out
}

// Totals sums weight and value over the items selected by g.
func (c Catalog) Totals(g Genome) (weight, value float64) {
	for i, it := range c {
		if g.Has(i) {
			weight += it.Weight
			value += it.Value
		}
	}
	return weight, value
}

// MeanDensity is the average value/weight ratio over all items.
func (c Catalog) MeanDensity() float64 {
	if len(c) == 0 {
		return 0
	}
	densities := make([]float64, len(c))
	for i, it := range c {
		densities[i] = it.Density()
	}
	return stat.Mean(densities, nil)
}
