package knapsack

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Genome is a fixed-length bit vector; gene i set means catalog item i is packed.
// The zero value is an empty genome.
type Genome struct {
	bits *bitset.BitSet
}

// NewGenome returns a genome of n genes, all zero.
func NewGenome(n int) Genome {
	return Genome{bits: bitset.New(uint(n))}
}

// RandomGenome draws each of the n genes independently and uniformly from {0,1}.
func RandomGenome(n int, rng Rand) Genome {
	g := NewGenome(n)
	for i := 0; i < n; i++ {
		if rng.IntN(2) == 1 {
			g.bits.Set(uint(i))
		}
	}
	return g
}

// GenomeFromGenes builds a genome from a 0/1 slice. Any non-zero entry counts as 1.
func GenomeFromGenes(genes []uint8) Genome {
	g := NewGenome(len(genes))
	for i, v := range genes {
		if v != 0 {
			g.bits.Set(uint(i))
		}
	}
	return g
}

// Len returns the number of genes.
func (g Genome) Len() int {
	if g.bits == nil {
		return 0
	}
	return int(g.bits.Len())
}

// Has reports whether gene i is 1. Out-of-range indices read as 0.
func (g Genome) Has(i int) bool {
	if g.bits == nil || i < 0 {
		return false
	}
	return g.bits.Test(uint(i))
}

// Gene returns gene i as 0 or 1.
func (g Genome) Gene(i int) uint8 {
	if g.Has(i) {
		return 1
	}
	return 0
}

// Set assigns gene i.
func (g Genome) Set(i int, on bool) {
	g.bits.SetTo(uint(i), on)
}

// Flip toggles gene i in place.
func (g Genome) Flip(i int) {
	g.bits.Flip(uint(i))
}

// Count returns the number of genes set to 1.
func (g Genome) Count() int {
	if g.bits == nil {
		return 0
	}
	return int(g.bits.Count())
}

// Clone returns a deep copy.
func (g Genome) Clone() Genome {
	if g.bits == nil {
		return Genome{}
	}
	return Genome{bits: g.bits.Clone()}
}

// Equal reports whether both genomes have the same length and genes.
func (g Genome) Equal(other Genome) bool {
	if g.Len() != other.Len() {
		return false
	}
	for i := 0; i < g.Len(); i++ {
		if g.Has(i) != other.Has(i) {
			return false
		}
	}
	return true
}

// Genes returns the genome as a fresh 0/1 slice.
func (g Genome) Genes() []uint8 {
	out := make([]uint8, g.Len())
	for i := range out {
		out[i] = g.Gene(i)
	}
	return out
}

// String renders the genome as a string of 0s and 1s, gene 0 first.
func (g Genome) String() string {
	var sb strings.Builder
	sb.Grow(g.Len())
	for i := 0; i < g.Len(); i++ {
		if g.Has(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
