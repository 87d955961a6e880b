package knapsack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenomeFromGenes(t *testing.T) {
	g := GenomeFromGenes([]uint8{1, 0, 1, 1, 0})

	assert.Equal(t, 5, g.Len())
	assert.Equal(t, 3, g.Count())
	assert.Equal(t, "10110", g.String())
	assert.Equal(t, []uint8{1, 0, 1, 1, 0}, g.Genes())
	assert.False(t, g.Has(7), "out-of-range genes read as 0")
}

func TestGenomeCloneIsIndependent(t *testing.T) {
	g := GenomeFromGenes([]uint8{0, 0, 0, 0})
	c := g.Clone()
	c.Flip(2)

	assert.Equal(t, "0000", g.String())
	assert.Equal(t, "0010", c.String())
	assert.False(t, g.Equal(c))
}

func TestGenomeZeroValue(t *testing.T) {
	var g Genome
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, "", g.String())
	assert.Equal(t, 0, g.Clone().Len())
}

func TestRandomGenomeLengthAndDeterminism(t *testing.T) {
	a := RandomGenome(64, NewRand(7))
	b := RandomGenome(64, NewRand(7))

	require.Equal(t, 64, a.Len())
	assert.True(t, a.Equal(b))
	assert.Greater(t, a.Count(), 0)
	assert.Less(t, a.Count(), 64)
}
