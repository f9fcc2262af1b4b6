package seq

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wallaceTm is the 2(A+T) + 4(G+C) rule: crude but deterministic, which is
// what these tests need.
func wallaceTm(sequence string) float64 {
	tm := 0.0
	for i := 0; i < len(sequence); i++ {
		switch sequence[i] {
		case 'A', 'T':
			tm += 2
		case 'G', 'C':
			tm += 4
		}
	}
	return tm
}

// gibsonPlasmid is assembled from two fragments sharing 20bp junctions at
// positions [50:70] and [0:20].
const gibsonPlasmid = "CGGTACCCCCACCATATCTAGAAATAGAATCTGGGCAACCCCGATAGGCTATGTAGAGGTGTGTTTCTTCGAAGCGTGCGGATATCTGTCACGAACTCTCGACCCATTTATCTCGTTAAA"

func gibsonFragments(t *testing.T) (*DNA, *DNA) {
	t.Helper()
	a := mustDNA(t, gibsonPlasmid[0:70])
	b := mustDNA(t, gibsonPlasmid[50:]+gibsonPlasmid[:20])
	return a, b
}

func Test_Gibson_circular(t *testing.T) {
	a, b := gibsonFragments(t)

	product, warnings, err := Gibson([]*DNA{a, b}, GibsonOptions{MinTm: 50, Tm: wallaceTm})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.True(t, product.IsCircular())
	assert.Equal(t, gibsonPlasmid, product.Top().String())

	// fragment order doesn't matter up to rotation/orientation
	flipped, _, err := Gibson([]*DNA{b, a.ReverseComplement()}, GibsonOptions{MinTm: 50, Tm: wallaceTm})
	require.NoError(t, err)
	reference := mustCircular(t, gibsonPlasmid)
	assert.True(t, reference.IsRotation(flipped))
}

func Test_Gibson_deduplicates(t *testing.T) {
	a, b := gibsonFragments(t)

	product, _, err := Gibson([]*DNA{a, b, a.Copy(), b.Copy()}, GibsonOptions{MinTm: 50, Tm: wallaceTm})
	require.NoError(t, err)
	assert.Equal(t, gibsonPlasmid, product.Top().String())
}

func Test_Gibson_linear(t *testing.T) {
	a, b := gibsonFragments(t)

	product, _, err := Gibson([]*DNA{a, b}, GibsonOptions{Linear: true, MinTm: 50, Tm: wallaceTm})
	require.NoError(t, err)
	assert.False(t, product.IsCircular())
	assert.Equal(t, gibsonPlasmid+gibsonPlasmid[:20], product.Top().String())
}

func Test_Gibson_tm_warning(t *testing.T) {
	a, b := gibsonFragments(t)

	// the [50:70] junction melts at 56 by the Wallace rule: two degrees
	// under the threshold, inside the tolerance window
	product, warnings, err := Gibson([]*DNA{a, b}, GibsonOptions{MinTm: 58, Tm: wallaceTm})
	require.NoError(t, err)
	assert.NotEmpty(t, warnings)
	assert.Equal(t, gibsonPlasmid, product.Top().String())
}

func Test_Gibson_errors(t *testing.T) {
	a, b := gibsonFragments(t)

	// a third fragment sharing a's junction makes the fusion ambiguous
	decoy := mustDNA(t, gibsonPlasmid[50:70]+"GGTTGACCTTAGACGGTAACGTCCTGGAAT")
	_, _, err := Gibson([]*DNA{a, b, decoy}, GibsonOptions{MinTm: 50, Tm: wallaceTm})
	var ambiguous AmbiguousGibsonError
	assert.True(t, errors.As(err, &ambiguous), "got %v", err)

	// no shared homology at all
	stranger := mustDNA(t, "GGTTGACCTTAGACGGTAACGTCCTGGAATCCATACGGTCAGGTAACC")
	_, _, err = Gibson([]*DNA{a, stranger}, GibsonOptions{MinTm: 50, Tm: wallaceTm})
	var valueErr ValueError
	assert.True(t, errors.As(err, &valueErr), "got %v", err)

	// circular fragments are not assembly inputs
	_, _, err = Gibson([]*DNA{mustCircular(t, gibsonPlasmid)}, GibsonOptions{MinTm: 50, Tm: wallaceTm})
	assert.True(t, errors.As(err, &valueErr), "got %v", err)

	// nothing to assemble
	_, _, err = Gibson(nil, GibsonOptions{MinTm: 50, Tm: wallaceTm})
	assert.True(t, errors.As(err, &valueErr), "got %v", err)
}
