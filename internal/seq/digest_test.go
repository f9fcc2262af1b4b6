package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Digest(t *testing.T) {
	type args struct {
		top      string
		circular bool
		enzyme   string
	}
	type fragment struct {
		top    string
		bottom string
	}
	tests := []struct {
		name string
		args args
		want []fragment
	}{
		{
			"no recognition site returns the molecule unchanged",
			args{"TGACGTTTAAAA", false, "EcoRI"},
			[]fragment{{"TGACGTTTAAAA", "TTTTAAACGTCA"}},
		},
		{
			"NcoI leaves 5-prime overhangs",
			args{"TGACCATGGAAA", false, "NcoI"},
			[]fragment{
				{"TGAC----", "CATGGTCA"},
				{"CATGGAAA", "TTTC----"},
			},
		},
		{
			"EcoRV cuts blunt",
			args{"AAGATATCCC", false, "EcoRV"},
			[]fragment{
				{"AAGAT", "ATCTT"},
				{"ATCCC", "GGGAT"},
			},
		},
		{
			"PstI leaves 3-prime overhangs at two sites",
			args{"AACTGCAGTTTGGGCTGCAGAA", false, "PstI"},
			[]fragment{
				{"AACTGCA", "----GTT"},
				{"----GTTTGGGCTGCA", "----GCCCAAACTGCA"},
				{"----GAA", "TTCTGCA"},
			},
		},
		{
			"single site on a plasmid linearizes it",
			args{"GGACCTAGCATGAATTCGGTCACTGGTTACCAAGTCCTTAG", true, "EcoRI"},
			[]fragment{
				{
					"AATTCGGTCACTGGTTACCAAGTCCTTAGGGACCTAGCATG----",
					"AATTCATGCTAGGTCCCTAAGGACTTGGTAACCAGTGACCG----",
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dna := mustDNA(t, tt.args.top)
			if tt.args.circular {
				var err error
				dna, err = dna.Circularize()
				require.NoError(t, err)
			}
			site, err := Enzyme(tt.args.enzyme)
			require.NoError(t, err)

			got, err := Digest(dna, site)
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want.top, got[i].Top().String(), "fragment %d top", i)
				assert.Equal(t, want.bottom, got[i].Bottom().String(), "fragment %d bottom", i)
				assert.False(t, got[i].IsCircular(), "fragment %d should be linear", i)
			}
		})
	}
}

func Test_Digest_fragments_rejoin(t *testing.T) {
	// the sticky ends of a linear digest stay joinable: concatenation keeps
	// each overhang as a gapped column instead of raising a discontinuity
	dna := mustDNA(t, "TGACCATGGAAA")
	site, err := Enzyme("NcoI")
	require.NoError(t, err)

	fragments, err := Digest(dna, site)
	require.NoError(t, err)
	require.Len(t, fragments, 2)

	joined, err := fragments[0].Add(fragments[1])
	require.NoError(t, err)
	assert.Equal(t, "TGAC----CATGGAAA", joined.Top().String())
	assert.Equal(t, "TTTC----CATGGTCA", joined.Bottom().String())
}

func Test_Digest_cut_outside_fragment(t *testing.T) {
	// FokI nicks 9 and 13 bases past its recognition site; on a template
	// that ends before the nick the digest must fail, not wrap
	dna := mustDNA(t, "AAGGATGCCTT")
	fokI, err := Enzyme("FokI")
	require.NoError(t, err)

	_, err = Digest(dna, fokI)
	require.Error(t, err)
	assert.IsType(t, ValueError(""), err)
}
