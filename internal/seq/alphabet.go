// Package seq models double-stranded, topologically-aware DNA sequences and
// simulates reactions on them: PCR, restriction digestion, Gibson assembly,
// and overlapping-oligo assembly design.
package seq

// Material is the kind of molecule a strand is made of. DNA, RNA and
// peptides share near-identical sequence behavior, differing only in their
// alphabet and complement tables.
type Material int

const (
	// DNAMaterial is deoxyribonucleic acid: A, T, G, C plus the N wildcard
	// and the '-' gap character used to represent nicks and overhangs
	DNAMaterial Material = iota

	// RNAMaterial is ribonucleic acid: A, U, G, C, N, '-'
	RNAMaterial

	// PeptideMaterial is a chain of amino acids. Peptides have no
	// complement
	PeptideMaterial
)

// Gap is the character marking a missing base on one strand: a nick,
// overhang, or internal discontinuity.
const Gap = '-'

// String returns the material's name.
func (m Material) String() string {
	switch m {
	case DNAMaterial:
		return "DNA"
	case RNAMaterial:
		return "RNA"
	case PeptideMaterial:
		return "peptide"
	}
	return "unknown"
}

// complements maps each nucleic-acid symbol to its base-pairing partner.
// Gaps and the N wildcard complement themselves.
var complements = map[Material]map[byte]byte{
	DNAMaterial: {
		'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G', 'N': 'N', Gap: Gap,
	},
	RNAMaterial: {
		'A': 'U', 'U': 'A', 'G': 'C', 'C': 'G', 'N': 'N', Gap: Gap,
	},
}

// alphabets holds every symbol valid for a material. Peptides include the
// '*' stop symbol and the X wildcard.
var alphabets = map[Material]string{
	DNAMaterial:     "ATGCN-",
	RNAMaterial:     "AUGCN-",
	PeptideMaterial: "ACDEFGHIKLMNPQRSTVWYX*-",
}

// checkAlphabet verifies that s (already uppercased) contains only symbols
// valid for the material.
func checkAlphabet(s string, m Material) error {
	alphabet := alphabets[m]
	for i := 0; i < len(s); i++ {
		if indexByte(alphabet, s[i]) < 0 {
			return valueErrorf("encountered a non-%s character %q at index %d", m, s[i], i)
		}
	}
	return nil
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// codonTable is the standard genetic code, RNA codons to single-letter
// amino acids ('*' for stop).
var codonTable = map[string]byte{
	"UUU": 'F', "UUC": 'F', "UUA": 'L', "UUG": 'L',
	"CUU": 'L', "CUC": 'L', "CUA": 'L', "CUG": 'L',
	"AUU": 'I', "AUC": 'I', "AUA": 'I', "AUG": 'M',
	"GUU": 'V', "GUC": 'V', "GUA": 'V', "GUG": 'V',
	"UCU": 'S', "UCC": 'S', "UCA": 'S', "UCG": 'S',
	"CCU": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"ACU": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"GCU": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"UAU": 'Y', "UAC": 'Y', "UAA": '*', "UAG": '*',
	"CAU": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"AAU": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"GAU": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"UGU": 'C', "UGC": 'C', "UGA": '*', "UGG": 'W',
	"CGU": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"AGU": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GGU": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}
