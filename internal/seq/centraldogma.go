package seq

import "strings"

// Transcribe converts a DNA molecule's top strand to RNA. No splicing or
// other post-transcriptional processing is modeled.
func Transcribe(dna *DNA) (Strand, error) {
	top := dna.Top()
	if strings.ContainsRune(top.String(), Gap) {
		return Strand{}, ValueError("cannot transcribe gapped DNA")
	}
	rna := strings.ReplaceAll(top.String(), "T", "U")
	return newStrand(rna, RNAMaterial), nil
}

// ReverseTranscribe converts an RNA strand back to double-stranded DNA.
func ReverseTranscribe(rna Strand) (*DNA, error) {
	if rna.Material() != RNAMaterial {
		return nil, valueErrorf("cannot reverse transcribe %s", rna.Material())
	}
	return NewDNA(strings.ReplaceAll(rna.String(), "U", "T"))
}

// Translate reads an RNA strand codon by codon from its first base,
// producing a peptide. Translation stops at the first stop codon or when
// fewer than three bases remain; the stop itself is not included.
func Translate(rna Strand) (Strand, error) {
	if rna.Material() != RNAMaterial {
		return Strand{}, valueErrorf("cannot translate %s", rna.Material())
	}
	message := rna.String()
	var peptide []byte
	for i := 0; i+3 <= len(message); i += 3 {
		amino, ok := codonTable[message[i:i+3]]
		if !ok {
			return Strand{}, valueErrorf("cannot translate codon %q at index %d", message[i:i+3], i)
		}
		if amino == '*' {
			break
		}
		peptide = append(peptide, amino)
	}
	return newStrand(string(peptide), PeptideMaterial), nil
}

// CodingSequence extracts the first open reading frame from an RNA strand:
// the sequence from the first AUG, read in codon steps from the strand's
// start, through the first in-frame stop codon inclusive.
func CodingSequence(rna Strand) (Strand, error) {
	if rna.Material() != RNAMaterial {
		return Strand{}, valueErrorf("cannot read codons from %s", rna.Material())
	}
	message := rna.String()

	start := -1
	for i := 0; i+3 <= len(message); i += 3 {
		codon := message[i : i+3]
		if start < 0 {
			if codon == "AUG" {
				start = i
			}
			continue
		}
		if codonTable[codon] == '*' {
			return rna.Slice(start, i+3), nil
		}
	}
	if start < 0 {
		return Strand{}, ValueError("sequence has no start codon")
	}
	return Strand{}, ValueError("sequence has no stop codon in frame with its start codon")
}
