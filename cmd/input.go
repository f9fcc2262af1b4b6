package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/klavinslab/coral-sub000/internal/seq"
)

// readSequence resolves a sequence argument: a path to a plain-text sequence
// file, or the raw sequence itself. Whitespace is stripped either way.
func readSequence(arg string) (string, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		contents, err := os.ReadFile(arg)
		if err != nil {
			return "", fmt.Errorf("failed to read sequence file %s: %w", arg, err)
		}
		arg = string(contents)
	}
	return strings.Join(strings.Fields(arg), ""), nil
}

// readDNA resolves a sequence argument into a DNA molecule.
func readDNA(arg string, circular bool) (*seq.DNA, error) {
	raw, err := readSequence(arg)
	if err != nil {
		return nil, err
	}
	dna, err := seq.NewDNA(raw)
	if err != nil {
		return nil, err
	}
	if circular {
		return dna.Circularize()
	}
	return dna, nil
}

// writeDNA prints a molecule's strands and shape to stdout.
func writeDNA(label string, d *seq.DNA) {
	shape := "linear"
	if d.IsCircular() {
		shape = "circular"
	}
	strands := "ds"
	if !d.IsDoubleStranded() {
		strands = "ss"
	}
	fmt.Printf("%s (%dbp, %s, %s)\n", label, d.Len(), shape, strands)
	fmt.Printf("  5' %s 3'\n", d.Top().String())
	if d.IsDoubleStranded() {
		fmt.Printf("  3' %s 5'\n", d.Bottom().Reverse().String())
	}
}
