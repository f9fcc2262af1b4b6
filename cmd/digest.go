package cmd

import (
	"fmt"

	"github.com/klavinslab/coral-sub000/internal/seq"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	digestSequenceArg string
	digestCircular    bool
	digestEnzymeName  string
	digestNotation    string
)

// digestCmd cuts a sequence with a restriction enzyme.
var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Cut a sequence with a restriction enzyme",
	Long: `Cut a sequence at every binding site of a restriction enzyme, printing the
fragments left to right with their single-stranded overhangs.

The enzyme is either a catalog name (see "coral enzymes") or a custom
recognition site in cut notation, e.g. "G^AATT_C".`,
	Run: runDigest,
}

func init() {
	RootCmd.AddCommand(digestCmd)

	digestCmd.Flags().StringVarP(&digestSequenceArg, "sequence", "s", "", "sequence or sequence file to digest")
	digestCmd.Flags().BoolVarP(&digestCircular, "circular", "c", false, "treat the sequence as a circular plasmid")
	digestCmd.Flags().StringVarP(&digestEnzymeName, "enzyme", "e", "", "name of a catalog enzyme")
	digestCmd.Flags().StringVar(&digestNotation, "site", "", `custom recognition site in cut notation, e.g. "G^AATT_C"`)

	digestCmd.MarkFlagRequired("sequence")
}

func runDigest(cmd *cobra.Command, args []string) {
	dna, err := readDNA(digestSequenceArg, digestCircular)
	if err != nil {
		logrus.WithError(err).Fatal("failed to read the sequence")
	}

	site, err := resolveEnzyme()
	if err != nil {
		logrus.WithError(err).Fatal("failed to resolve the enzyme")
	}

	fragments, err := seq.Digest(dna, site)
	if err != nil {
		logrus.WithError(err).Fatal("digest failed")
	}

	logrus.WithFields(logrus.Fields{
		"enzyme":    site.Name(),
		"fragments": len(fragments),
	}).Debug("digested")

	for i, fragment := range fragments {
		writeDNA(fmt.Sprintf("fragment %d", i+1), fragment)
	}
}

// resolveEnzyme picks the catalog enzyme or parses a custom site.
func resolveEnzyme() (seq.RestrictionSite, error) {
	switch {
	case digestEnzymeName != "" && digestNotation != "":
		return seq.RestrictionSite{}, fmt.Errorf("pass either --enzyme or --site, not both")
	case digestEnzymeName != "":
		return seq.Enzyme(digestEnzymeName)
	case digestNotation != "":
		return seq.ParseRestrictionSite("custom", digestNotation)
	}
	return seq.RestrictionSite{}, fmt.Errorf("an --enzyme name or a --site notation is required")
}
