package cmd

import (
	"github.com/klavinslab/coral-sub000/config"
	"github.com/klavinslab/coral-sub000/internal/seq"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	pcrTemplateArg string
	pcrCircular    bool
	fwdArg         string
	revArg         string
	fwdOverhangArg string
	revOverhangArg string
)

// pcrCmd simulates a PCR of two primers against a template.
var pcrCmd = &cobra.Command{
	Use:   "pcr",
	Short: "Simulate a PCR against a template sequence",
	Long: `Simulate a polymerase chain reaction of two primers against a template.

Each primer must bind the template exactly once; ambiguous, absent, or
misoriented binding sites fail the reaction the way they would on the bench.
Sequence arguments are raw sequences or paths to plain-text sequence files.`,
	Run: runPCR,
}

func init() {
	RootCmd.AddCommand(pcrCmd)

	pcrCmd.Flags().StringVarP(&pcrTemplateArg, "template", "t", "", "template sequence or sequence file")
	pcrCmd.Flags().BoolVarP(&pcrCircular, "circular", "c", false, "treat the template as a circular plasmid")
	pcrCmd.Flags().StringVarP(&fwdArg, "fwd", "f", "", "forward primer sequence")
	pcrCmd.Flags().StringVarP(&revArg, "rev", "r", "", "reverse primer sequence")
	pcrCmd.Flags().StringVar(&fwdOverhangArg, "fwd-overhang", "", "5' addition to the forward primer")
	pcrCmd.Flags().StringVar(&revOverhangArg, "rev-overhang", "", "5' addition to the reverse primer")
	pcrCmd.Flags().Int("min-length", 14, "minimum primer binding length")

	pcrCmd.MarkFlagRequired("template")
	pcrCmd.MarkFlagRequired("fwd")
	pcrCmd.MarkFlagRequired("rev")

	viper.BindPFlag("pcr.min-primer-length", pcrCmd.Flags().Lookup("min-length"))
}

func runPCR(cmd *cobra.Command, args []string) {
	conf := config.NewConfig()

	template, err := readDNA(pcrTemplateArg, pcrCircular)
	if err != nil {
		logrus.WithError(err).Fatal("failed to read the template")
	}
	fwd, err := readPrimer(fwdArg, fwdOverhangArg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to read the forward primer")
	}
	rev, err := readPrimer(revArg, revOverhangArg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to read the reverse primer")
	}

	logrus.WithFields(logrus.Fields{
		"template": template.Len(),
		"fwd":      fwd.Len(),
		"rev":      rev.Len(),
	}).Debug("binding primers")

	amplicon, err := seq.PCR(template, fwd, rev, conf.PCR.MinPrimerLength)
	if err != nil {
		logrus.WithError(err).Fatal("PCR failed")
	}
	writeDNA("amplicon", amplicon)
}

// readPrimer builds a primer, predicting its Tm from its anneal sequence.
func readPrimer(anneal, overhang string) (*seq.Primer, error) {
	dna, err := readDNA(anneal, false)
	if err != nil {
		return nil, err
	}
	primer, err := seq.NewPrimer(dna, seq.MeltingTemp(dna.Top().String()))
	if err != nil {
		return nil, err
	}
	if overhang == "" {
		return primer, nil
	}
	tail, err := readDNA(overhang, false)
	if err != nil {
		return nil, err
	}
	return primer.WithOverhang(tail)
}
