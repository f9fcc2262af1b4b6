package cmd

import (
	"github.com/klavinslab/coral-sub000/config"
	"github.com/klavinslab/coral-sub000/internal/seq"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var gibsonLinear bool

// gibsonCmd assembles fragments by their shared terminal homology.
var gibsonCmd = &cobra.Command{
	Use:   "gibson FRAGMENT...",
	Short: "Assemble fragments with a simulated Gibson reaction",
	Long: `Assemble linear fragments by their shared terminal homology, the way a Gibson
(isothermal) reaction would join them.

Fragments fuse only where exactly one pair of ends shares enough homology;
ambiguous or missing junctions fail the assembly. Unless --linear is set,
the result is circularized through the last junction.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runGibson,
}

func init() {
	RootCmd.AddCommand(gibsonCmd)

	gibsonCmd.Flags().BoolVarP(&gibsonLinear, "linear", "l", false, "leave the product linear instead of circularizing it")
	gibsonCmd.Flags().Int("min-homology", 10, "minimum bp of terminal homology between fragments")
	gibsonCmd.Flags().Float64("min-tm", 63.0, "minimum melting temperature of a homology region")

	viper.BindPFlag("gibson.min-homology", gibsonCmd.Flags().Lookup("min-homology"))
	viper.BindPFlag("gibson.min-tm", gibsonCmd.Flags().Lookup("min-tm"))
}

func runGibson(cmd *cobra.Command, args []string) {
	conf := config.NewConfig()

	fragments := make([]*seq.DNA, 0, len(args))
	for _, arg := range args {
		fragment, err := readDNA(arg, false)
		if err != nil {
			logrus.WithError(err).Fatal("failed to read a fragment")
		}
		fragments = append(fragments, fragment)
	}

	logrus.WithField("fragments", len(fragments)).Debug("assembling")

	product, warnings, err := seq.Gibson(fragments, seq.GibsonOptions{
		Linear:      gibsonLinear,
		MinHomology: conf.Gibson.MinHomology,
		MinTm:       conf.Gibson.MinTm,
	})
	if err != nil {
		logrus.WithError(err).Fatal("assembly failed")
	}
	for _, warning := range warnings {
		logrus.Warn(warning)
	}
	writeDNA("product", product)
}
