package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/klavinslab/coral-sub000/config"
	"github.com/klavinslab/coral-sub000/internal/seq"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	oligoTargetArg    string
	oligoNumber       int
	oligoStart3       bool
	oligoMinException bool
)

// oligosCmd tiles a target into overlapping assembly oligos.
var oligosCmd = &cobra.Command{
	Use:   "oligos",
	Short: "Design overlapping oligos that assemble into a target sequence",
	Long: `Tile a target sequence into overlapping single-stranded oligos for an
assembly reaction. Overlaps are grown until each one melts at or above the
target temperature and meets the minimum overlap length.`,
	Run: runOligos,
}

func init() {
	RootCmd.AddCommand(oligosCmd)

	oligosCmd.Flags().StringVarP(&oligoTargetArg, "sequence", "s", "", "target sequence or sequence file")
	oligosCmd.Flags().IntVarP(&oligoNumber, "number", "n", 0, "design exactly this many oligos")
	oligosCmd.Flags().BoolVar(&oligoStart3, "start-3", false, "leave the first oligo's free end on its 3' side")
	oligosCmd.Flags().BoolVar(&oligoMinException, "min-exception", false,
		"let short overlaps keep growing past the Tm setpoint to reach the minimum length")
	oligosCmd.Flags().Float64("tm", 72.0, "target overlap melting temperature")
	oligosCmd.Flags().Int("min-length", 80, "minimum oligo length, used with --number")
	oligosCmd.Flags().Int("max-length", 200, "maximum oligo length")
	oligosCmd.Flags().Int("overlap-min", 20, "minimum overlap length")
	oligosCmd.Flags().Bool("require-even", true, "require an even oligo count")

	oligosCmd.MarkFlagRequired("sequence")

	viper.BindPFlag("oligos.tm", oligosCmd.Flags().Lookup("tm"))
	viper.BindPFlag("oligos.min-length", oligosCmd.Flags().Lookup("min-length"))
	viper.BindPFlag("oligos.max-length", oligosCmd.Flags().Lookup("max-length"))
	viper.BindPFlag("oligos.overlap-min", oligosCmd.Flags().Lookup("overlap-min"))
	viper.BindPFlag("oligos.require-even", oligosCmd.Flags().Lookup("require-even"))
}

func runOligos(cmd *cobra.Command, args []string) {
	conf := config.NewConfig()

	target, err := readDNA(oligoTargetArg, false)
	if err != nil {
		logrus.WithError(err).Fatal("failed to read the target")
	}

	assembly, err := seq.DesignOligos(target, seq.OligoParams{
		Tm:           conf.Oligos.Tm,
		LengthRange:  [2]int{conf.Oligos.MinLength, conf.Oligos.MaxLength},
		RequireEven:  conf.Oligos.RequireEven,
		Start5:       !oligoStart3,
		OligoNumber:  oligoNumber,
		OverlapMin:   conf.Oligos.OverlapMin,
		MinException: oligoMinException,
	})
	if err != nil {
		logrus.WithError(err).Fatal("oligo design failed")
	}
	for _, warning := range assembly.Warnings {
		logrus.Warn(warning)
	}

	// from https://golang.org/pkg/text/tabwriter/
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintf(w, "name\tlength\toverlap Tm\tsequence\n")
	for i, oligo := range assembly.Oligos {
		overlapTm := "" // the last oligo has no downstream overlap
		if i < len(assembly.OverlapTms) {
			overlapTm = fmt.Sprintf("%.1f", assembly.OverlapTms[i])
		}
		fmt.Fprintf(w, "oligo %d\t%d\t%s\t%s\n", i+1, oligo.Len(), overlapTm, oligo.Top().String())
	}
	w.Flush()
}
