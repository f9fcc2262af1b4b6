package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/klavinslab/coral-sub000/internal/seq"
	"github.com/spf13/cobra"
)

// enzymesCmd is for listing out all the available restriction enzymes.
// Useful for if the user doesn't know which enzymes are available
var enzymesCmd = &cobra.Command{
	Use:   "enzymes",
	Short: "List restriction enzymes usable in a digest",
	Long: `Lists every catalog enzyme by name along with its recognition sequence and
cut offsets.

	<Name>: <Recognition sequence> <top cut, bottom cut>`,
	Run: runEnzymes,
}

func init() {
	RootCmd.AddCommand(enzymesCmd)
}

func runEnzymes(cmd *cobra.Command, args []string) {
	// from https://golang.org/pkg/text/tabwriter/
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)
	for _, name := range seq.EnzymeNames() {
		enzyme, err := seq.Enzyme(name)
		if err != nil {
			continue
		}
		top, bottom := enzyme.CutSite()
		fmt.Fprintf(w, "%s\t%s\t(%d, %d)\n", name, enzyme.Recognition().String(), top, bottom)
	}
	w.Flush()
}
