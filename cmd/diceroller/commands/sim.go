package commands

import (
	"io"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"diceroller/internal/dice"
)

func simCmd() *cobra.Command {
	var (
		trials   int
		progress bool
	)
	cmd := &cobra.Command{
		Use:     "sim <NdF[+/-M]>",
		Short:   "Roll a notation many times and print its distribution",
		Example: "  diceroller sim 3d6 --trials 1000000 --progress",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := dice.ParseNotation(args[0])
			if err != nil {
				return err
			}

			bar := pb.StartNew(trials)
			if !progress {
				bar.SetWriter(io.Discard)
			}
			dist, err := dice.Simulate(dice.RandomSource(), n, trials, func() { bar.Increment() })
			used := time.Since(bar.StartTime())
			bar.Finish()
			if err != nil {
				return err
			}

			printDistribution(cmd.OutOrStdout(), dist, used)
			return nil
		},
	}
	cmd.Flags().IntVarP(&trials, "trials", "n", 100000, "number of rolls")
	cmd.Flags().BoolVar(&progress, "progress", false, "show a progress bar")
	return cmd
}

func printDistribution(w io.Writer, d dice.Distribution, used time.Duration) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "notation : %s\n", d.Notation)
	p.Fprintf(w, "trials   : %d\n", d.Trials)
	p.Fprintf(w, "mean     : %.4f (expected %.4f)\n", d.Mean, d.Expected)
	p.Fprintf(w, "std dev  : %.4f\n", d.StdDev)
	p.Fprintf(w, "range    : %d .. %d\n", d.Min, d.Max)
	p.Fprintf(w, "elapsed  : %s\n", used.Round(time.Millisecond))
}
