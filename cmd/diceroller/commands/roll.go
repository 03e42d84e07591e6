package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"diceroller/internal/dice"
)

func rollCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "roll <NdF[+/-M]>...",
		Short:   "Roll dice once and print each result",
		Example: "  diceroller roll 2d6+3 d20 4d8-1",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns := make([]dice.Notation, 0, len(args))
			for _, a := range args {
				n, err := dice.ParseNotation(a)
				if err != nil {
					return err
				}
				ns = append(ns, n)
			}
			src := dice.RandomSource()
			for _, n := range ns {
				fmt.Fprintln(cmd.OutOrStdout(), dice.RollNotation(src, n))
			}
			return nil
		},
	}
	return cmd
}
