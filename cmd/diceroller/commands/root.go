package commands

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	logMode    string
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "diceroller",
		Short:         "Roll polyhedral dice in the browser or the terminal",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().StringVar(&logMode, "log", "", "log mode: dev, prod or silence (overrides config)")

	root.AddCommand(serveCmd(), rollCmd(), simCmd())
	return root
}
