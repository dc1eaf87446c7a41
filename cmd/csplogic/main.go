package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gitrdm/csplogic/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "csplogic",
		Short:   "csplogic",
		Long:    `A command-line driver for the csplogic finite-domain constraint solver.`,
		Version: version.String(),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging of each solve's configuration and result")

	rootCmd.AddCommand(newSolveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
