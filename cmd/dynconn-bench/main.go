// Command dynconn-bench drives the dynamic connectivity façade through
// large randomized mixed-operation workloads, cross-validating every
// connectivity answer against the brute-force oracle and printing a deterministic
// summary so a regression shows up as a changed hash rather than a
// silent behavioral drift.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logger = logrus.New()

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		logger.WithError(err).Error("dynconn-bench failed")
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbosity string

	cmd := &cobra.Command{
		Use:   "dynconn-bench",
		Short: "Randomized workload runner for the dynamic connectivity façade",

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(*cobra.Command, []string) error {
			lvl, err := logrus.ParseLevel(verbosity)
			if err != nil {
				return err
			}
			logger.SetLevel(lvl)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&verbosity, "verbosity", "info", "log level (trace, debug, info, warn, error)")

	cmd.AddCommand(newRunCommand())
	return cmd
}
