package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "intervals",
		Short: "Evaluate interval algebra expressions",
		Long: `intervals evaluates containment, overlap, intersection and ordering
between intervals over integers. Intervals are given as separate
--min/--max/--policy flags; results are printed in mathematical
bracket notation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newEvalCmd())
	return root
}

// Execute runs the root command and returns a process exit code. A fresh
// command tree is built per call so the binary can be driven repeatedly
// in-process by tests.
func Execute() int {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errPredicateFalse) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return 1
	}
	return 0
}
