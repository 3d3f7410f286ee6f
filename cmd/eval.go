package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vipcxj/intervals/interval"
)

// errPredicateFalse signals a false predicate in --quiet mode. It carries
// the nonzero exit code without printing anything.
var errPredicateFalse = errors.New("predicate is false")

func newEvalCmd() *cobra.Command {
	eval := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a single interval operation",
		Long: `Evaluate one interval operation and print the result.

The first interval is described by --min, --max and --policy (or --empty);
binary operations take a second interval via --other-min, --other-max and
--other-policy (or --other-empty). Policies are named open, closed,
open-closed and closed-open. The contains operation tests the point given
by --value.`,
		RunE: runEval,
	}

	fs := eval.Flags()
	fs.String("op", "", "operation: format|contains|overlaps|contains-interval|is-contained-by|intersect|compare")
	fs.Int64("min", 0, "lower bound of the interval")
	fs.Int64("max", 0, "upper bound of the interval")
	fs.String("policy", interval.PolicyClosed.String(), "endpoint policy of the interval")
	fs.Bool("empty", false, "use the empty interval as the first operand")
	fs.Int64("other-min", 0, "lower bound of the second interval")
	fs.Int64("other-max", 0, "upper bound of the second interval")
	fs.String("other-policy", interval.PolicyClosed.String(), "endpoint policy of the second interval")
	fs.Bool("other-empty", false, "use the empty interval as the second operand")
	fs.Int64("value", 0, "point value for the contains operation")
	fs.Bool("quiet", false, "print nothing; report predicate results via the exit code")
	_ = eval.MarkFlagRequired("op")

	return eval
}

func intervalFromFlags(fs *pflag.FlagSet, minFlag, maxFlag, policyFlag, emptyFlag string) (interval.Interval[int64], error) {
	empty, err := fs.GetBool(emptyFlag)
	if err != nil {
		return interval.Interval[int64]{}, err
	}
	if empty {
		return interval.Empty[int64](), nil
	}
	min, err := fs.GetInt64(minFlag)
	if err != nil {
		return interval.Interval[int64]{}, err
	}
	max, err := fs.GetInt64(maxFlag)
	if err != nil {
		return interval.Interval[int64]{}, err
	}
	policyName, err := fs.GetString(policyFlag)
	if err != nil {
		return interval.Interval[int64]{}, err
	}
	policy, err := interval.PolicyString(policyName)
	if err != nil {
		return interval.Interval[int64]{}, err
	}
	return interval.Natural(min, max, policy)
}

func runEval(cmd *cobra.Command, _ []string) error {
	fs := cmd.Flags()
	op, err := fs.GetString("op")
	if err != nil {
		return err
	}
	quiet, err := fs.GetBool("quiet")
	if err != nil {
		return err
	}

	a, err := intervalFromFlags(fs, "min", "max", "policy", "empty")
	if err != nil {
		return err
	}

	switch op {
	case "format":
		fmt.Fprintln(cmd.OutOrStdout(), a)
		return nil

	case "contains":
		v, err := fs.GetInt64("value")
		if err != nil {
			return err
		}
		return printBool(cmd, a.Contains(v), quiet)

	case "overlaps", "contains-interval", "is-contained-by":
		b, err := intervalFromFlags(fs, "other-min", "other-max", "other-policy", "other-empty")
		if err != nil {
			return err
		}
		var res bool
		switch op {
		case "overlaps":
			res, err = a.Overlaps(b)
		case "contains-interval":
			res, err = a.ContainsInterval(b)
		case "is-contained-by":
			res, err = a.IsContainedBy(b)
		}
		if err != nil {
			return err
		}
		return printBool(cmd, res, quiet)

	case "intersect":
		b, err := intervalFromFlags(fs, "other-min", "other-max", "other-policy", "other-empty")
		if err != nil {
			return err
		}
		res, ok, err := a.Intersect(b)
		if err != nil {
			return err
		}
		if !ok {
			if quiet {
				return errPredicateFalse
			}
			fmt.Fprintln(cmd.OutOrStdout(), "none")
			return nil
		}
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), res)
		}
		return nil

	case "compare":
		b, err := intervalFromFlags(fs, "other-min", "other-max", "other-policy", "other-empty")
		if err != nil {
			return err
		}
		c, err := a.Compare(b)
		if err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil

	default:
		return fmt.Errorf("unknown operation %q", op)
	}
}

func printBool(cmd *cobra.Command, v, quiet bool) error {
	if quiet {
		if v {
			return nil
		}
		return errPredicateFalse
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}
