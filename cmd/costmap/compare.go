package main

import (
	"fmt"

	"costmap/server/internal/api"
	"costmap/server/internal/compare"
	"costmap/server/internal/geometry"

	"github.com/spf13/cobra"
)

var (
	compareSalary    string
	compareBreakdown bool
)

var compareCmd = &cobra.Command{
	Use:               "compare <from> <to>",
	Short:             "Compare two cities and translate a salary between them",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeCityIDs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		salary := cfg.Calculator.DefaultSalary
		if compareSalary != "" {
			s, err := api.ParseAmount(compareSalary)
			if err != nil {
				return fmt.Errorf("invalid salary %q: %w", compareSalary, err)
			}
			salary = s
		}

		from, ok := store.GetByID(args[0])
		if !ok {
			return fmt.Errorf("unknown city %q", args[0])
		}
		to, ok := store.GetByID(args[1])
		if !ok {
			return fmt.Errorf("unknown city %q", args[1])
		}

		eq, err := compare.Equivalence(salary, from, to)
		if err != nil {
			return fmt.Errorf("compare %s with %s: %w", from.ID, to.ID, err)
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(out, eq.Summary)
		_, _ = fmt.Fprintf(out, "Difference: %s\n", eq.Percentage)
		_, _ = fmt.Fprintf(out, "Distance: %.0f km\n", geometry.DistanceKm(from, to))

		report := compare.PurchasingPower(eq.EquivalentSalary, to)
		_, _ = fmt.Fprintf(out, "%s: %s.\n", to.Name, report.Summary)

		if compareBreakdown {
			_, _ = fmt.Fprintln(out)
			printBreakdown(out, compare.BreakdownBetween(from, to), from.Name)
		}
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareSalary, "salary", "", "monthly salary in the source city (default from DEFAULT_SALARY)")
	compareCmd.Flags().BoolVar(&compareBreakdown, "breakdown", false, "print the item by item breakdown")
	rootCmd.AddCommand(compareCmd)
}
