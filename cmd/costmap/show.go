package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"costmap/server/internal/compare"
	"costmap/server/internal/models"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:               "show <city-id>",
	Short:             "Show a city's costs against the national average",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeCityIDs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		city, ok := store.GetByID(args[0])
		if !ok {
			return fmt.Errorf("unknown city %q", args[0])
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "%s, %s\n", city.Name, city.State)
		_, _ = fmt.Fprintf(out, "Cost of living index: %.0f (%s)\n", city.ColIndex, compare.ClassifyIndex(city.ColIndex).Description())
		_, _ = fmt.Fprintf(out, "Average salary: %s\n\n", compare.FormatCurrency(city.AverageSalary))
		printBreakdown(out, compare.BreakdownVsAverage(city, store.NationalAverage()), "NATIONAL AVG")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func printBreakdown(out io.Writer, breakdown []models.CategoryComparison, baseline string) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, category := range breakdown {
		_, _ = fmt.Fprintf(w, "%s\n", category.Title)
		_, _ = fmt.Fprintf(w, "  ITEM\tCOST\t%s\tDIFF\t\n", baseline)
		for _, item := range category.Items {
			_, _ = fmt.Fprintf(w, "  %s\t%s\t%s\t%s %s\t\n",
				item.Label,
				compare.FormatCurrency(item.Value),
				compare.FormatCurrency(item.Baseline),
				item.Result.Glyph,
				item.Result.Percentage,
			)
		}
	}
	_ = w.Flush()
}
