package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"costmap/server/internal/compare"
	"costmap/server/internal/models"

	"github.com/spf13/cobra"
)

var (
	citiesState    []string
	citiesMinIndex float64
	citiesMaxIndex float64
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List cities with their cost of living index",
	RunE: func(cmd *cobra.Command, _ []string) error {
		filter := &models.CityFilter{States: citiesState}
		if cmd.Flags().Changed("min-index") {
			filter.MinIndex = &citiesMinIndex
		}
		if cmd.Flags().Changed("max-index") {
			filter.MaxIndex = &citiesMaxIndex
		}

		printCities(cmd.OutOrStdout(), filter.Apply(store.Cities()))
		return nil
	},
}

func init() {
	citiesCmd.Flags().StringSliceVar(&citiesState, "state", nil, "only list cities of these states")
	citiesCmd.Flags().Float64Var(&citiesMinIndex, "min-index", 0, "minimum cost of living index")
	citiesCmd.Flags().Float64Var(&citiesMaxIndex, "max-index", 0, "maximum cost of living index")
	rootCmd.AddCommand(citiesCmd)
}

func printCities(out io.Writer, cities []models.CityRecord) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tSTATE\tINDEX\tAVG SALARY\tBAND")
	_, _ = fmt.Fprintln(w, "--\t----\t-----\t-----\t----------\t----")
	for _, city := range cities {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%.0f\t%s\t%s\n",
			city.ID,
			city.Name,
			city.State,
			city.ColIndex,
			compare.FormatCurrency(city.AverageSalary),
			compare.ClassifyIndex(city.ColIndex).Description(),
		)
	}
	_ = w.Flush()
}
