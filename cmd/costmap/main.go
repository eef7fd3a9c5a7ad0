package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"costmap/server/config"
	"costmap/server/internal/api"
	"costmap/server/internal/citydata"
	"costmap/server/internal/observability"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger *logrus.Logger
	store  *citydata.Store
)

var rootCmd = &cobra.Command{
	Use:   "costmap",
	Short: "Compare cost of living across Indian cities",
	Long:  "Looks up city cost profiles, compares salaries between cities and exports the city dataset.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadEnvFile(); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
		c, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
		logger = observability.NewLogger(cfg)
		logger.SetOutput(cmd.ErrOrStderr())

		records, err := config.ResolveDataset(cfg)
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}
		s, err := citydata.NewStore(records, citydata.WithMissHook(api.NewMissHook(logger, nil)))
		if err != nil {
			return fmt.Errorf("build store: %w", err)
		}
		store = s
		return nil
	},
	SilenceUsage: true,
}

// cityIDs lists the loaded city ids, or the built-in ones before the store
// is built
func cityIDs() []string {
	if store == nil {
		return config.GetCityNames()
	}
	cities := store.Cities()
	ids := make([]string, len(cities))
	for i, city := range cities {
		ids[i] = city.ID
	}
	return ids
}

// completeCityIDs completes up to maxArgs distinct city ids
func completeCityIDs(maxArgs int) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) >= maxArgs {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var ids []string
		for _, id := range cityIDs() {
			if strings.HasPrefix(id, toComplete) && !slices.Contains(args, id) {
				ids = append(ids, id)
			}
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
