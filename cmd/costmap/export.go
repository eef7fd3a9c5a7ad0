package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"costmap/server/config"
	"costmap/server/internal/compare"
	"costmap/server/internal/geometry"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the city dataset to a JSON file or shapefile",
	Long: "Writes the active city table as JSON, or as a point shapefile when the file ends in .shp. " +
		"A JSON export can be edited and loaded back through CITY_DATASET_PATH.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if strings.EqualFold(filepath.Ext(args[0]), ".shp") {
			err = geometry.WriteShapefile(args[0], store.Cities(), compare.ColorForIndex)
		} else {
			err = config.SaveDataset(args[0], store.Cities())
		}
		if err != nil {
			return fmt.Errorf("export dataset: %w", err)
		}
		logger.WithField("cities", store.Len()).Infof("Exported dataset to %s", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
