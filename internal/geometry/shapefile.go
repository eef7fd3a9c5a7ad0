package geometry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"costmap/server/internal/models"

	"github.com/jonas-p/go-shp"
)

var shapefileFields = []shp.Field{
	shp.StringField("ID", 32),
	shp.StringField("NAME", 64),
	shp.StringField("STATE", 64),
	shp.FloatField("COL_INDEX", 8, 1),
	shp.FloatField("AVG_SALARY", 12, 0),
	shp.StringField("COLOR", 8),
}

// WriteShapefile writes one point per city to an ESRI shapefile. path must
// end in .shp; the .shx and .dbf files are written next to it.
func WriteShapefile(path string, cities []models.CityRecord, color ColorFunc) error {
	if !strings.EqualFold(filepath.Ext(path), ".shp") {
		return fmt.Errorf("shapefile path %q must end in .shp", path)
	}

	w, err := shp.Create(path, shp.POINT)
	if err != nil {
		return fmt.Errorf("create shapefile %s: %w", path, err)
	}
	if err := writeCities(w, cities, color); err != nil {
		w.Close()
		return err
	}
	w.Close()

	// go-shp names the attribute table "<base>dbf" without the dot
	base := strings.TrimSuffix(path, filepath.Ext(path))
	if err := os.Rename(base+"dbf", base+".dbf"); err != nil {
		return fmt.Errorf("rename shapefile attribute table: %w", err)
	}
	return nil
}

func writeCities(w *shp.Writer, cities []models.CityRecord, color ColorFunc) error {
	if err := w.SetFields(shapefileFields); err != nil {
		return fmt.Errorf("set shapefile fields: %w", err)
	}

	for _, city := range cities {
		p := CityPoint(city)
		row := int(w.Write(&shp.Point{X: p.Lon(), Y: p.Lat()}))

		colorValue := ""
		if color != nil {
			colorValue = color(city.ColIndex)
		}
		attrs := []interface{}{city.ID, city.Name, city.State, city.ColIndex, city.AverageSalary, colorValue}
		for field, value := range attrs {
			if err := w.WriteAttribute(row, field, value); err != nil {
				return fmt.Errorf("write %s attribute %d: %w", city.ID, field, err)
			}
		}
	}
	return nil
}
