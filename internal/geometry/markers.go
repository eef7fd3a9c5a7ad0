package geometry

import (
	"math"

	"costmap/server/internal/models"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
)

const (
	minZoom = 3
	maxZoom = 12
)

// ColorFunc maps a cost-of-living index to a marker color
type ColorFunc func(index float64) string

// MapView is the initial viewport of the city map
type MapView struct {
	Center    []float64 `json:"center"` // [lat, lng]
	ZoomLevel int       `json:"zoom_level"`
}

// CityPoint returns the city location as an orb point (lon, lat)
func CityPoint(city models.CityRecord) orb.Point {
	return orb.Point{city.Longitude, city.Latitude}
}

// CityFeature builds the GeoJSON marker of one city
func CityFeature(city models.CityRecord, color ColorFunc) *geojson.Feature {
	feature := geojson.NewFeature(CityPoint(city))
	feature.ID = city.ID
	feature.Properties = geojson.Properties{
		"id":             city.ID,
		"name":           city.Name,
		"state":          city.State,
		"col_index":      city.ColIndex,
		"average_salary": city.AverageSalary,
	}
	if color != nil {
		feature.Properties["color"] = color(city.ColIndex)
	}
	return feature
}

// CityMarkers builds a FeatureCollection with one point per city
func CityMarkers(cities []models.CityRecord, color ColorFunc) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, city := range cities {
		fc.Append(CityFeature(city, color))
	}
	return fc
}

// DistanceKm returns the great-circle distance between two cities
func DistanceKm(a, b models.CityRecord) float64 {
	return geo.Distance(CityPoint(a), CityPoint(b)) / 1000
}

// Bound returns the bounding box of all cities
func Bound(cities []models.CityRecord) orb.Bound {
	points := make(orb.MultiPoint, len(cities))
	for i, city := range cities {
		points[i] = CityPoint(city)
	}
	return points.Bound()
}

// ViewFor centers the map on the cities and picks a zoom level that fits
// their extent.
func ViewFor(cities []models.CityRecord) MapView {
	if len(cities) == 0 {
		return MapView{Center: []float64{0, 0}, ZoomLevel: minZoom}
	}

	bound := Bound(cities)
	center := bound.Center()

	span := math.Max(bound.Max.Lon()-bound.Min.Lon(), bound.Max.Lat()-bound.Min.Lat())
	zoom := maxZoom
	if span > 0 {
		zoom = int(math.Floor(math.Log2(360 / span)))
	}
	zoom = max(minZoom, min(maxZoom, zoom))

	return MapView{
		Center:    []float64{center.Lat(), center.Lon()},
		ZoomLevel: zoom,
	}
}
