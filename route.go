package dataprep

import (
	"github.com/tidwall/geojson"
	"github.com/tidwall/geojson/geometry"
)

// routeLineString renders the matched stations, in matrix order, as a
// GeoJSON LineString for plotting the line path.
func routeLineString(locations []StationLocation) geojson.Object {
	points := make([]geometry.Point, 0, len(locations))
	for _, loc := range locations {
		points = append(points, geometry.Point{X: loc.Longitude, Y: loc.Latitude})
	}
	return geojson.NewLineString(geometry.NewLine(points, nil))
}
