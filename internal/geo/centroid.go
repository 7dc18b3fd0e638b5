package geo

import "errors"

// ErrNoPoints is returned by Centroid for an empty input. Averaging zero
// points would silently produce NaN, so the condition is surfaced instead.
var ErrNoPoints = errors.New("no points supplied")

// Centroid returns the arithmetic mean position of the given points.
// It only reads the two capability accessors, so any mix of adapted source
// shapes can be averaged together. Single pass, no mutation of the input.
// Coordinates are not range-checked; garbage in, garbage out.
func Centroid(points []LatLon) (Position, error) {
	if len(points) == 0 {
		return Position{}, ErrNoPoints
	}

	var sumLat, sumLon float64
	for _, p := range points {
		sumLat += p.Latitude()
		sumLon += p.Longitude()
	}

	n := float64(len(points))
	return Position{Lat: sumLat / n, Lon: sumLon / n}, nil
}
