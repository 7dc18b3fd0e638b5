// Package geo handles geographic point abstraction and aggregation.
package geo

// LatLon is the minimal read-only view of a geographic point. Any producer
// format can participate in aggregation once it is adapted to this interface;
// consumers never learn which concrete layout a value came from.
type LatLon interface {
	Latitude() float64
	Longitude() float64
}

// Position is the canonical LatLon implementation and the result type of
// aggregation. It is an independent value, never aliased to a source record.
type Position struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Latitude returns the latitude in degrees.
func (p Position) Latitude() float64 { return p.Lat }

// Longitude returns the longitude in degrees.
func (p Position) Longitude() float64 { return p.Lon }
