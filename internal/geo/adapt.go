package geo

import "github.com/geoset/centroid/internal/sources"

// The producer layouts in internal/sources are fixed contracts, so each one
// gets an explicit conversion here instead of methods on the source types.
// Conversions are total: any well-formed source value yields a Position.

// FromTrack converts an altitude-bearing track point. Altitude is dropped.
func FromTrack(p sources.TrackPoint) Position {
	return Position{Lat: p.Lat, Lon: p.Lon}
}

// FromPlain converts a bare coordinate pair.
func FromPlain(p sources.PlainPoint) Position {
	return Position{Lat: p.Lat, Lon: p.Lon}
}

// FromTagged converts an annotated point. The pair is positional: element 0
// is latitude, element 1 longitude (producer convention, not GeoJSON order).
// Tags are dropped; a nil tag map is fine.
func FromTagged(p sources.TaggedPoint) Position {
	return Position{Lat: p.LatLon[0], Lon: p.LatLon[1]}
}
