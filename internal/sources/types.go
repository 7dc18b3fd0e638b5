// Package sources owns the foreign point record layouts and their parsers.
// The three layouts come from independent producers and are fixed contracts:
// we adapt to them, we never change them.
package sources

import (
	"encoding/json"
	"fmt"
)

// TrackPoint is an altitude-bearing point as emitted by GPS track exports.
type TrackPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
	Alt float64 `json:"alt,omitempty"`
}

// PlainPoint is a bare coordinate pair.
type PlainPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// TaggedPoint is an annotated point: a positional coordinate pair plus
// free-form string tags. The producer defines element 0 as latitude and
// element 1 as longitude. Note this is the reverse of GeoJSON coordinate
// order, so the positional mapping here must never be "fixed" to match it.
type TaggedPoint struct {
	LatLon [2]float64        `json:"latlon"`
	Tags   map[string]string `json:"tags,omitempty"`
}

// ParseTrack decodes a JSON array of track points.
func ParseTrack(data []byte) ([]TrackPoint, error) {
	var pts []TrackPoint
	if err := json.Unmarshal(data, &pts); err != nil {
		return nil, fmt.Errorf("parse track points: %w", err)
	}
	return pts, nil
}

// ParsePlain decodes a JSON array of plain points.
func ParsePlain(data []byte) ([]PlainPoint, error) {
	var pts []PlainPoint
	if err := json.Unmarshal(data, &pts); err != nil {
		return nil, fmt.Errorf("parse plain points: %w", err)
	}
	return pts, nil
}

// ParseTagged decodes a JSON array of tagged points. Absent tags decode to
// a nil map, which is a valid point.
func ParseTagged(data []byte) ([]TaggedPoint, error) {
	var pts []TaggedPoint
	if err := json.Unmarshal(data, &pts); err != nil {
		return nil, fmt.Errorf("parse tagged points: %w", err)
	}
	return pts, nil
}
