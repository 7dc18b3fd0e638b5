package geo

// FeatureCollection is the GeoJSON document exported for collected points.
type FeatureCollection struct {
	Type     string    `json:"type" yaml:"type"`
	Features []Feature `json:"features" yaml:"features"`
}

// Feature is a single exported point with its properties.
type Feature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Type       string                 `json:"type" yaml:"type"`
	Geometry   Geometry               `json:"geometry" yaml:"geometry"`
}

// Geometry holds the point geometry.
type Geometry struct {
	Type        string    `json:"type" yaml:"type"`
	Coordinates []float64 `json:"coordinates" yaml:"coordinates"` // [Lon, Lat]
}

// Collection builds a FeatureCollection from the points and their centroid.
// Exported coordinates follow GeoJSON order (longitude first), regardless of
// how the originating source ordered its fields.
func Collection(points []LatLon, centroid Position) FeatureCollection {
	fc := FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]Feature, 0, len(points)+1),
	}

	for _, p := range points {
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: []float64{p.Longitude(), p.Latitude()},
			},
			Properties: map[string]interface{}{},
		})
	}

	fc.Features = append(fc.Features, Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "Point",
			Coordinates: []float64{centroid.Lon, centroid.Lat},
		},
		Properties: map[string]interface{}{
			"centroid": "true",
		},
	})

	return fc
}
