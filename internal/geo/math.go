package geo

import "math"

// MaxLat is the Web Mercator latitude cutoff.
const MaxLat = 85.05112878

// MercatorY projects a latitude (degrees) to Web Mercator Y in [-Pi, Pi].
// Latitudes beyond the Mercator cutoff are clamped first, so the projection
// is total over float inputs. Used by the preview renderer to keep plotted
// points visually consistent with slippy-map placement.
func MercatorY(lat float64) float64 {
	if lat > MaxLat {
		lat = MaxLat
	} else if lat < -MaxLat {
		lat = -MaxLat
	}

	latRad := lat * (math.Pi / 180.0)
	return math.Log(math.Tan((math.Pi/4.0)+(latRad/2.0)))
}
