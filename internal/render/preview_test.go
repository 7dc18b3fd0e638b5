package render

import (
	"bytes"
	"testing"

	"github.com/geoset/centroid/internal/geo"
)

func TestRenderSize(t *testing.T) {
	points := []geo.LatLon{geo.Position{Lat: 1.0, Lon: 2.0}}

	img := Render(points, geo.Position{Lat: 1.0, Lon: 2.0}, 256)
	if img.Bounds().Dx() != 256 || img.Bounds().Dy() != 256 {
		t.Fatalf("bounds = %v, want 256x256", img.Bounds())
	}

	img = Render(points, geo.Position{Lat: 1.0, Lon: 2.0}, 0)
	if img.Bounds().Dx() != 512 {
		t.Fatalf("default size = %d, want 512", img.Bounds().Dx())
	}
}

func TestRenderMarksCentroid(t *testing.T) {
	// a single point at the origin puts the centroid cross at the center
	points := []geo.LatLon{geo.Position{}}

	img := Render(points, geo.Position{}, 128)

	r0, g0, b0, _ := background.RGBA()
	r, g, b, _ := img.At(64, 64).RGBA()
	if r == r0 && g == g0 && b == b0 {
		t.Fatal("center pixel still background, centroid cross not drawn")
	}
}

func TestRenderDegenerateExtent(t *testing.T) {
	// identical points must not produce NaN pixel positions
	points := []geo.LatLon{
		geo.Position{Lat: 10.0, Lon: 10.0},
		geo.Position{Lat: 10.0, Lon: 10.0},
	}

	img := Render(points, geo.Position{Lat: 10.0, Lon: 10.0}, 64)

	var painted bool
	for y := 0; y < 64 && !painted; y++ {
		for x := 0; x < 64; x++ {
			if img.RGBAAt(x, y) != background {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Fatal("nothing drawn for degenerate extent")
	}
}

func TestEncodeWebP(t *testing.T) {
	img := Render([]geo.LatLon{geo.Position{}}, geo.Position{}, 64)

	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := buf.Bytes()
	if len(data) < 12 || string(data[:4]) != "RIFF" || string(data[8:12]) != "WEBP" {
		t.Fatalf("output is not a WebP container (%d bytes)", len(data))
	}
}
