package geo

import (
	"math"
	"testing"
)

func TestMercatorY(t *testing.T) {
	if y := MercatorY(0); math.Abs(y) > 1e-12 {
		t.Fatalf("MercatorY(0) = %v, want 0", y)
	}

	if y := MercatorY(MaxLat); math.Abs(y-math.Pi) > 1e-6 {
		t.Fatalf("MercatorY(MaxLat) = %v, want ~Pi", y)
	}

	// latitudes past the cutoff clamp instead of diverging
	if MercatorY(89.9) != MercatorY(MaxLat) {
		t.Fatal("latitude beyond cutoff not clamped")
	}
	if MercatorY(-89.9) != MercatorY(-MaxLat) {
		t.Fatal("negative latitude beyond cutoff not clamped")
	}
}
