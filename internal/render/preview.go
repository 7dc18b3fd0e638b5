// Package render draws WebP previews of a point cloud and its centroid.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/geoset/centroid/internal/geo"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

// Rendering happens at 2x and is downscaled for cheap anti-aliasing.
const supersample = 2

var (
	background = color.RGBA{R: 24, G: 26, B: 31, A: 255}
	pointColor = color.RGBA{R: 96, G: 165, B: 250, A: 255}
	meanColor  = color.RGBA{R: 248, G: 113, B: 113, A: 255}
)

// Render plots the points and their centroid on a square canvas.
// Longitude maps to X directly, latitude through the Mercator projection so
// the preview lines up with slippy-map placement of the same points.
func Render(points []geo.LatLon, centroid geo.Position, size int) *image.RGBA {
	if size <= 0 {
		size = 512
	}

	big := size * supersample
	canvas := image.NewRGBA(image.Rect(0, 0, big, big))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	minX, maxX, minY, maxY := viewport(points, centroid)
	scaleX := float64(big-1) / (maxX - minX)
	scaleY := float64(big-1) / (maxY - minY)

	fill := func(x, y float64, c color.Color, r int) {
		px := int(math.Round((x - minX) * scaleX))
		// image Y grows downwards
		py := big - 1 - int(math.Round((y-minY)*scaleY))
		rect := image.Rect(px-r, py-r, px+r+1, py+r+1).Intersect(canvas.Bounds())
		draw.Draw(canvas, rect, &image.Uniform{C: c}, image.Point{}, draw.Src)
	}

	for _, p := range points {
		fill(p.Longitude(), geo.MercatorY(p.Latitude()), pointColor, 2*supersample)
	}

	// centroid cross on top of the cloud
	cx, cy := centroid.Lon, geo.MercatorY(centroid.Lat)
	arm := 5 * supersample
	px := int(math.Round((cx - minX) * scaleX))
	py := big - 1 - int(math.Round((cy-minY)*scaleY))
	hbar := image.Rect(px-arm, py-supersample, px+arm+1, py+supersample+1).Intersect(canvas.Bounds())
	vbar := image.Rect(px-supersample, py-arm, px+supersample+1, py+arm+1).Intersect(canvas.Bounds())
	draw.Draw(canvas, hbar, &image.Uniform{C: meanColor}, image.Point{}, draw.Src)
	draw.Draw(canvas, vbar, &image.Uniform{C: meanColor}, image.Point{}, draw.Src)

	out := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), draw.Over, nil)

	return out
}

// viewport computes the plot bounds with padding around the data extent.
// Degenerate extents (single point, identical points) get a fixed margin so
// the scale factors stay finite.
func viewport(points []geo.LatLon, centroid geo.Position) (minX, maxX, minY, maxY float64) {
	minX, maxX = centroid.Lon, centroid.Lon
	cy := geo.MercatorY(centroid.Lat)
	minY, maxY = cy, cy

	for _, p := range points {
		x, y := p.Longitude(), geo.MercatorY(p.Latitude())
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	padX := (maxX - minX) * 0.1
	padY := (maxY - minY) * 0.1
	if padX < 1e-6 {
		padX = 1.0
	}
	if padY < 1e-6 {
		padY = 1.0
	}

	return minX - padX, maxX + padX, minY - padY, maxY + padY
}

// Encode writes the image as lossy WebP.
func Encode(w io.Writer, img image.Image) error {
	return webp.Encode(w, img, &webp.Options{Lossless: false, Quality: 85})
}

// Save renders nothing itself; it writes an already rendered image to disk.
func Save(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return Encode(f, img)
}
