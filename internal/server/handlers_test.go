package server

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/geoset/centroid/internal/config"
	"github.com/geoset/centroid/internal/geo"
)

func newTestCtx(points ...geo.LatLon) *ServerContext {
	return &ServerContext{
		Config: &config.Config{
			Sources: []config.Source{
				{Name: "checkpoints", Format: config.FormatPlain},
			},
		},
		Points:    points,
		IndexHTML: []byte("<html>test</html>"),
	}
}

func TestHandleCentroidGet(t *testing.T) {
	ctx := newTestCtx(
		geo.Position{Lat: 1.0, Lon: 2.0},
		geo.Position{Lat: 3.0, Lon: 4.0},
	)

	rec := httptest.NewRecorder()
	ctx.HandleCentroid(rec, httptest.NewRequest(http.MethodGet, "/api/centroid", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var c geo.Position
	if err := json.NewDecoder(rec.Body).Decode(&c); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if c.Lat != 2.0 || c.Lon != 3.0 {
		t.Fatalf("centroid = %+v, want lat=2 lon=3", c)
	}
}

func TestHandleCentroidGetEmpty(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestCtx().HandleCentroid(rec, httptest.NewRequest(http.MethodGet, "/api/centroid", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "no points supplied") {
		t.Fatalf("body = %q, want explicit no-points error", rec.Body.String())
	}
}

func TestHandleCentroidPostMixed(t *testing.T) {
	body := `{
		"track":  [{"lat":1.0,"lon":2.0,"alt":4.0}],
		"plain":  [{"lat":3.0,"lon":2.0}],
		"tagged": [{"latlon":[2.4,5.0]}]
	}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/centroid", strings.NewReader(body))
	newTestCtx().HandleCentroid(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var c geo.Position
	if err := json.NewDecoder(rec.Body).Decode(&c); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if math.Abs(c.Lat-(1.0+3.0+2.4)/3.0) > 1e-9 {
		t.Fatalf("lat = %v", c.Lat)
	}
	if math.Abs(c.Lon-3.0) > 1e-9 {
		t.Fatalf("lon = %v", c.Lon)
	}
}

func TestHandleCentroidPostEmpty(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/centroid", strings.NewReader(`{}`))
	newTestCtx().HandleCentroid(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "no points supplied") {
		t.Fatalf("body = %q, want explicit no-points error", rec.Body.String())
	}
}

func TestHandleCentroidPostBadJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/centroid", strings.NewReader(`{"plain":`))
	newTestCtx().HandleCentroid(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleCentroidMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestCtx().HandleCentroid(rec, httptest.NewRequest(http.MethodDelete, "/api/centroid", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestHandlePoints(t *testing.T) {
	ctx := newTestCtx(geo.Position{Lat: 2.0, Lon: 30.0})

	rec := httptest.NewRecorder()
	ctx.HandlePoints(rec, httptest.NewRequest(http.MethodGet, "/api/points", nil))

	if ct := rec.Header().Get("Content-Type"); ct != "application/geo+json" {
		t.Fatalf("content type = %q", ct)
	}

	var fc geo.FeatureCollection
	if err := json.NewDecoder(rec.Body).Decode(&fc); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(fc.Features) != 2 {
		t.Fatalf("features = %d, want point + centroid", len(fc.Features))
	}

	coords := fc.Features[0].Geometry.Coordinates
	if coords[0] != 30.0 || coords[1] != 2.0 {
		t.Fatalf("coordinates = %v, want GeoJSON [lon lat] order", coords)
	}
}

func TestHandlePointsEmpty(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestCtx().HandlePoints(rec, httptest.NewRequest(http.MethodGet, "/api/points", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var fc geo.FeatureCollection
	if err := json.NewDecoder(rec.Body).Decode(&fc); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(fc.Features) != 0 {
		t.Fatalf("features = %d, want empty collection", len(fc.Features))
	}
}

func TestHandleSources(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestCtx().HandleSources(rec, httptest.NewRequest(http.MethodGet, "/api/sources", nil))

	var srcs []config.Source
	if err := json.NewDecoder(rec.Body).Decode(&srcs); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(srcs) != 1 || srcs[0].Name != "checkpoints" {
		t.Fatalf("sources = %+v", srcs)
	}
}

func TestHandlePreview(t *testing.T) {
	ctx := newTestCtx(geo.Position{Lat: 1.0, Lon: 1.0})

	rec := httptest.NewRecorder()
	ctx.HandlePreview(rec, httptest.NewRequest(http.MethodGet, "/preview.webp", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/webp" {
		t.Fatalf("content type = %q", ct)
	}

	data := rec.Body.Bytes()
	if len(data) < 12 || string(data[:4]) != "RIFF" {
		t.Fatal("response is not a WebP container")
	}
}

func TestHandleIndexETag(t *testing.T) {
	ctx := newTestCtx()

	rec := httptest.NewRecorder()
	ctx.HandleIndex(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("no ETag header set")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	ctx.HandleIndex(rec, req)

	if rec.Code != http.StatusNotModified {
		t.Fatalf("status = %d, want 304", rec.Code)
	}
}
