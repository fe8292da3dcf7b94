package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/pxgen"
	"github.com/gogpu/pxgen/fractal"
	"github.com/gogpu/pxgen/voronoi"
)

func writeScene(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	return path
}

func TestLoadScene_Fractal(t *testing.T) {
	path := writeScene(t, `{
		"kind": "mandel",
		"width": 80,
		"height": 40,
		"iters": 64,
		"center": [0.75, 0.1],
		"range": [-1.5, 1.5],
		"overflow": "wrap"
	}`)

	s, err := loadScene(path)
	if err != nil {
		t.Fatalf("loadScene error: %v", err)
	}
	k, err := s.Kernel()
	if err != nil {
		t.Fatalf("Kernel error: %v", err)
	}
	fk, ok := k.(*fractal.Kernel)
	if !ok {
		t.Fatalf("Kernel() = %T, want *fractal.Kernel", k)
	}
	p := fk.Params()
	if p.Iters != 64 || p.Center != complex(0.75, 0.1) || p.Range != (fractal.Range{Min: -1.5, Max: 1.5}) || p.Overflow != fractal.Wrap {
		t.Errorf("params = %+v", p)
	}
	if w, h := fk.Size(); w != 80 || h != 40 {
		t.Errorf("Size() = %dx%d, want 80x40", w, h)
	}
}

func TestLoadScene_VoronoiSites(t *testing.T) {
	path := writeScene(t, `{
		"kind": "voronoi",
		"width": 20,
		"height": 10,
		"sites": [{"x": 1, "y": 2, "color": "#ff0000"}, {"x": 15, "y": 5, "color": "00f"}],
		"random_sites": 3,
		"seed": 9
	}`)

	s, err := loadScene(path)
	if err != nil {
		t.Fatalf("loadScene error: %v", err)
	}
	k, err := s.Kernel()
	if err != nil {
		t.Fatalf("Kernel error: %v", err)
	}
	vk, ok := k.(*voronoi.Kernel)
	if !ok {
		t.Fatalf("Kernel() = %T, want *voronoi.Kernel", k)
	}
	// The explicit site at (1, 2) is always a boundary pixel.
	if got := vk.Pixel(2*20 + 1); got != pxgen.Black {
		t.Errorf("pixel at explicit site = %#08x, want black", uint32(got))
	}
}

func TestLoadScene_DefaultsKept(t *testing.T) {
	s, err := loadScene(writeScene(t, `{"iters": 10}`))
	if err != nil {
		t.Fatalf("loadScene error: %v", err)
	}
	if s.Kind != kindMandel || s.Width != 1024 || s.Height != 1024 || s.Iters != 10 {
		t.Errorf("scene = %+v", s)
	}
}

func TestLoadScene_Errors(t *testing.T) {
	if _, err := loadScene(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
	if _, err := loadScene(writeScene(t, `{"kind": `)); err == nil {
		t.Error("truncated JSON should fail to decode")
	}
}

func TestScene_KernelErrors(t *testing.T) {
	tests := []struct {
		name string
		s    Scene
		want error
	}{
		{"unknown kind", Scene{Kind: "julia", Width: 4, Height: 4}, errUnknownKind},
		{"bad size", Scene{Kind: kindMandel, Width: 0, Height: 4}, pxgen.ErrInvalidSize},
		{"bad iters", Scene{Kind: kindMandel, Width: 4, Height: 4, Iters: -1}, fractal.ErrInvalidIterations},
		{"bad range", Scene{Kind: kindMandel, Width: 4, Height: 4, Range: &[2]float64{1, 0}}, fractal.ErrInvalidRange},
		{"no sites", Scene{Kind: kindVoronoi, Width: 4, Height: 4}, voronoi.ErrEmptyPointSet},
		{"site outside", Scene{Kind: kindVoronoi, Width: 4, Height: 4, Sites: []SiteSpec{{X: 9, Y: 0, Color: "fff"}}}, voronoi.ErrSiteOutOfBounds},
		{"bad color", Scene{Kind: kindVoronoi, Width: 4, Height: 4, Sites: []SiteSpec{{X: 1, Y: 1, Color: "nope"}}}, pxgen.ErrInvalidHex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.s.Kernel(); !errors.Is(err, tt.want) {
				t.Errorf("Kernel() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := (Scene{Kind: kindMandel, Width: 4, Height: 4, Overflow: "mirror"}).Kernel(); err == nil {
		t.Error("unknown overflow policy should fail")
	}
}
