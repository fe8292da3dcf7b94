package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"github.com/gogpu/pxgen"
	"github.com/gogpu/pxgen/fractal"
	"github.com/gogpu/pxgen/voronoi"
)

// Kinds of scene.
const (
	kindMandel  = "mandel"
	kindVoronoi = "voronoi"
)

var errUnknownKind = errors.New("unknown scene kind")

// Scene describes one image to render. It is read from a JSON file and may
// be overridden by command-line flags.
type Scene struct {
	Kind   string `json:"kind"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	// Fractal parameters. Nil pointers keep the defaults.
	Iters    int         `json:"iters,omitempty"`
	Center   *[2]float64 `json:"center,omitempty"`
	Range    *[2]float64 `json:"range,omitempty"`
	Overflow string      `json:"overflow,omitempty"`

	// Voronoi parameters. Explicit sites come first, followed by
	// RandomSites generated sites.
	Sites       []SiteSpec `json:"sites,omitempty"`
	RandomSites int        `json:"random_sites,omitempty"`
	Seed        uint64     `json:"seed,omitempty"`
}

// SiteSpec is a Voronoi site with a hex color such as "#ff8800".
type SiteSpec struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color string `json:"color"`
}

// defaultScene matches the classic benchmark: a 1024x1024 Mandelbrot.
func defaultScene() Scene {
	return Scene{Kind: kindMandel, Width: 1024, Height: 1024}
}

// loadScene reads a JSON scene file over the defaults.
func loadScene(path string) (Scene, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Scene{}, fmt.Errorf("read scene: %w", err)
	}
	s := defaultScene()
	if err := sonic.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("decode scene %s: %w", path, err)
	}
	return s, nil
}

// Kernel builds the kernel described by s.
func (s Scene) Kernel() (pxgen.Kernel, error) {
	switch s.Kind {
	case kindMandel:
		return s.fractalKernel()
	case kindVoronoi:
		return s.voronoiKernel()
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownKind, s.Kind)
	}
}

func (s Scene) fractalKernel() (*fractal.Kernel, error) {
	p := fractal.DefaultParams()
	if s.Iters != 0 {
		p.Iters = s.Iters
	}
	if s.Center != nil {
		p.Center = complex(s.Center[0], s.Center[1])
	}
	if s.Range != nil {
		p.Range = fractal.Range{Min: s.Range[0], Max: s.Range[1]}
	}
	switch s.Overflow {
	case "", "clamp":
		p.Overflow = fractal.Clamp
	case "wrap":
		p.Overflow = fractal.Wrap
	default:
		return nil, fmt.Errorf("unknown overflow policy %q", s.Overflow)
	}
	return fractal.New(s.Width, s.Height, p)
}

func (s Scene) voronoiKernel() (*voronoi.Kernel, error) {
	sites := make([]voronoi.Site, 0, len(s.Sites)+s.RandomSites)
	for i, spec := range s.Sites {
		c, err := pxgen.ParseHex(spec.Color)
		if err != nil {
			return nil, fmt.Errorf("site %d: %w", i, err)
		}
		sites = append(sites, voronoi.Site{X: spec.X, Y: spec.Y, Color: c.Opaque()})
	}
	sites = append(sites, voronoi.Random(s.Width, s.Height, s.RandomSites, s.Seed).Sites()...)
	return voronoi.New(s.Width, s.Height, voronoi.NewPointSet(sites...))
}
