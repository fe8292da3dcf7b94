// Package voronoi implements the nearest-site region kernel.
//
// Each pixel takes the color of its closest site by squared Euclidean
// distance. Pixels within BoundaryDistSq of any site are drawn black, which
// marks every site with a small dot.
//
// The search is brute force, O(sites) per pixel. A grid or k-d tree would
// be the next step for large site counts.
package voronoi

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/gogpu/pxgen"
)

// Configuration errors.
var (
	// ErrEmptyPointSet is returned when a kernel is built without sites.
	ErrEmptyPointSet = errors.New("voronoi: empty point set")

	// ErrSiteOutOfBounds is returned when a site lies outside the canvas.
	ErrSiteOutOfBounds = errors.New("voronoi: site outside canvas")
)

// BoundaryDistSq is the squared distance below which a pixel is drawn black.
const BoundaryDistSq = 3

// Site is a colored point on the canvas grid.
type Site struct {
	X, Y  int
	Color pxgen.Color
}

// DistSq returns the squared distance from (x, y) to s.
func (s Site) DistSq(x, y int) int {
	dx, dy := x-s.X, y-s.Y
	return dx*dx + dy*dy
}

// PointSet is an immutable collection of sites.
type PointSet struct {
	sites []Site
}

// NewPointSet returns a set holding a copy of sites.
func NewPointSet(sites ...Site) PointSet {
	s := make([]Site, len(sites))
	copy(s, sites)
	return PointSet{sites: s}
}

// Random places n sites uniformly on a width x height grid with random
// opaque colors. The same seed yields the same set.
func Random(width, height, n int, seed uint64) PointSet {
	if width <= 0 || height <= 0 || n <= 0 {
		return PointSet{}
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	sites := make([]Site, n)
	for i := range sites {
		sites[i] = Site{
			X:     r.IntN(width),
			Y:     r.IntN(height),
			Color: pxgen.Color(r.Uint32N(0xFFFFFF)).Opaque(),
		}
	}
	return PointSet{sites: sites}
}

// Len returns the number of sites.
func (ps PointSet) Len() int { return len(ps.sites) }

// Sites returns a copy of the sites.
func (ps PointSet) Sites() []Site {
	s := make([]Site, len(ps.sites))
	copy(s, ps.sites)
	return s
}

// Kernel is an immutable nearest-site kernel for one canvas size.
// It is safe for concurrent use.
type Kernel struct {
	width, height int
	sites         []Site
}

// New validates ps against a width x height canvas and builds a kernel.
func New(width, height int, ps PointSet) (*Kernel, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", pxgen.ErrInvalidSize, width, height)
	}
	if ps.Len() == 0 {
		return nil, ErrEmptyPointSet
	}
	for i, s := range ps.sites {
		if s.X < 0 || s.X >= width || s.Y < 0 || s.Y >= height {
			return nil, fmt.Errorf("%w: site %d at (%d, %d) on %dx%d",
				ErrSiteOutOfBounds, i, s.X, s.Y, width, height)
		}
	}
	return &Kernel{width: width, height: height, sites: ps.Sites()}, nil
}

// Size implements pxgen.Kernel.
func (k *Kernel) Size() (width, height int) { return k.width, k.height }

// Nearest returns the index and squared distance of the site closest to
// (x, y). Ties keep the earlier site. boundary is true when some site lies
// within BoundaryDistSq; the scan stops at that site.
func (k *Kernel) Nearest(x, y int) (site, distSq int, boundary bool) {
	site, distSq = -1, math.MaxInt
	for i, s := range k.sites {
		d := s.DistSq(x, y)
		if d < BoundaryDistSq {
			return i, d, true
		}
		if d < distSq {
			site, distSq = i, d
		}
	}
	return site, distSq, false
}

// Pixel implements pxgen.Kernel.
func (k *Kernel) Pixel(idx int) pxgen.Color {
	site, _, boundary := k.Nearest(idx%k.width, idx/k.width)
	if boundary {
		return pxgen.Black
	}
	return k.sites[site].Color.Opaque()
}
