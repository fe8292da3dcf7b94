// Package fractal implements the escape-time Mandelbrot kernel.
//
// Pixel (i, j) of a width x height canvas maps to the complex point
//
//	c0 = scale * (complex(min, min) + (max-min) * complex(i/width, j/height)) - center
//
// with scale = 0.8*width/height. The recurrence z = z*z + c0 starts at
// z = c0 and stops at the first iteration where |z|^2 > 4.
package fractal

import (
	"errors"
	"fmt"

	"github.com/gogpu/pxgen"
)

// Configuration errors.
var (
	// ErrInvalidIterations is returned when Params.Iters is not positive.
	ErrInvalidIterations = errors.New("fractal: iterations must be positive")

	// ErrInvalidRange is returned when Range.Max <= Range.Min.
	ErrInvalidRange = errors.New("fractal: range max must exceed min")

	// ErrEmptyPalette is returned when Params.Palette has no entries.
	ErrEmptyPalette = errors.New("fractal: empty palette")
)

// escapeRadiusSq is the squared magnitude past which a point has escaped.
const escapeRadiusSq = 4.0

// Palette index for escape count n is n*paletteStep/paletteSpan.
const (
	paletteStep = 256
	paletteSpan = 50
)

// Overflow selects how palette indices past the last entry are resolved.
type Overflow int

const (
	// Clamp maps every index past the end to the last entry. With the fire
	// palette that is black, so slow-escaping points blend into the set.
	Clamp Overflow = iota

	// Wrap takes the index modulo the palette length, cycling the ramp.
	Wrap
)

// String returns the policy name.
func (o Overflow) String() string {
	switch o {
	case Clamp:
		return "clamp"
	case Wrap:
		return "wrap"
	default:
		return fmt.Sprintf("Overflow(%d)", int(o))
	}
}

// Range is an interval of the real line, reused for both axes of the viewport.
type Range struct {
	Min, Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Params configures the escape-time kernel.
type Params struct {
	// Iters caps the escape loop and is the count reported for interior points.
	Iters int

	// Center is subtracted from the scaled viewport point.
	Center complex128

	// Range is the viewport interval before scaling.
	Range Range

	// Palette maps escape counts to colors. Nil means pxgen.FirePalette().
	Palette *pxgen.Palette

	// Overflow resolves palette indices past the last entry.
	Overflow Overflow
}

// DefaultParams returns the classic full-set view: 200 iterations,
// center (0.5, 0), range [-2, 2], fire palette, clamped indices.
func DefaultParams() Params {
	return Params{
		Iters:   200,
		Center:  complex(0.5, 0),
		Range:   Range{Min: -2, Max: 2},
		Palette: pxgen.FirePalette(),
	}
}

// Kernel is an immutable escape-time kernel for one canvas size.
// It is safe for concurrent use.
type Kernel struct {
	width, height int
	scale         float64
	params        Params
}

// New validates p and builds a kernel for a width x height canvas.
func New(width, height int, p Params) (*Kernel, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", pxgen.ErrInvalidSize, width, height)
	}
	if p.Iters <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, p.Iters)
	}
	if !(p.Range.Max > p.Range.Min) {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, p.Range.Min, p.Range.Max)
	}
	if p.Palette == nil {
		p.Palette = pxgen.FirePalette()
	}
	if p.Palette.Len() == 0 {
		return nil, ErrEmptyPalette
	}
	if p.Overflow != Clamp && p.Overflow != Wrap {
		p.Overflow = Clamp
	}

	return &Kernel{
		width:  width,
		height: height,
		scale:  0.8 * float64(width) / float64(height),
		params: p,
	}, nil
}

// Size implements pxgen.Kernel.
func (k *Kernel) Size() (width, height int) { return k.width, k.height }

// Params returns the validated parameters.
func (k *Kernel) Params() Params { return k.params }

// Scale returns the aspect factor 0.8*width/height.
func (k *Kernel) Scale() float64 { return k.scale }

// Point maps pixel column i and row j to the complex plane.
func (k *Kernel) Point(i, j int) complex128 {
	r := k.params.Range
	span := r.Span()
	re := r.Min + span*(float64(i)/float64(k.width))
	im := r.Min + span*(float64(j)/float64(k.height))
	return complex(k.scale*re, k.scale*im) - k.params.Center
}

// Escape returns the first iteration in [0, iters) at which z = z*z + c0,
// started from z = c0, leaves the radius-2 disk, or iters if it never does.
func Escape(c0 complex128, iters int) int {
	z := c0
	for it := 0; it < iters; it++ {
		z = z*z + c0
		if re, im := real(z), imag(z); re*re+im*im > escapeRadiusSq {
			return it
		}
	}
	return iters
}

// EscapeAt returns the escape count for buffer index idx.
func (k *Kernel) EscapeAt(idx int) int {
	return Escape(k.Point(idx%k.width, idx/k.width), k.params.Iters)
}

// ColorFor maps an escape count to an opaque color. Interior points
// (count == Iters) are black.
func (k *Kernel) ColorFor(escape int) pxgen.Color {
	if escape >= k.params.Iters {
		return pxgen.Black
	}
	i := paletteStep * escape / paletteSpan
	if k.params.Overflow == Wrap {
		return k.params.Palette.Wrap(i).Opaque()
	}
	return k.params.Palette.At(i).Opaque()
}

// Pixel implements pxgen.Kernel.
func (k *Kernel) Pixel(idx int) pxgen.Color {
	return k.ColorFor(k.EscapeAt(idx))
}
