package fractal

import (
	"errors"
	"testing"

	"github.com/gogpu/pxgen"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		mutate func(*Params)
		want   error
	}{
		{"zero width", 0, 10, nil, pxgen.ErrInvalidSize},
		{"negative height", 10, -1, nil, pxgen.ErrInvalidSize},
		{"zero iters", 10, 10, func(p *Params) { p.Iters = 0 }, ErrInvalidIterations},
		{"negative iters", 10, 10, func(p *Params) { p.Iters = -4 }, ErrInvalidIterations},
		{"empty range", 10, 10, func(p *Params) { p.Range = Range{Min: 1, Max: 1} }, ErrInvalidRange},
		{"inverted range", 10, 10, func(p *Params) { p.Range = Range{Min: 2, Max: -2} }, ErrInvalidRange},
		{"empty palette", 10, 10, func(p *Params) { p.Palette = pxgen.NewPalette() }, ErrEmptyPalette},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			if tt.mutate != nil {
				tt.mutate(&p)
			}
			k, err := New(tt.w, tt.h, p)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
			if k != nil {
				t.Error("New() returned a kernel together with an error")
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	k, err := New(40, 20, Params{Iters: 10, Range: Range{Min: -1, Max: 1}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if k.Params().Palette != pxgen.FirePalette() {
		t.Error("nil palette should default to the fire palette")
	}
	if k.Params().Overflow != Clamp {
		t.Errorf("Overflow = %v, want clamp", k.Params().Overflow)
	}
	if k.Scale() != 0.8*40.0/20.0 {
		t.Errorf("Scale() = %v, want 1.6", k.Scale())
	}
	if w, h := k.Size(); w != 40 || h != 20 {
		t.Errorf("Size() = %dx%d, want 40x20", w, h)
	}
}

func TestPoint_Mapping(t *testing.T) {
	k, err := New(32, 32, DefaultParams())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	// Top-left pixel sits at scale*(min, min) - center.
	if got, want := k.Point(0, 0), complex(0.8*-2, 0.8*-2)-complex(0.5, 0); got != want {
		t.Errorf("Point(0, 0) = %v, want %v", got, want)
	}

	// (21, 16) maps exactly to the origin: 0.8*(-2 + 4*21/32) - 0.5 == 0.
	if got := k.Point(21, 16); got != 0 {
		t.Errorf("Point(21, 16) = %v, want 0", got)
	}
}

func TestPixel_OriginIsInterior(t *testing.T) {
	p := DefaultParams()
	k, err := New(32, 32, p)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	idx := 16*32 + 21
	if got := k.EscapeAt(idx); got != p.Iters {
		t.Errorf("EscapeAt(%d) = %d, want %d", idx, got, p.Iters)
	}
	if got := k.Pixel(idx); got != pxgen.Black {
		t.Errorf("Pixel(%d) = %#08x, want opaque black", idx, uint32(got))
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		c     complex128
		iters int
		want  int
	}{
		{"origin", 0, 50, 50},
		{"fixed point -1", -1, 50, 50},
		{"far outside", complex(3, 3), 50, 0},
		{"real 1", 1, 50, 1},
		{"real 2", 2, 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.c, tt.iters); got != tt.want {
				t.Errorf("Escape(%v, %d) = %d, want %d", tt.c, tt.iters, got, tt.want)
			}
		})
	}
}

// TestEscape_RadialMonotone probes the positive real axis from far outside
// towards the cusp at 1/4. Escape counts must never decrease moving inward.
func TestEscape_RadialMonotone(t *testing.T) {
	const iters = 200
	prev := -1
	for step := 0; step <= 1000; step++ {
		c := 2.5 - float64(step)*(2.5-0.2501)/1000
		got := Escape(complex(c, 0), iters)
		if got < prev {
			t.Fatalf("Escape(%v) = %d, less than %d further out", c, got, prev)
		}
		prev = got
	}
	if prev != iters {
		t.Logf("innermost probe escaped after %d iterations", prev)
	}
}

func TestColorFor(t *testing.T) {
	p := DefaultParams()
	clamp, _ := New(8, 8, p)
	p.Overflow = Wrap
	wrap, _ := New(8, 8, p)

	tests := []struct {
		name   string
		k      *Kernel
		escape int
		want   pxgen.Color
	}{
		{"interior", clamp, 200, pxgen.Black},
		{"first entry", clamp, 0, pxgen.Black},
		{"mid ramp", clamp, 10, 0xFF0074E4},
		{"clamped overflow", clamp, 60, pxgen.Black},
		{"clamped far overflow", clamp, 199, pxgen.Black},
		{"wrapped overflow", wrap, 60, 0xFF003CD8},
		{"wrap below end", wrap, 10, 0xFF0074E4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.k.ColorFor(tt.escape); got != tt.want {
				t.Errorf("ColorFor(%d) = %#08x, want %#08x", tt.escape, uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestRender_Opaque(t *testing.T) {
	for _, size := range []struct{ w, h int }{{1, 1}, {64, 48}, {17, 31}} {
		c, err := pxgen.NewCanvas(size.w, size.h)
		if err != nil {
			t.Fatalf("NewCanvas error: %v", err)
		}
		k, err := New(size.w, size.h, DefaultParams())
		if err != nil {
			t.Fatalf("New error: %v", err)
		}
		if err := pxgen.Render(c, k, nil); err != nil {
			t.Fatalf("Render error: %v", err)
		}
		for i, px := range c.Pix() {
			if !px.IsOpaque() {
				t.Fatalf("%dx%d: pixel %d = %#08x, not opaque", size.w, size.h, i, uint32(px))
			}
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	const w, h = 96, 64
	k, err := New(w, h, DefaultParams())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	ref, _ := pxgen.NewCanvas(w, h)
	if err := pxgen.Render(ref, k, pxgen.SerialDispatcher()); err != nil {
		t.Fatalf("serial Render error: %v", err)
	}

	dispatchers := []pxgen.Dispatcher{
		pxgen.DefaultDispatcher(),
		pxgen.StaticDispatcher(3),
		pxgen.DynamicDispatcher(5, 7),
		pxgen.PoolDispatcher(4, 100),
	}
	for _, d := range dispatchers {
		t.Run(d.String(), func(t *testing.T) {
			c, _ := pxgen.NewCanvas(w, h)
			if err := pxgen.Render(c, k, d); err != nil {
				t.Fatalf("Render error: %v", err)
			}
			for i := range ref.Pix() {
				if c.Pix()[i] != ref.Pix()[i] {
					t.Fatalf("pixel %d = %#08x, serial %#08x", i, uint32(c.Pix()[i]), uint32(ref.Pix()[i]))
				}
			}
		})
	}
}

func BenchmarkPixel(b *testing.B) {
	k, _ := New(256, 256, DefaultParams())
	n := 256 * 256
	b.ReportAllocs()
	i := 0
	for b.Loop() {
		_ = k.Pixel(i % n)
		i++
	}
}

func BenchmarkRender_512(b *testing.B) {
	c, _ := pxgen.NewCanvas(512, 512)
	k, _ := New(512, 512, DefaultParams())
	d := pxgen.DefaultDispatcher()
	b.ReportAllocs()
	for b.Loop() {
		_ = pxgen.Render(c, k, d)
	}
}
