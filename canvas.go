package pxgen

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// MaxPixels bounds the pixel count of a single canvas. It keeps buffer
// allocation failures observable as ErrTooLarge instead of a runtime abort.
const MaxPixels = 1 << 30

// Canvas is a fixed-size buffer of packed colors in row-major order.
//
// The buffer is written by exactly one Render pass at a time. Each index is
// written by exactly one worker, so the buffer itself needs no locking.
type Canvas struct {
	width  int
	height int
	pix    []Color
}

// NewCanvas allocates a canvas with the given dimensions.
// The buffer starts zeroed (fully transparent).
func NewCanvas(width, height int) (*Canvas, error) {
	n, err := pixelCount(width, height)
	if err != nil {
		return nil, err
	}
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]Color, n),
	}, nil
}

// pixelCount validates dimensions and returns width*height.
func pixelCount(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width > math.MaxInt/height || width*height > MaxPixels {
		return 0, fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}
	return width * height, nil
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Len returns the number of pixels, width*height.
func (c *Canvas) Len() int {
	return len(c.pix)
}

// Pix returns the pixel buffer. Row stride is Width.
// Callers must treat it as read-only.
func (c *Canvas) Pix() []Color {
	return c.pix
}

// Index returns the buffer index of pixel (x, y).
func (c *Canvas) Index(x, y int) int {
	return y*c.width + x
}

// Coords returns the column and row of a buffer index.
func (c *Canvas) Coords(index int) (x, y int) {
	return index % c.width, index / c.width
}

// ColorAt returns the packed color at (x, y), or Transparent outside the canvas.
func (c *Canvas) ColorAt(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height || c.pix == nil {
		return Transparent
	}
	return c.pix[y*c.width+x]
}

// Release drops the pixel buffer. The canvas must not be rendered again.
func (c *Canvas) Release() {
	c.pix = nil
}

// Released reports whether Release has been called.
func (c *Canvas) Released() bool {
	return c.pix == nil
}

// ToImage converts the canvas to an image.NRGBA.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	for i, px := range c.pix {
		o := i * 4
		img.Pix[o+0] = px.R()
		img.Pix[o+1] = px.G()
		img.Pix[o+2] = px.B()
		img.Pix[o+3] = px.A()
	}
	return img
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.ColorAt(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}
