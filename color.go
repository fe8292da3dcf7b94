package pxgen

import (
	"errors"
	"image/color"
)

// Color is a packed 32-bit color laid out as 0xAARRGGBB.
type Color uint32

// AlphaMask selects the alpha byte of a Color.
const AlphaMask Color = 0xFF000000

// Common colors
const (
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Red         Color = 0xFFFF0000
	Green       Color = 0xFF00FF00
	Blue        Color = 0xFF0000FF
	Transparent Color = 0x00000000
)

// ErrInvalidHex is returned by ParseHex for malformed input.
var ErrInvalidHex = errors.New("pxgen: invalid hex color")

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return AlphaMask | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// ARGB creates a color from 8-bit components.
func ARGB(a, r, g, b uint8) Color {
	return Color(a)<<24 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// A returns the alpha byte.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red byte.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green byte.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue byte.
func (c Color) B() uint8 { return uint8(c) }

// IsOpaque reports whether the alpha byte is 0xFF.
func (c Color) IsOpaque() bool { return c&AlphaMask == AlphaMask }

// Opaque returns c with the alpha byte forced to 0xFF.
func (c Color) Opaque() Color { return c | AlphaMask }

// NRGBA converts c to a non-premultiplied standard library color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// ParseHex parses "RGB", "RRGGBB" or "AARRGGBB" with an optional leading '#'.
// Short and 6-digit forms are returned opaque.
func ParseHex(hex string) (Color, error) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var v uint32
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return 0, ErrInvalidHex
		}
		v = v<<4 | d
	}

	switch len(hex) {
	case 3: // RGB
		r, g, b := (v>>8)&0xF, (v>>4)&0xF, v&0xF
		return RGB(uint8(r*17), uint8(g*17), uint8(b*17)), nil
	case 6: // RRGGBB
		return Color(v).Opaque(), nil
	case 8: // AARRGGBB
		return Color(v), nil
	default:
		return 0, ErrInvalidHex
	}
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	default:
		return 0, false
	}
}
