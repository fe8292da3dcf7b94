package pxgen

import (
	"errors"
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color(0)

func TestColor_Channels(t *testing.T) {
	c := ARGB(0x11, 0x22, 0x33, 0x44)
	if c != 0x11223344 {
		t.Fatalf("ARGB = %#08x, want 0x11223344", uint32(c))
	}
	if c.A() != 0x11 || c.R() != 0x22 || c.G() != 0x33 || c.B() != 0x44 {
		t.Errorf("channels = (%#x, %#x, %#x, %#x)", c.A(), c.R(), c.G(), c.B())
	}
	if c.IsOpaque() {
		t.Error("0x11 alpha should not be opaque")
	}
	if !c.Opaque().IsOpaque() {
		t.Error("Opaque() should set alpha to 0xFF")
	}
}

func TestColor_RGBAInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          Color
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque black", Black, 0, 0, 0, 0xFFFF},
		{"opaque white", White, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF},
		{"opaque red", Red, 0xFFFF, 0, 0, 0xFFFF},
		{"transparent", Transparent, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#f00", Red},
		{"00ff00", Green},
		{"#FF0000FF", Blue},
		{"80102030", 0x80102030},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %#08x, want %#08x", tt.in, uint32(got), uint32(tt.want))
			}
		})
	}

	for _, bad := range []string{"", "#12", "zzzzzz", "1234567"} {
		if _, err := ParseHex(bad); !errors.Is(err, ErrInvalidHex) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidHex", bad, err)
		}
	}
}
