// Package image encodes rendered canvases into image files.
//
// Encoders only read a canvas after its pass has returned; they never run
// concurrently with a pass.
package image

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an output file format.
type Format uint8

const (
	// FormatPNG is lossless PNG with an alpha channel.
	FormatPNG Format = iota

	// FormatRaw is width*height little-endian uint32 values in 0xAARRGGBB
	// layout, without a header.
	FormatRaw

	// FormatBMP is an uncompressed Windows bitmap.
	FormatBMP

	// FormatTIFF is a deflate-compressed TIFF.
	FormatTIFF

	// FormatJPEG is baseline JPEG. Alpha is dropped.
	FormatJPEG

	// formatCount is the number of formats (for internal use).
	formatCount
)

var formatNames = [formatCount]string{
	FormatPNG:  "png",
	FormatRaw:  "raw",
	FormatBMP:  "bmp",
	FormatTIFF: "tiff",
	FormatJPEG: "jpeg",
}

// String returns the lower-case format name.
func (f Format) String() string {
	if f >= formatCount {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
	return formatNames[f]
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// FormatFromPath picks a format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".raw", ".bin":
		return FormatRaw, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}
