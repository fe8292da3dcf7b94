package image

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/pxgen"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the output format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyCanvas is returned when the canvas is nil or released.
	ErrEmptyCanvas = errors.New("image: empty canvas")

	// ErrRawSize is returned when raw data does not match the given size.
	ErrRawSize = errors.New("image: raw data size mismatch")
)

// jpegQuality is the quality used for FormatJPEG.
const jpegQuality = 95

// Encode writes c to w in format f.
func Encode(w io.Writer, f Format, c *pxgen.Canvas) error {
	if c == nil || c.Released() {
		return ErrEmptyCanvas
	}

	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, c.ToImage())
	case FormatRaw:
		err = EncodeRaw(w, c)
	case FormatBMP:
		err = bmp.Encode(w, c.ToImage())
	case FormatTIFF:
		err = tiff.Encode(w, c.ToImage(), &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case FormatJPEG:
		err = jpeg.Encode(w, c.ToImage(), &jpeg.Options{Quality: jpegQuality})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("image: encode %v: %w", f, err)
	}
	return nil
}

// EncodeRaw writes the pixel buffer as little-endian uint32 values.
func EncodeRaw(w io.Writer, c *pxgen.Canvas) error {
	if c == nil || c.Released() {
		return ErrEmptyCanvas
	}
	bw := bufio.NewWriter(w)
	var b [4]byte
	for _, px := range c.Pix() {
		binary.LittleEndian.PutUint32(b[:], uint32(px))
		if _, err := bw.Write(b[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecodeRaw reads a raw buffer written by EncodeRaw into a new canvas.
func DecodeRaw(r io.Reader, width, height int) (*pxgen.Canvas, error) {
	c, err := pxgen.NewCanvas(width, height)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(r)
	vals := make([]pxgen.Color, c.Len())
	var b [4]byte
	for i := range vals {
		if _, err := io.ReadFull(br, b[:]); err != nil {
			return nil, fmt.Errorf("%w: pixel %d: %w", ErrRawSize, i, err)
		}
		vals[i] = pxgen.Color(binary.LittleEndian.Uint32(b[:]))
	}
	if _, err := br.ReadByte(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data", ErrRawSize)
	}

	copyKernel := pxgen.KernelFunc{Width: width, Height: height, Fn: func(i int) pxgen.Color {
		return vals[i]
	}}
	if err := pxgen.Render(c, copyKernel, pxgen.SerialDispatcher()); err != nil {
		return nil, err
	}
	return c, nil
}

// Save writes c to path, choosing the format from the file extension.
func Save(path string, c *pxgen.Canvas) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return SaveAs(path, f, c)
}

// SaveAs writes c to path in format f.
func SaveAs(path string, f Format, c *pxgen.Canvas) error {
	if !f.IsValid() {
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := Encode(file, f, c); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
