// Package pxgen synthesizes raster images by computing every pixel of a
// fixed-size canvas independently.
//
// # Overview
//
// A pass combines three pieces:
//   - Canvas: a width*height buffer of packed 0xAARRGGBB colors, row-major.
//   - Kernel: a pure function from buffer index to color. The fractal and
//     voronoi sub-packages provide the escape-time and nearest-site kernels.
//   - Dispatcher: partitions [0, width*height) across goroutines and returns
//     when every index has been computed.
//
// No two goroutines ever write the same slot, so the buffer needs no locks.
//
// # Quick Start
//
//	c, err := pxgen.NewCanvas(1024, 1024)
//	if err != nil {
//	    return err
//	}
//	k, err := fractal.New(c.Width(), c.Height(), fractal.DefaultParams())
//	if err != nil {
//	    return err
//	}
//	if err := pxgen.Render(c, k, pxgen.DefaultDispatcher()); err != nil {
//	    return err
//	}
//	img := c.ToImage()
//
// # Dispatchers
//
//   - SerialDispatcher: plain loop, the reference for determinism checks.
//   - StaticDispatcher: one contiguous chunk per worker.
//   - DynamicDispatcher: workers claim batches from an atomic cursor.
//   - PoolDispatcher: a work-stealing pool, created and closed per pass.
//
// RenderContext adds cooperative cancellation between batches.
//
// # Coordinate System
//
// Index i corresponds to column i % width and row i / width. Origin (0,0)
// is the top-left pixel.
package pxgen

// Version is the current version of the library.
const Version = "0.1.0"
