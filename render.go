package pxgen

import (
	"context"
	"fmt"
	"time"

	"github.com/gogpu/pxgen/internal/parallel"
)

// Render fills every pixel of c with k.Pixel(index) using d.
// A nil d uses DefaultDispatcher.
//
// Render returns only after the whole buffer is written. Configuration
// problems are reported before any pixel is touched.
func Render(c *Canvas, k Kernel, d Dispatcher) error {
	if err := checkPass(c, k); err != nil {
		return err
	}
	if d == nil {
		d = DefaultDispatcher()
	}

	pix := c.pix
	start := time.Now()
	d.ParallelFor(len(pix), func(i int) {
		pix[i] = k.Pixel(i)
	})

	Logger().Debug("render pass",
		"width", c.width,
		"height", c.height,
		"pixels", len(pix),
		"dispatcher", d.String(),
		"workers", d.Workers(),
		"elapsed", time.Since(start),
	)
	return nil
}

// RenderContext is Render with cooperative cancellation. Workers claim
// batches from a shared cursor and stop claiming once ctx is done.
//
// On cancellation the returned error wraps ctx.Err() and the canvas holds a
// mix of old and new pixels; callers must discard it.
func RenderContext(ctx context.Context, c *Canvas, k Kernel, workers int) error {
	if err := checkPass(c, k); err != nil {
		return err
	}

	pix := c.pix
	start := time.Now()
	err := parallel.ForEachContext(ctx, len(pix), workers, parallel.DefaultBatch, func(i int) {
		pix[i] = k.Pixel(i)
	})
	if err != nil {
		Logger().Warn("render pass canceled",
			"width", c.width,
			"height", c.height,
			"elapsed", time.Since(start),
			"err", err,
		)
		return fmt.Errorf("pxgen: render canceled: %w", err)
	}

	Logger().Debug("render pass",
		"width", c.width,
		"height", c.height,
		"pixels", len(pix),
		"dispatcher", "context",
		"elapsed", time.Since(start),
	)
	return nil
}

// checkPass validates that k can fill c.
func checkPass(c *Canvas, k Kernel) error {
	if k == nil {
		return ErrNilKernel
	}
	if c == nil || c.Released() {
		return ErrReleased
	}
	if w, h := k.Size(); w != c.width || h != c.height {
		Logger().Warn("kernel size mismatch",
			"canvas", fmt.Sprintf("%dx%d", c.width, c.height),
			"kernel", fmt.Sprintf("%dx%d", w, h),
		)
		return fmt.Errorf("%w: kernel %dx%d, canvas %dx%d", ErrSizeMismatch, w, h, c.width, c.height)
	}
	return nil
}
