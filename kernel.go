package pxgen

// Kernel computes the color of one pixel from its buffer index.
//
// Pixel must be pure: its result depends only on index and on parameters
// fixed at construction, and it must not mutate state shared with other
// calls. Render relies on this to call Pixel from many goroutines at once.
type Kernel interface {
	// Size returns the canvas dimensions the kernel was built for.
	Size() (width, height int)

	// Pixel returns the color for index in [0, width*height).
	Pixel(index int) Color
}

// KernelFunc adapts a plain function to the Kernel interface.
type KernelFunc struct {
	Width, Height int
	Fn            func(index int) Color
}

// Size implements Kernel.
func (k KernelFunc) Size() (width, height int) { return k.Width, k.Height }

// Pixel implements Kernel.
func (k KernelFunc) Pixel(index int) Color { return k.Fn(index) }
