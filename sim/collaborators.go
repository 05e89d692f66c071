package sim

import "image/color"

// Display reports the current drawable size in world units. It is queried
// every frame, so the surface may be resized while running.
type Display interface {
	Size() (width, height float32)
}

// PointerState is the pointer position and primary button for one frame.
type PointerState struct {
	X, Y float32
	Down bool
}

// PointerSource is polled once per frame before the simulation step.
type PointerSource interface {
	Pointer() PointerState
}

// Canvas receives the drawing calls for a frame after the solver has run.
type Canvas interface {
	DrawSegment(a, b Vec3, width float32, clr color.Color)
	DrawPoint(p Vec3, radius float32, clr color.Color)
	DrawText(s string, x, y, size float32, clr color.Color)
}

// Presenter ends a frame. It is the only point where a driver yields.
type Presenter interface {
	Present()
}

// FixedDisplay is a Display with a constant size.
type FixedDisplay struct {
	Width, Height float32
}

// Size returns the fixed width and height.
func (d FixedDisplay) Size() (float32, float32) { return d.Width, d.Height }

// NoPointer never presses the button.
type NoPointer struct{}

// Pointer reports an idle pointer at the origin.
func (NoPointer) Pointer() PointerState { return PointerState{} }
