// Package dodge positions a button that runs away from the pointer.
//
// All coordinates are pixels relative to the top-left corner of the
// container that holds the button. The package knows nothing about the
// host UI: hosts feed it measurements and interactions and read back a
// Position.
package dodge

// Size is the measured width and height of a rectangle.
type Size struct {
	Width  float64
	Height float64
}

// Position is the top-left corner of the target inside its container.
type Position struct {
	X float64
	Y float64
}

// Measurer reports the current container and target sizes.
// ok is false while either element is not laid out yet.
type Measurer interface {
	Measure() (container, target Size, ok bool)
}

// MeasureFunc adapts a plain function to Measurer.
type MeasureFunc func() (container, target Size, ok bool)

func (f MeasureFunc) Measure() (Size, Size, bool) { return f() }

// Fixed returns a Measurer that always reports the given sizes.
func Fixed(container, target Size) Measurer {
	return MeasureFunc(func() (Size, Size, bool) {
		return container, target, true
	})
}
