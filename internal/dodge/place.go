package dodge

const (
	// Padding keeps an evaded target off the container edges.
	Padding = 20.0
	// InitialOffset is how far right of the container center the target starts.
	InitialOffset = 80.0
	// EdgeMargin keeps the initial placement off the right edge on narrow containers.
	EdgeMargin = 20.0
)

// InitialPosition places the target right of center on the vertical middle.
// Only the horizontal value is clamped, against the right edge.
func InitialPosition(container, target Size) Position {
	x := min(container.Width/2+InitialOffset, container.Width-target.Width-EdgeMargin)
	y := container.Height/2 - target.Height/2
	return Position{X: x, Y: y}
}

// EvadePosition maps two uniform draws in [0, 1) onto the padded area where
// the target stays fully visible.
func EvadePosition(container, target Size, rx, ry float64) Position {
	lo, hi := Bounds(container, target)
	return Position{
		X: spread(rx, lo.X, hi.X),
		Y: spread(ry, lo.Y, hi.Y),
	}
}

// Bounds returns the lowest and highest positions an evade may produce.
func Bounds(container, target Size) (lo, hi Position) {
	lo = Position{X: Padding, Y: Padding}
	hi = Position{
		X: container.Width - target.Width - Padding,
		Y: container.Height - target.Height - Padding,
	}
	return lo, hi
}

func spread(r, lo, hi float64) float64 {
	return clamp(lo+r*(hi-lo), lo, hi)
}

// clamp prefers lo when the span is empty so the target never crosses the
// top-left padding.
func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
