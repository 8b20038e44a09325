package prompt

// rect is a hit target in container cells.
type rect struct {
	x, y int
	w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}
