package terminal

// Rect is a rectangular screen area, the unit of drawing and clipping.
// X, Y is the top-left corner in absolute screen coordinates.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rect, negative extents are clamped to zero
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Empty returns true if the rect has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the absolute coordinate lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Row returns the single-row rect at line offset n within r,
// empty if n is out of range
func (r Rect) Row(n int) Rect {
	if n < 0 || n >= r.H {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: r.X, Y: r.Y + n, W: r.W, H: 1}
}

// Sub returns a nested rect with coordinates relative to r, clipped to r
func (r Rect) Sub(x, y, w, h int) Rect {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + x, Y: r.Y + y, W: w, H: h}
}

// SplitRows cuts n rows off the top, returning top and remainder
func (r Rect) SplitRows(n int) (top, rest Rect) {
	if n < 0 {
		n = 0
	}
	if n > r.H {
		n = r.H
	}
	top = Rect{X: r.X, Y: r.Y, W: r.W, H: n}
	rest = Rect{X: r.X, Y: r.Y + n, W: r.W, H: r.H - n}
	return top, rest
}
