package htmldom

import "fmt"

// Rect is a rectangle in page coordinates. Width and height may be
// negative, in which case the origin is not the top-left corner.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// R is a shortcut to create a rectangle.
func R(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Top returns the top edge (y for positive height, y + height for negative).
func (r Rect) Top() float64 {
	if r.Height < 0 {
		return r.Y + r.Height
	}
	return r.Y
}

// Right returns the right edge (x + width for positive width, x for negative).
func (r Rect) Right() float64 {
	if r.Width < 0 {
		return r.X
	}
	return r.X + r.Width
}

// Bottom returns the bottom edge (y + height for positive height, y for negative).
func (r Rect) Bottom() float64 {
	if r.Height < 0 {
		return r.Y
	}
	return r.Y + r.Height
}

// Left returns the left edge (x for positive width, x + width for negative).
func (r Rect) Left() float64 {
	if r.Width < 0 {
		return r.X + r.Width
	}
	return r.X
}

// Area returns the (non-negative) area of the rectangle.
func (r Rect) Area() float64 {
	return (r.Right() - r.Left()) * (r.Bottom() - r.Top())
}

// Intersect returns the intersection of two rectangles. If they do not
// overlap, the result has zero area.
func (r Rect) Intersect(other Rect) Rect {
	left, right := max(r.Left(), other.Left()), min(r.Right(), other.Right())
	top, bottom := max(r.Top(), other.Top()), min(r.Bottom(), other.Bottom())
	if right <= left || bottom <= top {
		return Rect{X: left, Y: top}
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Contains checks if other lies within r, edges included.
func (r Rect) Contains(other Rect) bool {
	return r.Left() <= other.Left() && other.Right() <= r.Right() &&
		r.Top() <= other.Top() && other.Bottom() <= r.Bottom()
}

// IntersectionRatio returns the fraction of r's area which is covered by
// other. A rectangle with zero area has a ratio of 1 if it lies within
// other and 0 otherwise, as for IntersectionObserver targets without area.
func (r Rect) IntersectionRatio(other Rect) float64 {
	a := r.Area()
	if a <= 0 {
		if other.Contains(r) {
			return 1
		}
		return 0
	}
	return r.Intersect(other).Area() / a
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %g×%g)", r.X, r.Y, r.Width, r.Height)
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
