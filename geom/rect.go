package geom

import (
	"fmt"
	"image"

	xgeom "deedles.dev/ximage/geom"
)

// A Rect contains the points with Min.X <= X < Max.X, Min.Y <= Y < Max.Y. It
// is well-formed if Min.X <= Max.X and likewise for Y. A rectangle's methods
// always return well-formed outputs for well-formed inputs.
type Rect[T Scalar] struct {
	Min, Max Point[T]
}

// Rt is shorthand for Rect{Pt(x0, y0), Pt(x1, y1)}. The returned
// rectangle has minimum and maximum coordinates swapped if necessary
// so that it is well-formed.
func Rt[T Scalar](x0, y0, x1, y1 T) Rect[T] {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect[T]{Point[T]{x0, y0}, Point[T]{x1, y1}}
}

// XYWH returns the rectangle with its top-left corner at (x, y) and
// the given width and height. Unlike Rt, the result is not
// canonicalized, so a negative size yields a malformed rectangle.
func XYWH[T Scalar](x, y, w, h T) Rect[T] {
	return Rect[T]{Point[T]{x, y}, Point[T]{x + w, y + h}}
}

func FromImageRect(r image.Rectangle) Rect[int] {
	return Rect[int]{
		Min: FromImagePoint(r.Min),
		Max: FromImagePoint(r.Max),
	}
}

// FromXRect converts a rectangle from deedles.dev/ximage/geom.
func FromXRect[T Scalar](r xgeom.Rect[T]) Rect[T] {
	return Rect[T]{
		Min: FromXPoint(r.Min),
		Max: FromXPoint(r.Max),
	}
}

func (r Rect[T]) Dx() T {
	return r.Max.X - r.Min.X
}

func (r Rect[T]) Dy() T {
	return r.Max.Y - r.Min.Y
}

func (r Rect[T]) Size() Point[T] {
	return Point[T]{
		r.Max.X - r.Min.X,
		r.Max.Y - r.Min.Y,
	}
}

// Area returns the area of r, or zero if r is empty.
func (r Rect[T]) Area() T {
	if r.Empty() {
		return 0
	}
	return r.Dx() * r.Dy()
}

func (r Rect[T]) Add(p Point[T]) Rect[T] {
	return Rect[T]{
		Point[T]{r.Min.X + p.X, r.Min.Y + p.Y},
		Point[T]{r.Max.X + p.X, r.Max.Y + p.Y},
	}
}

func (r Rect[T]) Sub(p Point[T]) Rect[T] {
	return Rect[T]{
		Point[T]{r.Min.X - p.X, r.Min.Y - p.Y},
		Point[T]{r.Max.X - p.X, r.Max.Y - p.Y},
	}
}

// Intersect returns the largest rectangle contained by both r and s.
// If the two do not overlap, the zero Rect is returned.
func (r Rect[T]) Intersect(s Rect[T]) Rect[T] {
	if r.Min.X < s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y < s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X > s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y > s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	if r.Empty() {
		return Rect[T]{}
	}
	return r
}

func (r Rect[T]) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

func (r Rect[T]) Overlaps(s Rect[T]) bool {
	return !r.Empty() && !s.Empty() &&
		r.Min.X < s.Max.X && s.Min.X < r.Max.X &&
		r.Min.Y < s.Max.Y && s.Min.Y < r.Max.Y
}

// In reports whether every point in r is in s. An empty r is in every
// rectangle.
func (r Rect[T]) In(s Rect[T]) bool {
	if r.Empty() {
		return true
	}
	return s.Min.X <= r.Min.X && r.Max.X <= s.Max.X &&
		s.Min.Y <= r.Min.Y && r.Max.Y <= s.Max.Y
}

func (r Rect[T]) ImageRect() image.Rectangle {
	return image.Rectangle{
		Min: r.Min.ImagePoint(),
		Max: r.Max.ImagePoint(),
	}
}

// XRect converts r to a deedles.dev/ximage/geom rectangle.
func (r Rect[T]) XRect() xgeom.Rect[T] {
	return xgeom.Rect[T]{
		Min: r.Min.XPoint(),
		Max: r.Max.XPoint(),
	}
}

// String formats r as x,y,w,h, the same form the wrapsplit command
// accepts.
func (r Rect[T]) String() string {
	return fmt.Sprintf("%v,%v,%v,%v", r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}
