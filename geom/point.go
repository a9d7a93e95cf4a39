package geom

import (
	"fmt"
	"image"

	xgeom "deedles.dev/ximage/geom"
	"golang.org/x/exp/constraints"
)

type Point[T Scalar] struct {
	X, Y T
}

func Pt[T Scalar](X, Y T) Point[T] {
	return Point[T]{X, Y}
}

func FromImagePoint(p image.Point) Point[int] {
	return Pt(p.X, p.Y)
}

// FromXPoint converts a point from deedles.dev/ximage/geom.
func FromXPoint[T Scalar](p xgeom.Point[T]) Point[T] {
	return Pt(p.X, p.Y)
}

func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{p.X + q.X, p.Y + q.Y}
}

func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{p.X - q.X, p.Y - q.Y}
}

// In reports whether p is inside of r.
func (p Point[T]) In(r Rect[T]) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// ModN returns v reduced into [0, n). The result is never negative,
// unlike the % operator. n must be positive.
func ModN[T constraints.Integer](v, n T) T {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Mod returns the point in r that p maps to if r were repeated
// infinitely in every direction. r must not be empty.
func Mod[T constraints.Integer](p Point[T], r Rect[T]) Point[T] {
	p = p.Sub(r.Min)
	p.X = ModN(p.X, r.Dx())
	p.Y = ModN(p.Y, r.Dy())
	return p.Add(r.Min)
}

func (p Point[T]) ImagePoint() image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

// XPoint converts p to a deedles.dev/ximage/geom point.
func (p Point[T]) XPoint() xgeom.Point[T] {
	return xgeom.Pt(p.X, p.Y)
}

func (p Point[T]) String() string {
	return fmt.Sprintf("%v,%v", p.X, p.Y)
}
