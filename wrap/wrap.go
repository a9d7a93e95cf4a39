// Package wrap decomposes rectangles on a canvas that repeats
// infinitely in both directions.
//
// A wrap rectangle defines one period of the canvas. A rectangle in
// virtual, unbounded coordinates that does not fit inside of that
// period is split into up to four pieces inside of it, one for each
// quadrant that the rectangle's seams divide it into:
//
//	+------+----+      +----+------+
//	|      |    |      | br | bl   |
//	|  tl  | tr |  =>  +----+------+
//	+------+----+      | tr | tl   |
//	|  bl  | br |      |    |      |
//	+------+----+      +----+------+
//	   virtual          wrap rectangle
package wrap

import (
	"fmt"
	"iter"

	"deedles.dev/tilewrap/geom"
	xgeom "deedles.dev/ximage/geom"
	"golang.org/x/exp/slices"
)

// Quadrant identifies one of the pieces of a split rectangle.
type Quadrant int

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return fmt.Sprintf("Quadrant(%d)", int(q))
	}
}

// Rect is a rectangle in virtual coordinates as represented inside of
// a single period of a wrap rectangle. The zero value is not valid;
// use Split.
type Rect struct {
	pieces [4]geom.Rect[int]
	n      int

	origin geom.Point[int]
	wrap   geom.Rect[int]
}

// Split decomposes src into pieces inside of wrap. If wrap contains
// src, the result holds src unchanged. Otherwise it holds four pieces,
// some of which may be empty.
//
// wrap must have a positive width and height and src must not have a
// negative size. Neither is checked.
func Split(src, wrap geom.Rect[int]) Rect {
	r := Rect{
		origin: src.Min,
		wrap:   wrap,
	}

	if src.In(wrap) {
		r.pieces[TopLeft] = src
		r.n = 1
		return r
	}

	size := wrap.Size()
	local := Local(src.Min, wrap)
	c := geom.XYWH(
		wrap.Min.X+local.X,
		wrap.Min.Y+local.Y,
		min(src.Dx(), size.X),
		min(src.Dy(), size.Y),
	)

	r.pieces[TopLeft] = c.Intersect(wrap)
	r.pieces[TopRight] = c.Sub(geom.Pt(size.X, 0)).Intersect(wrap)
	r.pieces[BottomLeft] = c.Sub(geom.Pt(0, size.Y)).Intersect(wrap)
	r.pieces[BottomRight] = c.Sub(size).Intersect(wrap)
	r.n = 4
	return r
}

// Local returns the wrap-relative position of the virtual point p. The
// result is always in [0, wrap.Dx()) x [0, wrap.Dy()).
func Local(p geom.Point[int], wrap geom.Rect[int]) geom.Point[int] {
	return geom.Mod(p, wrap).Sub(wrap.Min)
}

// IsSplit reports whether the original rectangle had to be broken up
// into quadrants.
func (r Rect) IsSplit() bool {
	switch r.n {
	case 1:
		return false
	case 4:
		return true
	default:
		panic(fmt.Errorf("wrap: invalid piece count %v", r.n))
	}
}

// Piece returns the piece for the given quadrant. If r is not split,
// every quadrant other than TopLeft is empty.
func (r Rect) Piece(q Quadrant) geom.Rect[int] {
	return r.pieces[q]
}

// TopLeft returns the top-left piece. If r is not split, this is the
// whole of the original rectangle.
func (r Rect) TopLeft() geom.Rect[int] { return r.pieces[TopLeft] }

func (r Rect) TopRight() geom.Rect[int] { return r.pieces[TopRight] }

func (r Rect) BottomLeft() geom.Rect[int] { return r.pieces[BottomLeft] }

func (r Rect) BottomRight() geom.Rect[int] { return r.pieces[BottomRight] }

// All yields each stored piece along with its quadrant, empty pieces
// included.
func (r Rect) All() iter.Seq2[Quadrant, geom.Rect[int]] {
	return func(yield func(Quadrant, geom.Rect[int]) bool) {
		for i := range r.n {
			if !yield(Quadrant(i), r.pieces[i]) {
				return
			}
		}
	}
}

// Pieces returns the non-empty pieces of r in quadrant order.
func (r Rect) Pieces() []geom.Rect[int] {
	pieces := slices.Clone(r.pieces[:r.n])
	return slices.DeleteFunc(pieces, geom.Rect[int].Empty)
}

// Seams returns the edges of the top-left piece that the original
// rectangle continues across on the other side of the wrap rectangle.
func (r Rect) Seams() xgeom.Edges {
	if !r.IsSplit() {
		return xgeom.EdgeNone
	}

	var edges xgeom.Edges
	if !r.pieces[TopRight].Empty() {
		edges |= xgeom.EdgeRight
	}
	if !r.pieces[BottomLeft].Empty() {
		edges |= xgeom.EdgeBottom
	}
	return edges
}

// Origin returns the top-left corner of the original rectangle in
// virtual coordinates.
func (r Rect) Origin() geom.Point[int] {
	return r.origin
}

// Wrap returns the wrap rectangle that r was split against.
func (r Rect) Wrap() geom.Rect[int] {
	return r.wrap
}

// UnwrapX maps the X coordinate of a point in one of r's pieces back
// to virtual coordinates.
func (r Rect) UnwrapX(x int) int {
	x -= r.pieces[TopLeft].Min.X
	if x < 0 {
		x += r.wrap.Dx()
	}
	return x + r.origin.X
}

// UnwrapY is the Y counterpart to UnwrapX.
func (r Rect) UnwrapY(y int) int {
	y -= r.pieces[TopLeft].Min.Y
	if y < 0 {
		y += r.wrap.Dy()
	}
	return y + r.origin.Y
}

// Unwrap maps a point in one of r's pieces back to the point in the
// original rectangle that it came from.
func (r Rect) Unwrap(p geom.Point[int]) geom.Point[int] {
	return geom.Pt(r.UnwrapX(p.X), r.UnwrapY(p.Y))
}
