// Package geom provides generic point and rectangle value types for
// working with integer canvas coordinates.
//
// It is patterned after image.Rectangle and image.Point. Rectangles are
// half-open: a Rect contains the points with Min.X <= X < Max.X and
// Min.Y <= Y < Max.Y.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}
