package util

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"deedles.dev/tilewrap/geom"
)

func Flag[T flag.Value](fset *flag.FlagSet, name string, value T, usage string) T {
	fset.Var(value, name, usage)
	return value
}

// IsSet reports whether the named flag was explicitly provided.
func IsSet(fset *flag.FlagSet, name string) (set bool) {
	fset.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func parseInts(s string, n int) ([]int, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("expected %v comma-separated integers, got %q", n, s)
	}

	v := make([]int, n)
	for i, f := range fields {
		x, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", f, err)
		}
		v[i] = x
	}
	return v, nil
}

// ParseRect parses a rectangle in the form x,y,width,height.
func ParseRect(s string) (geom.Rect[int], error) {
	v, err := parseInts(s, 4)
	if err != nil {
		return geom.Rect[int]{}, err
	}
	if v[2] < 0 || v[3] < 0 {
		return geom.Rect[int]{}, fmt.Errorf("negative size in %q", s)
	}
	return geom.XYWH(v[0], v[1], v[2], v[3]), nil
}

// ParsePoint parses a point in the form x,y.
func ParsePoint(s string) (geom.Point[int], error) {
	v, err := parseInts(s, 2)
	if err != nil {
		return geom.Point[int]{}, err
	}
	return geom.Pt(v[0], v[1]), nil
}

type rectFlag geom.Rect[int]

func (r rectFlag) String() string {
	return geom.Rect[int](r).String()
}

func (r *rectFlag) Set(v string) error {
	rect, err := ParseRect(v)
	if err != nil {
		return err
	}
	*r = rectFlag(rect)
	return nil
}

func RectFlag(fset *flag.FlagSet, name string, value geom.Rect[int], usage string) *geom.Rect[int] {
	return (*geom.Rect[int])(Flag(fset, name, (*rectFlag)(&value), usage))
}

type pointFlag struct {
	p   geom.Point[int]
	set bool
}

func (p *pointFlag) String() string {
	if p == nil || !p.set {
		return ""
	}
	return p.p.String()
}

func (p *pointFlag) Set(v string) error {
	pt, err := ParsePoint(v)
	if err != nil {
		return err
	}
	p.p, p.set = pt, true
	return nil
}

// PointFlag defines an optional point flag. The returned function
// reports the point and whether the flag was given.
func PointFlag(fset *flag.FlagSet, name string, usage string) func() (geom.Point[int], bool) {
	p := Flag(fset, name, new(pointFlag), usage)
	return func() (geom.Point[int], bool) {
		return p.p, p.set
	}
}
