package util

import (
	"flag"
	"io"
	"testing"

	"deedles.dev/tilewrap/geom"
)

func TestParseRect(t *testing.T) {
	tests := []struct {
		in   string
		want geom.Rect[int]
		err  bool
	}{
		{in: "0,0,100,100", want: geom.XYWH(0, 0, 100, 100)},
		{in: "-5, 7, 3, 0", want: geom.XYWH(-5, 7, 3, 0)},
		{in: "1,2,3", err: true},
		{in: "1,2,3,x", err: true},
		{in: "1,2,-3,4", err: true},
	}
	for _, test := range tests {
		got, err := ParseRect(test.in)
		if (err != nil) != test.err {
			t.Errorf("ParseRect(%q): err = %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseRect(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}

func TestFlags(t *testing.T) {
	fset := flag.NewFlagSet("test", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	wrap := RectFlag(fset, "wrap", geom.XYWH(0, 0, 10, 10), "")
	at := PointFlag(fset, "at", "")

	if _, ok := at(); ok {
		t.Fatal("point set before parsing")
	}

	err := fset.Parse([]string{"-wrap", "1,2,3,4", "-at", "-3,9"})
	if err != nil {
		t.Fatal(err)
	}
	if *wrap != geom.XYWH(1, 2, 3, 4) {
		t.Errorf("wrap = %v", *wrap)
	}
	if p, ok := at(); !ok || p != geom.Pt(-3, 9) {
		t.Errorf("at = %v, %v", p, ok)
	}
	if !IsSet(fset, "wrap") {
		t.Error("wrap not reported as set")
	}

	fset = flag.NewFlagSet("test", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	RectFlag(fset, "wrap", geom.XYWH(0, 0, 10, 10), "")
	if err := fset.Parse([]string{"-wrap", "nope"}); err == nil {
		t.Error("bad rectangle accepted")
	}
	if IsSet(fset, "wrap") {
		t.Error("wrap reported as set")
	}
}
