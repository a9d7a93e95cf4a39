// wrapsplit shows how rectangles on a wrap-around canvas are split
// into pieces inside of a single period of that canvas.
//
// Usage:
//
//	wrapsplit [flags] [x,y,w,h ...]
//
// Flags:
//
//	-wrap x,y,w,h   wrap rectangle (default 0,0,100,100)
//	-config string  TOML file with a wrap table and rect entries
//	-at x,y         unwrap a point in each decomposition's top-left piece
//	-v              enable debug logging
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"deedles.dev/tilewrap/geom"
	"deedles.dev/tilewrap/internal/util"
	"deedles.dev/tilewrap/wrap"
	xgeom "deedles.dev/ximage/geom"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "wrapsplit: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fset := flag.NewFlagSet("wrapsplit", flag.ContinueOnError)
	fset.SetOutput(stderr)
	wrapRect := util.RectFlag(fset, "wrap", geom.XYWH(0, 0, 100, 100), "wrap rectangle as x,y,w,h")
	configPath := fset.String("config", "", "TOML file listing the wrap rectangle and rectangles to split")
	at := util.PointFlag(fset, "at", "wrapped point to map back to virtual coordinates, as x,y")
	verbose := fset.Bool("v", false, "enable debug logging")
	if err := fset.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var rects []geom.Rect[int]
	if *configPath != "" {
		c, err := LoadConfig(*configPath)
		if err != nil {
			return err
		}
		logger.Debug("loaded config", "path", *configPath, "rects", len(c.Rects))

		if c.Wrap != nil && !util.IsSet(fset, "wrap") {
			*wrapRect = c.Wrap.Rect()
		}
		for _, rc := range c.Rects {
			rects = append(rects, rc.Rect())
		}
	}
	for _, arg := range fset.Args() {
		r, err := util.ParseRect(arg)
		if err != nil {
			return fmt.Errorf("rectangle %q: %w", arg, err)
		}
		rects = append(rects, r)
	}

	if err := validateWrap(*wrapRect); err != nil {
		return err
	}
	if len(rects) == 0 {
		return errors.New("no rectangles given")
	}

	logger.Debug("splitting", "wrap", *wrapRect, "count", len(rects))
	for _, src := range rects {
		r := wrap.Split(src, *wrapRect)
		logger.Debug("split", "src", src, "split", r.IsSplit(), "pieces", len(r.Pieces()))
		printSplit(stdout, src, r)

		if p, ok := at(); ok {
			if !p.In(r.TopLeft()) {
				logger.Debug("point outside of top-left piece", "src", src, "point", p)
				continue
			}
			fmt.Fprintf(stdout, "  %v -> %v\n", p, r.Unwrap(p))
		}
	}

	return nil
}

func printSplit(w io.Writer, src geom.Rect[int], r wrap.Rect) {
	fmt.Fprintf(w, "%v: split=%v seams=%v\n", src, r.IsSplit(), seamString(r.Seams()))
	for q, piece := range r.All() {
		if piece.Empty() {
			continue
		}
		fmt.Fprintf(w, "  %-12v %v\n", q, piece)
	}
}

func seamString(edges xgeom.Edges) string {
	switch edges {
	case xgeom.EdgeNone:
		return "none"
	case xgeom.EdgeRight:
		return "right"
	case xgeom.EdgeBottom:
		return "bottom"
	case xgeom.EdgeRight | xgeom.EdgeBottom:
		return "right,bottom"
	default:
		return fmt.Sprintf("%#x", uint32(edges))
	}
}
