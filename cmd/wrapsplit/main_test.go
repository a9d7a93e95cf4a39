package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runOutput(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), err
}

func TestRunCorner(t *testing.T) {
	out, err := runOutput(t, "-wrap", "0,0,100,100", "90,90,20,20")
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"90,90,20,20: split=true seams=right,bottom",
		"  top-left     90,90,10,10",
		"  top-right    0,90,10,10",
		"  bottom-left  90,0,10,10",
		"  bottom-right 0,0,10,10",
		"",
	}, "\n")
	if out != want {
		t.Errorf("output:\n%v\nwant:\n%v", out, want)
	}
}

func TestRunUnwrap(t *testing.T) {
	out, err := runOutput(t, "-at", "95,95", "90,90,20,20", "10,10,5,5")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "  95,95 -> 95,95\n") {
		t.Errorf("missing unwrapped point:\n%v", out)
	}
	if strings.Count(out, "->") != 1 {
		t.Errorf("point unwrapped outside of top-left piece:\n%v", out)
	}
}

func TestRunConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rects.toml")
	err := os.WriteFile(path, []byte(`
[wrap]
width = 50
height = 50

[[rect]]
x = 10
y = 10
width = 20
height = 20
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	out, err := runOutput(t, "-config", path, "45,0,10,10")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "10,10,20,20: split=false seams=none\n  top-left     10,10,20,20\n") {
		t.Errorf("unexpected output for config rect:\n%v", out)
	}
	if !strings.Contains(out, "45,0,10,10: split=true seams=right\n") {
		t.Errorf("unexpected output for flag rect:\n%v", out)
	}

	out, err = runOutput(t, "-config", path, "-wrap", "0,0,20,20")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "10,10,20,20: split=true") {
		t.Errorf("-wrap did not override config:\n%v", out)
	}
}

func TestRunErrors(t *testing.T) {
	if _, err := runOutput(t); err == nil {
		t.Error("no error without rectangles")
	}
	if _, err := runOutput(t, "-wrap", "0,0,0,10", "1,1,1,1"); !errors.Is(err, errBadWrap) {
		t.Errorf("err = %v, want %v", err, errBadWrap)
	}
	if _, err := runOutput(t, "1,1,1"); err == nil {
		t.Error("bad rectangle accepted")
	}
	if _, err := runOutput(t, "-config", filepath.Join(t.TempDir(), "missing.toml"), "1,1,1,1"); err == nil {
		t.Error("missing config accepted")
	}
}

func TestLoadConfigFromReader(t *testing.T) {
	c, err := LoadConfigFromReader(strings.NewReader(`
[[rect]]
x = -5
width = 3
height = 4
`))
	if err != nil {
		t.Fatal(err)
	}
	if c.Wrap != nil {
		t.Errorf("Wrap = %+v, want nil", c.Wrap)
	}
	if len(c.Rects) != 1 || c.Rects[0] != (RectConfig{X: -5, Width: 3, Height: 4}) {
		t.Errorf("Rects = %+v", c.Rects)
	}

	_, err = LoadConfigFromReader(strings.NewReader("[wrap]\nwidth = 10\n"))
	if !errors.Is(err, errBadWrap) {
		t.Errorf("err = %v, want %v", err, errBadWrap)
	}

	_, err = LoadConfigFromReader(strings.NewReader("[[rect]]\nwidth = -1\n"))
	if err == nil {
		t.Error("negative size accepted")
	}
}
