package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"deedles.dev/tilewrap/geom"
	"github.com/BurntSushi/toml"
)

// RectConfig is a rectangle as written in a config file.
type RectConfig struct {
	X      int `toml:"x"`
	Y      int `toml:"y"`
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

func (c RectConfig) Rect() geom.Rect[int] {
	return geom.XYWH(c.X, c.Y, c.Width, c.Height)
}

// Config lists the rectangles to split. A config file looks like
//
//	[wrap]
//	width = 100
//	height = 100
//
//	[[rect]]
//	x = 90
//	y = 90
//	width = 20
//	height = 20
type Config struct {
	Wrap  *RectConfig  `toml:"wrap"`
	Rects []RectConfig `toml:"rect"`
}

// LoadConfig reads a config from the file at path.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	c, err := LoadConfigFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", path, err)
	}
	return c, nil
}

// LoadConfigFromReader decodes and validates a config.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	var c Config
	if _, err := toml.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if c.Wrap != nil {
		if err := validateWrap(c.Wrap.Rect()); err != nil {
			return nil, err
		}
	}
	for i, rc := range c.Rects {
		if rc.Width < 0 || rc.Height < 0 {
			return nil, fmt.Errorf("rect %v: negative size %vx%v", i, rc.Width, rc.Height)
		}
	}
	return &c, nil
}

var errBadWrap = errors.New("wrap rectangle must have a positive width and height")

func validateWrap(r geom.Rect[int]) error {
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return fmt.Errorf("%w: %v", errBadWrap, r)
	}
	return nil
}
