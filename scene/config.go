// seehuhn.de/go/fractal - chaos-game and escape-time fractals
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/gradient"
)

// Config holds the settings for rendering a scene.
type Config struct {
	// Scene is the name of the scene, see [All].
	Scene string `yaml:"scene"`

	// Width and Height give the size of the output image in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Seed seeds all random choices. Equal seeds give equal images.
	Seed uint64 `yaml:"seed"`

	// Supersample renders at this multiple of the output size; the image
	// is scaled down on export.
	Supersample int `yaml:"supersample"`

	// Workers limits the goroutines used for generation. Zero means
	// GOMAXPROCS.
	Workers int `yaml:"workers"`

	// Points overrides the number of points of the main chaos-game
	// fractal of a scene. Zero keeps the scene's default.
	Points int `yaml:"points"`

	// Snowflakes is the number of Vicsek snowflakes around the Christmas
	// tree.
	Snowflakes int `yaml:"snowflakes"`

	// KochOrder is the recursion depth of Koch snowflakes.
	KochOrder int `yaml:"koch_order"`

	Mandelbrot MandelbrotConfig `yaml:"mandelbrot"`
}

// MandelbrotConfig holds the escape-time settings.
type MandelbrotConfig struct {
	MaxIter  int     `yaml:"max_iter"`
	Radius   float64 `yaml:"radius"`
	Step     float64 `yaml:"step"`
	ColorMap string  `yaml:"color_map"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Scene:       "christmas",
		Width:       1850,
		Height:      1000,
		Seed:        1,
		Supersample: 1,
		Snowflakes:  25,
		KochOrder:   6,
		Mandelbrot: MandelbrotConfig{
			MaxIter:  250,
			Radius:   fractal.DefaultEscapeParams.Radius,
			Step:     0.0022,
			ColorMap: "snow",
		},
	}
}

// LoadConfig reads a YAML configuration file. Settings missing from the
// file keep their default values. An empty fname returns the defaults.
func LoadConfig(fname string) (Config, error) {
	cfg := DefaultConfig()
	if fname == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", fname, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if _, ok := All[c.Scene]; !ok {
		return fmt.Errorf("%w: unknown scene %q", fractal.ErrInvalidParameter, c.Scene)
	}
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %d×%d", fractal.ErrInvalidParameter, c.Width, c.Height)
	case c.Supersample < 1:
		return fmt.Errorf("%w: supersample %d", fractal.ErrInvalidParameter, c.Supersample)
	case c.Workers < 0:
		return fmt.Errorf("%w: %d workers", fractal.ErrInvalidParameter, c.Workers)
	case c.Points < 0:
		return fmt.Errorf("%w: %d points", fractal.ErrInvalidParameter, c.Points)
	case c.Snowflakes < 0:
		return fmt.Errorf("%w: %d snowflakes", fractal.ErrInvalidParameter, c.Snowflakes)
	case c.KochOrder < 0:
		return fmt.Errorf("%w: Koch order %d", fractal.ErrInvalidParameter, c.KochOrder)
	case !(c.Mandelbrot.Step > 0):
		return fmt.Errorf("%w: Mandelbrot step %g", fractal.ErrInvalidParameter, c.Mandelbrot.Step)
	}
	if err := c.escapeParams().Validate(); err != nil {
		return err
	}
	if _, err := gradient.Map(c.Mandelbrot.ColorMap); err != nil {
		return err
	}
	return nil
}

func (c Config) escapeParams() fractal.EscapeParams {
	return fractal.EscapeParams{MaxIter: c.Mandelbrot.MaxIter, Radius: c.Mandelbrot.Radius}
}

// points returns the configured point count, or def if none is set.
func (c Config) points(def int) int {
	if c.Points > 0 {
		return c.Points
	}
	return def
}
