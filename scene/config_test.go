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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/fractal"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "christmas", cfg.Scene)
	assert.Equal(t, 250, cfg.Mandelbrot.MaxIter)
	assert.Equal(t, 1000, cfg.points(1000))

	cfg.Points = 7
	assert.Equal(t, 7, cfg.points(1000))
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	fname := filepath.Join(t.TempDir(), "scene.yaml")
	data := `
scene: snowmandelbrot
width: 925
seed: 17
mandelbrot:
  max_iter: 80
  color_map: ice
`
	require.NoError(t, os.WriteFile(fname, []byte(data), 0644))

	cfg, err = LoadConfig(fname)
	require.NoError(t, err)

	want := DefaultConfig()
	want.Scene = "snowmandelbrot"
	want.Width = 925
	want.Seed = 17
	want.Mandelbrot.MaxIter = 80
	want.Mandelbrot.ColorMap = "ice"
	assert.Equal(t, want, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("width: [1, 2"), 0644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("supersample: 0\n"), 0644))
	_, err = LoadConfig(invalid)
	assert.ErrorIs(t, err, fractal.ErrInvalidParameter)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(c *Config)
	}{
		{"scene", func(c *Config) { c.Scene = "moon" }},
		{"width", func(c *Config) { c.Width = 0 }},
		{"height", func(c *Config) { c.Height = -3 }},
		{"supersample", func(c *Config) { c.Supersample = 0 }},
		{"workers", func(c *Config) { c.Workers = -1 }},
		{"points", func(c *Config) { c.Points = -1 }},
		{"snowflakes", func(c *Config) { c.Snowflakes = -1 }},
		{"koch order", func(c *Config) { c.KochOrder = -1 }},
		{"step", func(c *Config) { c.Mandelbrot.Step = 0 }},
		{"max iter", func(c *Config) { c.Mandelbrot.MaxIter = 1 }},
		{"radius", func(c *Config) { c.Mandelbrot.Radius = 0 }},
		{"colour map", func(c *Config) { c.Mandelbrot.ColorMap = "sepia" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), fractal.ErrInvalidParameter)
		})
	}
}
