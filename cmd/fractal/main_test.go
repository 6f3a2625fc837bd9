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

package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/fractal"
)

// run executes the command line args and returns its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { fractal.SetLogger(nil) })

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	for _, name := range []string{"christmas", "snowmandelbrot", "koch", "star", "snow", "fire"} {
		assert.Contains(t, out, "  "+name+"\n")
	}
}

func TestPoints(t *testing.T) {
	out, err := run(t, "points", "--case", "chaos_carpet", "--count", "25")
	require.NoError(t, err)

	var pts [][2]float64
	require.NoError(t, json.Unmarshal([]byte(out), &pts))
	assert.Len(t, pts, 25)

	// equal seeds give equal points
	again, err := run(t, "points", "--case", "chaos_carpet", "--count", "25")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	_, err = run(t, "points", "--case", "koch_order1")
	assert.ErrorIs(t, err, fractal.ErrDomainMismatch)
	_, err = run(t, "points", "--case", "nonsense")
	assert.ErrorIs(t, err, fractal.ErrInvalidParameter)
}

func TestRenderPNG(t *testing.T) {
	cases := []struct {
		scene       string
		supersample string
	}{
		{"triangle", "1"},
		{"vicsek", "2"},
		{"koch", "2"},
	}
	for _, tc := range cases {
		t.Run(tc.scene, func(t *testing.T) {
			fname := filepath.Join(t.TempDir(), "out.png")
			_, err := run(t, "render",
				"--scene", tc.scene,
				"--width", "96", "--height", "54",
				"--supersample", tc.supersample,
				"--points", "2000",
				"--koch-order", "2",
				"--out", fname)
			require.NoError(t, err)

			fd, err := os.Open(fname)
			require.NoError(t, err)
			defer fd.Close()
			img, err := png.Decode(fd)
			require.NoError(t, err)
			assert.Equal(t, 96, img.Bounds().Dx())
			assert.Equal(t, 54, img.Bounds().Dy())
		})
	}
}

func TestRenderConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "scene: star\nwidth: 40\nheight: 40\npoints: 500\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	fname := filepath.Join(dir, "star.png")
	_, err := run(t, "render", "--config", cfgPath, "--width", "30", "--out", fname)
	require.NoError(t, err)

	fd, err := os.Open(fname)
	require.NoError(t, err)
	defer fd.Close()
	c, err := png.DecodeConfig(fd)
	require.NoError(t, err)
	assert.Equal(t, 30, c.Width)
	assert.Equal(t, 40, c.Height)
}

func TestRenderPDF(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "koch.pdf")
	_, err := run(t, "render", "--scene", "koch", "--koch-order", "2", "--format", "pdf", "--out", fname)
	require.NoError(t, err)

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	_, err = run(t, "render", "--scene", "star", "--format", "pdf", "--out", fname)
	assert.ErrorIs(t, err, fractal.ErrInvalidParameter)
}

func TestRenderErrors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.png")
	cases := [][]string{
		{"render", "--scene", "moon", "--out", out},
		{"render", "--width", "-1", "--out", out},
		{"render", "--supersample", "0", "--out", out},
		{"render", "--format", "gif", "--scene", "star", "--points", "10", "--out", out},
		{"render", "--config", "does-not-exist.yaml"},
		{"--log-level", "loud", "list"},
	}
	for _, args := range cases {
		_, err := run(t, args...)
		assert.Error(t, err, "%v", args)
	}
}
