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
	"context"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallConfig returns a configuration which renders quickly.
func smallConfig(name string) Config {
	cfg := DefaultConfig()
	cfg.Scene = name
	cfg.Width = 185
	cfg.Height = 100
	cfg.Points = 3000
	cfg.Snowflakes = 4
	cfg.KochOrder = 2
	cfg.Mandelbrot.MaxIter = 20
	cfg.Mandelbrot.Step = 0.022
	return cfg
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, len(All))
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "christmas")
}

func TestRenderAll(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			cfg := smallConfig(name)
			c, err := Render(context.Background(), cfg)
			require.NoError(t, err)
			assert.Equal(t, 185, c.Width())
			assert.Equal(t, 100, c.Height())

			lit := 0
			black := color.RGBA{A: 255}
			for y := range c.Height() {
				for x := range c.Width() {
					if c.At(x, y) != black {
						lit++
					}
				}
			}
			assert.Greater(t, lit, 100)
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	cfg := smallConfig("christmas")

	cfg.Workers = 1
	c1, err := Render(context.Background(), cfg)
	require.NoError(t, err)

	cfg.Workers = 4
	c2, err := Render(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, c1.Img.Pix, c2.Img.Pix)

	cfg.Seed++
	c3, err := Render(context.Background(), cfg)
	require.NoError(t, err)
	assert.NotEqual(t, c1.Img.Pix, c3.Img.Pix)
}

func TestRenderSupersample(t *testing.T) {
	cfg := smallConfig("carpet")
	cfg.Supersample = 3
	c, err := Render(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 3*185, c.Width())
	assert.Equal(t, 3*100, c.Height())
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, name := range []string{"christmas", "snowmandelbrot"} {
		_, err := Render(ctx, smallConfig(name))
		assert.ErrorIs(t, err, context.Canceled, name)
	}
}

func TestRenderInvalid(t *testing.T) {
	cfg := smallConfig("nowhere")
	_, err := Render(context.Background(), cfg)
	assert.Error(t, err)
}

func TestDesignTransform(t *testing.T) {
	cfg := smallConfig("triangle")
	cfg.Width, cfg.Height = 400, 100
	m := cfg.ctm(200, 100)

	// the design is scaled to the full height and centred horizontally
	assert.Equal(t, 1.0, m[0])
	assert.Equal(t, 1.0, m[3])
	assert.Equal(t, 100.0, m[4])
	assert.Equal(t, 0.0, m[5])

	cfg.Supersample = 2
	m = cfg.ctm(200, 100)
	assert.Equal(t, 2.0, m[0])
	assert.Equal(t, 200.0, m[4])
}

func TestKochOutline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KochOrder = 1
	outline, w, h, err := KochOutline(cfg)
	require.NoError(t, err)
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 600.0, h)
	assert.Len(t, outline.Cmds, 1+12+1)

	cfg.KochOrder = -1
	_, _, _, err = KochOutline(cfg)
	assert.Error(t, err)
}
