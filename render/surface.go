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

// Package render draws fractal points, escape-time values and Koch
// segments onto raster surfaces and exports the results.
//
// All drawing uses a bottom-left origin with y pointing up, matching the
// coordinates of package fractal. Surfaces backed by top-left images flip
// rows internally.
package render

import (
	"image"
	"image/color"

	"seehuhn.de/go/fractal/gradient"
)

// Surface is the minimal drawing target.
type Surface interface {
	// SetPixel sets the colour of the pixel at column x and row y, counted
	// from the bottom left. Pixels outside the surface are ignored.
	SetPixel(x, y int, c gradient.Color)

	// Present finishes a frame.
	Present() error
}

// Blender is a surface which supports partial coverage.
type Blender interface {
	Surface

	// Blend mixes c into the pixel at (x, y) with the given opacity in
	// [0, 1].
	Blend(x, y int, c gradient.Color, alpha float32)
}

// Canvas is a [Surface] backed by an [image.RGBA].
type Canvas struct {
	Img *image.RGBA

	// OnPresent, if set, is called by Present with the finished image.
	OnPresent func(*image.RGBA) error
}

// NewCanvas returns a width×height canvas filled with bg.
func NewCanvas(width, height int, bg gradient.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	c := bg.RGBA()
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return &Canvas{Img: img}
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int { return c.Img.Rect.Dx() }

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int { return c.Img.Rect.Dy() }

// offset returns the index of pixel (x, y) in Img.Pix, or -1.
func (c *Canvas) offset(x, y int) int {
	w, h := c.Width(), c.Height()
	if x < 0 || y < 0 || x >= w || y >= h {
		return -1
	}
	return (h-1-y)*c.Img.Stride + 4*x
}

// SetPixel implements the [Surface] interface.
func (c *Canvas) SetPixel(x, y int, col gradient.Color) {
	i := c.offset(x, y)
	if i < 0 {
		return
	}
	rgba := col.RGBA()
	c.Img.Pix[i+0] = rgba.R
	c.Img.Pix[i+1] = rgba.G
	c.Img.Pix[i+2] = rgba.B
	c.Img.Pix[i+3] = rgba.A
}

// Blend implements the [Blender] interface.
func (c *Canvas) Blend(x, y int, col gradient.Color, alpha float32) {
	i := c.offset(x, y)
	if i < 0 || alpha <= 0 {
		return
	}
	if alpha >= 1 {
		c.SetPixel(x, y, col)
		return
	}
	pix := c.Img.Pix[i : i+4 : i+4]
	old := gradient.Color{R: float64(pix[0]), G: float64(pix[1]), B: float64(pix[2])}
	rgba := gradient.Mix(old, col, float64(alpha)).RGBA()
	pix[0], pix[1], pix[2] = rgba.R, rgba.G, rgba.B
	pix[3] = 0xff
}

// At returns the colour of pixel (x, y), counted from the bottom left.
func (c *Canvas) At(x, y int) color.RGBA {
	i := c.offset(x, y)
	if i < 0 {
		return color.RGBA{}
	}
	p := c.Img.Pix[i : i+4 : i+4]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Present implements the [Surface] interface.
func (c *Canvas) Present() error {
	if c.OnPresent == nil {
		return nil
	}
	return c.OnPresent(c.Img)
}
