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

// Package gradient maps scalar values and plane positions to colours.
//
// Colours are triples of float64 channels nominally in [0, 255]. Blending
// may leave that range; values are only clamped when converted with
// [Color.RGBA] at the rendering boundary.
package gradient

import (
	"image/color"
	"math"

	"seehuhn.de/go/fractal"
)

// Color is an RGB colour, treated as a 3-vector for interpolation.
type Color struct {
	R, G, B float64
}

// Frequently used colours.
var (
	Red    = Color{255, 0, 0}
	Green  = Color{0, 255, 0}
	Blue   = Color{0, 0, 255}
	White  = Color{255, 255, 255}
	Black  = Color{0, 0, 0}
	Cyan   = Color{0, 255, 255}
	Violet = Color{148, 0, 211}
	Indigo = Color{75, 0, 130}
	Yellow = Color{255, 255, 0}
	Orange = Color{255, 127, 0}
	Brown  = Color{110, 38, 14}
)

// Mix divides the segment from c1 to c2 in the ratio r : (1-r). The blend
// saturates: for r ≤ 0 the result is exactly c1, for r ≥ 1 exactly c2.
func Mix(c1, c2 Color, r float64) Color {
	if r <= 0 {
		return c1
	}
	if r >= 1 {
		return c2
	}
	return Color{
		R: fractal.RatioDivide(c1.R, c2.R, r),
		G: fractal.RatioDivide(c1.G, c2.G, r),
		B: fractal.RatioDivide(c1.B, c2.B, r),
	}
}

// RGBA converts c to an opaque 8-bit colour. Channels are clamped to
// [0, 255] and truncated.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 0xff}
}

func channel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
