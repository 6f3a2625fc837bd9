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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/fractal"
)

var kochCases = []TestCase{
	{
		Name:   "order0",
		Width:  64,
		Height: 64,
		Figure: Outline{
			Segments: snowflake(pt(32, 32), 48, 0, 0),
			Width:    2,
			Cap:      graphics.LineCapRound,
		},
	},
	{
		Name:   "order1",
		Width:  64,
		Height: 64,
		Figure: Outline{
			Segments: snowflake(pt(32, 32), 48, 0, 1),
			Width:    2,
			Cap:      graphics.LineCapRound,
		},
	},
	{
		Name:   "order3",
		Width:  128,
		Height: 128,
		Figure: Outline{
			Segments: snowflake(pt(64, 64), 96, 0, 3),
			Width:    1,
			Cap:      graphics.LineCapRound,
		},
	},
	{
		Name:   "order2_rotated",
		Width:  64,
		Height: 64,
		Figure: Outline{
			Segments: snowflake(pt(32, 32), 48, math.Pi/6, 2),
			Width:    1.5,
			Cap:      graphics.LineCapRound,
		},
	},
	{
		Name:   "order2_scaled",
		Width:  128,
		Height: 128,
		Figure: Outline{
			Segments: snowflake(pt(32, 32), 48, 0, 2),
			Width:    1,
			Cap:      graphics.LineCapRound,
		},
		CTM: matrix.Matrix{2, 0, 0, 2, 0, 0},
	},
	{
		Name:   "curve_order4",
		Width:  128,
		Height: 64,
		Figure: Outline{
			Segments: curve(pt(8, 16), 112, 0, 4),
			Width:    1,
			Cap:      graphics.LineCapButt,
		},
	},
}

// snowflake collects the segments of a Koch snowflake.
func snowflake(center vec.Vec2, length, angle float64, order int) []fractal.Segment {
	var segs []fractal.Segment
	err := fractal.KochSnowflake(center, length, angle, order, func(s fractal.Segment) {
		segs = append(segs, s)
	})
	if err != nil {
		panic(err)
	}
	return segs
}

// curve collects the segments of a single Koch curve.
func curve(start vec.Vec2, length, angle float64, order int) []fractal.Segment {
	var segs []fractal.Segment
	err := fractal.KochSegment(start, length, angle, order, func(s fractal.Segment) {
		segs = append(segs, s)
	})
	if err != nil {
		panic(err)
	}
	return segs
}
