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

package fractal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"seehuhn.de/go/geom/vec"
)

func TestExtendedBearing(t *testing.T) {
	o := vec.Vec2{X: 1, Y: 2}
	cases := []struct {
		name string
		to   vec.Vec2
		want float64
	}{
		{"right", vec.Vec2{X: 3, Y: 2}, 0},
		{"first quadrant", vec.Vec2{X: 2, Y: 3}, math.Pi / 4},
		{"up", vec.Vec2{X: 1, Y: 5}, math.Pi / 2},
		{"second quadrant", vec.Vec2{X: 0, Y: 3}, 3 * math.Pi / 4},
		{"left", vec.Vec2{X: -1, Y: 2}, math.Pi},
		{"third quadrant", vec.Vec2{X: 0, Y: 1}, 5 * math.Pi / 4},
		{"down", vec.Vec2{X: 1, Y: -4}, 3 * math.Pi / 2},
		{"fourth quadrant", vec.Vec2{X: 2, Y: 1}, 7 * math.Pi / 4},
		{"same point", o, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtendedBearing(o, tc.to)
			assert.InDelta(t, tc.want, got, 1e-12)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, 2*math.Pi)
		})
	}
}

func TestExtendedBearingTinyAngle(t *testing.T) {
	got := ExtendedBearing(vec.Vec2{}, vec.Vec2{X: 1, Y: -1e-300})
	assert.GreaterOrEqual(t, got, 0.0)
	assert.Less(t, got, 2*math.Pi)
}

func TestRatioDivide(t *testing.T) {
	assert.Equal(t, 2.0, RatioDivide(2, 6, 0))
	assert.Equal(t, 6.0, RatioDivide(2, 6, 1))
	assert.Equal(t, 3.0, RatioDivide(2, 6, 0.25))
	assert.Equal(t, 10.0, RatioDivide(2, 6, 2))

	p := RatioDivide2D(vec.Vec2{X: 0, Y: 3}, vec.Vec2{X: 3, Y: 0}, 2.0/3.0)
	assert.InDelta(t, 2, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)

	assert.Equal(t, vec.Vec2{X: 1, Y: -1}, Midpoint(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 2, Y: -2}))
}

func TestPolarOffset(t *testing.T) {
	p := PolarOffset(vec.Vec2{X: 1, Y: 1}, 2, math.Pi/2)
	assert.InDelta(t, 1, p.X, 1e-12)
	assert.InDelta(t, 3, p.Y, 1e-12)

	q := PolarOffset(vec.Vec2{}, 5, 0)
	assert.Equal(t, vec.Vec2{X: 5}, q)
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(0.5))
	assert.Equal(t, -1.0, Sign(-3))
	assert.Equal(t, 0.0, Sign(0))
}
