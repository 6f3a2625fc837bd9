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

	"seehuhn.de/go/geom/vec"
)

// Sign returns -1, 0 or +1 according to the sign of x.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// RatioDivide returns the number which divides the interval from k1 to k2
// in the ratio r : (1-r). No clamping is applied, so r outside [0, 1]
// extrapolates.
func RatioDivide(k1, k2, r float64) float64 {
	return (1-r)*k1 + r*k2
}

// RatioDivide2D applies [RatioDivide] to both coordinates.
func RatioDivide2D(p1, p2 vec.Vec2, r float64) vec.Vec2 {
	return vec.Vec2{
		X: RatioDivide(p1.X, p2.X, r),
		Y: RatioDivide(p1.Y, p2.Y, r),
	}
}

// Midpoint returns the midpoint of the segment from p1 to p2.
func Midpoint(p1, p2 vec.Vec2) vec.Vec2 {
	return RatioDivide2D(p1, p2, 0.5)
}

// PolarOffset returns the point at distance length from p, in direction
// angle (radians, counter-clockwise from the positive x-axis).
func PolarOffset(p vec.Vec2, length, angle float64) vec.Vec2 {
	sin, cos := math.Sincos(angle)
	return vec.Vec2{X: p.X + length*cos, Y: p.Y + length*sin}
}

// ExtendedBearing returns the direction from `from` to `to`, measured
// counter-clockwise against the horizontal through `from`, in the range
// [0, 2π).
//
// If both points share an x-coordinate the result is π/2 when `to` lies
// above `from` and 3π/2 when it lies below. The bearing of a point to
// itself is 0.
func ExtendedBearing(from, to vec.Vec2) float64 {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dx == 0 {
		switch {
		case dy > 0:
			return math.Pi / 2
		case dy < 0:
			return 3 * math.Pi / 2
		default:
			return 0
		}
	}

	theta := math.Atan2(dy, dx)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	// -0 and tiny negative angles can round up to exactly 2π
	if theta >= 2*math.Pi {
		theta = 0
	}
	return theta
}
