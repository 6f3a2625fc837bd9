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
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Segment is a straight line segment from A to B.
type Segment struct {
	A, B vec.Vec2
}

// kochTurns are the direction changes of the four sub-segments which
// replace a segment in one refinement step.
var kochTurns = [4]float64{0, math.Pi / 3, -math.Pi / 3, 0}

// KochSegment emits the 4^order segments of a Koch curve starting at
// start, with the given overall length and direction angle. The bumps of
// the curve lie on the left hand side of the direction of travel.
func KochSegment(start vec.Vec2, length, angle float64, order int, emit func(Segment)) error {
	if err := checkKoch(length, order); err != nil {
		return err
	}
	kochSegment(start, length, angle, order, emit)
	return nil
}

func kochSegment(start vec.Vec2, length, angle float64, order int, emit func(Segment)) vec.Vec2 {
	if order == 0 {
		end := PolarOffset(start, length, angle)
		emit(Segment{A: start, B: end})
		return end
	}
	pt := start
	for _, turn := range kochTurns {
		pt = kochSegment(pt, length/3, angle+turn, order-1, emit)
	}
	return pt
}

// KochSnowflake emits the 3·4^order segments of a Koch snowflake centred at
// center. The three Koch curves run along the sides of an equilateral
// triangle with the given side length, rotated counter-clockwise by angle.
// The outline is traversed clockwise, starting at the upper left vertex.
func KochSnowflake(center vec.Vec2, length, angle float64, order int, emit func(Segment)) error {
	if err := checkKoch(length, order); err != nil {
		return err
	}
	pt := PolarOffset(center, length/sqrt3, 5*math.Pi/6+angle)
	for i := range 3 {
		dir := angle - 2*math.Pi*float64(i)/3
		kochSegment(pt, length, dir, order, emit)
		pt = PolarOffset(pt, length, dir)
	}
	return nil
}

// KochPath returns the outline of a Koch snowflake as a closed path.
// See [KochSnowflake] for the meaning of the arguments.
func KochPath(center vec.Vec2, length, angle float64, order int) (*path.Data, error) {
	p := &path.Data{}
	first := true
	err := KochSnowflake(center, length, angle, order, func(s Segment) {
		if first {
			p = p.MoveTo(s.A)
			first = false
		}
		p = p.LineTo(s.B)
	})
	if err != nil {
		return nil, err
	}
	return p.Close(), nil
}

func checkKoch(length float64, order int) error {
	if !(length > 0) {
		return fmt.Errorf("%w: Koch length %g", ErrInvalidParameter, length)
	}
	if order < 0 {
		return fmt.Errorf("%w: Koch order %d", ErrInvalidParameter, order)
	}
	return nil
}
