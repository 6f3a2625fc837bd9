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

package render

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/gradient"
)

// apply maps p from user space to device space.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Compose returns the matrix which applies m1 first and then m2.
func Compose(m1, m2 matrix.Matrix) matrix.Matrix {
	return matrix.Matrix{
		m2[0]*m1[0] + m2[2]*m1[1],
		m2[1]*m1[0] + m2[3]*m1[1],
		m2[0]*m1[2] + m2[2]*m1[3],
		m2[1]*m1[2] + m2[3]*m1[3],
		m2[0]*m1[4] + m2[2]*m1[5] + m2[4],
		m2[1]*m1[4] + m2[3]*m1[5] + m2[5],
	}
}

// pixel returns the pixel containing the device space point p.
func pixel(p vec.Vec2) (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

// PlotPoints lights up the pixel of every point. The colour is taken from
// f at the point's user space coordinates; ctm maps user space to device
// pixels. A zero ctm is treated as the identity.
func PlotPoints(s Surface, pts []vec.Vec2, f gradient.Field, ctm matrix.Matrix) {
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}
	for _, p := range pts {
		x, y := pixel(apply(ctm, p))
		s.SetPixel(x, y, f.ColorAt(p))
	}
}

// PlotEscape lights up the pixel of every sample of the complex plane,
// with the real part as x and the imaginary part as y, in the colour cmap
// assigns to the corresponding escape factor.
func PlotEscape(s Surface, pts []complex128, factors []float64, ctm matrix.Matrix, cmap gradient.Scalar) error {
	if len(pts) != len(factors) {
		return fmt.Errorf("%w: %d points but %d escape factors",
			fractal.ErrDomainMismatch, len(pts), len(factors))
	}
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}
	for i, z := range pts {
		x, y := pixel(apply(ctm, vec.Vec2{X: real(z), Y: imag(z)}))
		s.SetPixel(x, y, cmap.At(factors[i]))
	}
	return nil
}

// SnowmanMatrix maps the complex plane so that the Mandelbrot set stands
// upright like a snowman: the real axis points down, the imaginary axis
// to the right, one unit covers scale pixels, the imaginary axis is
// centred horizontally on a canvas of the given width, and the real value
// 0.4 sits on the bottom edge.
func SnowmanMatrix(width int, scale float64) matrix.Matrix {
	return matrix.Matrix{0, -scale, scale, 0, float64(width) / 2, 0.4 * scale}
}

// DrawSegments strokes every segment with the painter's line width and cap
// style, in the colour f assigns to the segment's start point.
func DrawSegments(b Blender, p *Painter, segs []fractal.Segment, f gradient.Field) {
	for _, s := range segs {
		col := f.ColorAt(s.A)
		p.StrokeSegment(s, func(y, xMin int, coverage []float32) {
			for i, c := range coverage {
				b.Blend(xMin+i, y, col, c)
			}
		})
	}
}
