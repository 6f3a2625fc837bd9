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
	"math/rand/v2"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var sqrt3 = math.Sqrt(3)

// Triangle returns the chaos game of a Sierpinski triangle. The triangle
// is equilateral with centroid center and the given side length, with one
// edge horizontal at the bottom. The start point is drawn from the
// incircle.
func Triangle(center vec.Vec2, side float64) (*Game, error) {
	if !(side > 0) {
		return nil, fmt.Errorf("%w: triangle side %g", ErrInvalidParameter, side)
	}
	inradius := 0.5 * side / sqrt3
	return &Game{
		Anchors: []vec.Vec2{
			{X: center.X - side/2, Y: center.Y - inradius},
			{X: center.X + side/2, Y: center.Y - inradius},
			{X: center.X, Y: center.Y + 2*inradius},
		},
		Ratio: 0.5,
		Rule:  Uniform{N: 3},
		Start: Disk{Center: center, Radius: inradius},
	}, nil
}

// Carpet returns the chaos game of a Sierpinski carpet filling the
// length×width rectangle centred at center. The anchors are the four
// corners and the four edge midpoints.
func Carpet(center vec.Vec2, length, width float64) (*Game, error) {
	if !(length > 0 && width > 0) {
		return nil, fmt.Errorf("%w: carpet size %g×%g", ErrInvalidParameter, length, width)
	}
	tl := vec.Vec2{X: center.X - length/2, Y: center.Y + width/2}
	tr := vec.Vec2{X: center.X + length/2, Y: center.Y + width/2}
	br := vec.Vec2{X: center.X + length/2, Y: center.Y - width/2}
	bl := vec.Vec2{X: center.X - length/2, Y: center.Y - width/2}
	return &Game{
		Anchors: []vec.Vec2{
			tl, tr, br, bl,
			Midpoint(tl, tr), Midpoint(tr, br), Midpoint(br, bl), Midpoint(bl, tl),
		},
		Ratio: 2.0 / 3.0,
		Rule:  Uniform{N: 8},
		Start: Box{rect.Rect{LLx: bl.X, LLy: bl.Y, URx: tr.X, URy: tr.Y}},
	}, nil
}

// Vicsek returns the chaos game of a Vicsek fractal in a square with the
// given side, centred at center and rotated counter-clockwise by angle.
// The anchors are the four vertices and the centre.
func Vicsek(center vec.Vec2, side, angle float64) (*Game, error) {
	if !(side > 0) {
		return nil, fmt.Errorf("%w: Vicsek side %g", ErrInvalidParameter, side)
	}
	circumradius := side / math.Sqrt2
	anchors := make([]vec.Vec2, 0, 5)
	for k := range 4 {
		anchors = append(anchors, PolarOffset(center, circumradius, math.Pi/4+float64(k)*math.Pi/2+angle))
	}
	anchors = append(anchors, Midpoint(anchors[0], anchors[2]))
	return &Game{
		Anchors: anchors,
		Ratio:   2.0 / 3.0,
		Rule:    Uniform{N: 5},
		Start:   Disk{Center: center, Radius: side / 2},
	}, nil
}

// Star returns the restricted chaos game on a regular pentagon with the
// given side, centred at center and rotated by angle. At angle 0 the first
// vertex lies at π/10. The restriction of [NoNeighbourRepeat] produces the
// characteristic star-shaped gaps.
func Star(center vec.Vec2, side, angle float64) (*Game, error) {
	if !(side > 0) {
		return nil, fmt.Errorf("%w: star side %g", ErrInvalidParameter, side)
	}
	circumradius := 0.5 * side / math.Sin(math.Pi/5)
	inradius := 0.5 * side * math.Tan(math.Pi/5)
	anchors := make([]vec.Vec2, 5)
	for k := range anchors {
		anchors[k] = PolarOffset(center, circumradius, math.Pi/10+float64(k)*2*math.Pi/5+angle)
	}
	return &Game{
		Anchors: anchors,
		Ratio:   0.5,
		Rule:    NoNeighbourRepeat{N: 5},
		Start:   Disk{Center: center, Radius: inradius},
	}, nil
}

// TrianglePoints returns count points of a Sierpinski triangle, see [Triangle].
func TrianglePoints(rng *rand.Rand, center vec.Vec2, side float64, count int) ([]vec.Vec2, error) {
	g, err := Triangle(center, side)
	if err != nil {
		return nil, err
	}
	return g.Generate(rng, count)
}

// CarpetPoints returns count points of a Sierpinski carpet, see [Carpet].
func CarpetPoints(rng *rand.Rand, center vec.Vec2, length, width float64, count int) ([]vec.Vec2, error) {
	g, err := Carpet(center, length, width)
	if err != nil {
		return nil, err
	}
	return g.Generate(rng, count)
}

// VicsekPoints returns count points of a Vicsek fractal, see [Vicsek].
func VicsekPoints(rng *rand.Rand, center vec.Vec2, side, angle float64, count int) ([]vec.Vec2, error) {
	g, err := Vicsek(center, side, angle)
	if err != nil {
		return nil, err
	}
	return g.Generate(rng, count)
}

// StarPoints returns count points of the pentagonal star fractal, see [Star].
func StarPoints(rng *rand.Rand, center vec.Vec2, side, angle float64, count int) ([]vec.Vec2, error) {
	g, err := Star(center, side, angle)
	if err != nil {
		return nil, err
	}
	return g.Generate(rng, count)
}

// TreeLevelOffset returns the vertical distance between the centroids of
// successive triangles of a Sierpinski tree with the given side.
func TreeLevelOffset(side float64) float64 {
	return 0.125 * side * sqrt3
}

// TreePoints returns the points of a Sierpinski "Christmas tree": levels
// independently generated triangles stacked on top of each other, the
// lowest one with centroid center. Each triangle gets count points, so the
// result has levels·count points.
func TreePoints(rng *rand.Rand, center vec.Vec2, side float64, levels, count int) ([]vec.Vec2, error) {
	if levels < 1 {
		return nil, fmt.Errorf("%w: tree with %d levels", ErrInvalidParameter, levels)
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: need at least one point per level, got %d", ErrDomainMismatch, count)
	}

	dy := TreeLevelOffset(side)
	out := make([]vec.Vec2, 0, levels*count)
	for i := range levels {
		c := vec.Vec2{X: center.X, Y: center.Y + float64(i)*dy}
		pts, err := TrianglePoints(rng, c, side, count)
		if err != nil {
			return nil, err
		}
		out = append(out, pts...)
	}
	return out, nil
}
