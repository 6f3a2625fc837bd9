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

// Package testcases holds small fractal figures shared by the tests, the
// JSON export and the PDF reference generator.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/fractal"
)

// TestCase defines a single figure.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Figure Figure        // what to draw
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)
}

// Figure is the content of a test case.
type Figure interface {
	isFigure()
}

// Points is a chaos-game point cloud.
type Points struct {
	Game  func() (*fractal.Game, error)
	Seed  uint64
	Count int
}

func (Points) isFigure() {}

// Generate runs the game with a generator seeded from p.Seed.
func (p Points) Generate() ([]vec.Vec2, error) {
	g, err := p.Game()
	if err != nil {
		return nil, err
	}
	return g.Generate(fractal.NewRand(p.Seed), p.Count)
}

// Outline is a set of stroked line segments.
type Outline struct {
	Segments []fractal.Segment
	Width    float64               // line width (>0)
	Cap      graphics.LineCapStyle // LineCapButt, LineCapRound, LineCapSquare
}

func (Outline) isFigure() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
