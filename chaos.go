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
	"math/rand/v2"

	"seehuhn.de/go/geom/vec"
)

// Game describes a chaos game. Starting from a random point of Start, the
// accumulator point repeatedly moves the fraction Ratio of the way towards
// an anchor chosen by Rule. The visited points approximate the attractor of
// the iterated function system given by the anchors.
//
// A Game is never modified by running it, so one Game can be used
// concurrently with different random generators.
type Game struct {
	Anchors []vec.Vec2
	Ratio   float64
	Rule    SelectionRule
	Start   Sampler
}

// Validate checks that the game can be run.
func (g *Game) Validate() error {
	switch {
	case len(g.Anchors) == 0:
		return fmt.Errorf("%w: chaos game without anchors", ErrInvalidParameter)
	case !(g.Ratio > 0 && g.Ratio <= 1):
		return fmt.Errorf("%w: jump ratio %g outside (0, 1]", ErrInvalidParameter, g.Ratio)
	case g.Rule == nil:
		return fmt.Errorf("%w: missing selection rule", ErrInvalidParameter)
	case g.Start == nil:
		return fmt.Errorf("%w: missing start region", ErrInvalidParameter)
	case g.Rule.Anchors() != len(g.Anchors):
		return fmt.Errorf("%w: rule selects from %d anchors, game has %d",
			ErrDomainMismatch, g.Rule.Anchors(), len(g.Anchors))
	}
	if r, ok := g.Rule.(NoNeighbourRepeat); ok && r.N < r.minAnchors() {
		return fmt.Errorf("%w: neighbour exclusion needs at least %d anchors",
			ErrInvalidParameter, r.minAnchors())
	}
	return nil
}

// Run plays the game for count points and passes each point to emit, the
// random start point first. Nothing is emitted if an error is returned.
func (g *Game) Run(rng *rand.Rand, count int, emit func(vec.Vec2)) error {
	if count < 1 {
		return fmt.Errorf("%w: need at least one point, got %d", ErrDomainMismatch, count)
	}
	if err := g.Validate(); err != nil {
		return err
	}

	acc := g.Start.Sample(rng)
	emit(acc)

	h := NewHistory()
	for range count - 1 {
		i := g.Rule.Next(rng, h)
		h = h.Push(i)
		acc = RatioDivide2D(acc, g.Anchors[i], g.Ratio)
		emit(acc)
	}
	return nil
}

// Generate plays the game and returns the count visited points.
func (g *Game) Generate(rng *rand.Rand, count int) ([]vec.Vec2, error) {
	var pts []vec.Vec2
	if count > 0 {
		pts = make([]vec.Vec2, 0, count)
	}
	err := g.Run(rng, count, func(p vec.Vec2) {
		pts = append(pts, p)
	})
	if err != nil {
		return nil, err
	}
	Logger().Debug("chaos game", "anchors", len(g.Anchors), "points", len(pts))
	return pts, nil
}
