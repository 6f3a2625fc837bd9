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
	"math/rand/v2"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// NewRand returns a pseudo-random generator seeded with seed. Two
// generators with the same seed produce the same sequence.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sampler draws the starting point of a chaos game.
type Sampler interface {
	// Sample returns a random point of the region.
	Sample(rng *rand.Rand) vec.Vec2

	// Contains reports whether p lies in the (closed) region.
	Contains(p vec.Vec2) bool
}

// Disk samples uniformly from a closed disk.
type Disk struct {
	Center vec.Vec2
	Radius float64
}

// Sample implements the [Sampler] interface.
func (d Disk) Sample(rng *rand.Rand) vec.Vec2 {
	r := d.Radius * math.Sqrt(rng.Float64())
	return PolarOffset(d.Center, r, 2*math.Pi*rng.Float64())
}

// Contains implements the [Sampler] interface.
func (d Disk) Contains(p vec.Vec2) bool {
	const eps = 1e-9
	return p.Sub(d.Center).Length() <= d.Radius*(1+eps)
}

// Box samples uniformly from an axis-aligned rectangle.
type Box struct {
	rect.Rect
}

// Sample implements the [Sampler] interface.
func (b Box) Sample(rng *rand.Rand) vec.Vec2 {
	return vec.Vec2{
		X: b.LLx + rng.Float64()*(b.URx-b.LLx),
		Y: b.LLy + rng.Float64()*(b.URy-b.LLy),
	}
}

// Contains implements the [Sampler] interface.
func (b Box) Contains(p vec.Vec2) bool {
	return p.X >= b.LLx && p.X <= b.URx && p.Y >= b.LLy && p.Y <= b.URy
}
