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

import "math/rand/v2"

// History holds the two most recently chosen anchor indices of a chaos
// game. A value of -1 means that no index has been chosen yet.
type History struct {
	Last, SecondLast int
}

// NewHistory returns the history at the start of a game.
func NewHistory() History {
	return History{Last: -1, SecondLast: -1}
}

// Push returns the history after choosing index i.
func (h History) Push(i int) History {
	return History{Last: i, SecondLast: h.Last}
}

// repeated reports whether the last two choices were the same index.
func (h History) repeated() bool {
	return h.Last >= 0 && h.Last == h.SecondLast
}

// SelectionRule chooses the anchor a chaos game jumps towards next.
type SelectionRule interface {
	// Next returns an anchor index, given the previous choices.
	Next(rng *rand.Rand, h History) int

	// Anchors returns the number of anchors the rule chooses from.
	Anchors() int
}

// Uniform chooses each of N anchors with equal probability.
type Uniform struct {
	N int
}

// Next implements the [SelectionRule] interface.
func (u Uniform) Next(rng *rand.Rand, _ History) int {
	return rng.IntN(u.N)
}

// Anchors implements the [SelectionRule] interface.
func (u Uniform) Anchors() int {
	return u.N
}

// NoNeighbourRepeat is the restricted rule of the pentagonal star fractal.
// The anchors are taken to lie on a ring. Whenever the same anchor was
// chosen twice in a row, the next choice excludes that anchor and its two
// ring neighbours; otherwise all N anchors are equally likely.
//
// If AllowRepeat is set, the repeated anchor itself stays eligible and only
// its neighbours are excluded. N must be at least 4, or 3 with AllowRepeat.
type NoNeighbourRepeat struct {
	N           int
	AllowRepeat bool
}

// Next implements the [SelectionRule] interface.
func (s NoNeighbourRepeat) Next(rng *rand.Rand, h History) int {
	if !h.repeated() {
		return rng.IntN(s.N)
	}

	// Eligible indices form a contiguous arc of the ring, starting two
	// steps after the repeated index and ending two steps before it.
	// With AllowRepeat the arc is interrupted by the neighbours, so the
	// repeated index is appended as an extra candidate.
	arc := s.N - 3
	n := arc
	if s.AllowRepeat {
		n++
	}
	k := rng.IntN(n)
	if k == arc {
		return h.Last
	}
	return (h.Last + 2 + k) % s.N
}

// Anchors implements the [SelectionRule] interface.
func (s NoNeighbourRepeat) Anchors() int {
	return s.N
}

// minAnchors returns the smallest anchor count the rule can operate on.
func (s NoNeighbourRepeat) minAnchors() int {
	if s.AllowRepeat {
		return 3
	}
	return 4
}
