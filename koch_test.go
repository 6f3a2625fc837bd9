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
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func collectKoch(t *testing.T, center vec.Vec2, length, angle float64, order int) []Segment {
	t.Helper()
	var segs []Segment
	err := KochSnowflake(center, length, angle, order, func(s Segment) {
		segs = append(segs, s)
	})
	require.NoError(t, err)
	return segs
}

func TestKochSnowflakeCount(t *testing.T) {
	for order := range 6 {
		segs := collectKoch(t, vec.Vec2{}, 100, 0, order)
		assert.Len(t, segs, 3*int(math.Pow(4, float64(order))), "order %d", order)
	}
}

func TestKochSnowflakeClosed(t *testing.T) {
	const eps = 1e-9
	for _, angle := range []float64{0, 0.4, math.Pi} {
		segs := collectKoch(t, vec.Vec2{X: 10, Y: -3}, 81, angle, 4)

		// consecutive segments join up, and the outline returns to its start
		for i := range segs {
			next := segs[(i+1)%len(segs)]
			assert.InDelta(t, segs[i].B.X, next.A.X, eps)
			assert.InDelta(t, segs[i].B.Y, next.A.Y, eps)
		}
		for _, s := range segs {
			assert.InDelta(t, 1.0, s.B.Sub(s.A).Length(), eps)
		}
	}
}

func TestKochOrderZero(t *testing.T) {
	center := vec.Vec2{X: 2, Y: 1}
	segs := collectKoch(t, center, 6, 0, 0)
	require.Len(t, segs, 3)

	// an equilateral triangle, with a horizontal top edge traversed to the
	// right and the remaining vertex below the centre
	r := 6 / math.Sqrt(3)
	for _, s := range segs {
		assert.InDelta(t, 6, s.B.Sub(s.A).Length(), 1e-12)
		assert.InDelta(t, r, s.A.Sub(center).Length(), 1e-12)
	}
	assert.InDelta(t, segs[0].A.Y, segs[0].B.Y, 1e-12)
	assert.Less(t, segs[0].A.X, segs[0].B.X)
	assert.Greater(t, segs[0].A.Y, center.Y)
	assert.InDelta(t, center.X, segs[1].B.X, 1e-12)
	assert.InDelta(t, center.Y-r, segs[1].B.Y, 1e-12)
}

func TestKochSegmentBump(t *testing.T) {
	var segs []Segment
	err := KochSegment(vec.Vec2{}, 3, 0, 1, func(s Segment) {
		segs = append(segs, s)
	})
	require.NoError(t, err)
	require.Len(t, segs, 4)

	want := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1.5, Y: math.Sqrt(3) / 2}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	for i, s := range segs {
		assert.InDelta(t, want[i].X, s.A.X, 1e-12)
		assert.InDelta(t, want[i].Y, s.A.Y, 1e-12)
		assert.InDelta(t, want[i+1].X, s.B.X, 1e-12)
		assert.InDelta(t, want[i+1].Y, s.B.Y, 1e-12)
	}
}

func TestKochPath(t *testing.T) {
	p, err := KochPath(vec.Vec2{}, 27, 0, 2)
	require.NoError(t, err)

	var moves, lines, closes int
	for cmd := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			moves++
		case path.CmdLineTo:
			lines++
		case path.CmdClose:
			closes++
		}
	}
	assert.Equal(t, 1, moves)
	assert.Equal(t, 3*16, lines)
	assert.Equal(t, 1, closes)
}

func TestKochErrors(t *testing.T) {
	emit := func(Segment) { t.Error("unexpected segment") }

	assert.ErrorIs(t, KochSnowflake(vec.Vec2{}, 0, 0, 1, emit), ErrInvalidParameter)
	assert.ErrorIs(t, KochSnowflake(vec.Vec2{}, 1, 0, -1, emit), ErrInvalidParameter)
	assert.ErrorIs(t, KochSegment(vec.Vec2{}, math.NaN(), 0, 1, emit), ErrInvalidParameter)

	_, err := KochPath(vec.Vec2{}, -1, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
