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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/rect"
)

func TestEscapeFactor(t *testing.T) {
	p := DefaultEscapeParams
	cases := []struct {
		name string
		z0   complex128
		want float64
	}{
		{"origin", 0, 1},
		{"period two", -1, 1},
		{"three", 3, 1.0 / 99.0},
		{"outside radius", 20, 0},
		{"on the escape circle", 10, 1.0 / 99.0},
		{"imaginary", complex(0, 11), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EscapeFactor(tc.z0, p)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-15)
		})
	}
}

func TestEscapeFactorRange(t *testing.T) {
	p := EscapeParams{MaxIter: 50, Radius: 2}
	for re := -2.5; re < 1; re += 0.05 {
		for im := -1.5; im < 1.5; im += 0.05 {
			f, err := EscapeFactor(complex(re, im), p)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, f, 0.0)
			assert.LessOrEqual(t, f, 1.0)
		}
	}
}

func TestEscapeParamsErrors(t *testing.T) {
	for _, p := range []EscapeParams{
		{MaxIter: 1, Radius: 10},
		{MaxIter: 0, Radius: 10},
		{MaxIter: 10, Radius: 0},
		{MaxIter: 10, Radius: -1},
	} {
		_, err := EscapeFactor(0, p)
		assert.ErrorIs(t, err, ErrInvalidParameter, "%+v", p)
	}
}

func TestGrid(t *testing.T) {
	region := rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1}
	pts, factors, err := Grid(region, 0.5, DefaultEscapeParams)
	require.NoError(t, err)

	assert.Equal(t, []complex128{0, complex(0, 0.5), 0.5, complex(0.5, 0.5)}, pts)
	require.Len(t, factors, 4)
	for i, z := range pts {
		want, err := EscapeFactor(z, DefaultEscapeParams)
		require.NoError(t, err)
		assert.Equal(t, want, factors[i])
	}
	assert.Equal(t, 1.0, factors[0])
}

func TestGridSize(t *testing.T) {
	region := rect.Rect{LLx: -2, LLy: -1, URx: 0.5, URy: 1}
	pts, factors, err := Grid(region, 0.25, EscapeParams{MaxIter: 20, Radius: 2})
	require.NoError(t, err)
	assert.Len(t, pts, 10*8)
	assert.Len(t, factors, 10*8)

	// partial steps at the upper end are dropped
	pts, _, err = Grid(rect.Rect{URx: 1, URy: 0.7}, 0.3, DefaultEscapeParams)
	require.NoError(t, err)
	assert.Len(t, pts, 3*2)
}

func TestGridContext(t *testing.T) {
	region := rect.Rect{LLx: -2.25, LLy: -1.25, URx: 0.75, URy: 1.25}
	p := EscapeParams{MaxIter: 60, Radius: 4}
	step := 1.0 / 32

	wantPts, wantFactors, err := Grid(region, step, p)
	require.NoError(t, err)

	for _, workers := range []int{0, 2, 3, 16} {
		pts, factors, err := GridContext(context.Background(), region, step, p, workers)
		require.NoError(t, err)
		assert.Equal(t, wantPts, pts, "%d workers", workers)
		assert.Equal(t, wantFactors, factors, "%d workers", workers)
	}
}

func TestGridContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	region := rect.Rect{LLx: -2, LLy: -1, URx: 1, URy: 1}
	for _, workers := range []int{1, 4} {
		pts, factors, err := GridContext(ctx, region, 0.01, DefaultEscapeParams, workers)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, pts)
		assert.Nil(t, factors)
	}
}

func TestGridErrors(t *testing.T) {
	region := rect.Rect{URx: 1, URy: 1}
	cases := []struct {
		name   string
		region rect.Rect
		step   float64
		p      EscapeParams
	}{
		{"zero step", region, 0, DefaultEscapeParams},
		{"negative step", region, -0.1, DefaultEscapeParams},
		{"empty region", rect.Rect{LLx: 1, URx: 1, URy: 1}, 0.1, DefaultEscapeParams},
		{"bad params", region, 0.1, EscapeParams{MaxIter: 1, Radius: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Grid(tc.region, tc.step, tc.p)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}
