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
	"fmt"
	"math"
	"math/cmplx"
	"runtime"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/rect"
)

// EscapeParams controls escape-time iteration.
type EscapeParams struct {
	// MaxIter is the iteration budget. Must be at least 2.
	MaxIter int

	// Radius is the escape radius. An orbit escapes once |z| > Radius.
	Radius float64
}

// DefaultEscapeParams are the parameters used when nothing else is
// specified.
var DefaultEscapeParams = EscapeParams{MaxIter: 100, Radius: 10}

// Validate checks the parameters.
func (p EscapeParams) Validate() error {
	if p.MaxIter < 2 {
		return fmt.Errorf("%w: MaxIter %d < 2", ErrInvalidParameter, p.MaxIter)
	}
	if !(p.Radius > 0) {
		return fmt.Errorf("%w: escape radius %g", ErrInvalidParameter, p.Radius)
	}
	return nil
}

// EscapeFactor iterates z ← z² + z0, starting at z = z0, and returns
// i/(MaxIter-1), where i is the number of iterations after which |z|
// first exceeds the escape radius. Orbits which stay within the radius
// for MaxIter checks give exactly 1. Points on the escape circle count as
// not escaped.
func EscapeFactor(z0 complex128, p EscapeParams) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return escapeFactor(z0, p), nil
}

func escapeFactor(z0 complex128, p EscapeParams) float64 {
	z := z0
	for i := range p.MaxIter {
		if cmplx.Abs(z) > p.Radius {
			return float64(i) / float64(p.MaxIter-1)
		}
		z = z*z + z0
	}
	return 1
}

// gridSize returns the number of samples along each axis.
func gridSize(region rect.Rect, step float64) (nx, ny int, err error) {
	if !(step > 0) {
		return 0, 0, fmt.Errorf("%w: grid step %g", ErrInvalidParameter, step)
	}
	if !(region.URx > region.LLx && region.URy > region.LLy) {
		return 0, 0, fmt.Errorf("%w: empty grid region %v", ErrInvalidParameter, region)
	}
	nx = int(math.Floor((region.URx - region.LLx) / step))
	ny = int(math.Floor((region.URy - region.LLy) / step))
	return nx, ny, nil
}

// Grid samples the half-open rectangle [LLx, URx) × [LLy, URy) of the
// complex plane (x is the real part) at spacing step and evaluates
// [EscapeFactor] at each sample. The two results have equal length
// ⌊width/step⌋·⌊height/step⌋. Samples are ordered by real part first:
// all samples of the first column, then the second column, and so on.
func Grid(region rect.Rect, step float64, p EscapeParams) ([]complex128, []float64, error) {
	return GridContext(context.Background(), region, step, p, 1)
}

// GridContext is like [Grid], but distributes the columns of the grid over
// up to workers goroutines. If workers is less than 1, GOMAXPROCS is used.
// If ctx is cancelled before the grid is complete, the context's error is
// returned and no samples.
func GridContext(ctx context.Context, region rect.Rect, step float64, p EscapeParams, workers int) ([]complex128, []float64, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	nx, ny, err := gridSize(region, step)
	if err != nil {
		return nil, nil, err
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	pts := make([]complex128, nx*ny)
	factors := make([]float64, nx*ny)

	Logger().Debug("mandelbrot grid",
		"columns", nx, "rows", ny, "maxIter", p.MaxIter, "workers", workers)

	// every column writes to its own range of the output slices
	column := func(i int) {
		re := region.LLx + float64(i)*step
		for j := range ny {
			z := complex(re, region.LLy+float64(j)*step)
			pts[i*ny+j] = z
			factors[i*ny+j] = escapeFactor(z, p)
		}
	}

	if workers == 1 {
		for i := range nx {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
			column(i)
		}
		return pts, factors, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	chunk := max(1, nx/(4*workers))
	for lo := 0; lo < nx; lo += chunk {
		hi := min(lo+chunk, nx)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				column(i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return pts, factors, nil
}
