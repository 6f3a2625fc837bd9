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
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/fractal"
)

// edge is a polygon edge in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Painter computes anti-aliased pixel coverage for stroked line segments
// and filled polygons. Coverage is the exact fraction of each pixel's
// area inside the shape, obtained by accumulating signed edge areas per
// scanline and integrating with the nonzero winding rule.
//
// Create one Painter and reuse it; its buffers grow as needed and are
// never released. A Painter is not safe for concurrent use.
type Painter struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output, in integer-aligned device coordinates.
	Clip rect.Rect

	// Width is the stroke width in user space units.
	Width float64

	// Cap is the style of segment ends. Round caps are approximated by
	// polygons with RoundSteps vertices per half turn.
	Cap graphics.LineCapStyle

	cover     []float32 // per pixel change of the winding sum
	area      []float32 // per pixel signed area left of the edges
	rowXMin   []int
	rowXMax   []int
	edges     []edge
	poly      []vec.Vec2
	crossings []float64
}

// RoundSteps is the number of vertices used for a half circle of a round
// cap.
const RoundSteps = 8

// NewPainter returns a Painter for the given device clip rectangle, with
// the identity CTM, unit width and butt caps.
func NewPainter(clip rect.Rect) *Painter {
	return &Painter{
		CTM:   matrix.Identity,
		Clip:  clip,
		Width: 1,
		Cap:   graphics.LineCapButt,
	}
}

// StrokeSegment computes the coverage of segment s, stroked with the
// current Width and Cap. The emit callback receives coverage row by row;
// the slice is only valid during the call. Zero-length segments are only
// painted with round caps, as a dot.
func (p *Painter) StrokeSegment(s fractal.Segment, emit func(y, xMin int, coverage []float32)) {
	d := p.Width / 2
	if !(d > 0) {
		return
	}

	p.poly = p.poly[:0]
	delta := s.B.Sub(s.A)
	length := delta.Length()
	if length < zeroLengthThreshold {
		if p.Cap == graphics.LineCapRound {
			p.poly = append(p.poly, fractal.PolarOffset(s.A, d, 0))
			p.addArc(s.A, d, 0, 2*math.Pi)
			p.FillPolygon(p.poly, emit)
		}
		return
	}

	t := delta.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	angle := math.Atan2(t.Y, t.X)

	a, b := s.A, s.B
	if p.Cap == graphics.LineCapSquare {
		a = a.Sub(t.Mul(d))
		b = b.Add(t.Mul(d))
	}

	// counter-clockwise: right side forwards, left side backwards
	p.poly = append(p.poly, a.Sub(n.Mul(d)), b.Sub(n.Mul(d)))
	if p.Cap == graphics.LineCapRound {
		p.addArc(b, d, angle-math.Pi/2, math.Pi)
	}
	p.poly = append(p.poly, b.Add(n.Mul(d)), a.Add(n.Mul(d)))
	if p.Cap == graphics.LineCapRound {
		p.addArc(a, d, angle+math.Pi/2, math.Pi)
	}

	p.FillPolygon(p.poly, emit)
}

// addArc appends the interior vertices of a counter-clockwise arc.
func (p *Painter) addArc(center vec.Vec2, radius, start, sweep float64) {
	steps := RoundSteps
	if sweep > math.Pi {
		steps *= 2
	}
	for i := 1; i < steps; i++ {
		p.poly = append(p.poly, fractal.PolarOffset(center, radius, start+sweep*float64(i)/float64(steps)))
	}
}

// FillPolygon computes the coverage of the closed polygon with the given
// user space vertices under the nonzero winding rule. The emit callback
// receives coverage row by row, rows counted upwards in device space.
func (p *Painter) FillPolygon(poly []vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	if len(poly) < 3 {
		return
	}

	p.edges = p.edges[:0]
	devXMin, devYMin := math.Inf(1), math.Inf(1)
	devXMax, devYMax := math.Inf(-1), math.Inf(-1)
	prev := apply(p.CTM, poly[len(poly)-1])
	for _, v := range poly {
		cur := apply(p.CTM, v)
		dy := cur.Y - prev.Y
		if math.Abs(dy) >= horizontalEdgeThreshold {
			p.edges = append(p.edges, edge{
				x0: prev.X, y0: prev.Y,
				x1: cur.X, y1: cur.Y,
				dxdy: (cur.X - prev.X) / dy,
			})
			devXMin = min(devXMin, prev.X, cur.X)
			devXMax = max(devXMax, prev.X, cur.X)
			devYMin = min(devYMin, prev.Y, cur.Y)
			devYMax = max(devYMax, prev.Y, cur.Y)
		}
		prev = cur
	}
	if len(p.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(devXMin)), int(p.Clip.LLx))
	xMax := min(int(math.Floor(devXMax))+1, int(p.Clip.URx))
	yMin := max(int(math.Floor(devYMin)), int(p.Clip.LLy))
	yMax := min(int(math.Floor(devYMax))+1, int(p.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	p.fill(xMin, xMax, yMin, yMax, emit)
}

// fill accumulates all edges into per-row buffers covering the bounding
// box and emits the integrated rows.
func (p *Painter) fill(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	height := yMax - yMin
	size := width * height
	p.cover = slices.Grow(p.cover[:0], size)[:size]
	p.area = slices.Grow(p.area[:0], size)[:size]
	clear(p.cover)
	clear(p.area)
	p.rowXMin = slices.Grow(p.rowXMin[:0], height)[:height]
	p.rowXMax = slices.Grow(p.rowXMax[:0], height)[:height]
	for i := range height {
		p.rowXMin[i] = width
		p.rowXMax[i] = -1
	}

	for i := range p.edges {
		e := &p.edges[i]
		lo := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		hi := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := lo; y < hi; y++ {
			row := y - yMin
			off := row * width
			if x, ok := p.accumulate(e, y, p.cover[off:off+width], p.area[off:off+width], xMin, xMax); ok {
				p.rowXMin[row] = min(p.rowXMin[row], x-xMin)
				p.rowXMax[row] = max(p.rowXMax[row], x-xMin)
			}
		}
	}

	for row := range height {
		if p.rowXMax[row] < 0 {
			continue
		}
		off := row * width
		coverage := p.cover[off : off+width]
		integrateNonZero(coverage, p.area[off:off+width])
		if trimmed, first := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+first, trimmed)
		}
	}
}

// accumulate adds the contribution of edge e within scanline [y, y+1) to
// the row buffers, which are indexed by x - xMin. Contributions left of
// the buffer go to its first pixel, contributions right of it are dropped.
// The returned x is a pixel touched by the edge, clamped to the buffer.
func (p *Painter) accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) (int, bool) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return 0, false
	}

	var sign float32 = 1
	if e.y1 < e.y0 {
		sign = -1
	}
	xAt := func(y float64) float64 { return e.x0 + e.dxdy*(y-e.y0) }

	// split the edge where it crosses vertical pixel boundaries
	xa, xb := xAt(yTop), xAt(yBot)
	left, right := int(math.Floor(min(xa, xb))), int(math.Floor(max(xa, xb)))
	p.crossings = append(p.crossings[:0], yTop, yBot)
	if left != right {
		for x := left + 1; x <= right; x++ {
			yx := e.y0 + (float64(x)-e.x0)/e.dxdy
			if yx > yTop && yx < yBot {
				p.crossings = append(p.crossings, yx)
			}
		}
		slices.Sort(p.crossings)
	}

	for i := range len(p.crossings) - 1 {
		y0, y1 := p.crossings[i], p.crossings[i+1]
		if y1 <= y0 {
			continue
		}
		dy := sign * float32(y1-y0)
		xMid := xAt((y0 + y1) / 2)
		pix := int(math.Floor(xMid))
		switch {
		case pix < xMin:
			cover[0] += dy
			area[0] += dy
		case pix < xMax:
			cover[pix-xMin] += dy
			area[pix-xMin] += dy * float32(1-(xMid-float64(pix)))
		}
	}

	mid := int(math.Floor(xAt((yTop + yBot) / 2)))
	return min(max(mid, xMin), xMax-1), true
}

// integrateNonZero turns the accumulated buffers of one row into coverage
// values in [0, 1], in place.
func integrateNonZero(cover, area []float32) {
	var winding float32
	for i := range cover {
		raw := winding + area[i]
		winding += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero value, and the index where it starts.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimum length of a stroked segment.
	zeroLengthThreshold = 1e-10
)
