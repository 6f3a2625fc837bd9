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

package gradient

import (
	"fmt"
	"math"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/geom/vec"
)

// Scalar maps a value in [0, 1] to a colour.
type Scalar interface {
	At(t float64) Color
}

// Field maps a point of the plane to a colour.
type Field interface {
	ColorAt(p vec.Vec2) Color
}

// Solid is a constant colour. It implements both [Scalar] and [Field].
type Solid Color

// At implements the [Scalar] interface.
func (s Solid) At(float64) Color { return Color(s) }

// ColorAt implements the [Field] interface.
func (s Solid) ColorAt(vec.Vec2) Color { return Color(s) }

func checkColors(colors []Color) error {
	switch len(colors) {
	case 0:
		return fmt.Errorf("%w: empty colour list", fractal.ErrInvalidParameter)
	case 1:
		return fmt.Errorf("%w: gradient needs at least two colours", fractal.ErrDomainMismatch)
	}
	return nil
}

func checkRadius(r float64) error {
	if !(r > 0) {
		return fmt.Errorf("%w: gradient radius %g", fractal.ErrInvalidParameter, r)
	}
	return nil
}

// Linear is a gradient through a list of colours, spaced equally over
// [0, 1]. Use [NewLinear] to create one.
type Linear struct {
	colors  []Color
	special *Color
}

// NewLinear returns a linear gradient through the given colours. If
// special is non-nil, it is returned for the value 1 instead of the last
// colour, for example to mark points inside the Mandelbrot set.
func NewLinear(colors []Color, special *Color) (*Linear, error) {
	if err := checkColors(colors); err != nil {
		return nil, err
	}
	l := &Linear{colors: append([]Color(nil), colors...)}
	if special != nil {
		c := *special
		l.special = &c
	}
	return l, nil
}

// At implements the [Scalar] interface. Values outside [0, 1] are clamped.
func (l *Linear) At(t float64) Color {
	if l.special != nil && t == 1 {
		return *l.special
	}
	t = min(max(t, 0), 1)

	n := len(l.colors)
	x := t * float64(n-1)
	k := int(math.Floor(x))
	// at t == 1 the second colour wraps around to the first, with weight 0
	return Mix(l.colors[k], l.colors[(k+1)%n], x-float64(k))
}

// Circular is a colour wheel around Center. The full turn is split into
// one sector per colour; within the sector starting with colour k the hue
// blends from colour k to colour k+1, wrapping around at the end. The
// sector colour is then faded from white at the centre to full strength
// at distance MaxRadius.
type Circular struct {
	Center    vec.Vec2
	Colors    []Color
	MaxRadius float64

	// Offset rotates the wheel counter-clockwise, in radians.
	Offset float64

	// FromOrigin measures the fading distance from (0, 0) instead of from
	// Center, as some older renderings did.
	FromOrigin bool
}

// NewCircular returns a circular gradient. See [Circular].
func NewCircular(center vec.Vec2, colors []Color, maxRadius, offset float64) (*Circular, error) {
	if err := checkColors(colors); err != nil {
		return nil, err
	}
	if err := checkRadius(maxRadius); err != nil {
		return nil, err
	}
	return &Circular{
		Center:    center,
		Colors:    append([]Color(nil), colors...),
		MaxRadius: maxRadius,
		Offset:    offset,
	}, nil
}

// ColorAt implements the [Field] interface.
func (c *Circular) ColorAt(p vec.Vec2) Color {
	n := len(c.Colors)
	sector := 2 * math.Pi / float64(n)

	theta := math.Mod(fractal.ExtendedBearing(c.Center, p)-c.Offset, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	x := theta / sector
	k := int(x)
	if k >= n {
		k, x = n-1, float64(n)
	}
	hue := Mix(c.Colors[k], c.Colors[(k+1)%n], x-float64(k))

	ref := c.Center
	if c.FromOrigin {
		ref = vec.Vec2{}
	}
	r := p.Sub(ref).Length()
	return Mix(White, hue, r/c.MaxRadius)
}

// Radial blends from Near at Center to Far at distance MaxRadius and
// beyond.
type Radial struct {
	Center    vec.Vec2
	Near, Far Color
	MaxRadius float64
}

// NewRadial returns a radial gradient. See [Radial].
func NewRadial(center vec.Vec2, near, far Color, maxRadius float64) (*Radial, error) {
	if err := checkRadius(maxRadius); err != nil {
		return nil, err
	}
	return &Radial{Center: center, Near: near, Far: far, MaxRadius: maxRadius}, nil
}

// ColorAt implements the [Field] interface.
func (r *Radial) ColorAt(p vec.Vec2) Color {
	return Mix(r.Near, r.Far, p.Sub(r.Center).Length()/r.MaxRadius)
}
