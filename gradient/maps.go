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
	"slices"

	"seehuhn.de/go/fractal"
)

// Colour maps for escape-time values. All except the grayscale maps show
// the value 1, which marks points that never escaped, in a special colour.
var (
	Grayscale         = mustLinear(nil, Black, White)
	GrayscaleInverted = mustLinear(nil, White, Black)
	Rainbow           = mustLinear(&Black, Red, Orange, Yellow, Green, Blue, Indigo, Violet)
	Fire              = mustLinear(&Black, Color{59, 14, 0}, Orange)
	Ice               = mustLinear(&Black, Color{0, 0, 50}, Blue, White)
	Snow              = mustLinear(&White, Color{0, 20, 20}, Cyan, Cyan, Cyan, Cyan)
)

var colorMaps = map[string]*Linear{
	"grayscale":          Grayscale,
	"grayscale-inverted": GrayscaleInverted,
	"rainbow":            Rainbow,
	"fire":               Fire,
	"ice":                Ice,
	"snow":               Snow,
}

// Map returns the colour map with the given name.
func Map(name string) (*Linear, error) {
	m, ok := colorMaps[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown colour map %q", fractal.ErrInvalidParameter, name)
	}
	return m, nil
}

// MapNames returns the names accepted by [Map], in sorted order.
func MapNames() []string {
	names := make([]string, 0, len(colorMaps))
	for name := range colorMaps {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func mustLinear(special *Color, colors ...Color) *Linear {
	l, err := NewLinear(colors, special)
	if err != nil {
		panic(err)
	}
	return l
}
