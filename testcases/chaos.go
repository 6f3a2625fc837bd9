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

package testcases

import (
	"math"

	"seehuhn.de/go/fractal"
)

var chaosCases = []TestCase{
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Figure: Points{
			Game:  func() (*fractal.Game, error) { return fractal.Triangle(pt(32, 28), 56) },
			Seed:  1,
			Count: 5000,
		},
	},
	{
		Name:   "carpet",
		Width:  64,
		Height: 64,
		Figure: Points{
			Game:  func() (*fractal.Game, error) { return fractal.Carpet(pt(32, 32), 54, 54) },
			Seed:  2,
			Count: 5000,
		},
	},
	{
		Name:   "carpet_wide",
		Width:  96,
		Height: 48,
		Figure: Points{
			Game:  func() (*fractal.Game, error) { return fractal.Carpet(pt(48, 24), 81, 27) },
			Seed:  3,
			Count: 5000,
		},
	},
	{
		Name:   "vicsek",
		Width:  64,
		Height: 64,
		Figure: Points{
			Game:  func() (*fractal.Game, error) { return fractal.Vicsek(pt(32, 32), 54, 0) },
			Seed:  4,
			Count: 5000,
		},
	},
	{
		Name:   "vicsek_rotated",
		Width:  64,
		Height: 64,
		Figure: Points{
			Game:  func() (*fractal.Game, error) { return fractal.Vicsek(pt(32, 32), 40, math.Pi/4) },
			Seed:  5,
			Count: 5000,
		},
	},
	{
		Name:   "star",
		Width:  64,
		Height: 64,
		Figure: Points{
			Game:  func() (*fractal.Game, error) { return fractal.Star(pt(32, 32), 30, 0) },
			Seed:  6,
			Count: 5000,
		},
	},
	{
		Name:   "star_inverted",
		Width:  64,
		Height: 64,
		Figure: Points{
			Game:  func() (*fractal.Game, error) { return fractal.Star(pt(32, 32), 30, math.Pi) },
			Seed:  7,
			Count: 5000,
		},
	},
}
