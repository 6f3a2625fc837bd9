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

import "errors"

// Error kinds returned by the generators. Errors are wrapped with context,
// so callers should test for them with [errors.Is].
var (
	// ErrInvalidParameter indicates a parameter outside its valid range,
	// for example a non-positive side length, a point count or iteration
	// limit which is too small, or an empty colour list.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDomainMismatch indicates that the arguments do not fit together,
	// for example a gradient with a single colour, a request for zero
	// points, or point and factor lists of different length.
	ErrDomainMismatch = errors.New("domain mismatch")
)
