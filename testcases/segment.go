package testcases

import (
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/fractal"
)

var segmentCases = []TestCase{
	{
		Name:   "line_butt",
		Width:  64,
		Height: 64,
		Figure: Outline{
			Segments: line(10, 32, 54, 32),
			Width:    8,
			Cap:      graphics.LineCapButt,
		},
	},
	{
		Name:   "line_round",
		Width:  64,
		Height: 64,
		Figure: Outline{
			Segments: line(10, 32, 54, 32),
			Width:    8,
			Cap:      graphics.LineCapRound,
		},
	},
	{
		Name:   "line_square",
		Width:  64,
		Height: 64,
		Figure: Outline{
			Segments: line(10, 32, 54, 32),
			Width:    8,
			Cap:      graphics.LineCapSquare,
		},
	},
	{
		Name:   "diagonal_butt",
		Width:  64,
		Height: 64,
		Figure: Outline{
			Segments: line(12, 12, 52, 44),
			Width:    5,
			Cap:      graphics.LineCapButt,
		},
	},
	{
		Name:   "vertical_thin",
		Width:  64,
		Height: 64,
		Figure: Outline{
			Segments: line(32.5, 8, 32.5, 56),
			Width:    0.5,
			Cap:      graphics.LineCapButt,
		},
	},
	{
		Name:   "dot_round",
		Width:  32,
		Height: 32,
		Figure: Outline{
			Segments: line(16, 16, 16, 16),
			Width:    12,
			Cap:      graphics.LineCapRound,
		},
	},
}

func line(x0, y0, x1, y1 float64) []fractal.Segment {
	return []fractal.Segment{{A: vec.Vec2{X: x0, Y: y0}, B: vec.Vec2{X: x1, Y: y1}}}
}
