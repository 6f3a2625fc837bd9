// Command export writes the test figures to JSON, with the chaos-game
// point clouds expanded, for external plotting and comparison tools.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/fractal/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string        `json:"name"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	CTM       []float64     `json:"ctm,omitempty"`
	Kind      string        `json:"kind"`
	Seed      uint64        `json:"seed,omitempty"`
	Points    [][]float64   `json:"points,omitempty"`
	Segments  [][][]float64 `json:"segments,omitempty"`
	LineWidth float64       `json:"line_width,omitempty"`
	LineCap   string        `json:"line_cap,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}
	if tc.CTM != (matrix.Matrix{}) {
		jtc.CTM = tc.CTM[:]
	}

	switch fig := tc.Figure.(type) {
	case testcases.Points:
		pts, err := fig.Generate()
		if err != nil {
			panic(err)
		}
		jtc.Kind = "points"
		jtc.Seed = fig.Seed
		jtc.Points = make([][]float64, len(pts))
		for i, p := range pts {
			jtc.Points[i] = []float64{p.X, p.Y}
		}
	case testcases.Outline:
		jtc.Kind = "outline"
		jtc.LineWidth = fig.Width
		jtc.LineCap = fig.Cap.String()
		jtc.Segments = make([][][]float64, len(fig.Segments))
		for i, s := range fig.Segments {
			jtc.Segments[i] = [][]float64{{s.A.X, s.A.Y}, {s.B.X, s.B.Y}}
		}
	}
	return jtc
}
