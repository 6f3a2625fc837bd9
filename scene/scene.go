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

// Package scene composes the fractals of this module into complete
// pictures.
//
// Every scene is laid out in its own design coordinate system, with the
// origin in the lower left corner and y pointing up. When rendering, the
// design is scaled uniformly to fit the configured image size and centred.
package scene

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/gradient"
	"seehuhn.de/go/fractal/render"
)

// Builder draws a scene onto a canvas.
type Builder func(ctx context.Context, cfg Config, c *render.Canvas) error

// All lists the available scenes by name.
var All = map[string]Builder{
	"christmas":      christmas,
	"snowmandelbrot": snowmandelbrot,
	"star":           star,
	"koch":           koch,
	"triangle":       triangle,
	"carpet":         carpet,
	"vicsek":         vicsek,
}

// Names returns the scene names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(All))
	for name := range All {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Render validates cfg and draws the configured scene onto a new black
// canvas of size Width·Supersample × Height·Supersample.
func Render(ctx context.Context, cfg Config) (*render.Canvas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	build := All[cfg.Scene]

	log := fractal.Logger().With("scene", cfg.Scene)
	start := time.Now()
	c := render.NewCanvas(cfg.Width*cfg.Supersample, cfg.Height*cfg.Supersample, gradient.Black)
	if err := build(ctx, cfg, c); err != nil {
		return nil, fmt.Errorf("scene %s: %w", cfg.Scene, err)
	}
	log.Info("scene rendered",
		"width", c.Width(), "height", c.Height(),
		"seed", cfg.Seed, "elapsed", time.Since(start))
	return c, nil
}

// ctm maps a design of size dw×dh onto the canvas.
func (c Config) ctm(dw, dh float64) matrix.Matrix {
	w := float64(c.Width * c.Supersample)
	h := float64(c.Height * c.Supersample)
	s := min(w/dw, h/dh)
	return matrix.Matrix{s, 0, 0, s, (w - s*dw) / 2, (h - s*dh) / 2}
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func christmas(ctx context.Context, cfg Config, c *render.Canvas) error {
	const W, H = 1850.0, 1000.0
	ctm := cfg.ctm(W, H)
	rng := fractal.NewRand(cfg.Seed)

	flakes, err := snowflakes(ctx, cfg, rng, W, H)
	if err != nil {
		return err
	}

	leaves, err := fractal.TreePoints(rng, vec.Vec2{X: W / 2, Y: H/2 - 110}, 590, 3, cfg.points(200000))
	if err != nil {
		return err
	}
	leafColors, err := gradient.NewCircular(vec.Vec2{X: W / 2, Y: H/2 + 100}, []gradient.Color{
		{R: 255, G: 50, B: 50},
		{R: 0, G: 200, B: 0},
		{R: 255, G: 50, B: 50},
		{R: 0, G: 175, B: 255},
	}, 300, 0)
	if err != nil {
		return err
	}

	trunk, err := fractal.CarpetPoints(rng, vec.Vec2{X: W / 2, Y: H/2 - 400}, 240, 240, 100000)
	if err != nil {
		return err
	}

	for _, f := range flakes {
		render.PlotPoints(c, f.pts, f.colors, ctm)
	}
	render.PlotPoints(c, trunk, gradient.Solid(gradient.Brown), ctm)
	render.PlotPoints(c, leaves, leafColors, ctm)
	return nil
}

type flake struct {
	pts    []vec.Vec2
	colors gradient.Field
}

// snowflakes scatters cfg.Snowflakes Vicsek fractals to the left and right
// of the centre strip of a W×H design. The layout is drawn from rng in
// sequence; the points of each flake come from a generator seeded from
// rng, so that the result does not depend on the number of workers.
func snowflakes(ctx context.Context, cfg Config, rng *rand.Rand, W, H float64) ([]flake, error) {
	type layout struct {
		center    vec.Vec2
		size      float64
		angle     float64
		near, far gradient.Color
		seed      uint64
	}
	ls := make([]layout, cfg.Snowflakes)
	for i := range ls {
		side := 1.0
		if rng.IntN(2) == 0 {
			side = -1
		}
		l := &ls[i]
		l.center.X = W/2 + side*(0.16*W+rng.Float64()*0.34*W)
		l.center.Y = 25 + rng.Float64()*(H-50)
		l.angle = rng.Float64() * 2 * math.Pi
		l.size = 15 + 65*rng.Float64()
		l.near = gradient.Mix(gradient.Cyan, gradient.Blue, 0.5+0.5*rng.Float64())
		l.far = gradient.Mix(gradient.Cyan, gradient.Blue, 0.1+0.4*rng.Float64())
		l.seed = rng.Uint64()
	}

	out := make([]flake, len(ls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers())
	for i, l := range ls {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pts, err := fractal.VicsekPoints(fractal.NewRand(l.seed), l.center, l.size, l.angle, 10000)
			if err != nil {
				return err
			}
			colors, err := gradient.NewRadial(l.center, l.near, l.far, 0.5*l.size)
			if err != nil {
				return err
			}
			out[i] = flake{pts: pts, colors: colors}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func snowmandelbrot(ctx context.Context, cfg Config, c *render.Canvas) error {
	const W, H, scale = 1850.0, 1000.0, 375.0
	ctm := cfg.ctm(W, H)
	rng := fractal.NewRand(cfg.Seed)

	cmap, err := gradient.Map(cfg.Mandelbrot.ColorMap)
	if err != nil {
		return err
	}
	region := rect.Rect{LLx: -2.26666, LLy: -2.46666, URx: 0.4, URy: 2.46666}
	// keep the sample spacing fixed in device pixels
	step := cfg.Mandelbrot.Step / ctm[0]
	zs, factors, err := fractal.GridContext(ctx, region, step, cfg.escapeParams(), cfg.workers())
	if err != nil {
		return err
	}

	hat, err := fractal.TrianglePoints(rng, vec.Vec2{X: W / 2, Y: 0.685 * H}, 0.225*H, cfg.points(100000))
	if err != nil {
		return err
	}
	top, err := fractal.StarPoints(rng, vec.Vec2{X: W / 2, Y: 0.87 * H}, 0.065*H, math.Pi, 10000)
	if err != nil {
		return err
	}

	err = render.PlotEscape(c, zs, factors, render.Compose(render.SnowmanMatrix(int(W), scale), ctm), cmap)
	if err != nil {
		return err
	}
	render.PlotPoints(c, hat, gradient.Solid(gradient.Red), ctm)
	render.PlotPoints(c, top, gradient.Solid(gradient.White), ctm)
	return nil
}

func star(_ context.Context, cfg Config, c *render.Canvas) error {
	const W, H = 1000.0, 1000.0
	center := vec.Vec2{X: W / 2, Y: H / 2}
	pts, err := fractal.StarPoints(fractal.NewRand(cfg.Seed), center, 530, 0, cfg.points(1000000))
	if err != nil {
		return err
	}
	colors, err := gradient.NewCircular(center,
		[]gradient.Color{gradient.Red, gradient.Green, gradient.Blue}, 500, 0)
	if err != nil {
		return err
	}
	render.PlotPoints(c, pts, colors, cfg.ctm(W, H))
	return nil
}

// Size of the koch scene's design.
const (
	kochW = 800.0
	kochH = 600.0
)

// KochOutline returns the snowflake drawn by the koch scene as a closed
// path in design coordinates, together with the size of the design.
func KochOutline(cfg Config) (outline *path.Data, width, height float64, err error) {
	outline, err = fractal.KochPath(vec.Vec2{X: kochW / 2, Y: kochH / 2}, 500, 0, cfg.KochOrder)
	if err != nil {
		return nil, 0, 0, err
	}
	return outline, kochW, kochH, nil
}

func koch(_ context.Context, cfg Config, c *render.Canvas) error {
	center := vec.Vec2{X: kochW / 2, Y: kochH / 2}

	var segs []fractal.Segment
	err := fractal.KochSnowflake(center, 500, 0, cfg.KochOrder, func(s fractal.Segment) {
		segs = append(segs, s)
	})
	if err != nil {
		return err
	}

	var colors []gradient.Color
	for range 4 {
		colors = append(colors, gradient.White, gradient.Cyan, gradient.Blue)
	}
	f, err := gradient.NewCircular(center, colors, 300, 0)
	if err != nil {
		return err
	}

	p := render.NewPainter(rect.Rect{URx: float64(c.Width()), URy: float64(c.Height())})
	p.CTM = cfg.ctm(kochW, kochH)
	p.Cap = graphics.LineCapRound
	render.DrawSegments(c, p, segs, f)
	return nil
}

// The remaining scenes show a single fractal on a 1920×1080 design.
const (
	singleW = 1920.0
	singleH = 1080.0
)

func triangle(_ context.Context, cfg Config, c *render.Canvas) error {
	center := vec.Vec2{X: singleW / 2, Y: singleH/2 - 100}
	pts, err := fractal.TrianglePoints(fractal.NewRand(cfg.Seed), center, 1000, cfg.points(1000000))
	if err != nil {
		return err
	}
	colors, err := gradient.NewCircular(center,
		[]gradient.Color{gradient.Red, gradient.Blue, gradient.Green}, 750, math.Pi/6)
	if err != nil {
		return err
	}
	render.PlotPoints(c, pts, colors, cfg.ctm(singleW, singleH))
	return nil
}

func carpet(_ context.Context, cfg Config, c *render.Canvas) error {
	center := vec.Vec2{X: singleW / 2, Y: singleH / 2}
	pts, err := fractal.CarpetPoints(fractal.NewRand(cfg.Seed), center, 900, 900, cfg.points(1000000))
	if err != nil {
		return err
	}
	colors, err := gradient.NewCircular(center,
		[]gradient.Color{gradient.Red, gradient.Green, gradient.Blue}, 750, 0)
	if err != nil {
		return err
	}
	render.PlotPoints(c, pts, colors, cfg.ctm(singleW, singleH))
	return nil
}

func vicsek(_ context.Context, cfg Config, c *render.Canvas) error {
	center := vec.Vec2{X: singleW / 2, Y: singleH / 2}
	pts, err := fractal.VicsekPoints(fractal.NewRand(cfg.Seed), center, 800, 0, cfg.points(500000))
	if err != nil {
		return err
	}
	colors, err := gradient.NewCircular(center,
		[]gradient.Color{gradient.White, gradient.Cyan}, 750, 0)
	if err != nil {
		return err
	}
	render.PlotPoints(c, pts, colors, cfg.ctm(singleW, singleH))
	return nil
}
