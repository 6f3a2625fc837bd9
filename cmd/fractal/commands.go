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

package main

import (
	"encoding/json"
	"fmt"
	"image"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/gradient"
	"seehuhn.de/go/fractal/render"
	"seehuhn.de/go/fractal/scene"
	"seehuhn.de/go/fractal/testcases"
)

func newRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:          "fractal",
		Short:        "Render chaos-game, Koch and Mandelbrot fractals",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			fractal.SetLogger(slog.New(h))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newRenderCmd(), newListCmd(), newPointsCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	var (
		configPath string
		out        string
		format     string
		flagCfg    scene.Config
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene to a PNG (or PDF) file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := scene.LoadConfig(configPath)
			if err != nil {
				return err
			}

			// command line flags take precedence over the file
			flags := cmd.Flags()
			if flags.Changed("scene") {
				cfg.Scene = flagCfg.Scene
			}
			if flags.Changed("width") {
				cfg.Width = flagCfg.Width
			}
			if flags.Changed("height") {
				cfg.Height = flagCfg.Height
			}
			if flags.Changed("seed") {
				cfg.Seed = flagCfg.Seed
			}
			if flags.Changed("supersample") {
				cfg.Supersample = flagCfg.Supersample
			}
			if flags.Changed("workers") {
				cfg.Workers = flagCfg.Workers
			}
			if flags.Changed("points") {
				cfg.Points = flagCfg.Points
			}
			if flags.Changed("koch-order") {
				cfg.KochOrder = flagCfg.KochOrder
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			switch format {
			case "png":
				return renderPNG(cmd, cfg, out)
			case "pdf":
				return renderPDF(cfg, out)
			default:
				return fmt.Errorf("unknown output format %q", format)
			}
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	f.StringVarP(&out, "out", "o", "fractal.png", "output file")
	f.StringVar(&format, "format", "png", "output format (png, pdf)")
	f.StringVarP(&flagCfg.Scene, "scene", "s", "", "scene to render (see \"fractal list\")")
	f.IntVar(&flagCfg.Width, "width", 0, "image width in pixels")
	f.IntVar(&flagCfg.Height, "height", 0, "image height in pixels")
	f.Uint64Var(&flagCfg.Seed, "seed", 0, "random seed")
	f.IntVar(&flagCfg.Supersample, "supersample", 0, "render at this multiple of the image size")
	f.IntVar(&flagCfg.Workers, "workers", 0, "number of worker goroutines")
	f.IntVar(&flagCfg.Points, "points", 0, "number of points of the main fractal")
	f.IntVar(&flagCfg.KochOrder, "koch-order", 0, "recursion depth of Koch snowflakes")
	return cmd
}

func renderPNG(cmd *cobra.Command, cfg scene.Config, out string) error {
	c, err := scene.Render(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	c.OnPresent = func(img *image.RGBA) error {
		fd, err := os.Create(out)
		if err != nil {
			return err
		}
		err = render.WritePNG(fd, img, cfg.Supersample)
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
		return err
	}
	if err := c.Present(); err != nil {
		return err
	}
	fractal.Logger().Info("image written", "file", out)
	return nil
}

func renderPDF(cfg scene.Config, out string) error {
	if cfg.Scene != "koch" {
		return fmt.Errorf("%w: PDF output is only available for the koch scene",
			fractal.ErrInvalidParameter)
	}
	outline, w, h, err := scene.KochOutline(cfg)
	if err != nil {
		return err
	}
	if err := render.WriteOutlinePDF(out, w, h, outline, matrix.Identity, 1); err != nil {
		return err
	}
	fractal.Logger().Info("outline written", "file", out)
	return nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available scenes and colour maps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "scenes:")
			for _, name := range scene.Names() {
				fmt.Fprintln(w, "  "+name)
			}
			fmt.Fprintln(w, "colour maps:")
			for _, name := range gradient.MapNames() {
				fmt.Fprintln(w, "  "+name)
			}
			return nil
		},
	}
}

func newPointsCmd() *cobra.Command {
	var (
		name  string
		count int
		seed  uint64
	)
	cmd := &cobra.Command{
		Use:   "points",
		Short: "Write the points of a chaos-game test case as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tc, ok := findCase(name)
			if !ok {
				return fmt.Errorf("%w: unknown test case %q", fractal.ErrInvalidParameter, name)
			}
			fig, ok := tc.Figure.(testcases.Points)
			if !ok {
				return fmt.Errorf("%w: test case %q has no points", fractal.ErrDomainMismatch, name)
			}
			if cmd.Flags().Changed("count") {
				fig.Count = count
			}
			if cmd.Flags().Changed("seed") {
				fig.Seed = seed
			}

			pts, err := fig.Generate()
			if err != nil {
				return err
			}
			xy := make([][2]float64, len(pts))
			for i, p := range pts {
				xy[i] = [2]float64{p.X, p.Y}
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(xy)
		},
	}
	cmd.Flags().StringVar(&name, "case", "chaos_triangle", "test case, as category_name")
	cmd.Flags().IntVar(&count, "count", 0, "number of points")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed")
	return cmd
}

// findCase looks up a test case by its full name.
func findCase(name string) (testcases.TestCase, bool) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if category+"_"+tc.Name == name {
				return tc, true
			}
		}
	}
	return testcases.TestCase{}, false
}
