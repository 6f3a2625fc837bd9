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
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/fractal"
)

// Downscale reduces img by the given integer factor, using Catmull-Rom
// resampling. Rendering at a multiple of the target size and downscaling
// smooths the single-pixel points of chaos-game fractals. A factor of 1
// or less returns img unchanged.
func Downscale(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, max(1, b.Dx()/factor), max(1, b.Dy()/factor)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// WritePNG downscales img by factor (see [Downscale]) and writes it to w
// in PNG format.
func WritePNG(w io.Writer, img *image.RGBA, factor int) error {
	return png.Encode(w, Downscale(img, factor))
}

// WriteOutlinePDF writes a single page PDF file of the given size in
// points, showing outline as a white line of the given width on a black
// background. The ctm maps the outline's coordinates to page coordinates;
// a zero ctm is treated as the identity. Both PDF pages and package
// fractal use a bottom-left origin, so no flip is needed.
func WriteOutlinePDF(fname string, width, height float64, outline *path.Data, ctm matrix.Matrix, lineWidth float64) error {
	if !(width > 0 && height > 0 && lineWidth > 0) {
		return fmt.Errorf("%w: PDF page %g×%g, line width %g",
			fractal.ErrInvalidParameter, width, height, lineWidth)
	}

	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfcolor.DeviceGray(0))
	page.Rectangle(0, 0, width, height)
	page.Fill()

	if ctm != (matrix.Matrix{}) && ctm != matrix.Identity {
		page.Transform(ctm)
	}

	page.SetStrokeColor(pdfcolor.DeviceGray(1))
	page.SetLineWidth(lineWidth)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	for cmd, pts := range outline.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	page.Stroke()

	return page.Close()
}
