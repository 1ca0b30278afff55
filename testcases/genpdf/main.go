// seehuhn.de/go/predraster - tiled prediction raster blocks
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

// Command genpdf draws a coverage map for every test case.
// Each pixel of the raster read from the test case becomes a square,
// shaded by its value; no-data pixels stay white. The outline of the
// transmitter disk is drawn on top.
package main

import (
	"fmt"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/predraster"
	"seehuhn.de/go/predraster/testcases"
)

const (
	mapDir = "testdata/maps"
	cell   = 24.0 // points per pixel
)

func main() {
	if err := os.MkdirAll(mapDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(mapDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	pix, err := predraster.RenderExample(tc)
	if err != nil {
		return err
	}

	w := float64(tc.Width) * cell
	h := float64(tc.Height) * cell
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; rasters are stored top-down.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	lo, hi, ok := predraster.ValidRange(tc.Section)
	if !ok {
		lo, hi = valueRange(pix, tc.NoData)
	}
	noData := math.NaN()
	if tc.NoData != nil {
		noData = *tc.NoData
	} else if enc, err := predraster.ParseEncoding(tc.Encoding); err == nil {
		if v, ok := predraster.DefaultNoData(enc); ok {
			noData = v
		}
	}

	for y := range tc.Height {
		for x := range tc.Width {
			v := pix.At(y*tc.Width + x)
			if v == noData || math.IsNaN(v) {
				continue
			}
			// dark is high
			g := 0.9
			if hi > lo {
				g = 0.9 - 0.7*(v-lo)/(hi-lo)
			}
			page.SetFillColor(color.DeviceGray(g))
			page.Rectangle(float64(x)*cell, float64(y)*cell, cell, cell)
			page.Fill()
		}
	}

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1)
	for cmd, pts := range diskOutline(tc) {
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

// diskOutline returns a polygon approximating the transmitter disk, in
// page coordinates.
func diskOutline(tc testcases.TestCase) path.Path {
	const n = 72
	toPage := func(p vec.Vec2) vec.Vec2 {
		return vec.Vec2{
			X: (p.X - tc.Extent.LLx) / tc.Resolution * cell,
			Y: (tc.Extent.URy - p.Y) / tc.Resolution * cell,
		}
	}
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i := range n {
			phi := 2 * math.Pi * float64(i) / n
			p := toPage(vec.Vec2{
				X: tc.Transmitter.X + tc.Radius*math.Cos(phi),
				Y: tc.Transmitter.Y + tc.Radius*math.Sin(phi),
			})
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{p}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// valueRange returns the smallest and largest pixel value other than the
// no-data value.
func valueRange(pix predraster.Buffer, noData *float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := range pix.Len() {
		v := pix.At(i)
		if noData != nil && v == *noData || math.IsNaN(v) {
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}
