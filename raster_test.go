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

package predraster

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// newSmallBand returns a 3×3 int16 band with 2×2 blocks and no valid
// range. Pixels outside the raster hold 100.
func newSmallBand(t *testing.T) *Band {
	t.Helper()
	tiles := NewMemTiles()
	tiles.Put(0, 0, rawTile(t, Int16, 2, 2, 1, 2, 4, 5))
	tiles.Put(1, 0, rawTile(t, Int16, 2, 2, 3, 100, 6, 100))
	tiles.Put(0, 1, rawTile(t, Int16, 2, 2, 7, 8, 100, 100))
	tiles.Put(1, 1, rawTile(t, Int16, 2, 2, -9999, 100, 100, 100))

	b, err := NewBand(Config{
		Geometry: Geometry{Width: 3, Height: 3, BlockWidth: 2, BlockHeight: 2},
		Encoding: Int16,
		Section:  7,
		Coverage: NewCoverage([]RowSegment{{0, 3}, {0, 3}, {0, 3}}),
	}, tiles)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestReadRasterSmall(t *testing.T) {
	b := newSmallBand(t)
	buf, err := b.ReadRaster(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, -9999,
	}
	if d := cmp.Diff(want, pixels(buf)); d != "" {
		t.Errorf("raster mismatch (-want +got):\n%s", d)
	}
}

// TestReadRasterStitched checks that a raster read agrees with the
// individual block reads.
func TestReadRasterStitched(t *testing.T) {
	geom := Geometry{Width: 37, Height: 23, BlockWidth: 8, BlockHeight: 5}
	rng := rand.New(rand.NewPCG(1, 2))

	tiles := NewMemTiles()
	for row := range geom.BlocksPerColumn() {
		for col := range geom.BlocksPerRow() {
			if rng.IntN(5) == 0 {
				continue // missing
			}
			w := geom.BlockWidth - rng.IntN(3)
			h := geom.BlockHeight - rng.IntN(2)
			values := make([]float64, w*h)
			for i := range values {
				values[i] = rng.Float64()*260 - 30
			}
			tiles.Put(col, row, rawTile(t, Float32, w, h, values...))
		}
	}

	b, err := NewBand(Config{
		Geometry:    geom,
		Encoding:    Float32,
		Section:     SectionPathLoss,
		Extent:      rect.Rect{LLx: 0, LLy: 0, URx: 370, URy: 230},
		Transmitter: Transmitter{Pos: vec.Vec2{X: 150, Y: 110}, Resolution: 10, Radius: 140},
	}, tiles)
	if err != nil {
		t.Fatal(err)
	}

	raster, err := b.ReadRaster(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if raster.Len() != geom.Width*geom.Height {
		t.Fatalf("raster has %d pixels", raster.Len())
	}

	for row := range geom.BlocksPerColumn() {
		for col := range geom.BlocksPerRow() {
			block, _, err := b.ReadBlock(col, row)
			if err != nil {
				t.Fatal(err)
			}
			x0, y0 := geom.BlockOrigin(col, row)
			for y := range geom.BlockHeight {
				for x := range geom.BlockWidth {
					if x0+x >= geom.Width || y0+y >= geom.Height {
						continue
					}
					want := block.At(y*geom.BlockWidth + x)
					got := raster.At((y0+y)*geom.Width + x0 + x)
					if got != want {
						t.Fatalf("pixel (%d,%d): got %g, want %g", x0+x, y0+y, got, want)
					}
				}
			}
		}
	}
}

func TestReadRasterErrors(t *testing.T) {
	errDisk := errors.New("disk on fire")
	b := newTestBand(t, Int16, SectionPathLoss, failingTiles{errDisk}, leftColumns)
	if _, err := b.ReadRaster(context.Background()); !errors.Is(err, errDisk) {
		t.Errorf("got error %v, want %v", err, errDisk)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b = newSmallBand(t)
	if _, err := b.ReadRaster(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want %v", err, context.Canceled)
	}
}

func TestStatistics(t *testing.T) {
	b := newSmallBand(t)
	s, err := b.Statistics(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	// the no-data pixel and the pixels outside the raster are ignored
	want := &Stats{
		Count:  8,
		Min:    1,
		Max:    8,
		Mean:   4.5,
		StdDev: math.Sqrt(6),
		Median: 4,
	}
	approx := cmp.Comparer(func(a, b float64) bool { return math.Abs(a-b) < 1e-12 })
	if d := cmp.Diff(want, s, approx); d != "" {
		t.Errorf("statistics mismatch (-want +got):\n%s", d)
	}
}

func TestStatisticsSinglePixel(t *testing.T) {
	tiles := NewMemTiles()
	tiles.Put(0, 0, rawTile(t, Float32, 1, 1, 42.5))
	b, err := NewBand(Config{
		Geometry: Geometry{Width: 1, Height: 1, BlockWidth: 1, BlockHeight: 1},
		Encoding: Float32,
		Section:  SectionPathLoss,
		Coverage: NewCoverage([]RowSegment{{0, 1}}),
	}, tiles)
	if err != nil {
		t.Fatal(err)
	}

	s, err := b.Statistics(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := &Stats{Count: 1, Min: 42.5, Max: 42.5, Mean: 42.5, Median: 42.5}
	if d := cmp.Diff(want, s); d != "" {
		t.Errorf("statistics mismatch (-want +got):\n%s", d)
	}
}

func TestStatisticsEmpty(t *testing.T) {
	b := newTestBand(t, Int16, SectionPathLoss, NewMemTiles(), leftColumns)
	_, err := b.Statistics(context.Background())
	if !errors.Is(err, ErrNoValidPixels) {
		t.Errorf("got error %v, want %v", err, ErrNoValidPixels)
	}
}
