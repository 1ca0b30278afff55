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
	"fmt"
	"math"
	"slices"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises the valid pixels of a band.
type Stats struct {
	Count  int // number of valid pixels
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64 // sample standard deviation, 0 for a single pixel
	Median float64
}

// Statistics computes summary statistics over all pixels inside the
// raster which do not hold the no-data value.
func (b *Band) Statistics(ctx context.Context) (*Stats, error) {
	g := b.geom

	nd := b.currentNoData()
	if nd.ok {
		nd.value = asEncoded(b.enc, nd.value)
	}

	var mu sync.Mutex
	var values []float64
	err := b.forEachBlock(ctx, func(col, row int, block Buffer) {
		w, h := g.visible(col, row)

		var local []float64
		for y := range h {
			for x := range w {
				v := block.At(y*g.BlockWidth + x)
				if nd.ok && (v == nd.value || math.IsNaN(v) && math.IsNaN(nd.value)) {
					continue
				}
				local = append(local, v)
			}
		}

		mu.Lock()
		values = append(values, local...)
		mu.Unlock()
	})
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("section %d: %w", b.section, ErrNoValidPixels)
	}

	slices.Sort(values)
	s := &Stats{
		Count:  len(values),
		Min:    floats.Min(values),
		Max:    floats.Max(values),
		Median: stat.Quantile(0.5, stat.Empirical, values, nil),
	}
	if len(values) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	} else {
		s.Mean = values[0]
	}
	return s, nil
}

// asEncoded returns v as it reads back after being stored with
// encoding enc.
func asEncoded(enc Encoding, v float64) float64 {
	tmp, err := NewBuffer(enc, 1)
	if err != nil {
		return v
	}
	tmp.Set(0, v)
	return tmp.At(0)
}
