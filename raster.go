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
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ReadRaster reads all blocks of the band and returns the pixels of the
// whole raster in row-major order. Blocks are read concurrently; the
// first error stops the remaining reads.
func (b *Band) ReadRaster(ctx context.Context) (Buffer, error) {
	g := b.geom
	out, err := NewBuffer(b.enc, g.Width*g.Height)
	if err != nil {
		return nil, err
	}

	err = b.forEachBlock(ctx, func(col, row int, block Buffer) {
		x0, y0 := g.BlockOrigin(col, row)
		w, h := g.visible(col, row)
		out.copyRect(block, 0, g.BlockWidth, y0*g.Width+x0, g.Width, w, h)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// forEachBlock reads every block of the band and calls fn for each of
// them. fn may be called concurrently.
func (b *Band) forEachBlock(ctx context.Context, fn func(col, row int, block Buffer)) error {
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	cols, rows := b.geom.BlocksPerRow(), b.geom.BlocksPerColumn()
loop:
	for row := range rows {
		for col := range cols {
			if gctx.Err() != nil {
				break loop
			}
			eg.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				block, _, err := b.ReadBlock(col, row)
				if err != nil {
					return err
				}
				fn(col, row, block)
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
