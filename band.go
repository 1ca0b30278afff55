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
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"

	"seehuhn.de/go/geom/rect"
)

// Config describes one band of a prediction raster.
type Config struct {
	Geometry Geometry
	Encoding Encoding

	// Section selects the valid value range, see [ValidRange].
	Section int

	// Extent is the bounding box of the raster in world units.
	Extent rect.Rect

	// Transmitter determines the coverage disk. It is ignored if
	// Coverage is set.
	Transmitter Transmitter

	// Coverage optionally supplies precomputed row segments.
	Coverage *Coverage

	// NoData overrides the default no-data value of the encoding.
	NoData *float64
}

// Band reads blocks of one section of a prediction raster.
// The methods of a Band are safe for concurrent use.
type Band struct {
	geom     Geometry
	enc      Encoding
	section  int
	tiles    TileProvider
	coverage *Coverage
	valid    valueRange

	mu     sync.RWMutex
	noData noData
}

// NewBand creates a band reading its pixels from tiles. The coverage
// segments for all raster rows are computed here.
func NewBand(cfg Config, tiles TileProvider) (*Band, error) {
	if err := cfg.Geometry.Validate(); err != nil {
		return nil, err
	}
	if !cfg.Encoding.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedEncoding, cfg.Encoding)
	}

	b := &Band{
		geom:     cfg.Geometry,
		enc:      cfg.Encoding,
		section:  cfg.Section,
		tiles:    tiles,
		coverage: cfg.Coverage,
	}
	b.valid.lo, b.valid.hi, b.valid.ok = ValidRange(cfg.Section)

	if cfg.NoData != nil {
		b.noData = noData{value: *cfg.NoData, ok: true}
	} else {
		b.noData.value, b.noData.ok = DefaultNoData(cfg.Encoding)
	}

	if b.coverage == nil {
		if cfg.Transmitter.Resolution <= 0 {
			return nil, fmt.Errorf("invalid resolution %g", cfg.Transmitter.Resolution)
		}
		b.coverage = ComputeCoverage(cfg.Transmitter, cfg.Extent, cfg.Geometry.Height)
	}

	Logger().Info("band created",
		slog.Int("section", cfg.Section),
		slog.String("encoding", cfg.Encoding.String()),
		slog.Int("width", cfg.Geometry.Width),
		slog.Int("height", cfg.Geometry.Height),
		slog.Int("covered", b.coverage.Count(cfg.Geometry.Width)))

	return b, nil
}

// Geometry returns the raster and block dimensions of the band.
func (b *Band) Geometry() Geometry {
	return b.geom
}

// Encoding returns the pixel encoding of the band.
func (b *Band) Encoding() Encoding {
	return b.enc
}

// Section returns the section number of the band.
func (b *Band) Section() int {
	return b.section
}

// Coverage returns the row segments of the band.
func (b *Band) Coverage() *Coverage {
	return b.coverage
}

// SetNoDataValue replaces the no-data value of the band.
func (b *Band) SetNoDataValue(v float64) {
	b.mu.Lock()
	b.noData = noData{value: v, ok: true}
	b.mu.Unlock()
}

// NoDataValue returns the no-data value of the band, if any.
func (b *Band) NoDataValue() (float64, bool) {
	nd := b.currentNoData()
	return nd.value, nd.ok
}

// IsNoData reports whether v, a pixel read from a buffer of the band,
// holds the no-data value.
func (b *Band) IsNoData(v float64) bool {
	nd := b.currentNoData()
	if !nd.ok {
		return false
	}
	ndv := asEncoded(b.enc, nd.value)
	return v == ndv || math.IsNaN(v) && math.IsNaN(ndv)
}

func (b *Band) currentNoData() noData {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.noData
}

// ReadBlock reads, masks and clamps block (col, row). The second return
// value is false if the provider had no tile for the block, in which case
// every pixel holds the no-data value.
func (b *Band) ReadBlock(col, row int) (Buffer, bool, error) {
	buf, err := NewBuffer(b.enc, b.geom.BlockPixels())
	if err != nil {
		return nil, false, err
	}
	present, err := b.ReadBlockInto(col, row, buf)
	if err != nil {
		return nil, false, err
	}
	return buf, present, nil
}

// ReadBlockInto is like ReadBlock but writes into dst, which must have
// the encoding of the band and hold one block. Where a tile is smaller
// than the block, pixels outside the tile keep their previous value until
// post-processing overwrites them. On error the content of dst is
// unspecified.
func (b *Band) ReadBlockInto(col, row int, dst Buffer) (bool, error) {
	if dst.Encoding() != b.enc || dst.Len() != b.geom.BlockPixels() {
		return false, fmt.Errorf("block buffer is %d×%v, want %d×%v",
			dst.Len(), dst.Encoding(), b.geom.BlockPixels(), b.enc)
	}

	nd := b.currentNoData()
	present, err := b.assemble(col, row, dst, nd)
	if err != nil {
		return false, fmt.Errorf("block (%d,%d): %w", col, row, err)
	}
	if present {
		b.postProcess(col, row, dst, nd)
	}
	return present, nil
}

// PostProcess applies the coverage mask and the valid range of the band to
// block (col, row). ReadBlock calls this for every block with a tile;
// applying it again leaves the block unchanged.
func (b *Band) PostProcess(col, row int, dst Buffer) error {
	if dst.Encoding() != b.enc || dst.Len() != b.geom.BlockPixels() {
		return fmt.Errorf("block buffer is %d×%v, want %d×%v",
			dst.Len(), dst.Encoding(), b.geom.BlockPixels(), b.enc)
	}
	b.postProcess(col, row, dst, b.currentNoData())
	return nil
}

func (b *Band) postProcess(col, row int, dst Buffer, nd noData) {
	x0, y0 := b.geom.BlockOrigin(col, row)
	w := b.geom.BlockWidth
	for y := range b.geom.BlockHeight {
		seg := b.coverage.BlockSegment(x0, y0+y, w)
		dst.postProcessRow(y*w, w, seg, nd, b.valid)
	}
}

// assemble fills dst from the tile of block (col, row) and reports
// whether there was a tile.
func (b *Band) assemble(col, row int, dst Buffer, nd noData) (present bool, err error) {
	if !b.geom.Contains(col, row) {
		return false, fmt.Errorf("%w: grid is %dx%d", ErrBlockOutOfRange,
			b.geom.BlocksPerRow(), b.geom.BlocksPerColumn())
	}

	tile, err := b.tiles.Tile(col, row)
	if err != nil {
		return false, err
	}
	if tile == nil {
		if !nd.ok {
			return false, ErrNoDataUndefined
		}
		Logger().Debug("missing tile", slog.Int("col", col), slog.Int("row", row))
		dst.fill(nd.value)
		return false, nil
	}
	if c, ok := tile.(io.Closer); ok {
		defer func() {
			if cerr := c.Close(); err == nil {
				err = cerr
			}
		}()
	}

	if tile.PixelCount() == b.geom.BlockPixels() {
		return true, tile.Decode(dst)
	}
	return true, b.placePartial(col, row, tile, dst)
}

// placePartial copies a tile smaller than the block into the top-left
// corner of dst.
func (b *Band) placePartial(col, row int, tile Tile, dst Buffer) error {
	tw, th := tile.Region()
	if tw < 0 || th < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidTile, tw, th)
	}
	if tw > b.geom.BlockWidth || th > b.geom.BlockHeight {
		return fmt.Errorf("%w: tile %dx%d, block %dx%d", ErrTileTooLarge,
			tw, th, b.geom.BlockWidth, b.geom.BlockHeight)
	}
	Logger().Debug("partial tile",
		slog.Int("col", col), slog.Int("row", row),
		slog.Int("width", tw), slog.Int("height", th))

	tmp, err := NewBuffer(b.enc, tw*th)
	if err != nil {
		return err
	}
	if err := tile.Decode(tmp); err != nil {
		return err
	}
	dst.copyRect(tmp, 0, tw, 0, b.geom.BlockWidth, tw, th)
	return nil
}
