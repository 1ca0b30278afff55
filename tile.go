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
	"sync"
)

// A TileProvider supplies the pixel data behind the blocks of a band.
//
// Tile returns the tile for block (col, row). A nil Tile with a nil error
// means that there is no data for this block. If the returned tile
// implements io.Closer, the caller closes it once the pixels are decoded.
type TileProvider interface {
	Tile(col, row int) (Tile, error)
}

// A Tile is a rectangle of pixels anchored at the top-left corner of a
// block. Tiles may be smaller than the block.
type Tile interface {
	// PixelCount returns the number of pixels in the tile.
	PixelCount() int

	// Region returns the tile dimensions in pixels.
	Region() (width, height int)

	// Decode writes the first dst.Len() pixels of the tile, in row-major
	// order, into dst, converting them to the encoding of dst.
	Decode(dst Buffer) error
}

// RawTile is a tile stored as packed little-endian pixels.
type RawTile struct {
	Width, Height int
	Encoding      Encoding
	Data          []byte
}

// NewRawTile packs the pixels of b into a width×height tile.
func NewRawTile(width, height int, b Buffer) (*RawTile, error) {
	if b.Len() != width*height {
		return nil, fmt.Errorf("tile %dx%d needs %d pixels, got %d",
			width, height, width*height, b.Len())
	}
	return &RawTile{
		Width:    width,
		Height:   height,
		Encoding: b.Encoding(),
		Data:     b.Bytes(),
	}, nil
}

// PixelCount implements the [Tile] interface.
func (t *RawTile) PixelCount() int {
	return t.Width * t.Height
}

// Region implements the [Tile] interface.
func (t *RawTile) Region() (width, height int) {
	return t.Width, t.Height
}

// Decode implements the [Tile] interface.
func (t *RawTile) Decode(dst Buffer) error {
	if dst.Len() > t.PixelCount() {
		return fmt.Errorf("%w: %d pixels requested from a %dx%d tile",
			ErrShortTile, dst.Len(), t.Width, t.Height)
	}
	return DecodeRaw(dst, t.Data, t.Encoding)
}

// MemTiles is an in-memory TileProvider.
// It is safe for concurrent use.
type MemTiles struct {
	mu    sync.RWMutex
	tiles map[[2]int]*RawTile
}

// NewMemTiles returns an empty MemTiles.
func NewMemTiles() *MemTiles {
	return &MemTiles{tiles: make(map[[2]int]*RawTile)}
}

// Put stores t as the tile for block (col, row). A nil tile removes the
// entry.
func (m *MemTiles) Put(col, row int, t *RawTile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t == nil {
		delete(m.tiles, [2]int{col, row})
		return
	}
	m.tiles[[2]int{col, row}] = t
}

// Len returns the number of stored tiles.
func (m *MemTiles) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tiles)
}

// Tile implements the [TileProvider] interface.
func (m *MemTiles) Tile(col, row int) (Tile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tiles[[2]int{col, row}]
	if !ok {
		return nil, nil
	}
	return t, nil
}
