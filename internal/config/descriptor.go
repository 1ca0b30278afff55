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

// Package config loads the JSON descriptors of prediction rasters.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/predraster"
)

// maxFileSize limits the size of descriptor files.
const maxFileSize = 1 << 20

// Descriptor describes a prediction raster: the transmitter parameters
// of the prediction, the area covered by the raster, its sections and the
// database holding the tiles.
type Descriptor struct {
	Params      TransmitterParams `json:"transmitter"`
	BoundingBox BoundingBox       `json:"bounding_box"`
	Sections    []Section         `json:"sections"`

	// TileDB is the path of the tile database. Relative paths are
	// resolved against the directory of the descriptor file.
	TileDB string `json:"tile_db"`
}

// TransmitterParams holds the prediction parameters, in centimetres.
type TransmitterParams struct {
	XCm          int64 `json:"x_cm"`
	YCm          int64 `json:"y_cm"`
	ResolutionCm int64 `json:"resolution_cm"`
	RadiusCm     int64 `json:"radius_cm"`
}

// BoundingBox is the world extent of the raster, in metres.
type BoundingBox struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Section describes one band of the raster.
type Section struct {
	Number     int      `json:"number"`
	DataType   string   `json:"data_type"`
	TileWidth  int      `json:"tile_width"`
	TileHeight int      `json:"tile_height"`
	NoData     *float64 `json:"no_data,omitempty"`
}

// Load reads a descriptor from a JSON file.
// The file must have a .json extension and be at most 1 MiB.
func Load(path string) (*Descriptor, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("descriptor must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat descriptor: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("descriptor too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}

	d := &Descriptor{}
	if err := json.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("failed to parse descriptor JSON: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid descriptor: %w", err)
	}

	if d.TileDB != "" && d.TileDB != ":memory:" && !filepath.IsAbs(d.TileDB) {
		d.TileDB = filepath.Join(filepath.Dir(cleanPath), d.TileDB)
	}
	return d, nil
}

// Validate checks the descriptor for consistency.
func (d *Descriptor) Validate() error {
	if d.Params.ResolutionCm <= 0 {
		return fmt.Errorf("resolution_cm must be positive, got %d", d.Params.ResolutionCm)
	}
	if d.Params.RadiusCm < 0 {
		return fmt.Errorf("radius_cm must be non-negative, got %d", d.Params.RadiusCm)
	}
	if w, h := d.RasterSize(); w <= 0 || h <= 0 {
		return fmt.Errorf("invalid dimensions: %d x %d", w, h)
	}
	if len(d.Sections) == 0 {
		return fmt.Errorf("no sections")
	}

	seen := make(map[int]bool)
	for _, s := range d.Sections {
		if seen[s.Number] {
			return fmt.Errorf("duplicate section %d", s.Number)
		}
		seen[s.Number] = true

		if _, err := predraster.ParseEncoding(s.DataType); err != nil {
			return fmt.Errorf("section %d: %w", s.Number, err)
		}
		if s.TileWidth <= 0 || s.TileHeight <= 0 {
			return fmt.Errorf("section %d: invalid tile size %dx%d", s.Number, s.TileWidth, s.TileHeight)
		}
	}
	return nil
}

// Resolution returns the pixel size in metres.
func (d *Descriptor) Resolution() float64 {
	return float64(d.Params.ResolutionCm) / 100
}

// Extent returns the bounding box as a rectangle.
func (d *Descriptor) Extent() rect.Rect {
	b := d.BoundingBox
	return rect.Rect{LLx: b.MinX, LLy: b.MinY, URx: b.MaxX, URy: b.MaxY}
}

// RasterSize returns the raster dimensions in pixels. Partial pixels at
// the right and bottom edges count as whole pixels.
func (d *Descriptor) RasterSize() (width, height int) {
	res := d.Resolution()
	b := d.BoundingBox
	if res <= 0 {
		return 0, 0
	}
	return int(math.Ceil((b.MaxX - b.MinX) / res)), int(math.Ceil((b.MaxY - b.MinY) / res))
}

// Transmitter returns the transmitter geometry in metres.
func (d *Descriptor) Transmitter() predraster.Transmitter {
	p := d.Params
	return predraster.Transmitter{
		Pos:        vec.Vec2{X: float64(p.XCm) / 100, Y: float64(p.YCm) / 100},
		Resolution: float64(p.ResolutionCm) / 100,
		Radius:     float64(p.RadiusCm) / 100,
	}
}

// Section returns the description of section n.
func (d *Descriptor) Section(n int) (*Section, bool) {
	for i := range d.Sections {
		if d.Sections[i].Number == n {
			return &d.Sections[i], true
		}
	}
	return nil, false
}

// BandConfig returns the band configuration for section n.
func (d *Descriptor) BandConfig(n int) (predraster.Config, error) {
	s, ok := d.Section(n)
	if !ok {
		return predraster.Config{}, fmt.Errorf("no section %d", n)
	}
	enc, err := predraster.ParseEncoding(s.DataType)
	if err != nil {
		return predraster.Config{}, err
	}

	w, h := d.RasterSize()
	return predraster.Config{
		Geometry: predraster.Geometry{
			Width:       w,
			Height:      h,
			BlockWidth:  s.TileWidth,
			BlockHeight: s.TileHeight,
		},
		Encoding:    enc,
		Section:     s.Number,
		Extent:      d.Extent(),
		Transmitter: d.Transmitter(),
		NoData:      s.NoData,
	}, nil
}
