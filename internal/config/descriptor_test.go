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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/predraster"
)

const sample = `{
	"transmitter": {"x_cm": 150050, "y_cm": 20000, "resolution_cm": 250, "radius_cm": 100000},
	"bounding_box": {"min_x": 1000, "min_y": 100, "max_x": 2001, "max_y": 350},
	"sections": [
		{"number": 0, "data_type": "Float32", "tile_width": 64, "tile_height": 32},
		{"number": 1, "data_type": "int16", "tile_width": 16, "tile_height": 16, "no_data": -32768}
	],
	"tile_db": "tiles.db"
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "pred.json", sample)
	d, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(filepath.Dir(path), "tiles.db"), d.TileDB)
	assert.Equal(t, 2.5, d.Resolution())
	assert.Equal(t, rect.Rect{LLx: 1000, LLy: 100, URx: 2001, URy: 350}, d.Extent())

	w, h := d.RasterSize()
	assert.Equal(t, 401, w) // 1001 m at 2.5 m, rounded up
	assert.Equal(t, 100, h)

	assert.Equal(t, predraster.Transmitter{
		Pos:        vec.Vec2{X: 1500.5, Y: 200},
		Resolution: 2.5,
		Radius:     1000,
	}, d.Transmitter())
}

func TestBandConfig(t *testing.T) {
	d, err := Load(writeFile(t, "pred.json", sample))
	require.NoError(t, err)

	cfg, err := d.BandConfig(1)
	require.NoError(t, err)
	assert.Equal(t, predraster.Int16, cfg.Encoding)
	assert.Equal(t, 1, cfg.Section)
	assert.Equal(t, predraster.Geometry{Width: 401, Height: 100, BlockWidth: 16, BlockHeight: 16}, cfg.Geometry)
	require.NotNil(t, cfg.NoData)
	assert.Equal(t, -32768.0, *cfg.NoData)

	cfg, err = d.BandConfig(0)
	require.NoError(t, err)
	assert.Equal(t, predraster.Float32, cfg.Encoding)
	assert.Nil(t, cfg.NoData)

	_, err = d.BandConfig(7)
	assert.Error(t, err)

	band, err := predraster.NewBand(cfg, predraster.NewMemTiles())
	require.NoError(t, err)
	assert.Positive(t, band.Coverage().Count(cfg.Geometry.Width))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "pred.yaml", sample))
	assert.ErrorContains(t, err, ".json")

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "broken.json", `{"transmitter": `))
	assert.ErrorContains(t, err, "parse")

	big := `{"tile_db": "` + strings.Repeat("x", maxFileSize) + `"}`
	_, err = Load(writeFile(t, "big.json", big))
	assert.ErrorContains(t, err, "too large")
}

func TestValidate(t *testing.T) {
	cases := map[string]func(d *Descriptor){
		"resolution":  func(d *Descriptor) { d.Params.ResolutionCm = 0 },
		"radius":      func(d *Descriptor) { d.Params.RadiusCm = -1 },
		"empty box":   func(d *Descriptor) { d.BoundingBox.MaxX = d.BoundingBox.MinX },
		"no sections": func(d *Descriptor) { d.Sections = nil },
		"duplicate":   func(d *Descriptor) { d.Sections[1].Number = 0 },
		"data type":   func(d *Descriptor) { d.Sections[0].DataType = "CInt16" },
		"tile size":   func(d *Descriptor) { d.Sections[1].TileHeight = 0 },
	}
	for name, modify := range cases {
		t.Run(name, func(t *testing.T) {
			d, err := Load(writeFile(t, "pred.json", sample))
			require.NoError(t, err)
			require.NoError(t, d.Validate())

			modify(d)
			assert.Error(t, d.Validate())
		})
	}

	d, err := Load(writeFile(t, "pred.json", sample))
	require.NoError(t, err)
	d.Sections[0].DataType = "complex"
	assert.ErrorIs(t, d.Validate(), predraster.ErrUnsupportedEncoding)
}
