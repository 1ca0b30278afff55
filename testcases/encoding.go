package testcases

import (
	"math"

	"seehuhn.de/go/geom/rect"
)

var encodingCases = []TestCase{
	{
		// the angle range saturates to [0, 18000] for unsigned pixels
		Name:        "uint16_angles",
		Width:       3,
		Height:      2,
		BlockWidth:  3,
		BlockHeight: 2,
		Encoding:    "uint16",
		Section:     1,
		NoData:      nd(65535),
		Extent:      rect.Rect{LLx: 0, LLy: 0, URx: 3, URy: 2},
		Transmitter: pt(1.5, 1),
		Resolution:  1,
		Radius:      10,
		Tiles: []Tile{
			{Col: 0, Row: 0, Width: 3, Height: 2, Values: []float64{
				0, 65535, 20000,
				17999, 18000, 18001,
			}},
		},
		Want: []float64{
			0, 65535, 18000,
			17999, 18000, 18000,
		},
	},
	{
		Name:        "float64_nan_nodata",
		Width:       2,
		Height:      1,
		BlockWidth:  2,
		BlockHeight: 1,
		Encoding:    "float64",
		Section:     0,
		NoData:      nd(math.NaN()),
		Extent:      rect.Rect{LLx: 0, LLy: 0, URx: 2, URy: 1},
		Transmitter: pt(0.5, 0.5),
		Resolution:  1,
		Radius:      0.6,
		Tiles: []Tile{
			{Col: 0, Row: 0, Width: 2, Height: 1, Values: []float64{-5, 7}},
		},
		Want: []float64{0, math.NaN()},
	},
	{
		// no valid range and no no-data value: pixels pass unchanged
		Name:        "int32_unmasked",
		Width:       2,
		Height:      2,
		BlockWidth:  2,
		BlockHeight: 2,
		Encoding:    "int32",
		Section:     5,
		Extent:      square(2),
		Transmitter: pt(0.5, 1.5),
		Resolution:  1,
		Radius:      0.5,
		Tiles: []Tile{
			{Col: 0, Row: 0, Width: 2, Height: 2, Values: []float64{
				-100000, 5,
				7, 123456,
			}},
		},
		Want: []float64{
			-100000, 5,
			7, 123456,
		},
	},
}
