package testcases

// The transmitter sits between the first two columns of a 4×4 raster with
// a radius which reaches the pixel centres of columns 0 and 1 in the two
// top rows only.
var clampCases = []TestCase{
	{
		Name:        "int16_pathloss",
		Width:       4,
		Height:      4,
		BlockWidth:  2,
		BlockHeight: 2,
		Encoding:    "int16",
		Section:     0,
		Extent:      square(4),
		Transmitter: pt(1, 3),
		Resolution:  1,
		Radius:      1,
		Tiles: []Tile{
			{Col: 0, Row: 0, Width: 2, Height: 2, Values: []float64{
				300, -50,
				1000, 5,
			}},
		},
		Want: []float64{
			200, 0, noData, noData,
			200, 5, noData, noData,
			noData, noData, noData, noData,
			noData, noData, noData, noData,
		},
	},
	{
		Name:        "int16_keeps_gaps",
		Width:       4,
		Height:      4,
		BlockWidth:  2,
		BlockHeight: 2,
		Encoding:    "int16",
		Section:     0,
		Extent:      square(4),
		Transmitter: pt(1, 3),
		Resolution:  1,
		Radius:      1,
		Tiles: []Tile{
			{Col: 0, Row: 0, Width: 2, Height: 2, Values: []float64{
				noData, 201,
				-1, noData,
			}},
		},
		Want: []float64{
			noData, 200, noData, noData,
			0, noData, noData, noData,
			noData, noData, noData, noData,
			noData, noData, noData, noData,
		},
	},
}
