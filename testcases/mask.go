package testcases

var maskCases = []TestCase{
	{
		// only column 0 of the two top rows is inside the disk
		Name:        "int16_one_column",
		Width:       4,
		Height:      4,
		BlockWidth:  2,
		BlockHeight: 2,
		Encoding:    "int16",
		Section:     0,
		Extent:      square(4),
		Transmitter: pt(0.5, 3),
		Resolution:  1,
		Radius:      0.9,
		Tiles: []Tile{
			{Col: 0, Row: 0, Width: 2, Height: 2, Values: []float64{
				300, -50,
				1000, 5,
			}},
		},
		Want: []float64{
			200, noData, noData, noData,
			200, noData, noData, noData,
			noData, noData, noData, noData,
			noData, noData, noData, noData,
		},
	},
	{
		// a tile outside the disk is masked completely
		Name:        "int16_outside",
		Width:       4,
		Height:      4,
		BlockWidth:  2,
		BlockHeight: 2,
		Encoding:    "int16",
		Section:     0,
		Extent:      square(4),
		Transmitter: pt(0.5, 3),
		Resolution:  1,
		Radius:      0.9,
		Tiles: []Tile{
			{Col: 1, Row: 1, Width: 2, Height: 2, Values: []float64{
				1, 2,
				3, 4,
			}},
		},
		Want: []float64{
			noData, noData, noData, noData,
			noData, noData, noData, noData,
			noData, noData, noData, noData,
			noData, noData, noData, noData,
		},
	},
}
