package testcases

// The disk covers columns 2 and 3 of rows 1 and 2.
var partialCases = []TestCase{
	{
		Name:        "float32_top_left",
		Width:       4,
		Height:      4,
		BlockWidth:  2,
		BlockHeight: 2,
		Encoding:    "float32",
		Section:     0,
		Extent:      square(4),
		Transmitter: pt(3, 2),
		Resolution:  1,
		Radius:      1.4,
		Tiles: []Tile{
			{Col: 1, Row: 0, Width: 2, Height: 2, Values: []float64{
				10, 20,
				30, 40,
			}},
			{Col: 0, Row: 1, Width: 1, Height: 1, Values: []float64{8}},
			{Col: 1, Row: 1, Width: 2, Height: 1, Values: []float64{150.5, 300}},
		},
		Want: []float64{
			noData, noData, noData, noData,
			noData, noData, 30, 40,
			noData, noData, 150.5, 200,
			noData, noData, noData, noData,
		},
	},
}
