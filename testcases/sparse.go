package testcases

var sparseCases = []TestCase{
	{
		// the edge blocks reach beyond the 3×3 raster
		Name:        "uint8_no_tiles",
		Width:       3,
		Height:      3,
		BlockWidth:  2,
		BlockHeight: 2,
		Encoding:    "uint8",
		Section:     2,
		Extent:      square(3),
		Transmitter: pt(1.5, 1.5),
		Resolution:  1,
		Radius:      5,
		Want: []float64{
			200, 200, 200,
			200, 200, 200,
			200, 200, 200,
		},
	},
}
