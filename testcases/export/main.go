// Command export writes the test case definitions, together with the
// rasters read from them, to JSON.
// Run from the go-predraster module root directory.
package main

import (
	"encoding/json"
	"maps"
	"math"
	"os"
	"slices"

	"seehuhn.de/go/predraster"
	"seehuhn.de/go/predraster/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name        string     `json:"name"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	BlockWidth  int        `json:"block_width"`
	BlockHeight int        `json:"block_height"`
	Encoding    string     `json:"encoding"`
	Section     int        `json:"section"`
	NoData      *float64   `json:"no_data,omitempty"`
	Extent      [4]float64 `json:"extent"`
	Transmitter [2]float64 `json:"transmitter"`
	Resolution  float64    `json:"resolution"`
	Radius      float64    `json:"radius"`
	Tiles       []jsonTile `json:"tiles"`
	Raster      []*float64 `json:"raster"` // null for NaN
}

type jsonTile struct {
	Col    int       `json:"col"`
	Row    int       `json:"row"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Values []float64 `json:"values"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:        category + "_" + tc.Name,
		Width:       tc.Width,
		Height:      tc.Height,
		BlockWidth:  tc.BlockWidth,
		BlockHeight: tc.BlockHeight,
		Encoding:    tc.Encoding,
		Section:     tc.Section,
		Extent:      [4]float64{tc.Extent.LLx, tc.Extent.LLy, tc.Extent.URx, tc.Extent.URy},
		Transmitter: [2]float64{tc.Transmitter.X, tc.Transmitter.Y},
		Resolution:  tc.Resolution,
		Radius:      tc.Radius,
	}
	if tc.NoData != nil && !math.IsNaN(*tc.NoData) {
		jtc.NoData = tc.NoData
	}
	for _, t := range tc.Tiles {
		jtc.Tiles = append(jtc.Tiles, jsonTile(t))
	}

	pix, err := predraster.RenderExample(tc)
	if err != nil {
		return jtc, err
	}
	jtc.Raster = make([]*float64, pix.Len())
	for i := range jtc.Raster {
		if v := pix.At(i); !math.IsNaN(v) {
			jtc.Raster[i] = &v
		}
	}
	return jtc, nil
}
