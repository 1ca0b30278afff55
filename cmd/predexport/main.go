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

// Command predexport writes one section of a prediction raster to a
// 16-bit grayscale TIFF file.
//
// Usage:
//
//	predexport -config raster.json -section 0 -out pathloss.tif
//
// Valid pixels are scaled linearly from the value range of the section
// (or the observed minimum and maximum, for sections without a range) to
// 1..65535. No-data pixels become 0.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/tiff"

	"seehuhn.de/go/predraster"
	"seehuhn.de/go/predraster/internal/config"
	"seehuhn.de/go/predraster/tilestore"
)

var (
	configPath = flag.String("config", "", "prediction raster descriptor (.json)")
	section    = flag.Int("section", 0, "section to export")
	outPath    = flag.String("out", "", "output TIFF file")
	printStats = flag.Bool("stats", false, "print statistics of the valid pixels")
	verbose    = flag.Bool("v", false, "log debug messages")
)

func main() {
	flag.Parse()
	if *configPath == "" || *outPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	predraster.SetLogger(logger)

	if err := run(context.Background()); err != nil {
		logger.Error("export failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	desc, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	cfg, err := desc.BandConfig(*section)
	if err != nil {
		return err
	}

	store, err := tilestore.Open(desc.TileDB)
	if err != nil {
		return err
	}
	defer store.Close()

	band, err := predraster.NewBand(cfg, store.Section(*section))
	if err != nil {
		return err
	}

	pix, err := band.ReadRaster(ctx)
	if err != nil {
		return err
	}

	var stats *predraster.Stats
	if *printStats {
		stats, err = band.Statistics(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("valid pixels: %d\n", stats.Count)
		fmt.Printf("min %g  max %g  mean %g  stddev %g  median %g\n",
			stats.Min, stats.Max, stats.Mean, stats.StdDev, stats.Median)
	}

	lo, hi, ok := predraster.ValidRange(band.Section())
	if !ok {
		if stats == nil {
			stats, err = band.Statistics(ctx)
			if err != nil {
				return err
			}
		}
		lo, hi = stats.Min, stats.Max
	}

	img := toGray16(band, pix, lo, hi)
	return writeTIFF(*outPath, img)
}

// toGray16 maps the valid pixels of a raster linearly from [lo, hi] to
// 1..65535.
func toGray16(band *predraster.Band, pix predraster.Buffer, lo, hi float64) *image.Gray16 {
	g := band.Geometry()

	scale := 0.0
	if hi > lo {
		scale = 65534 / (hi - lo)
	}

	// the no-data value as stored in the band encoding
	noData, hasNoData := band.NoDataValue()
	if hasNoData {
		tmp, err := predraster.NewBuffer(band.Encoding(), 1)
		if err == nil {
			tmp.Set(0, noData)
			noData = tmp.At(0)
		}
	}

	img := image.NewGray16(image.Rect(0, 0, g.Width, g.Height))
	for y := range g.Height {
		for x := range g.Width {
			v := pix.At(y*g.Width + x)
			if hasNoData && v == noData || math.IsNaN(v) {
				continue
			}
			s := 1 + math.Round((min(max(v, lo), hi)-lo)*scale)
			img.SetGray16(x, y, color.Gray16{Y: uint16(s)})
		}
	}
	return img
}

func writeTIFF(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}
