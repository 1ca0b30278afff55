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
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// Encoding identifies the numeric type of the pixels in a band.
type Encoding int

// The supported pixel encodings.
const (
	Uint8 Encoding = iota + 1
	Int16
	Uint16
	Int32
	Uint32
	Float32
	Float64
)

var encodingNames = [...]string{
	Uint8:   "uint8",
	Int16:   "int16",
	Uint16:  "uint16",
	Int32:   "int32",
	Uint32:  "uint32",
	Float32: "float32",
	Float64: "float64",
}

// gdalNames are the data type names used by GDAL drivers.
var gdalNames = map[string]Encoding{
	"byte":    Uint8,
	"int16":   Int16,
	"uint16":  Uint16,
	"int32":   Int32,
	"uint32":  Uint32,
	"float32": Float32,
	"float64": Float64,
}

// Valid reports whether e is one of the seven supported encodings.
func (e Encoding) Valid() bool {
	return e >= Uint8 && e <= Float64
}

func (e Encoding) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
	return encodingNames[e]
}

// Size returns the number of bytes per pixel, or 0 for an invalid encoding.
func (e Encoding) Size() int {
	switch e {
	case Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Float64:
		return 8
	default:
		return 0
	}
}

// ParseEncoding converts an encoding name to an Encoding.
// Both the Go type names ("int16") and the GDAL names ("Int16", "Byte")
// are accepted, ignoring case.
func ParseEncoding(name string) (Encoding, error) {
	lower := strings.ToLower(name)
	for e := Uint8; e <= Float64; e++ {
		if encodingNames[e] == lower {
			return e, nil
		}
	}
	if e, ok := gdalNames[lower]; ok {
		return e, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
}

// Number is the set of Go types backing the supported encodings.
type Number interface {
	uint8 | int16 | uint16 | int32 | uint32 | float32 | float64
}

// Buffer is a packed, row-major pixel buffer of a single encoding.
// The only implementations are the Pixels types; use [NewBuffer] to
// allocate one for a runtime encoding and [As] to get at the elements.
type Buffer interface {
	// Encoding returns the pixel encoding of the buffer.
	Encoding() Encoding

	// Len returns the number of pixels.
	Len() int

	// At returns pixel i converted to float64.
	At(i int) float64

	// Set stores v at pixel i, saturating to the range of the encoding.
	Set(i int, v float64)

	// Slice returns the pixels [lo, hi) sharing storage with the buffer.
	Slice(lo, hi int) Buffer

	// Bytes returns a little-endian copy of the pixel data.
	Bytes() []byte

	fill(v float64)
	copyRect(src Buffer, srcOff, srcStride, dstOff, dstStride, width, height int)
	decode(src []byte, srcEnc Encoding) error
	postProcessRow(off, width int, seg RowSegment, nd noData, vr valueRange)
}

// Pixels is a Buffer holding pixels of type T.
type Pixels[T Number] []T

// NewBuffer allocates a zeroed buffer of n pixels with encoding enc.
func NewBuffer(enc Encoding, n int) (Buffer, error) {
	switch enc {
	case Uint8:
		return make(Pixels[uint8], n), nil
	case Int16:
		return make(Pixels[int16], n), nil
	case Uint16:
		return make(Pixels[uint16], n), nil
	case Int32:
		return make(Pixels[int32], n), nil
	case Uint32:
		return make(Pixels[uint32], n), nil
	case Float32:
		return make(Pixels[float32], n), nil
	case Float64:
		return make(Pixels[float64], n), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedEncoding, enc)
	}
}

// As returns the elements of b if b holds pixels of type T.
func As[T Number](b Buffer) ([]T, bool) {
	p, ok := b.(Pixels[T])
	return p, ok
}

// Encoding implements the [Buffer] interface.
func (p Pixels[T]) Encoding() Encoding {
	return encodingOf[T]()
}

// Len implements the [Buffer] interface.
func (p Pixels[T]) Len() int {
	return len(p)
}

// At implements the [Buffer] interface.
func (p Pixels[T]) At(i int) float64 {
	return float64(p[i])
}

// Set implements the [Buffer] interface.
func (p Pixels[T]) Set(i int, v float64) {
	p[i] = fromFloat[T](v)
}

// Slice implements the [Buffer] interface.
func (p Pixels[T]) Slice(lo, hi int) Buffer {
	return p[lo:hi:hi]
}

// Bytes implements the [Buffer] interface.
func (p Pixels[T]) Bytes() []byte {
	size := encodingOf[T]().Size()
	out := make([]byte, len(p)*size)
	for i, v := range p {
		b := out[i*size:]
		switch x := any(v).(type) {
		case uint8:
			b[0] = x
		case int16:
			binary.LittleEndian.PutUint16(b, uint16(x))
		case uint16:
			binary.LittleEndian.PutUint16(b, x)
		case int32:
			binary.LittleEndian.PutUint32(b, uint32(x))
		case uint32:
			binary.LittleEndian.PutUint32(b, x)
		case float32:
			binary.LittleEndian.PutUint32(b, math.Float32bits(x))
		case float64:
			binary.LittleEndian.PutUint64(b, math.Float64bits(x))
		}
	}
	return out
}

func (p Pixels[T]) fill(v float64) {
	t := fromFloat[T](v)
	for i := range p {
		p[i] = t
	}
}

// copyRect copies a width×height rectangle from src. Offsets and strides
// are in pixels. src must have the same encoding as p.
func (p Pixels[T]) copyRect(src Buffer, srcOff, srcStride, dstOff, dstStride, width, height int) {
	s := src.(Pixels[T])
	for y := range height {
		from := srcOff + y*srcStride
		to := dstOff + y*dstStride
		copy(p[to:to+width], s[from:from+width])
	}
}

func encodingOf[T Number]() Encoding {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return Uint8
	case int16:
		return Int16
	case uint16:
		return Uint16
	case int32:
		return Int32
	case uint32:
		return Uint32
	case float32:
		return Float32
	default:
		return Float64
	}
}

// limits returns the representable range of T. For floating point
// types, isInt is false and NaN and infinities pass through unchanged.
func limits[T Number]() (lo, hi float64, isInt bool) {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 0, math.MaxUint8, true
	case int16:
		return math.MinInt16, math.MaxInt16, true
	case uint16:
		return 0, math.MaxUint16, true
	case int32:
		return math.MinInt32, math.MaxInt32, true
	case uint32:
		return 0, math.MaxUint32, true
	case float32:
		return -math.MaxFloat32, math.MaxFloat32, false
	default:
		return math.Inf(-1), math.Inf(1), false
	}
}

// fromFloat converts v to T, saturating at the limits of T.
// Integer conversions truncate towards zero; NaN becomes 0 for integer
// types.
func fromFloat[T Number](v float64) T {
	lo, hi, isInt := limits[T]()
	switch {
	case math.IsNaN(v):
		if isInt {
			return 0
		}
	case math.IsInf(v, 0) && !isInt:
		// infinities are representable
	case v < lo:
		v = lo
	case v > hi:
		v = hi
	}
	return T(v)
}
