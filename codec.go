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
)

// DecodeRaw converts packed little-endian pixels of encoding srcEnc into
// dst. Exactly dst.Len() pixels are written; src may be longer. Values
// outside the range of the destination encoding saturate.
func DecodeRaw(dst Buffer, src []byte, srcEnc Encoding) error {
	if !srcEnc.Valid() {
		return fmt.Errorf("%w: %v", ErrUnsupportedEncoding, srcEnc)
	}
	if need := dst.Len() * srcEnc.Size(); len(src) < need {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrShortTile, len(src), need)
	}
	return dst.decode(src, srcEnc)
}

// EncodeRaw packs b into little-endian bytes of encoding enc, saturating
// values which enc cannot represent.
func EncodeRaw(b Buffer, enc Encoding) ([]byte, error) {
	if b.Encoding() == enc {
		return b.Bytes(), nil
	}
	conv, err := NewBuffer(enc, b.Len())
	if err != nil {
		return nil, err
	}
	for i := range b.Len() {
		conv.Set(i, b.At(i))
	}
	return conv.Bytes(), nil
}

func (p Pixels[T]) decode(src []byte, srcEnc Encoding) error {
	switch srcEnc {
	case Uint8:
		for i := range p {
			p[i] = T(src[i])
		}
	case Int16:
		for i := range p {
			p[i] = fromFloat[T](float64(int16(binary.LittleEndian.Uint16(src[2*i:]))))
		}
	case Uint16:
		for i := range p {
			p[i] = fromFloat[T](float64(binary.LittleEndian.Uint16(src[2*i:])))
		}
	case Int32:
		for i := range p {
			p[i] = fromFloat[T](float64(int32(binary.LittleEndian.Uint32(src[4*i:]))))
		}
	case Uint32:
		for i := range p {
			p[i] = fromFloat[T](float64(binary.LittleEndian.Uint32(src[4*i:])))
		}
	case Float32:
		for i := range p {
			p[i] = fromFloat[T](float64(math.Float32frombits(binary.LittleEndian.Uint32(src[4*i:]))))
		}
	case Float64:
		for i := range p {
			p[i] = fromFloat[T](math.Float64frombits(binary.LittleEndian.Uint64(src[8*i:])))
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedEncoding, srcEnc)
	}
	return nil
}
