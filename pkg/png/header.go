package png

import (
	"encoding/binary"
	"fmt"
)

// HeaderChunkType is a type of the image header chunk.
const HeaderChunkType = "IHDR"

const headerDataSize = 13

// ColorType is a PNG image colour type.
type ColorType uint8

// Colour types defined by the PNG standard.
const (
	ColorGrayscale      ColorType = 0
	ColorTruecolor      ColorType = 2
	ColorIndexed        ColorType = 3
	ColorGrayscaleAlpha ColorType = 4
	ColorTruecolorAlpha ColorType = 6
)

// String implements fmt.Stringer.
func (x ColorType) String() string {
	switch x {
	case ColorGrayscale:
		return "grayscale"
	case ColorTruecolor:
		return "truecolor"
	case ColorIndexed:
		return "indexed"
	case ColorGrayscaleAlpha:
		return "grayscale+alpha"
	case ColorTruecolorAlpha:
		return "truecolor+alpha"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(x))
	}
}

// Header is the image header carried by IHDR chunk. Values are reported as is,
// without checking allowed combinations.
type Header struct {
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         ColorType
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

// ParseHeader reads image header from the IHDR chunk.
func ParseHeader(c Chunk) (Header, error) {
	if typ := c.Type().String(); typ != HeaderChunkType {
		return Header{}, fmt.Errorf("%w: %s instead of %s", ErrInvalidChunkType, typ, HeaderChunkType)
	}

	if len(c.data) != headerDataSize {
		return Header{}, fmt.Errorf("%w: %s data is %d bytes instead of %d", ErrTruncated, HeaderChunkType, len(c.data), headerDataSize)
	}

	return Header{
		Width:             binary.BigEndian.Uint32(c.data),
		Height:            binary.BigEndian.Uint32(c.data[4:]),
		BitDepth:          c.data[8],
		ColorType:         ColorType(c.data[9]),
		CompressionMethod: c.data[10],
		FilterMethod:      c.data[11],
		InterlaceMethod:   c.data[12],
	}, nil
}
