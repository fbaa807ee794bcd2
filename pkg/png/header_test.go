package png_test

import (
	"encoding/binary"
	"testing"

	"github.com/nspcc-dev/pngme/pkg/png"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	p, err := png.Decode(encodeTestImage(t))
	require.NoError(t, err)

	c, ok := p.ChunkByType(png.HeaderChunkType)
	require.True(t, ok)

	hdr, err := png.ParseHeader(c)
	require.NoError(t, err)
	require.Equal(t, png.Header{
		Width:     2,
		Height:    3,
		BitDepth:  8,
		ColorType: png.ColorGrayscale,
	}, hdr)

	t.Run("custom", func(t *testing.T) {
		data := binary.BigEndian.AppendUint32(nil, 640)
		data = binary.BigEndian.AppendUint32(data, 480)
		data = append(data, 16, byte(png.ColorTruecolorAlpha), 0, 0, 1)

		hdr, err := png.ParseHeader(png.NewChunk(mustChunkType(t, "IHDR"), data))
		require.NoError(t, err)
		require.Equal(t, png.Header{
			Width:           640,
			Height:          480,
			BitDepth:        16,
			ColorType:       png.ColorTruecolorAlpha,
			InterlaceMethod: 1,
		}, hdr)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := png.ParseHeader(testChunk(t))
		require.ErrorIs(t, err, png.ErrInvalidChunkType)
	})

	t.Run("wrong size", func(t *testing.T) {
		_, err := png.ParseHeader(png.NewChunk(mustChunkType(t, "IHDR"), make([]byte, 12)))
		require.ErrorIs(t, err, png.ErrTruncated)
	})
}

func TestColorType_String(t *testing.T) {
	require.Equal(t, "grayscale", png.ColorGrayscale.String())
	require.Equal(t, "truecolor", png.ColorTruecolor.String())
	require.Equal(t, "indexed", png.ColorIndexed.String())
	require.Equal(t, "grayscale+alpha", png.ColorGrayscaleAlpha.String())
	require.Equal(t, "truecolor+alpha", png.ColorTruecolorAlpha.String())
	require.Equal(t, "unknown(5)", png.ColorType(5).String())
}
