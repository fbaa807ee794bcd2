package png_test

import (
	"bytes"
	"image"
	stdpng "image/png"
	"testing"

	"github.com/nspcc-dev/pngme/pkg/png"
	"github.com/stretchr/testify/require"
)

// encodeTestImage returns real PNG file encoded by the standard library.
func encodeTestImage(t testing.TB) []byte {
	var buf bytes.Buffer
	require.NoError(t, stdpng.Encode(&buf, image.NewGray(image.Rect(0, 0, 2, 3))))
	return buf.Bytes()
}

func chunkTypes(p *png.PNG) []string {
	var res []string
	for _, c := range p.Chunks() {
		res = append(res, c.Type().String())
	}
	return res
}

func TestDecode(t *testing.T) {
	b := encodeTestImage(t)

	p, err := png.Decode(b)
	require.NoError(t, err)

	typs := chunkTypes(p)
	require.GreaterOrEqual(t, len(typs), 3)
	require.Equal(t, "IHDR", typs[0])
	require.Equal(t, "IEND", typs[len(typs)-1])
	require.Contains(t, typs, "IDAT")

	require.Equal(t, b, p.Marshal())

	t.Run("empty", func(t *testing.T) {
		p, err := png.Decode(png.Signature[:])
		require.NoError(t, err)
		require.Empty(t, p.Chunks())
		require.Equal(t, png.Signature[:], p.Marshal())
	})

	t.Run("bad signature", func(t *testing.T) {
		for i := 0; i < png.SignatureSize; i++ {
			bad := append([]byte(nil), b...)
			bad[i] ^= 0x01

			_, err := png.Decode(bad)
			require.ErrorIs(t, err, png.ErrBadSignature, i)
		}

		_, err := png.Decode([]byte("definitely not a PNG file"))
		require.ErrorIs(t, err, png.ErrBadSignature)
	})

	t.Run("shorter than signature", func(t *testing.T) {
		_, err := png.Decode(png.Signature[:png.SignatureSize-1])
		require.ErrorIs(t, err, png.ErrTruncated)

		_, err = png.Decode(nil)
		require.ErrorIs(t, err, png.ErrTruncated)
	})

	t.Run("trailing garbage", func(t *testing.T) {
		for _, tail := range [][]byte{
			{0},
			[]byte("12345678901"),
		} {
			_, err := png.Decode(append(append([]byte(nil), b...), tail...))
			require.ErrorIs(t, err, png.ErrTruncated)
		}
	})

	t.Run("truncated file", func(t *testing.T) {
		_, err := png.Decode(b[:len(b)-1])
		require.ErrorIs(t, err, png.ErrTruncated)
	})

	t.Run("corrupted chunk", func(t *testing.T) {
		bad := append([]byte(nil), b...)
		bad[png.SignatureSize+png.ChunkHeaderSize] ^= 0xFF // first IHDR data byte

		_, err := png.Decode(bad)
		require.ErrorIs(t, err, png.ErrCRCMismatch)
	})

	t.Run("chunks after IEND", func(t *testing.T) {
		extra := png.NewChunk(mustChunkType(t, "ruSt"), []byte("after the end"))

		p, err := png.Decode(append(append([]byte(nil), b...), extra.Marshal()...))
		require.NoError(t, err)

		chunks := p.Chunks()
		require.Equal(t, extra, chunks[len(chunks)-1])
		require.Equal(t, "IEND", chunks[len(chunks)-2].Type().String())
	})
}

func TestPNG_RoundTrip(t *testing.T) {
	p := png.New(
		png.NewChunk(mustChunkType(t, "FrSt"), []byte("I am the first chunk")),
		png.NewChunk(mustChunkType(t, "miDl"), []byte("I am another chunk")),
		png.NewChunk(mustChunkType(t, "LASt"), nil),
	)

	res, err := png.Decode(p.Marshal())
	require.NoError(t, err)
	require.Equal(t, p.Chunks(), res.Chunks())
	require.Equal(t, p.Marshal(), res.Marshal())
}

func TestPNG_Chunks(t *testing.T) {
	p := png.New(testChunk(t))

	cs := p.Chunks()
	cs[0] = png.NewChunk(mustChunkType(t, "IEND"), nil)

	require.Equal(t, testChunk(t), p.Chunks()[0])
}

func TestPNG_AppendFindRemove(t *testing.T) {
	p, err := png.Decode(encodeTestImage(t))
	require.NoError(t, err)

	before := p.Chunks()

	_, ok := p.ChunkByType("TEST")
	require.False(t, ok)

	_, err = p.RemoveChunkByType("TEST")
	require.ErrorIs(t, err, png.ErrChunkNotFound)

	p.AppendChunk(png.NewChunk(mustChunkType(t, "TEST"), []byte("secret!!")))

	p, err = png.Decode(p.Marshal())
	require.NoError(t, err)

	c, ok := p.ChunkByType("TEST")
	require.True(t, ok)

	s, err := c.DataAsText()
	require.NoError(t, err)
	require.Equal(t, "secret!!", s)

	removed, err := p.RemoveChunkByType("TEST")
	require.NoError(t, err)
	require.Equal(t, c, removed)

	_, ok = p.ChunkByType("TEST")
	require.False(t, ok)
	require.Equal(t, before, p.Chunks())
}

func TestPNG_ChunkByType(t *testing.T) {
	first := png.NewChunk(mustChunkType(t, "ruSt"), []byte("first"))
	second := png.NewChunk(mustChunkType(t, "ruSt"), []byte("second"))
	p := png.New(png.NewChunk(mustChunkType(t, "IHDR"), nil), first, second)

	c, ok := p.ChunkByType("ruSt")
	require.True(t, ok)
	require.Equal(t, first, c)

	for _, name := range []string{"RUST", "rust", "ruS", "ruStt", ""} {
		_, ok = p.ChunkByType(name)
		require.False(t, ok, name)
	}
}

func TestPNG_RemoveChunkByType(t *testing.T) {
	a := png.NewChunk(mustChunkType(t, "aaAa"), []byte("a"))
	b1 := png.NewChunk(mustChunkType(t, "bbBb"), []byte("b1"))
	c := png.NewChunk(mustChunkType(t, "ccCc"), []byte("c"))
	b2 := png.NewChunk(mustChunkType(t, "bbBb"), []byte("b2"))

	p := png.New(a, b1, c, b2)

	res, err := p.RemoveChunkByType("bbBb")
	require.NoError(t, err)
	require.Equal(t, b1, res)
	require.Equal(t, []png.Chunk{a, c, b2}, p.Chunks())

	res, err = p.RemoveChunkByType("bbBb")
	require.NoError(t, err)
	require.Equal(t, b2, res)
	require.Equal(t, []png.Chunk{a, c}, p.Chunks())

	_, err = p.RemoveChunkByType("bbBb")
	require.ErrorIs(t, err, png.ErrChunkNotFound)
	require.Equal(t, []png.Chunk{a, c}, p.Chunks())
}
