package png

import (
	"bytes"
	"fmt"
)

// SignatureSize is a length of the PNG signature in bytes.
const SignatureSize = 8

// Signature is a fixed prefix of any PNG file.
var Signature = [SignatureSize]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// PNG is an in-memory PNG file: the signature followed by an ordered list of
// chunks. PNG deals with chunk mechanics only, chunk semantics (e.g. IHDR
// first, IEND last) are up to the caller.
//
// PNG is not safe for concurrent use.
type PNG struct {
	chunks []Chunk
}

// New constructs PNG consisting of the given chunks in the given order.
func New(chunks ...Chunk) *PNG {
	res := &PNG{
		chunks: make([]Chunk, len(chunks)),
	}

	copy(res.chunks, chunks)

	return res
}

// Decode decodes PNG from the complete file contents. All bytes after the
// signature must form chunk records, there is no stop on IEND.
//
// Returns ErrBadSignature if buf does not start with Signature and
// ErrTruncated if it is shorter than the signature. Any chunk
// decoding failure (see DecodeChunk) aborts the whole process.
func Decode(buf []byte) (*PNG, error) {
	if len(buf) < SignatureSize {
		return nil, fmt.Errorf("%w: %d bytes is too short for the signature", ErrTruncated, len(buf))
	}

	if !bytes.Equal(buf[:SignatureSize], Signature[:]) {
		return nil, fmt.Errorf("%w: % x", ErrBadSignature, buf[:SignatureSize])
	}

	var (
		res PNG
		off = SignatureSize
	)

	for off < len(buf) {
		c, err := DecodeChunk(buf[off:])
		if err != nil {
			return nil, fmt.Errorf("decode chunk #%d at offset %d: %w", len(res.chunks), off, err)
		}

		res.chunks = append(res.chunks, c)
		off += c.Size()
	}

	return &res, nil
}

// Marshal encodes PNG into the file contents.
func (x *PNG) Marshal() []byte {
	size := SignatureSize
	for i := range x.chunks {
		size += x.chunks[i].Size()
	}

	res := make([]byte, 0, size)
	res = append(res, Signature[:]...)

	for i := range x.chunks {
		res = x.chunks[i].AppendMarshal(res)
	}

	return res
}

// Chunks returns all chunks in file order. Result may be freely modified.
func (x *PNG) Chunks() []Chunk {
	res := make([]Chunk, len(x.chunks))
	copy(res, x.chunks)

	return res
}

// AppendChunk adds chunk to the end of the file.
func (x *PNG) AppendChunk(c Chunk) {
	x.chunks = append(x.chunks, c)
}

// ChunkByType returns the first chunk which type's string representation is
// exactly name. The second value is false if there is no such chunk.
func (x *PNG) ChunkByType(name string) (Chunk, bool) {
	if i := x.indexOf(name); i >= 0 {
		return x.chunks[i], true
	}

	return Chunk{}, false
}

// RemoveChunkByType removes the first chunk which type's string
// representation is exactly name and returns it. Order of the remaining chunks
// is kept. Returns ErrChunkNotFound if there is no such chunk.
func (x *PNG) RemoveChunkByType(name string) (Chunk, error) {
	i := x.indexOf(name)
	if i < 0 {
		return Chunk{}, fmt.Errorf("%w: %s", ErrChunkNotFound, name)
	}

	res := x.chunks[i]

	x.chunks = append(x.chunks[:i], x.chunks[i+1:]...)

	return res, nil
}

func (x *PNG) indexOf(name string) int {
	for i := range x.chunks {
		if x.chunks[i].typ.String() == name {
			return i
		}
	}

	return -1
}
