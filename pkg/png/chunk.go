package png

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Sizes of the chunk record fields.
const (
	lengthFieldSize = 4
	crcFieldSize    = 4

	// ChunkHeaderSize is a length of chunk record prefix: data length and
	// chunk type.
	ChunkHeaderSize = lengthFieldSize + ChunkTypeSize

	// MinChunkSize is a length of the chunk record with empty data.
	MinChunkSize = ChunkHeaderSize + crcFieldSize

	// MaxDataLength is a limit of the chunk data length imposed by the
	// length field.
	MaxDataLength = math.MaxUint32
)

// Chunk is a single typed record of the PNG file. Chunk owns its data.
//
// Chunk is immutable, its CRC is calculated on demand.
type Chunk struct {
	typ  ChunkType
	data []byte
}

// NewChunk constructs Chunk of the given type carrying a copy of data.
//
// Chunk type validity (see ChunkType.IsValid) is not checked. Data MUST NOT
// be longer than MaxDataLength, otherwise length of the encoded record is
// wrong. Callers handling data of arbitrary size check it in advance.
func NewChunk(typ ChunkType, data []byte) Chunk {
	return Chunk{
		typ:  typ,
		data: cloneBytes(data),
	}
}

// Type returns chunk type.
func (x Chunk) Type() ChunkType {
	return x.typ
}

// Data returns chunk data. Result must not be mutated.
func (x Chunk) Data() []byte {
	return x.data
}

// Length returns length of the chunk data.
func (x Chunk) Length() uint32 {
	return uint32(len(x.data))
}

// Size returns length of the chunk record produced by Marshal.
func (x Chunk) Size() int {
	return MinChunkSize + len(x.data)
}

// CRC calculates CRC-32 (IEEE) checksum of the chunk type and data.
func (x Chunk) CRC() uint32 {
	h := crc32.NewIEEE()
	_, _ = h.Write(x.typ.b[:])
	_, _ = h.Write(x.data)

	return h.Sum32()
}

// DataAsText returns chunk data as a string. Returns ErrInvalidUTF8 if data is
// not valid UTF-8 text.
func (x Chunk) DataAsText() (string, error) {
	if !utf8.Valid(x.data) {
		return "", fmt.Errorf("%w: %s chunk", ErrInvalidUTF8, x.typ)
	}

	return string(x.data), nil
}

// Marshal encodes Chunk into PNG chunk record: big-endian data length, type,
// data and big-endian CRC.
func (x Chunk) Marshal() []byte {
	return x.AppendMarshal(make([]byte, 0, x.Size()))
}

// AppendMarshal appends chunk record to dst and returns the extended buffer.
func (x Chunk) AppendMarshal(dst []byte) []byte {
	dst = binary.BigEndian.AppendUint32(dst, x.Length())
	dst = append(dst, x.typ.b[:]...)
	dst = append(dst, x.data...)

	return binary.BigEndian.AppendUint32(dst, x.CRC())
}

// String returns human-readable representation of the chunk: data text,
// data length and type. Invalid UTF-8 sequences are replaced with U+FFFD.
func (x Chunk) String() string {
	var sb strings.Builder

	sb.WriteString(strings.ToValidUTF8(string(x.data), string(utf8.RuneError)))
	sb.WriteString(strconv.FormatUint(uint64(x.Length()), 10))
	sb.WriteString(x.typ.String())

	return sb.String()
}

// DecodeChunk decodes Chunk from the chunk record at the beginning of buf. The
// record takes Size bytes of the result, the rest of buf is ignored. Decoded
// data does not share memory with buf.
//
// Returns:
//   - ErrTruncated if buf is shorter than the record it declares;
//   - ErrInvalidChunkType if chunk type is not 4 ASCII letters;
//   - ErrCRCMismatch if declared CRC is not the one of the decoded chunk.
func DecodeChunk(buf []byte) (Chunk, error) {
	if len(buf) < MinChunkSize {
		return Chunk{}, fmt.Errorf("%w: %d bytes left, need at least %d for chunk record", ErrTruncated, len(buf), MinChunkSize)
	}

	ln := binary.BigEndian.Uint32(buf)

	// uint64 protects from int overflow on 32-bit platforms
	if need := uint64(MinChunkSize) + uint64(ln); need > uint64(len(buf)) {
		return Chunk{}, fmt.Errorf("%w: chunk with %d bytes of data needs %d bytes, %d left", ErrTruncated, ln, need, len(buf))
	}

	var tb [ChunkTypeSize]byte
	copy(tb[:], buf[lengthFieldSize:])

	typ, err := NewChunkType(tb)
	if err != nil {
		return Chunk{}, err
	}

	dataEnd := ChunkHeaderSize + int(ln)

	res := NewChunk(typ, buf[ChunkHeaderSize:dataEnd])

	declared := binary.BigEndian.Uint32(buf[dataEnd:])
	if actual := res.CRC(); actual != declared {
		return Chunk{}, fmt.Errorf("%w: %s chunk declares %08x, calculated %08x", ErrCRCMismatch, typ, declared, actual)
	}

	return res, nil
}

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}

	res := make([]byte, len(b))
	copy(res, b)

	return res
}
