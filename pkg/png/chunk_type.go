package png

import (
	"fmt"
)

// ChunkTypeSize is a length of chunk type in bytes.
const ChunkTypeSize = 4

// ChunkType is a 4-byte chunk identifier. Case of each byte carries one
// property bit of the chunk, see IsCritical, IsPublic, IsReservedBitValid and
// IsSafeToCopy.
//
// ChunkType is comparable and must be obtained via NewChunkType or
// ParseChunkType. Zero value is not a valid chunk type.
type ChunkType struct {
	b [ChunkTypeSize]byte
}

// NewChunkType constructs ChunkType from the given bytes. Returns
// ErrInvalidChunkType if any byte is not an ASCII letter.
//
// Note that successfully constructed type may still be invalid in terms of
// IsValid.
func NewChunkType(b [ChunkTypeSize]byte) (ChunkType, error) {
	for i := range b {
		if !isASCIILetter(b[i]) {
			return ChunkType{}, fmt.Errorf("%w: byte #%d (0x%02x) is not an ASCII letter", ErrInvalidChunkType, i, b[i])
		}
	}

	return ChunkType{b: b}, nil
}

// ParseChunkType decodes ChunkType from its string representation. The string
// must consist of exactly 4 ASCII letters, otherwise ErrInvalidChunkType is
// returned.
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != ChunkTypeSize {
		return ChunkType{}, fmt.Errorf("%w: %q has length %d instead of %d", ErrInvalidChunkType, s, len(s), ChunkTypeSize)
	}

	var b [ChunkTypeSize]byte
	copy(b[:], s)

	return NewChunkType(b)
}

// Bytes returns raw chunk type bytes.
func (x ChunkType) Bytes() [ChunkTypeSize]byte {
	return x.b
}

// IsCritical checks whether chunk is critical for displaying the image
// (ancillary otherwise). Defined by uppercase first byte.
func (x ChunkType) IsCritical() bool {
	return isASCIIUpper(x.b[0])
}

// IsPublic checks whether chunk type is a part of public specification
// (private otherwise). Defined by uppercase second byte.
func (x ChunkType) IsPublic() bool {
	return isASCIIUpper(x.b[1])
}

// IsReservedBitValid checks the reserved bit which must be unset, i.e. third
// byte is uppercase.
func (x ChunkType) IsReservedBitValid() bool {
	return isASCIIUpper(x.b[2])
}

// IsSafeToCopy checks whether chunk may be copied by editors unaware of its
// type. Defined by lowercase fourth byte.
func (x ChunkType) IsSafeToCopy() bool {
	return isASCIILower(x.b[3])
}

// IsValid checks whether chunk type is valid. Only the reserved bit is
// decisive, see IsReservedBitValid.
func (x ChunkType) IsValid() bool {
	return x.IsReservedBitValid()
}

// String implements fmt.Stringer.
func (x ChunkType) String() string {
	return string(x.b[:])
}

func isASCIIUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isASCIILower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isASCIILetter(c byte) bool {
	return isASCIIUpper(c) || isASCIILower(c)
}
