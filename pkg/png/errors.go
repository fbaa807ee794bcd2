package png

import (
	"errors"
)

var (
	// ErrInvalidChunkType is returned when chunk type candidate is not
	// exactly 4 ASCII letters.
	ErrInvalidChunkType = errors.New("invalid chunk type")

	// ErrTruncated is returned when buffer ends before the field or record
	// it must contain.
	ErrTruncated = errors.New("unexpected end of data")

	// ErrBadSignature is returned when buffer does not start with the PNG
	// signature.
	ErrBadSignature = errors.New("invalid PNG signature")

	// ErrCRCMismatch is returned when declared chunk CRC differs from the one
	// calculated over chunk type and data.
	ErrCRCMismatch = errors.New("chunk CRC mismatch")

	// ErrChunkNotFound is returned when there is no chunk of requested type.
	ErrChunkNotFound = errors.New("chunk not found")

	// ErrInvalidUTF8 is returned when chunk data is requested as text but is
	// not valid UTF-8.
	ErrInvalidUTF8 = errors.New("chunk data is not valid UTF-8")
)
