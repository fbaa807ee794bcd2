package message

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/klauspost/compress/zstd"
	"github.com/nspcc-dev/pngme/pkg/png"
)

// PrefixLength is a length of compression marker in compressed data.
const PrefixLength = 4

// DefaultMaxMessageSize is a default limit of the message size in bytes.
const DefaultMaxMessageSize = 16 << 20

// ErrMessageTooLarge is returned when message or its chunk data exceeds the
// limit.
var ErrMessageTooLarge = errors.New("message is too large")

// zstdFrameMagic contains first 4 bytes of any zstd frame
// https://github.com/klauspost/compress/blob/master/zstd/framedec.go#L58 .
// Second byte is a UTF-8 continuation byte, so no valid text starts with it.
var zstdFrameMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// maxDataLength limits encoded chunk data.
var maxDataLength uint64 = png.MaxDataLength

// Codec converts hidden messages to chunk data and back.
//
// For correct operation, Codec MUST be initialized using Init. Compressed
// messages are always readable regardless of Compress setting.
type Codec struct {
	// Compress enables zstd compression of encoded messages.
	Compress bool

	// MaxMessageSize limits both encoded and decompressed messages.
	// DefaultMaxMessageSize is used if zero.
	MaxMessageSize uint64

	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// Init initializes compression routines.
func (c *Codec) Init() error {
	var err error

	if c.MaxMessageSize == 0 {
		c.MaxMessageSize = DefaultMaxMessageSize
	}

	if c.Compress {
		// zero frames keep empty messages recognizable as compressed
		c.encoder, err = zstd.NewWriter(nil, zstd.WithZeroFrames(true))
		if err != nil {
			return fmt.Errorf("init zstd encoder: %w", err)
		}
	}

	c.decoder, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(c.MaxMessageSize))
	if err != nil {
		return fmt.Errorf("init zstd decoder: %w", err)
	}

	return nil
}

// IsCompressed checks whether given chunk data is a compressed message.
func IsCompressed(data []byte) bool {
	return len(data) >= PrefixLength && bytes.Equal(data[:PrefixLength], zstdFrameMagic)
}

// Encode returns chunk data carrying msg. Message is compressed if
// compression is enabled and kept as is otherwise. Returns ErrMessageTooLarge
// if msg is longer than MaxMessageSize or the result does not fit into a
// chunk.
func (c *Codec) Encode(msg string) ([]byte, error) {
	if uint64(len(msg)) > c.MaxMessageSize {
		return nil, fmt.Errorf("%w: %d bytes, limit is %d", ErrMessageTooLarge, len(msg), c.MaxMessageSize)
	}

	data := []byte(msg)
	if c.Compress {
		data = c.encoder.EncodeAll(data, make([]byte, 0, c.encoder.MaxEncodedSize(len(data))))
	}

	if uint64(len(data)) > maxDataLength {
		return nil, fmt.Errorf("%w: %d bytes of chunk data, limit is %d", ErrMessageTooLarge, len(data), maxDataLength)
	}

	return data, nil
}

// Chunk returns chunk of the given type carrying msg. Errors are the same as
// for Encode.
func (c *Codec) Chunk(typ png.ChunkType, msg string) (png.Chunk, error) {
	data, err := c.Encode(msg)
	if err != nil {
		return png.Chunk{}, err
	}

	return png.NewChunk(typ, data), nil
}

// Decode returns message carried by the chunk. Compressed data is
// decompressed first, decompressed message may not exceed MaxMessageSize.
// Returns png.ErrInvalidUTF8 if message is not valid UTF-8 text.
func (c *Codec) Decode(ch png.Chunk) (string, error) {
	data := ch.Data()
	if !IsCompressed(data) {
		return ch.DataAsText()
	}

	data, err := c.decoder.DecodeAll(data, nil)
	if err != nil {
		return "", fmt.Errorf("decompress %s chunk data: %w", ch.Type(), err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: decompressed %s chunk", png.ErrInvalidUTF8, ch.Type())
	}

	return string(data), nil
}

// Close closes encoder and decoder, returns any error occurred.
func (c *Codec) Close() error {
	var err error
	if c.encoder != nil {
		err = c.encoder.Close()
	}
	if c.decoder != nil {
		c.decoder.Close()
	}
	return err
}
