package frame

import (
	"fmt"

	"github.com/arloliu/aapc/endian"
	"github.com/arloliu/aapc/errs"
	"github.com/arloliu/aapc/format"
	"github.com/arloliu/aapc/rle"
)

// Decoder reconstructs the original bytes from an AAPC frame.
//
// The decoder is stateless and safe for concurrent use; each Decode call
// operates independently on the provided data.
type Decoder struct {
	engine endian.EndianEngine
}

// NewDecoder creates a frame decoder.
func NewDecoder() Decoder {
	return Decoder{engine: endian.GetBigEndianEngine()}
}

// Decode parses the frame in data and returns the original byte buffer.
//
// Every declared length is validated before it is followed: a missing block
// count, a length prefix or payload extending past the buffer, or a token
// with missing operands yields an error wrapping errs.ErrTruncatedBuffer or
// errs.ErrTruncatedPayload instead of reading out of bounds. Bytes after the
// last declared block are ignored.
//
// The returned slice is newly allocated and owned by the caller.
func (d Decoder) Decode(data []byte) ([]byte, error) {
	if len(data) < format.BlockCountSize {
		return nil, fmt.Errorf("%w: need %d bytes for block count, have %d",
			errs.ErrTruncatedBuffer, format.BlockCountSize, len(data))
	}

	blockCount := int(d.engine.Uint32(data[:format.BlockCountSize]))
	idx := format.BlockCountSize

	// A run token expands 3 payload bytes to at most 255 output bytes, but
	// typical input roughly doubles; start there and let append grow.
	dst := make([]byte, 0, 2*(len(data)-idx))

	for b := 0; b < blockCount; b++ {
		if len(data)-idx < format.BlockLengthSize {
			return nil, fmt.Errorf("%w: block %d of %d: length prefix past end of buffer",
				errs.ErrTruncatedBuffer, b, blockCount)
		}

		payloadLen := int(d.engine.Uint32(data[idx : idx+format.BlockLengthSize]))
		idx += format.BlockLengthSize

		if len(data)-idx < payloadLen {
			return nil, fmt.Errorf("%w: block %d declares %d payload bytes, %d remain",
				errs.ErrTruncatedBuffer, b, payloadLen, len(data)-idx)
		}

		var err error
		dst, err = rle.AppendDecoded(dst, data[idx:idx+payloadLen])
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", b, err)
		}
		idx += payloadLen
	}

	return dst, nil
}

// Decode parses the frame in data using a stateless decoder.
//
// This is the package-level convenience wrapper around Decoder for one-shot
// callers.
func Decode(data []byte) ([]byte, error) {
	return NewDecoder().Decode(data)
}
