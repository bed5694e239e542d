// Package frame implements the AAPC framed container format.
//
// A compressed buffer is a 4-byte big-endian block count followed by, for
// each block in input order, a 4-byte big-endian payload length and the RLE
// token payload produced by the rle package. Blocks are encoded independently
// with no cross-block state, so a run never spans a block boundary.
//
// The block count is ceil(len(input) / blockSize); empty input therefore
// produces block count 0 and a 4-byte frame with no payloads. The block size
// is not recorded on the wire and the decoder never needs it, so encoders
// with non-default block sizes remain fully interoperable.
package frame

import (
	"fmt"

	"github.com/arloliu/aapc/endian"
	"github.com/arloliu/aapc/errs"
	"github.com/arloliu/aapc/format"
	"github.com/arloliu/aapc/internal/options"
	"github.com/arloliu/aapc/internal/pool"
	"github.com/arloliu/aapc/rle"
)

// maxBlockSize caps configurable block sizes so the worst-case encoded
// payload (2x the block size) always fits the 32-bit length prefix.
const maxBlockSize = 1 << 30

// Encoder compresses byte buffers into AAPC frames.
//
// The encoder reuses an internal pooled buffer across Encode calls; it is not
// safe for concurrent use. Call Close when done to return the buffer to the
// pool.
type Encoder struct {
	engine    endian.EndianEngine
	buf       *pool.ByteBuffer
	blockSize int
}

// EncoderOption configures an Encoder created by NewEncoder.
type EncoderOption = options.Option[*Encoder]

// WithBlockSize overrides the default block size (format.BlockSize).
//
// Smaller blocks add 4 bytes of framing per block but bound the memory
// touched per block; the produced frames decode with any decoder because the
// format never records the block size. Returns errs.ErrInvalidBlockSize for
// sizes outside 1..2^30.
func WithBlockSize(size int) EncoderOption {
	return options.New(func(e *Encoder) error {
		if size <= 0 || size > maxBlockSize {
			return fmt.Errorf("%w: %d (must be in 1..%d)", errs.ErrInvalidBlockSize, size, maxBlockSize)
		}
		e.blockSize = size

		return nil
	})
}

// NewEncoder creates a frame encoder with the given options.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	enc := &Encoder{
		engine:    endian.GetBigEndianEngine(),
		buf:       pool.GetFrameBuffer(),
		blockSize: format.BlockSize,
	}

	if err := options.Apply(enc, opts...); err != nil {
		pool.PutFrameBuffer(enc.buf)
		return nil, err
	}

	return enc, nil
}

// Encode compresses data into a framed buffer.
//
// Encode is total: every input, including the empty buffer, has a valid
// frame. The returned slice is newly allocated and owned by the caller; the
// input slice is not modified.
func (e *Encoder) Encode(data []byte) []byte {
	e.buf.Reset()
	// Repetitive data roughly halves; start there and let append grow for
	// incompressible input.
	e.buf.Grow(format.BlockCountSize + len(data)/2)

	blockCount := (len(data) + e.blockSize - 1) / e.blockSize
	e.buf.B = e.engine.AppendUint32(e.buf.B, uint32(blockCount)) //nolint:gosec

	for start := 0; start < len(data); start += e.blockSize {
		end := min(start+e.blockSize, len(data))

		// Reserve the length prefix, encode the block, then backfill the
		// prefix with the produced payload length.
		lenPos := len(e.buf.B)
		e.buf.B = append(e.buf.B, 0, 0, 0, 0)
		e.buf.B = rle.AppendEncoded(e.buf.B, data[start:end])

		payloadLen := len(e.buf.B) - lenPos - format.BlockLengthSize
		e.engine.PutUint32(e.buf.B[lenPos:lenPos+format.BlockLengthSize], uint32(payloadLen)) //nolint:gosec
	}

	out := make([]byte, e.buf.Len())
	copy(out, e.buf.Bytes())

	return out
}

// BlockSize returns the encoder's configured block size.
func (e *Encoder) BlockSize() int {
	return e.blockSize
}

// Close returns the encoder's internal buffer to the pool.
// The encoder must not be used after Close.
func (e *Encoder) Close() {
	pool.PutFrameBuffer(e.buf)
	e.buf = nil
}

// Encode compresses data into a framed buffer using the default block size.
//
// This is the package-level convenience wrapper around Encoder for one-shot
// callers.
func Encode(data []byte) []byte {
	enc, _ := NewEncoder() // cannot fail without options
	defer enc.Close()

	return enc.Encode(data)
}
