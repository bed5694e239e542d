package compress

import (
	"github.com/arloliu/aapc/frame"
)

// RLECodec is the native AAPC codec: block-split run-length encoding inside
// the big-endian frame format.
//
// Unlike the reference codecs, Compress never shortcuts empty input; the
// empty buffer has a defined encoding (a frame with block count zero) and
// producing it keeps Compress a total function over all inputs.
type RLECodec struct{}

var _ Codec = RLECodec{}

// NewRLECodec creates a new AAPC frame codec.
func NewRLECodec() RLECodec {
	return RLECodec{}
}

// Compress encodes the input data as an AAPC frame. The error is always nil;
// it exists to satisfy the Codec interface.
func (c RLECodec) Compress(data []byte) ([]byte, error) {
	return frame.Encode(data), nil
}

// Decompress reconstructs the original bytes from an AAPC frame, validating
// all declared lengths. Malformed input returns an error wrapping an errs
// package sentinel.
func (c RLECodec) Decompress(data []byte) ([]byte, error) {
	return frame.Decode(data)
}
