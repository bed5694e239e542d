// Package aapc implements the Adaptive Pattern Compressor, a lossless
// byte-stream codec built on block-wise run-length encoding.
//
// The encoder splits input into 256KiB blocks and encodes each block as a
// stream of literal, escaped-literal and run tokens; the decoder reverses the
// transform exactly. Compress is total over all inputs, and Decompress
// validates every declared length so corrupt archives fail with an explicit
// error instead of reading out of bounds.
//
// # Basic Usage
//
//	import "github.com/arloliu/aapc"
//
//	compressed := aapc.Compress(data)
//
//	original, err := aapc.Decompress(compressed)
//	if err != nil {
//	    // corrupt or truncated archive
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the frame
// package. For fine-grained control (custom block sizes, encoder reuse), use
// the frame package directly; the rle package exposes the per-block token
// transform, and the compress package wraps this codec together with
// reference codecs behind a common interface for the measurement tooling.
package aapc

import (
	"github.com/arloliu/aapc/frame"
)

// Compress encodes data into a framed AAPC buffer.
//
// Compress never fails: every byte sequence, including the empty one, has a
// valid encoding. The returned slice is newly allocated and owned by the
// caller.
func Compress(data []byte) []byte {
	return frame.Encode(data)
}

// Decompress reconstructs the original bytes from a buffer produced by
// Compress.
//
// Malformed input (truncated buffers, length prefixes pointing past the end,
// flag bytes with missing operands) returns an error wrapping one of the errs
// package sentinels. The returned slice is newly allocated and owned by the
// caller.
func Decompress(data []byte) ([]byte, error) {
	return frame.Decode(data)
}
