package measure

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/aapc/compress"
	"github.com/arloliu/aapc/format"
)

// ErrMismatch indicates that a decompressed buffer differs from the original
// input. A correct codec never triggers it.
var ErrMismatch = errors.New("round-trip mismatch")

// Result holds the outcome of one verified compression round trip.
type Result struct {
	// Name labels the input (file name or "generated").
	Name string

	// Stats records sizes and timings for the round trip.
	Stats compress.CompressionStats

	// Digest is the xxHash64 digest of the original input, also verified
	// against the decompressed output.
	Digest uint64
}

// Run compresses and decompresses data with the built-in codec of the given
// type, verifies the round trip, and returns the measured result.
func Run(name string, data []byte, codecType format.CompressionType) (Result, error) {
	codec, err := compress.GetCodec(codecType)
	if err != nil {
		return Result{}, err
	}

	return RunWith(name, data, codecType, codec)
}

// RunWith is like Run but measures the provided codec. It exists so callers
// (and tests) can measure codecs that are not registered with the compress
// package.
//
// Verification compares both the xxHash64 digests and the raw bytes of input
// and output; any difference yields an error wrapping ErrMismatch.
func RunWith(name string, data []byte, algo format.CompressionType, codec compress.Codec) (Result, error) {
	result := Result{
		Name:   name,
		Digest: xxhash.Sum64(data),
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	compressTime := time.Since(start)
	if err != nil {
		return result, fmt.Errorf("compress %s: %w", name, err)
	}

	start = time.Now()
	decompressed, err := codec.Decompress(compressed)
	decompressTime := time.Since(start)
	if err != nil {
		return result, fmt.Errorf("decompress %s: %w", name, err)
	}

	if xxhash.Sum64(decompressed) != result.Digest || !bytes.Equal(data, decompressed) {
		return result, fmt.Errorf("%w: %s: decompressed %d bytes differ from original %d bytes",
			ErrMismatch, name, len(decompressed), len(data))
	}

	result.Stats = compress.CompressionStats{
		Algorithm:         algo,
		OriginalSize:      int64(len(data)),
		CompressedSize:    int64(len(compressed)),
		CompressionTime:   compressTime,
		DecompressionTime: decompressTime,
	}

	return result, nil
}
