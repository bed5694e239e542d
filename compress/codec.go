package compress

import (
	"fmt"
	"time"

	"github.com/arloliu/aapc/format"
)

// Compressor compresses a byte buffer into a codec-specific representation.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor reconstructs the original bytes from compressed data.
//
// Separate interfaces allow for asymmetric implementations where compression
// and decompression have different performance characteristics or resource
// requirements.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// The input data should be previously compressed using the same codec.
	// The decompressor validates the data format and returns an error if the
	// data is corrupted or uses an incompatible format.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats records the outcome of one compression round trip.
//
// The measurement harness fills one of these per input and the reporting
// layer renders them; they have no effect on codec behavior.
type CompressionStats struct {
	// Algorithm identifies the codec used.
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression.
	OriginalSize int64

	// CompressedSize is the size of data after compression.
	CompressedSize int64

	// CompressionTime is the time taken to compress the data.
	CompressionTime time.Duration

	// DecompressionTime is the time taken to decompress the data.
	DecompressionTime time.Duration
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
// Values greater than 1.0 indicate compression overhead, which the RLE codec
// can reach on flag-byte-heavy input (up to ~2x plus framing).
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
//
// Higher values indicate better compression.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CompressThroughput returns the compression throughput in bytes per second,
// or 0 if no time was recorded.
func (s CompressionStats) CompressThroughput() float64 {
	if s.CompressionTime <= 0 {
		return 0.0
	}

	return float64(s.OriginalSize) / s.CompressionTime.Seconds()
}

// DecompressThroughput returns the decompression throughput in bytes per
// second, or 0 if no time was recorded.
func (s CompressionStats) DecompressThroughput() float64 {
	if s.DecompressionTime <= 0 {
		return 0.0
	}

	return float64(s.OriginalSize) / s.DecompressionTime.Seconds()
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of codec (RLE, None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionRLE:
		return NewRLECodec(), nil
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionRLE:  NewRLECodec(),
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
