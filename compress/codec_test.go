package compress

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/aapc/format"
)

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		name     string
		cType    format.CompressionType
		expected string
	}{
		{name: "rle compression", cType: format.CompressionRLE, expected: "RLE"},
		{name: "none compression", cType: format.CompressionNone, expected: "None"},
		{name: "zstd compression", cType: format.CompressionZstd, expected: "Zstd"},
		{name: "s2 compression", cType: format.CompressionS2, expected: "S2"},
		{name: "lz4 compression", cType: format.CompressionLZ4, expected: "LZ4"},
		{name: "unknown compression", cType: format.CompressionType(0xFF), expected: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.cType.String())
		})
	}
}

func TestCreateCodec(t *testing.T) {
	for _, cType := range []format.CompressionType{
		format.CompressionRLE,
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := CreateCodec(cType, "data")
		require.NoError(t, err, cType.String())
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(0xFF), "data")
	require.Error(t, err)
}

func TestGetCodec_Unsupported(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestCodecs_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	// Runs plus noise: compressible by every codec, exercises the RLE token
	// paths, and representative of the harness's generated data.
	input := make([]byte, 0, 1<<16)
	for len(input) < 1<<16 {
		value := byte(rng.Intn(256))
		for n := 1 + rng.Intn(100); n > 0; n-- {
			input = append(input, value)
		}
		for n := 1 + rng.Intn(50); n > 0; n-- {
			input = append(input, byte(rng.Intn(256)))
		}
	}

	for _, cType := range []format.CompressionType{
		format.CompressionRLE,
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(cType.String(), func(t *testing.T) {
			codec, err := GetCodec(cType)
			require.NoError(t, err)

			compressed, err := codec.Compress(input)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(input, decompressed))
		})
	}
}

func TestRLECodec_EmptyInput(t *testing.T) {
	codec := NewRLECodec()

	// The RLE codec never shortcuts empty input: the empty buffer has a
	// defined frame (block count zero).
	compressed, err := codec.Compress(nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 0}, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Empty(t, decompressed)
}

func TestRLECodec_MalformedInput(t *testing.T) {
	codec := NewRLECodec()

	_, err := codec.Decompress([]byte{0, 0})
	require.Error(t, err)
}

func TestCompressionStats(t *testing.T) {
	stats := CompressionStats{
		Algorithm:      format.CompressionRLE,
		OriginalSize:   1000,
		CompressedSize: 250,
	}

	require.InDelta(t, 0.25, stats.CompressionRatio(), 1e-9)
	require.InDelta(t, 75.0, stats.SpaceSavings(), 1e-9)

	// Zero original size must not divide by zero.
	empty := CompressionStats{}
	require.Zero(t, empty.CompressionRatio())

	// No recorded time yields zero throughput.
	require.Zero(t, stats.CompressThroughput())
	require.Zero(t, stats.DecompressThroughput())
}
