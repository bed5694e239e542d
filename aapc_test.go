package aapc

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/aapc/format"
)

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name  string
		input []byte
	}{
		{name: "empty", input: []byte{}},
		{name: "single zero byte", input: []byte{0}},
		{name: "flag bytes only", input: []byte{254, 255, 254, 255}},
		{name: "short text", input: []byte("hello, hello, hellooooo world")},
		{name: "one full block", input: randomBytes(rng, format.BlockSize)},
		{name: "one byte under a block", input: randomBytes(rng, format.BlockSize-1)},
		{name: "one byte over a block", input: randomBytes(rng, format.BlockSize+1)},
		{name: "repetitive multi-block", input: bytes.Repeat([]byte{77}, 3*format.BlockSize)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := Decompress(Compress(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.input, decoded)
		})
	}
}

func TestCompress_RepetitiveInputShrinks(t *testing.T) {
	input := bytes.Repeat([]byte{13}, 300000)

	compressed := Compress(input)

	// 300000 identical bytes need ~1177 run tokens plus framing; anything
	// near the input size would mean run detection is broken.
	require.Less(t, len(compressed), len(input)/50)

	decoded, err := Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestCompress_RandomInputBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	input := randomBytes(rng, 300000)

	compressed := Compress(input)

	// Worst case is 2 bytes per input byte (all flag-byte literals) plus
	// 4 bytes of framing per block and the leading count.
	blocks := (len(input) + format.BlockSize - 1) / format.BlockSize
	bound := 2*len(input) + format.BlockCountSize + blocks*format.BlockLengthSize
	require.LessOrEqual(t, len(compressed), bound)
}

func TestDecompress_Malformed(t *testing.T) {
	compressed := Compress([]byte("some perfectly ordinary payload"))

	// Every proper prefix of a one-block frame cuts either the block count,
	// the length prefix or the declared payload, and must fail loudly rather
	// than panic or misdecode silently.
	for cut := len(compressed) - 1; cut >= 0; cut-- {
		_, err := Decompress(compressed[:cut])
		require.Error(t, err, "cut at %d", cut)
	}
}

func randomBytes(rng *rand.Rand, size int) []byte {
	out := make([]byte, size)
	rng.Read(out)

	return out
}
