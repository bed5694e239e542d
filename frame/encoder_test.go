package frame

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/aapc/errs"
	"github.com/arloliu/aapc/format"
)

func TestEncode_EmptyInput(t *testing.T) {
	// Empty input has ceil(0 / BlockSize) = 0 blocks: the frame is just the
	// zero block count.
	encoded := Encode(nil)
	require.Equal(t, []byte{0, 0, 0, 0}, encoded)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestEncode_FrameLayout(t *testing.T) {
	encoded := Encode([]byte{7, 7, 7})

	expected := []byte{
		0, 0, 0, 1, // block count
		0, 0, 0, 3, // payload length
		format.FlagRun, 3, 7, // run token
	}
	require.Equal(t, expected, encoded)
}

func TestEncode_BlockSplitting(t *testing.T) {
	// One byte more than a full block: the run must split at the block
	// boundary, leaving a single literal in the second block.
	input := bytes.Repeat([]byte{42}, format.BlockSize+1)

	encoded := Encode(input)

	engine := NewDecoder().engine
	blockCount := engine.Uint32(encoded[:format.BlockCountSize])
	require.Equal(t, uint32(2), blockCount)

	// First block: 262144 bytes of runs, 255 per token plus a remainder run.
	fullRuns := format.BlockSize / format.MaxRunLength
	remainder := format.BlockSize % format.MaxRunLength
	firstPayloadLen := 3 * fullRuns
	if remainder >= format.MinRunLength {
		firstPayloadLen += 3
	} else {
		firstPayloadLen += remainder
	}

	idx := format.BlockCountSize
	require.Equal(t, uint32(firstPayloadLen), engine.Uint32(encoded[idx:idx+format.BlockLengthSize])) //nolint:gosec

	// Second block holds exactly the one overflow byte as a literal.
	idx += format.BlockLengthSize + firstPayloadLen
	require.Equal(t, uint32(1), engine.Uint32(encoded[idx:idx+format.BlockLengthSize]))
	require.Equal(t, byte(42), encoded[idx+format.BlockLengthSize])

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestNewEncoder_WithBlockSize(t *testing.T) {
	enc, err := NewEncoder(WithBlockSize(8))
	require.NoError(t, err)
	defer enc.Close()

	require.Equal(t, 8, enc.BlockSize())

	input := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}
	encoded := enc.Encode(input)

	// 20 bytes at block size 8 split into 3 blocks.
	engine := NewDecoder().engine
	require.Equal(t, uint32(3), engine.Uint32(encoded[:format.BlockCountSize]))

	// Non-default block sizes decode with the stock decoder.
	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestNewEncoder_InvalidBlockSize(t *testing.T) {
	for _, size := range []int{0, -1, maxBlockSize + 1} {
		_, err := NewEncoder(WithBlockSize(size))
		require.ErrorIs(t, err, errs.ErrInvalidBlockSize)
	}
}

func TestEncoder_Reuse(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)
	defer enc.Close()

	first := enc.Encode([]byte{1, 2, 3})
	second := enc.Encode(bytes.Repeat([]byte{9}, 10))

	// Each Encode returns an independent copy; earlier results stay intact.
	require.Equal(t, []byte{0, 0, 0, 1, 0, 0, 0, 3, 1, 2, 3}, first)

	decoded, err := Decode(second)
	require.NoError(t, err)
	require.Equal(t, bytes.Repeat([]byte{9}, 10), decoded)
}
